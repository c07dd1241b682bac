package sql

import (
	"context"
	"fmt"
	"testing"
	"time"

	"attendance_srv/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.Generation{})
	require.NoError(t, err)

	return db
}

func TestRecordAndRecent(t *testing.T) {
	repo := NewGenerationRepository(setupTestDB(t))
	ctx := context.Background()
	base := time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		g := &models.Generation{
			ID:         fmt.Sprintf("gen-%d", i),
			CreatedAt:  base.Add(time.Duration(i) * time.Hour),
			OfficeName: "Uppsala",
			Items:      i,
			Status:     models.StatusCompleted,
		}
		require.NoError(t, repo.Record(ctx, g))
	}

	failed := &models.Generation{ID: "gen-failed", CreatedAt: base.Add(10 * time.Hour)}
	failed.Fail(fmt.Errorf("template structure error"))
	require.NoError(t, repo.Record(ctx, failed))

	got, err := repo.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "gen-failed", got[0].ID)
	assert.True(t, got[0].IsFailed())
	assert.Equal(t, "template structure error", got[0].Error)
	assert.Equal(t, "gen-2", got[1].ID)
}

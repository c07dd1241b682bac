package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

func newTemplateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Manage templates in the configured storage",
	}
	cmd.AddCommand(newTemplatePushCmd(), newTemplateListCmd())
	return cmd
}

func newTemplatePushCmd() *cobra.Command {
	var key string

	cmd := &cobra.Command{
		Use:   "push <file>",
		Short: "Upload a template file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open template: %w", err)
			}
			defer f.Close()

			if key == "" {
				key = filepath.Base(args[0])
			}
			if err := a.storage.Save(cmd.Context(), key, f); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "uploaded %s\n", key)
			return nil
		},
	}

	cmd.Flags().StringVarP(&key, "key", "k", "", "Storage key (default: file name)")
	return cmd
}

func newTemplateListCmd() *cobra.Command {
	var prefix string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			files, err := a.storage.List(cmd.Context(), prefix)
			if err != nil {
				return err
			}
			for _, f := range files {
				fmt.Fprintf(cmd.OutOrStdout(), "%-40s %10d  %s\n", f.Key, f.Size, f.LastModified.Format("2006-01-02 15:04:05"))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&prefix, "prefix", "", "Key prefix filter")
	return cmd
}

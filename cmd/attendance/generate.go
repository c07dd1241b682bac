package main

import (
	"fmt"
	"io"
	"os"

	"attendance_srv/internal/domain/timesheet"

	"github.com/spf13/cobra"
)

func newGenerateCmd() *cobra.Command {
	var inputPath, outputPath string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Fill the template from a JSON request file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			var in io.Reader = cmd.InOrStdin()
			if inputPath != "-" {
				f, err := os.Open(inputPath)
				if err != nil {
					return fmt.Errorf("failed to open input: %w", err)
				}
				defer f.Close()
				in = f
			}

			req, err := timesheet.DecodeRequest(in)
			if err != nil {
				return err
			}

			data, err := a.service.Generate(cmd.Context(), req)
			if err != nil {
				return err
			}

			if err := os.WriteFile(outputPath, data, 0644); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%d bytes)\n", outputPath, len(data))
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "-", "JSON request file (- for stdin)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "report.xlsx", "Output xlsx path")
	return cmd
}

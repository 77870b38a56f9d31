// Package main provides the reportsheet CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/edenplace/reportsheet-go/internal/config"
	"github.com/edenplace/reportsheet-go/internal/logging"
	"github.com/edenplace/reportsheet-go/internal/web"
	"github.com/edenplace/reportsheet-go/pkg/broadsheet"
	"github.com/edenplace/reportsheet-go/pkg/broadsheet/output"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "reportsheet",
		Short: "Extract student results from school broadsheet workbooks",
		Long: `reportsheet infers the column layout of broadsheet spreadsheets
(one term per sheet) and extracts normalized per-student results.`,
	}
	rootCmd.AddCommand(newExtractCmd(), newServeCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newExtractCmd() *cobra.Command {
	var (
		outputPath string
		pretty     bool
		sequential bool
	)

	cmd := &cobra.Command{
		Use:   "extract [broadsheet.xlsx]",
		Short: "Extract term results from a broadsheet workbook to JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := broadsheet.DefaultOptions()
			if sequential {
				parallel := false
				opts.Parallel = &parallel
			}

			data, err := broadsheet.Extract(args[0], opts)
			if err != nil {
				return fmt.Errorf("extraction failed: %w", err)
			}

			jsonData, err := output.ToJSON(data, pretty)
			if err != nil {
				return fmt.Errorf("serialization failed: %w", err)
			}

			if outputPath != "" {
				if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
					return fmt.Errorf("failed to write output: %w", err)
				}
				return nil
			}
			fmt.Println(string(jsonData))
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	cmd.Flags().BoolVar(&sequential, "sequential", false, "Process sheets one at a time")
	return cmd
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the broadsheet upload and report API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("configuration failed: %w", err)
			}
			logging.Setup(cfg.LogLevel, cfg.LogFormat)

			srv := web.NewServer(cfg)
			return srv.Run(cmd.Context())
		},
	}
}

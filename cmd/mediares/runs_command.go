package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"mediares/internal/report"
)

func newRunsCommand(ctx *commandContext) *cobra.Command {
	var limit int
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "Show recent resolver run history",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.openStore()
			if err != nil {
				return fmt.Errorf("open run history: %w", err)
			}
			defer store.Close()

			runs, err := store.ListRuns(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if jsonOut {
				return writeJSON(cmd, runViews(runs))
			}

			out := cmd.OutOrStdout()
			if len(runs) == 0 {
				fmt.Fprintln(out, "No recorded runs")
				return nil
			}
			fmt.Fprintln(out, renderRuns(out, runs))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of runs to show")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit run history as JSON")
	return cmd
}

type runView struct {
	ID           string `json:"id"`
	ManifestID   string `json:"manifest_id"`
	ProjectID    string `json:"project_id"`
	TotalAssets  int    `json:"total_assets"`
	Placeholders int    `json:"placeholders"`
	Warnings     int    `json:"warnings"`
	Strict       bool   `json:"strict"`
	Status       string `json:"status"`
	CreatedAt    string `json:"created_at"`
}

func runViews(runs []report.Run) []runView {
	views := make([]runView, 0, len(runs))
	for _, run := range runs {
		views = append(views, runView{
			ID:           run.ID,
			ManifestID:   run.ManifestID,
			ProjectID:    run.ProjectID,
			TotalAssets:  run.TotalAssets,
			Placeholders: run.Placeholders,
			Warnings:     run.Warnings,
			Strict:       run.Strict,
			Status:       run.Status,
			CreatedAt:    run.CreatedAt.Format(time.RFC3339),
		})
	}
	return views
}

// renderRuns uses a bordered table on a terminal and tab-separated rows when
// the output is piped.
func renderRuns(out io.Writer, runs []report.Run) string {
	headers := []string{"CREATED", "MANIFEST", "PROJECT", "ASSETS", "PLACEHOLDERS", "WARNINGS", "STRICT", "STATUS"}
	rows := make([][]string, 0, len(runs))
	for _, run := range runs {
		rows = append(rows, []string{
			run.CreatedAt.Format(time.RFC3339),
			run.ManifestID,
			run.ProjectID,
			strconv.Itoa(run.TotalAssets),
			strconv.Itoa(run.Placeholders),
			strconv.Itoa(run.Warnings),
			yesNo(run.Strict),
			run.Status,
		})
	}

	if isTerminal(out) {
		aligns := []columnAlignment{
			alignLeft, alignLeft, alignLeft,
			alignRight, alignRight, alignRight,
			alignLeft, alignLeft,
		}
		return renderTable(headers, rows, aligns)
	}

	var builder strings.Builder
	builder.WriteString(strings.Join(headers, "\t"))
	for _, row := range rows {
		builder.WriteString("\n")
		builder.WriteString(strings.Join(row, "\t"))
	}
	return builder.String()
}

func isTerminal(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"rescue-planner/internal/domain/entity"
	"rescue-planner/internal/infrastructure/filesystem"
)

var (
	analyzeInput  string
	analyzeOutput string
	analyzeClean  bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze every image in a directory and rank them by rescue ratio",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("input") {
			cfg.InputDir = analyzeInput
		}
		if cmd.Flags().Changed("output") {
			cfg.OutputDir = analyzeOutput
		}
		return runAnalyze(cmd, cmd.OutOrStdout())
	},
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeInput, "input", "i", "images", "Directory with survey images (.png, .jpg, .jpeg)")
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "output", "o", "output", "Directory for scored/ and assigned/ images")
	analyzeCmd.Flags().BoolVar(&analyzeClean, "clean", false, "Remove rendered images after the report is printed")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, out io.Writer) error {
	app, closeFn, err := buildContainer()
	if err != nil {
		return err
	}
	defer closeFn()

	source := filesystem.NewDirSource(cfg.InputDir)
	sink := filesystem.NewDirSink(cfg.OutputDir)

	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetDescription("Analyzing images"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
	report, err := app.SurveyService.AnalyzeBatch(cmd.Context(), source, sink, func(done, total int) {
		if bar.GetMax() != total {
			bar.ChangeMax(total)
		}
		_ = bar.Set(done)
	})
	_ = bar.Finish()
	if report == nil {
		return fmt.Errorf("analyze %s: %w", cfg.InputDir, err)
	}
	if err != nil {
		log.Warn().Err(err).Msg("report was not saved")
	}

	printReport(out, report)

	if analyzeClean {
		if err := sink.Clean(); err != nil {
			return err
		}
	}
	return nil
}

// printReport печатает рейтинг снимков по убыванию коэффициента
func printReport(out io.Writer, report *entity.BatchReport) {
	fmt.Fprintln(out, "Images sorted by rescue ratio (desc):")
	for _, e := range report.Entries {
		fmt.Fprintf(out, "%s: %.3f\n", e.ImageID, e.Ratio)
	}
}

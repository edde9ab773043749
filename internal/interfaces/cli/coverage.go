package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/turtacn/ConstrDoc-Intelligence/internal/domain/chapter"
	"github.com/turtacn/ConstrDoc-Intelligence/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/ConstrDoc-Intelligence/pkg/types/taxonomy"
)

// NewCoverageCmd creates the coverage command.
func NewCoverageCmd() *cobra.Command {
	var (
		inputs    []string
		rulesPath string
		format    string
		file      string
		minRate   float64
	)

	cmd := &cobra.Command{
		Use:   "coverage",
		Short: "Report rule-corpus coverage over one or more documents",
		Long: "Classify the heading sequences of one or more documents and aggregate\n" +
			"a coverage report.  With --min-rate the command fails when coverage\n" +
			"falls below the gate, for use in rule-tuning pipelines.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}
			if !isValidFormat(format) {
				return fmt.Errorf("invalid output format: %s (must be text/json)", format)
			}
			if minRate < 0 || minRate > 1 {
				return fmt.Errorf("invalid --min-rate: %v (must be in [0, 1])", minRate)
			}

			classifier, err := newDocumentClassifier(cliCtx, rulesPath)
			if err != nil {
				return err
			}

			report := chapter.CoverageReport{
				CategoryDistribution:  make(map[taxonomy.CategoryID]int),
				MatchTypeDistribution: make(map[taxonomy.MatchType]int),
			}
			for _, input := range inputs {
				hf, err := readHeadingFile(input)
				if err != nil {
					return err
				}
				results := classifier.MapDocument(hf.Headings)
				report.Merge(chapter.BuildReport(results))
				cliCtx.Metrics.ObserveDocument("ok")
			}
			cliCtx.Metrics.SetCoverageRate("cli", report.Rate)

			cliCtx.Logger.Info("coverage computed",
				logging.Int("documents", len(inputs)),
				logging.Int("headings", report.Total),
				logging.Float64("rate", report.Rate))

			content, err := formatCoverage(report, format)
			if err != nil {
				return err
			}
			if err := writeOutput(content, file); err != nil {
				return err
			}

			if minRate > 0 && report.Rate < minRate {
				return fmt.Errorf("coverage rate %.4f below required minimum %.4f", report.Rate, minRate)
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&inputs, "input", "i", nil, "heading file(s), repeatable [REQUIRED]")
	cmd.Flags().StringVar(&rulesPath, "rules", "", "rule file overriding the built-in corpus")
	cmd.Flags().StringVar(&format, "format", "text", "output format (text/json)")
	cmd.Flags().StringVar(&file, "file", "", "output file path (default: stdout)")
	cmd.Flags().Float64Var(&minRate, "min-rate", 0, "fail when coverage rate is below this value")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func formatCoverage(report chapter.CoverageReport, format string) (string, error) {
	switch format {
	case "json":
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return "", err
		}
		return string(data) + "\n", nil

	case "text":
		var sb strings.Builder
		fmt.Fprintf(&sb, "Headings:  %d\n", report.Total)
		fmt.Fprintf(&sb, "Mapped:    %d\n", report.Mapped)
		fmt.Fprintf(&sb, "Excluded:  %d\n", report.Excluded)
		fmt.Fprintf(&sb, "Unmapped:  %d\n", report.Unmapped)
		fmt.Fprintf(&sb, "Coverage:  %.2f%%\n", report.Rate*100)

		if report.Mapped > 0 {
			sb.WriteString("\nCategory distribution:\n")
			for _, id := range taxonomy.ContentCategoryIDs() {
				if n := report.CategoryDistribution[id]; n > 0 {
					fmt.Fprintf(&sb, "  %-5s %d\n", id, n)
				}
			}
		}
		if len(report.UnmappedTitles) > 0 {
			sb.WriteString("\nUnmapped titles:\n")
			for _, title := range report.UnmappedTitles {
				fmt.Fprintf(&sb, "  %s\n", title)
			}
		}
		return sb.String(), nil

	default:
		return "", fmt.Errorf("unknown format: %s", format)
	}
}

//Personal.AI order the ending

package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/turtacn/ConstrDoc-Intelligence/internal/domain/chapter"
	"github.com/turtacn/ConstrDoc-Intelligence/internal/infrastructure/monitoring/logging"
)

// NewClassifyCmd creates the classify command.
func NewClassifyCmd() *cobra.Command {
	var (
		input     string
		rulesPath string
		format    string
		file      string
	)

	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Classify a document's headings onto the ten-chapter structure",
		Long: "Read a heading sequence from a YAML or JSON file and classify every\n" +
			"heading, applying depth-based inheritance across the sequence.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}
			if !isValidFormat(format) {
				return fmt.Errorf("invalid output format: %s (must be text/json)", format)
			}

			hf, err := readHeadingFile(input)
			if err != nil {
				return err
			}

			classifier, err := newDocumentClassifier(cliCtx, rulesPath)
			if err != nil {
				return err
			}

			results := classifier.MapDocument(hf.Headings)
			for _, r := range results {
				cliCtx.Metrics.ObserveTitle(r.Category.String(), r.MatchType.String())
			}
			cliCtx.Metrics.ObserveDocument("ok")
			cliCtx.Logger.Info("document classified",
				logging.Int("headings", len(results)))

			content, err := formatResults(results, format)
			if err != nil {
				return err
			}
			return writeOutput(content, file)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "heading file (YAML or JSON) [REQUIRED]")
	cmd.Flags().StringVar(&rulesPath, "rules", "", "rule file overriding the built-in corpus")
	cmd.Flags().StringVar(&format, "format", "text", "output format (text/json)")
	cmd.Flags().StringVar(&file, "file", "", "output file path (default: stdout)")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func isValidFormat(format string) bool {
	return format == "text" || format == "json"
}

func formatResults(results []chapter.MappingResult, format string) (string, error) {
	switch format {
	case "json":
		data, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return "", err
		}
		return string(data) + "\n", nil

	case "text":
		rows := make([][]string, 0, len(results))
		for _, r := range results {
			rows = append(rows, []string{
				r.Category.String(),
				fmt.Sprintf("%.2f", r.Confidence),
				r.MatchType.String(),
				r.OriginalTitle,
			})
		}
		return FormatTable([]string{"CATEGORY", "CONF", "MATCH", "TITLE"}, rows), nil

	default:
		return "", fmt.Errorf("unknown format: %s", format)
	}
}

//Personal.AI order the ending

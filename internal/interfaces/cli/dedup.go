package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/turtacn/ConstrDoc-Intelligence/internal/config"
	"github.com/turtacn/ConstrDoc-Intelligence/internal/domain/fragment"
	"github.com/turtacn/ConstrDoc-Intelligence/internal/infrastructure/monitoring/logging"
)

// NewDedupCmd creates the dedup command.
func NewDedupCmd() *cobra.Command {
	var (
		input         string
		threshold     float64
		tokenizerName string
		format        string
		file          string
	)

	cmd := &cobra.Command{
		Use:   "dedup",
		Short: "Remove near-duplicate fragments across documents",
		Long: "Read a fragment batch from a YAML or JSON file and remove near-duplicate\n" +
			"fragments within each category, keeping the higher quality copy.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}
			if !isValidFormat(format) {
				return fmt.Errorf("invalid output format: %s (must be text/json)", format)
			}

			ff, err := readFragmentFile(input)
			if err != nil {
				return err
			}

			tokenizer, err := buildTokenizer(cliCtx, tokenizerName)
			if err != nil {
				return err
			}

			th := threshold
			if th == 0 {
				th = cliCtx.Config.Dedup.Threshold
			}
			dedup, err := fragment.NewDeduplicator(tokenizer,
				fragment.WithThreshold(th),
				fragment.WithDedupLogger(cliCtx.Logger))
			if err != nil {
				return err
			}

			result := dedup.Run(ff.Fragments)
			for category, n := range result.RemovedByCategory() {
				cliCtx.Metrics.ObserveFragmentRemoved(category.String(), n)
			}
			for category, pairs := range result.Comparisons {
				cliCtx.Metrics.ObserveDedupComparisons(category.String(), pairs)
			}
			cliCtx.Logger.Info("dedup finished",
				logging.String("tokenizer", tokenizer.Name()),
				logging.Float64("threshold", th),
				logging.Int("kept", len(result.Kept)),
				logging.Int("removed", len(result.Removed)))

			content, err := formatDedup(result, format)
			if err != nil {
				return err
			}
			return writeOutput(content, file)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "fragment file (YAML or JSON) [REQUIRED]")
	cmd.Flags().Float64Var(&threshold, "threshold", 0, "similarity threshold override (0 = use configured value)")
	cmd.Flags().StringVar(&tokenizerName, "tokenizer", "", "tokenizer backend (segmenter/bigram, default: configured value)")
	cmd.Flags().StringVar(&format, "format", "text", "output format (text/json)")
	cmd.Flags().StringVar(&file, "file", "", "output file path (default: stdout)")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

// buildTokenizer resolves the tokenizer backend from flag or configuration.
func buildTokenizer(cliCtx *CLIContext, name string) (fragment.Tokenizer, error) {
	if name == "" {
		name = cliCtx.Config.Dedup.Tokenizer
	}
	switch name {
	case config.TokenizerBigram:
		return fragment.NewBigramTokenizer(), nil
	case config.TokenizerSegmenter:
		return fragment.NewDefaultTokenizer(cliCtx.Logger), nil
	default:
		return nil, fmt.Errorf("unknown tokenizer: %s (must be %s or %s)",
			name, config.TokenizerSegmenter, config.TokenizerBigram)
	}
}

func formatDedup(result fragment.DedupResult, format string) (string, error) {
	switch format {
	case "json":
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return "", err
		}
		return string(data) + "\n", nil

	case "text":
		var sb strings.Builder
		fmt.Fprintf(&sb, "Kept:        %d\n", len(result.Kept))
		fmt.Fprintf(&sb, "Removed:     %d\n", len(result.Removed))
		fmt.Fprintf(&sb, "Low density: %d\n", len(result.LowDensity))

		if len(result.Removed) > 0 {
			sb.WriteString("\nRemoved fragments:\n")
			rows := make([][]string, 0, len(result.Removed))
			for _, rm := range result.Removed {
				rows = append(rows, []string{
					rm.Fragment.Category.String(),
					rm.Fragment.ID.String(),
					rm.DuplicateOf.ID.String(),
					fmt.Sprintf("%.3f", rm.Similarity),
				})
			}
			sb.WriteString(FormatTable([]string{"CATEGORY", "REMOVED", "DUPLICATE OF", "SIM"}, rows))
		}
		return sb.String(), nil

	default:
		return "", fmt.Errorf("unknown format: %s", format)
	}
}

//Personal.AI order the ending

package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/turtacn/ConstrDoc-Intelligence/internal/domain/chapter"
	"github.com/turtacn/ConstrDoc-Intelligence/internal/domain/fragment"
)

// headingFile is the on-disk form of a heading sequence.
type headingFile struct {
	Document string            `json:"document,omitempty" yaml:"document,omitempty"`
	Headings []chapter.Heading `json:"headings" yaml:"headings"`
}

// fragmentFile is the on-disk form of a fragment batch.
type fragmentFile struct {
	Fragments []fragment.KnowledgeFragment `json:"fragments" yaml:"fragments"`
}

// readHeadingFile loads a heading sequence from a YAML or JSON file; the
// format is selected by extension, defaulting to YAML.
func readHeadingFile(path string) (*headingFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file %q: %w", path, err)
	}

	hf := &headingFile{}
	if err := unmarshalByExt(path, data, hf); err != nil {
		return nil, err
	}
	if len(hf.Headings) == 0 {
		return nil, fmt.Errorf("input file %q contains no headings", path)
	}
	for i, h := range hf.Headings {
		if h.Depth <= 0 {
			// Depth is 1-based; tolerate files that omit it for flat lists.
			hf.Headings[i].Depth = 1
		}
	}
	return hf, nil
}

// readFragmentFile loads a fragment batch from a YAML or JSON file.
func readFragmentFile(path string) (*fragmentFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file %q: %w", path, err)
	}

	ff := &fragmentFile{}
	if err := unmarshalByExt(path, data, ff); err != nil {
		return nil, err
	}
	if len(ff.Fragments) == 0 {
		return nil, fmt.Errorf("input file %q contains no fragments", path)
	}
	for i := range ff.Fragments {
		ff.Fragments[i].EnsureID()
	}
	return ff, nil
}

func unmarshalByExt(path string, data []byte, out interface{}) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to parse %q as JSON: %w", path, err)
		}
	default:
		if err := yaml.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to parse %q as YAML: %w", path, err)
		}
	}
	return nil
}

// loadRules compiles the rule corpus: an explicit --rules flag wins, then the
// configured rules path, then the built-in corpus.
func loadRules(cliCtx *CLIContext, rulesPath string) (*chapter.CompiledRules, error) {
	path := rulesPath
	if path == "" {
		path = cliCtx.Config.Classifier.RulesPath
	}
	if path == "" {
		return chapter.Compile(chapter.DefaultRuleSource())
	}

	src, err := chapter.LoadRuleFile(path)
	if err != nil {
		return nil, err
	}
	return chapter.Compile(src)
}

// newDocumentClassifier wires a DocumentClassifier from CLI context and flags.
func newDocumentClassifier(cliCtx *CLIContext, rulesPath string) (*chapter.DocumentClassifier, error) {
	rules, err := loadRules(cliCtx, rulesPath)
	if err != nil {
		return nil, err
	}
	titles, err := chapter.NewTitleClassifier(rules,
		chapter.WithClassifierLogger(cliCtx.Logger))
	if err != nil {
		return nil, err
	}
	return chapter.NewDocumentClassifier(titles,
		chapter.WithInheritDecay(cliCtx.Config.Classifier.InheritDecay),
		chapter.WithDocumentLogger(cliCtx.Logger))
}

// writeOutput prints content to stdout, or to filePath when given.
func writeOutput(content, filePath string) error {
	if filePath == "" {
		fmt.Print(content)
		return nil
	}
	return os.WriteFile(filePath, []byte(content), 0o644)
}

//Personal.AI order the ending

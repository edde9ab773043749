package config

// Tokenizer backend names accepted by dedup.tokenizer.
const (
	TokenizerSegmenter = "segmenter"
	TokenizerBigram    = "bigram"
)

// Default values applied by ApplyDefaults.
const (
	DefaultInheritDecay   = 0.7
	DefaultDedupThreshold = 0.8
	DefaultTokenizer      = TokenizerSegmenter

	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"
	DefaultLogOutput = "stderr"

	DefaultMetricsNamespace = "constrdoc"
)

// ApplyDefaults fills every unset field of cfg with its default value.
// Explicitly set zero values cannot be distinguished from unset fields;
// numeric fields therefore treat zero as unset.
func ApplyDefaults(cfg *Config) {
	if cfg.Classifier.InheritDecay == 0 {
		cfg.Classifier.InheritDecay = DefaultInheritDecay
	}
	if cfg.Dedup.Threshold == 0 {
		cfg.Dedup.Threshold = DefaultDedupThreshold
	}
	if cfg.Dedup.Tokenizer == "" {
		cfg.Dedup.Tokenizer = DefaultTokenizer
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = DefaultLogFormat
	}
	if cfg.Log.Output == "" {
		cfg.Log.Output = DefaultLogOutput
	}
	if cfg.Metrics.Namespace == "" {
		cfg.Metrics.Namespace = DefaultMetricsNamespace
	}
}

//Personal.AI order the ending

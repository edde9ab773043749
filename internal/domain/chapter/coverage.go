package chapter

import (
	"github.com/turtacn/ConstrDoc-Intelligence/pkg/types/taxonomy"
)

// CoverageReport summarises how well the rule corpus covered a batch of
// classified headings.  Excluded headings count toward coverage: recognising
// material as non-content is a correct verdict, not a miss.
type CoverageReport struct {
	Total    int `json:"total"`
	Mapped   int `json:"mapped"`
	Excluded int `json:"excluded"`
	Unmapped int `json:"unmapped"`

	// Rate is (Mapped + Excluded) / Total, or 0 for an empty batch.
	Rate float64 `json:"rate"`

	// CategoryDistribution counts mapped headings per content category.
	CategoryDistribution map[taxonomy.CategoryID]int `json:"category_distribution"`

	// MatchTypeDistribution counts headings per match tier.
	MatchTypeDistribution map[taxonomy.MatchType]int `json:"match_type_distribution"`

	// UnmappedTitles lists the original titles no rule covered, in input
	// order; this is the worklist for rule-corpus tuning.
	UnmappedTitles []string `json:"unmapped_titles,omitempty"`

	// ExcludedTitles lists the titles dropped as non-content, in input order.
	ExcludedTitles []string `json:"excluded_titles,omitempty"`
}

// BuildReport aggregates classification results into a CoverageReport.
func BuildReport(results []MappingResult) CoverageReport {
	report := CoverageReport{
		Total:                 len(results),
		CategoryDistribution:  make(map[taxonomy.CategoryID]int),
		MatchTypeDistribution: make(map[taxonomy.MatchType]int),
	}

	for _, r := range results {
		report.MatchTypeDistribution[r.MatchType]++
		switch {
		case r.IsMapped():
			report.Mapped++
			report.CategoryDistribution[r.Category]++
		case r.IsExcluded():
			report.Excluded++
			report.ExcludedTitles = append(report.ExcludedTitles, r.OriginalTitle)
		default:
			report.Unmapped++
			report.UnmappedTitles = append(report.UnmappedTitles, r.OriginalTitle)
		}
	}

	if report.Total > 0 {
		report.Rate = float64(report.Mapped+report.Excluded) / float64(report.Total)
	}

	return report
}

// Merge combines another report into this one, recomputing the rate.  Used
// when a corpus is classified in per-document batches.
func (r *CoverageReport) Merge(other CoverageReport) {
	r.Total += other.Total
	r.Mapped += other.Mapped
	r.Excluded += other.Excluded
	r.Unmapped += other.Unmapped
	for id, n := range other.CategoryDistribution {
		r.CategoryDistribution[id] += n
	}
	for mt, n := range other.MatchTypeDistribution {
		r.MatchTypeDistribution[mt] += n
	}
	r.UnmappedTitles = append(r.UnmappedTitles, other.UnmappedTitles...)
	r.ExcludedTitles = append(r.ExcludedTitles, other.ExcludedTitles...)
	if r.Total > 0 {
		r.Rate = float64(r.Mapped+r.Excluded) / float64(r.Total)
	} else {
		r.Rate = 0
	}
}

//Personal.AI order the ending

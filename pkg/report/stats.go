package report

import (
	"github.com/ErikJBerg/NL2SQLEval/pkg/compare"
	"github.com/ErikJBerg/NL2SQLEval/pkg/sqlcmp"
)

// ChangeWeights is the edit-cost policy behind the change-similarity
// statistic. Losing required content is worse than adding extraneous
// content, so a remove costs twice an insert by default. The calibration is
// a tuning choice, not a structural requirement, hence the policy is
// overridable.
type ChangeWeights struct {
	Insert float64
	Update float64
	Remove float64
}

// DefaultChangeWeights returns the stock policy: Remove twice as costly as
// Insert, Update in between.
func DefaultChangeWeights() ChangeWeights {
	return ChangeWeights{Insert: 1, Update: 1.5, Remove: 2}
}

// Stats aggregates one evaluation run. Percentages are over all records,
// means over the valid records only where noted.
type Stats struct {
	Total int `json:"total"`

	ValidCount             int     `json:"valid_count"`
	ValidPct               float64 `json:"valid_pct"`
	ExactCount             int     `json:"exact_count"`
	ExactPct               float64 `json:"exact_pct"`
	PartialCount           int     `json:"partial_count"`
	PartialPct             float64 `json:"partial_pct"`
	PartialIncompleteCount int     `json:"partial_incomplete_count"`
	PartialIncompletePct   float64 `json:"partial_incomplete_pct"`
	NoMatchCount           int     `json:"no_match_count"`

	// MeanSimilarity and MeanChangeCount cover valid records only.
	MeanSimilarity  float64 `json:"mean_similarity"`
	MeanChangeCount float64 `json:"mean_change_count"`

	ChangeHistogram      map[sqlcmp.ChangeAction]int `json:"change_histogram"`
	MeanChangeSimilarity float64                     `json:"mean_change_similarity"`

	ExpectedErrPct  float64 `json:"expected_err_pct"`
	GeneratedErrPct float64 `json:"generated_err_pct"`
}

// Summarize computes the aggregate statistics of a batch of records under
// the given change-cost policy.
func Summarize(records []Record, weights ChangeWeights) Stats {
	stats := Stats{
		Total:           len(records),
		ChangeHistogram: map[sqlcmp.ChangeAction]int{},
	}
	if len(records) == 0 {
		return stats
	}

	var (
		simSum       float64
		changeSum    float64
		changeSimSum float64
		expErr       int
		genErr       int
	)
	for _, r := range records {
		if r.Valid {
			stats.ValidCount++
			simSum += r.Similarity
			changeSum += float64(len(r.Changes))
		}
		switch r.Outcome {
		case compare.Exact:
			stats.ExactCount++
		case compare.Partial:
			stats.PartialCount++
		case compare.PartialIncomplete:
			stats.PartialIncompleteCount++
		default:
			stats.NoMatchCount++
		}
		for _, c := range r.Changes {
			stats.ChangeHistogram[c.Action]++
		}
		changeSimSum += changeSimilarity(r.Changes, weights)
		if r.ExpectedResult.Failed() {
			expErr++
		}
		if r.GeneratedResult.Failed() {
			genErr++
		}
	}

	pct := func(n int) float64 {
		return float64(n) * 100 / float64(len(records))
	}
	stats.ValidPct = pct(stats.ValidCount)
	stats.ExactPct = pct(stats.ExactCount)
	stats.PartialPct = pct(stats.PartialCount)
	stats.PartialIncompletePct = pct(stats.PartialIncompleteCount)
	stats.ExpectedErrPct = pct(expErr)
	stats.GeneratedErrPct = pct(genErr)
	if stats.ValidCount > 0 {
		stats.MeanSimilarity = simSum / float64(stats.ValidCount)
		stats.MeanChangeCount = changeSum / float64(stats.ValidCount)
	}
	stats.MeanChangeSimilarity = changeSimSum / float64(len(records))
	return stats
}

// changeSimilarity is 1 minus the weighted edit cost, normalized by the cost
// of the worst edit script of the same length (all removes). An empty change
// list scores 1.
func changeSimilarity(changes []sqlcmp.ChangeRecord, weights ChangeWeights) float64 {
	if len(changes) == 0 {
		return 1
	}
	var cost float64
	for _, c := range changes {
		switch c.Action {
		case sqlcmp.ActionInsert:
			cost += weights.Insert
		case sqlcmp.ActionRemove:
			cost += weights.Remove
		case sqlcmp.ActionUpdate:
			cost += weights.Update
		}
	}
	worst := float64(len(changes)) * weights.Remove
	if worst <= 0 {
		return 0
	}
	return 1 - cost/worst
}

// Package scoring implements the cognitive scoring engine: per-game metric
// normalizers, domain scorers, the executive function aggregator, and the
// normative comparator. Every function is pure and safe for concurrent use.
package scoring

// Task identifiers reported in TasksUsed and GamesUsed lists.
const (
	TaskGoNoGo   = "go_no_go"
	TaskSequence = "sequence"
	TaskMatching = "matching"
)

// DomainScoreResult is the outcome of scoring one cognitive domain.
// A fresh value is produced on every call and never mutated in place.
type DomainScoreResult struct {
	Score            float64            `json:"score"`
	Components       map[string]float64 `json:"components"`
	TasksUsed        []string           `json:"tasks_used"`
	DataCompleteness float64            `json:"data_completeness"`
}

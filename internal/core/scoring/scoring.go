// Package scoring composes model probability and heuristic signals into a trust score
package scoring

import (
	"fmt"

	"arc/internal/core/canon"
	"arc/internal/core/names"
)

// Reason is one human-readable scoring explanation
type Reason struct {
	Icon string `json:"icon"`
	Text string `json:"text"`
}

// Result is the scored output for one review
type Result struct {
	Key     string   `json:"review_key,omitempty"`
	Total   int      `json:"total"`
	Label   string   `json:"label"`
	Reasons []Reason `json:"reasons"`
	History string   `json:"history"`
}

// additive point system over a neutral baseline, clamped to [1,99]
const (
	baseline   = 50
	scoreFloor = 1
	scoreCeil  = 99

	verifiedBonus  = 25
	mediaBonus     = 15
	longBonus      = 15
	mediumBonus    = 10
	shortPenalty   = 20
	modelBonus     = 15
	modelPenalty   = 25
	namePenalty    = 15
	modelHighBar   = 0.7
	modelLowBar    = 0.4
	longBar        = 400
	mediumBar      = 150
	shortBar       = 30
)

// SignalSet holds the independent per-review trust signals
type SignalSet struct {
	Verified       bool
	HasMedia       bool
	ImageCount     int
	TextLen        int
	SuspiciousName bool
}

// Signals derives the heuristic signals for one canonical review
// deterministic, no I/O
func Signals(r canon.Review) SignalSet {
	return SignalSet{
		Verified:       r.Verified,
		HasMedia:       r.ImageCount > 0,
		ImageCount:     r.ImageCount,
		TextLen:        r.TextLen,
		SuspiciousName: names.IsSuspicious(r.AuthorName),
	}
}

// Compose merges one review's signals with its model probability
// fixed evaluation order so identical inputs always yield identical output
func Compose(r canon.Review, prob float64) Result {
	sig := Signals(r)
	s := baseline
	reasons := make([]Reason, 0, 6)

	if sig.Verified {
		s += verifiedBonus
		reasons = append(reasons, Reason{Icon: "✅", Text: "Verified Purchase"})
	} else {
		// neutral entry so an unverified review still explains itself
		reasons = append(reasons, Reason{Icon: "⚠️", Text: "Unverified Purchase"})
	}

	if sig.HasMedia {
		s += mediaBonus
		reasons = append(reasons, Reason{Icon: "📷", Text: fmt.Sprintf("Includes %d photo(s) or video(s)", sig.ImageCount)})
	}

	switch {
	case sig.TextLen > longBar:
		s += longBonus
		reasons = append(reasons, Reason{Icon: "📝", Text: "Detailed review"})
	case sig.TextLen > mediumBar:
		s += mediumBonus
		reasons = append(reasons, Reason{Icon: "📝", Text: "Reasonably detailed review"})
	case sig.TextLen < shortBar:
		s -= shortPenalty
		reasons = append(reasons, Reason{Icon: "✏️", Text: "Very short review"})
	}

	switch {
	case prob > modelHighBar:
		s += modelBonus
		reasons = append(reasons, Reason{Icon: "🤖", Text: "Writing style reads genuine"})
	case prob < modelLowBar:
		s -= modelPenalty
		reasons = append(reasons, Reason{Icon: "🤖", Text: "Writing style resembles known fakes"})
	}

	if sig.SuspiciousName {
		s -= namePenalty
		reasons = append(reasons, Reason{Icon: "👤", Text: "Generic or generated reviewer name"})
	}

	total := clamp(s)
	return Result{
		Key:     r.Key,
		Total:   total,
		Label:   Label(total),
		Reasons: reasons,
		History: names.History(r.AuthorName),
	}
}

// ComposeBatch scores reviews one-to-one against a probability vector
// callers make the single batched adapter call; a short vector degrades to neutral
func ComposeBatch(reviews []canon.Review, probs []float64) []Result {
	out := make([]Result, len(reviews))
	for i, r := range reviews {
		p := 0.5
		if i < len(probs) {
			p = probs[i]
		}
		out[i] = Compose(r, p)
	}
	return out
}

// Label maps a clamped score onto its categorical band
// bands are monotonic and cover the whole range with no gaps
func Label(total int) string {
	switch {
	case total < 30:
		return "Likely Fake"
	case total < 60:
		return "Low Confidence"
	case total >= 90:
		return "Highly Authentic"
	default:
		return "Feels Genuine"
	}
}

func clamp(s int) int {
	if s < scoreFloor {
		return scoreFloor
	}
	if s > scoreCeil {
		return scoreCeil
	}
	return s
}

// Package model wraps the external text classifier behind a fail-open batch port
package model

import "context"

// NeutralProb is returned for every input when the model cannot answer
const NeutralProb = 0.5

// Port is the batch genuineness-probability contract.
// Implementations always return exactly len(texts) values in [0,1];
// they never error and never block past their internal timeout.
// Any internal failure degrades to NeutralProb for the whole batch
type Port interface {
	Probabilities(ctx context.Context, texts []string) []float64
}

// Static returns a fixed probability for every input
// used when no model is configured, and in tests
type Static struct {
	Prob float64
}

// NewStatic builds a Static adapter, defaulting to NeutralProb
func NewStatic(prob float64) Static {
	if prob < 0 || prob > 1 {
		prob = NeutralProb
	}
	return Static{Prob: prob}
}

// Probabilities returns the fixed probability once per input
func (s Static) Probabilities(_ context.Context, texts []string) []float64 {
	out := make([]float64, len(texts))
	for i := range out {
		out[i] = s.Prob
	}
	return out
}

// neutral builds a full-length neutral vector
func neutral(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = NeutralProb
	}
	return out
}

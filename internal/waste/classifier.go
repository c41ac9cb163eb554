package waste

import (
	"context"
	"math/rand"
	"time"
)

// Classification is the result of classifying a waste item.
type Classification struct {
	Category     Category `json:"category"`
	Confidence   float64  `json:"confidence"`
	Suggestions  []string `json:"suggestions"`
	Alternatives []string `json:"alternatives"`
}

// Classifier identifies the waste category for an input image or
// description. Implementations may take arbitrarily long; they must honor
// context cancellation. A real vision-model implementation can be
// substituted without changing callers.
type Classifier interface {
	Classify(ctx context.Context, input string) (Classification, error)
}

// defaultClassifyDelay approximates the latency of a real model call.
const defaultClassifyDelay = 2 * time.Second

// SimulatedClassifier is a placeholder Classifier. It waits for an
// artificial processing delay, then returns a pseudo-randomly chosen
// category with a confidence in [0.6, 1.0) and the catalog guidance for
// that category. It never fails except on context cancellation.
type SimulatedClassifier struct {
	delay time.Duration
	rng   *rand.Rand
}

// NewSimulatedClassifier creates a simulated classifier seeded from seed.
func NewSimulatedClassifier(seed int64) *SimulatedClassifier {
	return &SimulatedClassifier{
		delay: defaultClassifyDelay,
		rng:   rand.New(rand.NewSource(seed)), //nolint:gosec // simulation, not crypto
	}
}

// WithDelay overrides the artificial processing delay. Tests use a zero
// delay.
func (c *SimulatedClassifier) WithDelay(d time.Duration) *SimulatedClassifier {
	c.delay = d
	return c
}

// Classify implements Classifier. The input is ignored; no real model
// exists behind this boundary.
func (c *SimulatedClassifier) Classify(ctx context.Context, _ string) (Classification, error) {
	if c.delay > 0 {
		timer := time.NewTimer(c.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return Classification{}, ctx.Err()
		case <-timer.C:
		}
	}

	category := Categories[c.rng.Intn(len(Categories))]
	confidence := 0.6 + c.rng.Float64()*0.4

	return Classification{
		Category:     category,
		Confidence:   confidence,
		Suggestions:  DisposalSuggestions(category),
		Alternatives: Alternatives(category),
	}, nil
}

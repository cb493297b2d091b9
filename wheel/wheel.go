// Package wheel implements the weighted draw for the roulette: it normalizes
// the active prizes' weights into a distribution and inverse-samples one.
package wheel

import (
	"errors"
	"math/rand"
	"time"

	"github.com/Domotic593/Ruleta-Completa/models"
)

// ErrNoPrizes is returned when there is nothing active to draw from.
var ErrNoPrizes = errors.New("no hay productos disponibles")

// floatSource is the part of *rand.Rand the engine needs.
type floatSource interface {
	Float64() float64
}

// Engine draws winners from a slice of active prizes. The random source is
// injected so tests can seed it; it is uniform, not cryptographic.
type Engine struct {
	rnd floatSource
}

// New builds an Engine on the given source.
func New(src rand.Source) *Engine {
	return &Engine{rnd: rand.New(src)}
}

// NewDefault builds an Engine seeded from the clock.
func NewDefault() *Engine {
	return New(rand.NewSource(time.Now().UnixNano()))
}

// SelectWinner picks one prize with probability weight/totalWeight.
//
// The walk accumulates normalized weights in the given order and returns the
// first prize whose running sum reaches r, so earlier prizes win ties at
// exact boundaries. If rounding drift leaves the walk short of r, the last
// prize is the defined fallback. A single prize always wins.
func (e *Engine) SelectWinner(prizes []models.Prize) (models.Prize, error) {
	if len(prizes) == 0 {
		return models.Prize{}, ErrNoPrizes
	}

	totalWeight := 0.0
	for _, p := range prizes {
		totalWeight += p.Probabilidad
	}
	if totalWeight <= 0 {
		return models.Prize{}, ErrNoPrizes
	}

	r := e.rnd.Float64()
	acc := 0.0
	for _, p := range prizes {
		acc += p.Probabilidad / totalWeight
		if r <= acc {
			return p, nil
		}
	}
	return prizes[len(prizes)-1], nil
}

// Chances returns each prize's normalized win percentage (0-100), in input
// order. Used by the admin listing; returns nil for an empty catalog.
func Chances(prizes []models.Prize) []float64 {
	if len(prizes) == 0 {
		return nil
	}
	totalWeight := 0.0
	for _, p := range prizes {
		totalWeight += p.Probabilidad
	}
	out := make([]float64, len(prizes))
	if totalWeight <= 0 {
		return out
	}
	for i, p := range prizes {
		out[i] = p.Probabilidad / totalWeight * 100
	}
	return out
}

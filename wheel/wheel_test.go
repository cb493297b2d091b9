package wheel

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/Domotic593/Ruleta-Completa/models"
)

// fixed is a source that always returns the same draw.
type fixed float64

func (f fixed) Float64() float64 { return float64(f) }

func TestSelectWinner_Empty(t *testing.T) {
	e := New(rand.NewSource(1))
	if _, err := e.SelectWinner(nil); !errors.Is(err, ErrNoPrizes) {
		t.Fatalf("expected ErrNoPrizes, got %v", err)
	}
	if _, err := e.SelectWinner([]models.Prize{}); !errors.Is(err, ErrNoPrizes) {
		t.Fatalf("expected ErrNoPrizes on empty slice, got %v", err)
	}
}

func TestSelectWinner_ZeroTotalWeight(t *testing.T) {
	e := New(rand.NewSource(1))
	prizes := []models.Prize{{ID: 1, Probabilidad: 0}}
	if _, err := e.SelectWinner(prizes); !errors.Is(err, ErrNoPrizes) {
		t.Fatalf("expected ErrNoPrizes for zero total weight, got %v", err)
	}
}

func TestSelectWinner_SinglePrizeAlwaysWins(t *testing.T) {
	for _, w := range []float64{0.001, 0.05, 1, 42, 1000} {
		e := New(rand.NewSource(7))
		prizes := []models.Prize{{ID: 9, Nombre: "solo", Probabilidad: w}}
		for i := 0; i < 50; i++ {
			p, err := e.SelectWinner(prizes)
			if err != nil {
				t.Fatalf("weight %v: unexpected error: %v", w, err)
			}
			if p.ID != 9 {
				t.Fatalf("weight %v: got prize %d, want 9", w, p.ID)
			}
		}
	}
}

func TestSelectWinner_BoundaryPrefersEarlier(t *testing.T) {
	// Equal weights: cumulative for the first prize is exactly 0.5, and the
	// tie-break is left-inclusive, so r == 0.5 still picks the first one.
	prizes := []models.Prize{
		{ID: 1, Probabilidad: 1},
		{ID: 2, Probabilidad: 1},
	}
	e := &Engine{rnd: fixed(0.5)}
	p, err := e.SelectWinner(prizes)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID != 1 {
		t.Fatalf("r=0.5 should pick the first prize, got %d", p.ID)
	}

	e = &Engine{rnd: fixed(0.3)}
	p, err = e.SelectWinner(prizes)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID != 1 {
		t.Fatalf("r=0.3 should pick the first prize, got %d", p.ID)
	}

	e = &Engine{rnd: fixed(0.51)}
	p, err = e.SelectWinner(prizes)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID != 2 {
		t.Fatalf("r=0.51 should pick the second prize, got %d", p.ID)
	}
}

func TestSelectWinner_DriftFallsBackToLast(t *testing.T) {
	// A draw the cumulative walk never reaches must resolve to the last
	// prize, not an error.
	prizes := []models.Prize{
		{ID: 1, Probabilidad: 1},
		{ID: 2, Probabilidad: 1},
		{ID: 3, Probabilidad: 1},
	}
	e := &Engine{rnd: fixed(1.5)}
	p, err := e.SelectWinner(prizes)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID != 3 {
		t.Fatalf("fallback should return the last prize, got %d", p.ID)
	}
}

func TestSelectWinner_Distribution(t *testing.T) {
	// Weights 70/20/10: empirical frequencies must converge on the
	// normalized weights with a seeded source.
	prizes := []models.Prize{
		{ID: 1, Probabilidad: 70},
		{ID: 2, Probabilidad: 20},
		{ID: 3, Probabilidad: 10},
	}
	e := New(rand.NewSource(42))
	const rounds = 100_000
	count := map[uint]int{}
	for i := 0; i < rounds; i++ {
		p, err := e.SelectWinner(prizes)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		count[p.ID]++
	}
	if p := float64(count[1]) / rounds; p < 0.68 || p > 0.72 {
		t.Errorf("prize 1 proportion %.4f want ~0.70", p)
	}
	if p := float64(count[2]) / rounds; p < 0.18 || p > 0.22 {
		t.Errorf("prize 2 proportion %.4f want ~0.20", p)
	}
	if p := float64(count[3]) / rounds; p < 0.08 || p > 0.12 {
		t.Errorf("prize 3 proportion %.4f want ~0.10", p)
	}
}

func TestChances(t *testing.T) {
	prizes := []models.Prize{
		{ID: 1, Probabilidad: 1},
		{ID: 2, Probabilidad: 3},
	}
	got := Chances(prizes)
	if len(got) != 2 {
		t.Fatalf("expected 2 chances, got %d", len(got))
	}
	if got[0] != 25 || got[1] != 75 {
		t.Fatalf("got %v, want [25 75]", got)
	}
	if Chances(nil) != nil {
		t.Fatal("empty catalog should yield nil")
	}
	zero := Chances([]models.Prize{{ID: 1, Probabilidad: 0}})
	if len(zero) != 1 || zero[0] != 0 {
		t.Fatalf("zero-weight catalog should yield zeros, got %v", zero)
	}
}

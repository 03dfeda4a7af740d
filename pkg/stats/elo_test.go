package stats

import (
	"math"
	"testing"
)

func TestEloNoGames(t *testing.T) {
	muMin, mu, muMax := Elo(0, 0, 0)
	if muMin != 0 || mu != 0 || muMax != 0 {
		t.Errorf("expected zero elo without games, got %f [%f, %f]", mu, muMin, muMax)
	}
}

func TestEloSign(t *testing.T) {
	_, winning, _ := Elo(10, 5, 2)
	if winning <= 0 {
		t.Errorf("expected a positive elo for a winning score, got %f", winning)
	}

	_, losing, _ := Elo(2, 5, 10)
	if losing >= 0 {
		t.Errorf("expected a negative elo for a losing score, got %f", losing)
	}
}

func TestEloSymmetry(t *testing.T) {
	_, mu1, _ := Elo(10, 5, 2)
	_, mu2, _ := Elo(2, 5, 10)

	if math.Abs(mu1+mu2) > 1e-9 {
		t.Errorf("expected mirrored scores to have opposite elo, got %f and %f", mu1, mu2)
	}
}

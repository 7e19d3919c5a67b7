package scoring

import (
	"fmt"
	"math"
)

// Weight bounds for the final-score combination. Either side may carry at
// most 70% and at least 30% of the final score.
const (
	WeightMin = 0.3
	WeightMax = 0.7
)

// Weights is the user-supplied pair combining normalized availability and
// affinity into the Nota Final.
type Weights struct {
	Disponibilidade float64
	Afinidade       float64
}

// DefaultWeights splits the final score evenly.
func DefaultWeights() Weights {
	return Weights{Disponibilidade: 0.5, Afinidade: 0.5}
}

// Validate checks each weight against the allowed bounds.
func (w Weights) Validate() error {
	if w.Disponibilidade < WeightMin || w.Disponibilidade > WeightMax {
		return fmt.Errorf("peso da disponibilidade %.2f fora do intervalo [%.1f, %.1f]", w.Disponibilidade, WeightMin, WeightMax)
	}
	if w.Afinidade < WeightMin || w.Afinidade > WeightMax {
		return fmt.Errorf("peso da afinidade %.2f fora do intervalo [%.1f, %.1f]", w.Afinidade, WeightMin, WeightMax)
	}
	return nil
}

// Normalize forces the pair to sum to 1.0 by deriving the availability
// weight from the affinity weight. Returns the (possibly adjusted) pair and
// whether an adjustment was needed; callers surface a warning when it was.
func (w Weights) Normalize() (Weights, bool) {
	if math.Abs(w.Disponibilidade+w.Afinidade-1.0) < 1e-9 {
		return w, false
	}
	adjusted := Weights{
		Afinidade:       w.Afinidade,
		Disponibilidade: math.Round((1.0-w.Afinidade)*100) / 100,
	}
	return adjusted, true
}

package scoring

import (
	"sort"
	"time"

	"github.com/Projetos-PJ/Modelo-PCP/pkg/core/model"
)

// MediaNucleoNome is the member name of the synthetic núcleo-average row.
// The "⚠" variant is used when the cohort averages look unhealthy.
const (
	MediaNucleoNome       = "média.do.núcleo"
	MediaNucleoNomeAlerta = "média.do.núcleo ⚠"
)

// Thresholds below which the núcleo-average row carries the alert marker.
const (
	alertaAfinidadeMinima       = 5.0
	alertaDisponibilidadeMinima = 15.0
)

// ScoredMember is one member with the ephemeral computed columns attached.
type ScoredMember struct {
	Member model.Member

	Disponibilidade     float64
	Afinidade           float64
	NotaDisponibilidade float64
	NotaFinal           float64
	Alocacoes           int
}

// EvaluationParams is the request-scoped context of one ranking evaluation.
type EvaluationParams struct {
	// InicioNovoProjeto is the candidate start date of the new project.
	InicioNovoProjeto time.Time

	// Portfolio is the selected portfolio scope for affinity lookups.
	Portfolio string

	Weights Weights
	Policy  Policy
}

// Rank scores every member against the evaluation context and returns the
// cohort sorted descending by Nota Final. The input slice is not modified.
func Rank(members []model.Member, params EvaluationParams) []ScoredMember {
	scored := make([]ScoredMember, 0, len(members))
	for _, m := range members {
		scored = append(scored, ScoredMember{
			Member:          m,
			Disponibilidade: Availability(&m, params.InicioNovoProjeto, params.Policy),
			Afinidade:       Affinity(&m, params.Portfolio),
			Alocacoes:       Allocations(&m, params.InicioNovoProjeto, params.Policy),
		})
	}

	ScaleAvailability(scored)

	for i := range scored {
		scored[i].NotaFinal = scored[i].Afinidade*params.Weights.Afinidade +
			scored[i].NotaDisponibilidade*params.Weights.Disponibilidade
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].NotaFinal > scored[j].NotaFinal
	})

	return scored
}

// ScaleAvailability fills NotaDisponibilidade with a 0-10 min-max scaling of
// the cohort's availability. The max is pinned at the 30h base budget and the
// min is the minimum observed in the cohort; a zero range scores everyone 10.
func ScaleAvailability(scored []ScoredMember) {
	if len(scored) == 0 {
		return
	}

	minDisp := scored[0].Disponibilidade
	for _, s := range scored[1:] {
		if s.Disponibilidade < minDisp {
			minDisp = s.Disponibilidade
		}
	}

	rangeDisp := HorasBase - minDisp
	for i := range scored {
		if rangeDisp <= 0 {
			scored[i].NotaDisponibilidade = 10
			continue
		}
		scored[i].NotaDisponibilidade = 10 * (scored[i].Disponibilidade - minDisp) / rangeDisp
	}
}

// NucleoAverage builds the synthetic average row appended to ranked output
// for visual reference. It is never ranked among real members.
func NucleoAverage(scored []ScoredMember) ScoredMember {
	media := ScoredMember{}
	if len(scored) == 0 {
		media.Member.Membro = MediaNucleoNome
		return media
	}

	for _, s := range scored {
		media.Disponibilidade += s.Disponibilidade
		media.Afinidade += s.Afinidade
		media.NotaDisponibilidade += s.NotaDisponibilidade
		media.NotaFinal += s.NotaFinal
	}
	n := float64(len(scored))
	media.Disponibilidade /= n
	media.Afinidade /= n
	media.NotaDisponibilidade /= n
	media.NotaFinal /= n

	media.Member.Membro = MediaNucleoNome
	if media.Afinidade < alertaAfinidadeMinima || media.Disponibilidade < alertaDisponibilidadeMinima {
		media.Member.Membro = MediaNucleoNomeAlerta
	}
	return media
}

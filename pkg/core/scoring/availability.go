package scoring

import (
	"time"

	"github.com/Projetos-PJ/Modelo-PCP/pkg/core/model"
	"github.com/Projetos-PJ/Modelo-PCP/pkg/utils/texto"
)

const (
	// HorasBase is the weekly hour budget everyone starts from.
	HorasBase = 30.0

	horasPorAprendizagem   = 5.0
	horasPorAssessoria     = 10.0
	horasPorProjetoInterno = 5.0
	horasCargoAltaCarga    = 10.0
)

// Availability computes the remaining weekly-hour budget for a member given
// the start date of the new project. The result is not clamped: members
// committed beyond their budget go negative and downstream scaling handles it.
func Availability(m *model.Member, inicioNovoProjeto time.Time, policy Policy) float64 {
	horas := HorasBase

	// Fixed deductions for mentoring and advisory loads. Absent or malformed
	// counters cost nothing.
	horas -= m.Aprendizagens.Or(0) * horasPorAprendizagem
	horas -= m.Assessorias.Or(0) * horasPorAssessoria

	// Each internal project that has started costs 5h.
	for _, interno := range m.ProjetosInternos {
		if interno.Inicio.Present() {
			horas -= horasPorProjetoInterno
		}
	}

	if isCargoAltaCarga(m.CargoNucleo, policy.CargosAltaCarga) {
		horas -= horasCargoAltaCarga
	}

	// Variable deductions per external project slot.
	for _, projeto := range m.Projetos {
		if !projeto.Nome.Present() {
			continue
		}

		fim := projeto.FimEfetivo()
		if !fim.Present() {
			// Project with no resolvable end date: indefinite commitment.
			if policy.SemDataFim == SemDataFimPenalidade {
				horas -= 10
			}
			continue
		}

		diasRestantes := daysBetween(inicioNovoProjeto, fim.Value())
		horas += endDateAdjustment(diasRestantes, policy.FimProjeto)
	}

	return horas
}

// endDateAdjustment returns the (signed) hour adjustment for a project with
// diasRestantes days left at the new project start.
func endDateAdjustment(diasRestantes int, policy FimProjetoPolicy) float64 {
	switch policy {
	case FimProjetoBonusFimProximo:
		// Legacy rule: flat cost, then hours back for imminent finishers.
		adjustment := -10.0
		switch {
		case diasRestantes <= 7:
			adjustment += 10
		case diasRestantes <= 14:
			adjustment += 6
		}
		return adjustment
	default:
		// Current rule: the penalty shrinks as the end nears, since the
		// member frees up sooner.
		switch {
		case diasRestantes > 14:
			return -10
		case diasRestantes > 7:
			return -4
		default:
			return -1
		}
	}
}

func isCargoAltaCarga(cargo string, cargosAltaCarga []string) bool {
	for _, alta := range cargosAltaCarga {
		if texto.Igual(cargo, alta) {
			return true
		}
	}
	return false
}

// daysBetween returns whole days from start to end, truncating both to dates
// so time-of-day never shifts the banding.
func daysBetween(start, end time.Time) int {
	start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	end = time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	return int(end.Sub(start).Hours() / 24)
}

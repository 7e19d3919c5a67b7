package scoring

// FimProjetoPolicy selects how the availability calculator treats an external
// project whose end date is resolvable. The two variants existed in different
// revisions of the planning sheet rules and the choice is still pending with
// the PCP owners, so both are kept behind configuration.
type FimProjetoPolicy string

const (
	// FimProjetoPenalizarRestante penalizes commitments by how long they still
	// run past the new project start: >14 days costs 10h, 8-14 days costs 4h,
	// up to 7 days costs 1h.
	FimProjetoPenalizarRestante FimProjetoPolicy = "penalizar-restante"

	// FimProjetoBonusFimProximo is the legacy rule: every named project costs
	// a flat 10h, then imminent finishers earn hours back (+6 for 8-14 days
	// left, +10 for up to 7 days).
	FimProjetoBonusFimProximo FimProjetoPolicy = "bonus-fim-proximo"
)

// SemDataFimPolicy selects the fallback for an external project with a name
// but no resolvable end date.
type SemDataFimPolicy string

const (
	// SemDataFimPenalidade treats the project as an indefinite commitment
	// and applies a flat 10h penalty.
	SemDataFimPenalidade SemDataFimPolicy = "penalidade"

	// SemDataFimIgnorar skips the slot entirely.
	SemDataFimIgnorar SemDataFimPolicy = "ignorar"
)

// ContagemPolicy selects how the allocation counter decides whether an
// external project slot counts as an allocation.
type ContagemPolicy string

const (
	// ContagemPresenca counts every slot with a project name.
	ContagemPresenca ContagemPolicy = "presenca"

	// ContagemDataFim additionally requires the project to still be running:
	// no resolvable end date, or an end date after the reference date.
	ContagemDataFim ContagemPolicy = "data-fim"
)

// Policy bundles the configurable business rules the calculators apply.
type Policy struct {
	FimProjeto FimProjetoPolicy
	SemDataFim SemDataFimPolicy
	Contagem   ContagemPolicy

	// CargosAltaCarga are roles that carry a standing 10h availability
	// penalty (compared case-insensitively).
	CargosAltaCarga []string
}

// DefaultPolicy returns the rules of the latest sheet revision.
func DefaultPolicy() Policy {
	return Policy{
		FimProjeto:      FimProjetoPenalizarRestante,
		SemDataFim:      SemDataFimPenalidade,
		Contagem:        ContagemPresenca,
		CargosAltaCarga: DefaultCargosAltaCarga(),
	}
}

// DefaultCargosAltaCarga returns the standing high-load role set.
func DefaultCargosAltaCarga() []string {
	return []string{
		"SDR",
		"Hunter",
		"Analista Sênior",
		"Liderança de Chapter",
		"Product Manager",
	}
}

package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Projetos-PJ/Modelo-PCP/pkg/core/model"
)

func TestAffinity_AllDefaults(t *testing.T) {
	// No portfolio column, no validations, no survey answers:
	// (3*2 + 3*2 + (5+5)/2) / 3
	m := model.Member{Membro: "joao.silva"}

	assert.InDelta(t, (6.0+6.0+5.0)/3, Affinity(&m, "DSaaS"), 1e-9)
}

func TestAffinity_DefaultsWithWellbeing(t *testing.T) {
	// Only well-being inputs present: (3*2 + 3*2 + bemEstar) / 3
	m := model.Member{
		SentimentoCarga: model.NewOptString("Subalocado"),
		SaudeMental:     model.ParseOptFloat("8"),
	}
	bemEstar := (10.0 + 8.0) / 2

	assert.InDelta(t, (6.0+6.0+bemEstar)/3, Affinity(&m, "DSaaS"), 1e-9)
}

func TestAffinity_PortfolioSatisfactionRescaled(t *testing.T) {
	m := model.Member{
		SatisfacaoPortfolio: map[string]model.OptFloat{
			"DSaaS": model.ParseOptFloat("5"),
		},
	}

	// (5*2 + 6 + 5) / 3
	assert.InDelta(t, 7.0, Affinity(&m, "DSaaS"), 1e-9)

	// Other portfolios fall back to the neutral 3
	assert.InDelta(t, (6.0+6.0+5.0)/3, Affinity(&m, "Ciência de Dados"), 1e-9)
}

func TestAffinity_CapacityAveragesPresentValidations(t *testing.T) {
	m := model.Member{}
	m.Projetos[0].ValidacaoMedia = model.ParseOptFloat("4")
	m.Projetos[2].ValidacaoMedia = model.ParseOptFloat("2,5")
	// Slots 1 and 3 absent, excluded from the average

	capacidade := (4.0 + 2.5) / 2 * 2
	assert.InDelta(t, (6.0+capacidade+5.0)/3, Affinity(&m, "DSaaS"), 1e-9)
}

func TestAffinity_SentimentMapping(t *testing.T) {
	tests := []struct {
		sentimento string
		nota       float64
	}{
		{"SUBALOCADO", 10},
		{"  subalocado  ", 10},
		{"Estou Satisfeito", 5},
		{"SUPERALOCADO", 1},
		{"tanto faz", 5},
		{"", 5},
	}

	for _, tt := range tests {
		m := model.Member{SentimentoCarga: model.NewOptString(tt.sentimento)}
		bemEstar := (tt.nota + 5.0) / 2
		assert.InDelta(t, (6.0+6.0+bemEstar)/3, Affinity(&m, "DSaaS"), 1e-9, "sentimento=%q", tt.sentimento)
	}
}

func TestAffinity_BoundedForWellFormedInputs(t *testing.T) {
	// Best possible member
	best := model.Member{
		SentimentoCarga: model.NewOptString("SUBALOCADO"),
		SaudeMental:     model.ParseOptFloat("10"),
		SatisfacaoPortfolio: map[string]model.OptFloat{
			"DSaaS": model.ParseOptFloat("5"),
		},
	}
	for i := range best.Projetos {
		best.Projetos[i].ValidacaoMedia = model.ParseOptFloat("5")
	}

	worst := model.Member{
		SentimentoCarga: model.NewOptString("SUPERALOCADO"),
		SaudeMental:     model.ParseOptFloat("0"),
		SatisfacaoPortfolio: map[string]model.OptFloat{
			"DSaaS": model.ParseOptFloat("0"),
		},
	}
	for i := range worst.Projetos {
		worst.Projetos[i].ValidacaoMedia = model.ParseOptFloat("0")
	}

	assert.LessOrEqual(t, Affinity(&best, "DSaaS"), 10.0)
	assert.GreaterOrEqual(t, Affinity(&worst, "DSaaS"), 0.0)
}

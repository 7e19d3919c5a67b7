package scoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Projetos-PJ/Modelo-PCP/pkg/core/model"
)

var inicioNovoProjeto = time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)

func diasDepois(dias int) model.OptDate {
	return model.DateOf(inicioNovoProjeto.AddDate(0, 0, dias))
}

func TestAvailability_NoCommitments(t *testing.T) {
	m := model.Member{Membro: "joao.silva", CargoNucleo: "Analista"}

	horas := Availability(&m, inicioNovoProjeto, DefaultPolicy())
	assert.Equal(t, HorasBase, horas)
}

func TestAvailability_OneMentorshipCostsFiveHours(t *testing.T) {
	base := model.Member{Membro: "joao.silva"}
	comAprendizagem := base
	comAprendizagem.Aprendizagens = model.ParseOptFloat("1")

	policy := DefaultPolicy()
	assert.Equal(t, Availability(&base, inicioNovoProjeto, policy)-5,
		Availability(&comAprendizagem, inicioNovoProjeto, policy))
}

func TestAvailability_AdvisoryCostsTenHours(t *testing.T) {
	m := model.Member{Assessorias: model.ParseOptFloat("2")}

	horas := Availability(&m, inicioNovoProjeto, DefaultPolicy())
	assert.Equal(t, 10.0, horas)
}

func TestAvailability_MalformedCountersAreFree(t *testing.T) {
	m := model.Member{
		Aprendizagens: model.ParseOptFloat("duas"),
		Assessorias:   model.ParseOptFloat("-"),
	}

	horas := Availability(&m, inicioNovoProjeto, DefaultPolicy())
	assert.Equal(t, HorasBase, horas)
}

func TestAvailability_InternalProjectsCostFiveEach(t *testing.T) {
	m := model.Member{}
	m.ProjetosInternos[0] = model.ProjetoInterno{
		Nome:   model.NewOptString("Capacitação"),
		Inicio: diasDepois(-30),
	}
	// Slot with a name but no start date does not count
	m.ProjetosInternos[1] = model.ProjetoInterno{
		Nome: model.NewOptString("Processos"),
	}

	horas := Availability(&m, inicioNovoProjeto, DefaultPolicy())
	assert.Equal(t, 25.0, horas)
}

func TestAvailability_HighLoadCargo(t *testing.T) {
	policy := DefaultPolicy()

	for _, cargo := range []string{"SDR", "hunter", "ANALISTA SENIOR", "Analista Sênior"} {
		m := model.Member{CargoNucleo: cargo}
		assert.Equal(t, 20.0, Availability(&m, inicioNovoProjeto, policy), "cargo=%s", cargo)
	}

	m := model.Member{CargoNucleo: "Analista"}
	assert.Equal(t, 30.0, Availability(&m, inicioNovoProjeto, policy))
}

func TestAvailability_EndDateBands(t *testing.T) {
	policy := DefaultPolicy()

	tests := []struct {
		name     string
		diasAte  int
		expected float64
	}{
		{"far end costs ten", 20, 20},
		{"band edge fifteen costs ten", 15, 20},
		{"mid band costs four", 10, 26},
		{"band edge fourteen costs four", 14, 26},
		{"imminent costs one", 7, 29},
		{"already ended costs one", -3, 29},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := model.Member{}
			m.Projetos[0] = model.ProjetoExterno{
				Nome:        model.NewOptString("Projeto Alfa"),
				FimPrevisto: diasDepois(tt.diasAte),
			}
			assert.Equal(t, tt.expected, Availability(&m, inicioNovoProjeto, policy))
		})
	}
}

func TestAvailability_EstimadoOverridesPrevisto(t *testing.T) {
	m := model.Member{}
	m.Projetos[0] = model.ProjetoExterno{
		Nome:        model.NewOptString("Projeto Alfa"),
		FimPrevisto: diasDepois(5),  // would cost 1h
		FimEstimado: diasDepois(30), // delayed, costs 10h
	}

	horas := Availability(&m, inicioNovoProjeto, DefaultPolicy())
	assert.Equal(t, 20.0, horas)
}

func TestAvailability_ProjectWithoutEndDate(t *testing.T) {
	m := model.Member{}
	m.Projetos[0] = model.ProjetoExterno{Nome: model.NewOptString("Projeto Sem Fim")}

	penalidade := DefaultPolicy()
	penalidade.SemDataFim = SemDataFimPenalidade
	assert.Equal(t, 20.0, Availability(&m, inicioNovoProjeto, penalidade))

	ignorar := DefaultPolicy()
	ignorar.SemDataFim = SemDataFimIgnorar
	assert.Equal(t, 30.0, Availability(&m, inicioNovoProjeto, ignorar))
}

func TestAvailability_LegacyBonusPolicy(t *testing.T) {
	policy := DefaultPolicy()
	policy.FimProjeto = FimProjetoBonusFimProximo

	tests := []struct {
		name     string
		diasAte  int
		expected float64
	}{
		{"far end flat cost", 20, 20},
		{"mid band earns six back", 10, 26},
		{"imminent earns all back", 5, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := model.Member{}
			m.Projetos[0] = model.ProjetoExterno{
				Nome:        model.NewOptString("Projeto Alfa"),
				FimPrevisto: diasDepois(tt.diasAte),
			}
			assert.Equal(t, tt.expected, Availability(&m, inicioNovoProjeto, policy))
		})
	}
}

func TestAvailability_CanGoNegative(t *testing.T) {
	m := model.Member{
		CargoNucleo:   "SDR",
		Aprendizagens: model.ParseOptFloat("3"),
		Assessorias:   model.ParseOptFloat("2"),
	}
	for i := range m.Projetos {
		m.Projetos[i] = model.ProjetoExterno{
			Nome:        model.NewOptString("Projeto"),
			FimPrevisto: diasDepois(60),
		}
	}

	horas := Availability(&m, inicioNovoProjeto, DefaultPolicy())
	// 30 - 15 - 20 - 10 - 40
	assert.Equal(t, -55.0, horas)
}

func TestAvailability_TimeOfDayDoesNotShiftBands(t *testing.T) {
	m := model.Member{}
	m.Projetos[0] = model.ProjetoExterno{
		Nome:        model.NewOptString("Projeto Alfa"),
		FimPrevisto: diasDepois(14),
	}

	lateStart := inicioNovoProjeto.Add(23 * time.Hour)
	assert.Equal(t, 26.0, Availability(&m, lateStart, DefaultPolicy()))
}

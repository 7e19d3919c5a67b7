package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFimEfetivo_EstimadoTakesPrecedence(t *testing.T) {
	previsto := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)
	estimado := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)

	p := ProjetoExterno{
		FimPrevisto: DateOf(previsto),
		FimEstimado: DateOf(estimado),
	}
	assert.Equal(t, estimado, p.FimEfetivo().Value())
}

func TestFimEfetivo_FallsBackToPrevisto(t *testing.T) {
	previsto := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)

	p := ProjetoExterno{FimPrevisto: DateOf(previsto)}
	assert.Equal(t, previsto, p.FimEfetivo().Value())
}

func TestFimEfetivo_Unresolvable(t *testing.T) {
	assert.False(t, ProjetoExterno{}.FimEfetivo().Present())
}

func TestSatisfacaoCom_UnknownPortfolio(t *testing.T) {
	m := Member{
		SatisfacaoPortfolio: map[string]OptFloat{
			"DSaaS": ParseOptFloat("4"),
		},
	}
	assert.True(t, m.SatisfacaoCom("DSaaS").Present())
	assert.False(t, m.SatisfacaoCom("Engenharia de Dados").Present())
}

func TestSatisfacaoCom_NilMap(t *testing.T) {
	m := Member{}
	assert.Equal(t, 3.0, m.SatisfacaoCom("DSaaS").Or(3.0))
}

func TestNomeFormatado(t *testing.T) {
	m := Member{Membro: "joao.silva"}
	assert.Equal(t, "Joao Silva", m.NomeFormatado())

	media := Member{Membro: "média.do.núcleo"}
	assert.Equal(t, "Média Do Núcleo", media.NomeFormatado())
}

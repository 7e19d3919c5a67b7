package scoring

import (
	"strings"

	"github.com/Projetos-PJ/Modelo-PCP/pkg/core/model"
)

const (
	// notaNeutra05 is the neutral default for the 0-5 scaled survey inputs
	// (portfolio satisfaction and technical validation).
	notaNeutra05 = 3.0

	// notaNeutra010 is the neutral default for the 0-10 well-being inputs.
	notaNeutra010 = 5.0
)

// sentimentoNotas maps the self-reported workload feeling to a 0-10 score.
// Unrecognized or missing answers stay neutral.
var sentimentoNotas = map[string]float64{
	"SUBALOCADO":       10,
	"ESTOU SATISFEITO": 5,
	"SUPERALOCADO":     1,
}

// Affinity computes the 0-10 suitability score of a member for a project in
// the given portfolio: the mean of portfolio satisfaction (x2), technical
// capacity (x2) and well-being.
func Affinity(m *model.Member, portfolio string) float64 {
	satisfacao := m.SatisfacaoCom(portfolio).Or(notaNeutra05) * 2

	capacidade := capacidadeTecnica(m) * 2

	bemEstar := (notaSentimento(m) + m.SaudeMental.Or(notaNeutra010)) / 2

	return (satisfacao + capacidade + bemEstar) / 3
}

// capacidadeTecnica averages the "Validação média" ratings across the
// member's project slots, defaulting to neutral when none is present.
func capacidadeTecnica(m *model.Member) float64 {
	sum := 0.0
	count := 0
	for _, projeto := range m.Projetos {
		if projeto.ValidacaoMedia.Present() {
			sum += projeto.ValidacaoMedia.Value()
			count++
		}
	}
	if count == 0 {
		return notaNeutra05
	}
	return sum / float64(count)
}

func notaSentimento(m *model.Member) float64 {
	sentimento := strings.ToUpper(strings.TrimSpace(m.SentimentoCarga.Or("")))
	if nota, ok := sentimentoNotas[sentimento]; ok {
		return nota
	}
	return notaNeutra010
}

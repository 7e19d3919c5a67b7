package model

import (
	"strings"
	"unicode"
)

// Member is one roster row: a person within a núcleo with their current
// commitments and survey answers. Field names mirror the Portuguese column
// headers of the "PCP Auto" spreadsheet.
type Member struct {
	Membro      string
	CargoNucleo string

	// Up to 4 external (client) project slots
	Projetos [4]ProjetoExterno

	// Up to 3 internal project slots
	ProjetosInternos [3]ProjetoInterno

	// "N° Aprendizagens" / "N° Assessorias"
	Aprendizagens OptFloat
	Assessorias   OptFloat

	// Activity flags ("Cargo WI" / "Cargo MKT")
	CargoWI  OptString
	CargoMKT OptString

	// "Como se sente em relação à carga" (subalocado/satisfeito/superalocado)
	SentimentoCarga OptString

	// "Saúde mental na PJ" (0-10 self rating)
	SaudeMental OptFloat

	// "Satisfação com o Portfólio: <nome>" columns, keyed by portfolio name
	SatisfacaoPortfolio map[string]OptFloat
}

// ProjetoExterno is one external project slot. The slot is active only when
// Nome is present.
type ProjetoExterno struct {
	Nome           OptString
	InicioPrevisto OptDate
	InicioReal     OptDate
	FimPrevisto    OptDate // "Fim previsto do Projeto i (sem atraso)"
	FimEstimado    OptDate // "Fim estimado do Projeto i (com atraso)"
	ValidacaoMedia OptFloat
	Satisfacao     OptFloat
}

// FimEfetivo resolves the effective end date of the slot: the estimated end
// (with delay) takes precedence over the planned end (without delay).
func (p ProjetoExterno) FimEfetivo() OptDate {
	if p.FimEstimado.Present() {
		return p.FimEstimado
	}
	return p.FimPrevisto
}

// ProjetoInterno is one internal project slot.
type ProjetoInterno struct {
	Nome   OptString
	Inicio OptDate
	Fim    OptDate
}

// SatisfacaoCom looks up the member's satisfaction rating for a portfolio.
// Unknown portfolios resolve to an absent value.
func (m *Member) SatisfacaoCom(portfolio string) OptFloat {
	if m.SatisfacaoPortfolio == nil {
		return OptFloat{}
	}
	return m.SatisfacaoPortfolio[portfolio]
}

// NomeFormatado renders the dotted lowercase member name for display,
// e.g. "joao.silva" becomes "Joao Silva".
func (m *Member) NomeFormatado() string {
	parts := strings.Split(m.Membro, ".")
	for i, part := range parts {
		runes := []rune(part)
		if len(runes) == 0 {
			continue
		}
		runes[0] = unicode.ToUpper(runes[0])
		parts[i] = string(runes)
	}
	return strings.Join(parts, " ")
}

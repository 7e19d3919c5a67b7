package sheetsclient

import (
	"fmt"
	"strings"

	"github.com/Projetos-PJ/Modelo-PCP/internal/config"
	"github.com/Projetos-PJ/Modelo-PCP/pkg/core/model"
	"github.com/Projetos-PJ/Modelo-PCP/pkg/utils/texto"
)

// satisfacaoPortfolioPrefix marks the per-portfolio satisfaction columns.
const satisfacaoPortfolioPrefix = "Satisfação com o Portfólio: "

// emailColumn is dropped during parsing, mirroring the sheet's privacy rule.
const emailColumn = "Email PJ"

// ListMembers retrieves and parses the roster tab of one núcleo from the
// configured spreadsheet. Members holding an excluded cargo are filtered out
// before the roster is returned.
func (c *Client) ListMembers(cfg *config.Config, nucleo string) ([]model.Member, error) {
	if !isKnownNucleo(cfg, nucleo) {
		return nil, fmt.Errorf("unknown núcleo %q", nucleo)
	}

	values, err := c.GetValues(cfg.SpreadsheetID, nucleo)
	if err != nil {
		return nil, fmt.Errorf("failed to get roster data for %s: %w", nucleo, err)
	}

	if len(values) == 0 {
		return nil, fmt.Errorf("roster tab %s is empty", nucleo)
	}

	members, err := parseMembers(values)
	if err != nil {
		return nil, fmt.Errorf("failed to parse roster for %s: %w", nucleo, err)
	}

	return filterExcludedCargos(members, cfg.CargosExcluidos), nil
}

func isKnownNucleo(cfg *config.Config, nucleo string) bool {
	for _, n := range cfg.Nucleos {
		if n == nucleo {
			return true
		}
	}
	return false
}

// parseMembers converts raw spreadsheet data into Member records.
func parseMembers(raw [][]interface{}) ([]model.Member, error) {
	if len(raw) < 1 {
		return nil, fmt.Errorf("no header row found")
	}

	// Build column index map from the header row. Unlike the fixed-layout
	// sheets, roster tabs vary per núcleo, so every header is indexed.
	columnIndexes := make(map[string]int)
	var portfolioColumns []string

	for i, cell := range raw[0] {
		header, ok := cell.(string)
		if !ok {
			continue
		}
		header = strings.TrimSpace(header)
		if header == "" || header == emailColumn {
			continue
		}
		columnIndexes[header] = i
		if strings.HasPrefix(header, satisfacaoPortfolioPrefix) {
			portfolioColumns = append(portfolioColumns, header)
		}
	}

	if _, ok := columnIndexes["Membro"]; !ok {
		return nil, fmt.Errorf("missing required column: Membro")
	}

	// Helper to get a raw cell value from a row by column name.
	getCell := func(column string, row []interface{}) string {
		index, ok := columnIndexes[column]
		if !ok || index >= len(row) {
			return ""
		}
		if str, ok := row[index].(string); ok {
			return str
		}
		return ""
	}

	members := make([]model.Member, 0, len(raw)-1)
	for i := 1; i < len(raw); i++ {
		row := raw[i]

		membro := model.NewOptString(getCell("Membro", row))
		// Skip rows with no member name
		if !membro.Present() {
			continue
		}

		member := model.Member{
			Membro:          membro.Value(),
			CargoNucleo:     model.NewOptString(getCell("Cargo no núcleo", row)).Or(""),
			Aprendizagens:   model.ParseOptFloat(getCell("N° Aprendizagens", row)),
			Assessorias:     model.ParseOptFloat(getCell("N° Assessorias", row)),
			CargoWI:         model.NewOptString(getCell("Cargo WI", row)),
			CargoMKT:        model.NewOptString(getCell("Cargo MKT", row)),
			SentimentoCarga: model.NewOptString(getCell("Como se sente em relação à carga", row)),
			SaudeMental:     model.ParseOptFloat(getCell("Saúde mental na PJ", row)),
		}

		for p := range member.Projetos {
			n := p + 1
			member.Projetos[p] = model.ProjetoExterno{
				Nome:           model.NewOptString(getCell(fmt.Sprintf("Projeto %d", n), row)),
				InicioPrevisto: model.ParseOptDate(getCell(fmt.Sprintf("Início previsto Projeto %d", n), row)),
				InicioReal:     model.ParseOptDate(getCell(fmt.Sprintf("Início Real Projeto %d", n), row)),
				FimPrevisto:    model.ParseOptDate(getCell(fmt.Sprintf("Fim previsto do Projeto %d (sem atraso)", n), row)),
				FimEstimado:    model.ParseOptDate(getCell(fmt.Sprintf("Fim estimado do Projeto %d (com atraso)", n), row)),
				ValidacaoMedia: model.ParseOptFloat(getCell(fmt.Sprintf("Validação média do Projeto %d", n), row)),
				Satisfacao:     model.ParseOptFloat(getCell(fmt.Sprintf("Satisfação com o Projeto %d", n), row)),
			}
		}

		for p := range member.ProjetosInternos {
			n := p + 1
			member.ProjetosInternos[p] = model.ProjetoInterno{
				Nome:   model.NewOptString(getCell(fmt.Sprintf("Projeto Interno %d", n), row)),
				Inicio: model.ParseOptDate(getCell(fmt.Sprintf("Início do Projeto Interno %d", n), row)),
				Fim:    model.ParseOptDate(getCell(fmt.Sprintf("Fim do Projeto Interno %d", n), row)),
			}
		}

		if len(portfolioColumns) > 0 {
			member.SatisfacaoPortfolio = make(map[string]model.OptFloat, len(portfolioColumns))
			for _, column := range portfolioColumns {
				portfolio := strings.TrimPrefix(column, satisfacaoPortfolioPrefix)
				member.SatisfacaoPortfolio[portfolio] = model.ParseOptFloat(getCell(column, row))
			}
		}

		members = append(members, member)
	}

	return members, nil
}

func filterExcludedCargos(members []model.Member, cargosExcluidos []string) []model.Member {
	excluded := make(map[string]bool, len(cargosExcluidos))
	for _, cargo := range cargosExcluidos {
		excluded[texto.Normalizar(cargo)] = true
	}

	filtered := make([]model.Member, 0, len(members))
	for _, m := range members {
		if excluded[texto.Normalizar(m.CargoNucleo)] {
			continue
		}
		filtered = append(filtered, m)
	}
	return filtered
}

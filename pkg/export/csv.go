// Package export writes ranking evaluations to CSV files for sharing outside
// the CLI. Files use ';' separators and comma decimals, the convention the
// núcleos' spreadsheets already follow.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"

	"github.com/Projetos-PJ/Modelo-PCP/pkg/core/scoring"
)

// RankedRow is one CSV line of an exported ranking.
type RankedRow struct {
	Membro              string `csv:"membro"`
	Cargo               string `csv:"cargo"`
	Disponibilidade     string `csv:"disponibilidade_horas"`
	Afinidade           string `csv:"afinidade"`
	NotaDisponibilidade string `csv:"nota_disponibilidade"`
	NotaFinal           string `csv:"nota_final"`
	Alocacoes           int    `csv:"alocacoes"`
}

// RankingToCSVFile writes the ranked cohort plus the núcleo-average row to a
// CSV file at path.
func RankingToCSVFile(rows []scoring.ScoredMember, media scoring.ScoredMember, path string) error {
	out := make([]RankedRow, 0, len(rows)+1)
	for _, row := range rows {
		out = append(out, toRankedRow(row))
	}
	out = append(out, toRankedRow(media))

	return toCSVFile(out, path)
}

func toRankedRow(s scoring.ScoredMember) RankedRow {
	return RankedRow{
		Membro:              s.Member.Membro,
		Cargo:               s.Member.CargoNucleo,
		Disponibilidade:     formatDecimal(s.Disponibilidade),
		Afinidade:           formatDecimal(s.Afinidade),
		NotaDisponibilidade: formatDecimal(s.NotaDisponibilidade),
		NotaFinal:           formatDecimal(s.NotaFinal),
		Alocacoes:           s.Alocacoes,
	}
}

// formatDecimal renders a score with the comma decimal separator the
// spreadsheets use.
func formatDecimal(v float64) string {
	return strings.ReplaceAll(strconv.FormatFloat(v, 'f', 2, 64), ".", ",")
}

func toCSVFile(in interface{}, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating CSV file(%s):%q", path, err)
	}
	defer f.Close()

	csvWriter := csv.NewWriter(f)
	csvWriter.Comma = ';'
	csvWriter.UseCRLF = true

	return gocsv.MarshalCSV(in, csvWriter)
}

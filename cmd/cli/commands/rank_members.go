package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Projetos-PJ/Modelo-PCP/pkg/core/model"
	"github.com/Projetos-PJ/Modelo-PCP/pkg/core/scoring"
	"github.com/Projetos-PJ/Modelo-PCP/pkg/core/services"
	"github.com/Projetos-PJ/Modelo-PCP/pkg/export"
)

// RankMembersCmd creates the rankMembers command
func RankMembersCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rankMembers <nucleo>",
		Short: "Rank members of a núcleo for a new project",
		Long:  "Compute Disponibilidade, Afinidade and Nota Final for every member of a núcleo and list them ranked for the new project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nucleo := args[0]
			portfolio, _ := cmd.Flags().GetString("portfolio")
			inicioStr, _ := cmd.Flags().GetString("inicio")
			pesoDisp, _ := cmd.Flags().GetFloat64("peso-disp")
			pesoAfin, _ := cmd.Flags().GetFloat64("peso-afin")
			analistas, _ := cmd.Flags().GetStringSlice("analistas")
			exportPath, _ := cmd.Flags().GetString("export")

			inicio := time.Now()
			if inicioStr != "" {
				parsed, err := time.Parse(model.DateLayout, inicioStr)
				if err != nil {
					return fmt.Errorf("invalid --inicio date %q (expected dd/mm/yyyy): %w", inicioStr, err)
				}
				inicio = parsed
			}

			weights := app.Cfg.Weights()
			if cmd.Flags().Changed("peso-disp") {
				weights.Disponibilidade = pesoDisp
			}
			if cmd.Flags().Changed("peso-afin") {
				weights.Afinidade = pesoAfin
			}

			app.Logger.Debug("rankMembers command",
				zap.String("nucleo", nucleo),
				zap.String("portfolio", portfolio),
				zap.String("inicio", inicio.Format(model.DateLayout)))

			result, err := services.RankMembers(app.Ctx, app.Roster, app.Cfg, app.Logger, services.RankMembersParams{
				Nucleo:            nucleo,
				Portfolio:         portfolio,
				InicioNovoProjeto: inicio,
				Weights:           weights,
				Analistas:         analistas,
			})
			if err != nil {
				return fmt.Errorf("ranking failed: %w", err)
			}

			// Display header
			fmt.Printf("\n🎯 Membros Sugeridos para o Projeto\n\n")
			fmt.Printf("Núcleo:     %s\n", result.Nucleo)
			if result.Portfolio != "" {
				fmt.Printf("Portfólio:  %s\n", result.Portfolio)
			}
			fmt.Printf("Início:     %s\n", inicio.Format(model.DateLayout))
			fmt.Printf("Pesos:      disponibilidade %.2f / afinidade %.2f\n", result.Weights.Disponibilidade, result.Weights.Afinidade)
			if result.WeightsAdjusted {
				fmt.Printf("⚠️  Os pesos informados não somavam 1.0 e foram renormalizados.\n")
			}
			fmt.Println()

			if len(result.Rows) == 0 {
				fmt.Println("Nenhum membro corresponde aos filtros selecionados.")
				return nil
			}

			printRankingTable(result.Rows, result.Media)

			if exportPath != "" {
				if err := export.RankingToCSVFile(result.Rows, result.Media, exportPath); err != nil {
					return fmt.Errorf("failed to export ranking: %w", err)
				}
				app.Logger.Info("Ranking exported",
					zap.String("evaluation_id", result.EvaluationID),
					zap.String("path", exportPath))
				fmt.Printf("\n💾 Ranking exportado para %s\n", exportPath)
			}

			return nil
		},
	}

	cmd.Flags().String("portfolio", "", "Portfolio scope for affinity lookups")
	cmd.Flags().String("inicio", "", "Start date of the new project (dd/mm/yyyy, default today)")
	cmd.Flags().Float64("peso-disp", 0.5, "Weight of Nota Disponibilidade in the final score (0.3-0.7)")
	cmd.Flags().Float64("peso-afin", 0.5, "Weight of Afinidade in the final score (0.3-0.7)")
	cmd.Flags().StringSlice("analistas", nil, "Restrict output to these members (dotted names)")
	cmd.Flags().String("export", "", "Write the ranking to a CSV file at this path")

	return cmd
}

func printRankingTable(rows []scoring.ScoredMember, media scoring.ScoredMember) {
	// ANSI color codes
	const (
		colorReset  = "\033[0m"
		colorGreen  = "\033[32m"
		colorYellow = "\033[33m"
		colorRed    = "\033[31m"
		colorBold   = "\033[1m"
	)

	nameColWidth := len("Membro")
	for _, row := range rows {
		if l := len(row.Member.NomeFormatado()); l > nameColWidth {
			nameColWidth = l
		}
	}
	if l := len(media.Member.NomeFormatado()); l > nameColWidth {
		nameColWidth = l
	}
	nameColWidth += 2

	fmt.Printf("%s%-*s  %14s  %9s  %10s  %10s%s\n",
		colorBold,
		nameColWidth, "Membro",
		"Disponib. (h)",
		"Afinidade",
		"Nota Disp.",
		"Nota Final",
		colorReset)
	fmt.Printf("%s  %s  %s  %s  %s\n",
		strings.Repeat("-", nameColWidth),
		strings.Repeat("-", 14),
		strings.Repeat("-", 9),
		strings.Repeat("-", 10),
		strings.Repeat("-", 10))

	printRow := func(row scoring.ScoredMember) {
		notaColor := colorRed
		switch {
		case row.NotaFinal >= 7:
			notaColor = colorGreen
		case row.NotaFinal >= 4:
			notaColor = colorYellow
		}
		fmt.Printf("%-*s  %14.2f  %9.2f  %10.2f  %s%10.2f%s\n",
			nameColWidth, row.Member.NomeFormatado(),
			row.Disponibilidade,
			row.Afinidade,
			row.NotaDisponibilidade,
			notaColor, row.NotaFinal, colorReset)
	}

	for _, row := range rows {
		printRow(row)
	}

	// Reference row, not part of the ranking
	fmt.Println()
	printRow(media)
}

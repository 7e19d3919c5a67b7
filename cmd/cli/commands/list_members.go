package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Projetos-PJ/Modelo-PCP/pkg/core/services"
)

// ListMembersCmd creates the listMembers command
func ListMembersCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "listMembers <nucleo>",
		Short: "List the consolidated roster of a núcleo",
		Long:  "Show every member of a núcleo with their allocation count, optionally filtered by cargo, member name or allocation bucket",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nucleo := args[0]
			cargo, _ := cmd.Flags().GetString("cargo")
			membro, _ := cmd.Flags().GetString("membro")
			alocacoes, _ := cmd.Flags().GetString("alocacoes")

			app.Logger.Debug("listMembers command",
				zap.String("nucleo", nucleo),
				zap.String("cargo", cargo),
				zap.String("membro", membro),
				zap.String("alocacoes", alocacoes))

			result, err := services.ListMembers(app.Ctx, app.Roster, app.Cfg, app.Logger, services.ListMembersParams{
				Nucleo:    nucleo,
				Cargo:     cargo,
				Membro:    membro,
				Alocacoes: alocacoes,
			})
			if err != nil {
				return fmt.Errorf("failed to list members: %w", err)
			}

			if len(result.Rows) == 0 {
				fmt.Printf("\nNenhum membro encontrado para o núcleo %s com os filtros selecionados.\n", result.Nucleo)
				return nil
			}

			fmt.Printf("\nBase Consolidada — %s (%d membros)\n\n", result.Nucleo, len(result.Rows))
			for _, row := range result.Rows {
				cargoInfo := row.Member.CargoNucleo
				if cargoInfo == "" {
					cargoInfo = "—"
				}
				fmt.Printf("- %s (%s) - %s - %s\n",
					row.Member.NomeFormatado(),
					row.Member.Membro,
					cargoInfo,
					row.Bucket,
				)
			}

			return nil
		},
	}

	cmd.Flags().String("cargo", "", "Filter by cargo no núcleo")
	cmd.Flags().String("membro", "", "Filter by member name (dotted)")
	cmd.Flags().String("alocacoes", "", `Filter by allocation bucket ("Desalocado" ... "4+ Alocações")`)

	return cmd
}

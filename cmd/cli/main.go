package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Projetos-PJ/Modelo-PCP/cmd/cli/commands"
	"github.com/Projetos-PJ/Modelo-PCP/internal/config"
	"github.com/Projetos-PJ/Modelo-PCP/pkg/clients/sheetsclient"
	"github.com/Projetos-PJ/Modelo-PCP/pkg/core/model"
	"github.com/Projetos-PJ/Modelo-PCP/pkg/roster"
	"github.com/Projetos-PJ/Modelo-PCP/pkg/utils/logging"
)

var (
	env        string
	configPath string
	app        *commands.AppContext
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "pcp",
		Short: "PCP Auto CLI - Staffing allocation for núcleo rosters",
		Long:  `A CLI tool for the PCP Auto roster: consolidated allocation views and ranked member suggestions for new projects.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app != nil && app.Logger != nil {
				app.Logger.Sync()
			}
		},
	}

	// Add persistent environment flag
	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment (required: test, prod, etc.)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to pcp_config.yaml (default: search cwd then home)")
	rootCmd.MarkPersistentFlagRequired("env")

	// Add all commands
	rootCmd.AddCommand(commands.RankMembersCmd(appRef()))
	rootCmd.AddCommand(commands.ListMembersCmd(appRef()))
	rootCmd.AddCommand(commands.InteractiveCmd(appRef()))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// appRef returns the shared AppContext. Commands are constructed before
// initApp runs, so they hold the pointer and read its fields lazily.
func appRef() *commands.AppContext {
	if app == nil {
		app = &commands.AppContext{}
	}
	return app
}

// initApp sets up logger, config, sheets client and roster store
func initApp() error {
	appCtx := appRef()
	appCtx.Ctx = context.Background()

	// Initialize logger
	logger, err := logging.InitLogger(env)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	appCtx.Logger = logger

	logger.Info("Starting application", zap.String("environment", env))

	// Load configuration
	logger.Info("Loading configuration")
	if configPath != "" {
		appCtx.Cfg, err = config.LoadFromPath(configPath)
	} else {
		appCtx.Cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logger.Debug("Configuration loaded successfully")

	// Initialize sheets client
	logger.Info("Initializing sheets client")
	sheetsClient, err := sheetsclient.NewClient(appCtx.Ctx, appCtx.Cfg.CredentialsFile)
	if err != nil {
		return fmt.Errorf("failed to create sheets client: %w", err)
	}
	logger.Debug("Sheets client initialized successfully")

	// Initialize roster store on top of the sheets client
	source := roster.SourceFunc(func(ctx context.Context, nucleo string) ([]model.Member, error) {
		return sheetsClient.ListMembers(appCtx.Cfg, nucleo)
	})
	appCtx.Roster = roster.NewStore(source, appCtx.Cfg.CacheTTL(), logger)
	logger.Info("Roster store initialized",
		zap.Duration("cache_ttl", appCtx.Cfg.CacheTTL()),
		zap.Strings("nucleos", appCtx.Cfg.Nucleos))

	return nil
}

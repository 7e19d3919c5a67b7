package commands

import (
	"context"

	"go.uber.org/zap"

	"github.com/Projetos-PJ/Modelo-PCP/internal/config"
	"github.com/Projetos-PJ/Modelo-PCP/pkg/roster"
)

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Cfg    *config.Config
	Roster *roster.Store
	Logger *zap.Logger
	Ctx    context.Context
}

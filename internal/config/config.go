package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/Projetos-PJ/Modelo-PCP/pkg/core/scoring"
)

// PolicyConfig selects between the business-rule variants that changed across
// revisions of the planning sheet (see pkg/core/scoring policies).
type PolicyConfig struct {
	FimProjeto string `yaml:"fimProjeto,omitempty" validate:"omitempty,oneof=penalizar-restante bonus-fim-proximo"`
	SemDataFim string `yaml:"semDataFim,omitempty" validate:"omitempty,oneof=penalidade ignorar"`
	Contagem   string `yaml:"contagemProjetos,omitempty" validate:"omitempty,oneof=presenca data-fim"`
}

// Config represents the application configuration
type Config struct {
	SpreadsheetID   string `yaml:"spreadsheetID" validate:"required"`
	CredentialsFile string `yaml:"credentialsFile" validate:"required"`

	// Nucleos lists the spreadsheet tabs, one per organizational unit.
	Nucleos []string `yaml:"nucleos" validate:"required,min=1"`

	// Portfolios maps each núcleo to its portfolio scopes.
	Portfolios map[string][]string `yaml:"portfolios,omitempty"`

	// CargosExcluidos are roles removed from the roster before any scoring.
	CargosExcluidos []string `yaml:"cargosExcluidos,omitempty"`

	// CargosAltaCarga are roles carrying the standing availability penalty.
	CargosAltaCarga []string `yaml:"cargosAltaCarga,omitempty"`

	// CacheTTLHours controls how long roster snapshots are reused.
	CacheTTLHours int `yaml:"cacheTTLHours,omitempty" validate:"omitempty,min=1"`

	PesoDisponibilidade float64 `yaml:"pesoDisponibilidade,omitempty" validate:"omitempty,min=0.3,max=0.7"`
	PesoAfinidade       float64 `yaml:"pesoAfinidade,omitempty" validate:"omitempty,min=0.3,max=0.7"`

	Politicas PolicyConfig `yaml:"politicas,omitempty"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Load loads and validates the configuration from pcp_config.yaml.
// It looks for the config file in the current directory first, then in the
// user's home directory.
func Load() (*Config, error) {
	configPath, err := findConfigFile()
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.applyDefaults()

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration struct
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

func (c *Config) applyDefaults() {
	if len(c.CargosExcluidos) == 0 {
		c.CargosExcluidos = DefaultCargosExcluidos()
	}
	if len(c.CargosAltaCarga) == 0 {
		c.CargosAltaCarga = scoring.DefaultCargosAltaCarga()
	}
	if c.CacheTTLHours == 0 {
		c.CacheTTLHours = 24
	}
	if c.PesoDisponibilidade == 0 {
		c.PesoDisponibilidade = 0.5
	}
	if c.PesoAfinidade == 0 {
		c.PesoAfinidade = 0.5
	}
}

// DefaultCargosExcluidos returns the leadership and commercial roles removed
// from the roster before scoring.
func DefaultCargosExcluidos() []string {
	return []string{
		"Liderança de Outbound",
		"Coordenador de Negócios",
		"Coordenador de Inovação Comercial",
		"Gerente Comercial",
		"Coordenador de Projetos",
		"Coordenador de Inovação de Projetos",
		"Gerente de Projetos",
	}
}

// CacheTTL returns the roster cache window as a duration.
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLHours) * time.Hour
}

// Policy materializes the configured rule variants for the calculators.
func (c *Config) Policy() scoring.Policy {
	policy := scoring.DefaultPolicy()
	policy.CargosAltaCarga = c.CargosAltaCarga

	if c.Politicas.FimProjeto != "" {
		policy.FimProjeto = scoring.FimProjetoPolicy(c.Politicas.FimProjeto)
	}
	if c.Politicas.SemDataFim != "" {
		policy.SemDataFim = scoring.SemDataFimPolicy(c.Politicas.SemDataFim)
	}
	if c.Politicas.Contagem != "" {
		policy.Contagem = scoring.ContagemPolicy(c.Politicas.Contagem)
	}
	return policy
}

// Weights returns the configured default weight pair.
func (c *Config) Weights() scoring.Weights {
	return scoring.Weights{
		Disponibilidade: c.PesoDisponibilidade,
		Afinidade:       c.PesoAfinidade,
	}
}

// PortfoliosFor returns the portfolio scopes configured for a núcleo.
func (c *Config) PortfoliosFor(nucleo string) []string {
	if c.Portfolios == nil {
		return nil
	}
	return c.Portfolios[nucleo]
}

// findConfigFile searches for pcp_config.yaml in current directory and home directory
func findConfigFile() (string, error) {
	configFileName := "pcp_config.yaml"

	// Check current directory
	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	// Check home directory
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, configFileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", fmt.Errorf("config file not found in current directory or home directory")
}

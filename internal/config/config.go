package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"dcf-valuation/internal/model"

	"gopkg.in/yaml.v3"
)

// DefaultDraws is used when the simulation block omits a draw count.
const DefaultDraws = 10000

// Config is the on-disk configuration shape (YAML).
type Config struct {
	// Optional: load the company profile from a separate YAML (e.g.
	// examples/companies/*.yaml). If both CompanyFile and Company are
	// provided, non-zero Company fields override the file.
	CompanyFile string           `yaml:"company_file"`
	Company     CompanyConfig    `yaml:"company"`
	Scenario    ScenarioConfig   `yaml:"scenario"`
	Simulation  SimulationConfig `yaml:"simulation"`
}

type CompanyConfig struct {
	Name              string  `yaml:"name"`
	InitialFCF        float64 `yaml:"initial_fcf"`
	NetDebt           float64 `yaml:"net_debt"`
	SharesOutstanding float64 `yaml:"shares_outstanding"`
	ExplicitYears     int     `yaml:"explicit_years"`
}

// ScenarioConfig holds the deterministic base-case rates, as fractions.
type ScenarioConfig struct {
	InitialGrowth  float64 `yaml:"initial_growth"`
	StepDownGrowth float64 `yaml:"step_down_growth"`
	WACC           float64 `yaml:"wacc"`
	TerminalGrowth float64 `yaml:"terminal_growth"`
}

// SimulationConfig holds the Monte Carlo distribution and run parameters.
// The WACC and terminal growth means are taken from the scenario block.
type SimulationConfig struct {
	WACCStdev   float64 `yaml:"wacc_stdev"`
	GrowthStdev float64 `yaml:"growth_stdev"`
	Draws       int     `yaml:"draws"`
	Seed        int64   `yaml:"seed"`
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	// If draws is not provided, default it. This keeps configs concise.
	if c.Simulation.Draws == 0 {
		c.Simulation.Draws = DefaultDraws
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	// If company_file is set, load it and merge in any explicit overrides
	// from c.Company.
	if c.CompanyFile != "" {
		companyPath := c.CompanyFile
		if !filepath.IsAbs(companyPath) {
			// Prefer interpreting relative paths as relative to the config file
			// directory, but fall back to the provided path (relative to cwd)
			// if that doesn't exist.
			cand := filepath.Join(filepath.Dir(path), companyPath)
			if _, err := os.Stat(cand); err == nil {
				companyPath = cand
			}
		}
		loaded, err := loadCompanyFile(companyPath)
		if err != nil {
			return nil, err
		}
		c.Company = MergeCompany(loaded, c.Company)
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	// Validate the company block by constructing a model.CompanyProfile.
	if _, err := c.Company.ToProfile(); err != nil {
		return fmt.Errorf("company config invalid: %w", err)
	}
	if c.Scenario.WACC <= c.Scenario.TerminalGrowth {
		return fmt.Errorf("scenario.wacc (%.4f) must exceed scenario.terminal_growth (%.4f)",
			c.Scenario.WACC, c.Scenario.TerminalGrowth)
	}
	if c.Simulation.Draws <= 0 {
		return errors.New("simulation.draws must be > 0")
	}
	return nil
}

func (cc CompanyConfig) ToProfile() (model.CompanyProfile, error) {
	return model.NewCompanyProfile(cc.Name, cc.InitialFCF, cc.NetDebt, cc.SharesOutstanding, cc.ExplicitYears)
}

type companyFileWrapper struct {
	Company CompanyConfig `yaml:"company"`
}

func loadCompanyFile(path string) (CompanyConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return CompanyConfig{}, err
	}
	var w companyFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return CompanyConfig{}, err
	}
	return w.Company, nil
}

// MergeCompany overlays non-zero fields from override onto base. Used when
// loading a company file and then applying overrides from the config or an
// API request.
func MergeCompany(base, override CompanyConfig) CompanyConfig {
	out := base
	if override.Name != "" {
		out.Name = override.Name
	}
	if override.InitialFCF != 0 {
		out.InitialFCF = override.InitialFCF
	}
	if override.NetDebt != 0 {
		out.NetDebt = override.NetDebt
	}
	if override.SharesOutstanding != 0 {
		out.SharesOutstanding = override.SharesOutstanding
	}
	if override.ExplicitYears != 0 {
		out.ExplicitYears = override.ExplicitYears
	}
	return out
}

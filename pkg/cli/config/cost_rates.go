package config

import (
	"log/slog"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/holodeck/pkg/domain/model"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// CostRates holds the location of the cost rate file
type CostRates struct {
	Path string
}

// costRatesFile is the YAML layout of a cost rate file
type costRatesFile struct {
	// Defaults are keyed by property FQN and replace the built-in defaults
	Defaults map[string]float64 `yaml:"defaults"`
	Rates    []model.CostRate   `yaml:"rates"`
}

// Flags returns CLI flags for CostRates configuration
func (c *CostRates) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "cost-rates",
			Usage:       "YAML file of per-unit resource costs (if not set, built-in rates are used)",
			Category:    "Resources",
			Sources:     cli.EnvVars("HOLODECK_COST_RATES"),
			Destination: &c.Path,
		},
	}
}

// Configure loads the cost rates
func (c *CostRates) Configure() (*model.CostRates, error) {
	if c.Path == "" {
		return model.NewCostRates(nil), nil
	}
	return LoadCostRatesFromFile(c.Path)
}

// LoadCostRatesFromFile loads cost rates from a YAML file
func LoadCostRatesFromFile(path string) (*model.CostRates, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(err, "cost rate file not found", goerr.V("path", path))
		}
		return nil, goerr.Wrap(err, "failed to read cost rate file", goerr.V("path", path))
	}

	var file costRatesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, goerr.Wrap(err, "failed to parse cost rate file", goerr.V("path", path))
	}

	for fqn, rate := range file.Defaults {
		if rate < 0 {
			return nil, goerr.New("cost rate must not be negative",
				goerr.V("path", path),
				goerr.V("fqn", fqn),
				goerr.V("rate", rate))
		}
	}

	rates, err := model.NewCostRates(file.Defaults).With(file.Rates)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid cost rate file", goerr.V("path", path))
	}
	return rates, nil
}

// LogValue returns structured log value
func (c CostRates) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("path", c.Path),
	)
}

package config

import (
	"log/slog"
	"net/url"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/holodeck/pkg/service/lattice"
	"github.com/urfave/cli/v3"
)

// Lattice holds the data service configuration
type Lattice struct {
	URL     string
	Timeout time.Duration
	Debug   bool
}

// Flags returns CLI flags for Lattice configuration
func (l *Lattice) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "lattice-url",
			Usage:       "Base URL of the data, search and analysis API",
			Category:    "Data service",
			Value:       "https://api.openlattice.com",
			Sources:     cli.EnvVars("HOLODECK_LATTICE_URL"),
			Destination: &l.URL,
		},
		&cli.DurationFlag{
			Name:        "lattice-timeout",
			Usage:       "Timeout of one data service call",
			Category:    "Data service",
			Value:       lattice.DefaultTimeout,
			Sources:     cli.EnvVars("HOLODECK_LATTICE_TIMEOUT"),
			Destination: &l.Timeout,
		},
		&cli.BoolFlag{
			Name:        "lattice-debug",
			Usage:       "Log failed data service responses in full",
			Category:    "Data service",
			Sources:     cli.EnvVars("HOLODECK_LATTICE_DEBUG"),
			Destination: &l.Debug,
		},
	}
}

// Configure creates the data service client
func (l *Lattice) Configure() (*lattice.Client, error) {
	u, err := url.Parse(l.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, goerr.New("invalid data service URL", goerr.V("url", l.URL))
	}
	if l.Timeout <= 0 {
		return nil, goerr.New("data service timeout must be positive", goerr.V("timeout", l.Timeout))
	}

	return lattice.New(l.URL,
		lattice.WithTimeout(l.Timeout),
		lattice.WithDebug(l.Debug),
	), nil
}

// LogValue returns structured log value
func (l Lattice) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("url", l.URL),
		slog.Duration("timeout", l.Timeout),
		slog.Bool("debug", l.Debug),
	)
}

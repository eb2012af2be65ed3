package main

import (
	"io"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/vsinha/inventory/pkg/application/services"
	"github.com/vsinha/inventory/pkg/config"
	"github.com/vsinha/inventory/pkg/infrastructure/events"
	"github.com/vsinha/inventory/pkg/infrastructure/logging"
	"github.com/vsinha/inventory/pkg/infrastructure/repositories/csv"
	"github.com/vsinha/inventory/pkg/infrastructure/repositories/memory"
	"github.com/vsinha/inventory/pkg/interfaces/cli/commands"
)

const (
	flagFormat        = "format"
	flagSeed          = "seed"
	flagNamePolicy    = "name-policy"
	flagMaxNameLength = "max-name-length"
	flagLogLevel      = "log-level"
	flagLogFormat     = "log-format"
	flagNoColor       = "no-color"
)

func newApp(stdin io.Reader, stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "inventory",
		Usage:     "track parts, names and quantities through an interactive menu",
		Reader:    stdin,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: flagFormat, Usage: "inventory listing format: table, json, csv"},
			&cli.StringFlag{Name: flagSeed, Usage: "CSV file (number,name,quantity) to preload the registry from"},
			&cli.StringFlag{Name: flagNamePolicy, Usage: "what to do with over-long part names: reject, truncate"},
			&cli.IntFlag{Name: flagMaxNameLength, Usage: "maximum part name length in characters"},
			&cli.StringFlag{Name: flagLogLevel, Usage: "log level: debug, info, warn, error"},
			&cli.StringFlag{Name: flagLogFormat, Usage: "log format: text, json"},
			&cli.BoolFlag{Name: flagNoColor, Usage: "disable coloured status messages"},
		},
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}
			return run(c, cfg, stdin, stdout, stderr)
		},
	}
}

// loadConfig reads INVENTORY_* variables, then applies any flags set on the command line
func loadConfig(c *cli.Context) (config.Config, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return config.Config{}, err
	}

	if c.IsSet(flagFormat) {
		cfg.Format = c.String(flagFormat)
	}
	if c.IsSet(flagSeed) {
		cfg.SeedFile = c.String(flagSeed)
	}
	if c.IsSet(flagNamePolicy) {
		cfg.NamePolicy = c.String(flagNamePolicy)
	}
	if c.IsSet(flagMaxNameLength) {
		cfg.MaxNameLength = c.Int(flagMaxNameLength)
	}
	if c.IsSet(flagLogLevel) {
		cfg.LogLevel = c.String(flagLogLevel)
	}
	if c.IsSet(flagLogFormat) {
		cfg.LogFormat = c.String(flagLogFormat)
	}
	if c.IsSet(flagNoColor) {
		cfg.NoColor = c.Bool(flagNoColor)
	}

	cfg = cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return config.Config{}, errors.Wrap(err, "invalid configuration")
	}
	return cfg, nil
}

func run(c *cli.Context, cfg config.Config, stdin io.Reader, stdout, stderr io.Writer) error {
	logger, err := logging.New(stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}

	rules, err := cfg.NameRules()
	if err != nil {
		return err
	}

	repo := memory.NewPartRepository(0)
	if cfg.SeedFile != "" {
		parts, err := csv.NewLoader(rules).LoadParts(cfg.SeedFile)
		if err != nil {
			return errors.Wrap(err, "error loading seed parts")
		}
		if err := repo.LoadParts(parts); err != nil {
			return errors.Wrapf(err, "error loading seed parts from %s", cfg.SeedFile)
		}
		logger.WithField("parts", repo.Len()).WithField("file", cfg.SeedFile).Info("registry preloaded")
	}

	eventStore := events.NewInMemoryEventStore(logger)
	handler := events.NewLoggingHandler(logger)
	if err := eventStore.Subscribe([]string{events.PartAddedEvent, events.QuantityUpdatedEvent}, handler); err != nil {
		return err
	}

	service := services.NewInventoryService(repo, eventStore, rules, logger)
	menu := commands.NewMenuCommand(commands.Config{
		Format:  cfg.Format,
		NoColor: cfg.NoColor,
	}, service, stdin, stdout)

	return menu.Execute(c.Context)
}

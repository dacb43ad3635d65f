package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/atelier/internal/config"
	"github.com/alexisbeaulieu97/atelier/internal/logger"
	"github.com/alexisbeaulieu97/atelier/internal/storefront"
)

// AppContext bundles long-lived services created at startup.
type AppContext struct {
	flags *rootFlags

	Settings config.Settings
	Theme    storefront.ThemeMode
	Catalog  *storefront.Catalog
	Logger   *logger.Logger

	closers []io.Closer
}

// flagKeys maps persistent flags onto settings keys.
var flagKeys = map[string]string{
	"theme":    "theme",
	"catalog":  "catalog",
	"log-file": "log_file",
}

// Load resolves settings, the logger and the catalog for cmd. Interactive
// commands never log to the terminal. On failure anything Load opened is
// closed again; on success the caller owns Close.
func (a *AppContext) Load(cmd *cobra.Command, interactive bool) (err error) {
	op := cmd.Name()
	defer func() {
		if err != nil {
			_ = a.Close()
		}
	}()

	if err := config.LoadDotEnv(".env"); err != nil {
		return newCommandError(op, "loading .env", err, "Fix or remove the .env file in the working directory.")
	}

	v, err := config.NewViper(a.flags.configFile)
	if err != nil {
		return newCommandError(op, "reading settings", err, "Check the --config path and its YAML syntax.")
	}
	for name, key := range flagKeys {
		if flag := cmd.Flags().Lookup(name); flag != nil {
			if err := v.BindPFlag(key, flag); err != nil {
				return newCommandError(op, "binding flags", err, "This is a bug; please report it.")
			}
		}
	}
	if a.flags.verbose {
		v.Set("log_level", "debug")
	}

	settings, err := config.LoadSettings(v)
	if err != nil {
		return newCommandError(op, "validating settings", err, "Use theme light or dark and log level debug, info, warn or error.")
	}
	a.Settings = settings

	theme, err := storefront.ParseThemeMode(settings.Theme)
	if err != nil {
		return newCommandError(op, "validating settings", err, "Use --theme light or --theme dark.")
	}
	a.Theme = theme

	log, err := a.newLogger(cmd, interactive)
	if err != nil {
		return newCommandError(op, "creating logger", err, "Check that the --log-file directory exists and is writable.")
	}
	a.Logger = log.ForCommand(op)

	catalog, err := config.LoadCatalog(settings.Catalog)
	if err != nil {
		a.Logger.Error(err, "catalog rejected")
		return newCommandError(op, "loading catalog", err, "Fix the reported entry or run without --catalog to use the built-in items.")
	}
	a.Catalog = catalog
	a.Logger.WithFields(map[string]any{"items": catalog.Len(), "source": catalogSource(settings.Catalog)}).Debug("catalog loaded")

	return nil
}

func (a *AppContext) newLogger(cmd *cobra.Command, interactive bool) (*logger.Logger, error) {
	if a.Settings.LogFile != "" {
		f, err := logger.OpenFile(a.Settings.LogFile)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, f)
		return logger.New(logger.Options{Level: a.Settings.LogLevel, Writer: f})
	}
	if interactive {
		return logger.Nop(), nil
	}
	return logger.New(logger.Options{Level: a.Settings.LogLevel, HumanReadable: true, Writer: cmd.ErrOrStderr()})
}

// Close releases files opened by Load.
func (a *AppContext) Close() error {
	var first error
	for _, c := range a.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	a.closers = nil
	return first
}

func catalogSource(path string) string {
	if path == "" {
		return "built-in"
	}
	return path
}

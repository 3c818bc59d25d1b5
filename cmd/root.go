/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/npdb/internal/iofs"
	"github.com/gnames/npdb/internal/iologger"
	app "github.com/gnames/npdb/pkg"
	"github.com/gnames/npdb/pkg/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	homeDir   string
	opts      []config.Option
	cfg       *config.Config
	logCloser io.Closer
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = getRootCmd()

func getRootCmd() *cobra.Command {
	res := &cobra.Command{
		Version: fmt.Sprintf("version: %s\nbuild:   %s", app.Version, app.Build),
		Use:     "npdb",
		Short:   "Curates COCONUT natural products database",
		Long: `npdb runs curation passes over the natural_products table of a
COCONUT PostgreSQL database.

Passes:
  - curate: merge KnapSack, ChEBI, CMAUP and PubChem exports
  - names: apply IUPAC names, replace placeholder names, clean synonyms
  - classify: import chemical classification (file or ClassyFire API)
  - xrefs, taxids, annotate, taxa: transform every record

Every pass can be repeated, records that do not change are not written.

Configuration precedence (highest to lowest):
  1. CLI flags
  2. Environment variables (NPDB_*, for example NPDB_DATABASE_HOST)
  3. Config file (~/.config/npdb/config.yaml)
  4. Built-in defaults`,
		PersistentPreRunE:  bootstrap,
		PersistentPostRunE: closeLog,
		RunE:               runRoot,
		SilenceErrors:      true,
		SilenceUsage:       true,
	}

	// Remove the automatic "npdb version" prefix
	res.SetVersionTemplate("{{.Version}}\n")

	// Override version flag to use -V (consistent with other gn projects)
	res.Flags().BoolP("version", "V", false, "version for npdb")

	res.AddCommand(
		getCreateCmd(),
		getMigrateCmd(),
		getCurateCmd(),
		getNamesCmd(),
		getClassifyCmd(),
		getCollectionCmd(passXRefs),
		getCollectionCmd(passTaxIDs),
		getCollectionCmd(passAnnotate),
		getCollectionCmd(passTaxa),
		getCheckNameCmd(),
	)
	return res
}

func bootstrap(cmd *cobra.Command, args []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Initialize logging with hardcoded defaults
	// Will be reconfigured later with user's config settings
	defaultLog := config.LogConfig{
		Format:      "json",
		Level:       "info",
		Destination: "file",
	}
	if logCloser, err = iologger.Init(config.LogDir(homeDir), defaultLog, true); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	for _, ensure := range []func(string) error{
		iofs.EnsureConfigFile,
		iofs.EnsureSourcesFile,
		iofs.EnsureRulesFile,
	} {
		if err = ensure(homeDir); err != nil {
			gn.PrintErrorMessage(err)
			return err
		}
	}

	var cfgViper *config.Config
	if cfgViper, err = initConfig(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	opts = cfgViper.ToOptions()
	cfg.Update(opts)

	// Set HomeDir after config is loaded
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	// Reconfigure logging with user's settings
	if err = reconfigureLogging(cfg); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded",
		"config_file", config.ConfigFilePath(homeDir),
		"command", cmd.Name(),
	)

	return nil
}

// reconfigureLogging reinitializes the logger with the loaded configuration.
// Log file is appended to, so it keeps history of previous passes.
func reconfigureLogging(cfg *config.Config) error {
	if logCloser != nil {
		logCloser.Close()
	}
	var err error
	logDir := config.LogDir(cfg.HomeDir)
	logCloser, err = iologger.Init(logDir, cfg.Log, true)
	return err
}

func closeLog(_ *cobra.Command, _ []string) error {
	if logCloser == nil {
		return nil
	}
	err := logCloser.Close()
	logCloser = nil
	return err
}

func runRoot(cmd *cobra.Command, _ []string) error {
	gn.Info(
		"Configuration files are available at <em>%s</em>",
		config.ConfigDir(homeDir),
	)
	return cmd.Help()
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func initConfig(home string) (*config.Config, error) {
	var err error
	cfgPath := config.ConfigFilePath(home)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	return &res, nil
}

func initEnvVars(v *viper.Viper) {
	// Set environment variables we want.
	// We set them manually so we can see clearly which env variables are allowed.
	// These match the fields included in config.ToOptions() - i.e., persistent
	// configuration that can be stored in config.yaml.
	v.SetEnvPrefix("NPDB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Database configuration
	v.BindEnv("database.host", "NPDB_DATABASE_HOST")
	v.BindEnv("database.port", "NPDB_DATABASE_PORT")
	v.BindEnv("database.user", "NPDB_DATABASE_USER")
	v.BindEnv("database.password", "NPDB_DATABASE_PASSWORD")
	v.BindEnv("database.database", "NPDB_DATABASE_DATABASE")
	v.BindEnv("database.ssl_mode", "NPDB_DATABASE_SSL_MODE")
	v.BindEnv("database.batch_size", "NPDB_DATABASE_BATCH_SIZE")

	// Log configuration
	v.BindEnv("log.level", "NPDB_LOG_LEVEL")
	v.BindEnv("log.format", "NPDB_LOG_FORMAT")
	v.BindEnv("log.destination", "NPDB_LOG_DESTINATION")

	// Classification service
	v.BindEnv("classifier.url", "NPDB_CLASSIFIER_URL")
	v.BindEnv("classifier.chunk_size", "NPDB_CLASSIFIER_CHUNK_SIZE")
	v.BindEnv("classifier.poll_interval_sec", "NPDB_CLASSIFIER_POLL_INTERVAL_SEC")
	v.BindEnv("classifier.timeout_sec", "NPDB_CLASSIFIER_TIMEOUT_SEC")

	// Object storage
	v.BindEnv("storage.endpoint", "NPDB_STORAGE_ENDPOINT")
	v.BindEnv("storage.access_key", "NPDB_STORAGE_ACCESS_KEY")
	v.BindEnv("storage.secret_key", "NPDB_STORAGE_SECRET_KEY")
	v.BindEnv("storage.use_ssl", "NPDB_STORAGE_USE_SSL")

	v.BindEnv("metrics.pushgateway_url", "NPDB_METRICS_PUSHGATEWAY_URL")

	v.BindEnv("curate.canonical_taxa", "NPDB_CURATE_CANONICAL_TAXA")

	// General configuration
	v.BindEnv("jobs_number", "NPDB_JOBS_NUMBER")

	v.AutomaticEnv()
}

package main

import (
	"errors"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kolkov/libsee/cmd/libsee/section"
	"github.com/kolkov/libsee/internal/logging"
)

// Configuration keys. Each can be set by flag, by LIBSEE_<KEY> in the
// environment (dashes become underscores) or in .libsee.yaml.
const (
	keyVerbose  = "verbose"
	keyLogLevel = "log-level"
	keyNoColor  = "no-color"
	keyProm     = "prom"
	keyAtomic   = "atomic"
	keyUnits    = "many-units"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "libsee",
	Short: "Count the cycles a Go program spends in standard-library calls",
	Long: `libsee rewrites calls to common standard-library functions (strings,
bytes, sort, math/rand, strconv, fmt, os, io, time) so that each call is
timed with the CPU cycle counter. When the program exits it prints a report
ranking the functions by the cycles spent in them.

build, run and test work like their go command counterparts and accept the
same flags.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default is .libsee.yaml in the current or home directory)")
	pf.BoolP(keyVerbose, "v", false, "print per-file instrumentation details")
	pf.String(keyLogLevel, "info", "log level (debug, info, warn, error, disabled)")
	pf.Bool(keyNoColor, false, "disable colors in tables and logs")
	for _, key := range []string{keyVerbose, keyLogLevel, keyNoColor} {
		_ = viper.BindPFlag(key, pf.Lookup(key))
	}
	viper.SetDefault(keyProm, "")
	viper.SetDefault(keyAtomic, false)
	viper.SetDefault(keyUnits, false)

	rootCmd.AddCommand(buildCmd, runCmd, testCmd, reportCmd, slotsCmd, doctorCmd, versionCmd)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".libsee")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("LIBSEE")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log := newLogger()
			log.Warn().Err(err).Msg("failed to read config file")
		}
	}
}

// newLogger builds the tool's logger from the current configuration. The
// verbose setting lowers the level to debug.
func newLogger() zerolog.Logger {
	cfg := logging.DefaultConfig()
	cfg.Level = viper.GetString(keyLogLevel)
	cfg.NoColor = viper.GetBool(keyNoColor)
	if viper.GetBool(keyVerbose) && logging.ParseLevel(cfg.Level) > zerolog.DebugLevel {
		cfg.Level = zerolog.DebugLevel.String()
	}
	return logging.New(cfg)
}

// tableOptions returns the rendering options from the configuration.
func tableOptions() section.Options {
	return section.Options{NoColor: viper.GetBool(keyNoColor)}
}

package main

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nozzle/refrng/internal/fixture"
	"github.com/nozzle/refrng/internal/logging"
)

var (
	cfgFile   string
	configErr error
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "refgen",
	Short: "Reference sequences for small PRNGs.",
	Long: `Reference sequences for small PRNGs.
Writes bit-exact outputs of xorshift, xoshiro, splitmix and xorwow generators,
their double conversions and Lemire bounded draws as JSON fixture files. For example:
  refgen emit --out testdata --count 1024
  refgen verify testdata
  refgen sample xorshift128 1 2 3 4 --limit 8`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logging.Log().Error().Err(err).Msg("refgen")
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	defaults := fixture.DefaultOptions()

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is ./refgen.yaml if present)")
	flags.String("log-level", "info", "log level (trace, debug, info, warn, error, disabled)")
	flags.String("log-format", "console", "log format (console or json)")
	flags.StringP("out", "o", defaults.Dir, "fixture directory")
	flags.IntP("count", "n", defaults.Count, "iterations per run")
	flags.IntP("workers", "j", defaults.Workers, "runs processed concurrently (0 = number of CPUs)")
	flags.StringSliceP("algorithms", "a", nil, "only these algorithms or bounded methods (default all)")

	for key, flag := range map[string]string{
		"log.level":  "log-level",
		"log.format": "log-format",
		"out":        "out",
		"count":      "count",
		"workers":    "workers",
		"algorithms": "algorithms",
	} {
		if err := viper.BindPFlag(key, flags.Lookup(flag)); err != nil {
			panic(err)
		}
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName("refgen")
	}

	viper.SetEnvPrefix("REFGEN")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	err := viper.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if err != nil && !(cfgFile == "" && errors.As(err, &notFound)) {
		configErr = errors.Wrap(err, "read config")
	}
}

func setup(cmd *cobra.Command, args []string) error {
	if configErr != nil {
		return configErr
	}
	if err := logging.Setup(cmd.ErrOrStderr(), viper.GetString("log.format"), viper.GetString("log.level")); err != nil {
		return err
	}
	if used := viper.ConfigFileUsed(); used != "" {
		logging.Log().Debug().Str("config", used).Msg("using config file")
	}
	return nil
}

// options builds the harness options from flags, environment and config.
func options() (fixture.Options, fixture.Plan, error) {
	opts := fixture.Options{
		Dir:     viper.GetString("out"),
		Count:   viper.GetInt("count"),
		Workers: viper.GetInt("workers"),
	}
	if opts.Count < 0 {
		return opts, nil, errors.Errorf("count must not be negative, got %d", opts.Count)
	}
	plan, err := fixture.DefaultPlan().Filter(viper.GetStringSlice("algorithms"))
	if err != nil {
		return opts, nil, err
	}
	return opts, plan, nil
}

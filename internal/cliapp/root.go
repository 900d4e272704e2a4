// Package cliapp wires the modulemd-validator CLI collaborator
// described in the library's external interfaces: it reads filenames
// from the command line, feeds each through an Index, and reports the
// collected failures.
package cliapp

import (
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"modulemd/internal/version"
	"modulemd/mderrors"
)

const envPrefix = "MODULEMD_VALIDATOR"

type rootConfig struct {
	ConfigFile string
	LogLevel   string
	Strict     bool
}

// Execute runs the CLI and exits the process with a code derived from
// any error it returns.
func Execute() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		os.Exit(exitCodeForError(err))
	}
}

func newRootCommand() *cobra.Command {
	cfg := rootConfig{}
	cmd := &cobra.Command{
		Use:     "modulemd-validator [files...]",
		Short:   "Validate modulemd YAML documents",
		Version: version.String(),
		Args:    cobra.MinimumNArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := initConfig(cfg.ConfigFile); err != nil {
				return err
			}
			setupLogging(viper.GetString("log_level"))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(args, resolveBool(cmd, cfg.Strict, "strict", "strict"))
		},
	}
	cmd.PersistentFlags().StringVar(&cfg.ConfigFile, "config", "", "config file path")
	cmd.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", "info", "log level (debug, info, warn, error)")
	cmd.Flags().BoolVar(&cfg.Strict, "strict", true, "reject unrecognized keys in every subdocument")
	_ = viper.BindPFlag("log_level", cmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("strict", cmd.Flags().Lookup("strict"))
	return cmd
}

func initConfig(configFile string) error {
	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()

	if configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return mderrors.Wrap(mderrors.YamlOpen, "failed to read config file", err)
		}
		return nil
	}

	viper.SetConfigName("modulemd-validator")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.config/modulemd-validator")
	_ = viper.ReadInConfig()
	return nil
}

func setupLogging(level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

func resolveBool(cmd *cobra.Command, value bool, key, flagName string) bool {
	if flag := cmd.Flags().Lookup(flagName); flag != nil && flag.Changed {
		return value
	}
	if viper.IsSet(key) {
		return viper.GetBool(key)
	}
	return value
}

// exitCodeForError maps the library's bit-stable mderrors.Code, via its
// generic errbuilder classification, to a process exit status.
func exitCodeForError(err error) int {
	code := errbuilder.CodeOf(err)
	switch code {
	case errbuilder.CodeInvalidArgument:
		return 2
	case errbuilder.CodeFailedPrecondition:
		return 3
	case errbuilder.CodeNotFound:
		return 4
	case errbuilder.CodeInternal:
		return 5
	default:
		return 1
	}
}

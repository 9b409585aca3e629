package cmd

import (
	"os"
	"strings"

	log "github.com/activeshadow/libminimega/minilog"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tomoris/markovwriter/markov"
)

// NewRootCommand returns the writerbot command tree with its own viper
// instance.
func NewRootCommand() *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   "writerbot",
		Short: "Generate text from a Markov chain built over a fixed-size hash table",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := initConfig(v); err != nil {
				return err
			}
			level, err := log.ParseLevel(v.GetString("log.level"))
			if err != nil {
				return errors.Wrapf(err, "log level %q", v.GetString("log.level"))
			}
			log.AddLogger("stderr", os.Stderr, level, false)
			if used := v.ConfigFileUsed(); used != "" {
				log.Debug("using config file %s", used)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceUsage: true, // don't print help when subcommands return an error
	}

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default ./writerbot.yml)")
	flags.String("log.level", "warn", "log level (debug, info, warn, error)")
	flags.String("corpus", "", "corpus file, split on whitespace")
	flags.String("model", "", "model snapshot to load instead of a corpus")
	flags.Int("table-size", 0, "hash table slots (0 sizes the table from the corpus)")
	flags.Int("prefix-size", 2, "words per prefix")
	flags.Int("words", 100, "words to generate")
	flags.Int64("seed", 8, "random seed")
	flags.Int("line-width", markov.DefaultLineWidth, "words per output line")
	v.BindPFlags(flags)

	v.SetEnvPrefix("WRITERBOT")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	rootCmd.AddCommand(
		newGenerateCommand(v),
		newPromptCommand(v),
		newStatsCommand(v),
		newServeCommand(v),
		newConfigCommand(v),
	)
	return rootCmd
}

func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func initConfig(v *viper.Viper) error {
	if file := v.GetString("config"); file != "" {
		v.SetConfigFile(file)
		return errors.Wrap(v.ReadInConfig(), "reading config")
	}

	v.SetConfigName("writerbot")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return errors.Wrap(err, "reading config")
		}
	}
	return nil
}

package cmd

import (
	"io"

	log "github.com/activeshadow/libminimega/minilog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tomoris/markovwriter/markov"
	"github.com/tomoris/markovwriter/mtrand"
)

func newGenerateCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Build a chain and print generated text",
		Example: `  writerbot generate --corpus alice.txt --prefix-size 2 --words 200
  writerbot generate --corpus alice.txt --save alice.json
  writerbot generate --model alice.json --seed 3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var progress io.Writer
			if v.GetBool("progress") {
				progress = cmd.ErrOrStderr()
			}
			chain, err := loadChain(v, progress)
			if err != nil {
				return err
			}

			if save := v.GetString("save"); save != "" {
				if err := markov.Save(chain, save, v.GetString("save-format")); err != nil {
					return err
				}
				log.Info("saved model to %s", save)
			}

			words, err := chain.Generate(mtrand.New(v.GetInt64("seed")), v.GetInt("words"))
			if err != nil {
				return err
			}
			if len(words) < v.GetInt("words") {
				log.Debug("walk left the corpus after %d words", len(words))
			}
			return markov.FormatLines(cmd.OutOrStdout(), words, v.GetInt("line-width"))
		},
	}

	cmd.Flags().String("save", "", "write a model snapshot to this file")
	cmd.Flags().String("save-format", "indent", "snapshot format (indent, notindent, yaml)")
	cmd.Flags().Bool("progress", false, "show a progress bar while building")
	v.BindPFlags(cmd.Flags())

	return cmd
}

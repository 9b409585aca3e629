package cmd

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tomoris/markovwriter/markov"
	"github.com/tomoris/markovwriter/mtrand"
)

func newPromptCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "prompt",
		Short: "Read corpus file, table size, prefix size and word count from stdin",
		Long: `Reads four lines from stdin, in order: the corpus file, the hash table
size, the prefix size and the number of words to generate. The text is
printed ten words to a line unless --line-width says otherwise.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sc := bufio.NewScanner(cmd.InOrStdin())
			lines := make([]string, 0, 4)
			for len(lines) < 4 && sc.Scan() {
				lines = append(lines, strings.TrimSpace(sc.Text()))
			}
			if err := sc.Err(); err != nil {
				return errors.Wrap(err, "reading stdin")
			}
			if len(lines) < 4 {
				return errors.Errorf("expected 4 input lines, got %d", len(lines))
			}

			infile := lines[0]
			ints := make([]int, 3)
			for i, name := range []string{"hash table size", "prefix size", "word count"} {
				n, err := strconv.Atoi(lines[i+1])
				if err != nil {
					return errors.Wrapf(err, "parsing %s", name)
				}
				ints[i] = n
			}
			tableSize, prefixSize, numWords := ints[0], ints[1], ints[2]

			out := cmd.OutOrStdout()
			if prefixSize < 1 {
				fmt.Fprintln(out, "ERROR: specified prefix size is less than one")
				return nil
			}
			if numWords < 1 {
				fmt.Fprintln(out, "ERROR: specified size of the generated text is less than one")
				return nil
			}

			dataContainer, err := markov.NewDataContainer(infile)
			if err != nil {
				return err
			}
			if tableSize == 0 {
				return errors.Wrap(markov.ErrInvalidConfig, "hash table size must be positive")
			}
			chain, err := buildChain(dataContainer, tableSize, prefixSize, nil)
			if err != nil {
				return err
			}
			words, err := chain.Generate(mtrand.New(v.GetInt64("seed")), numWords)
			if err != nil {
				return err
			}
			return markov.FormatLines(out, words, v.GetInt("line-width"))
		},
	}
}

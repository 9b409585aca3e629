package cmd

import (
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newStatsCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print hash table and chain statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			chain, err := loadChain(v, nil)
			if err != nil {
				return err
			}
			s := chain.Stats()

			vocabulary := make(map[string]struct{})
			for _, w := range chain.Words() {
				vocabulary[w] = struct{}{}
			}
			perplexity := "-"
			if len(vocabulary) > 0 {
				base := 1.0 / float64(len(vocabulary))
				perplexity = fmt.Sprintf("%.4f", chain.CalcPerplexity(chain.Words(), v.GetFloat64("lambda"), base))
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"Metric", "Value"})
			table.Append([]string{"Capacity", fmt.Sprintf("%d", s.Capacity)})
			table.Append([]string{"Occupied", fmt.Sprintf("%d", s.Occupied)})
			table.Append([]string{"Load Factor", fmt.Sprintf("%.4f", s.LoadFactor)})
			table.Append([]string{"Prefix Size", fmt.Sprintf("%d", chain.PrefixSize())})
			table.Append([]string{"Mean Suffixes", fmt.Sprintf("%.4f", s.MeanSuffixes)})
			table.Append([]string{"Max Suffixes", fmt.Sprintf("%d", s.MaxSuffixes)})
			table.Append([]string{"Mean Entropy (nats)", fmt.Sprintf("%.4f", s.MeanEntropy)})
			table.Append([]string{"Mean Visits", fmt.Sprintf("%.4f", s.MeanVisits)})
			table.Append([]string{"Max Visits", fmt.Sprintf("%d", s.MaxVisits)})
			table.Append([]string{"Corpus Perplexity", perplexity})
			table.Render()
			return nil
		},
	}

	cmd.Flags().Float64("lambda", 0.1, "interpolation weight of the uniform base when scoring the corpus")
	v.BindPFlags(cmd.Flags())

	return cmd
}

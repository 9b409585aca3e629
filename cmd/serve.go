package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tomoris/markovwriter/server"
)

func newServeCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve generation and prefix lookups over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			chain, err := loadChain(v, nil)
			if err != nil {
				return err
			}
			s := server.New(chain, v.GetInt64("seed"), v.GetInt("line-width"))
			return s.ListenAndServe(v.GetString("listen.host"), v.GetInt("listen.port"))
		},
	}

	cmd.Flags().String("listen.host", "localhost", "host name to bind to")
	cmd.Flags().Int("listen.port", 5002, "port to listen on")
	v.BindPFlags(cmd.Flags())

	return cmd
}

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/projecteru2/netid/netid"
)

var basicAuthCmd = &cobra.Command{
	Use:   "basicauth USER PASSWORD",
	Short: "Print an HTTP Basic Authorization header value",
	Args:  cobra.ExactArgs(2), //nolint:mnd
	RunE: func(cmd *cobra.Command, args []string) error {
		return render(cmd.OutOrStdout(), conf.Output, result[string]{
			Kind:   "basicauth",
			Values: []string{netid.BasicAuth(args[0], args[1])},
		})
	},
}

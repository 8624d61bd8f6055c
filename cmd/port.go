package cmd

import (
	"github.com/spf13/cobra"

	"github.com/projecteru2/netid/netid"
)

var portCmd = &cobra.Command{
	Use:   "port",
	Short: "Pick random ports from the dynamic range (49152-65535)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return generate(cmd, "port", func(g *netid.Generator) func() (int, error) { return g.Port })
	},
}

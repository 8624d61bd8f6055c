package cmd

import (
	"github.com/spf13/cobra"

	"github.com/projecteru2/netid/netid"
)

var macCmd = func() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mac",
		Short: "Generate random MAC addresses",
		Args:  cobra.NoArgs,
		RunE:  runMAC,
	}
	cmd.Flags().Bool("local", true, "set the locally-administered bit")
	cmd.Flags().Bool("multicast", false, "set the multicast bit")
	return cmd
}()

func runMAC(cmd *cobra.Command, _ []string) error {
	local, _ := cmd.Flags().GetBool("local")
	multicast, _ := cmd.Flags().GetBool("multicast")
	return generate(cmd, "mac", func(g *netid.Generator) func() (string, error) {
		return func() (string, error) { return g.MACAddress(local, multicast) }
	})
}

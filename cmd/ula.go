package cmd

import (
	"github.com/spf13/cobra"

	"github.com/projecteru2/netid/netid"
)

var ulaCmd = &cobra.Command{
	Use:   "ula",
	Short: "Generate random IPv6 ULA /48 prefixes (RFC 4193)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return generate(cmd, "ula", func(g *netid.Generator) func() (string, error) { return g.IPv6ULA })
	},
}

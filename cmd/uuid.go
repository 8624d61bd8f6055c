package cmd

import (
	"github.com/spf13/cobra"

	"github.com/projecteru2/netid/netid"
)

var uuidCmd = func() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "uuid",
		Short: "Generate random v4 UUIDs, or a v5 UUID with --name",
		Args:  cobra.NoArgs,
		RunE:  runUUID,
	}
	cmd.Flags().String("name", "", "derive a deterministic v5 UUID from this name")
	return cmd
}()

func runUUID(cmd *cobra.Command, _ []string) error {
	name, _ := cmd.Flags().GetString("name")
	if name != "" {
		return render(cmd.OutOrStdout(), conf.Output, result[string]{Kind: "uuid", Values: []string{netid.UUIDv5(name)}})
	}
	return generate(cmd, "uuid", func(g *netid.Generator) func() (string, error) { return g.UUID })
}

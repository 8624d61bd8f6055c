package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	units "github.com/docker/go-units"
	"github.com/projecteru2/core/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/projecteru2/netid/config"
	"github.com/projecteru2/netid/netid"
	"github.com/projecteru2/netid/random"
)

type result[T any] struct {
	Kind   string `json:"kind" yaml:"kind"`
	Values []T    `json:"values" yaml:"values"`
}

// generate runs --count draws of the value produced by pick and prints them.
func generate[T any](cmd *cobra.Command, kind string, pick func(*netid.Generator) func() (T, error)) error {
	ctx := commandContext(cmd)
	count, _ := cmd.Flags().GetInt("count")
	if count <= 0 {
		return fmt.Errorf("invalid --count %d", count)
	}

	src := random.Count(random.Crypto())
	values, err := netid.Batch(ctx, count, conf.PoolSize, pick(netid.NewGenerator(src)))
	if err != nil {
		return fmt.Errorf("%s: %w", kind, err)
	}
	log.WithFunc("cmd."+kind).Debugf(ctx, "generated %d value(s), drew %s of entropy",
		len(values), units.HumanSize(float64(src.Drawn())))
	return render(cmd.OutOrStdout(), conf.Output, result[T]{Kind: kind, Values: values})
}

func render[T any](w io.Writer, format string, r result[T]) error {
	switch format {
	case config.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case config.OutputYAML:
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	default:
		for _, v := range r.Values {
			if _, err := fmt.Fprintln(w, v); err != nil {
				return err
			}
		}
		return nil
	}
}

package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/ldforge/internal/catalog"
	"github.com/mesh-intelligence/ldforge/internal/output"
	"github.com/mesh-intelligence/ldforge/pkg/types"
)

// propertyInfo describes one property of a schema type.
type propertyInfo struct {
	Name string     `json:"name"`
	Tier types.Tier `json:"tier"`
	Kind types.Kind `json:"kind"`
}

func newTypesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "types [TYPE]",
		Short: "List schema types, or the properties of one type",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return a.listTypes(cmd)
			}
			return a.describeType(cmd, args[0])
		},
	}
}

func (a *app) listTypes(cmd *cobra.Command) error {
	names := catalog.Types()
	if a.jsonMode {
		b, err := output.JSON(names)
		if err != nil {
			return sysError(err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(b))
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), strings.Join(names, "\n"))
	return nil
}

func (a *app) describeType(cmd *cobra.Command, schemaType string) error {
	def, ok := catalog.Lookup(schemaType)
	if !ok {
		return userError(fmt.Errorf("%w %q (known: %s)", types.ErrUnknownType, schemaType, strings.Join(catalog.Types(), ", ")))
	}

	var props []propertyInfo
	for _, tier := range []types.Tier{types.TierRequired, types.TierCommon, types.TierAdvanced} {
		for _, name := range def.Tier(tier) {
			props = append(props, propertyInfo{Name: name, Tier: tier, Kind: catalog.Classify(name)})
		}
	}

	if a.jsonMode {
		b, err := output.JSON(props)
		if err != nil {
			return sysError(err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(b))
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PROPERTY\tTIER\tKIND")
	fmt.Fprintln(w, "--------\t----\t----")
	for _, p := range props {
		fmt.Fprintf(w, "%s\t%s\t%s\n", p.Name, p.Tier, p.Kind)
	}
	return w.Flush()
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xab-mack/moveguard/internal/detector"
)

func newRulesCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "rules", Short: "List available rules"}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List built-in detectors",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := detector.NewRegistry()
			reg.RegisterBuiltin()
			reg.RegisterExperimental()
			for _, d := range reg.Detectors() {
				m := d.Meta()
				label := ""
				if m.Experimental {
					label = "\t(experimental)"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s%s\n", m.ID, m.Severity, m.Title, label)
			}
			return nil
		},
	})
	return cmd
}

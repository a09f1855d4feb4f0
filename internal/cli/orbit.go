package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newOrbitCmd creates the orbit command.
func newOrbitCmd() *cobra.Command {
	var in groupInput
	var point int

	cmd := &cobra.Command{
		Use:   "orbit",
		Short: "Compute the orbit of a point under a group",
		Example: `  # The orbit of 1 under S3
  permkit orbit -g "(1 2)" -g "(2 3)" --point 1`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if point < 1 {
				return fmt.Errorf("--point must be a positive integer, got %d", point)
			}
			g, name, err := in.load()
			if err != nil {
				return err
			}

			orbit := g.Orbit(point)
			printKeyValue("Group", name)
			printKeyValue(fmt.Sprintf("Orbit of %d", point), fmt.Sprintf("%v", orbit))
			printKeyValue("Size", fmt.Sprintf("%d", len(orbit)))
			return nil
		},
	}

	in.addFlags(cmd)
	cmd.Flags().IntVarP(&point, "point", "p", 1, "base point of the orbit")

	return cmd
}

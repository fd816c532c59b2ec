package cli

import (
	"fmt"

	"github.com/gatekit/gatekit/internal/version"
	"github.com/spf13/cobra"
)

func cmdVersion() *cobra.Command {
	var verbose bool
	c := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			if verbose {
				fmt.Println(version.Verbose())
				return
			}
			fmt.Println(version.String())
		},
	}
	c.Flags().BoolVarP(&verbose, "verbose", "v", false, "include commit and build date")
	return c
}

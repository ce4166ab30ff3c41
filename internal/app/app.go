package app

import (
	"github.com/spf13/cobra"

	"github.com/xab-mack/moveguard/internal/cli"
)

func BuildRoot() *cobra.Command {
	root := &cobra.Command{Use: "moveguard", Short: "Security scanner for Move smart contracts"}
	cli.AddCommands(root)
	return root
}

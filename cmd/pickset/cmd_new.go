package main

import (
	"fmt"

	"github.com/ruminaider/pickset/internal/commands"
	"github.com/ruminaider/pickset/internal/paths"
	"github.com/spf13/cobra"
)

var newCmd = &cobra.Command{
	Use:   "new <name>",
	Short: "Create a starter option set",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := commands.CreateSet(paths.SetsDir(), args[0], commands.DemoSet())
		if err != nil {
			return err
		}
		fmt.Printf("Created %s\n", path)
		fmt.Printf("Run 'pickset pick %s' to try it.\n", args[0])
		return nil
	},
}

package main

import (
	"fmt"

	"github.com/julien-sobczak/zenpad/internal/core"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the config file",
	Long:  `Write the default config file, unless one already exists.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		path := core.ConfigPath()
		created, err := core.InitConfig(path)
		exitOnError(err)
		if !created {
			fmt.Printf("Config file already exists: %s\n", path)
			return
		}
		fmt.Printf("Created %s\n", path)
	},
}

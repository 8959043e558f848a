package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tomlv",
	Short: "tomlv is a TOML parsing and inspection tool.",
	Long:  "tomlv parses TOML documents, converts them to JSON or canonical TOML, and extracts values by dotted key path.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of tomlv",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("tomlv v1.0.0")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(getCmd)
}

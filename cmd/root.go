package cmd

import (
	"fmt"
	"github.com/ValentinKolb/fmtsize/cmd/compare"
	"github.com/spf13/cobra"
	"os"
)

const (
	Version = "1.0.0"
)

var (

	// RootCmd represents the base command when called without any subcommands
	RootCmd = &cobra.Command{
		Use:   "fmtsize",
		Short: "compare the size of serialization formats",
		Long: fmt.Sprintf(`fmtsize (v%s)

Writes a word list as csv, json, bson and xml (compact and pretty),
gzips every file and reports how large each format is compared to csv.`, Version),
	}
	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of fmtsize",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("fmtsize v%s\n", Version)
		},
	}
)

func init() {
	// Add Commands
	RootCmd.AddCommand(compare.CompareCmd)
	RootCmd.AddCommand(versionCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/srlehn/termvt/vt"
)

func init() {
	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(newCmd)
}

var fetchCmd = &cobra.Command{
	Use:   `fetch`,
	Short: `print the active VT`,
	Long:  `print the active VT, or the first unopened VT if there is no active one`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		run(func(sw *vt.Switcher) error { return printVT(sw.FetchAvailableVT()) })
	},
}

var newCmd = &cobra.Command{
	Use:   `new`,
	Short: `print the first unopened VT`,
	Long:  `print the first unopened VT, or the active VT if all are in use`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		run(func(sw *vt.Switcher) error { return printVT(sw.SetUpNewVT()) })
	},
}

func printVT(num int, err error) error {
	if err != nil {
		return err
	}
	fmt.Println(num)
	return nil
}

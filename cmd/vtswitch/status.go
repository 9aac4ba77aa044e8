package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/srlehn/termvt/internal/errors"
	"github.com/srlehn/termvt/internal/procextra"
	"github.com/srlehn/termvt/vt"
)

var statusProcs bool

func init() {
	statusCmd.Flags().BoolVarP(&statusProcs, `procs`, `p`, false, `list processes attached to the VT`)
	rootCmd.AddCommand(statusCmd)
}

var statusCmd = &cobra.Command{
	Use:   `status [vt]`,
	Short: `print the kernel state of a VT`,
	Long:  `print VT switch mode, display mode and whether the VT is stuck in VT_AUTO + KD_GRAPHICS, the active VT by default`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		run(statusFunc(args))
	},
}

func statusFunc(args []string) switcherFunc {
	return func(sw *vt.Switcher) error {
		var num int
		if len(args) == 1 {
			var err error
			if num, err = strconv.Atoi(args[0]); err != nil {
				return errors.WrapPrefix(err, `VT number`, 0)
			}
		}
		st, err := sw.Inspect(num)
		if err != nil {
			return err
		}
		fmt.Println(st.String())
		if !statusProcs {
			return nil
		}
		procs, err := procextra.ProcsOnTTY(`tty` + strconv.Itoa(st.VT))
		if err != nil {
			return err
		}
		for _, proc := range procs {
			name, _ := proc.Name()
			fmt.Printf("%d\t%s\n", proc.Pid, name)
		}
		return nil
	}
}

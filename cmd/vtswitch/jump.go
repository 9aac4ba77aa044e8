package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/srlehn/termvt/internal/consts"
	"github.com/srlehn/termvt/internal/errors"
	"github.com/srlehn/termvt/internal/logx"
	"github.com/srlehn/termvt/internal/procextra"
	"github.com/srlehn/termvt/vt"
)

var (
	jumpAuto          bool
	jumpControllerPID int32
	jumpNew           bool
)

func init() {
	jumpCmd.Flags().BoolVarP(&jumpAuto, `auto`, `a`, false, `the process controlling the current VT is gone, let the kernel switch`)
	jumpCmd.Flags().Int32VarP(&jumpControllerPID, `controller-pid`, `p`, 0, `pid of the process controlling the current VT, --auto is implied if it is gone`)
	jumpCmd.Flags().BoolVarP(&jumpNew, `new`, `n`, false, `jump to the first unopened VT`)
	jumpCmd.MarkFlagsMutuallyExclusive(`auto`, `controller-pid`)
	rootCmd.AddCommand(jumpCmd)
}

var jumpCmd = &cobra.Command{
	Use:   jumpCmdStr + ` [vt]`,
	Short: `switch to a VT`,
	Long: `switch to a VT and wait until it is active

` + jumpUsageStr + `

A VT left in VT_AUTO mode with KD_GRAPHICS set is repaired first.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		run(jumpFunc(cmd, args))
	},
}

var (
	jumpCmdStr   = `jump`
	jumpUsageStr = `usage: vtswitch ` + jumpCmdStr + ` (-a|-p <pid>) (<vt>|-n)`
)

func jumpFunc(cmd *cobra.Command, args []string) switcherFunc {
	return func(sw *vt.Switcher) error {
		var num int
		switch {
		case jumpNew && len(args) > 0:
			return errors.New(`--new and a VT number are mutually exclusive`)
		case jumpNew:
			var err error
			if num, err = sw.SetUpNewVT(); err != nil {
				return err
			}
		case len(args) == 1:
			var err error
			num, err = strconv.Atoi(args[0])
			if err != nil {
				return errors.WrapPrefix(err, `VT number`, 0)
			}
		default:
			return errors.New(jumpUsageStr)
		}
		if num <= 0 {
			return errors.WrapPrefix(consts.ErrInvalidVT, strconv.Itoa(num), 0)
		}

		vtAuto := jumpAuto
		if cmd.Flags().Changed(`controller-pid`) {
			gone, err := procextra.ProcGone(jumpControllerPID)
			if err != nil {
				return err
			}
			vtAuto = gone
			logx.Debug(`checked VT controller`, sw, `pid`, jumpControllerPID, `gone`, gone)
		}
		sw.JumpToVT(num, vtAuto)
		return nil
	}
}

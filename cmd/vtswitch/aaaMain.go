package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/srlehn/termvt/internal/consts"
	"github.com/srlehn/termvt/internal/errors"
	"github.com/srlehn/termvt/internal/logx"
	"github.com/srlehn/termvt/vt"
)

var rootCmd = &cobra.Command{
	Use:              filepath.Base(os.Args[0]),
	Short:            "vtswitch switch the active Linux virtual terminal",
	Long:             "vtswitch switch the active Linux virtual terminal",
	SilenceUsage:     true,
	TraverseChildren: true,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
		os.Exit(1)
	},
}

func init() {
	cobra.EnablePrefixMatching = true
	rootCmd.PersistentFlags().BoolVarP(&debugFlag, `debug`, `d`, false, `debug errors, print stack traces and debug log messages`)
	rootCmd.PersistentFlags().BoolVarP(&silentFlag, `silent`, `s`, false, `silence errors`)
	rootCmd.PersistentFlags().StringVarP(&logFileFlag, `log-file`, `l`, ``, `log file, stderr if unset`)
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, `log-level`, `warn`, `log level (debug, info, warn, error)`)
	rootCmd.PersistentFlags().StringVar(&masterFlag, `master`, consts.MasterDevice, `VT master device`)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var (
	debugFlag    bool
	silentFlag   bool
	logFileFlag  string
	logLevelFlag string
	masterFlag   string
)

type switcherFunc func(sw *vt.Switcher) error

func run(fn switcherFunc) {
	exitCode := 0
	defer func() { os.Exit(exitCode) }()

	var err error
	var sw *vt.Switcher
	closeLog := func() error { return nil }
	if fn == nil {
		err = errors.NilParam()
	} else {
		var h slog.Handler
		h, closeLog, err = logHandler()
		if err == nil {
			sw, err = vt.New(
				vt.SetSLogger(h, true),
				vt.SetMasterDevice(masterFlag),
			)
		}
		if err == nil {
			err = fn(sw)
		}
	}
	if err != nil {
		logx.IsErr(err, ``, sw, slog.LevelError)
		exitCode = 1
		if !silentFlag {
			if stackFramer, ok := err.(interface{ ErrorStack() string }); debugFlag && ok {
				fmt.Fprintln(os.Stderr, "\n"+stackFramer.ErrorStack())
			} else {
				fmt.Fprintln(os.Stderr, err.Error())
			}
		}
	}
	if closeLog != nil {
		_ = closeLog()
	}
}

func logHandler() (slog.Handler, func() error, error) {
	var lvl slog.Level
	if debugFlag {
		lvl = slog.LevelDebug
	} else if err := lvl.UnmarshalText([]byte(strings.TrimSpace(logLevelFlag))); err != nil {
		return nil, nil, errors.WrapPrefix(err, `--log-level`, 0)
	}
	var w io.Writer = os.Stderr
	closeFn := func() error { return nil }
	if len(logFileFlag) > 0 {
		f, err := os.OpenFile(logFileFlag, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, errors.New(err)
		}
		w = f
		closeFn = f.Close
	}
	return slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}), closeFn, nil
}

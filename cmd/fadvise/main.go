package main

import (
	"fmt"
	"os"

	"github.com/iand/logfmtr"
	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v2"

	"github.com/iand/fadvise"
	"github.com/iand/fadvise/internal"
)

func main() {
	app := newApp(internal.Fadvise)
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func newApp(advise internal.AdviseFunc) *cli.App {
	commands := make([]*cli.Command, 0, len(fadvise.Advices())+1)
	for _, a := range fadvise.Advices() {
		commands = append(commands, adviceCommand(a, advise))
	}
	commands = append(commands, completionCommand)

	return &cli.App{
		Name:     "fadvise",
		HelpName: "fadvise",
		Usage:    "Apply file access advice (posix_fadvise) to a range of a file",
		Flags: []cli.Flag{
			logLevelFlag,
		},
		Before:               initLogging,
		Version:              fadvise.Version(),
		Commands:             commands,
		EnableBashCompletion: true,
		HideHelpCommand:      true,
	}
}

var logLevelFlag = &cli.IntFlag{
	Name:    "log-level",
	Aliases: []string{"ll"},
	Usage:   "Set verbosity of logs to `LEVEL` (higher is more verbose)",
	EnvVars: []string{"FADVISE_LOG_LEVEL"},
	Value:   0,
}

func initLogging(cc *cli.Context) error {
	logfmtr.SetVerbosity(cc.Int("log-level"))
	loggerOpts := logfmtr.DefaultOptions()
	loggerOpts.Humanize = true
	loggerOpts.Colorize = isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
	logfmtr.UseOptions(loggerOpts)
	return nil
}

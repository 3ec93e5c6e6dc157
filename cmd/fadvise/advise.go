package main

import (
	"errors"

	"github.com/iand/logfmtr"
	"github.com/urfave/cli/v2"

	"github.com/iand/fadvise"
	"github.com/iand/fadvise/internal"
)

var (
	errMissingFile = errors.New("missing FILE argument")
	errTooManyArgs = errors.New("too many arguments, expecting FILE [OFFSET] [LENGTH]")
)

func adviceCommand(a fadvise.Advice, advise internal.AdviseFunc) *cli.Command {
	return &cli.Command{
		Name:        a.Keyword(),
		Usage:       "Apply advice of " + a.String(),
		Description: a.Description() + ".\nOFFSET defaults to 0 and LENGTH to the size of FILE.",
		ArgsUsage:   "FILE [OFFSET] [LENGTH]",
		Action: func(cc *cli.Context) error {
			return adviseFile(cc, a, advise)
		},
	}
}

func adviseFile(cc *cli.Context, a fadvise.Advice, advise internal.AdviseFunc) error {
	req, err := parseRequest(a, cc.Args().Slice())
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	err = fadvise.Apply(req, &fadvise.Options{
		Logger:      logfmtr.NewNamed("fadvise"),
		Diagnostics: cc.App.ErrWriter,
		Advise:      advise,
	})
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	return nil
}

// parseRequest converts FILE [OFFSET] [LENGTH] into a request. It does not touch the filesystem.
func parseRequest(a fadvise.Advice, args []string) (fadvise.Request, error) {
	// Flag parsing stops at FILE, so a separator after it reaches us as a plain argument
	if len(args) > 1 && args[1] == "--" {
		args = append(args[:1:1], args[2:]...)
	}

	switch {
	case len(args) == 0:
		return fadvise.Request{}, errMissingFile
	case len(args) > 3:
		return fadvise.Request{}, errTooManyArgs
	}

	req := fadvise.Request{
		Path:   args[0],
		Advice: a,
	}

	if len(args) > 1 {
		offset, err := internal.ParseNonNegative("offset", args[1], fadvise.ErrNegativeOffset)
		if err != nil {
			return fadvise.Request{}, err
		}
		req.Offset = offset
	}

	if len(args) > 2 {
		length, err := internal.ParseNonNegative("length", args[2], fadvise.ErrNegativeLength)
		if err != nil {
			return fadvise.Request{}, err
		}
		req.Length = &length
	}

	return req, nil
}

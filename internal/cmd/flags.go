// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"flag"
	"fmt"
	"io"
	"time"
)

const (
	name = "projson"

	timeoutDefault = time.Minute
	timeoutMax     = 24 * time.Hour

	usageMessage = `Usage of 'projson':
    projson [flags...]

Mount a JSON document as read-only file system:
	projson -file=/path/to/doc.json -path=/tmp/doc

Objects and arrays are directories, all other values are files holding the
value's text. The file system stays mounted until the process receives
SIGINT, SIGTERM, SIGHUP or SIGQUIT.

Write the projection into a cpio archive instead:
	projson -text='{"a": [1, 2]}' -archive=doc.cpio

All projson flags can also be provided via environment variable PROJSON_ARGS:
	PROJSON_ARGS="-debug" projson -file=doc.json -path=/tmp/doc

All projson flags can also be provided via file ./.projson-args, with one
argument per line.
`
)

type flags struct {
	File        string
	Text        string
	MountPath   string
	ArchivePath string
	AllowOther  bool
	Timeout     time.Duration
	FuseDebug   bool
	Debug       bool
	Version     bool

	flagSet *flag.FlagSet
}

func parseArgs(args []string, output io.Writer) (*flags, error) {
	f := &flags{
		Timeout: timeoutDefault,
	}

	f.initFlagset(output)

	err := f.flagSet.Parse(args)
	if err != nil {
		return nil, &ParseArgsError{msg: "flag parse", err: err}
	}

	// With version flag, nothing else matters.
	if f.Version {
		return f, nil
	}

	if len(f.flagSet.Args()) > 0 {
		return nil, f.fail("arguments", ErrUnexpectedArgs)
	}

	switch {
	case f.File == "" && f.Text == "":
		return nil, f.fail("source", ErrNoSource)
	case f.File != "" && f.Text != "":
		return nil, f.fail("source", ErrMultipleSources)
	}

	if f.MountPath == "" && f.ArchivePath == "" {
		return nil, f.fail("target", ErrNoTarget)
	}

	return f, nil
}

func (f *flags) initFlagset(output io.Writer) {
	flagSet := flag.NewFlagSet(name, flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = f.usage

	flagSet.Var(
		(*FilePath)(&f.File),
		"file",
		"path to the JSON document to project",
	)

	flagSet.StringVar(
		&f.Text,
		"text",
		f.Text,
		"JSON document text to project",
	)

	flagSet.Var(
		(*FilePath)(&f.MountPath),
		"path",
		"directory to mount the file system at. Must not exist yet, it is "+
			"created and removed again",
	)

	flagSet.Var(
		(*FilePath)(&f.ArchivePath),
		"archive",
		"write the projection into a cpio archive at the given path",
	)

	flagSet.BoolVar(
		&f.AllowOther,
		"allowOther",
		f.AllowOther,
		"allow other users to access the mount",
	)

	flagSet.Var(
		&limitedDurationValue{
			Value: &f.Timeout,
			max:   timeoutMax,
		},
		"timeout",
		"kernel entry and attribute cache timeout",
	)

	flagSet.BoolVar(
		&f.FuseDebug,
		"fuseDebug",
		f.FuseDebug,
		"log every FUSE request",
	)

	flagSet.BoolVar(
		&f.Debug,
		"debug",
		f.Debug,
		"enable debug output",
	)

	flagSet.BoolVar(
		&f.Version,
		"version",
		f.Version,
		"show version and exit",
	)

	f.flagSet = flagSet
}

// fail fails like flag does. It prints the error first and then usage.
func (f *flags) fail(msg string, err error) error {
	err = &ParseArgsError{msg: msg, err: err}
	fmt.Fprintln(f.flagSet.Output(), err.Error())

	f.flagSet.Usage()

	return err
}

func (f *flags) usage() {
	fmt.Fprint(f.flagSet.Output(), usageMessage)
	fmt.Fprintln(f.flagSet.Output(), "\nFlags:")
	f.flagSet.PrintDefaults()
}

// Package app wires the command line, configuration, and processing loops
// into a runnable tool.
package app

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"adapterremoval/internal/cli"
	"adapterremoval/internal/config"
	"adapterremoval/internal/version"
)

// Run parses argv, builds the run configuration, and executes the selected
// mode. It returns the process exit code: 0 on success, 2 on usage or
// configuration errors, 1 on runtime failures.
func Run(argv []string, stdout, stderr io.Writer) int {
	fs := cli.NewFlagSet("adapterremoval")
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(stdout)
			fs.Usage()
			return 0
		}
		fmt.Fprintln(stderr, "Error:", err)
		fs.SetOutput(stderr)
		fs.Usage()
		return 2
	}
	if opts.Version {
		fmt.Fprintf(stdout, "adapterremoval version %s\n", version.Version)
		return 0
	}

	settings, err := config.New(opts, stderr)
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return 2
	}

	if settings.IdentifyAdapters {
		err = runIdentify(settings, stdout)
	} else {
		err = runTrim(settings, stderr)
	}
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return 1
	}
	return 0
}

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"github.com/kbukum/statuscode/config"
	"github.com/kbukum/statuscode/logger"
)

// Exit codes.
const (
	exitOK     = 0
	exitDiffer = 1 // compare: the codes are not equivalent
	exitError  = 2
)

type command struct {
	name    string
	args    string
	summary string
	nargs   int // exact number of positional arguments
	flags   func(fs *pflag.FlagSet)
	run     func(ctx context.Context, a *app, args []string) int
}

var commands = []command{
	{
		name:    "list",
		summary: "List every errored generic condition",
		flags:   formatFlag,
		run:     runList,
	},
	{
		name:    "describe",
		args:    "<spec>",
		summary: "Describe a condition given by name, symbol, number or application code",
		nargs:   1,
		flags:   formatFlag,
		run:     runDescribe,
	},
	{
		name:    "compare",
		args:    "<a> <b>",
		summary: "Report whether two specs denote the same condition (exit 1 if not)",
		nargs:   2,
		flags:   formatFlag,
		run:     runCompare,
	},
	{
		name:    "domain-id",
		args:    "<uuid>",
		summary: "Derive the domain ID a custom domain declares from its UUID",
		nargs:   1,
		flags:   formatFlag,
		run:     runDomainID,
	},
	{
		name:    "serve",
		summary: "Serve the lookup API over HTTP",
		flags: func(fs *pflag.FlagSet) {
			fs.String("addr", "", "listen address, overrides http.host and http.port")
		},
		run: runServe,
	},
	{
		name:    "version",
		summary: "Print version information",
		flags:   formatFlag,
		run:     runVersion,
	},
}

func formatFlag(fs *pflag.FlagSet) {
	fs.String("format", "", "output format: table or json")
}

// app carries what every command needs once flags and settings are loaded.
type app struct {
	settings *config.Settings
	log      *logger.Logger
	flags    *pflag.FlagSet
	stdout   io.Writer
	stderr   io.Writer
}

func (a *app) fail(err error) int {
	fmt.Fprintf(a.stderr, "%s: %v\n", config.ServiceName, err)
	return exitError
}

func (a *app) jsonOutput() bool {
	return a.settings.Output.Format == "json"
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		usage(stderr)
		return exitError
	}
	switch args[0] {
	case "help", "-h", "--help":
		usage(stdout)
		return exitOK
	}

	cmd, ok := findCommand(args[0])
	if !ok {
		fmt.Fprintf(stderr, "%s: unknown command %q\n\n", config.ServiceName, args[0])
		usage(stderr)
		return exitError
	}

	fs := pflag.NewFlagSet(config.ServiceName+" "+cmd.name, pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.String("config", "", "config file (YAML)")
	fs.String("env-file", "", "env file loaded before reading STATUSCTL_ variables")
	fs.String("log-level", "", "log level: trace, debug, info, warn, error or fatal")
	if cmd.flags != nil {
		cmd.flags(fs)
	}
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: %s %s [flags] %s\n\n%s\n\nFlags:\n%s", config.ServiceName, cmd.name, cmd.args, cmd.summary, fs.FlagUsages())
	}
	if err := fs.Parse(args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		return exitError
	}
	if fs.NArg() != cmd.nargs {
		fmt.Fprintf(stderr, "%s %s: expected %d argument(s), got %d\n", config.ServiceName, cmd.name, cmd.nargs, fs.NArg())
		fs.Usage()
		return exitError
	}

	a, err := newApp(fs, stdout, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", config.ServiceName, err)
		return exitError
	}
	return cmd.run(ctx, a, fs.Args())
}

func findCommand(name string) (command, bool) {
	for _, c := range commands {
		if c.name == name {
			return c, true
		}
	}
	return command{}, false
}

func newApp(fs *pflag.FlagSet, stdout, stderr io.Writer) (*app, error) {
	opts := []config.LoaderOption{
		config.WithFlag("logging.level", fs.Lookup("log-level")),
		config.WithFlag("output.format", fs.Lookup("format")),
	}
	if path, _ := fs.GetString("config"); path != "" {
		opts = append(opts, config.WithConfigFile(path))
	}
	if path, _ := fs.GetString("env-file"); path != "" {
		opts = append(opts, config.WithEnvFile(path))
	}

	settings, err := config.Load(opts...)
	if err != nil {
		return nil, err
	}

	// Results go to stdout, logs never do.
	settings.Logging.Writer = stderr
	l := logger.New(&settings.Logging, settings.Name)
	logger.SetGlobalLogger(l)
	log.Logger = l.GetLogger()
	logger.RegisterDefaults("config", "status", "observability")

	return &app{
		settings: settings,
		log:      l,
		flags:    fs,
		stdout:   stdout,
		stderr:   stderr,
	}, nil
}

func usage(w io.Writer) {
	fmt.Fprintf(w, "Usage: %s <command> [flags] [args]\n\nCommands:\n", config.ServiceName)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, c := range commands {
		fmt.Fprintf(tw, "  %s\t%s\n", strings.TrimSpace(c.name+" "+c.args), c.summary)
	}
	tw.Flush()
	fmt.Fprintf(w, "\nRun '%s <command> --help' for the flags of a command.\n", config.ServiceName)
}

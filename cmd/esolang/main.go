package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/pkg/profile"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/urfave/cli/v2"
	"github.com/yaoguais/esolang"
)

var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := getApp().RunContext(ctx, os.Args)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func getApp() *cli.App {
	var profiler interface{ Stop() }

	app := &cli.App{
		Name:      "esolang",
		Usage:     "esoteric programming language interpreters",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "profile",
				Usage: "Write a `KIND` profile (cpu or mem) to the working directory",
			},
		},
		Before: func(c *cli.Context) error {
			switch c.String("profile") {
			case "":
			case "cpu":
				profiler = profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet)
			case "mem":
				profiler = profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.Quiet)
			default:
				return errors.Errorf("Unknown profile kind %q", c.String("profile"))
			}
			return nil
		},
		After: func(c *cli.Context) error {
			if profiler != nil {
				profiler.Stop()
			}
			return nil
		},
		Commands: []*cli.Command{
			pietCommand(),
			brainfuckCommand(),
			ookCommand(),
			bfToOokCommand(),
			traceCommand(),
		},
	}

	sort.Sort(cli.FlagsByName(app.Flags))
	sort.Sort(cli.CommandsByName(app.Commands))

	return app
}

func fileFlag(usage string) cli.Flag {
	return &cli.StringFlag{
		Name:     "file",
		Aliases:  []string{"f"},
		Usage:    usage,
		Required: true,
	}
}

func pietCommand() *cli.Command {
	return &cli.Command{
		Name:  "piet",
		Usage: "Executes a Piet program from an image file",
		Flags: []cli.Flag{
			fileFlag("Path to the Piet program image `FILE` (PNG, GIF, JPEG, BMP, TIFF, WebP)"),
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Load configuration from `FILE`",
			},
			&cli.IntFlag{
				Name:    "codel-size",
				Usage:   "Size of each codel in pixels",
				Value:   esolang.DefaultCodelSize,
				EnvVars: []string{"ESOLANG_CODEL_SIZE"},
			},
			&cli.BoolFlag{
				Name:    "debug",
				Usage:   "Trace program execution to stderr",
				EnvVars: []string{"ESOLANG_DEBUG"},
			},
			&cli.IntFlag{
				Name:    "max-steps",
				Usage:   "Stop after `N` steps",
				Value:   esolang.DefaultStepLimit,
				EnvVars: []string{"ESOLANG_MAX_STEPS"},
			},
			&cli.StringFlag{
				Name:  "trace",
				Usage: "Record every step to `FILE` in msgpack",
			},
			&cli.BoolFlag{
				Name:  "metrics",
				Usage: "Print Prometheus metrics to stderr after the run",
			},
		},
		Action: runPiet,
	}
}

func runPiet(c *cli.Context) error {
	config := esolang.DefaultConfig()
	if path := c.String("config"); path != "" {
		var err error
		config, err = esolang.LoadConfig(path)
		if err != nil {
			return err
		}
		config.ApplyLogLevel()
	}
	if c.IsSet("codel-size") {
		config.CodelSize = c.Int("codel-size")
	}
	if c.IsSet("debug") {
		config.Debug = c.Bool("debug")
	}
	if c.IsSet("max-steps") {
		config.MaxSteps = c.Int("max-steps")
	}
	if err := config.Validate(); err != nil {
		return err
	}

	options := append(config.Options(),
		esolang.WithInput(stdin),
		esolang.WithOutput(c.App.Writer),
		esolang.WithDiagnostics(c.App.ErrWriter),
	)
	if f, ok := stdin.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		options = append(options, esolang.WithPrompt(c.App.Writer))
	}
	if path := c.String("trace"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		options = append(options, esolang.WithTrace(f))
	}

	interpreter, err := esolang.New(c.String("file"), options...)
	if err != nil {
		return err
	}

	_, err = interpreter.Run(c.Context)
	fmt.Fprintln(c.App.Writer)
	if err != nil {
		return err
	}

	if c.Bool("metrics") {
		return writeMetrics(c.App.ErrWriter)
	}
	return nil
}

func writeMetrics(w io.Writer) error {
	mfs, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		return err
	}
	enc := expfmt.NewEncoder(w, expfmt.FmtText)
	for _, mf := range mfs {
		if err := enc.Encode(mf); err != nil {
			return err
		}
	}
	return nil
}

func brainfuckCommand() *cli.Command {
	return &cli.Command{
		Name:  "brainfuck",
		Usage: "Executes a Brainfuck program from a file",
		Flags: []cli.Flag{
			fileFlag("Path to the Brainfuck program `FILE`"),
		},
		Action: func(c *cli.Context) error {
			bf := esolang.NewBrainfuck()
			bf.Input = stdin
			result, err := bf.ExecuteFile(c.Context, c.String("file"))
			if err != nil {
				return err
			}
			fmt.Fprint(c.App.Writer, result)
			return nil
		},
	}
}

func ookCommand() *cli.Command {
	return &cli.Command{
		Name:  "ook",
		Usage: "Executes an Ook program from a file",
		Flags: []cli.Flag{
			fileFlag("Path to the Ook program `FILE`"),
		},
		Action: func(c *cli.Context) error {
			ook := esolang.NewOok()
			ook.Brainfuck.Input = stdin
			result, err := ook.ExecuteFile(c.Context, c.String("file"))
			if err != nil {
				return err
			}
			fmt.Fprint(c.App.Writer, result)
			return nil
		},
	}
}

func bfToOokCommand() *cli.Command {
	return &cli.Command{
		Name:  "bf-to-ook",
		Usage: "Translates a Brainfuck program into Ook",
		Flags: []cli.Flag{
			fileFlag("Path to the Brainfuck program `FILE`"),
			&cli.StringFlag{
				Name:     "output",
				Aliases:  []string{"o"},
				Usage:    "Write the Ook program to `FILE`",
				Required: true,
			},
		},
		Action: func(c *cli.Context) error {
			return esolang.TranslateBrainfuckFile(c.String("file"), c.String("output"))
		},
	}
}

func traceCommand() *cli.Command {
	return &cli.Command{
		Name:  "trace",
		Usage: "Prints a trace recorded by piet --trace",
		Flags: []cli.Flag{
			fileFlag("Path to the trace `FILE`"),
		},
		Action: func(c *cli.Context) error {
			f, err := os.Open(c.String("file"))
			if err != nil {
				return err
			}
			defer f.Close()

			t, err := esolang.ReadTrace(f)
			if err != nil {
				return err
			}

			w := c.App.Writer
			h := t.Header
			fmt.Fprintf(w, "Run %s: %s %dx%d codel size %d\n", h.Run, h.Program, h.Width, h.Height, h.CodelSize)
			for _, s := range t.Steps {
				fmt.Fprintf(w, "Step %d: Pos(%d,%d) Color:%s Op:%s Block:%d DP:%s CC:%s Stack:%v\n",
					s.Step, s.X, s.Y, s.Color, s.OpCode, s.BlockSize, s.DP, s.CC, s.Stack)
			}
			return nil
		},
	}
}

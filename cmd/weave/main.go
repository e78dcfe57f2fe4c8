package main

import (
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/weave"
	"github.com/bodgit/weave/raster"
	"github.com/urfave/cli/v2"
)

const (
	defaultDB     = "weave.db"
	defaultOutDir = "output"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func options(c *cli.Context) (weave.Options, error) {
	var opts weave.Options

	switch c.String("mode") {
	case "stretch":
		opts.Mode = raster.Stretch
	case "fit":
		opts.Mode = raster.AspectFit
	default:
		return opts, fmt.Errorf("unknown mode \"%s\"", c.String("mode"))
	}

	switch c.String("policy") {
	case "min":
		opts.Policy = weave.PolicyMinimum
	case "box":
		opts.Policy = weave.PolicyFitBox
	default:
		return opts, fmt.Errorf("unknown policy \"%s\"", c.String("policy"))
	}

	opts.Colors = c.Int("colors")

	return opts, nil
}

func newWeaver(c *cli.Context) (*weave.Weaver, error) {
	logger := log.New(ioutil.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}

	file := c.String("db")
	if c.Bool("no-cache") {
		file = ""
	}

	return weave.New(file, logger)
}

// outputPath resolves a relative output name against the output
// directory and appends a .png suffix if it is missing.
func outputPath(dir, name string) string {
	if !strings.HasSuffix(strings.ToLower(name), ".png") {
		name += ".png"
	}
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(dir, name)
}

func main() {
	app := cli.NewApp()

	app.Name = "weave"
	app.Usage = "Column-interleave two images into a composite"
	app.ArgsUsage = "IMAGE1 IMAGE2 OUTPUT"
	app.Version = "1.0.0"

	cwd, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "db",
			EnvVars: []string{"WEAVE_DB"},
			Value:   filepath.Join(cwd, defaultDB),
			Usage:   "path to composite cache database",
		},
		&cli.StringFlag{
			Name:  "output-dir",
			Value: filepath.Join(cwd, defaultOutDir),
			Usage: "directory relative output filenames resolve against",
		},
		&cli.StringFlag{
			Name:  "mode",
			Value: "stretch",
			Usage: "normalization mode, \"stretch\" or \"fit\"",
		},
		&cli.StringFlag{
			Name:  "policy",
			Value: "min",
			Usage: "common size policy, \"min\" or \"box\"",
		},
		&cli.IntFlag{
			Name:  "colors",
			Usage: "quantize output to at most this many colors",
		},
		&cli.BoolFlag{
			Name:  "no-cache",
			Usage: "bypass the composite cache",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Action = func(c *cli.Context) error {
		if c.NArg() < 3 {
			cli.ShowAppHelpAndExit(c, 1)
		}

		opts, err := options(c)
		if err != nil {
			return cli.NewExitError(err, 1)
		}

		w, err := newWeaver(c)
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		defer w.Close()

		out := outputPath(c.String("output-dir"), c.Args().Get(2))
		if err := os.MkdirAll(filepath.Dir(out), 0755); err != nil {
			return cli.NewExitError(err, 1)
		}

		if err := w.Combine(c.Args().Get(0), c.Args().Get(1), out, opts); err != nil {
			return cli.NewExitError(err, 1)
		}

		return nil
	}

	app.Commands = []*cli.Command{
		{
			Name:        "batch",
			Usage:       "Weave the first two images found in every directory",
			Description: "",
			ArgsUsage:   "DIRECTORY",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				opts, err := options(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				w, err := newWeaver(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer w.Close()

				if err := w.Batch(c.Args().First(), opts); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

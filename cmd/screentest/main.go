package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/urfave/cli"

	"github.com/screenburn/screentest/screentest"
	"github.com/screenburn/screentest/screentest/backend/fbdev"
	"github.com/screenburn/screentest/screentest/backend/headless"
	"github.com/screenburn/screentest/screentest/backend/sdl2"
	"github.com/screenburn/screentest/screentest/backend/terminal"
	"github.com/screenburn/screentest/screentest/display"
	"github.com/screenburn/screentest/screentest/input"
	"github.com/screenburn/screentest/screentest/pattern"
	"github.com/screenburn/screentest/screentest/snapshot"
)

func main() {
	app := cli.NewApp()
	app.Name = "screentest"
	app.Description = "Full-screen test patterns for spotting display burn-in"
	app.Usage = "screentest [options]"
	app.Version = "1.0.0"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "backend",
			Usage: "Presentation backend: terminal, sdl2, fbdev or headless",
			Value: "terminal",
		},
		cli.StringFlag{
			Name:  "pattern",
			Usage: "Starting pattern (name or 1-based index)",
		},
		cli.IntFlag{
			Name:  "speed",
			Usage: "Initial animation speed (1-10)",
			Value: display.DefaultSpeed,
		},
		cli.IntFlag{
			Name:  "scale",
			Usage: "Window scale factor for windowed backends",
			Value: display.DefaultPixelScale,
		},
		cli.IntFlag{
			Name:  "frames",
			Usage: "Number of frames to run in headless mode (required for headless)",
			Value: 0,
		},
		cli.IntFlag{
			Name:  "cycle-interval",
			Usage: "Advance to the next pattern every N frames in headless mode (0 = stay)",
			Value: 0,
		},
		cli.IntFlag{
			Name:  "snapshot-interval",
			Usage: "Save frame snapshots every N frames in headless mode (0 = disabled)",
			Value: 0,
		},
		cli.StringFlag{
			Name:  "snapshot-dir",
			Usage: "Directory to save frame snapshots (default: temp directory)",
		},
		cli.BoolFlag{
			Name:  "list-patterns",
			Usage: "Print the pattern sequence and exit",
		},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		slog.Error("Error running screentest", "error", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	if c.Bool("list-patterns") {
		for p := pattern.Pattern(0); p < pattern.Count; p++ {
			fmt.Printf("%2d  %s\n", int(p)+1, p)
		}
		return nil
	}

	startPattern, err := parsePattern(c.String("pattern"))
	if err != nil {
		return err
	}

	name := c.String("backend")
	opts := screentest.Options{
		Title:        "Screen Burn-In Test",
		Scale:        c.Int("scale"),
		StartPattern: startPattern,
		Speed:        c.Int("speed"),
	}

	switch name {
	case "terminal":
		opts.Backend = terminal.New()
	case "sdl2":
		opts.Backend = sdl2.New()
	case "fbdev":
		opts.Backend = fbdev.New()
	case "headless":
		frames := c.Int("frames")
		if frames <= 0 {
			return fmt.Errorf("headless mode requires --frames with a positive value")
		}

		snapConfig := headless.SnapshotConfig{
			Interval: c.Int("snapshot-interval"),
			BaseName: "screentest",
		}
		if snapConfig.Interval > 0 {
			snapConfig.Enabled = true
			dir, err := snapshot.PrepareDir(c.String("snapshot-dir"))
			if err != nil {
				return err
			}
			snapConfig.Directory = dir
		}

		opts.Backend = headless.New(frames, cycleScript(frames, c.Int("cycle-interval")), snapConfig)
		opts.SkipWelcome = true
	default:
		return fmt.Errorf("unknown backend %q", name)
	}

	session, err := screentest.NewSession(opts)
	if err != nil {
		return err
	}
	return session.Run()
}

// parsePattern accepts a pattern name or a 1-based index.
func parsePattern(arg string) (pattern.Pattern, error) {
	if arg == "" {
		return 0, nil
	}
	if n, err := strconv.Atoi(arg); err == nil {
		if n < 1 || n > int(pattern.Count) {
			return 0, fmt.Errorf("pattern index out of range: %d (1-%d)", n, int(pattern.Count))
		}
		return pattern.Pattern(n - 1), nil
	}
	for p := pattern.Pattern(0); p < pattern.Count; p++ {
		if p.String() == arg {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown pattern %q (try --list-patterns)", arg)
}

// cycleScript builds a headless input script that taps the next button
// every interval frames.
func cycleScript(frames, interval int) map[int]input.Buttons {
	if interval <= 0 {
		return nil
	}
	script := make(map[int]input.Buttons)
	for f := interval; f < frames; f += interval {
		script[f] = input.ButtonNext
	}
	return script
}

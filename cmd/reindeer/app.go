package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/geraud-g/reindeer/mazefile"
	"github.com/geraud-g/reindeer/route"
)

// newApp builds the command tree. Output goes to the root Writer so tests
// can capture it.
func newApp() *cli.Command {
	return &cli.Command{
		Name:    AppName,
		Usage:   "cheapest route for a reindeer that hates turning",
		Version: Version,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "debug",
				Usage:   "enable debug logging",
				Sources: cli.EnvVars("REINDEER_DEBUG"),
			},
			&cli.DurationFlag{
				Name:    "timeout",
				Usage:   "abort when solving takes longer than this (0 = no limit)",
				Sources: cli.EnvVars("REINDEER_TIMEOUT"),
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			if cmd.Bool("debug") {
				log.SetFlags(log.LstdFlags | log.Lshortfile)
			} else {
				log.SetFlags(log.LstdFlags)
			}
			return ctx, nil
		},
		Commands: []*cli.Command{
			solveCommand(),
			batchCommand(),
		},
	}
}

func costFlags() []cli.Flag {
	return []cli.Flag{
		&cli.Int64Flag{
			Name:    "move-cost",
			Usage:   "cost of one step forward",
			Value:   route.DefaultMoveCost,
			Sources: cli.EnvVars("REINDEER_MOVE_COST"),
		},
		&cli.Int64Flag{
			Name:    "turn-cost",
			Usage:   "cost of one 90° turn",
			Value:   route.DefaultTurnCost,
			Sources: cli.EnvVars("REINDEER_TURN_COST"),
		},
	}
}

// costOptions validates the cost flags and converts them to solver options.
func costOptions(cmd *cli.Command) ([]route.Option, error) {
	move, turn := cmd.Int64("move-cost"), cmd.Int64("turn-cost")
	if move <= 0 || turn <= 0 {
		return nil, fmt.Errorf("%w: move-cost=%d turn-cost=%d", route.ErrBadCost, move, turn)
	}
	return []route.Option{route.WithMoveCost(move), route.WithTurnCost(turn)}, nil
}

// withTimeout applies the root --timeout flag to ctx.
func withTimeout(ctx context.Context, cmd *cli.Command) (context.Context, context.CancelFunc) {
	if d := cmd.Root().Duration("timeout"); d > 0 {
		return context.WithTimeout(ctx, d)
	}
	return context.WithCancel(ctx)
}

func solveCommand() *cli.Command {
	return &cli.Command{
		Name:      "solve",
		Usage:     "solve one or more maze files",
		ArgsUsage: "FILE...",
		Description: "Prints the cheapest cost of every maze. A maze whose end cannot be\n" +
			"reached prints \"unreachable\" and does not fail the command.",
		Flags: append(costFlags(),
			&cli.BoolFlag{
				Name:  "path",
				Usage: "draw the cheapest route onto the maze",
			},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.NArg() == 0 {
				return cli.Exit("solve: at least one maze file is required", 2)
			}
			opts, err := costOptions(cmd)
			if err != nil {
				return err
			}
			if cmd.Bool("path") {
				opts = append(opts, route.WithReturnPath())
			}

			ctx, cancel := withTimeout(ctx, cmd)
			defer cancel()

			w := cmd.Root().Writer
			for _, file := range cmd.Args().Slice() {
				if err := solveFile(ctx, w, file, opts); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// solveFile loads, solves and prints one maze. Unreachable goals are
// reported as output, not as a command failure.
func solveFile(ctx context.Context, w io.Writer, file string, opts []route.Option) error {
	m, err := mazefile.Load(file)
	if err != nil {
		return err
	}

	start := time.Now()
	res, err := solveWithin(ctx, m, opts)
	log.Printf("solved %s in %v (settled=%d stale=%d pushed=%d)", file, time.Since(start), res.Settled, res.Stale, res.Pushed)
	switch {
	case errors.Is(err, route.ErrUnreachable):
		fmt.Fprintf(w, "%s: unreachable\n", file)
		return nil
	case err != nil:
		return fmt.Errorf("%s: %w", file, err)
	}

	fmt.Fprintf(w, "%s: %d\n", file, res.Cost)
	if res.Path != nil {
		return mazefile.Render(w, m, res.Path)
	}
	return nil
}

// solveWithin runs the solve in the background and gives up when ctx ends.
// The solver itself is not interrupted; its goroutine finishes on its own.
func solveWithin(ctx context.Context, m *mazefile.Maze, opts []route.Option) (route.Result, error) {
	type outcome struct {
		res route.Result
		err error
	}
	done := make(chan outcome, 1)
	go func() {
		res, err := m.Solve(opts...)
		done <- outcome{res, err}
	}()

	select {
	case o := <-done:
		return o.res, o.err
	case <-ctx.Done():
		return route.Result{}, ctx.Err()
	}
}

func batchCommand() *cli.Command {
	return &cli.Command{
		Name:      "batch",
		Usage:     "solve every maze listed in a YAML manifest in parallel",
		ArgsUsage: "MANIFEST",
		Description: "Checks every maze of the manifest. A maze fails when it cannot be\n" +
			"solved (including an unreachable end) or when its cost differs from\n" +
			"its expect value; any failure exits with status 1.",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "workers",
				Usage:   "maximum concurrent solves (0 = manifest value, or unlimited)",
				Sources: cli.EnvVars("REINDEER_WORKERS"),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.NArg() != 1 {
				return cli.Exit("batch: exactly one manifest is required", 2)
			}
			manifest, err := mazefile.LoadManifest(cmd.Args().First())
			if err != nil {
				return err
			}
			jobs, err := manifest.Jobs()
			if err != nil {
				return err
			}

			workers := manifest.Workers
			if n := cmd.Int("workers"); n > 0 {
				workers = n
			}

			ctx, cancel := withTimeout(ctx, cmd)
			defer cancel()

			start := time.Now()
			out, err := route.SolveAll(ctx, jobs, workers)
			if err != nil {
				return err
			}
			log.Printf("solved %d mazes in %v with %d workers", len(out), time.Since(start), workers)

			failed := report(cmd.Root().Writer, manifest, out)
			if failed > 0 {
				return cli.Exit(fmt.Sprintf("batch: %d of %d mazes failed", failed, len(out)), 1)
			}
			return nil
		},
	}
}

// report prints one line per outcome and returns how many failed: a solver
// error, or a cost different from the entry's expectation.
func report(w io.Writer, m *mazefile.Manifest, out []route.Outcome) int {
	failed := 0
	for i, o := range out {
		entry := m.Mazes[i]
		switch {
		case o.Err != nil:
			failed++
			fmt.Fprintf(w, "FAIL %s: %v\n", o.Name, o.Err)
		case entry.Expect != nil && *entry.Expect != o.Result.Cost:
			failed++
			fmt.Fprintf(w, "FAIL %s: %d (want %d)\n", o.Name, o.Result.Cost, *entry.Expect)
		default:
			fmt.Fprintf(w, "ok   %s: %d\n", o.Name, o.Result.Cost)
		}
	}
	return failed
}

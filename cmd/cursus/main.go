package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/Feralthedogg/Cursus/pkg/advance"
	"github.com/Feralthedogg/Cursus/pkg/config"
	"github.com/Feralthedogg/Cursus/pkg/effect"
	"github.com/Feralthedogg/Cursus/pkg/module"
	"github.com/Feralthedogg/Cursus/pkg/race"
	"github.com/Feralthedogg/Cursus/pkg/random"
	"github.com/Feralthedogg/Cursus/pkg/render"
	"github.com/Feralthedogg/Cursus/pkg/state"
)

var version = "0.1.0-dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "cursus",
		Short: "Cursus - functional race simulation",
		Long: `cursus runs a discrete-time car race built from pure functional units.

Each step advances every car independently against a stall probability and
renders the track; state is threaded explicitly between steps, never mutated.`,
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newRunCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("cursus version %s\n", version)
		},
	}
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a race simulation",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if path, _ := cmd.Flags().GetString("config"); path != "" {
				loaded, err := config.Load(path)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			if cmd.Flags().Changed("cars") {
				cfg.Cars, _ = cmd.Flags().GetInt("cars")
			}
			if cmd.Flags().Changed("steps") {
				cfg.Steps, _ = cmd.Flags().GetInt("steps")
			}
			if cmd.Flags().Changed("stall") {
				cfg.StallProbability, _ = cmd.Flags().GetFloat64("stall")
			}
			if cmd.Flags().Changed("mark") {
				cfg.Mark, _ = cmd.Flags().GetString("mark")
			}
			if cmd.Flags().Changed("finish") {
				cfg.FinishDistance, _ = cmd.Flags().GetInt("finish")
			}
			if cmd.Flags().Changed("heats") {
				cfg.Heats, _ = cmd.Flags().GetInt("heats")
			}
			if cmd.Flags().Changed("seed1") {
				cfg.Seed1, _ = cmd.Flags().GetUint64("seed1")
			}
			if cmd.Flags().Changed("seed2") {
				cfg.Seed2, _ = cmd.Flags().GetUint64("seed2")
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return runRace(cfg, os.Stdout, log.New(os.Stderr))
		},
	}

	cmd.Flags().String("config", "", "Path to a YAML scenario file")
	cmd.Flags().Int("cars", 3, "Number of cars on the track")
	cmd.Flags().Int("steps", 5, "Simulation step budget")
	cmd.Flags().Float64("stall", 0.3, "Per-step stall probability")
	cmd.Flags().String("mark", "-", "Character used to draw progress")
	cmd.Flags().Int("finish", 0, "Finish distance (0 disables the finish line)")
	cmd.Flags().Int("heats", 0, "Number of independent heats to run concurrently")
	cmd.Flags().Uint64("seed1", 0, "First seed half (both zero draws a fresh seed)")
	cmd.Flags().Uint64("seed2", 0, "Second seed half")

	return cmd
}

func runRace(cfg config.Config, out io.Writer, logger *log.Logger) error {
	seed1, seed2 := cfg.Seed1, cfg.Seed2
	if seed1 == 0 && seed2 == 0 {
		var err error
		if seed1, err = random.CryptoSeed(); err != nil {
			return err
		}
		if seed2, err = random.CryptoSeed(); err != nil {
			return err
		}
	}

	logger.Info("race started",
		"cars", cfg.Cars, "steps", cfg.Steps,
		"stall", cfg.StallProbability,
		"seed1", seed1, "seed2", seed2,
	)

	initial := state.New(cfg.Cars, cfg.InitialPosition)

	if cfg.Heats > 1 {
		return runHeats(cfg, initial, seed1, seed2, logger)
	}

	deps := module.NewContainer[random.Source](random.NewSeeded(seed1, seed2), out)
	loop := race.NewLoop(
		advance.NewWithThreshold(deps.GetSource(), cfg.StallProbability),
		render.NewWithMark(cfg.MarkRune()),
	)

	seq, err := loop.RunSeq(initial, cfg.Steps)
	if err != nil {
		return err
	}
	final := initial
	for res := range seq {
		if err := effect.Perform(effect.NewWriteEffect(deps.GetOutput(), res.Lines)); err != nil {
			return err
		}
		final = res.State
	}

	standings := race.ComputeStandings(final, cfg.FinishDistance)
	logger.Info("race finished",
		"positions", final.Positions(),
		"lead", standings.Lead,
		"leaders", standings.Leaders,
		"finished", standings.Finished,
	)
	return nil
}

func runHeats(cfg config.Config, initial state.Snapshot, seed1, seed2 uint64, logger *log.Logger) error {
	finals, err := race.Heats(func(heat int) race.Loop {
		// Offset the seed per heat so every race draws independently.
		source := random.NewSeeded(seed1+uint64(heat)+1, seed2)
		return race.NewLoop(
			advance.NewWithThreshold(source, cfg.StallProbability),
			render.NewWithMark(cfg.MarkRune()),
		)
	}, initial, cfg.Steps, cfg.Heats)
	if err != nil {
		return err
	}
	for i, final := range finals {
		standings := race.ComputeStandings(final, cfg.FinishDistance)
		logger.Info("heat finished",
			"heat", i,
			"positions", final.Positions(),
			"lead", standings.Lead,
			"leaders", standings.Leaders,
			"finished", standings.Finished,
		)
	}
	return nil
}

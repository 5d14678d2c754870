package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/willowlog/willow/internal/bundle"
	"github.com/willowlog/willow/internal/harness"
	"github.com/willowlog/willow/internal/match"
	"github.com/willowlog/willow/internal/store"
)

// ScoreOptions holds flags for the score command.
type ScoreOptions struct {
	*RootOptions
	Database string
	File     string
	At       int // replay index; -1 means full log
}

// NewScoreCommand creates the score command.
func NewScoreCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ScoreOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "score [match-id]",
		Short: "Reconstruct a match and print its scorecard",
		Long: `Reconstruct a match from its ball log and print the derived scorecard.

The log comes either from a database (pass a match id with --db) or from a
scenario file (--file). --at replays only the first N events - the scorecard
as it stood mid-match.

Exit codes:
  0 - Scorecard printed
  2 - Command error (match not found, invalid file, etc.)

Examples:
  willow score 0198f6a2-7c9b-7c3d-b1a4-0e8d1f2a3b4c --db ./willow.db
  willow score --file scenario.yaml
  willow score --file scenario.yaml --at 24
  willow score --file scenario.yaml --format json --verbose`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			matchID := ""
			if len(args) == 1 {
				matchID = args[0]
			}
			return runScore(opts, matchID, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database")
	cmd.Flags().StringVar(&opts.File, "file", "", "scenario file to score instead of a stored match")
	cmd.Flags().IntVar(&opts.At, "at", -1, "replay only the first N events")

	return cmd
}

func runScore(opts *ScoreOptions, matchID string, cmd *cobra.Command) error {
	cfg, events, err := loadLog(opts, matchID)
	if err != nil {
		return err
	}

	var bundleOpts []bundle.Option
	if opts.At >= 0 {
		bundleOpts = append(bundleOpts, bundle.WithReplayIndex(opts.At))
	}
	b := bundle.New(cfg, events, bundleOpts...)

	if opts.Format == "json" {
		snapshot, err := match.MarshalCanonical(harness.ScorecardSnapshot(b))
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to render scorecard", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(snapshot))
		return nil
	}

	printScorecard(cmd, b, opts.Verbose)
	return nil
}

// loadLog resolves the config and event log from whichever source the flags
// point at.
func loadLog(opts *ScoreOptions, matchID string) (match.MatchConfig, []match.BallEvent, error) {
	switch {
	case opts.File != "":
		sc, err := harness.LoadScenario(opts.File)
		if err != nil {
			return match.MatchConfig{}, nil, WrapExitError(ExitCommandError, "failed to load scenario", err)
		}
		events, err := harness.CompileEvents(sc)
		if err != nil {
			return match.MatchConfig{}, nil, WrapExitError(ExitCommandError, "failed to compile scenario", err)
		}
		return sc.Config, events, nil

	case opts.Database != "" && matchID != "":
		ctx := context.Background()
		st, err := store.Open(opts.Database)
		if err != nil {
			return match.MatchConfig{}, nil, WrapExitError(ExitCommandError, "failed to open database", err)
		}
		defer st.Close()

		cfg, err := st.ReadConfig(ctx, matchID)
		if err != nil {
			return match.MatchConfig{}, nil, WrapExitError(ExitCommandError, "failed to read match", err)
		}
		events, err := st.ReadBalls(ctx, matchID)
		if err != nil {
			return match.MatchConfig{}, nil, WrapExitError(ExitCommandError, "failed to read ball log", err)
		}
		return cfg, events, nil

	default:
		return match.MatchConfig{}, nil, NewExitError(ExitCommandError, "either --file or a match id with --db is required")
	}
}

// printScorecard renders the text scorecard.
func printScorecard(cmd *cobra.Command, b *bundle.Bundle, verbose bool) {
	w := cmd.OutOrStdout()
	core := b.Core()

	for _, in := range core.Score.Innings {
		fmt.Fprintf(w, "%s  %d/%d  (%s ov)\n", in.TeamName, in.Runs, in.Wickets, in.Overs)
	}
	if len(core.CurrentOver) > 0 {
		fmt.Fprintf(w, "This over: %v\n", core.CurrentOver)
	}
	if core.Chase != nil && core.Score.Result == "" {
		fmt.Fprintf(w, "Need %d from %d balls (req. rate %.2f)\n",
			core.Chase.RunsNeeded, core.Chase.BallsRemaining, core.Chase.RequiredRate)
	}
	if core.Score.Result != "" {
		fmt.Fprintf(w, "Result: %s\n", core.Score.Result)
	}

	if !verbose {
		return
	}

	phase := b.Phase()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Batting")
	for _, l := range phase.Batting {
		status := "not out"
		if l.Out {
			status = string(l.Dismissal)
		}
		fmt.Fprintf(w, "  %-12s %4d (%d)  4s:%d 6s:%d  SR %.2f  %s\n",
			l.PlayerID, l.Runs, l.Balls, l.Fours, l.Sixes, l.StrikeRate, status)
	}
	fmt.Fprintln(w, "Bowling")
	for _, l := range phase.Bowling {
		fmt.Fprintf(w, "  %-12s %s-%d-%d-%d  econ %.2f\n",
			l.PlayerID, l.Overs, l.Maidens, l.RunsConceded, l.Wickets, l.Economy)
	}
	if len(phase.FallOfWickets) > 0 {
		fmt.Fprintln(w, "Fall of wickets")
		for _, f := range phase.FallOfWickets {
			fmt.Fprintf(w, "  %s (%s, %s)\n", f.Score, f.BatterID, f.Over)
		}
	}
}

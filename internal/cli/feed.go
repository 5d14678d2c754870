package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/willowlog/willow/internal/harness"
	"github.com/willowlog/willow/internal/store"
)

// FeedOptions holds flags for the feed command.
type FeedOptions struct {
	*RootOptions
	Database string
}

// FeedResult holds the outcome of feeding one scenario into the store.
type FeedResult struct {
	MatchID  string `json:"match_id"`
	Scenario string `json:"scenario"`
	Appended int    `json:"appended"`
	FirstSeq int    `json:"first_seq"`
}

// NewFeedCommand creates the feed command.
func NewFeedCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &FeedOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "feed <scenario.yaml>",
		Short: "Append a scenario's ball log into a database",
		Long: `Compile a scenario file into a ball log and append it to the store.

The scenario's configuration is stored alongside the log. When the scenario
carries no match id one is minted, so repeated feeds of an id-less scenario
create separate matches; feeds of an id-carrying scenario are idempotent.

Exit codes:
  0 - Log appended
  2 - Command error (invalid file, database error, etc.)

Examples:
  willow feed scenario.yaml --db ./willow.db
  willow feed scenario.yaml --db ./willow.db --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFeed(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (required)")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runFeed(opts *FeedOptions, scenarioPath string, cmd *cobra.Command) error {
	ctx := context.Background()
	logger := newLogger(cmd, opts.RootOptions)

	sc, err := harness.LoadScenario(scenarioPath)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load scenario", err)
	}

	st, err := store.Open(opts.Database)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer st.Close()

	matchID, err := st.CreateMatch(ctx, sc.Config)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to create match", err)
	}
	// Compile with the stored id so every event carries it.
	sc.Config.MatchID = matchID

	events, err := harness.CompileEvents(sc)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to compile scenario", err)
	}
	logger.Debug("scenario compiled", "scenario", sc.Name, "events", len(events))

	first, err := st.AppendBalls(ctx, matchID, events)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to append balls", err)
	}

	result := FeedResult{
		MatchID:  matchID,
		Scenario: sc.Name,
		Appended: len(events),
		FirstSeq: first,
	}

	if opts.Format == "json" {
		return writeJSON(cmd.OutOrStdout(), CLIResponse{Status: "ok", Data: result})
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Appended %d ball(s) to match %s (from seq %d)\n",
		result.Appended, result.MatchID, result.FirstSeq)
	return nil
}

// newLogger builds the slog logger the commands share: text to stderr,
// debug level when --verbose.
func newLogger(cmd *cobra.Command, opts *RootOptions) *slog.Logger {
	level := slog.LevelInfo
	if opts.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

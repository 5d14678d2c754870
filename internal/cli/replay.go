package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/willowlog/willow/internal/harness"
	"github.com/willowlog/willow/internal/store"
)

// ReplayOptions holds flags for the replay command.
type ReplayOptions struct {
	*RootOptions
	Database string
	MatchID  string // optional - specific match only
	Prefixes bool   // verify every log prefix, not just the full log
}

// ReplayMatchResult holds the replay result for a single match.
type ReplayMatchResult struct {
	MatchID       string `json:"match_id"`
	Events        int    `json:"events"`
	Deterministic bool   `json:"deterministic"`
	Hash          string `json:"hash,omitempty"`
	Mismatch      string `json:"mismatch,omitempty"`
}

// ReplayResult holds the overall replay result.
type ReplayResult struct {
	Matches          []ReplayMatchResult `json:"matches"`
	TotalMatches     int                 `json:"total_matches"`
	AllDeterministic bool                `json:"all_deterministic"`
}

// NewReplayCommand creates the replay command.
func NewReplayCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ReplayOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "replay",
		Short: "Replay ball logs and verify determinism",
		Long: `Replay stored ball logs and verify deterministic reconstruction.

Each match's log is folded twice - whole-log and one event at a time - and
the resulting states are compared byte-for-byte via their canonical hashes.
With --prefixes every prefix of the log is verified, not just the full log.

Exit codes:
  0 - All matches are deterministic
  1 - Determinism verification failed (divergence detected)
  2 - Command error (database not found, etc.)

Examples:
  willow replay --db ./willow.db
  willow replay --db ./willow.db --match 0198f6a2-7c9b-7c3d-b1a4-0e8d1f2a3b4c
  willow replay --db ./willow.db --prefixes --format json`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplay(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (required)")
	_ = cmd.MarkFlagRequired("db")
	cmd.Flags().StringVar(&opts.MatchID, "match", "", "replay a specific match only")
	cmd.Flags().BoolVar(&opts.Prefixes, "prefixes", false, "verify every log prefix")

	return cmd
}

func runReplay(opts *ReplayOptions, cmd *cobra.Command) error {
	ctx := context.Background()

	st, err := store.Open(opts.Database)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer st.Close()

	var matchIDs []string
	if opts.MatchID != "" {
		matchIDs = []string{opts.MatchID}
	} else {
		records, err := st.ListMatches(ctx)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to list matches", err)
		}
		for _, rec := range records {
			matchIDs = append(matchIDs, rec.ID)
		}
	}

	if len(matchIDs) == 0 {
		if opts.Format == "json" {
			return outputReplayJSON(cmd, ReplayResult{
				Matches:          []ReplayMatchResult{},
				AllDeterministic: true,
			})
		}
		fmt.Fprintln(cmd.OutOrStdout(), "No matches found in database.")
		return nil
	}

	result := ReplayResult{
		Matches:          make([]ReplayMatchResult, 0, len(matchIDs)),
		TotalMatches:     len(matchIDs),
		AllDeterministic: true,
	}

	for _, id := range matchIDs {
		matchResult, err := replayMatch(ctx, st, id, opts.Prefixes)
		if err != nil {
			return WrapExitError(ExitCommandError, fmt.Sprintf("failed to replay match %s", id), err)
		}

		result.Matches = append(result.Matches, matchResult)
		if !matchResult.Deterministic {
			result.AllDeterministic = false
		}
	}

	if opts.Format == "json" {
		return outputReplayJSON(cmd, result)
	}
	return outputReplayText(cmd, result, opts.Verbose)
}

// replayMatch loads one match's log and runs the determinism validator.
func replayMatch(ctx context.Context, st *store.Store, matchID string, prefixes bool) (ReplayMatchResult, error) {
	cfg, err := st.ReadConfig(ctx, matchID)
	if err != nil {
		return ReplayMatchResult{}, err
	}
	events, err := st.ReadBalls(ctx, matchID)
	if err != nil {
		return ReplayMatchResult{}, err
	}

	var report harness.DeterminismReport
	if prefixes {
		report = harness.VerifyPrefixes(cfg, events)
	} else {
		report = harness.VerifyDeterminism(cfg, events)
	}

	result := ReplayMatchResult{
		MatchID:       matchID,
		Events:        report.Events,
		Deterministic: report.OK,
		Hash:          report.FullHash,
	}
	if report.Mismatch != nil {
		result.Mismatch = fmt.Sprintf("%s: expected %s, got %s",
			report.Mismatch.Path, report.Mismatch.Expected, report.Mismatch.Actual)
	} else if report.Err != "" {
		result.Mismatch = report.Err
	}
	return result, nil
}

// outputReplayJSON outputs the replay result as JSON.
func outputReplayJSON(cmd *cobra.Command, result ReplayResult) error {
	response := CLIResponse{Status: "ok", Data: result}
	if !result.AllDeterministic {
		response.Status = "error"
		response.Error = &CLIError{
			Code:    ErrCodeDeterminism,
			Message: "determinism verification failed",
		}
	}

	if err := writeJSON(cmd.OutOrStdout(), response); err != nil {
		return err
	}
	if !result.AllDeterministic {
		return NewExitError(ExitFailure, "determinism verification failed")
	}
	return nil
}

// outputReplayText outputs the replay result as text.
func outputReplayText(cmd *cobra.Command, result ReplayResult, verbose bool) error {
	w := cmd.OutOrStdout()

	fmt.Fprintf(w, "Replay Summary: %d match(es)\n", result.TotalMatches)
	fmt.Fprintln(w)

	for _, m := range result.Matches {
		status := "✓"
		if !m.Deterministic {
			status = "✗"
		}

		fmt.Fprintf(w, "%s Match: %s (%d events)\n", status, m.MatchID, m.Events)
		if verbose && m.Hash != "" {
			fmt.Fprintf(w, "  Hash: %s\n", m.Hash)
		}
		if m.Mismatch != "" {
			fmt.Fprintf(w, "  Divergence: %s\n", m.Mismatch)
		}
	}
	fmt.Fprintln(w)

	if result.AllDeterministic {
		fmt.Fprintln(w, "✓ All matches verified deterministic")
		return nil
	}

	fmt.Fprintln(w, "✗ Determinism verification failed")
	return NewExitError(ExitFailure, "determinism verification failed")
}

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/willowlog/willow/internal/harness"
)

// FileValidation holds validation results for one scenario file.
type FileValidation struct {
	File   string   `json:"file"`
	Name   string   `json:"name,omitempty"`
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// ValidationResult holds the overall validation result.
type ValidationResult struct {
	Valid   bool             `json:"valid"`
	Files   []FileValidation `json:"files"`
	Invalid int              `json:"invalid"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <scenarios-dir>",
		Short: "Validate scenario files without running them",
		Long: `Validate scenario files: yaml structure, configuration, token grammar
and flow consistency, without compiling logs or running assertions.
Faster than test for development feedback.

Exit codes:
  0 - All files valid
  1 - One or more files invalid
  2 - Command error (directory not found, etc.)`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, scenariosDir string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Verbose logs go to stderr to avoid corrupting JSON
		Verbose:   opts.Verbose,
	}

	if _, err := os.Stat(scenariosDir); os.IsNotExist(err) {
		return NewExitError(ExitCommandError, fmt.Sprintf("scenarios directory not found: %s", scenariosDir))
	}

	files, err := FindScenarioFiles(scenariosDir, "")
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to find scenarios", err)
	}
	formatter.VerboseLog("Found %d scenario file(s) in %s", len(files), scenariosDir)

	result := ValidationResult{Valid: true}
	for _, path := range files {
		fv := validateFile(path, formatter)
		result.Files = append(result.Files, fv)
		if !fv.Valid {
			result.Valid = false
			result.Invalid++
		}
	}

	if opts.Format == "json" {
		response := CLIResponse{Status: "ok", Data: result}
		if !result.Valid {
			response.Status = "error"
			response.Error = &CLIError{
				Code:    ErrCodeInvalid,
				Message: fmt.Sprintf("%d file(s) invalid", result.Invalid),
			}
		}
		if err := writeJSON(cmd.OutOrStdout(), response); err != nil {
			return err
		}
		if !result.Valid {
			return NewExitError(ExitFailure, fmt.Sprintf("%d file(s) invalid", result.Invalid))
		}
		return nil
	}

	w := cmd.OutOrStdout()
	for _, fv := range result.Files {
		if fv.Valid {
			fmt.Fprintf(w, "✓ %s\n", fv.File)
			continue
		}
		fmt.Fprintf(w, "✗ %s\n", fv.File)
		for _, e := range fv.Errors {
			fmt.Fprintf(w, "  %s\n", e)
		}
	}
	if !result.Valid {
		return NewExitError(ExitFailure, fmt.Sprintf("%d file(s) invalid", result.Invalid))
	}
	fmt.Fprintf(w, "All %d file(s) valid\n", len(result.Files))
	return nil
}

// validateFile loads one scenario file and dry-run compiles it: structural
// validation plus the token grammar and roster checks the compiler applies.
func validateFile(path string, formatter *OutputFormatter) FileValidation {
	formatter.VerboseLog("Validating: %s", path)

	fv := FileValidation{File: path, Valid: true}

	sc, err := harness.LoadScenario(path)
	if err != nil {
		fv.Valid = false
		fv.Errors = append(fv.Errors, err.Error())
		return fv
	}
	fv.Name = sc.Name

	if _, err := harness.CompileEvents(sc); err != nil {
		fv.Valid = false
		fv.Errors = append(fv.Errors, err.Error())
	}
	return fv
}

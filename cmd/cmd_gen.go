package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/duke-git/lancet/v2/strutil"
	"github.com/orochaa/go-clack/prompts"
	"github.com/orochaa/go-clack/third_party/picocolors"
	"github.com/spf13/cobra"

	"aicommit/internal/config"
	"aicommit/pkg/commit"
	"aicommit/pkg/gitdiff"
	"aicommit/pkg/llm"
	"aicommit/pkg/repoctx"
	"aicommit/pkg/termio"
)

var genCmd = &cobra.Command{
	Use: "gen",
	Aliases: []string{
		"g",
		"generate",
	},
	Short:       "Generate commit message",
	Long:        `Generates a Conventional Commits message from the staged diff and either commits with it or writes it out.`,
	Annotations: map[string]string{"group": "main"},
	Args:        cobra.NoArgs,
	RunE:        runGenE,
}

var genFlags = genOptions{
	Provider: OpenAIProvider,
}

func genAddFlags(cmd *cobra.Command) {
	addCommonLLMFlags(cmd, &genFlags.Provider, &genFlags.Model)
	cmd.Flags().BoolVarP(&genFlags.All, "all", "a", false, "Automatically stage all changes in tracked files before generating")
	cmd.Flags().BoolVar(&genFlags.DryRun, "dry-run", false, "Print the generated message without committing")
	cmd.Flags().StringVar(&genFlags.MessageFile, "message-file", "", "Write the generated message to the given file instead of committing")
	cmd.Flags().StringVar(&genFlags.Diff, "diff", "", "Use the given diff text instead of reading the staged changes")
	cmd.Flags().BoolVar(&genFlags.Push, "push", false, "Push the current branch to origin after committing")
	cmd.Flags().BoolVarP(&genFlags.Yes, "yes", "y", false, "Run in non-interactive mode, committing without confirmation")
}

func init() {
	genAddFlags(genCmd)

	rootCmd.AddCommand(genCmd)
}

type genOptions struct {
	Provider    ProviderType
	Model       string
	All         bool
	DryRun      bool
	MessageFile string
	Diff        string
	Push        bool
	Yes         bool
}

// genNeedsRepo reports whether the invocation has to run inside a git
// repository. An explicit diff that never reaches 'git commit' does not.
func genNeedsRepo() bool {
	if genFlags.Diff == "" {
		return true
	}
	return !genFlags.DryRun && genFlags.MessageFile == ""
}

func genSetup(cmd *cobra.Command) (string, error) {
	if !genFlags.Yes {
		prompts.Intro(picocolors.BgCyan(picocolors.Black(fmt.Sprintf(" %s ", AppName))))
		// in order to show custom error
		injectIntoCommandContextWithKey(cmd, ctxKeyClackPromptStarted{}, true)
	}

	workDir, err := gitWorkingTreeDir(getWd())
	if err != nil {
		if genNeedsRepo() {
			return "", errors.New("The current directory must be a Git repository") //nolint:staticcheck
		}
		workDir = getWd()
	}
	return workDir, nil
}

func genDetectAndStageFiles(workDir string, all bool) (string, error) {
	var detectingFilesSpinner *prompts.SpinnerController
	if !genFlags.Yes {
		detectingFilesSpinner = prompts.Spinner(prompts.SpinnerOptions{})
		detectingFilesSpinner.Start("Detecting staged files")
	}

	if all {
		if err := gitAddAll(workDir); err != nil {
			if detectingFilesSpinner != nil {
				detectingFilesSpinner.Stop("Error staging files", 1)
			}
			return "", err
		}
	}

	diff, err := gitDiffStaged(workDir)
	if err != nil {
		if detectingFilesSpinner != nil {
			detectingFilesSpinner.Stop("Error detecting staged files", 1)
		}
		return "", err
	}

	summaries := gitdiff.Summarize(diff)

	if detectingFilesSpinner != nil {
		detectingFilesSpinner.Stop(genDetectedMessage(summaries), 0)
	}
	return diff, nil
}

func genDetectedMessage(summaries []gitdiff.FileSummary) string {
	if len(summaries) == 0 {
		return "No staged files detected"
	}

	lines := make([]string, 0, len(summaries))
	for _, s := range summaries {
		line := fmt.Sprintf("%s (+%d -%d)", s.Path, s.Additions, s.Deletions)
		if s.IsNewFile {
			line += " (new)"
		}
		lines = append(lines, line)
	}

	return fmt.Sprintf(
		"Detected %d staged file(s):\n     %s",
		len(summaries),
		strings.Join(lines, "\n     "),
	)
}

func genMessage(ctx context.Context, aip llm.AIPrompt, cfg *config.Config, diff string, rctx repoctx.Context) (string, error) {
	var generateMessageSpinner *prompts.SpinnerController
	if !genFlags.Yes {
		generateMessageSpinner = prompts.Spinner(prompts.SpinnerOptions{})
		generateMessageSpinner.Start("Generating commit message")
		generateMessageSpinner.Message(fmt.Sprintf("Generating commit message with %s", aip.String()))
	}

	message, err := llm.GenerateCommitMessage(ctx, aip, diff, rctx, cfg.MaxDiffLength)
	if err != nil {
		if generateMessageSpinner != nil {
			generateMessageSpinner.Stop("Error generating commit message", 1)
		}
		return "", err
	}

	// lowercase the first letter of the description
	m := commit.ParseMessage(message)
	m.CommitMessage = strutil.LowerFirst(m.CommitMessage)
	message = m.ToString()

	if generateMessageSpinner != nil {
		generateMessageSpinner.Stop("Changes analyzed", 0)
	}

	return message, nil
}

func genConfirmCommit(message string) (bool, error) {
	termio.ClearStdinBuffer()

	confirmed, err := prompts.Confirm(prompts.ConfirmParams{
		Message:      fmt.Sprintf("Commit with message %q?", message),
		InitialValue: true,
	})
	if err != nil {
		if prompts.IsCancel(err) {
			prompts.Outro("Commit cancelled")
			return false, nil
		}
		return false, err
	}

	if !confirmed {
		prompts.Outro("Commit cancelled")
	}
	return confirmed, nil
}

func runGenE(cmd *cobra.Command, args []string) error {
	// The hook trigger and scripted callers run without a terminal.
	if isNotTerminal {
		genFlags.Yes = true
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	workDir, err := genSetup(cmd)
	if err != nil {
		return err
	}

	diff := genFlags.Diff
	if diff == "" {
		diff, err = genDetectAndStageFiles(workDir, genFlags.All)
		if err != nil {
			return err
		}
	}

	if strutil.IsBlank(diff) {
		return errors.New("No staged changes found. Use 'git add' to stage your changes first") //nolint:staticcheck
	}

	rctx := repoctx.Get(workDir)

	aip, err := initializeLLMProvider(cfg, cmd.Flags().Changed("provider"), genFlags.Provider, genFlags.Model)
	if err != nil {
		return err
	}

	message, err := genMessage(cmd.Context(), aip, cfg, diff, rctx)
	if err != nil {
		if errors.Is(err, llm.ErrEmptyDiff) {
			return errors.New("No staged changes found. Use 'git add' to stage your changes first") //nolint:staticcheck
		}
		return err
	}

	switch {
	case genFlags.DryRun:
		if !genFlags.Yes {
			prompts.Note(message, prompts.NoteOptions{})
			prompts.Outro("Dry run completed. No commit was made")
		} else {
			fmt.Printf("Generated commit message: %s\n", message)
		}
		return nil
	case genFlags.MessageFile != "":
		if err := os.WriteFile(genFlags.MessageFile, []byte(message+"\n"), 0o644); err != nil {
			return fmt.Errorf("failed to write commit message file: %w", err)
		}
		if !genFlags.Yes {
			prompts.Outro(fmt.Sprintf("Commit message written to %s", genFlags.MessageFile))
		}
		return nil
	}

	if !genFlags.Yes {
		confirmed, err := genConfirmCommit(message)
		if err != nil {
			return err
		}
		if !confirmed {
			return nil
		}
	}

	if err := gitCommit(workDir, message); err != nil {
		return err
	}

	if genFlags.Push {
		branch, err := gitCurrentBranch(workDir)
		if err != nil {
			return err
		}
		if err := gitPush(workDir, "origin", branch); err != nil {
			return err
		}
	}

	if !genFlags.Yes {
		prompts.Outro(fmt.Sprintf("%s Successfully committed", picocolors.Green("✔")))
	} else {
		fmt.Printf("Successfully committed: %s\n", message)
	}

	return nil
}

func isGenCmd() bool {
	if workDir, err := gitWorkingTreeDir(getWd()); err != nil || workDir == "" {
		return false
	}
	return true
}

package main

// Must be first import - fixes Warp terminal delay before lipgloss loads
import _ "github.com/wahlandcase/attuned.commitcheck/internal/termfix"

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/wahlandcase/attuned.commitcheck/internal/app"
	"github.com/wahlandcase/attuned.commitcheck/internal/config"
	"github.com/wahlandcase/attuned.commitcheck/internal/git"
	"github.com/wahlandcase/attuned.commitcheck/internal/hook"
	"github.com/wahlandcase/attuned.commitcheck/internal/lint"
	"github.com/wahlandcase/attuned.commitcheck/internal/models"
	"github.com/wahlandcase/attuned.commitcheck/internal/ui"
	"github.com/wahlandcase/attuned.commitcheck/internal/update"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// Set via -ldflags "-X main.version=..."
var version = "dev"

// Exit codes: 0 = valid, 1 = hard violations, 2 = invocation error
const exitViolations = 1

func main() {
	rootCmd := &cobra.Command{
		Use:           "attcc",
		Short:         "Conventional commit message linter and composer",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		newLintCmd(),
		newRangeCmd(),
		newComposeCmd(),
		newHookCmd(),
		newTypesCmd(),
		newUpdateCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}

func newLintCmd() *cobra.Command {
	var message string
	var strict bool
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "lint [file]",
		Short: "Validate a commit message from a file, --message, or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			raw, err := readMessage(args, message)
			if err != nil {
				return err
			}

			result := lint.New(cfg).Lint(raw)

			if outputFormat == "json" {
				data, err := json.MarshalIndent(result, "", "  ")
				if err != nil {
					return err
				}
				fmt.Println(string(data))
			} else {
				fmt.Println(ui.RenderResult(result))
			}

			ok := result.Valid()
			if strict {
				ok = result.StrictValid()
			}
			if !ok {
				os.Exit(exitViolations)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "Commit message to lint (instead of a file)")
	cmd.Flags().BoolVar(&strict, "strict", false, "Treat warnings as failures")
	cmd.Flags().StringVar(&outputFormat, "format", "text", "Output format: text or json")

	return cmd
}

// readMessage resolves the lint input: --message wins, then a file path,
// then stdin ("-" or no argument)
func readMessage(args []string, message string) (string, error) {
	if message != "" {
		return message, nil
	}

	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("failed to read message file: %w", err)
	}
	return string(data), nil
}

func newRangeCmd() *cobra.Command {
	var strict bool
	var fetch bool
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "range [base] [head]",
		Short: "Lint every commit in base..head of the enclosing repository",
		Long: "Lint every commit reachable from head but not base. Base defaults to the\n" +
			"repository's main branch, head defaults to HEAD.",
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			repoPath, err := git.FindRepoRoot()
			if err != nil {
				return fmt.Errorf("not inside a git repository")
			}

			base := ""
			head := "HEAD"
			if len(args) > 0 {
				base = args[0]
			}
			if len(args) > 1 {
				head = args[1]
			}
			if base == "" {
				base, err = git.DetectMainBranch(repoPath)
				if err != nil {
					return err
				}
			}

			if fetch {
				if err := git.FetchBranches(repoPath, []string{base}); err != nil {
					return err
				}
			}

			commits, err := git.CommitsBetween(repoPath, base, head)
			if err != nil {
				return err
			}

			linter := lint.New(cfg)
			var results []models.RangeResult
			failed := false
			for _, c := range commits {
				r := linter.Lint(c.Message)
				status := models.StatusFor(r, strict)
				if models.IsStatusFailed(status) {
					failed = true
				}
				results = append(results, models.RangeResult{
					Commit: c,
					Result: r,
					Status: status,
				})
			}

			if outputFormat == "json" {
				data, err := json.MarshalIndent(rangeReport(results), "", "  ")
				if err != nil {
					return err
				}
				fmt.Println(string(data))
			} else {
				fmt.Println(ui.RenderRangeSummary(results))
			}

			if failed {
				os.Exit(exitViolations)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Treat warnings as failures")
	cmd.Flags().BoolVar(&fetch, "fetch", false, "Fetch the base branch from origin first")
	cmd.Flags().StringVar(&outputFormat, "format", "text", "Output format: text or json")

	return cmd
}

// rangeCommitReport is the JSON shape consumed by changelog tooling
type rangeCommitReport struct {
	Hash   string                  `json:"hash"`
	Result models.ValidationResult `json:"result"`
}

func rangeReport(results []models.RangeResult) []rangeCommitReport {
	reports := make([]rangeCommitReport, 0, len(results))
	for _, r := range results {
		reports = append(reports, rangeCommitReport{
			Hash:   r.Commit.Hash,
			Result: r.Result,
		})
	}
	return reports
}

func newComposeCmd() *cobra.Command {
	var strict bool
	var outputPath string

	cmd := &cobra.Command{
		Use:   "compose",
		Short: "Interactively compose a valid commit message",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			model := app.New(cfg, strict)
			p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithOutput(os.Stderr))

			final, err := p.Run()
			if err != nil {
				return fmt.Errorf("error running program: %w", err)
			}

			result, ok := final.(app.Model)
			if !ok {
				return fmt.Errorf("unexpected model type")
			}

			message, accepted := result.Output()
			if !accepted {
				return fmt.Errorf("compose aborted")
			}

			if outputPath != "" {
				return os.WriteFile(outputPath, []byte(message), 0644)
			}
			fmt.Print(message)
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Require a warning-free message")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write the message to a file instead of stdout")

	return cmd
}

func newHookCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hook",
		Short: "Manage the commit-msg hook",
	}

	var strict bool
	var force bool

	installCmd := &cobra.Command{
		Use:   "install",
		Short: "Install the commit-msg hook in the enclosing repository",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			repoPath, err := git.FindRepoRoot()
			if err != nil {
				return fmt.Errorf("not inside a git repository")
			}

			if err := hook.Install(repoPath, strict || cfg.Hook.Strict, force); err != nil {
				return err
			}
			fmt.Println("commit-msg hook installed in", repoPath)
			return nil
		},
	}
	installCmd.Flags().BoolVar(&strict, "strict", false, "Hook treats warnings as failures")
	installCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing hook")

	uninstallCmd := &cobra.Command{
		Use:   "uninstall",
		Short: "Remove the commit-msg hook",
		RunE: func(cmd *cobra.Command, args []string) error {
			repoPath, err := git.FindRepoRoot()
			if err != nil {
				return fmt.Errorf("not inside a git repository")
			}

			if err := hook.Uninstall(repoPath); err != nil {
				return err
			}
			fmt.Println("commit-msg hook removed from", repoPath)
			return nil
		},
	}

	cmd.AddCommand(installCmd, uninstallCmd)
	return cmd
}

func newTypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the configured commit types",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			fmt.Println(ui.RenderTypeTable(cfg.Lint.Types))
			return nil
		},
	}
}

func newUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update",
		Short: "Update attcc to the latest release",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			if err := update.CheckGh(); err != nil {
				return err
			}

			release, err := update.CheckForUpdate(version, cfg.Update.Repo)
			cfg.RecordUpdateCheck()
			_ = cfg.Save()
			if err != nil {
				return err
			}
			if release == nil {
				fmt.Println("already up to date")
				return nil
			}

			fmt.Println("updating to", update.VersionDisplay(release.TagName))
			if err := update.DownloadAndInstall(release, cfg.Update.Repo); err != nil {
				return err
			}
			fmt.Println("updated")
			return nil
		},
	}
}

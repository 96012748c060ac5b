package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"aicommit/pkg/hook"
)

var hookCmd = &cobra.Command{
	Use:         "hook",
	Short:       "Manage the prepare-commit-msg Git hook",
	Long:        `Installs or removes the prepare-commit-msg hook that generates commit messages automatically on 'git commit'.`,
	Annotations: map[string]string{"group": "main"},
}

var hookInstallCmd = &cobra.Command{
	Use:   "install",
	Short: "Install the prepare-commit-msg hook",
	Args:  cobra.NoArgs,
	RunE:  runHookInstallE,
}

var hookUninstallCmd = &cobra.Command{
	Use:   "uninstall",
	Short: "Remove the prepare-commit-msg hook",
	Args:  cobra.NoArgs,
	RunE:  runHookUninstallE,
}

func init() {
	hookCmd.AddCommand(hookInstallCmd)
	hookCmd.AddCommand(hookUninstallCmd)

	rootCmd.AddCommand(hookCmd)
}

func runHookInstallE(cmd *cobra.Command, args []string) error {
	manager, err := hook.NewManager(getWd())
	if err != nil {
		return err
	}

	execPath, err := os.Executable()
	if err != nil {
		return fmt.Errorf("failed to resolve executable path: %w", err)
	}

	hookPath, err := manager.Install(execPath)
	if err != nil {
		return err
	}

	fmt.Printf("Hook installed at %s\n", hookPath)
	fmt.Println("Commit messages will now be generated automatically on 'git commit'.")

	return nil
}

func runHookUninstallE(cmd *cobra.Command, args []string) error {
	manager, err := hook.NewManager(getWd())
	if err != nil {
		return err
	}

	status, hookPath, err := manager.Uninstall()
	if err != nil {
		return err
	}

	switch status {
	case hook.Removed:
		fmt.Printf("Hook removed from %s\n", hookPath)
	case hook.NotInstalled:
		fmt.Println("No prepare-commit-msg hook is installed, nothing to do.")
	case hook.SkippedForeign:
		fmt.Printf("The prepare-commit-msg hook at %s was not installed by %s, leaving it in place.\n", hookPath, AppName)
	}

	return nil
}

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/papersmith/internal/screens/savedtests"
	"github.com/abhisek/papersmith/internal/ui/theme"
)

var testsCmd = &cobra.Command{
	Use:   "tests",
	Short: "Manage the list of saved test papers",
}

var testsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved test papers in creation order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		tests, err := s.SavedTestRepo().List(cmd.Context())
		if err != nil {
			return fmt.Errorf("list saved tests: %w", err)
		}

		w := cmd.OutOrStdout()
		if len(tests) == 0 {
			fmt.Fprintln(w, "No saved tests yet.")
			return nil
		}

		fmt.Fprintln(w, theme.TableHeader.Render(fmt.Sprintf("%-36s  %-12s  %-30s  %s", "ID", "Date", "Title", "File")))
		fmt.Fprintln(w, theme.Rule.Render(strings.Repeat("─", 100)))
		for _, t := range tests {
			fmt.Fprintf(w, "%-36s  %-12s  %-30s  %s\n", t.ID, t.Date, truncate(t.Title, 30), t.FileName)
		}
		return nil
	},
}

var testsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Remove a test from the saved list",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ok, err := s.SavedTestRepo().Delete(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("delete saved test: %w", err)
		}
		if !ok {
			return fmt.Errorf("saved test %s not found", args[0])
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s deleted %s\n", theme.BadgeSuccess.Render("✓"), args[0])
		return nil
	},
}

var testsBrowseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse saved test papers and delete them interactively",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		repo := s.SavedTestRepo()
		tests, err := repo.List(cmd.Context())
		if err != nil {
			return fmt.Errorf("list saved tests: %w", err)
		}
		return savedtests.Run(cmd.Context(), repo, tests)
	},
}

func init() {
	testsCmd.AddCommand(testsListCmd)
	testsCmd.AddCommand(testsBrowseCmd)
	testsCmd.AddCommand(testsDeleteCmd)
}

package main

import (
	"fmt"

	"uniportal/domain/search"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newSearchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "search <terms> [--sender S] [--course C] [--type T] [--priority P] [--from D] [--to D] [--attachments] [--unread] [--sort S]",
		Short: "Search sent and received messages",
		// Flags belong to the search language, not to cobra.
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 && (args[0] == "-h" || args[0] == "--help") {
				return cmd.Help()
			}
			query, err := search.NewSearchQueryFromArgs(args)
			if err != nil {
				return err
			}
			results, err := a.messages.Search(cmd.Context(), query.Terms, query.Filters, query.Sort)
			if err != nil {
				return err
			}
			printResults(cmd.OutOrStdout(), results)
			return nil
		},
	}
}

func newSavedCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "saved",
		Short: "Manage saved searches",
	}
	cmd.AddCommand(newSavedSaveCmd(a), newSavedRunCmd(a), newSavedListCmd(a), newSavedDeleteCmd(a))
	return cmd
}

func newSavedSaveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:                "save <name> [search terms and flags]",
		Short:              "Save a search under a unique name",
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return fmt.Errorf("a name is required")
			}
			query, err := search.NewSearchQueryFromArgs(args[1:])
			if err != nil {
				return err
			}
			results, err := a.messages.Search(cmd.Context(), query.Terms, query.Filters, query.Sort)
			if err != nil {
				return err
			}
			saved, err := a.searches.Save(cmd.Context(), args[0], query.Terms, query.Filters, len(results))
			if err != nil {
				return err
			}
			success(cmd.OutOrStdout(), "Search %q saved as %s (%d result(s))", saved.Name, saved.ID, saved.ResultCount)
			return nil
		},
	}
}

func newSavedRunCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run <id>",
		Short: "Run a saved search against the current messages",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid id %q: %w", args[0], err)
			}
			results, _, err := a.searches.Run(cmd.Context(), id)
			if err != nil {
				return err
			}
			printResults(cmd.OutOrStdout(), results)
			return nil
		},
	}
}

func newSavedListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved searches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			saved, err := a.searches.List(cmd.Context())
			if err != nil {
				return err
			}
			printSavedSearches(cmd.OutOrStdout(), saved)
			return nil
		},
	}
}

func newSavedDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a saved search",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid id %q: %w", args[0], err)
			}
			if err := a.searches.Delete(cmd.Context(), id); err != nil {
				return err
			}
			success(cmd.OutOrStdout(), "Saved search %s deleted", id)
			return nil
		},
	}
}

package main

import (
	"github.com/spf13/cobra"

	"github.com/ressKim-io/news-category-service/internal/adapter/client"
	"github.com/ressKim-io/news-category-service/internal/usecase"
)

func newSuggestCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "suggest <text...>",
		Short: "Ask a running service for a category",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := joinText(args)
			if err != nil {
				return err
			}

			suggester := client.NewRemoteSuggester(client.NewCategoryClient(opts.url, opts.timeout))
			out, err := suggester.Suggest(cmd.Context(), &usecase.SuggestCategoryInput{Text: text})
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), out)
		},
	}
}

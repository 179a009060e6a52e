package main

import (
	"github.com/spf13/cobra"

	"github.com/ressKim-io/news-category-service/internal/usecase"
)

func newPredictCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "predict <text...>",
		Short: "Predict a category with local artifacts",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := joinText(args)
			if err != nil {
				return err
			}

			set, log, err := loadArtifacts(cmd, opts)
			if err != nil {
				return err
			}

			uc := usecase.NewCategoryUsecase(set.Vectorizer, set.Classifier, log)
			out, err := uc.Suggest(cmd.Context(), &usecase.SuggestCategoryInput{Text: text})
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), out)
		},
	}
}

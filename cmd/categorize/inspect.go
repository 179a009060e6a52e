package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/ressKim-io/news-category-service/internal/domain/entity"
)

func newInspectCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect",
		Short: "Show the dimensions and classes of the local artifacts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			set, _, err := loadArtifacts(cmd, opts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "features: %d\n", set.Vectorizer.Dimension())

			categories := entity.Categories()
			fmt.Fprintln(out, "classes:")
			for _, class := range set.Classifier.Classes() {
				fmt.Fprintf(out, "  %d\t%s\n", class, entity.CategoryName(class))
				delete(categories, class)
			}

			// categories the service can name but the model never predicts
			if len(categories) > 0 {
				unused := make([]int, 0, len(categories))
				for index := range categories {
					unused = append(unused, index)
				}
				sort.Ints(unused)
				fmt.Fprintln(out, "unpredicted categories:")
				for _, index := range unused {
					fmt.Fprintf(out, "  %d\t%s\n", index, categories[index])
				}
			}
			return nil
		},
	}
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ressKim-io/news-category-service/internal/adapter/client"
)

func newHealthCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check the health of a running service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := client.NewCategoryClient(opts.url, opts.timeout)
			health, err := c.Health(cmd.Context())
			if err != nil {
				return err
			}
			if err := writeJSON(cmd.OutOrStdout(), health); err != nil {
				return err
			}
			if !health.Healthy() {
				return fmt.Errorf("service unhealthy: %s", health.Status)
			}
			return nil
		},
	}
}

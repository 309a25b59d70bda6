package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mytheresa/product-categories/app/view"
)

func newListCommand(options *globalOptions) *cobra.Command {
	var filterFlags filterOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the filtered product list once",
		Example: `  products list --user 2
  products list --query mac --category 4 --category 1`,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := setup(cmd.Context(), options, os.Stderr)
			if err != nil {
				return err
			}

			products := env.repos.Products.GetFilteredProducts(filterFlags.filters())
			env.logger.Debug("listing products", "count", len(products))

			fmt.Fprintln(cmd.OutOrStdout(), view.Table(products))
			return nil
		},
	}

	addFilterFlags(cmd.Flags(), &filterFlags)

	return cmd
}

package main

import (
	"fmt"

	"github.com/deppfellow/fbr-erp/internal/lib/utils"
	"github.com/deppfellow/fbr-erp/internal/service"
	"github.com/spf13/cobra"
)

func newFormatCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "format",
		Short: "Format amounts and dates for the en-PK locale",
	}
	cmd.PersistentFlags().BoolVar(&asJSON, "json", false, "print the result as JSON")

	// The CLI has no server container; the format service does not need one.
	formatService := service.NewFormatService(nil)

	cmd.AddCommand(
		&cobra.Command{
			Use:     "currency AMOUNT",
			Short:   "Format an amount as Pakistani Rupees",
			Example: "  erp format currency 1234.5",
			Args:    cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				result, err := formatService.Currency(cmd.Context(), args[0])
				if err != nil {
					return fmt.Errorf("%q: %w", args[0], err)
				}

				if asJSON {
					return utils.WriteJSON(cmd.OutOrStdout(), result)
				}
				fmt.Fprintln(cmd.OutOrStdout(), result.Formatted)
				return nil
			},
		},
		&cobra.Command{
			Use:     "date DATE",
			Short:   "Format a date in the short en-PK form",
			Example: "  erp format date 2024-01-15",
			Args:    cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				result := formatService.Date(cmd.Context(), args[0])

				if asJSON {
					return utils.WriteJSON(cmd.OutOrStdout(), result)
				}
				fmt.Fprintln(cmd.OutOrStdout(), result.Formatted)
				return nil
			},
		},
	)

	return cmd
}

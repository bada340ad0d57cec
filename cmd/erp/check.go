package main

import (
	"errors"
	"fmt"

	"github.com/deppfellow/fbr-erp/internal/lib/utils"
	"github.com/deppfellow/fbr-erp/internal/validation"
	"github.com/spf13/cobra"
)

// errInvalidIdentifier makes the process exit 1 after "invalid" is printed.
var errInvalidIdentifier = errors.New("invalid identifier")

var identifierRules = map[string]func(string) bool{
	validation.TagNTN:  validation.IsValidNTN,
	validation.TagSTRN: validation.IsValidSTRN,
	validation.TagCNIC: validation.IsValidCNIC,
}

type checkResult struct {
	Type  string `json:"type"`
	Value string `json:"value"`
	Valid bool   `json:"valid"`
}

func newCheckCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:       "check {ntn|strn|cnic} VALUE",
		Short:     "Check that a tax identifier is well-formed",
		Example:   "  erp check strn 12-34-5678-901-23",
		ValidArgs: []string{validation.TagNTN, validation.TagSTRN, validation.TagCNIC},
		Args:      cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, value := args[0], args[1]

			valid, ok := identifierRules[kind]
			if !ok {
				return fmt.Errorf("unknown identifier type %q (want ntn, strn or cnic)", kind)
			}

			result := checkResult{Type: kind, Value: value, Valid: valid(value)}

			if asJSON {
				if err := utils.WriteJSON(cmd.OutOrStdout(), result); err != nil {
					return err
				}
			} else {
				status := "valid"
				if !result.Valid {
					status = "invalid"
				}
				fmt.Fprintln(cmd.OutOrStdout(), status)
			}

			if !result.Valid {
				return errInvalidIdentifier
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")

	return cmd
}

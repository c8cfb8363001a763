package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/partsdesk-backend/internal/paycard"
)

var errInvalidCard = errors.New("card number failed validation")

func cardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "card",
		Short: "Inspect payment card numbers",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "classify <number>",
		Short: "Print the card network, or \"unknown\"",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			network := paycard.Classify(args[0])
			if network == paycard.NoMatch {
				network = "unknown"
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), network)
			return err
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "validate <number>",
		Short: "Check the number; exits non-zero when it is invalid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !paycard.IsValid(args[0]) {
				fmt.Fprintf(cmd.OutOrStdout(), "invalid (last4 %s)\n", lastFour(args[0]))
				return errInvalidCard
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "valid (last4 %s)\n", lastFour(args[0]))
			return err
		},
	})

	return cmd
}

func lastFour(number string) string {
	if l := paycard.Last4(number); l != "" {
		return l
	}
	return "----"
}

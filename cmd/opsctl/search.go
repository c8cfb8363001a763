package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/partsdesk-backend/internal/domain"
	"github.com/heartmarshall/partsdesk-backend/internal/service/order"
	"github.com/heartmarshall/partsdesk-backend/internal/service/ordersearch"
)

type searchOptions struct {
	file   string
	limit  int
	asJSON bool
}

func searchCmd() *cobra.Command {
	var opts searchOptions

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search an exported order file",
		Long: `Search orders the same way the dashboard does: a case-insensitive
substring match over order, product and shipping fields.

Examples:
  opsctl search --file orders.json "camry"
  opsctl search -f orders.json --json 1HGCM82633A004352`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, opts, args[0])
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "order export (JSON array or {\"orders\": [...]})")
	cmd.Flags().IntVarP(&opts.limit, "limit", "l", 0, "maximum results, 0 for all")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "print matching orders as JSON")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runSearch(cmd *cobra.Command, opts searchOptions, query string) error {
	f, err := os.Open(opts.file)
	if err != nil {
		return err
	}
	defer f.Close()

	orders, err := order.ReadOrders(f)
	if err != nil {
		return err
	}

	found := ordersearch.Search(orders, query)
	if opts.limit > 0 && len(found) > opts.limit {
		found = found[:opts.limit]
	}

	if opts.asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Query  string         `json:"query"`
			Count  int            `json:"count"`
			Orders []domain.Order `json:"orders"`
		}{query, len(found), found})
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDATE\tSTATUS\tCUSTOMER\tAGENT")
	for _, o := range found {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			o.ID, o.OrderDate.Format("2006-01-02"), o.Status, o.CustomerName, o.SalesAgent)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%d of %d orders matched\n", len(found), len(orders))
	return err
}

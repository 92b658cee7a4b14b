package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"watchquote/api/internal/parser"
)

var asJSON bool

var rootCmd = &cobra.Command{
	Use:   "parse-chat [transcript file]",
	Short: "Extract watch quotations from an exported chat transcript",
	Long: `Parses an exported chat transcript without touching the database and
prints the quotations found in it. Useful for checking what an upload
would produce.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read transcript: %w", err)
		}

		result := parser.Parse(string(raw))

		if asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(result.Quotations)
		}

		fmt.Printf("Parsed %d messages, found %d quotations\n\n",
			len(result.Messages), len(result.Quotations))

		if len(result.Quotations) == 0 {
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "MODEL\tPRICE\tWARRANTY\tSELLER\tPHONE\tDATE")
		for _, q := range result.Quotations {
			warranty := "-"
			if q.WarrantyDate != nil {
				warranty = *q.WarrantyDate
			}
			seller := "-"
			if q.SellerName != nil {
				seller = *q.SellerName
			}
			fmt.Fprintf(w, "%s\t%s %.2f\t%s\t%s\t%s\t%s\n",
				q.WatchModel,
				q.Currency,
				float64(q.PriceMinorUnits)/100,
				warranty,
				seller,
				q.SellerPhone,
				q.QuoteDate.Format("2006-01-02 15:04"),
			)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.Flags().BoolVar(&asJSON, "json", false, "Print quotations as JSON instead of a table")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

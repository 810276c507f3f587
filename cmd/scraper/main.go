package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tvstore/catalog/internal/scrape"
)

const defaultURL = "https://www.walmart.com/shop/deals/electronics/tvs?page=1"

func main() {
	var (
		url string
		out string
	)

	cmd := &cobra.Command{
		Use:   "scraper",
		Short: "Scrape a TV listing page into JSON records",
		RunE: func(cmd *cobra.Command, args []string) error {
			listings, err := scrape.New(nil).Scrape(cmd.Context(), url)
			if err != nil {
				return err
			}

			data, err := json.MarshalIndent(listings, "", "    ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))

			if out != "" {
				if err := os.WriteFile(out, data, 0o644); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&url, "url", defaultURL, "listing page to scrape")
	cmd.Flags().StringVar(&out, "out", "", "also write records to this file (e.g. walmart_tvs.json)")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

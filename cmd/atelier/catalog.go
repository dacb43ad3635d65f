package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/atelier/internal/storefront"
	apperrors "github.com/alexisbeaulieu97/atelier/pkg/errors"
	"github.com/alexisbeaulieu97/atelier/pkg/money"
)

type catalogOptions struct {
	query      string
	category   string
	jsonOutput bool
}

func newCatalogCmd(app *AppContext) *cobra.Command {
	opts := &catalogOptions{}

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List catalog items matching a search",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCatalog(cmd, app, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.query, "query", "q", "", "Case-insensitive substring of the item name")
	cmd.Flags().StringVar(&opts.category, "category", "", "Only show one category: shirt, pants, dress or jacket")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	cmd.AddCommand(newCatalogShowCmd(app))

	return cmd
}

func runCatalog(cmd *cobra.Command, app *AppContext, opts *catalogOptions) error {
	if err := app.Load(cmd, false); err != nil {
		return err
	}
	defer app.Close()

	var items []storefront.ClothingItem
	if opts.category == "" {
		items = app.Catalog.Visible(opts.query)
	} else {
		category, err := storefront.ParseCategory(opts.category)
		if err != nil {
			return newCommandError("catalog", "filtering by category", err, "Use one of shirt, pants, dress or jacket.")
		}
		items = storefront.Filter(app.Catalog.ByCategory(category), opts.query)
	}

	app.Logger.WithFields(map[string]any{"query": opts.query, "category": opts.category, "matches": len(items)}).Debug("catalog filtered")

	if opts.jsonOutput {
		return writeJSON(cmd.OutOrStdout(), items)
	}
	if len(items) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No items match.")
		return nil
	}
	return renderItemTable(cmd.OutOrStdout(), items, app.Settings.Currency)
}

func newCatalogShowCmd(app *AppContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show <item-id>",
		Short: "Show one catalog item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Load(cmd, false); err != nil {
				return err
			}
			defer app.Close()

			item, err := lookupItem(app.Catalog, args[0])
			if err != nil {
				return newCommandError("show", fmt.Sprintf("looking up item %q", args[0]), err, "Run 'atelier catalog' to list item ids.")
			}

			if jsonOutput {
				return writeJSON(cmd.OutOrStdout(), item)
			}
			renderItem(cmd.OutOrStdout(), item, app.Settings.Currency)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

// lookupItem resolves a textual id against the catalog.
func lookupItem(catalog *storefront.Catalog, raw string) (storefront.ClothingItem, error) {
	id, err := strconv.Atoi(raw)
	if err != nil {
		return storefront.ClothingItem{}, apperrors.NewValidationError("id", fmt.Sprintf("%q is not a number", raw), err)
	}
	return catalog.ByID(id)
}

func renderItemTable(w io.Writer, items []storefront.ClothingItem, currency string) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCATEGORY\tCOLOR\tPRICE")
	for _, item := range items {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", item.ID, item.Name, item.Category, valueOrFallback(item.Color, "-"), money.Format(item.Price, currency))
	}
	return tw.Flush()
}

func renderItem(w io.Writer, item storefront.ClothingItem, currency string) {
	fmt.Fprintf(w, "Item:     %d\n", item.ID)
	fmt.Fprintf(w, "Name:     %s\n", item.Name)
	fmt.Fprintf(w, "Category: %s\n", item.Category)
	fmt.Fprintf(w, "Color:    %s\n", valueOrFallback(item.Color, "(none)"))
	fmt.Fprintf(w, "Price:    %s\n", money.Format(item.Price, currency))
	fmt.Fprintf(w, "Image:    %s\n", valueOrFallback(item.Image, "(none)"))
}

func writeJSON(w io.Writer, payload any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}

func valueOrFallback(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/atelier/internal/storefront"
	"github.com/alexisbeaulieu97/atelier/pkg/money"
)

type outfitOptions struct {
	place  []int
	add    []int
	commit bool
}

func newOutfitCmd(app *AppContext) *cobra.Command {
	opts := &outfitOptions{}

	cmd := &cobra.Command{
		Use:   "outfit",
		Short: "Compose an outfit without the interactive store",
		Long: `Place items on the mannequin in the given order, optionally add items straight
to the cart and commit the outfit, then print the outfit and the cart.`,
		Example: "  atelier outfit --place 1 --place 2 --place 5 --commit",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOutfit(cmd, app, opts)
		},
	}

	cmd.Flags().IntSliceVarP(&opts.place, "place", "p", nil, "Item id to put on the mannequin (repeatable, applied in order)")
	cmd.Flags().IntSliceVar(&opts.add, "add", nil, "Item id to add straight to the cart (repeatable)")
	cmd.Flags().BoolVar(&opts.commit, "commit", false, "Move the finished outfit into the cart")

	return cmd
}

func runOutfit(cmd *cobra.Command, app *AppContext, opts *outfitOptions) error {
	if err := app.Load(cmd, false); err != nil {
		return err
	}
	defer app.Close()
	log := app.Logger

	state := storefront.NewState(app.Catalog, app.Theme)

	for _, id := range opts.add {
		item, err := app.Catalog.ByID(id)
		if err == nil {
			err = state.AddToCart(item)
		}
		if err != nil {
			return newCommandError("outfit", "adding item "+strconv.Itoa(id)+" to the cart", err, "Run 'atelier catalog' to list item ids.")
		}
		log.ForItem(id, item.Category.String()).Debug("added item to cart")
	}

	for _, id := range opts.place {
		item, err := app.Catalog.ByID(id)
		if err == nil {
			err = state.Place(item)
		}
		if err != nil {
			return newCommandError("outfit", "placing item "+strconv.Itoa(id), err, "Run 'atelier catalog' to list item ids.")
		}
		log.ForItem(id, item.Category.String()).Debug("placed item")
	}

	if opts.commit {
		moved := state.CommitOutfit()
		log.With("items", moved).Info("committed outfit")
	}

	out := cmd.OutOrStdout()
	renderItemList(out, "Outfit", state.Outfit.Slots(), state.Outfit.Total(), app.Settings.Currency)
	fmt.Fprintln(out)
	renderItemList(out, "Cart", state.Cart.Items(), state.Cart.Total(), app.Settings.Currency)
	return nil
}

func renderItemList(w io.Writer, title string, items []storefront.ClothingItem, total int, currency string) {
	fmt.Fprintf(w, "%s (%d items, %s):\n", title, len(items), money.Format(total, currency))
	if len(items) == 0 {
		fmt.Fprintln(w, "  (empty)")
		return
	}
	for _, item := range items {
		fmt.Fprintf(w, "  %-7s %-3d %s  %s\n", item.Category, item.ID, item.Name, money.Format(item.Price, currency))
	}
}

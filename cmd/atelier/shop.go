package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/atelier/internal/storefront"
	"github.com/alexisbeaulieu97/atelier/internal/tui/store"
)

var errNotTerminal = errors.New("standard output is not a terminal")

func newShopCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shop",
		Short: "Open the interactive store",
		Long:  `Open the store page: browse the catalog, try garments on the mannequin and fill the cart.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShop(cmd, app)
		},
	}

	return cmd
}

func runShop(cmd *cobra.Command, app *AppContext) error {
	if !isTerminal(cmd.OutOrStdout()) {
		return newCommandError("open the store", "checking the terminal", errNotTerminal,
			"Run atelier from an interactive terminal, or use 'atelier catalog' and 'atelier outfit' in scripts.")
	}

	if err := app.Load(cmd, true); err != nil {
		return err
	}
	defer app.Close()
	log := app.Logger

	state := storefront.NewState(app.Catalog, app.Theme)
	m := store.NewModel(state, store.Options{
		Currency: app.Settings.Currency,
		Plain:    os.Getenv("NO_COLOR") != "",
		Logger:   log,
	})

	log.With("theme", app.Theme.String()).Info("store opened")

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Error(err, "store execution failed")
		return fmt.Errorf("failed to run store: %w", err)
	}

	log.WithFields(map[string]any{
		"cart_size":  state.Cart.Size(),
		"cart_total": state.Cart.Total(),
	}).Info("store closed")

	return nil
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}

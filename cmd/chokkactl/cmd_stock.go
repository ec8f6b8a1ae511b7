package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/chokka/chokka-api/libs/go/bootstrap"
	"github.com/chokka/chokka-api/libs/go/db"
	"github.com/chokka/chokka-api/libs/go/interfaces"

	"github.com/spf13/cobra"
)

// lowStockCmd lists inventory that needs restocking
var lowStockCmd = &cobra.Command{
	Use:   "low-stock",
	Short: "List inventory at or below its reorder level",
	RunE:  runLowStock,
}

func runLowStock(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	rt, err := bootstrap.Init(ctx, envFiles...)
	if err != nil {
		return err
	}
	defer func() {
		_ = rt.Shutdown(context.Background())
	}()

	svcs, err := rt.BuildServices(ctx)
	if err != nil {
		return err
	}
	return listLowStock(ctx, svcs.Inventory, cmd.OutOrStdout())
}

func listLowStock(ctx context.Context, inventory interfaces.InventoryService, out io.Writer) error {
	items, err := inventory.ListLowStock(ctx)
	if err != nil {
		return fmt.Errorf("failed to list low stock: %w", err)
	}
	if len(items) == 0 {
		fmt.Fprintln(out, "All stock above reorder levels")
		return nil
	}
	return printInventory(out, items)
}

func printInventory(out io.Writer, items []db.Inventory) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tSTOCK\tREORDER AT")
	for _, it := range items {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%d\n", it.ID, it.Name, it.Category, it.Stock, it.ReorderLevel)
	}
	return w.Flush()
}

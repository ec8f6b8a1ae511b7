package main

import (
	"context"
	"fmt"
	"io"

	"github.com/chokka/chokka-api/libs/go/bootstrap"
	"github.com/chokka/chokka-api/libs/go/interfaces"
	"github.com/chokka/chokka-api/libs/go/types/business"

	"github.com/spf13/cobra"
)

// syncCmd runs one courier status sync pass
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Reconcile open shipments with Steadfast",
	Long: `Fetch the courier status of every order that has a tracking code and
is not yet delivered, cancelled or returned, and update the orders whose
status changed.`,
	RunE: runSync,
}

func runSync(cmd *cobra.Command, _ []string) error {
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
	return syncCourier(ctx, svcs.Courier, cmd.OutOrStdout())
}

func syncCourier(ctx context.Context, courier interfaces.CourierService, out io.Writer) error {
	summary, err := courier.SyncAll(ctx)
	if err != nil {
		return fmt.Errorf("sync failed: %w", err)
	}
	printSyncSummary(out, summary)
	return nil
}

func printSyncSummary(out io.Writer, summary *business.SyncSummary) {
	fmt.Fprintf(out, "Checked %d orders, updated %d\n", summary.Total, summary.Updated)
	for _, e := range summary.Errors {
		fmt.Fprintf(out, "  order #%d: %s\n", e.OrderID, e.Error)
	}
}

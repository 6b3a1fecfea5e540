package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/lancer/internal/cli/formatter"
	"github.com/alexanderramin/lancer/internal/stats"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newDashboardCmd(app *App) *cobra.Command {
	var watch bool
	var months int

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show project and payment statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			ownerID, err := app.Auth.RequireIdentity()
			if err != nil {
				return err
			}

			if watch {
				return runDashboardWatch(ctx, app, ownerID)
			}

			projects, err := app.Projects.List(ctx)
			if err != nil {
				return err
			}
			clients, err := app.Clients.List(ctx)
			if err != nil {
				return err
			}
			payments, err := app.Payments.List(ctx)
			if err != nil {
				return err
			}

			now := time.Now().UTC()
			s := stats.Compute(projects, clients, payments, now)
			fmt.Printf("%s\n", formatter.FormatDashboard(s))
			if months > 0 {
				points := stats.MonthlyEarnings(projects, now, months)
				fmt.Printf("%s\n", formatter.FormatMonthlyEarnings(points))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&watch, "watch", false, "Keep the dashboard open and follow changes")
	cmd.Flags().IntVar(&months, "months", 6, "Months of earnings history (0 to hide)")

	return cmd
}

func runDashboardWatch(ctx context.Context, app *App, ownerID string) error {
	app.Mirror.Start(ctx, ownerID)
	defer app.Mirror.Stop()

	model := newWatchModel(app.Mirror.Snapshot())
	program := tea.NewProgram(model, tea.WithAltScreen())

	cancel := app.Mirror.Subscribe(func(s snapshot) {
		program.Send(snapshotMsg(s))
	})
	defer cancel()

	_, err := program.Run()
	return err
}

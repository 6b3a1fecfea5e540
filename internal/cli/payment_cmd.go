package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/lancer/internal/cli/formatter"
	"github.com/alexanderramin/lancer/internal/domain"
	"github.com/spf13/cobra"
)

func resolvePaymentID(ctx context.Context, app *App, input string) (string, error) {
	payments, err := app.Payments.List(ctx)
	if err != nil {
		return "", err
	}
	ids := make([]string, 0, len(payments))
	for _, p := range payments {
		ids = append(ids, p.ID)
	}
	return resolveID("payment", input, ids)
}

func newPaymentCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "payment",
		Short: "Manage payments",
	}

	cmd.AddCommand(
		newPaymentAddCmd(app),
		newPaymentListCmd(app),
		newPaymentUpdateCmd(app),
		newPaymentRemoveCmd(app),
	)

	return cmd
}

func newPaymentAddCmd(app *App) *cobra.Command {
	var project, due, status, description string
	var amount float64

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a payment against a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, project)
			if err != nil {
				return err
			}

			p := &domain.Payment{
				ProjectID:   projectID,
				Amount:      amount,
				Status:      domain.PaymentStatus(status),
				Description: description,
			}

			if due != "" {
				d, err := time.Parse("2006-01-02", due)
				if err != nil {
					return fmt.Errorf("invalid due date %q: %w", due, err)
				}
				p.DueDate = d
			}

			if err := app.Payments.Add(ctx, p); err != nil {
				return err
			}

			fmt.Printf("Recorded payment %s (%s)\n", p.ID[:8], formatter.Currency(p.Amount))
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project ID or prefix")
	cmd.Flags().Float64Var(&amount, "amount", 0, "Payment amount")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&status, "status", "", "Status (pending|paid|partial|refunded)")
	cmd.Flags().StringVar(&description, "description", "", "Payment description")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func newPaymentListCmd(app *App) *cobra.Command {
	var project string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List payments",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var payments []*domain.Payment
			var err error
			if project != "" {
				projectID, rerr := resolveProjectID(ctx, app, project)
				if rerr != nil {
					return rerr
				}
				payments, err = app.Payments.ListByProject(ctx, projectID)
			} else {
				payments, err = app.Payments.List(ctx)
			}
			if err != nil {
				return err
			}

			if len(payments) == 0 {
				fmt.Println("No payments found.")
				return nil
			}

			fmt.Printf("%s\n", formatter.FormatPaymentList(payments))
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Only payments for this project")

	return cmd
}

func newPaymentUpdateCmd(app *App) *cobra.Command {
	var status, due, paid, description string
	var amount float64

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a payment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(changedFlags(cmd.Flags())) == 0 {
				return fmt.Errorf("nothing to update: pass at least one field flag")
			}

			ctx := context.Background()
			paymentID, err := resolvePaymentID(ctx, app, args[0])
			if err != nil {
				return err
			}

			var patch domain.PaymentPatch
			if cmd.Flags().Changed("amount") {
				patch.Amount = &amount
			}
			if cmd.Flags().Changed("status") {
				if !domain.ValidPaymentStatuses[status] {
					return fmt.Errorf("invalid status %q (pending|paid|partial|refunded)", status)
				}
				s := domain.PaymentStatus(status)
				patch.Status = &s
			}
			if cmd.Flags().Changed("due") {
				d, err := time.Parse("2006-01-02", due)
				if err != nil {
					return fmt.Errorf("invalid due date %q: %w", due, err)
				}
				patch.DueDate = &d
			}
			if cmd.Flags().Changed("paid") {
				d, err := time.Parse("2006-01-02", paid)
				if err != nil {
					return fmt.Errorf("invalid paid date %q: %w", paid, err)
				}
				patch.PaidDate = &d
			}
			if cmd.Flags().Changed("description") {
				patch.Description = &description
			}

			if err := app.Payments.Update(ctx, paymentID, patch); err != nil {
				return err
			}

			fmt.Printf("Updated payment %s\n", paymentID[:8])
			return nil
		},
	}

	cmd.Flags().Float64Var(&amount, "amount", 0, "Payment amount")
	cmd.Flags().StringVar(&status, "status", "", "Status (pending|paid|partial|refunded)")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&paid, "paid", "", "Paid date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&description, "description", "", "Payment description")

	return cmd
}

func newPaymentRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a payment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			paymentID, err := resolvePaymentID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Payments.Remove(ctx, paymentID); err != nil {
				return err
			}
			fmt.Printf("Removed payment %s\n", paymentID[:8])
			return nil
		},
	}
}

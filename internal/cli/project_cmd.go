package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/lancer/internal/cli/formatter"
	"github.com/alexanderramin/lancer/internal/domain"
	"github.com/alexanderramin/lancer/internal/filter"
	"github.com/spf13/cobra"
)

func resolveProjectID(ctx context.Context, app *App, input string) (string, error) {
	projects, err := app.Projects.List(ctx)
	if err != nil {
		return "", err
	}
	ids := make([]string, 0, len(projects))
	for _, p := range projects {
		ids = append(ids, p.ID)
	}
	return resolveID("project", input, ids)
}

func newProjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
	}

	cmd.AddCommand(
		newProjectAddCmd(app),
		newProjectListCmd(app),
		newProjectUpdateCmd(app),
		newProjectRemoveCmd(app),
	)

	return cmd
}

func newProjectAddCmd(app *App) *cobra.Command {
	var title, client, deadline, status, description string
	var payment float64

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new project",
		RunE: func(cmd *cobra.Command, args []string) error {
			p := &domain.Project{
				Title:       title,
				Client:      client,
				Payment:     payment,
				Status:      domain.ProjectStatus(status),
				Description: description,
			}

			if deadline != "" {
				d, err := time.Parse("2006-01-02", deadline)
				if err != nil {
					return fmt.Errorf("invalid deadline %q: %w", deadline, err)
				}
				p.Deadline = d
			}

			if err := app.Projects.Add(context.Background(), p); err != nil {
				return err
			}

			fmt.Printf("Created project %s [%s]\n", p.Title, p.DisplayID())
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Project title")
	cmd.Flags().StringVar(&client, "client", "", "Client name")
	cmd.Flags().StringVar(&deadline, "deadline", "", "Deadline (YYYY-MM-DD)")
	cmd.Flags().Float64Var(&payment, "payment", 0, "Agreed payment amount")
	cmd.Flags().StringVar(&status, "status", "", "Status (ongoing|completed)")
	cmd.Flags().StringVar(&description, "description", "", "Project description")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newProjectListCmd(app *App) *cobra.Command {
	var search, status, after, before string
	var minAmount, maxAmount float64

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			projects, err := app.Projects.List(context.Background())
			if err != nil {
				return err
			}

			criteria := filter.DefaultCriteria()
			criteria.Search = search
			criteria.Status = status
			if cmd.Flags().Changed("min") {
				criteria.Amount.Min = minAmount
			}
			if cmd.Flags().Changed("max") {
				criteria.Amount.Max = maxAmount
			}
			if after != "" {
				d, err := time.Parse("2006-01-02", after)
				if err != nil {
					return fmt.Errorf("invalid date %q: %w", after, err)
				}
				criteria.Dates.Start = &d
			}
			if before != "" {
				d, err := time.Parse("2006-01-02", before)
				if err != nil {
					return fmt.Errorf("invalid date %q: %w", before, err)
				}
				criteria.Dates.End = &d
			}

			projects = filter.Projects(projects, criteria)
			if len(projects) == 0 {
				fmt.Println("No projects found.")
				return nil
			}

			fmt.Printf("%s\n", formatter.FormatProjectList(projects))
			return nil
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "Match title or client name")
	cmd.Flags().StringVar(&status, "status", "", "Filter by status (ongoing|completed)")
	cmd.Flags().StringVar(&after, "after", "", "Deadline on or after (YYYY-MM-DD)")
	cmd.Flags().StringVar(&before, "before", "", "Deadline on or before (YYYY-MM-DD)")
	cmd.Flags().Float64Var(&minAmount, "min", 0, "Minimum payment amount")
	cmd.Flags().Float64Var(&maxAmount, "max", filter.DefaultAmountMax, "Maximum payment amount")

	return cmd
}

func newProjectUpdateCmd(app *App) *cobra.Command {
	var title, client, deadline, status, description string
	var payment float64

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(changedFlags(cmd.Flags())) == 0 {
				return fmt.Errorf("nothing to update: pass at least one field flag")
			}

			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}

			// Only the changed flags travel in the patch.
			var patch domain.ProjectPatch
			if cmd.Flags().Changed("title") {
				patch.Title = &title
			}
			if cmd.Flags().Changed("client") {
				patch.Client = &client
			}
			if cmd.Flags().Changed("deadline") {
				d, err := time.Parse("2006-01-02", deadline)
				if err != nil {
					return fmt.Errorf("invalid deadline %q: %w", deadline, err)
				}
				patch.Deadline = &d
			}
			if cmd.Flags().Changed("payment") {
				patch.Payment = &payment
			}
			if cmd.Flags().Changed("status") {
				s := domain.ProjectStatus(status)
				if !domain.ValidProjectStatuses[status] {
					return fmt.Errorf("invalid status %q (ongoing|completed)", status)
				}
				patch.Status = &s
			}
			if cmd.Flags().Changed("description") {
				patch.Description = &description
			}

			if err := app.Projects.Update(ctx, projectID, patch); err != nil {
				return err
			}

			fmt.Printf("Updated project %s\n", projectID[:8])
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Project title")
	cmd.Flags().StringVar(&client, "client", "", "Client name")
	cmd.Flags().StringVar(&deadline, "deadline", "", "Deadline (YYYY-MM-DD)")
	cmd.Flags().Float64Var(&payment, "payment", 0, "Agreed payment amount")
	cmd.Flags().StringVar(&status, "status", "", "Status (ongoing|completed)")
	cmd.Flags().StringVar(&description, "description", "", "Project description")

	return cmd
}

func newProjectRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Projects.Remove(ctx, projectID); err != nil {
				return err
			}
			fmt.Printf("Removed project %s\n", projectID[:8])
			return nil
		},
	}
}

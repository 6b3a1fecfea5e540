package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/lancer/internal/cli/formatter"
	"github.com/alexanderramin/lancer/internal/domain"
	"github.com/alexanderramin/lancer/internal/filter"
	"github.com/spf13/cobra"
)

func resolveClientID(ctx context.Context, app *App, input string) (string, error) {
	clients, err := app.Clients.List(ctx)
	if err != nil {
		return "", err
	}
	ids := make([]string, 0, len(clients))
	for _, c := range clients {
		ids = append(ids, c.ID)
	}
	return resolveID("client", input, ids)
}

func newClientCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "client",
		Short: "Manage clients",
	}

	cmd.AddCommand(
		newClientAddCmd(app),
		newClientListCmd(app),
		newClientUpdateCmd(app),
		newClientRemoveCmd(app),
	)

	return cmd
}

func newClientAddCmd(app *App) *cobra.Command {
	var name, email, phone, country string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new client",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := &domain.Client{
				Name:    name,
				Email:   email,
				Phone:   phone,
				Country: country,
			}

			if err := app.Clients.Add(context.Background(), c); err != nil {
				return err
			}

			fmt.Printf("Created client %s [%s]\n", c.Name, c.DisplayID())
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Client name")
	cmd.Flags().StringVar(&email, "email", "", "Contact email")
	cmd.Flags().StringVar(&phone, "phone", "", "Contact phone")
	cmd.Flags().StringVar(&country, "country", "", "Country")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newClientListCmd(app *App) *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List clients",
		RunE: func(cmd *cobra.Command, args []string) error {
			clients, err := app.Clients.List(context.Background())
			if err != nil {
				return err
			}

			criteria := filter.DefaultCriteria()
			criteria.Search = search
			clients = filter.Clients(clients, criteria)

			if len(clients) == 0 {
				fmt.Println("No clients found.")
				return nil
			}

			fmt.Printf("%s\n", formatter.FormatClientList(clients))
			return nil
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "Match name or email")

	return cmd
}

func newClientUpdateCmd(app *App) *cobra.Command {
	var name, email, phone, country string

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a client",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(changedFlags(cmd.Flags())) == 0 {
				return fmt.Errorf("nothing to update: pass at least one field flag")
			}

			ctx := context.Background()
			clientID, err := resolveClientID(ctx, app, args[0])
			if err != nil {
				return err
			}

			var patch domain.ClientPatch
			if cmd.Flags().Changed("name") {
				patch.Name = &name
			}
			if cmd.Flags().Changed("email") {
				patch.Email = &email
			}
			if cmd.Flags().Changed("phone") {
				patch.Phone = &phone
			}
			if cmd.Flags().Changed("country") {
				patch.Country = &country
			}

			if err := app.Clients.Update(ctx, clientID, patch); err != nil {
				return err
			}

			fmt.Printf("Updated client %s\n", clientID[:8])
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Client name")
	cmd.Flags().StringVar(&email, "email", "", "Contact email")
	cmd.Flags().StringVar(&phone, "phone", "", "Contact phone")
	cmd.Flags().StringVar(&country, "country", "", "Country")

	return cmd
}

func newClientRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a client",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			clientID, err := resolveClientID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Clients.Remove(ctx, clientID); err != nil {
				return err
			}
			fmt.Printf("Removed client %s\n", clientID[:8])
			return nil
		},
	}
}

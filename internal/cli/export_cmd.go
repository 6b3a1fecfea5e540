package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/lancer/internal/export"
	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	var format, out string

	cmd := &cobra.Command{
		Use:       "export COLLECTION",
		Short:     "Export records to a file",
		Long:      "Export projects, clients or payments as CSV or as indented text records.",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"projects", "clients", "payments"},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			collection := args[0]

			f, err := export.ParseFormat(format)
			if err != nil {
				return err
			}

			var document string
			switch collection {
			case "projects":
				projects, lerr := app.Projects.List(ctx)
				if lerr != nil {
					return lerr
				}
				document, err = export.Projects(projects, f)
			case "clients":
				clients, lerr := app.Clients.List(ctx)
				if lerr != nil {
					return lerr
				}
				document, err = export.Clients(clients, f)
			case "payments":
				payments, lerr := app.Payments.List(ctx)
				if lerr != nil {
					return lerr
				}
				document, err = export.Payments(payments, f)
			default:
				return fmt.Errorf("unknown collection %q (projects|clients|payments)", collection)
			}
			if err != nil {
				return err
			}

			if out == "-" {
				fmt.Println(document)
				return nil
			}
			if out == "" {
				out = export.DefaultFilename(collection, f, time.Now())
			}
			if err := export.WriteFile(out, document); err != nil {
				return err
			}

			fmt.Printf("Exported %s to %s\n", collection, out)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "csv", "Export format (csv|text)")
	cmd.Flags().StringVar(&out, "out", "", "Output path (\"-\" for stdout)")

	return cmd
}

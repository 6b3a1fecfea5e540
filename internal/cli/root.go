package cli

import (
	"github.com/alexanderramin/lancer/internal/auth"
	"github.com/alexanderramin/lancer/internal/live"
	"github.com/alexanderramin/lancer/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all services used by CLI commands.
type App struct {
	Auth     *auth.Service
	Session  *auth.Session
	Hub      *live.Hub
	Mirror   *live.Mirror
	Projects service.ProjectService
	Clients  service.ClientService
	Payments service.PaymentService

	// IsInteractive reports whether stdin is a terminal; interactive
	// prompts are only offered when it returns true.
	IsInteractive func() bool
}

func (app *App) interactive() bool {
	return app.IsInteractive != nil && app.IsInteractive()
}

// NewRootCmd creates the top-level "lancer" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "lancer",
		Short:         "Freelance project, client and payment tracker",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newLoginCmd(app),
		newLogoutCmd(app),
		newSignupCmd(app),
		newWhoamiCmd(app),
		newProjectCmd(app),
		newClientCmd(app),
		newPaymentCmd(app),
		newDashboardCmd(app),
		newExportCmd(app),
	)

	return root
}

package cli

import (
	"github.com/spf13/cobra"

	"github.com/jhoicas/jawa-showroom/pkg/logger"
)

// NewRootCommand arma el árbol de comandos sobre app.
func NewRootCommand(app *App) *cobra.Command {
	if app.Log == nil {
		app.Log = logger.Nop()
	}
	root := &cobra.Command{
		Use:           "showroom",
		Short:         "Jawa bike showroom: catalogue, accounts, bookings and EMI",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			app.resumeSession()
		},
	}
	root.SetOut(app.out())
	if app.In != nil {
		root.SetIn(app.In)
	}

	root.AddCommand(
		newBikesCmd(app),
		newBikeCmd(app),
		newRegisterCmd(app),
		newLoginCmd(app),
		newLogoutCmd(app),
		newWhoamiCmd(app),
		newBookCmd(app),
		newBookingsCmd(app),
		newInvoiceCmd(app),
		newEMICmd(app),
	)
	return root
}

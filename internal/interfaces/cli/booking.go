package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/jhoicas/jawa-showroom/internal/application/dto"
	"github.com/jhoicas/jawa-showroom/internal/domain"
	"github.com/jhoicas/jawa-showroom/internal/domain/entity"
	"github.com/jhoicas/jawa-showroom/pkg/format"
)

func newBookCmd(app *App) *cobra.Command {
	var (
		useEMI     bool
		down, rate string
		tenure     int
		save       bool
	)
	cmd := &cobra.Command{
		Use:   "book <bike-id>",
		Short: "Book a bike and print the invoice",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := app.requireUser()
			if err != nil {
				return err
			}
			bike := app.Bikes.FindBikeByID(args[0])
			if bike == nil {
				return fmt.Errorf("bike %q: %w", args[0], domain.ErrNotFound)
			}

			plan := dto.FullPayment()
			if useEMI {
				downAmt, err := parseAmount("down", down)
				if err != nil {
					return err
				}
				rateAmt, err := parseAmount("rate", rate)
				if err != nil {
					return err
				}
				plan = dto.EMIPlan(downAmt, rateAmt, tenure)
			}

			bk, err := app.Bookings.CreateBooking(user, bike, plan)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprint(out, app.Bookings.GenerateInvoice(bk))
			fmt.Fprintf(out, "\nBooking confirmed: %s\n", bk.BookingID)
			if save {
				path, err := app.Bookings.SaveInvoice(app.InvoiceDir, bk)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Invoice saved to %s\n", path)
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.BoolVar(&useEMI, "emi", false, "pay in monthly instalments")
	f.StringVar(&down, "down", "0", "down payment in INR (with --emi)")
	f.StringVar(&rate, "rate", "9", "annual interest rate in percent (with --emi)")
	f.IntVar(&tenure, "tenure", 36, "loan tenure in months (with --emi)")
	f.BoolVar(&save, "save", false, "also write the invoice to the invoice directory")
	return cmd
}

func newBookingsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "bookings",
		Short: "List your bookings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := app.requireUser()
			if err != nil {
				return err
			}
			list := app.Bookings.BookingsByUser(user.Username)
			out := cmd.OutOrStdout()
			if len(list) == 0 {
				fmt.Fprintln(out, "No bookings yet.")
				return nil
			}
			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "BOOKING ID\tDATE\tBIKE\tON-ROAD PRICE\tPAYMENT\tSTATUS")
			for _, b := range list {
				fmt.Fprintf(w, "%s\t%s\t%s %s\t%s\t%s\t%s\n",
					b.BookingID, bookingDate(b), b.BikeModelName, b.BikeVariant,
					format.INR(b.TotalOnRoadPrice), paymentLabel(b), b.Status)
			}
			return w.Flush()
		},
	}
}

func newInvoiceCmd(app *App) *cobra.Command {
	var (
		save, asPDF bool
		outDir      string
	)
	cmd := &cobra.Command{
		Use:   "invoice <booking-id>",
		Short: "Reprint the invoice of one of your bookings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := app.requireUser()
			if err != nil {
				return err
			}
			dir := outDir
			if dir == "" {
				dir = app.InvoiceDir
			}
			out := cmd.OutOrStdout()

			if asPDF {
				path, err := app.PDF.SaveInvoicePDF(cmd.Context(), dir, user.Username, args[0])
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "PDF invoice saved to %s\n", path)
				return nil
			}

			bk := app.Bookings.FindBooking(args[0])
			if bk == nil || !strings.EqualFold(bk.Username, user.Username) {
				return fmt.Errorf("booking %q: %w", args[0], domain.ErrNotFound)
			}
			if save {
				path, err := app.Bookings.SaveInvoice(dir, bk)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Invoice saved to %s\n", path)
				return nil
			}
			fmt.Fprint(out, app.Bookings.GenerateInvoice(bk))
			return nil
		},
	}
	f := cmd.Flags()
	f.BoolVar(&save, "save", false, "write Invoice_<id>.txt instead of printing")
	f.BoolVar(&asPDF, "pdf", false, "write Invoice_<id>.pdf")
	f.StringVar(&outDir, "out", "", "output directory (default: configured invoice directory)")
	return cmd
}

func bookingDate(b *entity.Booking) string {
	if b.BookingDate.IsZero() {
		return "-"
	}
	return format.DateTime(b.BookingDate)
}

func paymentLabel(b *entity.Booking) string {
	if !b.EMIChosen {
		return "Full"
	}
	return fmt.Sprintf("EMI %s x %d", format.INR(b.EMIAmount), b.TenureMonths)
}

func parseAmount(name, s string) (decimal.Decimal, error) {
	v, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("--%s: %q no es un número: %w", name, s, domain.ErrInvalidInput)
	}
	return v, nil
}

package cli

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/jhoicas/jawa-showroom/internal/domain"
	"github.com/jhoicas/jawa-showroom/internal/domain/emi"
	"github.com/jhoicas/jawa-showroom/pkg/format"
)

func newEMICmd(app *App) *cobra.Command {
	var (
		bikeID, price, down, rate string
		tenure                    int
		schedule                  bool
	)
	cmd := &cobra.Command{
		Use:   "emi",
		Short: "Estimate monthly instalments for a bike or a price",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var onRoad decimal.Decimal
			switch {
			case bikeID != "":
				b := app.Bikes.FindBikeByID(bikeID)
				if b == nil {
					return fmt.Errorf("bike %q: %w", bikeID, domain.ErrNotFound)
				}
				onRoad = b.OnRoadPrice()
			case price != "":
				p, err := parseAmount("price", price)
				if err != nil {
					return err
				}
				onRoad = p
			default:
				return fmt.Errorf("use --bike or --price: %w", domain.ErrInvalidInput)
			}
			downAmt, err := parseAmount("down", down)
			if err != nil {
				return err
			}
			rateAmt, err := parseAmount("rate", rate)
			if err != nil {
				return err
			}

			q := emi.NewQuote(onRoad, downAmt, rateAmt, tenure)
			out := cmd.OutOrStdout()
			row := func(label, value string) { fmt.Fprintf(out, "  %-32s %s\n", label, value) }
			row("On-Road Price:", format.INR(onRoad))
			row("Down Payment:", format.INR(downAmt))
			row("Loan Amount:", format.INR(q.LoanAmount))
			row("Interest Rate:", rateAmt.StringFixed(2)+"% p.a.")
			row("Tenure:", fmt.Sprintf("%d months", tenure))
			row("Monthly EMI:", format.INR(q.EMI)+" / month")
			row("Total Payable (loan):", format.INR(q.TotalPayable))
			row("Total Interest Cost:", format.INR(q.TotalInterest))
			row("Total Outlay (incl. down):", format.INR(q.TotalOutlay))

			if schedule {
				fmt.Fprintln(out)
				fmt.Fprint(out, emi.AmortisationTable(q.LoanAmount, rateAmt, tenure))
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&bikeID, "bike", "", "catalogue bike ID (uses its on-road price)")
	f.StringVar(&price, "price", "", "on-road price in INR")
	f.StringVar(&down, "down", "0", "down payment in INR")
	f.StringVar(&rate, "rate", "9", "annual interest rate in percent")
	f.IntVar(&tenure, "tenure", 36, "tenure in months")
	f.BoolVar(&schedule, "schedule", false, "print the month-by-month amortisation schedule")
	return cmd
}

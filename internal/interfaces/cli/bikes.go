package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jhoicas/jawa-showroom/internal/domain"
	"github.com/jhoicas/jawa-showroom/internal/domain/entity"
	"github.com/jhoicas/jawa-showroom/pkg/format"
)

func newBikesCmd(app *App) *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "bikes",
		Short: "List the bike catalogue with on-road prices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			bikes := app.Bikes.AvailableBikes()
			if all {
				bikes = app.Bikes.AllBikes()
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tMODEL\tVARIANT\tCOLOUR\tON-ROAD PRICE")
			for _, b := range bikes {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", b.BikeID, b.ModelName, b.Variant, b.Color, format.INR(b.OnRoadPrice()))
			}
			return w.Flush()
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "include bikes marked as unavailable")
	return cmd
}

func newBikeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "bike <bike-id>",
		Short: "Show the spec sheet and price breakdown of a bike",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b := app.Bikes.FindBikeByID(args[0])
			if b == nil {
				return fmt.Errorf("bike %q: %w", args[0], domain.ErrNotFound)
			}
			printSpecSheet(cmd.OutOrStdout(), b)
			return nil
		},
	}
}

func printSpecSheet(out io.Writer, b *entity.Bike) {
	fmt.Fprintf(out, "%s %s (%s)\n", b.ModelName, b.Variant, b.BikeID)
	fmt.Fprintln(out, strings.Repeat("-", 48))
	if b.Description != "" {
		fmt.Fprintln(out, b.Description)
		fmt.Fprintln(out)
	}
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	rows := [][2]string{
		{"Colour", b.Color},
		{"Engine", b.EngineCC + ", " + b.EngineType},
		{"Max Power", b.MaxPower},
		{"Max Torque", b.MaxTorque},
		{"Transmission", b.Transmission},
		{"Fuel", b.FuelType + ", " + b.FuelTankCapacity},
		{"Mileage", b.Mileage},
		{"Kerb Weight", b.KerbWeight},
		{"Seat Height", b.SeatHeight},
		{"Wheelbase", b.Wheelbase},
		{"Ground Clearance", b.GroundClearance},
		{"Brakes", b.FrontBrake + " / " + b.RearBrake},
		{"Suspension", b.FrontSuspension + " / " + b.RearSuspension},
		{"", ""},
		{"Ex-Showroom Price", format.INR(b.ExShowroomPrice)},
		{"GST (" + b.GSTRate.String() + "%)", format.INR(b.GSTAmount())},
		{"RTO Registration", format.INR(b.RTOCharges)},
		{"Insurance", format.INR(b.InsurancePremium)},
		{"Handling", format.INR(b.HandlingCharges)},
		{"On-Road Price", format.INR(b.OnRoadPrice())},
	}
	for _, r := range rows {
		fmt.Fprintf(w, "%s\t%s\n", r[0], r[1])
	}
	_ = w.Flush()
}

package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"fx-pricer/internal/logging"
	"fx-pricer/internal/pricing"
	"fx-pricer/internal/sweep"
)

func newSweepCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Sweep spot and tabulate price-vs-spot",
		Long: `Price the contract at evenly spaced spot values holding every other
parameter fixed, for plotting price-vs-spot curves. With a barrier the
table also carries the vanilla price at each spot for comparison.`,
		Example: `  fxpricer sweep --from 60 --to 160 --strike 90 --ttm 3 --vol 0.16 --rd 0.05 --rf 0.03
  fxpricer sweep --from 60 --to 160 --strike 90 --barrier 150 --direction up --action out --csv`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			market, contract, err := requestFromFlags(cmd)
			if err != nil {
				output.Error("%v", err)
				return err
			}

			level, _ := cmd.Flags().GetFloat64("barrier")
			if level != 0 {
				spec, err := barrierFromFlags(cmd)
				if err != nil {
					output.Error("%v", err)
					return err
				}
				contract.Barrier = spec
			}

			from, _ := cmd.Flags().GetFloat64("from")
			to, _ := cmd.Flags().GetFloat64("to")
			points, _ := cmd.Flags().GetInt("points")
			if points == 0 {
				points = app.Config.Sweep.Points
			}

			cfg := sweep.Config{
				From:    from,
				To:      to,
				Points:  points,
				Workers: app.Config.Sweep.Workers,
			}
			// Spot comes from the sweep range; the flag value is unused here.
			market.Spot = from

			started := time.Now()
			series, err := sweep.Spot(context.Background(), cfg, pricing.Request{
				Market:   market,
				Contract: contract,
			})
			if err != nil {
				output.Error("Sweep failed: %v", err)
				return err
			}
			logging.LogSweep(app.Logger, from, to, points, time.Since(started))

			if output.IsJSON() {
				return output.JSON(series)
			}

			p := app.Config.Output.Precision
			csv, _ := cmd.Flags().GetBool("csv")
			if csv {
				output.Println("spot,price,base,barrier_adjustment")
				for _, pt := range series {
					output.Printf("%s,%s,%s,%s\n",
						FormatPrice(pt.Spot, p), FormatPrice(pt.Result.Price, p),
						FormatPrice(pt.Result.BasePrice, p), FormatPrice(pt.Result.BarrierAdjustment, p))
				}
				return nil
			}

			headers := []string{"Spot", "Price"}
			if contract.Barrier != nil {
				headers = append(headers, "Vanilla", "Barrier Adj")
			}
			table := NewTable(output, headers...)
			for _, pt := range series {
				row := []string{FormatPrice(pt.Spot, p), FormatPrice(pt.Result.Price, p)}
				if contract.Barrier != nil {
					row = append(row, FormatPrice(pt.Result.BasePrice, p), FormatPrice(pt.Result.BarrierAdjustment, p))
				}
				table.AddRow(row...)
			}
			table.Render()
			return nil
		},
	}

	addMarketFlags(cmd, app)
	cmd.Flags().String("right", "call", "option right (call or put)")

	cmd.Flags().Float64("from", 0, "sweep start spot")
	cmd.Flags().Float64("to", 0, "sweep end spot")
	cmd.Flags().Int("points", 0, "number of sweep points (default from config)")
	cmd.Flags().Bool("csv", false, "emit CSV instead of a table")

	cmd.Flags().Float64("barrier", 0, "optional barrier level")
	cmd.Flags().String("direction", "", "barrier direction (up or down)")
	cmd.Flags().String("action", "", "barrier action (in or out)")

	return cmd
}

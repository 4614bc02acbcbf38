package cli

import (
	"github.com/spf13/cobra"

	"fx-pricer/internal/logging"
	"fx-pricer/internal/models"
	"fx-pricer/internal/pricing"
)

func newSmileCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "smile",
		Short: "Price with a Vanna-Volga smile adjustment",
		Long: `Price an FX option with the Vanna-Volga correction built from the three
standard smile quotes: at-the-money volatility, 25-delta risk reversal and
25-delta butterfly, each with its conventional pivot strike.`,
		Example: `  fxpricer smile --spot 100 --strike 90 --ttm 3 --vol 0.16 --rd 0.05 --rf 0.03 \
      --atm 0.16 --rr 0.01 --bf 0.004 --put-strike 85 --atm-strike 100 --call-strike 118
  fxpricer smile ... --barrier 150 --direction up --action out`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			market, contract, err := requestFromFlags(cmd)
			if err != nil {
				output.Error("%v", err)
				return err
			}

			hasBarrier, _ := cmd.Flags().GetFloat64("barrier")
			if hasBarrier != 0 {
				spec, err := barrierFromFlags(cmd)
				if err != nil {
					output.Error("%v", err)
					return err
				}
				contract.Barrier = spec
			}

			quotes := quotesFromFlags(cmd)

			res, err := pricing.Price(pricing.Request{
				Market:   market,
				Contract: contract,
				Quotes:   &quotes,
			})
			if err != nil {
				output.Error("Pricing failed: %v", err)
				return err
			}
			logging.LogPricing(logging.WithInstrument(app.Logger, contract), market, res)

			if output.IsJSON() {
				return output.JSON(res)
			}
			if err := displayResult(output, app, market, contract, res); err != nil {
				return err
			}

			p := app.Config.Output.Precision
			putVol, atmVol, callVol := quotes.PivotVols()
			output.Println()
			output.Bold("Smile Pivots")
			table := NewTable(output, "Pivot", "Strike", "Vol")
			table.AddRow("25d Put", FormatPrice(quotes.PutStrike, p), FormatVol(putVol))
			table.AddRow("ATM", FormatPrice(quotes.ATMStrike, p), FormatVol(atmVol))
			table.AddRow("25d Call", FormatPrice(quotes.CallStrike, p), FormatVol(callVol))
			table.Render()
			return nil
		},
	}

	addMarketFlags(cmd, app)
	cmd.Flags().String("right", "call", "option right (call or put)")

	cmd.Flags().Float64("barrier", 0, "optional barrier level")
	cmd.Flags().String("direction", "", "barrier direction (up or down)")
	cmd.Flags().String("action", "", "barrier action (in or out)")

	cmd.Flags().Float64("atm", 0, "at-the-money volatility quote")
	cmd.Flags().Float64("rr", 0, "25-delta risk-reversal quote")
	cmd.Flags().Float64("bf", 0, "25-delta butterfly quote")
	cmd.Flags().Float64("put-strike", 0, "25-delta put pivot strike")
	cmd.Flags().Float64("atm-strike", 0, "at-the-money pivot strike")
	cmd.Flags().Float64("call-strike", 0, "25-delta call pivot strike")

	return cmd
}

func quotesFromFlags(cmd *cobra.Command) models.SmileQuotes {
	atm, _ := cmd.Flags().GetFloat64("atm")
	rr, _ := cmd.Flags().GetFloat64("rr")
	bf, _ := cmd.Flags().GetFloat64("bf")
	putStrike, _ := cmd.Flags().GetFloat64("put-strike")
	atmStrike, _ := cmd.Flags().GetFloat64("atm-strike")
	callStrike, _ := cmd.Flags().GetFloat64("call-strike")

	return models.SmileQuotes{
		ATMVol:       atm,
		RiskReversal: rr,
		Butterfly:    bf,
		PutStrike:    putStrike,
		ATMStrike:    atmStrike,
		CallStrike:   callStrike,
	}
}

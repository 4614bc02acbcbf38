package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"fx-pricer/internal/errors"
	"fx-pricer/internal/logging"
	"fx-pricer/internal/models"
	"fx-pricer/internal/pricing"
)

func newPriceCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "price",
		Short: "Price an FX option",
		Long:  "Compute the theoretical fair value of an FX vanilla or barrier option.",
	}

	cmd.AddCommand(newPriceVanillaCmd(app))
	cmd.AddCommand(newPriceBarrierCmd(app))

	addMarketFlags(cmd, app)
	cmd.PersistentFlags().String("right", "call", "option right (call or put)")

	return cmd
}

// addMarketFlags registers the market-parameter flags shared by all
// pricing commands. Rate and vol defaults come from config.
func addMarketFlags(cmd *cobra.Command, app *App) {
	cmd.PersistentFlags().Float64("spot", 0, "spot price")
	cmd.PersistentFlags().Float64("strike", 0, "strike price")
	cmd.PersistentFlags().Float64("ttm", 1, "time to maturity in years")
	cmd.PersistentFlags().Float64("vol", app.Config.Market.Volatility, "flat volatility (annualized)")
	cmd.PersistentFlags().Float64("rd", app.Config.Market.DomesticRate, "domestic interest rate (continuously compounded)")
	cmd.PersistentFlags().Float64("rf", app.Config.Market.ForeignRate, "foreign interest rate (continuously compounded)")
}

func newPriceVanillaCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "vanilla",
		Short: "Price a European vanilla option",
		Example: `  fxpricer price vanilla --spot 100 --strike 90 --ttm 3 --vol 0.16 --rd 0.05 --rf 0.03
  fxpricer price vanilla --spot 1.0850 --strike 1.10 --ttm 0.5 --vol 0.08 --right put`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			market, contract, err := requestFromFlags(cmd)
			if err != nil {
				output.Error("%v", err)
				return err
			}

			res, err := pricing.Price(pricing.Request{Market: market, Contract: contract})
			if err != nil {
				output.Error("Pricing failed: %v", err)
				return err
			}
			logging.LogPricing(logging.WithInstrument(app.Logger, contract), market, res)

			return displayResult(output, app, market, contract, res)
		},
	}
}

func newPriceBarrierCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "barrier",
		Short: "Price a knock-in or knock-out barrier option",
		Example: `  fxpricer price barrier --spot 100 --strike 90 --ttm 3 --vol 0.16 --rd 0.05 --rf 0.03 \
      --barrier 150 --direction up --action out`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			market, contract, err := requestFromFlags(cmd)
			if err != nil {
				output.Error("%v", err)
				return err
			}
			spec, err := barrierFromFlags(cmd)
			if err != nil {
				output.Error("%v", err)
				return err
			}
			contract.Barrier = spec

			res, err := pricing.Price(pricing.Request{Market: market, Contract: contract})
			if err != nil {
				output.Error("Pricing failed: %v", err)
				return err
			}
			logging.LogPricing(logging.WithInstrument(app.Logger, contract), market, res)

			return displayResult(output, app, market, contract, res)
		},
	}

	cmd.Flags().Float64("barrier", 0, "barrier level")
	cmd.Flags().String("direction", "", "barrier direction (up or down)")
	cmd.Flags().String("action", "", "barrier action (in or out)")

	return cmd
}

// requestFromFlags assembles market parameters and the vanilla part of
// the contract from the command flags.
func requestFromFlags(cmd *cobra.Command) (models.MarketParameters, models.ContractSpec, error) {
	spot, _ := cmd.Flags().GetFloat64("spot")
	strike, _ := cmd.Flags().GetFloat64("strike")
	ttm, _ := cmd.Flags().GetFloat64("ttm")
	vol, _ := cmd.Flags().GetFloat64("vol")
	rd, _ := cmd.Flags().GetFloat64("rd")
	rf, _ := cmd.Flags().GetFloat64("rf")
	rightStr, _ := cmd.Flags().GetString("right")

	market := models.MarketParameters{
		Spot:           spot,
		DomesticRate:   rd,
		ForeignRate:    rf,
		Volatility:     vol,
		TimeToMaturity: ttm,
	}

	right, ok := models.ParseOptionRight(strings.ToUpper(rightStr))
	if !ok {
		return market, models.ContractSpec{}, errors.NewInvalidOptionTypeError("right", rightStr)
	}

	return market, models.ContractSpec{Strike: strike, Right: right}, nil
}

func barrierFromFlags(cmd *cobra.Command) (*models.BarrierSpec, error) {
	level, _ := cmd.Flags().GetFloat64("barrier")
	directionStr, _ := cmd.Flags().GetString("direction")
	actionStr, _ := cmd.Flags().GetString("action")

	direction, ok := models.ParseBarrierDirection(strings.ToUpper(directionStr))
	if !ok {
		return nil, errors.NewInvalidOptionTypeError("direction", directionStr)
	}
	action, ok := models.ParseBarrierAction(strings.ToUpper(actionStr))
	if !ok {
		return nil, errors.NewInvalidOptionTypeError("action", actionStr)
	}

	return &models.BarrierSpec{Level: level, Direction: direction, Action: action}, nil
}

func displayResult(output *Output, app *App, market models.MarketParameters, contract models.ContractSpec, res models.PricingResult) error {
	if output.IsJSON() {
		return output.JSON(res)
	}

	p := app.Config.Output.Precision

	name := string(contract.Right)
	if contract.Barrier != nil {
		name = string(contract.Barrier.Direction) + "-AND-" + string(contract.Barrier.Action) + " " + name
	}
	output.Bold("%s %s @ %s", strings.Title(strings.ToLower(name)), FormatPrice(contract.Strike, p), FormatPrice(market.Spot, p))
	output.Printf("  Vol: %s   Rd: %s   Rf: %s   T: %s\n\n",
		FormatVol(market.Volatility), FormatRate(market.DomesticRate),
		FormatRate(market.ForeignRate), FormatYears(market.TimeToMaturity))

	output.Printf("  Price:            %s\n", output.BoldText(FormatPrice(res.Price, p)))
	output.Printf("  Flat-vol base:    %s\n", FormatPrice(res.BasePrice, p))
	if contract.Barrier != nil {
		output.Printf("  Barrier adjust:   %s\n", FormatPrice(res.BarrierAdjustment, p))
	}
	if res.SmileCorrection != 0 {
		output.Printf("  Smile correction: %s\n", FormatPrice(res.SmileCorrection, p))
	}
	return nil
}

package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/coolbeans/lexcalc/pkg/interest"
	"github.com/coolbeans/lexcalc/pkg/interval"
	"github.com/coolbeans/lexcalc/pkg/numeral"
	"github.com/coolbeans/lexcalc/pkg/types"
)

type interestResult struct {
	Amount          string `json:"amount"`
	Rate            string `json:"rate"`
	Cadence         string `json:"cadence"`
	From            string `json:"from"`
	To              string `json:"to"`
	YearBasis       int    `json:"year_basis"`
	Days            int    `json:"days"`
	Period          string `json:"period"`
	Interest        string `json:"interest"`
	InterestCapital string `json:"interest_capital"`
}

func interestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "interest",
		Short: "Simple interest over a date range",
		Long: `Compute simple interest on an amount between two dates. The rate is
a percentage quoted per --cadence (day, month or year); day rates and the
accrual fraction both use the --basis day count (360 or 365).

Example:
  lexcalc interest --amount 100000 --rate 1 --cadence month \
    --from 2024-01-01 --to 2024-07-01`,
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, _, err := amountFlag(cmd, "amount")
			if err != nil {
				return err
			}
			rateRaw, _ := cmd.Flags().GetString("rate")
			rate, err := types.ParseAmount(rateRaw)
			if err != nil {
				return err
			}

			cadenceName := presets.Interest.Cadence
			if cmd.Flags().Changed("cadence") {
				cadenceName, _ = cmd.Flags().GetString("cadence")
			}
			cadence, err := interest.ParseCadence(cadenceName)
			if err != nil {
				return err
			}

			basisRaw := presets.Interest.YearBasis
			if cmd.Flags().Changed("basis") {
				basisRaw, _ = cmd.Flags().GetInt("basis")
			}
			basis, err := interest.ParseYearBasis(basisRaw)
			if err != nil {
				return err
			}

			from, err := dateFlag(cmd, "from")
			if err != nil {
				return err
			}
			to, err := dateFlag(cmd, "to")
			if err != nil {
				return err
			}

			amt := interest.Simple(amount, rate, cadence, from, to, basis)
			iv := interval.Between(from, to)
			log.WithFields(logrus.Fields{
				"annual_rate": interest.Annualize(rate, cadence, basis).String(),
				"days":        from.DaysUntil(to),
			}).Debug("interest computed")

			out := interestResult{
				Amount:          types.FormatMoney(amount),
				Rate:            rate.String(),
				Cadence:         cadence.String(),
				From:            from.String(),
				To:              to.String(),
				YearBasis:       int(basis),
				Days:            from.DaysUntil(to),
				Period:          iv.String(),
				Interest:        types.FormatMoney(amt),
				InterestCapital: numeral.ToCapital(amt),
			}
			return emit(out, func() {
				fmt.Printf("Period:   %s (%d days)\n", out.Period, out.Days)
				fmt.Printf("Interest: %s (%s)\n", out.Interest, out.InterestCapital)
			})
		},
	}
	cmd.Flags().String("amount", "", "principal amount")
	cmd.Flags().String("rate", "0", "percentage rate per cadence unit")
	cmd.Flags().String("cadence", "", "rate cadence: day, month or year (default from presets)")
	cmd.Flags().Int("basis", 0, "year basis: 360 or 365 (default from presets)")
	cmd.Flags().String("from", "today", "accrual start date (YYYY-MM-DD)")
	cmd.Flags().String("to", "today", "accrual end date (YYYY-MM-DD)")
	return cmd
}

func numeralCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "numeral",
		Short: "Capitalized Chinese currency numeral for an amount",
		Long: `Render an amount in the capitalized numeral form required on legal
and financial documents.

Example:
  lexcalc numeral --amount 13800.50`,
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, _, err := amountFlag(cmd, "amount")
			if err != nil {
				return err
			}
			capital := numeral.ToCapital(amount)
			out := struct {
				Amount  string `json:"amount"`
				Capital string `json:"capital"`
			}{types.FormatMoney(amount), capital}
			return emit(out, func() {
				fmt.Println(capital)
			})
		},
	}
	cmd.Flags().String("amount", "", "amount to render")
	return cmd
}

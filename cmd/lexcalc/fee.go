package main

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/coolbeans/lexcalc/pkg/fee"
	"github.com/coolbeans/lexcalc/pkg/numeral"
	"github.com/coolbeans/lexcalc/pkg/types"
)

// acceptResult is the fee tab in one answer: acceptance fee plus the
// related figures a filing clerk quotes alongside it.
type acceptResult struct {
	CaseType          string `json:"case_type"`
	Amount            string `json:"amount,omitempty"`
	AcceptanceFee     string `json:"acceptance_fee"`
	AcceptanceCapital string `json:"acceptance_fee_capital"`
	HalvedFee         string `json:"halved_fee"`
	PreservationFee   string `json:"preservation_fee"`
	ExecutionFee      string `json:"execution_fee"`
}

type singleFeeResult struct {
	Amount     string `json:"amount"`
	Fee        string `json:"fee"`
	FeeCapital string `json:"fee_capital"`
}

func feeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fee",
		Short: "Compute statutory litigation fees",
	}
	cmd.AddCommand(feeAcceptCmd())
	cmd.AddCommand(feePreserveCmd())
	cmd.AddCommand(feeExecuteCmd())
	cmd.AddCommand(feeApplyCmd())
	return cmd
}

func caseTypeList() string {
	names := make([]string, 0, len(fee.CaseTypes()))
	for _, ct := range fee.CaseTypes() {
		names = append(names, ct.String())
	}
	return strings.Join(names, ", ")
}

func feeAcceptCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accept",
		Short: "Case acceptance fee, with halved, preservation and execution figures",
		Long: `Compute the acceptance fee for a case type and disputed amount,
together with the halved (summary-procedure) figure and the preservation
and execution fees over the same amount.

Case types: ` + caseTypeList() + `

Example:
  lexcalc fee accept --type general-property --amount 1000000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			typeName, _ := cmd.Flags().GetString("type")
			caseType, err := fee.ParseCaseType(typeName)
			if err != nil {
				return err
			}
			amount, hasAmount, err := amountFlag(cmd, "amount")
			if err != nil {
				return err
			}

			acceptance := fee.AcceptanceFee(caseType, amount, hasAmount)
			log.WithFields(logrus.Fields{
				"case_type": caseType.String(),
				"amount":    amount.String(),
			}).Debug("acceptance fee computed")

			result := acceptResult{
				CaseType:          caseType.String(),
				AcceptanceFee:     types.FormatMoney(acceptance),
				AcceptanceCapital: numeral.ToCapital(acceptance),
				HalvedFee:         types.FormatMoney(fee.HalvedFee(acceptance)),
				PreservationFee:   types.FormatMoney(fee.PreservationFee(amount)),
				ExecutionFee:      types.FormatMoney(fee.ExecutionFee(amount)),
			}
			if hasAmount {
				result.Amount = types.FormatMoney(amount)
			}
			return emit(result, func() {
				fmt.Printf("Acceptance fee:   %s (%s)\n", result.AcceptanceFee, result.AcceptanceCapital)
				fmt.Printf("Halved fee:       %s\n", result.HalvedFee)
				fmt.Printf("Preservation fee: %s\n", result.PreservationFee)
				fmt.Printf("Execution fee:    %s\n", result.ExecutionFee)
			})
		},
	}
	cmd.Flags().String("type", fee.GeneralProperty.String(), "case type")
	cmd.Flags().String("amount", "", "disputed amount (omit when no amount is in dispute)")
	return cmd
}

func feePreserveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preserve",
		Short: "Asset preservation application fee",
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, _, err := amountFlag(cmd, "amount")
			if err != nil {
				return err
			}
			f := fee.PreservationFee(amount)
			result := singleFeeResult{
				Amount:     types.FormatMoney(amount),
				Fee:        types.FormatMoney(f),
				FeeCapital: numeral.ToCapital(f),
			}
			return emit(result, func() {
				fmt.Printf("Preservation fee: %s (%s)\n", result.Fee, result.FeeCapital)
			})
		},
	}
	cmd.Flags().String("amount", "", "amount to preserve")
	return cmd
}

func feeExecuteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "execute",
		Short: "Judgment execution fee",
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, _, err := amountFlag(cmd, "amount")
			if err != nil {
				return err
			}
			f := fee.ExecutionFee(amount)
			result := singleFeeResult{
				Amount:     types.FormatMoney(amount),
				Fee:        types.FormatMoney(f),
				FeeCapital: numeral.ToCapital(f),
			}
			return emit(result, func() {
				fmt.Printf("Execution fee: %s (%s)\n", result.Fee, result.FeeCapital)
			})
		},
	}
	cmd.Flags().String("amount", "", "amount under execution")
	return cmd
}

func feeApplyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Special-procedure application fee",
		Long: `Compute the fee for a special-procedure application.

Application types: public-notice, set-aside-arbitration, bankruptcy,
payment-order. Bankruptcy and payment-order fees derive from the property
schedule over --amount.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			typeName, _ := cmd.Flags().GetString("type")
			appType, err := fee.ParseApplicationType(typeName)
			if err != nil {
				return err
			}
			amount, _, err := amountFlag(cmd, "amount")
			if err != nil {
				return err
			}
			f := fee.ApplicationFee(appType, amount)
			result := singleFeeResult{
				Amount:     types.FormatMoney(amount),
				Fee:        types.FormatMoney(f),
				FeeCapital: numeral.ToCapital(f),
			}
			return emit(result, func() {
				fmt.Printf("Application fee (%s): %s (%s)\n", appType, result.Fee, result.FeeCapital)
			})
		},
	}
	cmd.Flags().String("type", fee.PublicNotice.String(), "application type")
	cmd.Flags().String("amount", "", "amount involved")
	return cmd
}

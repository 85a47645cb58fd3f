package main

import (
	"fmt"
	"os"

	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/coolbeans/lexcalc/pkg/config"
	"github.com/coolbeans/lexcalc/pkg/types"
)

var version = "0.1.0"

var (
	log     = logrus.New()
	presets = config.Default()

	configPath string
	jsonOut    bool
	verbose    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "lexcalc",
		Short: "Litigation fee and court date calculator",
		Long: `Lexcalc computes statutory litigation fees and date figures for
Chinese civil court procedures:

  - Acceptance, preservation, execution and application fees under the
    2007 measures on court cost payment
  - Court date scheduling with weekend roll-forward
  - Exact calendar intervals and simple interest
  - Capitalized Chinese currency numerals for documents

All calculations are pure functions of their inputs; results carry no
legal weight and must be verified against the current schedules.`,
		Version:       version,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log.SetOutput(os.Stderr)
			log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			} else {
				log.SetLevel(logrus.WarnLevel)
			}

			loaded, err := config.Load(configPath)
			if err != nil {
				return err
			}
			presets = loaded
			log.WithField("config", configPath).Debug("presets loaded")
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML presets file")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "emit results as JSON")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log calculation details")

	rootCmd.AddCommand(feeCmd())
	rootCmd.AddCommand(dateCmd())
	rootCmd.AddCommand(intervalCmd())
	rootCmd.AddCommand(interestCmd())
	rootCmd.AddCommand(numeralCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// emit renders a result either as JSON or through the plain-text printer.
func emit(result any, plain func()) error {
	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}
	plain()
	return nil
}

// amountFlag reads an optional amount flag, reporting whether it was given.
func amountFlag(cmd *cobra.Command, name string) (decimal.Decimal, bool, error) {
	raw, _ := cmd.Flags().GetString(name)
	if !cmd.Flags().Changed(name) || raw == "" {
		return decimal.Zero, false, nil
	}
	amount, err := types.ParseAmount(raw)
	if err != nil {
		return decimal.Zero, false, err
	}
	return amount, true, nil
}

func dateFlag(cmd *cobra.Command, name string) (types.Date, error) {
	raw, _ := cmd.Flags().GetString(name)
	if raw == "" || raw == "today" {
		return types.Today(), nil
	}
	return types.ParseDate(raw)
}

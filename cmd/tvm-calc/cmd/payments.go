package cmd

import (
	"github.com/spf13/cobra"

	"github.com/quantfold/tvm/internal/finance"
)

var (
	paymentRate float64
	paymentPer  int
	paymentNper float64
	paymentPv   float64
	paymentFv   float64
	paymentWhen string
)

var ipmtCmd = &cobra.Command{
	Use:   "ipmt",
	Short: "Interest portion of a payment",
	Long: `Computes the interest portion of the level payment in a specific
period, based on the balance remaining at the start of that period.

Examples:
  tvm-calc ipmt --rate 0.008333 --per 1 --nper 60 --pv 55000
  tvm-calc ipmt --rate 0.006866 --per 2 --nper 12 --pv 2500 --when begin`,
	RunE: runIpmt,
}

var ppmtCmd = &cobra.Command{
	Use:   "ppmt",
	Short: "Principal portion of a payment",
	Long: `Computes the principal portion of the level payment in a specific
period, the payment less its interest portion.

Examples:
  tvm-calc ppmt --rate 0.008333 --per 1 --nper 60 --pv 55000
  tvm-calc ppmt --rate 0.008333 --per 60 --nper 60 --pv 55000`,
	RunE: runPpmt,
}

func init() {
	for _, c := range []*cobra.Command{ipmtCmd, ppmtCmd} {
		rootCmd.AddCommand(c)
		c.Flags().Float64Var(&paymentRate, "rate", 0, "interest rate per period")
		c.Flags().IntVar(&paymentPer, "per", 1, "target period, 1-based")
		c.Flags().Float64Var(&paymentNper, "nper", 0, "number of periods")
		c.Flags().Float64Var(&paymentPv, "pv", 0, "present value")
		c.Flags().Float64Var(&paymentFv, "fv", 0, "future value")
		c.Flags().StringVar(&paymentWhen, "when", "end", "payment timing: end or begin")
	}
}

func runIpmt(cmd *cobra.Command, args []string) error {
	when, err := parseWhenFlag(paymentWhen)
	if err != nil {
		return err
	}
	value, err := finance.NewInterestPayment(paymentRate, paymentPer, paymentNper, paymentPv, paymentFv, when).Get()
	if err != nil {
		return err
	}
	printResult(value)
	return nil
}

func runPpmt(cmd *cobra.Command, args []string) error {
	when, err := parseWhenFlag(paymentWhen)
	if err != nil {
		return err
	}
	value, err := finance.NewPrincipalPayment(paymentRate, paymentPer, paymentNper, paymentPv, paymentFv, when).Get()
	if err != nil {
		return err
	}
	printResult(value)
	return nil
}

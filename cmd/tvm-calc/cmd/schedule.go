package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/quantfold/tvm/internal/finance"
)

var (
	scheduleRate float64
	scheduleNper int
	schedulePv   float64
	scheduleFv   float64
	scheduleWhen string
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Per-period amortization schedule",
	Long: `Prints the payment, interest, principal and remaining balance for
each period of a level-payment loan.

Examples:
  tvm-calc schedule --rate 0.00625 --nper 12 --pv 10000`,
	RunE: runSchedule,
}

func init() {
	rootCmd.AddCommand(scheduleCmd)
	scheduleCmd.Flags().Float64Var(&scheduleRate, "rate", 0, "interest rate per period")
	scheduleCmd.Flags().IntVar(&scheduleNper, "nper", 0, "number of periods")
	scheduleCmd.Flags().Float64Var(&schedulePv, "pv", 0, "present value")
	scheduleCmd.Flags().Float64Var(&scheduleFv, "fv", 0, "future value")
	scheduleCmd.Flags().StringVar(&scheduleWhen, "when", "end", "payment timing: end or begin")
}

func runSchedule(cmd *cobra.Command, args []string) error {
	when, err := parseWhenFlag(scheduleWhen)
	if err != nil {
		return err
	}

	rows, err := finance.AmortizationSchedule(scheduleRate, scheduleNper, schedulePv, scheduleFv, when)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "Period\tPayment\tInterest\tPrincipal\tBalance\t")
	for _, row := range rows {
		fmt.Fprintf(w, "%d\t%.2f\t%.2f\t%.2f\t%.2f\t\n",
			row.Period, row.Payment, row.Interest, row.Principal, row.Balance)
	}
	return w.Flush()
}

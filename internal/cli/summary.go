package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	summaryUser string
	summaryDate string
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show a user's per-work-order totals for one day",
	Args:  cobra.NoArgs,
	RunE:  runSummary,
}

func init() {
	summaryCmd.Flags().StringVar(&summaryUser, "user", "", "User name")
	summaryCmd.Flags().StringVar(&summaryDate, "date", "", "Day as YYYY-MM-DD (defaults to today)")
	summaryCmd.MarkFlagRequired("user")
}

func runSummary(cmd *cobra.Command, args []string) error {
	app, err := setup()
	if err != nil {
		return err
	}
	defer app.log.Sync()

	sheet, err := app.svc.Day(summaryUser, summaryDate)
	if err != nil {
		return err
	}

	fmt.Printf("Summary for %s on %s\n", sheet.User, sheet.Date)
	fmt.Printf("%-14s %8s\n", "Work Order", "Hours")
	for _, wo := range sheet.WorkOrderTotals {
		fmt.Printf("%-14s %8.3f\n", wo.WorkOrderCode, wo.Hours)
	}
	fmt.Println("-----------------------")
	fmt.Printf("%-14s %8.3f\n", "Total", sheet.TotalHours)
	return nil
}

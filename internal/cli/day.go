package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	dayUser string
	dayDate string
)

var dayCmd = &cobra.Command{
	Use:   "day",
	Short: "List a user's entries for one day",
	Args:  cobra.NoArgs,
	RunE:  runDay,
}

func init() {
	dayCmd.Flags().StringVar(&dayUser, "user", "", "User name")
	dayCmd.Flags().StringVar(&dayDate, "date", "", "Day as YYYY-MM-DD (defaults to today)")
	dayCmd.MarkFlagRequired("user")
}

func runDay(cmd *cobra.Command, args []string) error {
	app, err := setup()
	if err != nil {
		return err
	}
	defer app.log.Sync()

	sheet, err := app.svc.Day(dayUser, dayDate)
	if err != nil {
		return err
	}

	fmt.Printf("Entries for %s on %s\n", sheet.User, sheet.Date)
	if len(sheet.Entries) == 0 {
		fmt.Println("No entries.")
		return nil
	}
	fmt.Printf("%-10s %-14s %-10s %-10s %8s  %s\n",
		"Time", "Work Order", "Hour Type", "Type", "Hours", "Comment")
	for _, e := range sheet.Entries {
		fmt.Printf("%-10s %-14s %-10s %-10s %8.3f  %s\n",
			e.Time, e.WorkOrderCode, e.HourType, e.OccupationType, e.Hours, e.Comment)
	}
	fmt.Printf("%-47s %8.3f\n", "Total", sheet.TotalHours)
	return nil
}

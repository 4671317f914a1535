package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"hangarops/labour-reporting/internal/models"
)

var (
	submitUser       string
	submitPIN        string
	submitTechnician string
	submitDuration   string
	submitWorkOrder  string
	submitHourType   string
	submitType       string
	submitComment    string
	submitDate       string
)

var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Record one occupation entry",
	Args:  cobra.NoArgs,
	RunE:  runSubmit,
}

func init() {
	submitCmd.Flags().StringVar(&submitUser, "user", "", "Submitting user name")
	submitCmd.Flags().StringVar(&submitPIN, "pin", "", "Roster pin for the user")
	submitCmd.Flags().StringVar(&submitTechnician, "technician", "", "Technician code (defaults to the user name, upper-cased)")
	submitCmd.Flags().StringVar(&submitDuration, "duration", "", "Worked time as HH:MM")
	submitCmd.Flags().StringVar(&submitWorkOrder, "work-order", "", "Work order code")
	submitCmd.Flags().StringVar(&submitHourType, "hour-type", models.HourTypeNormal, "Hour type (NORMAL, OVERTIME, SHIFT)")
	submitCmd.Flags().StringVar(&submitType, "type", "", "Optional occupation type qualifier")
	submitCmd.Flags().StringVar(&submitComment, "comment", "", "Free-text comment")
	submitCmd.Flags().StringVar(&submitDate, "date", "", "Target day as YYYY-MM-DD (defaults to today)")
	submitCmd.MarkFlagRequired("user")
	submitCmd.MarkFlagRequired("duration")
	submitCmd.MarkFlagRequired("work-order")
}

func runSubmit(cmd *cobra.Command, args []string) error {
	app, err := setup()
	if err != nil {
		return err
	}
	defer app.log.Sync()

	ok, err := app.src.Authenticate(submitUser, submitPIN)
	if err != nil {
		return fmt.Errorf("failed to check credentials: %w", err)
	}
	if !ok {
		return fmt.Errorf("invalid name or pin")
	}

	rec, err := app.svc.Submit(models.SubmissionRequest{
		User:           submitUser,
		TechnicianCode: submitTechnician,
		Duration:       submitDuration,
		WorkOrderCode:  submitWorkOrder,
		HourType:       submitHourType,
		OccupationType: submitType,
		Comment:        submitComment,
		Date:           submitDate,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Recorded occupation %d for %s (%s, %.3f h)\n",
		rec.ID, submitUser, rec.WorkOrderCode, rec.DurationHours)
	return nil
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var rebuildDate string

var rebuildCmd = &cobra.Command{
	Use:   "rebuild",
	Short: "Rebuild a day's aggregate document from the per-user logs",
	Long: `Rebuild regenerates the shared aggregate document for one day from the
per-user record documents, which are the source of truth. Use it when an
aggregate append failed partway or the file was corrupted.`,
	Args: cobra.NoArgs,
	RunE: runRebuild,
}

func init() {
	rebuildCmd.Flags().StringVar(&rebuildDate, "date", "", "Day as YYYY-MM-DD (defaults to today)")
}

func runRebuild(cmd *cobra.Command, args []string) error {
	app, err := setup()
	if err != nil {
		return err
	}
	defer app.log.Sync()

	n, err := app.svc.Rebuild(rebuildDate)
	if err != nil {
		return err
	}

	day := rebuildDate
	if day == "" {
		day = "today"
	}
	fmt.Printf("Rebuilt aggregate for %s: %d records\n", day, n)
	return nil
}

package options

import (
	"time"

	"github.com/spf13/cobra"
)

const (
	layoutMonth      = "2006-1"
	layoutMonthShort = "1"
)

// MonthOptions
type MonthOptions struct {
	MonthString string
	Months      int
}

func AddMonthArgs(cmd *cobra.Command, o *MonthOptions) {
	cmd.Flags().StringVar(&o.MonthString, "month", "",
		`Month to show, example: --month="2026-10" or --month="10".`)
	cmd.Flags().IntVarP(&o.Months, "months", "n", 1,
		"How many months to show, counting back from --month.")
}

// GetMonth resolves --month against now. A bare month number means that
// month of the current year.
func (o *MonthOptions) GetMonth(now time.Time) (time.Time, error) {
	if o.MonthString == "" {
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()), nil
	}
	t, err := time.ParseInLocation(layoutMonth, o.MonthString, now.Location())
	if err != nil {
		t, err = time.ParseInLocation(layoutMonthShort, o.MonthString, now.Location())
		if err != nil {
			return time.Time{}, err
		}
		t = t.AddDate(now.Year(), 0, 0)
	}
	return t, nil
}

// Package reference renders study material for the doomsday rule.
package reference

import (
	"fmt"
	"io"
	"time"

	"github.com/verte-zerg/ddtrain/internal/doomsday"
	"github.com/verte-zerg/ddtrain/internal/model"
)

// Mnemonic returns the memory hook for an anchor, or "" if it has none.
func Mnemonic(a doomsday.AnchorEntry) string {
	switch {
	case a.Month == time.January:
		return "3rd in common years, 4th in leap years"
	case a.Month == time.February:
		return "last day of February"
	case a.Month == time.March && a.Day == 14:
		return "Pi Day"
	case int(a.Month) == a.Day:
		return "even doubles"
	case a.Month == time.July && a.Day == 4:
		return "Independence Day"
	case a.Month == time.October && a.Day == 31:
		return "Halloween"
	case a.Month == time.December && a.Day == 26:
		return "Boxing Day"
	default:
		return "9-to-5 at 7-11"
	}
}

// RenderAnchors prints the anchors of year with their dates and weekdays.
func RenderAnchors(w io.Writer, year int) error {
	kind := "common year"
	if doomsday.IsLeapYear(year) {
		kind = "leap year"
	}
	dd := doomsday.DoomsdayWeekday(year)
	if _, err := fmt.Fprintf(w, "Doomsday anchors for %d (%s): %s\n", year, kind, model.FormatWeekday(dd, true)); err != nil {
		return err
	}

	headers := []string{"Anchor", "Date", "Weekday", "Hint"}
	anchors := doomsday.Anchors(year)
	rows := make([][]string, 0, len(anchors))
	for _, a := range anchors {
		rows = append(rows, []string{
			fmt.Sprintf("%d/%d", int(a.Anchor.Month), a.Anchor.Day),
			a.Date.Long(),
			model.FormatWeekday(a.Weekday, true),
			Mnemonic(a.Anchor),
		})
	}
	rightAlign := map[int]bool{0: true}
	for _, line := range formatTable(headers, rows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

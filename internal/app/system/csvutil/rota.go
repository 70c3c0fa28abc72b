// internal/app/system/csvutil/rota.go
package csvutil

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/rotahub/rotahub/internal/domain/models"
)

// Day labels by rota day index. Index 0 is Monday; a rota week runs
// Monday through Sunday.
var dayNames = [...]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// DayName returns the label for a day index, or the raw number for an
// out-of-range value so malformed rows remain visible in exports.
func DayName(idx int) string {
	if idx >= 0 && idx < len(dayNames) {
		return dayNames[idx]
	}
	return strconv.Itoa(idx)
}

// WriteRota streams one week of rota assignments to w as CSV. The
// locations map provides display names for referenced locations;
// entries with a free-text custom location use that instead.
func WriteRota(w io.Writer, weekID string, assignments []models.RotaAssignment, locations map[string]string) error {
	cw := csv.NewWriter(w)

	header := []string{"Week", "Day", "Staff ID", "Team ID", "Shift", "Start", "End", "Location", "Notes"}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, a := range assignments {
		day := ""
		if a.DayIndex != nil {
			day = DayName(*a.DayIndex)
		}

		loc := a.CustomLocation
		if loc == "" && a.LocationID != nil {
			if name, ok := locations[a.LocationID.Hex()]; ok {
				loc = name
			} else {
				loc = a.LocationID.Hex()
			}
		}

		team := ""
		if !a.TeamID.IsZero() {
			team = a.TeamID.Hex()
		}

		rec := []string{
			weekID,
			day,
			a.UserID.Hex(),
			team,
			a.ShiftType,
			a.CustomStartTime,
			a.CustomEndTime,
			loc,
			a.Notes,
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

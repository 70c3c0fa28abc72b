package csvutil

import (
	"strings"
	"testing"

	"github.com/rotahub/rotahub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestDayName(t *testing.T) {
	tests := []struct {
		idx  int
		want string
	}{
		{0, "Monday"},
		{4, "Friday"},
		{6, "Sunday"},
		{7, "7"},
		{-1, "-1"},
	}
	for _, tt := range tests {
		if got := DayName(tt.idx); got != tt.want {
			t.Errorf("DayName(%d) = %q, want %q", tt.idx, got, tt.want)
		}
	}
}

func TestWriteRota_Header(t *testing.T) {
	var b strings.Builder
	if err := WriteRota(&b, "2024-W10", nil, nil); err != nil {
		t.Fatalf("WriteRota() error = %v", err)
	}
	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected header only, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "Week,Day,Staff ID") {
		t.Errorf("unexpected header: %q", lines[0])
	}
}

func TestWriteRota_Rows(t *testing.T) {
	userID := primitive.NewObjectID()
	locID := primitive.NewObjectID()
	day := 0

	assignments := []models.RotaAssignment{
		{
			ID:         primitive.NewObjectID(),
			UserID:     userID,
			WeekID:     "2024-W10",
			DayIndex:   &day,
			ShiftType:  "AM",
			LocationID: &locID,
			Notes:      "covering dispensary",
		},
	}
	locations := map[string]string{locID.Hex(): "Dispensary"}

	var b strings.Builder
	if err := WriteRota(&b, "2024-W10", assignments, locations); err != nil {
		t.Fatalf("WriteRota() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header + 1 row, got %d lines", len(lines))
	}
	row := lines[1]
	for _, want := range []string{"2024-W10", "Monday", userID.Hex(), "AM", "Dispensary", "covering dispensary"} {
		if !strings.Contains(row, want) {
			t.Errorf("row %q missing %q", row, want)
		}
	}
}

func TestWriteRota_CustomLocationWins(t *testing.T) {
	day := 3
	locID := primitive.NewObjectID()
	assignments := []models.RotaAssignment{
		{
			ID:             primitive.NewObjectID(),
			UserID:         primitive.NewObjectID(),
			WeekID:         "2024-W11",
			DayIndex:       &day,
			LocationID:     &locID,
			CustomLocation: "Offsite clinic",
		},
	}

	var b strings.Builder
	if err := WriteRota(&b, "2024-W11", assignments, map[string]string{locID.Hex(): "Ward 9"}); err != nil {
		t.Fatalf("WriteRota() error = %v", err)
	}
	out := b.String()
	if !strings.Contains(out, "Offsite clinic") {
		t.Errorf("expected custom location in output, got %q", out)
	}
	if strings.Contains(out, "Ward 9") {
		t.Errorf("custom location should take precedence over reference, got %q", out)
	}
}

func TestWriteRota_UnknownLocationFallsBackToID(t *testing.T) {
	day := 1
	locID := primitive.NewObjectID()
	assignments := []models.RotaAssignment{
		{
			ID:         primitive.NewObjectID(),
			UserID:     primitive.NewObjectID(),
			WeekID:     "2024-W12",
			DayIndex:   &day,
			LocationID: &locID,
		},
	}

	var b strings.Builder
	if err := WriteRota(&b, "2024-W12", assignments, nil); err != nil {
		t.Fatalf("WriteRota() error = %v", err)
	}
	if !strings.Contains(b.String(), locID.Hex()) {
		t.Errorf("expected raw location id in output, got %q", b.String())
	}
}

package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-MedicalBooking/pkg/types"
)

func TestDayIndex(t *testing.T) {
	monday := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		assert.Equal(t, i, DayIndex(monday.AddDate(0, 0, i)))
	}
}

func TestAvailabilityRule_Candidates(t *testing.T) {
	cases := []struct {
		name string
		rule AvailabilityRule
		want []types.TimeString
	}{
		{
			name: "exact fit",
			rule: AvailabilityRule{StartTime: "09:00", EndTime: "10:00", SlotMinutes: 30},
			want: []types.TimeString{"09:00", "09:30"},
		},
		{
			name: "remainder dropped",
			rule: AvailabilityRule{StartTime: "09:00", EndTime: "10:10", SlotMinutes: 30},
			want: []types.TimeString{"09:00", "09:30"},
		},
		{
			name: "slot larger than window",
			rule: AvailabilityRule{StartTime: "09:00", EndTime: "09:20", SlotMinutes: 30},
			want: []types.TimeString{},
		},
		{
			name: "until midnight",
			rule: AvailabilityRule{StartTime: "23:00", EndTime: "24:00", SlotMinutes: 30},
			want: []types.TimeString{"23:00", "23:30"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.rule.Candidates())
		})
	}
}

func TestAvailabilityRule_CandidateCount(t *testing.T) {
	for _, d := range []int{5, 10, 15, 25, 30, 45, 60} {
		rule := AvailabilityRule{StartTime: "08:00", EndTime: "12:10", SlotMinutes: d}
		assert.Len(t, rule.Candidates(), (250)/d, "slot %d", d)
	}
}

func TestAvailabilityRule_Validate(t *testing.T) {
	valid := AvailabilityRule{Weekday: 0, StartTime: "09:00", EndTime: "12:00", SlotMinutes: 30}
	assert.NoError(t, valid.Validate())

	cases := map[string]func(r *AvailabilityRule){
		"weekday":   func(r *AvailabilityRule) { r.Weekday = 7 },
		"order":     func(r *AvailabilityRule) { r.EndTime = "09:00" },
		"too short": func(r *AvailabilityRule) { r.SlotMinutes = 4 },
		"bad time":  func(r *AvailabilityRule) { r.StartTime = "9h" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			r := valid
			mutate(&r)
			assert.ErrorIs(t, r.Validate(), ErrValidation)
		})
	}
}

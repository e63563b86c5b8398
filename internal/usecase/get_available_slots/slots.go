package get_available_slots

import (
	"sort"

	"github.com/m04kA/SMC-MedicalBooking/internal/domain"
	"github.com/m04kA/SMC-MedicalBooking/pkg/types"
)

// resolveSlots собирает кандидатов всех правил дня и убирает занятые
// Кандидат занят, если он попадает в [начало, конец) любого живого бронирования.
// Правила обрабатываются независимо, пересекающиеся окна дают один слот
func resolveSlots(rules []*domain.AvailabilityRule, bookings []*domain.Booking) []types.TimeString {
	seen := make(map[int]struct{})
	for _, rule := range rules {
		for _, candidate := range rule.Candidates() {
			if isTaken(candidate, bookings) {
				continue
			}
			seen[candidate.Minutes()] = struct{}{}
		}
	}

	minutes := make([]int, 0, len(seen))
	for m := range seen {
		minutes = append(minutes, m)
	}
	sort.Ints(minutes)

	result := make([]types.TimeString, 0, len(minutes))
	for _, m := range minutes {
		ts, err := types.NewTimeStringFromMinutes(m)
		if err != nil {
			continue
		}
		result = append(result, ts)
	}
	return result
}

// isTaken проверяет, занят ли момент начала одним из бронирований
func isTaken(candidate types.TimeString, bookings []*domain.Booking) bool {
	for _, booking := range bookings {
		if !booking.IsActive() {
			continue
		}
		if booking.Covers(candidate) {
			return true
		}
	}
	return false
}

package bookings

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MedicalBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-MedicalBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-MedicalBooking/pkg/logger"
	"github.com/m04kA/SMC-MedicalBooking/pkg/ptr"
	"github.com/m04kA/SMC-MedicalBooking/pkg/types"
)

type memoryRepo struct {
	mu       sync.Mutex
	bookings map[int64]*domain.Booking
	locks    int
	filters  []domain.BookingFilter
}

func newMemoryRepo(bookings ...*domain.Booking) *memoryRepo {
	r := &memoryRepo{bookings: map[int64]*domain.Booking{}}
	for _, b := range bookings {
		r.bookings[b.ID] = b
	}
	return r
}

func (r *memoryRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
}

func (r *memoryRepo) List(_ context.Context, filter domain.BookingFilter) ([]*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.filters = append(r.filters, filter)
	result := make([]*domain.Booking, 0)
	for _, b := range r.bookings {
		if filter.PatientID != nil && b.PatientID != *filter.PatientID {
			continue
		}
		if filter.ProfessionalID != nil && b.ProfessionalID != *filter.ProfessionalID {
			continue
		}
		result = append(result, b)
	}
	return result, nil
}

func (r *memoryRepo) ListAll(_ context.Context) ([]*domain.Booking, error) {
	return r.List(context.Background(), domain.BookingFilter{IncludeCancelled: true})
}

func (r *memoryRepo) LockDay(_ context.Context, _ int64, _ time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.locks++
	return nil
}

func (r *memoryRepo) CountOverlapping(_ context.Context, professionalID int64, date time.Time, start, end types.TimeString, excludeID *int64) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	for _, b := range r.bookings {
		if excludeID != nil && b.ID == *excludeID {
			continue
		}
		if b.ProfessionalID == professionalID && b.Date.Equal(date) && b.IsActive() && b.Overlaps(start, end) {
			count++
		}
	}
	return count, nil
}

func (r *memoryRepo) HasUpcomingWithProfessional(_ context.Context, patientID, professionalID int64, fromDate time.Time, excludeID *int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.bookings {
		if excludeID != nil && b.ID == *excludeID {
			continue
		}
		if b.PatientID == patientID && b.ProfessionalID == professionalID && b.IsActive() && !b.Date.Before(fromDate) {
			return true, nil
		}
	}
	return false, nil
}

func (r *memoryRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus, notes *string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	b.Status = status
	if notes != nil {
		b.ProfessionalNotes = notes
	}
	if status == domain.StatusCancelled {
		b.CancelledAt = &at
	} else {
		b.CancelledAt = nil
	}
	return nil
}

func (r *memoryRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.bookings[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	delete(r.bookings, id)
	return nil
}

type passthroughTx struct{ calls int }

func (p *passthroughTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	p.calls++
	return fn(ctx)
}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

var (
	now    = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	monday = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	patient      = domain.Identity{UserID: 5, Role: domain.RolePatient}
	otherPatient = domain.Identity{UserID: 6, Role: domain.RolePatient}
	professional = domain.Identity{UserID: 9, Role: domain.RoleProfessional, ProfessionalID: ptr.Ptr(int64(1))}
	stranger     = domain.Identity{UserID: 10, Role: domain.RoleProfessional, ProfessionalID: ptr.Ptr(int64(2))}
)

func confirmed(id, patientID int64, start, end string) *domain.Booking {
	return &domain.Booking{
		ID:             id,
		PatientID:      patientID,
		ProfessionalID: 1,
		Date:           monday,
		StartTime:      types.TimeString(start),
		EndTime:        types.TimeString(end),
		Status:         domain.StatusConfirmed,
	}
}

func newService(repo *memoryRepo) *Service {
	svc := NewService(repo, &passthroughTx{}, logger.NewNop())
	svc.timeProvider = fixedClock{now: now}
	return svc
}

func TestUpdateStatus_PatientCancels(t *testing.T) {
	repo := newMemoryRepo(confirmed(1, 5, "09:00", "09:30"))

	b, err := newService(repo).UpdateStatus(context.Background(), patient, 1, "ANNULE", nil)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, b.Status)
	require.NotNil(t, b.CancelledAt)
	assert.Equal(t, now, *b.CancelledAt)
	assert.Equal(t, domain.StatusCancelled, repo.bookings[1].Status)
}

func TestUpdateStatus_ProfessionalCompletesWithNotes(t *testing.T) {
	repo := newMemoryRepo(confirmed(1, 5, "09:00", "09:30"))

	b, err := newService(repo).UpdateStatus(context.Background(), professional, 1, "termine", ptr.Ptr("RAS"))

	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, b.Status)
	assert.Equal(t, "RAS", *repo.bookings[1].ProfessionalNotes)
}

func TestUpdateStatus_Errors(t *testing.T) {
	cases := []struct {
		name   string
		caller domain.Identity
		id     int64
		status string
		notes  *string
		want   error
	}{
		{"unknown status", patient, 1, "pending", nil, domain.ErrValidation},
		{"missing booking", patient, 42, "annule", nil, ErrBookingNotFound},
		{"other patient", otherPatient, 1, "annule", nil, domain.ErrForbidden},
		{"other professional", stranger, 1, "annule", nil, ErrAccessDenied},
		{"patient writes notes", patient, 1, "annule", ptr.Ptr("x"), ErrNotesForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := newMemoryRepo(confirmed(1, 5, "09:00", "09:30"))

			_, err := newService(repo).UpdateStatus(context.Background(), tc.caller, tc.id, tc.status, tc.notes)

			assert.ErrorIs(t, err, tc.want)
			assert.Equal(t, domain.StatusConfirmed, repo.bookings[1].Status)
		})
	}
}

func TestUpdateStatus_RestoreChecksOverlap(t *testing.T) {
	cancelled := confirmed(1, 5, "09:00", "09:30")
	cancelled.Status = domain.StatusCancelled
	repo := newMemoryRepo(cancelled, confirmed(2, 6, "09:15", "09:45"))

	_, err := newService(repo).UpdateStatus(context.Background(), patient, 1, "confirme", nil)

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Equal(t, 1, repo.locks)
	assert.Equal(t, domain.StatusCancelled, repo.bookings[1].Status)
}

func TestUpdateStatus_RestoreFreeSlot(t *testing.T) {
	cancelled := confirmed(1, 5, "09:00", "09:30")
	cancelled.Status = domain.StatusCancelled
	repo := newMemoryRepo(cancelled, confirmed(2, 6, "09:30", "10:00"))

	b, err := newService(repo).UpdateStatus(context.Background(), professional, 1, "confirme", nil)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, b.Status)
	assert.Nil(t, b.CancelledAt)
}

func TestUpdateStatus_RestoreRejectsSecondLiveBooking(t *testing.T) {
	cancelled := confirmed(1, 5, "09:00", "09:30")
	cancelled.Status = domain.StatusCancelled
	repo := newMemoryRepo(cancelled, confirmed(2, 5, "11:00", "11:30"))

	_, err := newService(repo).UpdateStatus(context.Background(), patient, 1, "confirme", nil)

	assert.ErrorIs(t, err, ErrAlreadyBooked)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Equal(t, domain.StatusCancelled, repo.bookings[1].Status)

	live := 0
	for _, b := range repo.bookings {
		if b.PatientID == 5 && b.ProfessionalID == 1 && b.IsActive() {
			live++
		}
	}
	assert.Equal(t, 1, live)
}

func TestUpdateStatus_RestoreIgnoresPastBookingWithProfessional(t *testing.T) {
	cancelled := confirmed(1, 5, "09:00", "09:30")
	cancelled.Status = domain.StatusCancelled
	past := confirmed(2, 5, "11:00", "11:30")
	past.Date = now.AddDate(0, 0, -7)
	past.Status = domain.StatusCompleted
	repo := newMemoryRepo(cancelled, past)

	b, err := newService(repo).UpdateStatus(context.Background(), patient, 1, "confirme", nil)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, b.Status)
}

func TestUpdateStatus_LiveToLiveSkipsLock(t *testing.T) {
	repo := newMemoryRepo(confirmed(1, 5, "09:00", "09:30"))

	_, err := newService(repo).UpdateStatus(context.Background(), professional, 1, "no_show", nil)

	require.NoError(t, err)
	assert.Zero(t, repo.locks)
}

func TestGetProfessionalBookings(t *testing.T) {
	repo := newMemoryRepo(confirmed(1, 5, "09:00", "09:30"))
	svc := newService(repo)

	list, err := svc.GetProfessionalBookings(context.Background(), professional)
	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.True(t, repo.filters[0].IncludeCancelled)

	_, err = svc.GetProfessionalBookings(context.Background(), patient)
	assert.ErrorIs(t, err, ErrNotProfessional)
}

func TestGetPatientBookings(t *testing.T) {
	repo := newMemoryRepo(confirmed(1, 5, "09:00", "09:30"), confirmed(2, 6, "10:00", "10:30"))

	list, err := newService(repo).GetPatientBookings(context.Background(), patient)

	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, int64(1), list[0].ID)
}

func TestDelete(t *testing.T) {
	repo := newMemoryRepo(confirmed(1, 5, "09:00", "09:30"))
	svc := newService(repo)

	require.NoError(t, svc.Delete(context.Background(), 1))
	assert.True(t, errors.Is(svc.Delete(context.Background(), 1), ErrBookingNotFound))
}

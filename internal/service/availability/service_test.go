package availability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MedicalBooking/internal/domain"
	cabinetRepo "github.com/m04kA/SMC-MedicalBooking/internal/infra/storage/cabinet"
	ruleRepo "github.com/m04kA/SMC-MedicalBooking/internal/infra/storage/rule"
	"github.com/m04kA/SMC-MedicalBooking/internal/service/availability/models"
	"github.com/m04kA/SMC-MedicalBooking/pkg/logger"
	"github.com/m04kA/SMC-MedicalBooking/pkg/ptr"
	"github.com/m04kA/SMC-MedicalBooking/pkg/types"
)

type memoryRules struct {
	rules  map[int64]*domain.AvailabilityRule
	nextID int64
}

func (m *memoryRules) Create(_ context.Context, rule *domain.AvailabilityRule) (*domain.AvailabilityRule, error) {
	m.nextID++
	rule.ID = m.nextID
	m.rules[rule.ID] = rule
	return rule, nil
}

func (m *memoryRules) GetByID(_ context.Context, professionalID, id int64) (*domain.AvailabilityRule, error) {
	r, ok := m.rules[id]
	if !ok || r.ProfessionalID != professionalID {
		return nil, ruleRepo.ErrRuleNotFound
	}
	copied := *r
	return &copied, nil
}

func (m *memoryRules) List(_ context.Context, filter ruleRepo.Filter) ([]*domain.AvailabilityRule, error) {
	result := make([]*domain.AvailabilityRule, 0)
	for _, r := range m.rules {
		if r.ProfessionalID == filter.ProfessionalID {
			result = append(result, r)
		}
	}
	return result, nil
}

func (m *memoryRules) Update(_ context.Context, rule *domain.AvailabilityRule) (*domain.AvailabilityRule, error) {
	existing, ok := m.rules[rule.ID]
	if !ok || existing.ProfessionalID != rule.ProfessionalID {
		return nil, ruleRepo.ErrRuleNotFound
	}
	m.rules[rule.ID] = rule
	return rule, nil
}

func (m *memoryRules) Delete(_ context.Context, professionalID, id int64) error {
	r, ok := m.rules[id]
	if !ok || r.ProfessionalID != professionalID {
		return ruleRepo.ErrRuleNotFound
	}
	delete(m.rules, id)
	return nil
}

// fakeCabinets: кабинеты 10 и 20 существуют, специалист 1 привязан только к 10
type fakeCabinets struct{}

func (fakeCabinets) GetByID(_ context.Context, id int64) (*domain.Cabinet, error) {
	if id != 10 && id != 20 {
		return nil, cabinetRepo.ErrCabinetNotFound
	}
	return &domain.Cabinet{ID: id}, nil
}

func (fakeCabinets) IsAffiliated(_ context.Context, professionalID, cabinetID int64) (bool, error) {
	return professionalID == 1 && cabinetID == 10, nil
}

var (
	owner   = domain.Identity{UserID: 9, Role: domain.RoleProfessional, ProfessionalID: ptr.Ptr(int64(1))}
	other   = domain.Identity{UserID: 8, Role: domain.RoleProfessional, ProfessionalID: ptr.Ptr(int64(2))}
	patient = domain.Identity{UserID: 5, Role: domain.RolePatient}
)

func newService() (*Service, *memoryRules) {
	rules := &memoryRules{rules: map[int64]*domain.AvailabilityRule{}}
	return NewService(rules, fakeCabinets{}, logger.NewNop()), rules
}

func createReq() *models.CreateRuleRequest {
	return &models.CreateRuleRequest{CabinetID: 10, Weekday: 0, StartTime: "09:00", EndTime: "12:00"}
}

func TestCreate(t *testing.T) {
	svc, rules := newService()

	rule, err := svc.Create(context.Background(), owner, createReq())

	require.NoError(t, err)
	assert.Equal(t, int64(1), rule.ProfessionalID)
	assert.Equal(t, domain.DefaultSlotMinutes, rule.SlotMinutes)
	assert.Len(t, rules.rules, 1)
}

func TestCreate_Validation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(r *models.CreateRuleRequest)
		want   error
	}{
		{"weekday out of range", func(r *models.CreateRuleRequest) { r.Weekday = 7 }, domain.ErrValidation},
		{"start after end", func(r *models.CreateRuleRequest) { r.StartTime = "13:00" }, domain.ErrValidation},
		{"slot too short", func(r *models.CreateRuleRequest) { r.SlotMinutes = ptr.Ptr(4) }, domain.ErrValidation},
		{"unknown cabinet", func(r *models.CreateRuleRequest) { r.CabinetID = 99 }, ErrCabinetNotFound},
		{"foreign cabinet", func(r *models.CreateRuleRequest) { r.CabinetID = 20 }, ErrCabinetNotAffiliated},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, rules := newService()
			req := createReq()
			tc.mutate(req)

			_, err := svc.Create(context.Background(), owner, req)

			assert.ErrorIs(t, err, tc.want)
			assert.Empty(t, rules.rules)
		})
	}
}

func TestNonProfessionalIsForbidden(t *testing.T) {
	svc, _ := newService()

	_, err := svc.Create(context.Background(), patient, createReq())
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = svc.List(context.Background(), patient)
	assert.ErrorIs(t, err, ErrNotProfessional)
}

func TestUpdate_Partial(t *testing.T) {
	svc, _ := newService()
	created, err := svc.Create(context.Background(), owner, createReq())
	require.NoError(t, err)

	end := types.TimeString("11:00")
	updated, err := svc.Update(context.Background(), owner, created.ID, &models.UpdateRuleRequest{EndTime: &end, SlotMinutes: ptr.Ptr(20)})

	require.NoError(t, err)
	assert.Equal(t, types.TimeString("09:00"), updated.StartTime)
	assert.Equal(t, end, updated.EndTime)
	assert.Equal(t, 20, updated.SlotMinutes)
}

func TestForeignRuleIsNotFound(t *testing.T) {
	svc, rules := newService()
	created, err := svc.Create(context.Background(), owner, createReq())
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), other, created.ID, &models.UpdateRuleRequest{Weekday: ptr.Ptr(2)})
	assert.ErrorIs(t, err, ErrRuleNotFound)

	err = svc.Delete(context.Background(), other, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Len(t, rules.rules, 1)

	require.NoError(t, svc.Delete(context.Background(), owner, created.ID))
	assert.Empty(t, rules.rules)
}

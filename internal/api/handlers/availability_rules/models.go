package availability_rules

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-MedicalBooking/internal/service/availability/models"
	"github.com/m04kA/SMC-MedicalBooking/pkg/types"
)

var errBadTime = errors.New("invalid time format")

// CreateRuleRequest тело POST /professionnel/disponibilites/
type CreateRuleRequest struct {
	CabinetID   int64  `json:"cabinet_id"`
	Weekday     int    `json:"jour_semaine"`
	StartTime   string `json:"heure_debut"`
	EndTime     string `json:"heure_fin"`
	SlotMinutes *int   `json:"duree_creneau,omitempty"`
}

func (r *CreateRuleRequest) ToServiceRequest() (*models.CreateRuleRequest, error) {
	start, err := parseTime(r.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := parseTime(r.EndTime)
	if err != nil {
		return nil, err
	}
	return &models.CreateRuleRequest{
		CabinetID:   r.CabinetID,
		Weekday:     r.Weekday,
		StartTime:   start,
		EndTime:     end,
		SlotMinutes: r.SlotMinutes,
	}, nil
}

// UpdateRuleRequest тело PUT, отсутствующие поля не меняются
type UpdateRuleRequest struct {
	CabinetID   *int64  `json:"cabinet_id,omitempty"`
	Weekday     *int    `json:"jour_semaine,omitempty"`
	StartTime   *string `json:"heure_debut,omitempty"`
	EndTime     *string `json:"heure_fin,omitempty"`
	SlotMinutes *int    `json:"duree_creneau,omitempty"`
}

func (r *UpdateRuleRequest) ToServiceRequest() (*models.UpdateRuleRequest, error) {
	result := &models.UpdateRuleRequest{
		CabinetID:   r.CabinetID,
		Weekday:     r.Weekday,
		SlotMinutes: r.SlotMinutes,
	}
	if r.StartTime != nil {
		start, err := parseTime(*r.StartTime)
		if err != nil {
			return nil, err
		}
		result.StartTime = &start
	}
	if r.EndTime != nil {
		end, err := parseTime(*r.EndTime)
		if err != nil {
			return nil, err
		}
		result.EndTime = &end
	}
	return result, nil
}

func parseTime(raw string) (types.TimeString, error) {
	t, err := types.NewTimeStringFromString(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errBadTime, err)
	}
	return t, nil
}

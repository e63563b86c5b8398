package professional_profile

import "github.com/m04kA/SMC-MedicalBooking/internal/service/professionals/models"

// UpdateProfileRequest поля профиля, доступные самому специалисту
type UpdateProfileRequest struct {
	Phone           *string  `json:"telephone,omitempty"`
	Bio             *string  `json:"bio,omitempty"`
	PhotoURL        *string  `json:"photo_url,omitempty"`
	ConsultationFee *float64 `json:"tarif_consultation,omitempty"`
	AcceptsRemote   *bool    `json:"accepte_teleconsultation,omitempty"`
}

func (r *UpdateProfileRequest) ToServiceModel() *models.ProfileUpdate {
	return &models.ProfileUpdate{
		Phone:           r.Phone,
		Bio:             r.Bio,
		PhotoURL:        r.PhotoURL,
		ConsultationFee: r.ConsultationFee,
		AcceptsRemote:   r.AcceptsRemote,
	}
}

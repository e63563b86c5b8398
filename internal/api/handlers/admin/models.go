package admin

import (
	"github.com/m04kA/SMC-MedicalBooking/internal/domain"
	"github.com/m04kA/SMC-MedicalBooking/internal/service/professionals/models"
)

// ValidationRequest тело PUT /admin/professionnels/{id}/validation/
type ValidationRequest struct {
	Status string `json:"statut_validation"`
}

// ProfessionalRequest тело создания и частичного обновления специалиста
type ProfessionalRequest struct {
	UserID          *int64   `json:"user_id,omitempty"`
	LastName        *string  `json:"nom,omitempty"`
	FirstName       *string  `json:"prenom,omitempty"`
	Email           *string  `json:"email,omitempty"`
	Phone           *string  `json:"telephone,omitempty"`
	RPPS            *string  `json:"numero_rpps,omitempty"`
	SpecialtyID     *int64   `json:"specialite_id,omitempty"`
	Bio             *string  `json:"bio,omitempty"`
	PhotoURL        *string  `json:"photo_url,omitempty"`
	ConsultationFee *float64 `json:"tarif_consultation,omitempty"`
	AcceptsRemote   *bool    `json:"accepte_teleconsultation,omitempty"`
}

// ToDomain новый специалист, незаданный тариф берётся по умолчанию
func (r *ProfessionalRequest) ToDomain() *domain.Professional {
	pro := &domain.Professional{ConsultationFee: domain.DefaultConsultationFee}
	if r.RPPS != nil {
		pro.RPPS = *r.RPPS
	}
	r.ToAdminUpdate().Apply(pro)
	return pro
}

func (r *ProfessionalRequest) ToAdminUpdate() *models.AdminUpdate {
	return &models.AdminUpdate{
		ProfileUpdate: models.ProfileUpdate{
			Phone:           r.Phone,
			Bio:             r.Bio,
			PhotoURL:        r.PhotoURL,
			ConsultationFee: r.ConsultationFee,
			AcceptsRemote:   r.AcceptsRemote,
		},
		UserID:      r.UserID,
		LastName:    r.LastName,
		FirstName:   r.FirstName,
		Email:       r.Email,
		SpecialtyID: r.SpecialtyID,
	}
}

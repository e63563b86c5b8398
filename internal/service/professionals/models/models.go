package models

import "github.com/m04kA/SMC-MedicalBooking/internal/domain"

// ProfileUpdate поля, которые специалист меняет сам
type ProfileUpdate struct {
	Phone           *string
	Bio             *string
	PhotoURL        *string
	ConsultationFee *float64
	AcceptsRemote   *bool
}

// Apply накладывает изменения на профиль
func (u *ProfileUpdate) Apply(p *domain.Professional) {
	if u.Phone != nil {
		p.Phone = u.Phone
	}
	if u.Bio != nil {
		p.Bio = u.Bio
	}
	if u.PhotoURL != nil {
		p.PhotoURL = u.PhotoURL
	}
	if u.ConsultationFee != nil {
		p.ConsultationFee = *u.ConsultationFee
	}
	if u.AcceptsRemote != nil {
		p.AcceptsRemote = *u.AcceptsRemote
	}
}

// AdminUpdate частичное обновление специалиста администратором
type AdminUpdate struct {
	ProfileUpdate
	UserID      *int64
	LastName    *string
	FirstName   *string
	Email       *string
	SpecialtyID *int64
}

// Apply накладывает изменения на профиль
func (u *AdminUpdate) Apply(p *domain.Professional) {
	u.ProfileUpdate.Apply(p)
	if u.UserID != nil {
		p.UserID = u.UserID
	}
	if u.LastName != nil {
		p.LastName = *u.LastName
	}
	if u.FirstName != nil {
		p.FirstName = *u.FirstName
	}
	if u.Email != nil {
		p.Email = *u.Email
	}
	if u.SpecialtyID != nil {
		p.SpecialtyID = *u.SpecialtyID
	}
}

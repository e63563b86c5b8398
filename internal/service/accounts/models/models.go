package models

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-MedicalBooking/internal/domain"
)

// RegisterRequest данные регистрации
type RegisterRequest struct {
	Username    string
	Email       string
	Password    string
	FirstName   string
	LastName    string
	AccountType string // patient, professionnel
	SpecialtyID *int64 // для автосоздания профиля специалиста
	Profile     ProfileUpdate
}

// ToDomainUser пользователь без хеша пароля
func (r *RegisterRequest) ToDomainUser(role domain.Role) *domain.User {
	u := &domain.User{
		Username:  strings.TrimSpace(r.Username),
		Email:     strings.TrimSpace(r.Email),
		FirstName: strings.TrimSpace(r.FirstName),
		LastName:  strings.TrimSpace(r.LastName),
		Role:      role,
	}
	r.Profile.Apply(u)
	return u
}

// ProfileUpdate частичное обновление профиля: nil поля не меняются
type ProfileUpdate struct {
	Email                  *string
	FirstName              *string
	LastName               *string
	BirthDate              *time.Time
	Sex                    *string
	Phone                  *string
	EmergencyPhone         *string
	Address                *string
	City                   *string
	PostalCode             *string
	Country                *string
	SocialSecurityNumber   *string
	NotificationPreference *string
}

// Apply накладывает изменения на пользователя
func (p *ProfileUpdate) Apply(u *domain.User) {
	if p.Email != nil {
		u.Email = strings.TrimSpace(*p.Email)
	}
	if p.FirstName != nil {
		u.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		u.LastName = *p.LastName
	}
	if p.BirthDate != nil {
		u.BirthDate = p.BirthDate
	}
	if p.Sex != nil {
		u.Sex = p.Sex
	}
	if p.Phone != nil {
		u.Phone = p.Phone
	}
	if p.EmergencyPhone != nil {
		u.EmergencyPhone = p.EmergencyPhone
	}
	if p.Address != nil {
		u.Address = p.Address
	}
	if p.City != nil {
		u.City = p.City
	}
	if p.PostalCode != nil {
		u.PostalCode = p.PostalCode
	}
	if p.Country != nil {
		u.Country = *p.Country
	}
	if p.SocialSecurityNumber != nil {
		u.SocialSecurityNumber = p.SocialSecurityNumber
	}
	if p.NotificationPreference != nil {
		u.NotificationPreference = *p.NotificationPreference
	}
}

// LoginResult пользователь и выпущенная сессия
type LoginResult struct {
	User      *domain.User
	Identity  domain.Identity
	Token     string
	ExpiresAt time.Time
}

package accounts

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-MedicalBooking/internal/api/handlers"
	"github.com/m04kA/SMC-MedicalBooking/internal/service/accounts/models"
)

var errBadBirthDate = errors.New("invalid birth date")

// ProfileFields поля профиля, общие для регистрации и обновления
type ProfileFields struct {
	BirthDate              *string `json:"date_naissance,omitempty"`
	Sex                    *string `json:"sexe,omitempty"`
	Phone                  *string `json:"telephone,omitempty"`
	EmergencyPhone         *string `json:"telephone_urgence,omitempty"`
	Address                *string `json:"adresse_complete,omitempty"`
	City                   *string `json:"ville,omitempty"`
	PostalCode             *string `json:"code_postal,omitempty"`
	Country                *string `json:"pays,omitempty"`
	SocialSecurityNumber   *string `json:"numero_securite_sociale,omitempty"`
	NotificationPreference *string `json:"preference_notification,omitempty"`
}

func (p *ProfileFields) toServiceModel() (models.ProfileUpdate, error) {
	update := models.ProfileUpdate{
		Sex:                    p.Sex,
		Phone:                  p.Phone,
		EmergencyPhone:         p.EmergencyPhone,
		Address:                p.Address,
		City:                   p.City,
		PostalCode:             p.PostalCode,
		Country:                p.Country,
		SocialSecurityNumber:   p.SocialSecurityNumber,
		NotificationPreference: p.NotificationPreference,
	}
	if p.BirthDate != nil && strings.TrimSpace(*p.BirthDate) != "" {
		date, err := handlers.ParseDate(*p.BirthDate)
		if err != nil {
			return update, fmt.Errorf("%w: %v", errBadBirthDate, err)
		}
		update.BirthDate = &date
	}
	return update, nil
}

// RegisterRequest тело POST /register/
type RegisterRequest struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	AccountType string `json:"type_compte"`
	SpecialtyID *int64 `json:"specialite_id,omitempty"`
	ProfileFields
}

func (r *RegisterRequest) ToServiceRequest() (*models.RegisterRequest, error) {
	profile, err := r.ProfileFields.toServiceModel()
	if err != nil {
		return nil, err
	}
	return &models.RegisterRequest{
		Username:    r.Username,
		Email:       r.Email,
		Password:    r.Password,
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		AccountType: r.AccountType,
		SpecialtyID: r.SpecialtyID,
		Profile:     profile,
	}, nil
}

// LoginRequest тело POST /login/: email или username
type LoginRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login идентификатор для входа, email в приоритете
func (r *LoginRequest) Login() string {
	if strings.TrimSpace(r.Email) != "" {
		return strings.TrimSpace(r.Email)
	}
	return strings.TrimSpace(r.Username)
}

// LoginResponse выпущенная сессия
type LoginResponse struct {
	Token     string                `json:"token"`
	ExpiresAt time.Time             `json:"expires_at"`
	User      handlers.UserResponse `json:"user"`
}

// UpdateProfileRequest тело PUT /user/profile/
type UpdateProfileRequest struct {
	Email     *string `json:"email,omitempty"`
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	ProfileFields
}

func (r *UpdateProfileRequest) ToServiceModel() (*models.ProfileUpdate, error) {
	update, err := r.ProfileFields.toServiceModel()
	if err != nil {
		return nil, err
	}
	update.Email = r.Email
	update.FirstName = r.FirstName
	update.LastName = r.LastName
	return &update, nil
}

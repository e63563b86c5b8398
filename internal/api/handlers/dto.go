package handlers

import (
	"time"

	"github.com/m04kA/SMC-MedicalBooking/internal/domain"
)

// BookingResponse бронирование в ответе API
type BookingResponse struct {
	ID                int64      `json:"id"`
	PatientID         int64      `json:"patient_id"`
	ProfessionalID    int64      `json:"professionnel_id"`
	CabinetID         int64      `json:"cabinet_id"`
	ReasonID          *int64     `json:"motif_consultation_id,omitempty"`
	Date              string     `json:"date"`
	StartTime         string     `json:"heure_debut"`
	EndTime           string     `json:"heure_fin"`
	Status            string     `json:"statut"`
	Mode              string     `json:"mode"`
	PatientNotes      *string    `json:"notes_patient,omitempty"`
	ProfessionalNotes *string    `json:"notes_professionnel,omitempty"`
	ReminderSent      bool       `json:"rappel_envoye"`
	CreatedAt         time.Time  `json:"date_creation"`
	UpdatedAt         time.Time  `json:"date_modification"`
	CancelledAt       *time.Time `json:"date_annulation,omitempty"`
}

func FromBooking(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:                b.ID,
		PatientID:         b.PatientID,
		ProfessionalID:    b.ProfessionalID,
		CabinetID:         b.CabinetID,
		ReasonID:          b.ReasonID,
		Date:              b.Date.Format(domain.DateFormat),
		StartTime:         b.StartTime.String(),
		EndTime:           b.EndTime.String(),
		Status:            string(b.Status),
		Mode:              string(b.Mode),
		PatientNotes:      b.PatientNotes,
		ProfessionalNotes: b.ProfessionalNotes,
		ReminderSent:      b.ReminderSent,
		CreatedAt:         b.CreatedAt,
		UpdatedAt:         b.UpdatedAt,
		CancelledAt:       b.CancelledAt,
	}
}

func FromBookings(list []*domain.Booking) []BookingResponse {
	result := make([]BookingResponse, 0, len(list))
	for _, b := range list {
		result = append(result, FromBooking(b))
	}
	return result
}

// CabinetResponse кабинет в ответе API
type CabinetResponse struct {
	ID         int64    `json:"id"`
	Name       string   `json:"nom"`
	Address    string   `json:"adresse"`
	City       string   `json:"ville"`
	PostalCode string   `json:"code_postal"`
	Phone      *string  `json:"telephone"`
	Latitude   *float64 `json:"latitude"`
	Longitude  *float64 `json:"longitude"`
}

// CabinetRequest тело создания и обновления кабинета
type CabinetRequest struct {
	Name       string   `json:"nom"`
	Address    string   `json:"adresse"`
	City       string   `json:"ville"`
	PostalCode string   `json:"code_postal"`
	Phone      *string  `json:"telephone"`
	Latitude   *float64 `json:"latitude"`
	Longitude  *float64 `json:"longitude"`
}

func (c *CabinetRequest) ToDomain(id int64) *domain.Cabinet {
	return &domain.Cabinet{
		ID:         id,
		Name:       c.Name,
		Address:    c.Address,
		City:       c.City,
		PostalCode: c.PostalCode,
		Phone:      c.Phone,
		Latitude:   c.Latitude,
		Longitude:  c.Longitude,
	}
}

func FromCabinet(c domain.Cabinet) CabinetResponse {
	return CabinetResponse{
		ID:         c.ID,
		Name:       c.Name,
		Address:    c.Address,
		City:       c.City,
		PostalCode: c.PostalCode,
		Phone:      c.Phone,
		Latitude:   c.Latitude,
		Longitude:  c.Longitude,
	}
}

func FromCabinets(list []*domain.Cabinet) []CabinetResponse {
	result := make([]CabinetResponse, 0, len(list))
	for _, c := range list {
		result = append(result, FromCabinet(*c))
	}
	return result
}

// SpecialtyResponse специальность в ответе API
type SpecialtyResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"nom"`
	Description *string `json:"description"`
	Icon        *string `json:"icone"`
}

func FromSpecialties(list []*domain.Specialty) []SpecialtyResponse {
	result := make([]SpecialtyResponse, 0, len(list))
	for _, s := range list {
		result = append(result, SpecialtyResponse{ID: s.ID, Name: s.Name, Description: s.Description, Icon: s.Icon})
	}
	return result
}

// SpecialtyRef краткая ссылка на специальность
type SpecialtyRef struct {
	ID   int64  `json:"id"`
	Name string `json:"nom,omitempty"`
}

// ProfessionalResponse специалист в ответе API
type ProfessionalResponse struct {
	ID               int64             `json:"id"`
	UserID           *int64            `json:"user_id,omitempty"`
	LastName         string            `json:"nom"`
	FirstName        string            `json:"prenom"`
	Email            string            `json:"email"`
	Phone            *string           `json:"telephone"`
	RPPS             string            `json:"numero_rpps"`
	Specialty        SpecialtyRef      `json:"specialite"`
	Bio              *string           `json:"bio"`
	PhotoURL         *string           `json:"photo_url"`
	ConsultationFee  float64           `json:"tarif_consultation"`
	AcceptsRemote    bool              `json:"accepte_teleconsultation"`
	ValidationStatus string            `json:"statut_validation"`
	ValidatedAt      *time.Time        `json:"date_validation,omitempty"`
	RegisteredAt     time.Time         `json:"date_inscription"`
	Cabinets         []CabinetResponse `json:"cabinets,omitempty"`
}

func FromProfessional(p *domain.Professional) ProfessionalResponse {
	resp := ProfessionalResponse{
		ID:               p.ID,
		UserID:           p.UserID,
		LastName:         p.LastName,
		FirstName:        p.FirstName,
		Email:            p.Email,
		Phone:            p.Phone,
		RPPS:             p.RPPS,
		Specialty:        SpecialtyRef{ID: p.SpecialtyID, Name: p.SpecialtyName},
		Bio:              p.Bio,
		PhotoURL:         p.PhotoURL,
		ConsultationFee:  p.ConsultationFee,
		AcceptsRemote:    p.AcceptsRemote,
		ValidationStatus: string(p.ValidationStatus),
		ValidatedAt:      p.ValidatedAt,
		RegisteredAt:     p.RegisteredAt,
	}
	if p.Cabinets != nil {
		resp.Cabinets = make([]CabinetResponse, 0, len(p.Cabinets))
		for _, c := range p.Cabinets {
			resp.Cabinets = append(resp.Cabinets, FromCabinet(c))
		}
	}
	return resp
}

func FromProfessionals(list []*domain.Professional) []ProfessionalResponse {
	result := make([]ProfessionalResponse, 0, len(list))
	for _, p := range list {
		result = append(result, FromProfessional(p))
	}
	return result
}

// RuleResponse правило доступности в ответе API
type RuleResponse struct {
	ID             int64  `json:"id"`
	ProfessionalID int64  `json:"professionnel"`
	CabinetID      int64  `json:"cabinet_id"`
	Weekday        int    `json:"jour_semaine"`
	StartTime      string `json:"heure_debut"`
	EndTime        string `json:"heure_fin"`
	SlotMinutes    int    `json:"duree_creneau"`
}

func FromRule(r *domain.AvailabilityRule) RuleResponse {
	return RuleResponse{
		ID:             r.ID,
		ProfessionalID: r.ProfessionalID,
		CabinetID:      r.CabinetID,
		Weekday:        r.Weekday,
		StartTime:      r.StartTime.String(),
		EndTime:        r.EndTime.String(),
		SlotMinutes:    r.SlotMinutes,
	}
}

func FromRules(list []*domain.AvailabilityRule) []RuleResponse {
	result := make([]RuleResponse, 0, len(list))
	for _, r := range list {
		result = append(result, FromRule(r))
	}
	return result
}

// UserResponse учётная запись в ответе API, без хеша пароля
type UserResponse struct {
	ID                     int64      `json:"id"`
	Username               string     `json:"username"`
	Email                  string     `json:"email"`
	FirstName              string     `json:"first_name"`
	LastName               string     `json:"last_name"`
	AccountType            string     `json:"type_compte"`
	IsAdmin                bool       `json:"is_admin"`
	BirthDate              *string    `json:"date_naissance"`
	Sex                    *string    `json:"sexe"`
	Phone                  *string    `json:"telephone"`
	EmergencyPhone         *string    `json:"telephone_urgence"`
	Address                *string    `json:"adresse_complete"`
	City                   *string    `json:"ville"`
	PostalCode             *string    `json:"code_postal"`
	Country                string     `json:"pays"`
	SocialSecurityNumber   *string    `json:"numero_securite_sociale"`
	NotificationPreference string     `json:"preference_notification"`
	Status                 string     `json:"statut"`
	RegisteredAt           time.Time  `json:"date_inscription"`
	LastLoginAt            *time.Time `json:"derniere_connexion"`
}

func FromUser(u *domain.User) UserResponse {
	resp := UserResponse{
		ID:                     u.ID,
		Username:               u.Username,
		Email:                  u.Email,
		FirstName:              u.FirstName,
		LastName:               u.LastName,
		AccountType:            string(u.Role),
		IsAdmin:                u.IsAdmin(),
		Sex:                    u.Sex,
		Phone:                  u.Phone,
		EmergencyPhone:         u.EmergencyPhone,
		Address:                u.Address,
		City:                   u.City,
		PostalCode:             u.PostalCode,
		Country:                u.Country,
		SocialSecurityNumber:   u.SocialSecurityNumber,
		NotificationPreference: u.NotificationPreference,
		Status:                 string(u.Status),
		RegisteredAt:           u.RegisteredAt,
		LastLoginAt:            u.LastLoginAt,
	}
	if u.BirthDate != nil {
		d := u.BirthDate.Format(domain.DateFormat)
		resp.BirthDate = &d
	}
	return resp
}

func FromUsers(list []*domain.User) []UserResponse {
	result := make([]UserResponse, 0, len(list))
	for _, u := range list {
		result = append(result, FromUser(u))
	}
	return result
}

// ReasonResponse мотив консультации в ответе API
type ReasonResponse struct {
	ID              int64   `json:"id"`
	SpecialtyID     int64   `json:"specialite_id"`
	Label           string  `json:"libelle"`
	DurationMinutes int     `json:"duree_estimee"`
	Fee             float64 `json:"tarif"`
}

func FromReasons(list []*domain.ConsultationReason) []ReasonResponse {
	result := make([]ReasonResponse, 0, len(list))
	for _, r := range list {
		result = append(result, ReasonResponse{
			ID:              r.ID,
			SpecialtyID:     r.SpecialtyID,
			Label:           r.Label,
			DurationMinutes: r.DurationMinutes,
			Fee:             r.Fee,
		})
	}
	return result
}

package domain

import (
	"fmt"
	"strings"
	"time"
)

// AccountStatus state of a user account
type AccountStatus string

const (
	AccountActive    AccountStatus = "actif"
	AccountInactive  AccountStatus = "inactif"
	AccountSuspended AccountStatus = "suspendu"
)

// User account
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	Role         Role

	BirthDate              *time.Time
	Sex                    *string // M, F, A
	Phone                  *string
	EmergencyPhone         *string
	Address                *string
	City                   *string
	PostalCode             *string
	Country                string
	SocialSecurityNumber   *string
	NotificationPreference string // email, sms, les_deux, aucune
	Status                 AccountStatus

	RegisteredAt time.Time
	LastLoginAt  *time.Time
}

// IsAdmin true for administrator accounts
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

var (
	allowedSex           = []string{"M", "F", "A"}
	allowedNotifications = []string{"email", "sms", "les_deux", "aucune"}
)

// ValidateProfile checks enumerated profile fields
func (u *User) ValidateProfile() error {
	if u.Sex != nil && *u.Sex != "" && !contains(allowedSex, *u.Sex) {
		return fmt.Errorf("%w: sexe must be one of %s", ErrValidation, strings.Join(allowedSex, ", "))
	}
	if u.NotificationPreference != "" && !contains(allowedNotifications, u.NotificationPreference) {
		return fmt.Errorf("%w: preference_notification must be one of %s",
			ErrValidation, strings.Join(allowedNotifications, ", "))
	}
	return nil
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

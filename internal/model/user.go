// Package model contains the record types mirrored from the Opportune
// backend's JSON responses, plus the request payloads this app sends to it.
package model

import "time"

const (
	// RoleUser is a job seeker account
	RoleUser = "USER"
	// RoleHR is a company recruiter account
	RoleHR = "HR"
	// RoleAdmin is an administrator account
	RoleAdmin = "ADMIN"
)

// User mirrors the backend user record. The backend owns every field; this
// app only caches it for the lifetime of a browser session.
type User struct {
	ID          int64     `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Phone       string    `json:"phoneNumber"`
	Role        string    `json:"role"`
	CompanyName string    `json:"companyName"`
	Enabled     bool      `json:"enabled"`
	CreatedAt   time.Time `json:"createdAt"`
}

// FullName joins first and last name, falling back to the username.
func (u User) FullName() string {
	switch {
	case u.FirstName == "" && u.LastName == "":
		return u.Username
	case u.LastName == "":
		return u.FirstName
	case u.FirstName == "":
		return u.LastName
	}
	return u.FirstName + " " + u.LastName
}

// AuthResponse is the payload of a successful login or register call.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// RegisterRequest is the self-registration payload.
type RegisterRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phoneNumber,omitempty"`
}

// ProfileUpdate carries the editable profile fields.
type ProfileUpdate struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phoneNumber"`
}

// PasswordChange carries a password-change request.
type PasswordChange struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// EmailPreferences mirrors the backend notification settings.
type EmailPreferences struct {
	ApplicationUpdates bool `json:"applicationUpdates"`
	JobRecommendations bool `json:"jobRecommendations"`
	Newsletter         bool `json:"newsletter"`
}

package models

import (
	"strings"
	"time"
)

// Role is an account role as defined by the remote API
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleStaff    Role = "staff"
	RoleCashier  Role = "cashier"
	RoleCustomer Role = "customer"
)

// Valid reports whether r is one of the known roles
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleStaff, RoleCashier, RoleCustomer:
		return true
	}
	return false
}

// SexAtBirth is the sex_at_birth field on an account
type SexAtBirth string

const (
	SexMale   SexAtBirth = "male"
	SexFemale SexAtBirth = "female"
)

// Account represents a user/account record held by the remote API
type Account struct {
	ID            uint       `json:"id" example:"12"`
	Username      string     `json:"username" example:"jdelacruz"`
	Email         string     `json:"email,omitempty" example:"juan@example.com"`
	FirstName     string     `json:"first_name" example:"Juan"`
	MiddleName    string     `json:"middle_name,omitempty" example:"Santos"`
	LastName      string     `json:"last_name" example:"Dela Cruz"`
	Role          Role       `json:"role" example:"customer"`
	ContactNumber string     `json:"contact_number" example:"+639171234567"`
	SexAtBirth    SexAtBirth `json:"sex_at_birth" example:"male"`
	CreatedAt     *time.Time `json:"created_at,omitempty"`
}

// FullName joins the non-empty name parts
func (a Account) FullName() string {
	return JoinName(a.FirstName, a.MiddleName, a.LastName)
}

// AccountInput is the step-one payload of the account wizard
type AccountInput struct {
	Username      string     `json:"username" validate:"required"`
	Password      string     `json:"password,omitempty"`
	Email         string     `json:"email,omitempty" validate:"omitempty,dotcom_email"`
	FirstName     string     `json:"first_name" validate:"required"`
	MiddleName    string     `json:"middle_name,omitempty"`
	LastName      string     `json:"last_name" validate:"required"`
	Role          Role       `json:"role" validate:"required,oneof=admin staff cashier customer"`
	ContactNumber string     `json:"contact_number" validate:"required,ph_mobile"`
	SexAtBirth    SexAtBirth `json:"sex_at_birth" validate:"required,oneof=male female"`
}

// CustomerProfile holds the customer-only details captured in wizard step two
type CustomerProfile struct {
	ID                     uint   `json:"id,omitempty"`
	UserID                 uint   `json:"user_id,omitempty"`
	Street                 string `json:"street" validate:"required"`
	Barangay               string `json:"barangay" validate:"required"`
	City                   string `json:"city" validate:"required"`
	Province               string `json:"province" validate:"required"`
	ZipCode                string `json:"zip_code" validate:"required"`
	EmergencyContactName   string `json:"emergency_contact_name" validate:"required"`
	EmergencyContactNumber string `json:"emergency_contact_number" validate:"required,ph_mobile"`
	Occupation             string `json:"occupation" validate:"required"`
	MonthlyIncome          string `json:"monthly_income" validate:"required"`
	SourceOfFunds          string `json:"source_of_funds" validate:"required"`
	Notes                  string `json:"notes,omitempty"`
}

// AccountWizardRequest is the combined submit of both wizard steps
type AccountWizardRequest struct {
	Account AccountInput     `json:"account"`
	Profile *CustomerProfile `json:"profile,omitempty"`
}

// LoginRequest is forwarded to the remote API as-is
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse is the remote API's answer to a login
type LoginResponse struct {
	Token string  `json:"token"`
	User  Account `json:"user"`
}

// JoinName joins first/middle/last into the stored full-name form
func JoinName(first, middle, last string) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{first, middle, last} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

// SplitName splits a stored full name back into first/middle/last for editing.
// The first word is the first name, the last word the last name, and anything
// between is the middle name.
func SplitName(full string) (first, middle, last string) {
	fields := strings.Fields(full)
	switch len(fields) {
	case 0:
		return "", "", ""
	case 1:
		return fields[0], "", ""
	case 2:
		return fields[0], "", fields[1]
	}
	return fields[0], strings.Join(fields[1:len(fields)-1], " "), fields[len(fields)-1]
}

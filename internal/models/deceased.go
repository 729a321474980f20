package models

import "time"

// DeceasedRecord is an interment record. The name is stored as one string.
type DeceasedRecord struct {
	ID           uint       `json:"id" example:"88"`
	FullName     string     `json:"full_name" example:"Maria Clara Reyes"`
	DateOfBirth  *time.Time `json:"date_of_birth,omitempty"`
	DateOfDeath  *time.Time `json:"date_of_death,omitempty"`
	BurialDate   *time.Time `json:"burial_date,omitempty"`
	CustomerID   uint       `json:"customer_id" example:"12"`
	LotID        uint       `json:"lot_id" example:"301"`
	CauseOfDeath string     `json:"cause_of_death,omitempty"`
	FuneralHome  string     `json:"funeral_home,omitempty"`
	Notes        string     `json:"notes,omitempty"`
	LotLabel     string     `json:"lot_label,omitempty"`
}

// DeceasedInput is the edit form: the name arrives split and is joined on save
type DeceasedInput struct {
	FirstName    string     `json:"first_name" validate:"required"`
	MiddleName   string     `json:"middle_name,omitempty"`
	LastName     string     `json:"last_name" validate:"required"`
	DateOfBirth  *time.Time `json:"date_of_birth,omitempty"`
	DateOfDeath  *time.Time `json:"date_of_death" validate:"required"`
	BurialDate   *time.Time `json:"burial_date,omitempty"`
	CustomerID   uint       `json:"customer_id" validate:"required"`
	LotID        uint       `json:"lot_id" validate:"required"`
	CauseOfDeath string     `json:"cause_of_death,omitempty"`
	FuneralHome  string     `json:"funeral_home,omitempty"`
	Notes        string     `json:"notes,omitempty"`
}

// Record converts the edit form into the stored shape
func (in DeceasedInput) Record() DeceasedRecord {
	return DeceasedRecord{
		FullName:     JoinName(in.FirstName, in.MiddleName, in.LastName),
		DateOfBirth:  in.DateOfBirth,
		DateOfDeath:  in.DateOfDeath,
		BurialDate:   in.BurialDate,
		CustomerID:   in.CustomerID,
		LotID:        in.LotID,
		CauseOfDeath: in.CauseOfDeath,
		FuneralHome:  in.FuneralHome,
		Notes:        in.Notes,
	}
}

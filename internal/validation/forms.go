package validation

import (
	"fmt"

	"memorial-park-svc/internal/models"
)

// Wizard steps
const (
	StepAll      = 0
	StepIdentity = 1
	StepProfile  = 2
)

// NeedsProfile reports whether the wizard has a customer profile step
func NeedsProfile(role models.Role) bool {
	return role == models.RoleCustomer
}

// AccountWizard validates one wizard step, or both with StepAll. The profile
// step only applies to customers; a missing profile reports every profile field.
func (v *Validator) AccountWizard(req models.AccountWizardRequest, step int) error {
	switch step {
	case StepAll, StepIdentity, StepProfile:
	default:
		return fmt.Errorf("unknown wizard step %d", step)
	}

	out := &Errors{}
	if step == StepAll || step == StepIdentity {
		if err := out.Merge(v.Struct(req.Account)); err != nil {
			return err
		}
	}

	if (step == StepAll || step == StepProfile) && NeedsProfile(req.Account.Role) {
		profile := models.CustomerProfile{}
		if req.Profile != nil {
			profile = *req.Profile
		}
		if err := out.Merge(v.Struct(profile)); err != nil {
			return err
		}
	}
	return out.OrNil()
}

// Deceased validates the deceased form including date ordering
// (date_of_birth <= date_of_death <= burial_date).
func (v *Validator) Deceased(in models.DeceasedInput) error {
	out := &Errors{}
	if err := out.Merge(v.Struct(in)); err != nil {
		return err
	}

	if in.DateOfBirth != nil && in.DateOfDeath != nil && in.DateOfDeath.Before(*in.DateOfBirth) {
		out.Add("date_of_death", "must not be before date_of_birth")
	}
	if in.BurialDate != nil {
		if in.DateOfDeath != nil && in.BurialDate.Before(*in.DateOfDeath) {
			out.Add("burial_date", "must not be before date_of_death")
		} else if in.DateOfDeath == nil && in.DateOfBirth != nil && in.BurialDate.Before(*in.DateOfBirth) {
			out.Add("burial_date", "must not be before date_of_birth")
		}
	}
	return out.OrNil()
}

// Availability tells the console which account fields are enabled
type Availability struct {
	ContactEditable bool `json:"contact_editable"`
	RoleSelectable  bool `json:"role_selectable"`
	ProfileStep     bool `json:"profile_step"`
}

// FieldAvailability derives the field-enabling order of the account form:
// contact opens once sex at birth is set, role opens once contact is valid.
func FieldAvailability(in models.AccountInput) Availability {
	sexSet := in.SexAtBirth == models.SexMale || in.SexAtBirth == models.SexFemale
	_, contactOK := NormalizeContact(in.ContactNumber)
	return Availability{
		ContactEditable: sexSet,
		RoleSelectable:  sexSet && contactOK,
		ProfileStep:     NeedsProfile(in.Role),
	}
}

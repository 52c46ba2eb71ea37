package validate_test

import (
	"errors"
	"testing"

	"github.com/kofasentinel/atlas/apperr"
	"github.com/kofasentinel/atlas/types"
	"github.com/kofasentinel/atlas/validate"
)

func TestIdentifierFormat_Phones(t *testing.T) {
	valid := []string{
		"08123456789",
		"+2348123456789",
		"2348123456789",
		"0812 345 6789", // whitespace is stripped before matching
		"07012345678",
		"09087654321",
	}
	for _, phone := range valid {
		if err := validate.IdentifierFormat(types.ProfileTypeIndividual, phone); err != nil {
			t.Errorf("%q: expected valid phone, got %v", phone, err)
		}
	}

	invalid := []string{"", "12345", "0612345678", "ABC-123", "081234567890123"}
	for _, phone := range invalid {
		if err := validate.IdentifierFormat(types.ProfileTypeIndividual, phone); !apperr.HasCode(err, apperr.CodeValidation) {
			t.Errorf("%q: expected validation error, got %v", phone, err)
		}
	}
}

func TestIdentifierFormat_Plates(t *testing.T) {
	valid := []string{"ABC-123", "abc-123", "XYZ 789", "KJA123AA", "ABC123"}
	for _, plate := range valid {
		if err := validate.IdentifierFormat(types.ProfileTypeVehicle, plate); err != nil {
			t.Errorf("%q: expected valid plate, got %v", plate, err)
		}
	}

	invalid := []string{"", "123-ABC", "AB-123", "ABCD-123", "ABC-12345"}
	for _, plate := range invalid {
		if err := validate.IdentifierFormat(types.ProfileTypeVehicle, plate); !apperr.HasCode(err, apperr.CodeValidation) {
			t.Errorf("%q: expected validation error, got %v", plate, err)
		}
	}
}

func TestCreateForm_ShapeErrorsNameTheField(t *testing.T) {
	err := validate.CreateForm(types.CreateProfileForm{
		ProfileType: types.ProfileTypeIndividual,
		Name:        "John Doe",
		Identifier:  "08123456789",
		Email:       "not-an-email",
	})

	var ae *apperr.Error
	if !errors.As(err, &ae) || ae.Field != "email" {
		t.Fatalf("expected a field-scoped email error, got %v", err)
	}
}

func TestCreateForm_RequiredFields(t *testing.T) {
	if err := validate.CreateForm(types.CreateProfileForm{}); !apperr.HasCode(err, apperr.CodeValidation) {
		t.Fatalf("empty form must fail validation, got %v", err)
	}
}

func TestUpdateForm_ChecksPresentFieldsOnly(t *testing.T) {
	// No fields present: nothing to validate.
	if err := validate.UpdateForm(types.UpdateProfileForm{ProfileID: "p"}, types.ProfileTypeIndividual); err != nil {
		t.Fatalf("empty update must pass, got %v", err)
	}

	blank := "  "
	if err := validate.UpdateForm(types.UpdateProfileForm{ProfileID: "p", Name: &blank}, types.ProfileTypeIndividual); !apperr.HasCode(err, apperr.CodeValidation) {
		t.Errorf("blank name must fail, got %v", err)
	}

	badPlate := "12-XYZ"
	if err := validate.UpdateForm(types.UpdateProfileForm{ProfileID: "p", Identifier: &badPlate}, types.ProfileTypeVehicle); !apperr.HasCode(err, apperr.CodeValidation) {
		t.Errorf("bad plate must fail against the vehicle type, got %v", err)
	}
}

func TestIdentifierUnique(t *testing.T) {
	profiles := []types.Profile{
		{ProfileID: "p1", Identifier: "08123456789"},
		{ProfileID: "p2", Identifier: "ABC-123"},
	}

	if err := validate.IdentifierUnique("XYZ-789", profiles, ""); err != nil {
		t.Errorf("fresh identifier must pass, got %v", err)
	}
	if err := validate.IdentifierUnique("abc-123", profiles, ""); !apperr.HasCode(err, apperr.CodeValidation) {
		t.Errorf("case-insensitive duplicate must fail, got %v", err)
	}
	// The profile being edited does not collide with itself.
	if err := validate.IdentifierUnique("ABC-123", profiles, "p2"); err != nil {
		t.Errorf("self-collision must pass, got %v", err)
	}
}

// Package validate holds the pure admission checks run before a profile
// enters the register: form shape, identifier format per profile type,
// and identifier uniqueness against a snapshot of existing profiles.
package validate

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/kofasentinel/atlas/apperr"
	"github.com/kofasentinel/atlas/types"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report field names as they appear on the wire, not as Go fields.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" {
			return f.Name
		}
		return tag
	})
	return v
}

// Identifier formats, after stripping whitespace:
// individuals carry a Nigerian phone number, vehicles a plate number.
var (
	phonePattern = regexp.MustCompile(`^(\+?234|0)?[789][01][0-9]{8}$`)
	platePattern = regexp.MustCompile(`^[A-Za-z]{3}[- ]?[0-9]{3}[A-Za-z]{0,2}$`)
)

// CreateForm checks a registration form: struct tags first, then the
// type-specific identifier format.  Returns a field-scoped validation
// error on the first violation.
func CreateForm(form types.CreateProfileForm) error {
	if err := validate.Struct(form); err != nil {
		return firstFieldError(err)
	}
	return IdentifierFormat(form.ProfileType, form.Identifier)
}

// UpdateForm checks a partial edit.  Only fields that are present are
// validated; the identifier format check needs the effective profile
// type, which the caller resolves from the stored record.
func UpdateForm(form types.UpdateProfileForm, effectiveType types.ProfileType) error {
	if err := validate.Struct(form); err != nil {
		return firstFieldError(err)
	}
	if form.Name != nil && strings.TrimSpace(*form.Name) == "" {
		return apperr.Validation("name", "is required")
	}
	if form.Identifier != nil {
		if strings.TrimSpace(*form.Identifier) == "" {
			return apperr.Validation("identifier", "is required")
		}
		return IdentifierFormat(effectiveType, *form.Identifier)
	}
	return nil
}

// IdentifierFormat applies the advisory format rules: a mismatch is a
// rejected input reported to the caller, never silently accepted.
func IdentifierFormat(pt types.ProfileType, identifier string) error {
	stripped := stripSpace(identifier)
	switch pt {
	case types.ProfileTypeIndividual:
		if !phonePattern.MatchString(stripped) {
			return apperr.Validation("identifier", "must be a valid phone number")
		}
	case types.ProfileTypeVehicle:
		if !platePattern.MatchString(stripped) {
			return apperr.Validation("identifier", "must be a valid plate number (e.g. ABC-123)")
		}
	}
	return nil
}

// IdentifierUnique fails when any profile in the snapshot already holds
// the identifier, compared case-insensitively.  excludeProfileID skips
// the profile being edited so an update does not collide with itself.
func IdentifierUnique(identifier string, profiles []types.Profile, excludeProfileID string) error {
	for _, p := range profiles {
		if p.ProfileID == excludeProfileID {
			continue
		}
		if strings.EqualFold(p.Identifier, identifier) {
			return apperr.Validation("identifier",
				fmt.Sprintf("a profile with identifier %q already exists", identifier))
		}
	}
	return nil
}

func firstFieldError(err error) error {
	if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
		fe := errs[0]
		return apperr.Validation(fe.Field(), validationMessage(fe))
	}
	return apperr.Wrap(apperr.CodeValidation, err, "validation failed")
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "oneof":
		return "must be one of: " + fe.Param()
	}
	return "is invalid"
}

func stripSpace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case ' ', '\t', '\n', '\r':
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

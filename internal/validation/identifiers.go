package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Identifier formats issued by the Federal Board of Revenue and NADRA.
// Patterns are anchored and ASCII-only: `\d` in RE2 never matches
// non-ASCII digits, and nothing is trimmed or normalized before matching.
var (
	// ntnRegex matches a National Tax Number: exactly 7 digits.
	ntnRegex = regexp.MustCompile(`^\d{7}$`)

	// strnRegex matches a Sales Tax Registration Number: DD-DD-DDDD-DDD-DD.
	strnRegex = regexp.MustCompile(`^\d{2}-\d{2}-\d{4}-\d{3}-\d{2}$`)

	// cnicRegex matches a Computerized National Identity Card number
	// written without dashes: exactly 13 digits.
	cnicRegex = regexp.MustCompile(`^\d{13}$`)
)

// Validator tags for the identifier rules, usable in struct tags once
// RegisterIdentifierRules has run (e.g. `validate:"omitempty,ntn"`).
const (
	TagNTN  = "ntn"
	TagSTRN = "strn"
	TagCNIC = "cnic"
)

// IsValidNTN reports whether value is a well-formed NTN (7 digits).
func IsValidNTN(value string) bool {
	return ntnRegex.MatchString(value)
}

// IsValidSTRN reports whether value is a well-formed STRN (XX-XX-XXXX-XXX-XX).
func IsValidSTRN(value string) bool {
	return strnRegex.MatchString(value)
}

// IsValidCNIC reports whether value is a well-formed CNIC (13 digits, no dashes).
//
// "12345-6789012-3" is how a CNIC is printed on the card, but it is NOT
// accepted here: callers must strip the dashes themselves.
func IsValidCNIC(value string) bool {
	return cnicRegex.MatchString(value)
}

// RegisterIdentifierRules adds the ntn, strn and cnic tags to v.
func RegisterIdentifierRules(v *validator.Validate) error {
	rules := map[string]func(string) bool{
		TagNTN:  IsValidNTN,
		TagSTRN: IsValidSTRN,
		TagCNIC: IsValidCNIC,
	}

	for tag, check := range rules {
		check := check
		err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return check(fl.Field().String())
		})
		if err != nil {
			return err
		}
	}

	return nil
}

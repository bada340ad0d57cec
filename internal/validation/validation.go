// Package validation contains the logic for validating
// request data.
//
// It uses the `validator` library to enforce rules (like
// required fields or identifier formats) defined in struct tags
// and extracts validation errors into a format the client can
// understand.
//
// It also owns the identifier predicates for NTN, STRN and CNIC,
// which are plain functions and can be used without any request.
package validation

import (
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	sharedValidate *validator.Validate
	sharedOnce     sync.Once
)

// Validator returns the process-wide validator instance.
//
// It reports field names by their json tag and has the identifier rules
// registered, so request types can do:
//
//	func (r *Req) Validate() error { return validation.Validator().Struct(r) }
func Validator() *validator.Validate {
	sharedOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())

		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return fld.Name
			}
			return name
		})

		// Registration only fails on an empty tag or nil func.
		if err := RegisterIdentifierRules(v); err != nil {
			panic(err)
		}

		sharedValidate = v
	})

	return sharedValidate
}

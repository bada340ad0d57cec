package dberr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/deppfellow/fbr-erp/internal/errs"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// generateErrorCode creates "application error codes" from DB errors.
//
// Output format:
//
//	<ENTITY>_<ACTION>
//
// e.g. taxpayers + DuplicateKey => TAXPAYER_ALREADY_EXISTS
func generateErrorCode(collection string, code Code) string {
	entity := strings.ToUpper(singular(collection))
	if entity == "" {
		entity = "RECORD"
	}

	action := "ERROR"
	switch code {
	case NotFound:
		action = "NOT_FOUND"
	case DuplicateKey:
		action = "ALREADY_EXISTS"
	}

	return fmt.Sprintf("%s_%s", entity, action)
}

// singular drops one trailing "s": "taxpayers" -> "taxpayer". Naive, but the
// collection names in this service are all regular plurals.
func singular(name string) string {
	if strings.HasSuffix(name, "s") && len(name) > 1 {
		return name[:len(name)-1]
	}
	return name
}

// humanizeText converts snake_case into Title Case: "sales_tax_number" -> "Sales Tax Number".
func humanizeText(text string) string {
	if text == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.ReplaceAll(text, "_", " "))
}

// HandleError converts a low-level database error into an application-level error.
//
// Output:
//   - *errs.HTTPError: returned unchanged
//   - no documents: 404
//   - duplicate key: 400 with <ENTITY>_ALREADY_EXISTS and the offending field
//   - timeout / network / disconnected client: 503
//   - anything else: 500
func HandleError(err error) error {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	dbErr := Classify(err)
	if dbErr == nil {
		return errs.NewInternalServerError()
	}

	switch dbErr.Code {
	case NotFound:
		return errs.NewNotFoundError("Resource not found", false, nil)

	case DuplicateKey:
		code := generateErrorCode(dbErr.Collection, dbErr.Code)

		entity := strings.ToLower(humanizeText(singular(dbErr.Collection)))
		if entity == "" {
			entity = "record"
		}

		field := humanizeText(dbErr.Field)
		if field == "" {
			field = "Identifier"
		}

		message := fmt.Sprintf("A %s with this %s already exists", entity, field)

		var fieldErrors []errs.FieldError
		if dbErr.Field != "" {
			fieldErrors = []errs.FieldError{{Field: strings.ToLower(dbErr.Field), Error: "already exists"}}
		}

		return errs.NewBadRequestError(message, true, &code, fieldErrors, nil)

	case Unavailable:
		return errs.NewServiceUnavailableError()

	default:
		return errs.NewInternalServerError()
	}
}

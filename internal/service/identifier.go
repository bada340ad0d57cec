package service

import (
	"context"

	"github.com/deppfellow/fbr-erp/internal/server"
	"github.com/deppfellow/fbr-erp/internal/validation"
	"github.com/rs/zerolog"
)

// IdentifierSet holds the tax identifiers submitted together. A nil field
// was not submitted.
type IdentifierSet struct {
	NTN  *string
	STRN *string
	CNIC *string
}

// IdentifierResult is the outcome for one submitted identifier.
type IdentifierResult struct {
	Value string `json:"value"`
	Valid bool   `json:"valid"`
}

// IdentifierReport lists the result for each submitted identifier.
// Identifiers that were not submitted are omitted.
type IdentifierReport struct {
	NTN   *IdentifierResult `json:"ntn,omitempty"`
	STRN  *IdentifierResult `json:"strn,omitempty"`
	CNIC  *IdentifierResult `json:"cnic,omitempty"`
	Valid bool              `json:"valid"`
}

type IdentifierService struct {
	server *server.Server
}

func NewIdentifierService(s *server.Server) *IdentifierService {
	return &IdentifierService{server: s}
}

// Check runs the NTN, STRN and CNIC rules over the submitted identifiers.
// Report.Valid is true when every submitted identifier is well-formed and at
// least one was submitted.
func (s *IdentifierService) Check(ctx context.Context, set IdentifierSet) IdentifierReport {
	report := IdentifierReport{
		NTN:  checkIdentifier(set.NTN, validation.IsValidNTN),
		STRN: checkIdentifier(set.STRN, validation.IsValidSTRN),
		CNIC: checkIdentifier(set.CNIC, validation.IsValidCNIC),
	}

	submitted := 0
	report.Valid = true
	for _, r := range []*IdentifierResult{report.NTN, report.STRN, report.CNIC} {
		if r == nil {
			continue
		}
		submitted++
		report.Valid = report.Valid && r.Valid
	}
	if submitted == 0 {
		report.Valid = false
	}

	zerolog.Ctx(ctx).Debug().
		Int("submitted", submitted).
		Bool("valid", report.Valid).
		Msg("identifiers checked")

	return report
}

func checkIdentifier(value *string, valid func(string) bool) *IdentifierResult {
	if value == nil {
		return nil
	}
	return &IdentifierResult{Value: *value, Valid: valid(*value)}
}

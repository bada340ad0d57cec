// Package dberr specifically handles database driver errors.
//
// It classifies errors coming out of the MongoDB driver and converts
// them into user-friendly API errors (e.g. converting a duplicate key
// on the taxpayers collection into a 400 TAXPAYER_ALREADY_EXISTS).
package dberr

import (
	"context"
	"errors"
	"regexp"

	"go.mongodb.org/mongo-driver/v2/mongo"
)

// Code is the category of a database error.
type Code string

const (
	Other        Code = "other"
	NotFound     Code = "not_found"
	DuplicateKey Code = "duplicate_key"
	Unavailable  Code = "unavailable"
)

// Error is a classified driver error.
type Error struct {
	Code Code

	// Collection and Field are parsed from the server message when present.
	Collection string
	Field      string

	Message string

	driverErr error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.driverErr
}

// dupKeyRegex pulls the collection and the first key field out of an E11000 message:
//
//	E11000 duplicate key error collection: erp.taxpayers index: ntn_1 dup key: { ntn: "1234567" }
var dupKeyRegex = regexp.MustCompile(`collection: [^.\s]+\.(\S+) index: \S+ dup key: \{ ?"?([A-Za-z0-9_.]+)"?:`)

// Classify converts err into an *Error. It returns nil for a nil err.
func Classify(err error) *Error {
	if err == nil {
		return nil
	}

	var classified *Error
	if errors.As(err, &classified) {
		return classified
	}

	out := &Error{Code: Other, Message: err.Error(), driverErr: err}

	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		out.Code = NotFound

	case mongo.IsDuplicateKeyError(err):
		out.Code = DuplicateKey
		if m := dupKeyRegex.FindStringSubmatch(err.Error()); len(m) == 3 {
			out.Collection = m[1]
			out.Field = m[2]
		}

	case mongo.IsTimeout(err),
		mongo.IsNetworkError(err),
		errors.Is(err, mongo.ErrClientDisconnected),
		errors.Is(err, context.DeadlineExceeded):
		out.Code = Unavailable
	}

	return out
}

// ErrCode reports the Code for err, or Other if it cannot be classified.
func ErrCode(err error) Code {
	if c := Classify(err); c != nil {
		return c.Code
	}
	return Other
}

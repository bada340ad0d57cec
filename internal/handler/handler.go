// Package handler is the first layer after the router.
//
// It parses requests, validates input with the validation package, calls
// the service layer and writes the response.
package handler

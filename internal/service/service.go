// Package service contains the business logic.
//
// It sits between the handler layer and the utility packages (format,
// validation). It receives validated data from the handler, runs the
// formatting and identifier rules, and shapes the results the API returns.
// Services log through the request-scoped logger carried in the context.
package service

// Package apperror defines the closed set of application error kinds and
// the responder that turns them into HTTP responses.
//
// Every [Kind] maps to exactly one HTTP status code. Handlers return an
// [*AppError] and call [WriteResponse], which writes the status together
// with a [models.APIResponse] envelope whose data is null.
package apperror

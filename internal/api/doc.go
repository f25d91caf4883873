// Package api handles incoming HTTP requests, routing, request validation,
// and response formatting for the account service. It translates HTTP
// concerns into account store operations and maps every failure to a JSON
// error body in one place (HandleAPIError).
package api

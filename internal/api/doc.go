// Package api handles HTTP request routing.
//
// It wires the gin router to the handlers, which translate HTTP requests
// into service calls and service results back into HTTP responses.
package api

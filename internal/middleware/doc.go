// Package middleware provides the HTTP request middleware.
//
// It covers bearer-token authentication in required and optional flavors
// and the administrator gate used by privileged routes.
package middleware

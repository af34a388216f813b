// Package booking holds the reservation business rules.
//
// Everything in this package is pure: validation receives the current time
// as an argument and never touches the database, so the rules can be tested
// without a running server.
package booking

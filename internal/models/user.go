// Package models defines the core value types of the booking domain.
package models

// User is an account holder. Username is unique and stored lower-cased.
// Credential is the opaque salt‖derivedKey blob produced by the credentials
// package. Balance is in the smallest currency unit and never negative.
type User struct {
	Username   string
	Credential []byte
	Balance    int
}

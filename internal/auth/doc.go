// Package auth contains the credential primitives of the server: one-way
// password hashing for credentials at rest and the codec that issues and
// verifies signed bearer tokens.
//
// Both primitives are pure and hold only read-only state after construction,
// so they are safe for concurrent use from any number of request goroutines.
package auth

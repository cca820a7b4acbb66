// Package ledger implements the accounting core: an append-only transaction
// log that positions are derived from, plus the per-user cash balance.
// Business-rule failures are reported as the sentinel errors below; callers
// should match them with errors.Is.
package ledger

import "errors"

var (
	// ErrValidation covers malformed input that slipped past route
	// validation (non-positive shares or amounts).
	ErrValidation = errors.New("invalid input")

	// ErrNotFound means the referenced user row does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInsufficientFunds means the buy cost exceeds current cash.
	ErrInsufficientFunds = errors.New("can't afford")

	// ErrNoPosition means the user holds no shares of the symbol at all.
	ErrNoPosition = errors.New("you don't own any shares of that stock")

	// ErrInsufficientShares means the user holds some shares but fewer
	// than requested.
	ErrInsufficientShares = errors.New("not enough shares to sell")

	// ErrDuplicateUser means the username is already registered.
	ErrDuplicateUser = errors.New("username already exists")

	// ErrAuthFailed covers unknown username and wrong password alike, so
	// the response never discloses which one it was.
	ErrAuthFailed = errors.New("invalid username and/or password")
)

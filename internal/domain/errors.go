package domain

import (
	"errors"
	"fmt"
)

// Kind classifies a business rejection so the HTTP layer can pick a status
// without inspecting code strings.
type Kind int

const (
	KindUnknown Kind = iota
	KindUnauthenticated
	KindSessionTerminated
	KindForbidden
	KindNotFound
	KindConflict
	KindInvalidCredentials
	KindSignOutRestricted
)

// Error is a terminal business rejection. Code and Message form a stable
// pair that must round-trip through the API layer unchanged; clients match
// on Code. These are rule violations, not transient faults — never retried.
type Error struct {
	Kind    Kind
	Code    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s", e.Code, e.Message)
}

// KindOf extracts the Kind from err, or KindUnknown for plain errors
// (store connectivity and the like, surfaced as internal failures).
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindUnknown
}

// ErrNotSignedIn covers every way a request can fail to present a live
// token: absent, empty, or unknown to the session store. Collapsing the
// three keeps token probing uninformative.
func ErrNotSignedIn() *Error {
	return &Error{Kind: KindUnauthenticated, Code: "ATHR-001", Message: "User has not signed in"}
}

// ErrSignedOut is returned when a token resolves to a terminated session.
// The hint names what signing in again would enable; callers supply it.
func ErrSignedOut(hint string) *Error {
	msg := "User is signed out"
	if hint != "" {
		msg = "User is signed out.Sign in first to " + hint
	}
	return &Error{Kind: KindSessionTerminated, Code: "ATHR-002", Message: msg}
}

func ErrForbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Code: "ATHR-003", Message: message}
}

func ErrUsernameTaken() *Error {
	return &Error{Kind: KindConflict, Code: "SGR-001", Message: "Try any other Username, this Username has already been taken"}
}

func ErrEmailTaken() *Error {
	return &Error{Kind: KindConflict, Code: "SGR-002", Message: "This user has already been registered, try with any other emailId"}
}

// ErrSignOutRestricted reuses the SGR-001 code string for a failed
// sign-out; the code collision with ErrUsernameTaken is a published quirk
// of the API contract and is kept as-is.
func ErrSignOutRestricted() *Error {
	return &Error{Kind: KindSignOutRestricted, Code: "SGR-001", Message: "User is not Signed in"}
}

// ErrInvalidCredentials covers both an unknown username and a password
// mismatch. One kind, one code: a sign-in failure must not reveal whether
// the username exists.
func ErrInvalidCredentials() *Error {
	return &Error{Kind: KindInvalidCredentials, Code: "ATH-001", Message: "Invalid username or password"}
}

func ErrUserNotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Code: "USR-001", Message: message}
}

func ErrQuestionNotFound() *Error {
	return &Error{Kind: KindNotFound, Code: "QUES-001", Message: "Entered question uuid does not exist"}
}

func ErrAnswerNotFound() *Error {
	return &Error{Kind: KindNotFound, Code: "ANS-001", Message: "Entered answer uuid does not exist"}
}

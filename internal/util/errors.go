package util

import "errors"

var (
	ErrNoActiveSession   = errors.New("no active quiz session")
	ErrQuizComplete      = errors.New("quiz already complete")
	ErrStaleSubmission   = errors.New("submission does not match the current question")
	ErrInvalidCredential = errors.New("invalid username or password")
)

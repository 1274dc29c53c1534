package services

import (
	"errors"
	"fmt"
)

type ErrorKind string

const (
	KindTooLarge          ErrorKind = "too_large"
	KindExtractionFailed  ErrorKind = "extraction_failed"
	KindLikelyScanned     ErrorKind = "likely_scanned"
	KindMissingSections   ErrorKind = "missing_sections"
	KindInvalidEmail      ErrorKind = "invalid_email"
	KindNoCompanySelected ErrorKind = "no_company_selected"
	KindRemoteCallFailed  ErrorKind = "remote_call_failed"
	KindBlankAnswer       ErrorKind = "blank_answer"
	KindNotStarted        ErrorKind = "not_started"
	KindSessionStarted    ErrorKind = "session_started"
	KindInterviewComplete ErrorKind = "interview_complete"
	KindReplyPending      ErrorKind = "reply_pending"
	KindNothingToRetry    ErrorKind = "nothing_to_retry"
)

// Error is a user-facing failure. Message is safe to display as is.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func newError(kind ErrorKind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Err: cause}
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return "", false
}

func IsKind(err error, kind ErrorKind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}

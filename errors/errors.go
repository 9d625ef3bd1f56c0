package errors

import "fmt"

var (
	ErrTransitionNotSupported = fmt.Errorf("this status update is not supported")
	ErrNotAllowed             = fmt.Errorf("actor is not allowed to perform this transition")
	ErrUnknownDonation        = fmt.Errorf("donation not found in the current snapshot")
	ErrUnknownSession         = fmt.Errorf("chat session not found")
	ErrEmptyMessage           = fmt.Errorf("message body is empty")
	ErrNotConnected           = fmt.Errorf("realtime channel is not connected")
	ErrNotAuthenticated       = fmt.Errorf("no authenticated actor")
	ErrInvalidInput           = fmt.Errorf("invalid input")
	ErrEmptyWords             = fmt.Errorf("no words have been found")
	ErrWorkerPanic            = fmt.Errorf("worker panic")
)

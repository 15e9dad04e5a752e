package domain

import (
	"errors"
)

var (
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedProcessRequest = "failed to process request"
	MessageInternalServerError  = "Internal Server Error"
	MessageStorageUnavailable   = "Storage unavailable"
	MessageRouteNotFound        = "Not Found"
	MessagePong                 = "pong"

	// ErrStorageUnavailable marks failures to reach the relational store, at startup or mid-request.
	ErrStorageUnavailable = errors.New("storage unavailable")
)

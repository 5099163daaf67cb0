package errors

import "errors"

var (
	ErrInvalidQuery    = errors.New("invalid search query")
	ErrInvalidDate     = errors.New("invalid wire date")
	ErrRouteNotFound   = errors.New("route not found")
	ErrSourceTemporary = errors.New("temporary route source failure")
	ErrUnauthenticated = errors.New("session token is missing")
	ErrSessionNotFound = errors.New("session not found")
	ErrPurchaseFailed  = errors.New("purchase failed")
)

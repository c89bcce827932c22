package session

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессии с таким ID нет или она истекла
	ErrSessionNotFound = errors.New("session.store: session not found")
)

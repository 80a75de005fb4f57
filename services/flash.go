package services

import "errors"

// Sentinels the controllers map onto HTTP status codes.
var (
	ErrNotFound = errors.New("record not found")
	ErrConflict = errors.New("conflicting state")
)

type FlashLevel string

const (
	FlashSuccess FlashLevel = "success"
	FlashError   FlashLevel = "error"
	FlashWarning FlashLevel = "warning"
	FlashInfo    FlashLevel = "info"
)

// Flash is the (severity, text) outcome of a user-facing operation. The text
// vocabulary is part of the observable contract and consumed verbatim by the
// presentation layer.
type Flash struct {
	Level   FlashLevel `json:"level"`
	Message string     `json:"message"`
}

func successFlash(message string) Flash { return Flash{Level: FlashSuccess, Message: message} }
func errorFlash(message string) Flash   { return Flash{Level: FlashError, Message: message} }
func warningFlash(message string) Flash { return Flash{Level: FlashWarning, Message: message} }
func infoFlash(message string) Flash    { return Flash{Level: FlashInfo, Message: message} }

package app

import "errors"

var (
	ErrInvalidRequest         = errors.New("invalid request")
	ErrNoPhoto                = errors.New("photo is not found")
	ErrGeneratorNotConfigured = errors.New("layout generator is not configured")
	ErrRendererNotConfigured  = errors.New("renderer is not configured")
)

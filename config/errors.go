package config

import "errors"

var (
	ErrInvalid     = errors.New("invalid config value")
	ErrUnknownKind = errors.New("unknown agent kind")
)

package models

import "errors"

var (
	ErrNoAnchor           = errors.New("archive has no anchor file")
	ErrKeyNotFound        = errors.New("config key not found")
	ErrUnknownInstruction = errors.New("unknown instruction type")
	ErrPathEscapesRoot    = errors.New("path escapes install root")
)

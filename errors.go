package pipecodec

import "errors"

// Sentinel errors for setting lookups. Encode and Decode never fail.
var (
	ErrUnknownKind = errors.New("unknown setting kind")
	ErrEmptyKind   = errors.New("setting kind cannot be empty")
)

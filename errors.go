package inks

import "errors"

var (
	// ErrNotChild is returned when a tree operation names a node that is not
	// a child of the receiver.
	ErrNotChild = errors.New("inks: node is not a child")

	// ErrNoScene is returned by Engine.Start when no scene has been set.
	ErrNoScene = errors.New("inks: no scene set")

	// ErrUnsupportedPair is returned by HitTest in strict mode when no test
	// exists for the two node types.
	ErrUnsupportedPair = errors.New("inks: unsupported collision pair")

	// ErrInvalidConfig is returned when a Config fails validation.
	ErrInvalidConfig = errors.New("inks: invalid config")
)

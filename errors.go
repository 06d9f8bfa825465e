package spotlight

import (
	"errors"
	"fmt"
)

// ErrConfiguration is wrapped by every error caused by an invalid setup:
// a missing host, an empty target queue or an invalid config file value.
// Operations that fail with it leave all state unchanged.
var ErrConfiguration = errors.New("spotlight: configuration error")

var (
	// ErrNilHost is returned when a target or sequence is created without a host.
	ErrNilHost = fmt.Errorf("%w: host is nil", ErrConfiguration)
	// ErrEmptyQueue is returned by Start when there are no targets to show.
	ErrEmptyQueue = fmt.Errorf("%w: no targets", ErrConfiguration)
	// ErrAlreadyRunning is returned by Start when the sequence is not idle.
	ErrAlreadyRunning = errors.New("spotlight: sequence already running")
	// ErrNotRunning is returned by Advance when no sequence is active.
	ErrNotRunning = errors.New("spotlight: sequence not running")
)

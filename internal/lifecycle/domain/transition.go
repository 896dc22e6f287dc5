package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownStatus means the requested status is outside the allow-list.
	ErrUnknownStatus = errors.New("unknown status")
	// ErrTerminalStatus means the entity is in a status nothing may leave.
	ErrTerminalStatus = errors.New("status is terminal")
	// ErrBackwardTransition means the requested status precedes the current one.
	ErrBackwardTransition = errors.New("status transitions are forward-only")
	// ErrReservedStatus means the status is only reachable through conversion.
	ErrReservedStatus = errors.New("status is reserved for conversion")
	// ErrAlreadyQualified means qualify was requested at or past the qualified status.
	ErrAlreadyQualified = errors.New("already qualified")
)

// TransitionError carries the statuses involved in a rejected transition.
type TransitionError struct {
	From    string
	To      string
	Allowed []string
	Err     error
}

func (e *TransitionError) Error() string {
	switch e.Err {
	case ErrUnknownStatus:
		return fmt.Sprintf("invalid status %q, allowed: %s", e.To, strings.Join(e.Allowed, ", "))
	case ErrReservedStatus:
		return fmt.Sprintf("status %q can only be set by conversion", e.To)
	case ErrAlreadyQualified:
		return fmt.Sprintf("cannot qualify from status %q", e.From)
	default:
		return fmt.Sprintf("cannot move from %q to %q: %v", e.From, e.To, e.Err)
	}
}

func (e *TransitionError) Unwrap() error { return e.Err }

// CheckTransition validates moving from -> to. A same-status request is
// valid and means no change. Statuses outside the forward list (legacy data)
// are treated as preceding every listed status.
func (t EntityType) CheckTransition(from, to string) error {
	if !t.IsKnownStatus(to) {
		return &TransitionError{From: from, To: to, Allowed: t.AllowedStatuses(), Err: ErrUnknownStatus}
	}
	if from == to {
		return nil
	}
	if t.ConversionStatus != "" && to == t.ConversionStatus {
		return &TransitionError{From: from, To: to, Err: ErrReservedStatus}
	}
	if t.IsTerminal(from) {
		return &TransitionError{From: from, To: to, Err: ErrTerminalStatus}
	}
	if t.IsNegative(to) {
		return nil
	}
	if t.rank(to) < t.rank(from) {
		return &TransitionError{From: from, To: to, Err: ErrBackwardTransition}
	}
	return nil
}

// CheckQualify validates the qualify action from the current status.
func (t EntityType) CheckQualify(from string) error {
	if t.IsTerminal(from) {
		return &TransitionError{From: from, To: t.QualifiedStatus, Err: ErrTerminalStatus}
	}
	if t.rank(from) >= t.rank(t.QualifiedStatus) {
		return &TransitionError{From: from, To: t.QualifiedStatus, Err: ErrAlreadyQualified}
	}
	return nil
}

// CheckConvertible validates that an entity in status may start conversion.
func (t EntityType) CheckConvertible(status string) error {
	if t.ConversionStatus == "" {
		return &TransitionError{From: status, Err: ErrReservedStatus}
	}
	if t.IsTerminal(status) {
		return &TransitionError{From: status, To: t.ConversionStatus, Err: ErrTerminalStatus}
	}
	return nil
}

// EntersQualified reports whether moving to status requires rescoring.
func (t EntityType) EntersQualified(from, to string) bool {
	return to == t.QualifiedStatus && from != to
}

// internal/cards/violation.go
//
// RuleError is the rejection value both engines return for illegal player
// actions. The four kinds mirror the rule taxonomy: turn, legality,
// selection and phase violations. Rejections are recoverable and carry no
// side effects; anything else coming out of an engine is a defect.

package cards

import "fmt"

// ViolationKind classifies why a player action was rejected.
type ViolationKind string

const (
	// ViolationTurn: the acting player does not hold the turn or right to act.
	ViolationTurn ViolationKind = "turn"
	// ViolationLegality: the chosen card or pile breaks a game rule.
	ViolationLegality ViolationKind = "legality"
	// ViolationSelection: wrong cardinality, duplicates, or a card/pile that
	// does not exist or is not held.
	ViolationSelection ViolationKind = "selection"
	// ViolationPhase: the action does not apply to the current phase.
	ViolationPhase ViolationKind = "phase"
)

// RuleError is a rejected player action. It is reported to the acting
// caller only and never mutates engine state.
type RuleError struct {
	Kind    ViolationKind
	Message string
}

func (e *RuleError) Error() string { return e.Message }

// Reject builds a RuleError of the given kind.
func Reject(kind ViolationKind, format string, args ...any) *RuleError {
	return &RuleError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

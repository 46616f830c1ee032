package naming

import (
	"fmt"

	"github.com/leapstack-labs/namelint/pkg/core"
)

// Kind classifies a violation.
type Kind string

// Violation kinds.
const (
	KindCasing               Kind = "CasingViolation"
	KindForbiddenToken       Kind = "ForbiddenTokenViolation"
	KindMissingBooleanPrefix Kind = "MissingBooleanPrefixViolation"
	KindMissingStructureSlot Kind = "MissingStructureSlot"
	KindUnknownCategory      Kind = "UnknownCategory"
)

// Violation is a failed check. It is a value returned to the caller, not a
// fault; only KindUnknownCategory signals a caller bug.
type Violation struct {
	Identifier string
	Category   core.Category
	Kind       Kind
	Slot       string   // Missing or malformed slot (structure violations)
	Tokens     []string // Offending tokens (forbidden-token violations)
	Reason     string
	Suggestion string // Suggested replacement name, may be empty
}

// Error implements error.
func (v *Violation) Error() string {
	return fmt.Sprintf("%s: %q (%s): %s", v.Kind, v.Identifier, v.Category, v.Reason)
}

// Unwrap exposes ErrUnknownCategory for unknown-category violations.
func (v *Violation) Unwrap() error {
	if v.Kind == KindUnknownCategory {
		return ErrUnknownCategory
	}
	return nil
}

package derive

import (
	"fmt"
	"go/token"
	"strings"
)

// Code is a machine-readable diagnostic code.
type Code string

const (
	CodeUnsupportedShape             Code = "UNSUPPORTED_SHAPE"
	CodeNoUuidSource                 Code = "NO_UUID_SOURCE"
	CodeAmbiguousUuidSource          Code = "AMBIGUOUS_UUID_SOURCE"
	CodeNoBoxSource                  Code = "NO_BOX_SOURCE"
	CodeAmbiguousBoxSource           Code = "AMBIGUOUS_BOX_SOURCE"
	CodeNoEntitySource               Code = "NO_ENTITY_SOURCE"
	CodeAmbiguousEntitySource        Code = "AMBIGUOUS_ENTITY_SOURCE"
	CodeNoHealthSource               Code = "NO_HEALTH_SOURCE"
	CodeAmbiguousHealthSource        Code = "AMBIGUOUS_HEALTH_SOURCE"
	CodeNoSoliditySource             Code = "NO_SOLIDITY_SOURCE"
	CodeAmbiguousSoliditySource      Code = "AMBIGUOUS_SOLIDITY_SOURCE"
	CodeIncompleteBoxCoverage        Code = "INCOMPLETE_BOX_COVERAGE"
	CodeIncompleteEntityCoverage     Code = "INCOMPLETE_ENTITY_COVERAGE"
	CodePlayerConversionMissing      Code = "PLAYER_CONVERSION_MISSING"
	CodeIncompleteConversionCoverage Code = "INCOMPLETE_CONVERSION_COVERAGE"
	CodeActionTypeMismatch           Code = "ACTION_TYPE_MISMATCH"
	CodeUnsatisfiedWitness           Code = "UNSATISFIED_WITNESS"
	CodeUnknownDirective             Code = "UNKNOWN_DIRECTIVE"
)

// Diagnostic reports why a type could not be derived. Generation for the
// type is abandoned; other types are unaffected.
type Diagnostic struct {
	Code       Code           `json:"code"`
	Type       string         `json:"type"`
	Member     string         `json:"member,omitempty"`
	Capability Capability     `json:"capability,omitempty"`
	Candidates []string       `json:"candidates,omitempty"`
	Reason     string         `json:"reason"`
	Pos        token.Position `json:"-"`
}

// Error implements the error interface.
func (d *Diagnostic) Error() string {
	var b strings.Builder
	if d.Pos.IsValid() {
		b.WriteString(d.Pos.String())
		b.WriteString(": ")
	}
	b.WriteString(string(d.Code))
	b.WriteString(": ")
	if d.Capability != "" {
		fmt.Fprintf(&b, "cannot derive %s for %s", d.Capability, d.Type)
	} else {
		fmt.Fprintf(&b, "cannot derive %s", d.Type)
	}
	if d.Member != "" {
		fmt.Fprintf(&b, " (%s)", d.Member)
	}
	b.WriteString(": ")
	b.WriteString(d.Reason)
	if len(d.Candidates) > 0 {
		fmt.Fprintf(&b, " [%s]", strings.Join(d.Candidates, ", "))
	}
	return b.String()
}

// Is reports whether target is a Diagnostic with the same code.
func (d *Diagnostic) Is(target error) bool {
	if t, ok := target.(*Diagnostic); ok {
		return d.Code == t.Code
	}
	return false
}

// Location is the diagnostic position in file:line:column form, or "".
func (d *Diagnostic) Location() string {
	if !d.Pos.IsValid() {
		return ""
	}
	return d.Pos.String()
}

func (s *TypeShape) diag(code Code, c Capability, member, reason string) *Diagnostic {
	return &Diagnostic{
		Code:       code,
		Type:       s.Name,
		Member:     member,
		Capability: c,
		Reason:     reason,
		Pos:        s.Pos,
	}
}

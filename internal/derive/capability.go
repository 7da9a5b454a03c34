package derive

import (
	"fmt"
	"strings"
)

// Capability names a derivable engine capability.
type Capability string

const (
	HasUuid          Capability = "HasUuid"
	HasBox           Capability = "HasBox"
	HasEntity        Capability = "HasEntity"
	HasHealth        Capability = "HasHealth"
	HasSolidity      Capability = "HasSolidity"
	RegisteredEntity Capability = "RegisteredEntity"
	MaybeToAction    Capability = "MaybeToAction"
)

// Capabilities lists every derivable capability in emission order.
var Capabilities = []Capability{HasUuid, HasEntity, HasBox, HasHealth, HasSolidity, RegisteredEntity, MaybeToAction}

// Import paths referenced by the engine's capability signatures.
const (
	uuidPath  = "github.com/google/uuid"
	tcellPath = "github.com/gdamore/tcell/v2"
)

// Struct tag key and the marks it may carry.
const (
	tagKey     = "scarab"
	markPlayer = "player"
)

// Comment directives are directivePrefix followed by a verb.
const (
	directivePrefix = "//scarab:"
	deriveVerb      = "derive"
	enumVerb        = "enum"
)

// mark is the struct tag value that witnesses c on a struct member, or ""
// for capabilities that are only derived on enums.
func (c Capability) mark() string {
	switch c {
	case HasUuid:
		return "has_uuid"
	case HasBox:
		return "has_box"
	case HasEntity:
		return "has_entity"
	case HasHealth:
		return "has_health"
	case HasSolidity:
		return "has_solidity"
	}
	return ""
}

// iface is the name of the engine interface c is checked against.
func (c Capability) iface() string {
	switch c {
	case MaybeToAction:
		return "InputBinding"
	case RegisteredEntity:
		return "HasEntity"
	}
	return string(c)
}

// method is the accessor c forwards to.
func (c Capability) method() string {
	switch c {
	case HasUuid:
		return "UUID"
	case HasBox:
		return "Box"
	case HasEntity, RegisteredEntity:
		return "Entity"
	case HasHealth:
		return "Health"
	case HasSolidity:
		return "Solidity"
	case MaybeToAction:
		return "MaybeToAction"
	}
	return ""
}

func parseCapability(name string) (Capability, error) {
	for _, c := range Capabilities {
		if strings.EqualFold(name, string(c)) {
			return c, nil
		}
	}
	// InputBinding is the engine's name for the same contract.
	if strings.EqualFold(name, "InputBinding") {
		return MaybeToAction, nil
	}
	return "", fmt.Errorf("unknown capability %q", name)
}

func markCapability(mark string) (Capability, bool) {
	for _, c := range Capabilities {
		if m := c.mark(); m != "" && m == mark {
			return c, true
		}
	}
	return "", false
}

package derive

import (
	"fmt"
	"strings"
)

// forwarder describes a capability derived on structs and tuple structs by
// forwarding to the single member that witnesses it.
type forwarder struct {
	capability Capability
	result     string // engine identifier or import-qualified type
	resultPath string // import needed by result, "" for engine identifiers
	none       Code
	ambiguous  Code
}

// source picks the unique member witnessing the capability. Ambiguity is
// rejected rather than resolved by declaration order.
func (f forwarder) source(s *TypeShape) (*Member, error) {
	c := f.capability
	if s.Kind == KindEnum {
		return nil, s.diag(CodeUnsupportedShape, c, "", fmt.Sprintf("%s can only be derived for structs and tuple structs", c))
	}
	if err := s.collides(c, c.method()); err != nil {
		return nil, err
	}
	var candidates []*Member
	for i := range s.Members {
		if s.Members[i].witnesses(c) {
			candidates = append(candidates, &s.Members[i])
		}
	}
	switch len(candidates) {
	case 0:
		return nil, s.diag(f.none, c, "", fmt.Sprintf("no member is tagged %s:%q", tagKey, c.mark()))
	case 1:
		return candidates[0], nil
	}
	names := make([]string, 0, len(candidates))
	for _, m := range candidates {
		names = append(names, m.Name)
	}
	d := s.diag(f.ambiguous, c, "", fmt.Sprintf("%d members are tagged %s:%q", len(names), tagKey, c.mark()))
	d.Candidates = names
	return nil, d
}

func (f forwarder) derive(e *emitter, s *TypeShape) error {
	m, err := f.source(s)
	if err != nil {
		return err
	}
	result := f.result
	if f.resultPath != "" {
		e.use(f.resultPath)
	} else {
		result = "*" + e.engine(strings.TrimPrefix(result, "*"))
	}
	method := f.capability.method()
	iface := e.engine(f.capability.iface())
	r := s.receiver()

	e.Printf("// %s implements %s by forwarding to the %s field.\n", method, iface, m.Name)
	e.Printf("func (%s *%s) %s() %s {\n", r, s.Name, method, result)
	e.Printf("\treturn %s.%s.%s()\n", r, m.Name, method)
	e.Printf("}\n\n")
	e.assert(s, iface)
	return nil
}

var (
	uuidForwarder = forwarder{
		capability: HasUuid,
		result:     "uuid.UUID",
		resultPath: uuidPath,
		none:       CodeNoUuidSource,
		ambiguous:  CodeAmbiguousUuidSource,
	}
	boxForwarder = forwarder{
		capability: HasBox,
		result:     "*PhysBox",
		none:       CodeNoBoxSource,
		ambiguous:  CodeAmbiguousBoxSource,
	}
	entityForwarder = forwarder{
		capability: HasEntity,
		result:     "*Entity",
		none:       CodeNoEntitySource,
		ambiguous:  CodeAmbiguousEntitySource,
	}
	healthForwarder = forwarder{
		capability: HasHealth,
		result:     "*Health",
		none:       CodeNoHealthSource,
		ambiguous:  CodeAmbiguousHealthSource,
	}
	solidityForwarder = forwarder{
		capability: HasSolidity,
		result:     "*Solidity",
		none:       CodeNoSoliditySource,
		ambiguous:  CodeAmbiguousSoliditySource,
	}
)

// collides rejects generating a method whose name is already a field of s.
func (s *TypeShape) collides(c Capability, methods ...string) error {
	for _, m := range s.Members {
		for _, name := range methods {
			if m.Name == name {
				return s.diag(CodeUnsupportedShape, c, m.Name, fmt.Sprintf("field %s collides with the generated %s method", m.Name, name))
			}
		}
	}
	return nil
}

package derive

import "fmt"

// deriveRegisteredEntity implements engine.RegisteredEntity on an enum
// whose every variant wraps an entity.
func deriveRegisteredEntity(e *emitter, s *TypeShape) error {
	c := RegisteredEntity
	if s.Kind != KindEnum {
		return s.diag(CodeUnsupportedShape, c, "", fmt.Sprintf("RegisteredEntity can only be derived for enums, not a %s", s.Kind))
	}
	if err := s.collides(c, "EntityKind", "InnerEntity", "UUID", "MaybePlayer"); err != nil {
		return err
	}
	if err := s.uncovered(CodeIncompleteEntityCoverage, c, "does not implement HasEntity"); err != nil {
		return err
	}

	var players []*Member
	for i := range s.Members {
		m := &s.Members[i]
		if !m.Player {
			continue
		}
		if !m.Converts {
			return s.diag(CodePlayerConversionMissing, c, m.Name,
				fmt.Sprintf("player payload %s has no method To%s() %s", m.Type, s.Name, s.Name))
		}
		players = append(players, m)
	}

	r := s.receiver()
	entity := e.engine("Entity")
	e.Printf("// EntityKind implements %s. It is the name of the active variant.\n", e.engine("RegisteredEntity"))
	e.Printf("func (%s *%s) EntityKind() string {\n", r, s.Name)
	e.Printf("\treturn %s.Kind().String()\n}\n\n", r)

	e.Printf("// InnerEntity returns the entity wrapped by the active variant.\n")
	e.Printf("func (%s *%s) InnerEntity() *%s {\n", r, s.Name, entity)
	e.dispatch(s, "Entity()")
	e.Printf("}\n\n")

	e.use(uuidPath)
	e.Printf("// UUID implements %s through the inner entity.\n", e.engine("HasUuid"))
	e.Printf("func (%s *%s) UUID() uuid.UUID {\n", r, s.Name)
	e.Printf("\treturn %s.InnerEntity().UUID()\n}\n\n", r)

	for _, p := range players {
		e.use(p.Imports...)
		e.Printf("var _ interface{ To%s() %s } = (*%s)(nil)\n\n", s.Name, s.Name, p.Type)
	}
	e.assert(s, e.engine("RegisteredEntity"))

	if len(players) == 1 {
		p := players[0]
		e.Printf("// MaybePlayer returns the player payload when it is the active variant.\n")
		e.Printf("func (%s *%s) MaybePlayer() (*%s, bool) {\n", r, s.Name, p.Type)
		e.Printf("\tif %s.%s != nil {\n\t\treturn %s.%s, true\n\t}\n", r, p.Name, r, p.Name)
		e.Printf("\treturn nil, false\n}\n\n")
		e.assert(s, fmt.Sprintf("%s[*%s]", e.engine("PlayerRegistered"), p.Type))
	}
	return nil
}

package derive

import "fmt"

// deriveMaybeToAction implements engine.InputBinding on an enum of
// bindings by delegating to the active variant.
func deriveMaybeToAction(e *emitter, s *TypeShape) error {
	c := MaybeToAction
	if s.Kind != KindEnum {
		return s.diag(CodeUnsupportedShape, c, "", fmt.Sprintf("MaybeToAction can only be derived for enums, not a %s", s.Kind))
	}
	if err := s.collides(c, c.method()); err != nil {
		return err
	}
	if err := s.uncovered(CodeIncompleteConversionCoverage, c, "has no MaybeToAction(tcell.Event) (A, bool) method"); err != nil {
		return err
	}

	first := s.Members[0]
	for _, m := range s.Members[1:] {
		if m.Action != first.Action {
			d := s.diag(CodeActionTypeMismatch, c, m.Name,
				fmt.Sprintf("variant maps to %s but %s maps to %s", m.Action, first.Name, first.Action))
			d.Candidates = []string{first.Name, m.Name}
			return d
		}
	}
	s.ActionType = first.Action
	s.ActionImports = first.ActionImports

	r := s.receiver()
	iface := fmt.Sprintf("%s[%s]", e.engine(c.iface()), s.ActionType)
	e.use(tcellPath)
	e.use(s.ActionImports...)
	e.Printf("// MaybeToAction implements %s by delegating to the active\n", iface)
	e.Printf("// variant. A false result means the event has no mapping.\n")
	e.Printf("func (%s *%s) MaybeToAction(ev tcell.Event) (%s, bool) {\n", r, s.Name, s.ActionType)
	e.dispatch(s, "MaybeToAction(ev)")
	e.Printf("}\n\n")
	e.assert(s, iface)
	return nil
}

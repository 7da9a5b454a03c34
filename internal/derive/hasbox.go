package derive

// deriveHasBox forwards Box to the member tagged has_box on structs and
// tuple structs, and dispatches to the active variant on enums.
func deriveHasBox(e *emitter, s *TypeShape) error {
	if s.Kind != KindEnum {
		return boxForwarder.derive(e, s)
	}

	if err := s.collides(HasBox, "Box"); err != nil {
		return err
	}
	if err := s.uncovered(CodeIncompleteBoxCoverage, HasBox, "does not implement HasBox"); err != nil {
		return err
	}

	r := s.receiver()
	iface := e.engine(HasBox.iface())
	e.Printf("// Box implements %s by dispatching to the active variant.\n", iface)
	e.Printf("func (%s *%s) Box() *%s {\n", r, s.Name, e.engine("PhysBox"))
	e.dispatch(s, "Box()")
	e.Printf("}\n\n")
	e.assert(s, iface)
	return nil
}

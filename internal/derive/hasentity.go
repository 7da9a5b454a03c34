package derive

// deriveHasEntity forwards Entity to the member tagged has_entity.
func deriveHasEntity(e *emitter, s *TypeShape) error {
	return entityForwarder.derive(e, s)
}

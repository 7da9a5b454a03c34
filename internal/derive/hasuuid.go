package derive

// deriveHasUuid forwards UUID to the member tagged has_uuid.
func deriveHasUuid(e *emitter, s *TypeShape) error {
	return uuidForwarder.derive(e, s)
}

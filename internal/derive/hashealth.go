package derive

// deriveHasHealth forwards Health to the member tagged has_health.
func deriveHasHealth(e *emitter, s *TypeShape) error {
	return healthForwarder.derive(e, s)
}

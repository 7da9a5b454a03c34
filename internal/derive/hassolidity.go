package derive

// deriveHasSolidity forwards Solidity to the member tagged has_solidity.
func deriveHasSolidity(e *emitter, s *TypeShape) error {
	return solidityForwarder.derive(e, s)
}

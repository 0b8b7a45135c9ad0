package registry

// RegisterBuiltins registers the four built-in unit definitions. It is
// called once at startup, before Freeze; registration is explicit rather
// than an import side effect so the built-in set never depends on load
// order.
func RegisterBuiltins(r *Registry) error {
	for _, d := range []*Definition{
		squareDefinition(),
		hstDefinition(),
		flyingGeeseDefinition(),
		qstDefinition(),
	} {
		if err := r.Register(d); err != nil {
			return err
		}
	}
	return nil
}

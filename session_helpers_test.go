package ascon128 //nolint:testpackage // testing session internals

// State renders the session's permutation state as a string.
func State(s *Session) string {
	return s.state.String()
}

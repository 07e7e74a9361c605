package engine

// SeekRequest is a host-issued, token-stamped seek. Tokens increase
// monotonically; the time value may legitimately repeat (clicking the same
// marker twice restarts from it), so requests are deduplicated by token only.
type SeekRequest struct {
	Time  float64
	Token int64
}

// SubmitSeek applies a host seek request exactly once per distinct token.
// A request whose token was already consumed is ignored; a fresh token is
// applied unconditionally, even when its time equals the previous request's.
// There is no pending queue: a newer request simply supersedes whatever seek
// was in flight at the clock boundary.
func (e *Engine) SubmitSeek(req SeekRequest) error {
	if _, seen := e.seenTokens[req.Token]; seen {
		return nil
	}
	e.seenTokens[req.Token] = struct{}{}

	return e.Seek(req.Time)
}

package engine

// ToggleFullscreen requests the opposite of the current confirmed fullscreen
// state. The state flips only on the clock's FullscreenChanged notification:
// the windowing system may exit fullscreen on its own, so the notification —
// never the toggle — is the authority, mirroring the play/pause contract.
func (e *Engine) ToggleFullscreen() error {
	if e.clock == nil {
		return nil
	}

	return e.clock.SetFullscreen(!e.state.Fullscreen)
}

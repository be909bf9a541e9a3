package llm

import "sync/atomic"

// Active pairs a provider instance with the config it was built from, so a
// request can log which model actually answered it.
type Active struct {
	Provider   Provider
	ProviderId string
	ModelId    string
}

// Handle is the process-wide reference to the current provider. Reconfiguration
// swaps the whole Active value atomically; requests snapshot it once at entry
// and use that snapshot for their full lifetime.
type Handle struct {
	current atomic.Pointer[Active]
}

func NewHandle(active *Active) *Handle {
	h := &Handle{}
	h.current.Store(active)
	return h
}

// Snapshot returns the provider active at call time. The returned value never
// changes under the caller, even if Swap races with the request.
func (h *Handle) Snapshot() *Active {
	return h.current.Load()
}

// Swap atomically replaces the active provider. In-flight requests keep the
// snapshot they took at entry; the next Snapshot sees the new one.
func (h *Handle) Swap(active *Active) {
	h.current.Store(active)
}

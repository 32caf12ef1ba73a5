// pkg/events/handle.go
package events

import (
	"sync"

	"github.com/relay-run/relay/pkg/reporter"
)

// Handle owns exactly one registry entry. It is returned by Manager.Add
// and lets the caller detach that reporter again.
type Handle struct {
	id      string
	manager *Manager
	rep     reporter.Reporter
	once    sync.Once
}

// ID returns the handle's registry identifier.
func (h *Handle) ID() string { return h.id }

// Remove invokes the reporter's teardown capability if present, then
// detaches this entry from the registry. Only the first call does any
// work and returns the teardown result; later calls return nil.
func (h *Handle) Remove() error {
	var err error
	h.once.Do(func() {
		if d, ok := h.rep.(reporter.Destroyer); ok {
			err = d.Destroy()
		}
		h.manager.detach(h.id)
	})
	return err
}

// Package registry tracks live processors by name so that the different
// parts of a host process can share them without threading handles through
// every call site. Lookups and registration are safe for concurrent use;
// driving the processors themselves remains the single owner's job.
package registry

import (
	"github.com/alphadose/haxmap"
	"github.com/casualjim/relay"
)

// Registry is a concurrent map of named processors.
type Registry struct {
	procs *haxmap.Map[string, *relay.Processor]
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{
		procs: haxmap.New[string, *relay.Processor](),
	}
}

// Get returns the processor registered under name.
func (r *Registry) Get(name string) (*relay.Processor, bool) {
	return r.procs.Get(name)
}

// Add registers p under name, replacing any previous registration.
func (r *Registry) Add(name string, p *relay.Processor) {
	r.procs.Set(name, p)
}

// GetOrAdd returns the processor registered under name, constructing and
// registering one with create when none exists. The second return reports
// whether the processor was already present.
func (r *Registry) GetOrAdd(name string, create func() *relay.Processor) (*relay.Processor, bool) {
	return r.procs.GetOrCompute(name, create)
}

// Del removes the registration for name. The processor itself is not
// closed; use Shutdown for that.
func (r *Registry) Del(name string) {
	r.procs.Del(name)
}

// Names returns the names of all registered processors, in no particular
// order.
func (r *Registry) Names() []string {
	names := make([]string, 0, r.procs.Len())
	r.procs.ForEach(func(name string, _ *relay.Processor) bool {
		names = append(names, name)
		return true
	})
	return names
}

// Len returns the number of registered processors.
func (r *Registry) Len() int {
	return int(r.procs.Len())
}

// Shutdown closes every registered processor and empties the registry.
func (r *Registry) Shutdown() {
	r.procs.ForEach(func(name string, p *relay.Processor) bool {
		p.Close()
		r.procs.Del(name)
		return true
	})
}

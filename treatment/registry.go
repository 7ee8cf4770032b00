package treatment

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/katalvlaran/stormnet/core"
)

var (
	// ErrEmptyFlag indicates a registration with an empty flag.
	ErrEmptyFlag = errors.New("treatment: flag is empty")

	// ErrEmptyPollutant indicates a registration with an empty pollutant.
	ErrEmptyPollutant = errors.New("treatment: pollutant is empty")

	// ErrInvalidFunction indicates a nil or malformed performance function.
	ErrInvalidFunction = errors.New("treatment: invalid function")
)

// Registry maps treatment flag → pollutant → Function.
//
// A flag may be registered with functions for only some pollutants; the solver
// treats the rest as pass-through and reports them.
type Registry struct {
	mu  sync.RWMutex
	fns map[string]map[core.Pollutant]Function
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{fns: make(map[string]map[core.Pollutant]Function)}
}

// Register binds fn to (flag, p), replacing any previous binding.
func (r *Registry) Register(flag string, p core.Pollutant, fn Function) error {
	switch {
	case flag == "":
		return ErrEmptyFlag
	case p == "":
		return ErrEmptyPollutant
	case fn == nil:
		return fmt.Errorf("%w: nil function for %s/%s", ErrInvalidFunction, flag, p)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	byPoc, ok := r.fns[flag]
	if !ok {
		byPoc = make(map[core.Pollutant]Function)
		r.fns[flag] = byPoc
	}
	byPoc[p] = fn

	return nil
}

// Declare makes flag known without binding any pollutant.
func (r *Registry) Declare(flag string) error {
	if flag == "" {
		return ErrEmptyFlag
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.fns[flag]; !ok {
		r.fns[flag] = make(map[core.Pollutant]Function)
	}

	return nil
}

// Lookup returns the function bound to (flag, p).
func (r *Registry) Lookup(flag string, p core.Pollutant) (Function, bool) {
	if r == nil {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.fns[flag][p]

	return fn, ok
}

// HasFlag reports whether flag is known to the registry.
func (r *Registry) HasFlag(flag string) bool {
	if r == nil {
		return false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.fns[flag]

	return ok
}

// Flags returns the known flags sorted ascending.
func (r *Registry) Flags() []string {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.fns))
	for f := range r.fns {
		out = append(out, f)
	}
	sort.Strings(out)

	return out
}

package target

import (
	"fmt"
	"sort"
	"sync"
)

// Registry stores profiles by id and extension, providing discovery and
// duplication safeguards.
type Registry struct {
	mu          sync.RWMutex
	profiles    map[string]Profile
	byExtension map[string]string
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		profiles:    make(map[string]Profile),
		byExtension: make(map[string]string),
	}
}

// BuiltinRegistry returns a registry pre-seeded with the built-in table.
func BuiltinRegistry() *Registry {
	r := NewRegistry()
	for _, profile := range Builtins() {
		r.MustRegister(profile)
	}
	return r
}

// Register adds a profile. Duplicate ids or extensions return an error.
func (r *Registry) Register(profile Profile) error {
	if err := profile.validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.profiles[profile.ID]; exists {
		return fmt.Errorf("target: profile %q already registered", profile.ID)
	}
	if prior, exists := r.byExtension[profile.Extension]; exists {
		return fmt.Errorf("target: extension %q already registered by profile %q", profile.Extension, prior)
	}

	r.profiles[profile.ID] = profile
	r.byExtension[profile.Extension] = profile.ID
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(profile Profile) {
	if err := r.Register(profile); err != nil {
		panic(err)
	}
}

// Get retrieves a profile by id.
func (r *Registry) Get(id string) (Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	profile, ok := r.profiles[id]
	if !ok {
		return Profile{}, UnknownTargetError{ID: id}
	}
	return profile, nil
}

// MustGet panics if the profile is missing.
func (r *Registry) MustGet(id string) Profile {
	profile, err := r.Get(id)
	if err != nil {
		panic(err)
	}
	return profile
}

// GetByExtension retrieves a profile by its artifact file extension.
func (r *Registry) GetByExtension(ext string) (Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byExtension[ext]
	if !ok {
		return Profile{}, UnknownTargetError{ID: ext}
	}
	return r.profiles[id], nil
}

// List returns a sorted list of profile ids.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.profiles))
	for id := range r.profiles {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Has reports whether a profile id is registered.
func (r *Registry) Has(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.profiles[id]
	return ok
}

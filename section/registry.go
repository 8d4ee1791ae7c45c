package section

import (
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/arloliu/teafile/encoding"
	"github.com/arloliu/teafile/errs"
	"github.com/arloliu/teafile/format"
)

// DecodeFunc decodes one section starting at the cursor position and leaves
// the cursor at the start of the next section.
type DecodeFunc func(c *encoding.Cursor) (Section, error)

// Registry maps section ids to their decoders.
//
// A Registry is safe for concurrent use, but decoders look ids up while they
// walk, so a registry mutated during a decode may give that decode a mix of
// old and new entries. Register everything before decoding starts.
type Registry struct {
	mu       sync.RWMutex
	decoders map[format.SectionID]DecodeFunc
}

// NewRegistry creates an empty registry. Every section in a file decoded with
// it is skipped.
func NewRegistry() *Registry {
	return &Registry{decoders: make(map[format.SectionID]DecodeFunc)}
}

// DefaultRegistry creates a registry holding the four built-in sections.
// Each call returns a new registry, so callers may modify it freely.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.decoders[format.SectionItem] = DecodeItemSection
	r.decoders[format.SectionTime] = DecodeTimeSection
	r.decoders[format.SectionDescription] = DecodeDescriptionSection
	r.decoders[format.SectionNameValue] = DecodeNameValueSection

	return r
}

// Register adds a decoder for id.
//
// Returns:
//   - error: ErrDuplicateSection if id is already registered, ErrNilSectionDecoder if fn is nil
func (r *Registry) Register(id format.SectionID, fn DecodeFunc) error {
	if fn == nil {
		return fmt.Errorf("%w: %s", errs.ErrNilSectionDecoder, id)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.decoders[id]; ok {
		return fmt.Errorf("%w: %s", errs.ErrDuplicateSection, id)
	}
	r.decoders[id] = fn

	return nil
}

// Replace sets the decoder for id, overriding any existing one.
func (r *Registry) Replace(id format.SectionID, fn DecodeFunc) error {
	if fn == nil {
		return fmt.Errorf("%w: %s", errs.ErrNilSectionDecoder, id)
	}

	r.mu.Lock()
	r.decoders[id] = fn
	r.mu.Unlock()

	return nil
}

// Unregister removes the decoder for id. Sections with that id are skipped
// from then on. It reports whether a decoder was removed.
func (r *Registry) Unregister(id format.SectionID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.decoders[id]
	delete(r.decoders, id)

	return ok
}

// Lookup returns the decoder registered for id.
func (r *Registry) Lookup(id format.SectionID) (DecodeFunc, bool) {
	r.mu.RLock()
	fn, ok := r.decoders[id]
	r.mu.RUnlock()

	return fn, ok
}

// IDs returns the registered ids in ascending order.
func (r *Registry) IDs() []format.SectionID {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Sorted(maps.Keys(r.decoders))
}

// Clone returns an independent copy of the registry.
func (r *Registry) Clone() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return &Registry{decoders: maps.Clone(r.decoders)}
}

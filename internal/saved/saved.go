// Package saved maintains the user-curated list of saved job ids,
// mirrored to persistent storage on every mutation.
package saved

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jimezsa/oppcli/internal/store"
)

// Key is the storage key the serialized id list lives under.
const Key = "savedJobs"

// Set is the saved job ids in the order they were saved. Ids are not
// validated against the catalog: toggling an unknown id is a valid add,
// and a saved id with no matching job is simply never rendered.
type Set struct {
	kv    store.KV
	ids   []string
	index map[string]struct{}
}

// Load rehydrates the saved set from kv. Absent or malformed persisted
// content initializes an empty set rather than failing; only storage
// read errors are returned.
func Load(kv store.KV) (*Set, error) {
	s := &Set{kv: kv, index: map[string]struct{}{}}

	raw, ok, err := kv.Get(Key)
	if err != nil {
		return nil, fmt.Errorf("read saved list: %w", err)
	}
	if !ok || strings.TrimSpace(raw) == "" {
		return s, nil
	}

	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		// Malformed history is treated as empty, not surfaced.
		return s, nil
	}
	for _, id := range ids {
		if _, exists := s.index[id]; exists {
			continue
		}
		s.index[id] = struct{}{}
		s.ids = append(s.ids, id)
	}
	return s, nil
}

// Toggle adds the id if absent and removes it if present, then writes
// the full list back through the store. It reports whether the id is
// saved after the toggle.
func (s *Set) Toggle(id string) (saved bool, err error) {
	if _, exists := s.index[id]; exists {
		delete(s.index, id)
		for i, existing := range s.ids {
			if existing == id {
				s.ids = append(s.ids[:i], s.ids[i+1:]...)
				break
			}
		}
	} else {
		s.index[id] = struct{}{}
		s.ids = append(s.ids, id)
		saved = true
	}

	if err := s.persist(); err != nil {
		return saved, err
	}
	return saved, nil
}

// Contains reports whether id is currently saved.
func (s *Set) Contains(id string) bool {
	_, ok := s.index[id]
	return ok
}

// Size returns the number of saved ids.
func (s *Set) Size() int {
	return len(s.ids)
}

// IDs returns the saved ids in save order.
func (s *Set) IDs() []string {
	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out
}

func (s *Set) persist() error {
	ids := s.ids
	if ids == nil {
		ids = []string{}
	}
	data, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	if err := s.kv.Set(Key, string(data)); err != nil {
		return fmt.Errorf("write saved list: %w", err)
	}
	return nil
}

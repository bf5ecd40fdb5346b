// Package memory contains the in-process implementation of the persistence layer.
package memory

import (
	"slices"
	"sync"

	"medreminder/internal/domain/entity"
	"medreminder/internal/domain/repository"

	"github.com/google/uuid"
)

// medicationStore implements the repository.MedicationStore interface.
type medicationStore struct {
	mu      sync.RWMutex
	entries []*entity.MedicationEntry
}

// NewMedicationStore is the constructor for an empty medicationStore.
func NewMedicationStore() repository.MedicationStore {
	return &medicationStore{
		entries: make([]*entity.MedicationEntry, 0),
	}
}

// Add appends the entry. Entries with the same name and time are kept side by side.
func (s *medicationStore) Add(entry *entity.MedicationEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append(s.entries, entry)
}

// Remove deletes the entry with the given ID, keeping the order of the rest.
func (s *medicationStore) Remove(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = slices.DeleteFunc(s.entries, func(entry *entity.MedicationEntry) bool {
		return entry.ID == id
	})
}

// List returns a snapshot in insertion order.
func (s *medicationStore) List() []*entity.MedicationEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.entries)
}

// ByCategory partitions the current entries into their time-of-day buckets.
func (s *medicationStore) ByCategory() entity.CategorizedMedications {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return entity.Categorize(s.entries)
}

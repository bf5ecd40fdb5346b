// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"medreminder/internal/domain/entity"

	"github.com/google/uuid"
)

// MedicationStore is the ordered collection of medication entries owned by one screen session.
type MedicationStore interface {
	// Add appends an entry. Entries are not de-duplicated by name or time.
	Add(entry *entity.MedicationEntry)

	// Remove deletes the entry with the given ID. Unknown IDs are a no-op.
	Remove(id uuid.UUID)

	// List returns a snapshot of the entries in insertion order.
	List() []*entity.MedicationEntry

	// ByCategory partitions the live collection into time-of-day buckets.
	ByCategory() entity.CategorizedMedications
}

package usecase

import "github.com/google/uuid"

// SessionUsecase tracks mounted medication screens. Each mount owns its own entries.
type SessionUsecase interface {
	// Mount starts a session with an empty medication collection.
	Mount() uuid.UUID

	// Get returns the controller of a mounted session.
	Get(id uuid.UUID) (MedicationUsecase, error)

	// Unmount discards a session and everything it holds.
	Unmount(id uuid.UUID) error

	// Count is the number of mounted sessions.
	Count() int
}

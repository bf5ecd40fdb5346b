package impl

import (
	"log/slog"
	"sync"

	domainerrors "medreminder/internal/domain/errors"
	"medreminder/internal/domain/repository"
	"medreminder/internal/domain/service"
	"medreminder/internal/usecase"

	"github.com/google/uuid"
)

// StoreFactory builds the empty store a newly mounted screen starts with.
type StoreFactory func() repository.MedicationStore

type sessionRegistry struct {
	newStore  StoreFactory
	reminders usecase.ReminderUsecase
	clock     service.Clock
	logger    *slog.Logger

	mu       sync.RWMutex
	sessions map[uuid.UUID]usecase.MedicationUsecase
}

// NewSessionRegistry creates the registry of mounted medication screens
func NewSessionRegistry(
	logger *slog.Logger,
	newStore StoreFactory,
	reminders usecase.ReminderUsecase,
	clock service.Clock,
) usecase.SessionUsecase {
	return &sessionRegistry{
		newStore:  newStore,
		reminders: reminders,
		clock:     clock,
		logger:    logger,
		sessions:  make(map[uuid.UUID]usecase.MedicationUsecase),
	}
}

// Mount opens a session whose controller owns a fresh, empty store.
func (r *sessionRegistry) Mount() uuid.UUID {
	id := uuid.New()
	controller := NewMedicationController(
		r.logger.With(slog.String("session_id", id.String())),
		r.newStore(),
		r.reminders,
		r.clock,
	)

	r.mu.Lock()
	r.sessions[id] = controller
	r.mu.Unlock()

	r.logger.Info("session mounted", slog.String("session_id", id.String()))

	return id
}

func (r *sessionRegistry) Get(id uuid.UUID) (usecase.MedicationUsecase, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	controller, ok := r.sessions[id]
	if !ok {
		return nil, domainerrors.ErrSessionNotFound
	}

	return controller, nil
}

// Unmount drops the session together with its entries. Reminders it armed stay with the host.
func (r *sessionRegistry) Unmount(id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[id]; !ok {
		return domainerrors.ErrSessionNotFound
	}
	delete(r.sessions, id)

	r.logger.Info("session unmounted", slog.String("session_id", id.String()))

	return nil
}

func (r *sessionRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.sessions)
}

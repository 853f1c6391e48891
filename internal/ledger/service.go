package ledger

import (
	"fmt"
	"log/slog"

	"github.com/umsatz-dev/umsatz/internal/model"
	"github.com/umsatz-dev/umsatz/internal/store"
)

// Service provides business logic over the persisted collection.
type Service struct {
	st  store.Store
	log *slog.Logger
}

// NewService creates a ledger Service on top of a blob store.
func NewService(st store.Store, log *slog.Logger) *Service {
	return &Service{st: st, log: log}
}

// Transactions loads the stored collection. A malformed blob decodes
// to an empty collection rather than an error, so the system stays
// usable after corruption.
func (s *Service) Transactions() ([]model.Transaction, error) {
	data, err := s.st.Load(store.KeyTransactions)
	if err != nil {
		return nil, fmt.Errorf("loading transactions: %w", err)
	}
	return store.DecodeTransactions(data), nil
}

// ImportBatch merges a parsed batch into the stored collection and
// persists the result. The save happens once, after the whole merge
// succeeds: a failing import leaves stored state exactly as it was.
func (s *Service) ImportBatch(batch []model.Transaction) (added, duplicates int, err error) {
	existing, err := s.Transactions()
	if err != nil {
		return 0, 0, err
	}

	merged, added, duplicates := Merge(batch, existing)

	data, err := store.EncodeTransactions(merged)
	if err != nil {
		return 0, 0, err
	}
	if err := s.st.Save(store.KeyTransactions, data); err != nil {
		return 0, 0, fmt.Errorf("saving transactions: %w", err)
	}

	s.log.Info("import merged",
		"batch", len(batch),
		"added", added,
		"duplicates", duplicates,
		"total", len(merged))
	return added, duplicates, nil
}

// Theme returns the persisted theme preference, or "" if unset.
func (s *Service) Theme() (string, error) {
	data, err := s.st.Load(store.KeyTheme)
	if err != nil {
		return "", fmt.Errorf("loading theme: %w", err)
	}
	return string(data), nil
}

// SetTheme persists the theme preference.
func (s *Service) SetTheme(theme string) error {
	if err := s.st.Save(store.KeyTheme, []byte(theme)); err != nil {
		return fmt.Errorf("saving theme: %w", err)
	}
	return nil
}

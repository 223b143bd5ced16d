package storage

import (
	"fmt"

	"kcisum/internal/config"
	"kcisum/internal/domain"
)

// Store returns boot test records by status label
type Store interface {
	GetStatus(status string) ([]domain.Record, error)
}

// Open returns the store backend selected by the config.
// The returned close function releases backend resources and is never nil.
func Open(cfg *config.Config) (Store, func() error, error) {
	switch cfg.Store {
	case config.StoreJSON:
		return NewJSONStore(cfg.RecordsPath, cfg.PathsToIgnore), func() error { return nil }, nil
	case config.StoreMySQL:
		st, err := OpenMySQL(cfg.GetDatabaseSettings(), cfg.Table)
		if err != nil {
			return nil, nil, err
		}
		return st, st.Close, nil
	default:
		return nil, nil, domain.NewConfigError(fmt.Sprintf("unknown store %q", cfg.Store), nil)
	}
}

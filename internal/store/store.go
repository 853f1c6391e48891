// Package store persists opaque blobs under logical keys and owns the
// codec for the transaction collection. Two backends exist: plain
// files in a data directory, and a single-table SQLite database.
package store

// Keys for the persisted values.
const (
	KeyTransactions = "transactions"
	KeyTheme        = "theme"
)

// Store is a key-value blob store. Load returns nil with no error for
// a key that was never saved.
type Store interface {
	Load(key string) ([]byte, error)
	Save(key string, value []byte) error
	Close() error
}

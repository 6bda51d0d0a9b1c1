package store

// Storage keys. Each key holds a single JSON document.
const (
	KeyTheme    = "pomodoro:theme"
	KeySettings = "pomodoro:settings"
	KeyState    = "pomodoro:state"
	KeyTasks    = "pomodoro:tasks"
)

// DB is the database storage interface.
type DB interface {
	// Get returns the document stored under key. A missing key yields a nil
	// slice and no error
	Get(key string) ([]byte, error)
	// Put creates or overwrites the document stored under key
	Put(key string, value []byte) error
	// Delete removes the document stored under key. Deleting a missing key is
	// not an error
	Delete(key string) error
	// Close ends the database connection
	Close() error
	// Open begins a database connection
	Open() error
}

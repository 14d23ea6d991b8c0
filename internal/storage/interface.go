package storage

// Provider is a durable string-keyed store. Each piece of tracker state is
// serialized under its own key and written synchronously on mutation.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Entries
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error

	// Utils
	GetDataPath() string
}

package storage

// Medium is a synchronous string key-value storage supplied by the host
// environment. Reads report presence, writes may fail (full disk, read-only
// medium, disabled storage).
type Medium interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Remove(key string) error
	Close() error
}

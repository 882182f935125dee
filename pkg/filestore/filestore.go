package filestore

// Store persists opaque file blobs under caller-chosen keys.
type Store interface {
	// Put writes data under key and returns a locator usable to serve it.
	Put(key string, data []byte) (string, error)
	Delete(key string) error
}

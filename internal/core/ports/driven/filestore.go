package driven

// FileStore persists downloaded content.
type FileStore interface {
	// Write stores data under dir using a name derived from title and ext.
	// index is the result's position and is used when title yields no usable name.
	// Returns the path written.
	Write(dir, title string, index int, ext string, data []byte) (string, error)
}

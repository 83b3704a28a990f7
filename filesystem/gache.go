package filesystem

import (
	"io"
	"os"
)

// GacheFs lets gache caches read and write through the active backend,
// so swapping to the in-memory fs also redirects cached files.
type GacheFs struct{}

func (GacheFs) OpenFile(name string, flag int, perm os.FileMode) (io.ReadWriteCloser, error) {
	return API().OpenFile(name, flag, perm)
}

func (GacheFs) MkdirAll(path string, perm os.FileMode) error {
	return API().MkdirAll(path, perm)
}

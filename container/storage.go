package container

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/arloliu/hwp5/errs"
)

// Container is a read-only view of a stream tree.
type Container interface {
	// Exists reports whether a stream is stored at path.
	Exists(path string) bool
	// Open returns the bytes of the stream at path, or errs.ErrStreamNotFound.
	Open(path string) ([]byte, error)
	// List returns every stream path in sorted order.
	List() []string
}

// Storage is an in-memory Container. Storage nodes are implied by the stream paths
// beneath them.
//
// Storage is not safe for concurrent mutation.
type Storage struct {
	streams  map[string][]byte
	readOnly bool
}

var _ Container = (*Storage)(nil)

// NewStorage creates an empty writable Storage.
func NewStorage() *Storage {
	return &Storage{streams: make(map[string][]byte)}
}

// CleanPath normalizes a stream path: backslashes become slashes and leading, trailing
// and repeated separators are removed.
func CleanPath(path string) string {
	path = strings.ReplaceAll(path, "\\", "/")
	parts := strings.FieldsFunc(path, func(r rune) bool { return r == '/' })

	return strings.Join(parts, "/")
}

// Create stores data at path, replacing any existing stream. The Storage keeps data
// without copying.
func (s *Storage) Create(path string, data []byte) error {
	if s.readOnly {
		return fmt.Errorf("%w: storage is read-only", errs.ErrInvalidArgument)
	}
	clean := CleanPath(path)
	if clean == "" {
		return fmt.Errorf("%w: empty stream path %q", errs.ErrInvalidArgument, path)
	}
	for dir := range parents(clean) {
		if _, ok := s.streams[dir]; ok {
			return fmt.Errorf("%w: %q is a stream, not a storage", errs.ErrInvalidArgument, dir)
		}
	}
	if s.isStorage(clean) {
		return fmt.Errorf("%w: %q is a storage, not a stream", errs.ErrInvalidArgument, clean)
	}
	s.streams[clean] = data

	return nil
}

// Exists implements Container.
func (s *Storage) Exists(path string) bool {
	_, ok := s.streams[CleanPath(path)]
	return ok
}

// Open implements Container. The returned slice is shared with the Storage.
func (s *Storage) Open(path string) ([]byte, error) {
	data, ok := s.streams[CleanPath(path)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", errs.ErrStreamNotFound, path)
	}

	return data, nil
}

// List implements Container.
func (s *Storage) List() []string {
	paths := make([]string, 0, len(s.streams))
	for p := range s.streams {
		paths = append(paths, p)
	}
	slices.Sort(paths)

	return paths
}

// Storages returns every storage path implied by the stream paths, sorted.
func (s *Storage) Storages() []string {
	seen := make(map[string]struct{})
	for p := range s.streams {
		for dir := range parents(p) {
			seen[dir] = struct{}{}
		}
	}

	out := make([]string, 0, len(seen))
	for dir := range seen {
		out = append(out, dir)
	}
	slices.Sort(out)

	return out
}

// Len returns the number of streams.
func (s *Storage) Len() int {
	return len(s.streams)
}

// Size returns the total number of stream bytes.
func (s *Storage) Size() int64 {
	var n int64
	for _, data := range s.streams {
		n += int64(len(data))
	}

	return n
}

func (s *Storage) isStorage(path string) bool {
	prefix := path + "/"
	for p := range s.streams {
		if strings.HasPrefix(p, prefix) {
			return true
		}
	}

	return false
}

// parents yields the storage prefixes of a clean stream path, outermost first.
func parents(path string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for i := range len(path) {
			if path[i] == '/' && !yield(path[:i]) {
				return
			}
		}
	}
}

package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/custodia-labs/gsearch/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.FileStore = (*Store)(nil)

// maxNameBytes caps the sanitised title, leaving room for suffix and extension.
const maxNameBytes = 200

// Store writes downloads to the local filesystem.
type Store struct {
	mu    sync.Mutex
	taken map[string]bool
}

// NewStore creates a new filesystem store.
// Name deduplication applies to files written through the same Store.
func NewStore() *Store {
	return &Store{taken: make(map[string]bool)}
}

// Write stores data as {dir}/{sanitised title}.{ext}.
func (s *Store) Write(dir, title string, index int, ext string, data []byte) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	name := SanitizeName(title)
	if name == "" {
		name = fmt.Sprintf("result-%d", index+1)
	}
	ext = SanitizeName(ext)
	if ext == "" {
		ext = "unknown"
	}

	path := filepath.Join(dir, s.reserve(dir, name, ext))

	tmp := filepath.Join(dir, "."+uuid.NewString()+".part")
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		_ = os.Remove(tmp)
		s.release(path)
		return "", fmt.Errorf("write file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		s.release(path)
		return "", fmt.Errorf("rename file: %w", err)
	}

	return path, nil
}

// reserve returns a file name not yet handed out by this store.
func (s *Store) reserve(dir, name, ext string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	file := name + "." + ext
	for i := 2; s.taken[filepath.Join(dir, file)]; i++ {
		file = fmt.Sprintf("%s-%d.%s", name, i, ext)
	}
	s.taken[filepath.Join(dir, file)] = true
	return file
}

// release frees a name whose write failed.
func (s *Store) release(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.taken, path)
}

// SanitizeName makes a title safe to use as a single path element.
// Path separators, reserved characters and control characters become "_";
// leading and trailing spaces and dots are removed; the result is capped
// at maxNameBytes without splitting a UTF-8 sequence.
func SanitizeName(title string) string {
	var b strings.Builder
	for _, r := range title {
		switch {
		case r == '/' || r == '\\' || r == ':' || r == '*' || r == '?' ||
			r == '"' || r == '<' || r == '>' || r == '|':
			b.WriteRune('_')
		case unicode.IsControl(r) || r == utf8.RuneError:
			b.WriteRune('_')
		default:
			b.WriteRune(r)
		}
	}

	name := strings.Trim(b.String(), " .")
	if len(name) > maxNameBytes {
		cut := maxNameBytes
		for cut > 0 && !utf8.RuneStart(name[cut]) {
			cut--
		}
		name = strings.TrimRight(name[:cut], " .")
	}
	return name
}

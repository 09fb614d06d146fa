package auth

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"socialnet-cli/shared"
)

// Store persists the session across process restarts.
type Store interface {
	Save(session shared.Session) error
	Read() (shared.Session, error)
	Clear() error
}

// FileStore keeps the session as JSON in a single file.
type FileStore struct {
	path string
	mu   sync.Mutex
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Path() string {
	return s.path
}

// Save replaces both tokens at once: the new file is written beside the old
// one and renamed over it.
func (s *FileStore) Save(session shared.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	bytes, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("error marshalling auth: %v", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".auth-*.json")
	if err != nil {
		return fmt.Errorf("error creating temp auth file: %v", err)
	}
	tmpPath := tmp.Name()

	_, err = tmp.Write(bytes)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("error writing auth: %v", err)
	}

	err = os.Chmod(tmpPath, 0600)
	if err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("error setting auth file mode: %v", err)
	}

	err = os.Rename(tmpPath, s.path)
	if err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("error writing auth: %v", err)
	}

	return nil
}

// Read returns the stored session. A missing file yields an empty session.
func (s *FileStore) Read() (shared.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bytes, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return shared.Session{}, nil
		}
		return shared.Session{}, fmt.Errorf("error reading auth.json: %v", err)
	}

	var session shared.Session
	err = json.Unmarshal(bytes, &session)
	if err != nil {
		return shared.Session{}, fmt.Errorf("error unmarshalling auth.json: %v", err)
	}

	return session, nil
}

func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("error removing auth.json: %v", err)
	}

	return nil
}

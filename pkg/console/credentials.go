package console

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// Login modes are the non-authoritative UI hint for which portal the user
// intended to sign in to. The hint picks the post-login landing view; it
// never overrides the server-asserted role.
const (
	LoginModeAdmin    = "admin"
	LoginModeEmployee = "employee"
)

// CredentialStore persists the bearer token and the login-mode hint between
// runs. It is owned by the session resolver; view code never sees the raw
// credential.
type CredentialStore interface {
	Token() string
	SetToken(token string) error
	// ClearToken removes the persisted credential but keeps the login-mode
	// hint, matching the behavior of a logout.
	ClearToken() error
	LoginMode() string
	SetLoginMode(mode string) error
}

// FileStore keeps credentials in a mode-0600 JSON file, the CLI equivalent
// of browser local storage.
type FileStore struct {
	path string

	mu    sync.Mutex
	state fileState
}

type fileState struct {
	Token     string `json:"token,omitempty"`
	LoginMode string `json:"login_mode,omitempty"`
}

// NewFileStore loads (or initialises) the credential file at path. A missing
// file is an empty store, not an error.
func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{path: path}

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}
		return nil, err
	}
	if err := json.Unmarshal(raw, &s.state); err != nil {
		// A corrupt credential file degrades to logged-out.
		s.state = fileState{}
	}
	return s, nil
}

// DefaultStorePath returns the conventional credential file location under
// the user config directory.
func DefaultStorePath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "hrconsole", "credentials.json"), nil
}

func (s *FileStore) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Token
}

func (s *FileStore) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Token = token
	return s.flush()
}

func (s *FileStore) ClearToken() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Token = ""
	return s.flush()
}

func (s *FileStore) LoginMode() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.LoginMode
}

func (s *FileStore) SetLoginMode(mode string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.LoginMode = mode
	return s.flush()
}

func (s *FileStore) flush() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	raw, err := json.Marshal(s.state)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, 0o600)
}

// MemoryStore is an in-memory CredentialStore for tests and ephemeral use.
type MemoryStore struct {
	mu    sync.Mutex
	state fileState
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Token
}

func (s *MemoryStore) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Token = token
	return nil
}

func (s *MemoryStore) ClearToken() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Token = ""
	return nil
}

func (s *MemoryStore) LoginMode() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.LoginMode
}

func (s *MemoryStore) SetLoginMode(mode string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.LoginMode = mode
	return nil
}

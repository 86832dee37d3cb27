package profile

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/strat-chain/strat-go/crypto"
)

const (
	vaultFile   = "credential.vault"
	sessionFile = "session.json"

	// SessionDuration is how long an unlocked credential stays usable
	SessionDuration = 30 * time.Minute
)

var (
	ErrNoCredential = errors.New("no credential stored. Run 'strat login' first")
	ErrLocked       = errors.New("credential is locked. Run 'strat unlock' first")
)

// SessionData holds an unlocked credential until it expires
type SessionData struct {
	Token      string    `json:"token"`
	Credential string    `json:"credential"`
	APIURL     string    `json:"api_url"`
	Expiration time.Time `json:"expiration"`
}

// Manager stores the bearer credential for one API URL under a profile directory
type Manager struct {
	dir         string
	vaultPath   string
	sessionPath string
	mu          sync.Mutex
	now         func() time.Time
}

// NewManager creates a manager rooted at dir
func NewManager(dir string) *Manager {
	return &Manager{
		dir:         dir,
		vaultPath:   filepath.Join(dir, vaultFile),
		sessionPath: filepath.Join(dir, sessionFile),
		now:         time.Now,
	}
}

// HasCredential reports whether a sealed credential exists
func (m *Manager) HasCredential() bool {
	_, err := os.Stat(m.vaultPath)
	return err == nil
}

// SaveCredential seals credential with passphrase and replaces any stored one.
// An existing session is cleared.
func (m *Manager) SaveCredential(credential, passphrase string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	vault, err := crypto.Seal(credential, passphrase)
	if err != nil {
		return fmt.Errorf("failed to seal credential: %w", err)
	}

	if err := os.MkdirAll(m.dir, 0700); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	data, err := json.Marshal(vault)
	if err != nil {
		return fmt.Errorf("failed to marshal vault: %w", err)
	}

	if err := os.WriteFile(m.vaultPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write vault file: %w", err)
	}

	m.clearSession()
	return nil
}

// Unlock opens the stored credential and starts a session bound to apiURL
func (m *Manager) Unlock(passphrase, apiURL string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	vault, err := m.loadVault()
	if err != nil {
		return err
	}

	credential, err := vault.Open(passphrase)
	if err != nil {
		return fmt.Errorf("failed to unlock credential: %w", err)
	}

	return m.createSession(credential, apiURL)
}

// Credential returns the unlocked credential for apiURL. Expired or
// mismatched sessions yield ErrLocked; expired ones are removed.
func (m *Manager) Credential(apiURL string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.HasCredential() {
		return "", ErrNoCredential
	}

	session, ok := m.loadSession()
	if !ok || session.APIURL != apiURL {
		return "", ErrLocked
	}

	return session.Credential, nil
}

// Lock ends the current session
func (m *Manager) Lock() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.clearSession()
}

// Forget removes the stored credential and any session
func (m *Manager) Forget() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.clearSession()
	if err := os.Remove(m.vaultPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove vault file: %w", err)
	}
	return nil
}

func generateSessionToken() (string, error) {
	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(tokenBytes), nil
}

func (m *Manager) createSession(credential, apiURL string) error {
	token, err := generateSessionToken()
	if err != nil {
		return fmt.Errorf("failed to generate session token: %w", err)
	}

	data, err := json.Marshal(SessionData{
		Token:      token,
		Credential: credential,
		APIURL:     apiURL,
		Expiration: m.now().Add(SessionDuration),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := os.WriteFile(m.sessionPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}

	return nil
}

func (m *Manager) loadSession() (*SessionData, bool) {
	data, err := os.ReadFile(m.sessionPath)
	if err != nil {
		return nil, false
	}

	var session SessionData
	if err := json.Unmarshal(data, &session); err != nil {
		// corrupted
		m.clearSession()
		return nil, false
	}

	if m.now().After(session.Expiration) {
		m.clearSession()
		return nil, false
	}

	return &session, true
}

func (m *Manager) clearSession() {
	_ = os.Remove(m.sessionPath)
}

func (m *Manager) loadVault() (*crypto.Vault, error) {
	data, err := os.ReadFile(m.vaultPath)
	if os.IsNotExist(err) {
		return nil, ErrNoCredential
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read vault file: %w", err)
	}

	var vault crypto.Vault
	if err := json.Unmarshal(data, &vault); err != nil {
		return nil, fmt.Errorf("failed to unmarshal vault: %w", err)
	}

	return &vault, nil
}

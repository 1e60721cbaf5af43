package wallet

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ethereum/go-ethereum/crypto"
)

// Errors.
var (
	ErrAccountNotFound = errors.New("account not found")
	ErrAccountExists   = errors.New("account already exists")
	ErrInvalidKey      = errors.New("invalid private key")
)

// Account holds metadata for a single signing account.
type Account struct {
	Name      string
	Address   string
	KeyRef    string // keychain reference for the private key
	IsDefault bool
	CreatedAt string
}

// Store is an interface for persisting accounts.
type Store interface {
	Load() ([]*Account, error)
	Save([]*Account) error
}

// Manager handles account CRUD.
type Manager struct {
	store    Store
	keystore KeystoreBackend
	accounts map[string]*Account
	loaded   bool
}

// Option configures a Manager.
type Option func(*Manager)

// WithStore sets a custom store.
func WithStore(s Store) Option {
	return func(m *Manager) {
		m.store = s
	}
}

// WithKeystore sets a custom keystore backend (in-memory for tests).
func WithKeystore(ks KeystoreBackend) Option {
	return func(m *Manager) {
		m.keystore = ks
	}
}

// NewManager creates a new account manager.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		accounts: make(map[string]*Account),
		store:    &memStore{},
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.keystore == nil {
		m.keystore = DefaultKeystore()
	}
	return m
}

// Import derives an EVM address from a hex private key and stores the account.
// The private key goes into the keystore, never into the accounts file.
func (m *Manager) Import(name, hexKey string) (*Account, error) {
	if err := m.load(); err != nil {
		return nil, err
	}
	if _, exists := m.accounts[name]; exists {
		return nil, ErrAccountExists
	}

	privKey, err := crypto.HexToECDSA(stripHexPrefix(hexKey))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}

	addr := crypto.PubkeyToAddress(privKey.PublicKey).Hex()

	ref, err := m.keystore.Store(name, hexKey)
	if err != nil {
		return nil, fmt.Errorf("storing key: %w", err)
	}

	a := &Account{
		Name:      name,
		Address:   addr,
		KeyRef:    ref,
		IsDefault: len(m.accounts) == 0,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	m.accounts[name] = a
	return a, m.persist()
}

// Generate creates a fresh key, stores it, and returns the account together
// with the hex private key so the caller can show it exactly once.
func (m *Manager) Generate(name string) (*Account, string, error) {
	privKey, err := crypto.GenerateKey()
	if err != nil {
		return nil, "", fmt.Errorf("generating key: %w", err)
	}
	hexKey := "0x" + fmt.Sprintf("%064x", privKey.D)

	a, err := m.Import(name, hexKey)
	if err != nil {
		return nil, "", err
	}
	return a, hexKey, nil
}

// ExportKey returns the stored private key for an account.
func (m *Manager) ExportKey(name string) (string, error) {
	a, err := m.Get(name)
	if err != nil {
		return "", err
	}
	return m.keystore.Retrieve(a.KeyRef)
}

// Get returns an account by name.
func (m *Manager) Get(name string) (*Account, error) {
	if err := m.load(); err != nil {
		return nil, err
	}
	a, ok := m.accounts[name]
	if !ok {
		return nil, ErrAccountNotFound
	}
	return a, nil
}

// Remove deletes an account and evicts its key from the keystore.
func (m *Manager) Remove(name string) error {
	if err := m.load(); err != nil {
		return err
	}
	a, ok := m.accounts[name]
	if !ok {
		return ErrAccountNotFound
	}
	if a.KeyRef != "" {
		_ = m.keystore.Delete(a.KeyRef)
	}
	delete(m.accounts, name)
	return m.persist()
}

// List returns all accounts.
func (m *Manager) List() []*Account {
	m.load() //nolint:errcheck
	out := make([]*Account, 0, len(m.accounts))
	for _, a := range m.accounts {
		out = append(out, a)
	}
	return out
}

// SetDefault marks an account as the default.
func (m *Manager) SetDefault(name string) error {
	if err := m.load(); err != nil {
		return err
	}
	if _, ok := m.accounts[name]; !ok {
		return ErrAccountNotFound
	}
	for _, a := range m.accounts {
		a.IsDefault = a.Name == name
	}
	return m.persist()
}

// Default returns the default account, or nil if none.
func (m *Manager) Default() *Account {
	m.load() //nolint:errcheck
	for _, a := range m.accounts {
		if a.IsDefault {
			return a
		}
	}
	// Fallback: return first account if only one exists.
	if len(m.accounts) == 1 {
		for _, a := range m.accounts {
			return a
		}
	}
	return nil
}

// Keystore returns the backend used for private keys.
func (m *Manager) Keystore() KeystoreBackend {
	return m.keystore
}

// --- internal ---

func (m *Manager) load() error {
	if m.loaded {
		return nil
	}
	accounts, err := m.store.Load()
	if err != nil {
		return err
	}
	for _, a := range accounts {
		m.accounts[a.Name] = a
	}
	m.loaded = true
	return nil
}

func (m *Manager) persist() error {
	accounts := make([]*Account, 0, len(m.accounts))
	for _, a := range m.accounts {
		accounts = append(accounts, a)
	}
	return m.store.Save(accounts)
}

func stripHexPrefix(s string) string {
	if len(s) >= 2 && s[:2] == "0x" {
		return s[2:]
	}
	return s
}

// --- in-memory store ---

type memStore struct {
	accounts []*Account
}

func (s *memStore) Load() ([]*Account, error) {
	return s.accounts, nil
}

func (s *memStore) Save(accounts []*Account) error {
	s.accounts = accounts
	return nil
}

// --- JSON file store ---

// JSONStore persists accounts to a JSON file.
type JSONStore struct {
	path string
}

// NewJSONStore creates a JSON-backed account store.
func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

func (s *JSONStore) Load() ([]*Account, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var accounts []*Account
	if err := json.Unmarshal(data, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

func (s *JSONStore) Save(accounts []*Account) error {
	data, err := json.MarshalIndent(accounts, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

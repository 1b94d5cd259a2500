// Package keystore implements a password-protected file store for symmetric
// key material, addressed by alias.
//
// The store uses a fixed on-disk format ("sks1"): a JSON envelope carrying
// scrypt KDF parameters and an AES-256-GCM sealed entry table. Opening a
// store requires the store password; recovering an individual key requires
// that entry's key password. Each entry seals its key material under its own
// salt and nonce, so the store password alone never exposes keys.
//
// Store contents are sealed at Save time and entries are sealed at SetKey
// time; an in-memory Store never holds raw key material for entries other
// than the one currently being set or read.
package keystore

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"

	"golang.org/x/crypto/scrypt"
)

// Format identifies the on-disk keystore format. It is fixed; stores written
// by this package always carry it and stores without it are rejected.
const Format = "sks1"

// scrypt parameters for both the store and entry key derivation.
const (
	scryptN = 1 << 15
	scryptR = 8
	scryptP = 1

	saltSize = 16
	kekSize  = 32
)

var (
	// ErrFormat indicates the file is not a recognized keystore.
	ErrFormat = errors.New("unrecognized keystore format")

	// ErrAuth indicates a password mismatch or tampered store content.
	ErrAuth = errors.New("keystore authentication failed")

	// ErrNoKey indicates the requested alias is not present in the store.
	ErrNoKey = errors.New("key alias not found")
)

// entry is one sealed key, recoverable only with its key password.
type entry struct {
	Salt  []byte `json:"salt"`
	Nonce []byte `json:"nonce"`
	Key   []byte `json:"key"`
}

type kdfParams struct {
	Salt []byte `json:"salt"`
	N    int    `json:"n"`
	R    int    `json:"r"`
	P    int    `json:"p"`
}

// envelope is the outer on-disk structure. Data holds the GCM-sealed JSON
// entry table.
type envelope struct {
	Format string    `json:"format"`
	KDF    kdfParams `json:"kdf"`
	Nonce  []byte    `json:"nonce"`
	Data   []byte    `json:"data"`
}

// Store is an in-memory keystore holding sealed entries.
//
// Store is not safe for concurrent use.
type Store struct {
	entries map[string]entry
}

// New creates an empty keystore.
func New() *Store {
	return &Store{entries: make(map[string]entry)}
}

// SetKey seals key material under the given alias and key password,
// replacing any existing entry with the same alias.
func (s *Store) SetKey(alias, password string, key []byte) error {
	salt, nonce, sealed, err := seal(password, key)
	if err != nil {
		return fmt.Errorf("sealing key %q: %w", alias, err)
	}

	s.entries[alias] = entry{Salt: salt, Nonce: nonce, Key: sealed}

	return nil
}

// Key recovers the key material stored under alias using its key password.
//
// Returns ErrNoKey when the alias is absent and ErrAuth when the password
// does not match or the entry has been tampered with.
func (s *Store) Key(alias, password string) ([]byte, error) {
	e, ok := s.entries[alias]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoKey, alias)
	}

	key, err := unseal(password, e.Salt, e.Nonce, e.Key)
	if err != nil {
		return nil, fmt.Errorf("%w: key %q", ErrAuth, alias)
	}

	return key, nil
}

// Aliases returns the aliases present in the store, sorted.
func (s *Store) Aliases() []string {
	aliases := make([]string, 0, len(s.entries))
	for alias := range s.entries {
		aliases = append(aliases, alias)
	}
	sort.Strings(aliases)

	return aliases
}

// Save seals the entry table under the store password and writes the
// envelope to path with 0600 permissions.
func (s *Store) Save(path, password string) error {
	table, err := json.Marshal(s.entries)
	if err != nil {
		return fmt.Errorf("encoding keystore entries: %w", err)
	}

	salt, nonce, sealed, err := seal(password, table)
	if err != nil {
		return fmt.Errorf("sealing keystore: %w", err)
	}

	env := envelope{
		Format: Format,
		KDF:    kdfParams{Salt: salt, N: scryptN, R: scryptR, P: scryptP},
		Nonce:  nonce,
		Data:   sealed,
	}

	data, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("encoding keystore envelope: %w", err)
	}

	return os.WriteFile(path, data, 0o600)
}

// Open reads the keystore at path and decodes its entry table using the
// store password.
//
// Returns ErrFormat for files that are not sks1 keystores and ErrAuth when
// the store password does not match or the content has been tampered with.
func Open(path, password string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading keystore %q: %w", path, err)
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrFormat, err)
	}
	if env.Format != Format {
		return nil, fmt.Errorf("%w: %q", ErrFormat, env.Format)
	}

	kek, err := scrypt.Key([]byte(password), env.KDF.Salt, env.KDF.N, env.KDF.R, env.KDF.P, kekSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrFormat, err)
	}

	table, err := gcmOpen(kek, env.Nonce, env.Data)
	if err != nil {
		return nil, fmt.Errorf("%w: store password rejected", ErrAuth)
	}

	entries := make(map[string]entry)
	if err := json.Unmarshal(table, &entries); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrFormat, err)
	}

	return &Store{entries: entries}, nil
}

func seal(password string, plaintext []byte) (salt, nonce, sealed []byte, err error) {
	salt = make([]byte, saltSize)
	if _, err = rand.Read(salt); err != nil {
		return nil, nil, nil, err
	}

	kek, err := scrypt.Key([]byte(password), salt, scryptN, scryptR, scryptP, kekSize)
	if err != nil {
		return nil, nil, nil, err
	}

	aead, err := newGCM(kek)
	if err != nil {
		return nil, nil, nil, err
	}

	nonce = make([]byte, aead.NonceSize())
	if _, err = rand.Read(nonce); err != nil {
		return nil, nil, nil, err
	}

	return salt, nonce, aead.Seal(nil, nonce, plaintext, nil), nil
}

func unseal(password string, salt, nonce, sealed []byte) ([]byte, error) {
	kek, err := scrypt.Key([]byte(password), salt, scryptN, scryptR, scryptP, kekSize)
	if err != nil {
		return nil, err
	}

	return gcmOpen(kek, nonce, sealed)
}

func gcmOpen(kek, nonce, sealed []byte) ([]byte, error) {
	aead, err := newGCM(kek)
	if err != nil {
		return nil, err
	}
	if len(nonce) != aead.NonceSize() {
		return nil, errors.New("invalid nonce size")
	}

	return aead.Open(nil, nonce, sealed, nil)
}

func newGCM(kek []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(kek)
	if err != nil {
		return nil, err
	}

	return cipher.NewGCM(block)
}

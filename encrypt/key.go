package encrypt

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"

	"github.com/arloliu/tuplecodec/keystore"
)

// Algorithm is the symmetric algorithm this package encrypts with. It is
// fixed; keys are always AES keys.
const Algorithm = "AES"

// generatedKeySize is the size of generated keys in bytes (AES-256).
const generatedKeySize = 32

// SecretKey is opaque symmetric key material bound to the fixed algorithm.
//
// A SecretKey is immutable once constructed and safe to share read-only
// across pipeline replicas. It is never formatted into logs or errors in
// cleartext; String returns a redacted description.
type SecretKey struct {
	material []byte
}

// NewSecretKey wraps existing key material.
//
// The material is accepted as opaque: no size validation happens here, so an
// invalid key surfaces at first cipher use, not at construction.
func NewSecretKey(material []byte) SecretKey {
	key := make([]byte, len(material))
	copy(key, material)

	return SecretKey{material: key}
}

// GenerateSecretKey creates a fresh random 256-bit key.
func GenerateSecretKey() (SecretKey, error) {
	material := make([]byte, generatedKeySize)
	if _, err := rand.Read(material); err != nil {
		return SecretKey{}, fmt.Errorf("generating key: %w", err)
	}

	return SecretKey{material: material}, nil
}

// Len returns the key size in bytes.
func (k SecretKey) Len() int {
	return len(k.material)
}

// Equal reports whether two keys hold the same material, in constant time.
func (k SecretKey) Equal(other SecretKey) bool {
	return subtle.ConstantTimeCompare(k.material, other.material) == 1
}

// String returns a redacted description of the key.
func (k SecretKey) String() string {
	return fmt.Sprintf("SecretKey(%s, %d bytes)", Algorithm, len(k.material))
}

// KeySource selects one of the three key provisioning strategies for the
// encrypting codec. Construct one with Generate, Static, or Keystore and
// pass it to New; resolution happens once, at codec construction.
type KeySource interface {
	resolve() (SecretKey, error)
}

// Generate provisions a fresh random key. The key exists only inside the
// codec instance; use Static with a shared key when the decoding side runs
// in a different process.
func Generate() KeySource {
	return generateSource{}
}

// Static provisions a caller-supplied key. The key value is accepted as
// opaque.
func Static(key SecretKey) KeySource {
	return staticSource{key: key}
}

// Keystore provisions a key loaded from a password-protected keystore file,
// described by a property bundle (see Properties). All five properties are
// required; construction fails with ErrMissingConfig when any is absent and
// with ErrKeyLoad when the store cannot be opened or the alias resolved.
func Keystore(props Properties) KeySource {
	return keystoreSource{props: props}
}

type generateSource struct{}

func (generateSource) resolve() (SecretKey, error) {
	return GenerateSecretKey()
}

type staticSource struct {
	key SecretKey
}

func (s staticSource) resolve() (SecretKey, error) {
	return s.key, nil
}

type keystoreSource struct {
	props Properties
}

func (s keystoreSource) resolve() (SecretKey, error) {
	if err := s.props.validate(); err != nil {
		return SecretKey{}, err
	}

	store, err := keystore.Open(s.props[PropKeystoreName], s.props[PropKeystorePassword])
	if err != nil {
		return SecretKey{}, fmt.Errorf("%w: %s", ErrKeyLoad, err)
	}

	material, err := store.Key(s.props[PropKeyAlias], s.props[PropKeyPassword])
	if err != nil {
		return SecretKey{}, fmt.Errorf("%w: %s", ErrKeyLoad, err)
	}

	return NewSecretKey(material), nil
}

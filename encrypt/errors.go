package encrypt

import "errors"

// Sentinel errors for the encrypting codec. Wrapped errors carry the fault
// detail; check with errors.Is.
var (
	// ErrMissingConfig indicates a required keystore configuration property
	// is absent. Detected at construction, before any key material is read.
	ErrMissingConfig = errors.New("missing keystore configuration property")

	// ErrKeyLoad indicates the keystore resource could not be opened or
	// decoded, or the configured alias could not be resolved to a key.
	ErrKeyLoad = errors.New("loading key from keystore failed")

	// ErrEncrypt indicates the cipher rejected the key or input while
	// encrypting a tuple. The fault is fatal for that tuple; the codec does
	// not retry.
	ErrEncrypt = errors.New("tuple encryption failed")

	// ErrDecrypt indicates the cipher rejected the key, the ciphertext
	// length, or the padding while decrypting a tuple. Callers must treat
	// the input as malformed or tampered, not retry it.
	ErrDecrypt = errors.New("tuple decryption failed")
)

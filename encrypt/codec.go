// Package encrypt provides a tuple codec decorator that transparently
// encrypts serialized tuples with AES.
//
// The decorator wraps any codec.Codec: serialization and deserialization
// pass through the inner codec, and only the byte representation travelling
// between pipeline stages is encrypted. Partitioning is computed on the
// plaintext logical value, so wrapping a codec never changes how tuples are
// distributed across downstream workers.
//
// Keys are provisioned at construction time via a KeySource: generated
// fresh, supplied directly, or loaded from a password-protected keystore
// file. Once constructed the key is fixed for the codec's lifetime.
//
// A Codec is not safe for concurrent use by multiple goroutines; replicated
// pipeline stages must construct one instance per replica, sharing the
// SecretKey read-only.
//
// This package assumes the surrounding transport is otherwise trusted; it
// does not implement key exchange, key rotation, or authenticated
// encryption.
package encrypt

import (
	"fmt"

	"github.com/arloliu/tuplecodec/codec"
)

// Codec decorates an inner tuple codec with transparent AES encryption of
// the serialized byte representation.
type Codec[T any] struct {
	inner codec.Codec[T]
	state cipherState
}

var _ codec.Codec[string] = (*Codec[string])(nil)

// New creates an encrypting codec around inner, with the key provisioned by
// src.
//
// Key resolution happens here, once: keystore-backed sources read their file
// now, so no I/O remains on the tuple hot path. Construction fails with
// ErrMissingConfig or ErrKeyLoad for keystore-backed sources that cannot be
// resolved.
func New[T any](inner codec.Codec[T], src KeySource) (*Codec[T], error) {
	key, err := src.resolve()
	if err != nil {
		return nil, err
	}

	return &Codec[T]{inner: inner, state: cipherState{key: key}}, nil
}

// Key returns the codec's secret key, for wiring replica instances with the
// same key.
func (c *Codec[T]) Key() SecretKey {
	return c.state.key
}

// Serialize serializes value with the inner codec and encrypts the
// resulting bytes.
//
// Only the region the inner codec's view references is encrypted, honoring
// its offset and length. The returned Slice covers a fresh ciphertext
// buffer at offset zero. Fails with ErrEncrypt when the cipher rejects the
// key material.
func (c *Codec[T]) Serialize(value T) (codec.Slice, error) {
	plain, err := c.inner.Serialize(value)
	if err != nil {
		return codec.Slice{}, fmt.Errorf("inner serialize: %w", err)
	}

	ciphertext, err := c.state.encrypt(plain.Bytes())
	if err != nil {
		return codec.Slice{}, err
	}

	return codec.New(ciphertext), nil
}

// Deserialize decrypts the referenced byte region and reconstructs the
// logical value with the inner codec.
//
// The input must be ciphertext produced with the same key. Fails with
// ErrDecrypt on any length, padding, or key fault; callers must treat that
// as a malformed or tampered tuple, not retry it.
func (c *Codec[T]) Deserialize(data codec.Slice) (T, error) {
	plain, err := c.state.decrypt(data.Bytes())
	if err != nil {
		var zero T
		return zero, err
	}

	return c.inner.Deserialize(codec.New(plain))
}

// PartitionKey forwards to the inner codec on the original logical value.
// Encryption is invisible to routing.
func (c *Codec[T]) PartitionKey(value T) (int32, error) {
	return c.inner.PartitionKey(value)
}

package encrypt

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

// direction is the configured mode of the cipher engine.
type direction uint8

const (
	directionNone direction = iota
	directionEncrypt
	directionDecrypt
)

func (d direction) String() string {
	switch d {
	case directionNone:
		return "Uninitialized"
	case directionEncrypt:
		return "Encrypt"
	case directionDecrypt:
		return "Decrypt"
	default:
		return "Unknown"
	}
}

// cipherState owns one AES block cipher and tracks which direction it is
// currently configured for.
//
// The block cipher (including its expanded key schedule) is built once, on
// first use, and never rebuilt. Switching direction only swaps the cheap ECB
// mode wrapper around the same block, so steady-state call patterns — all
// encrypt on the sending side, all decrypt on the receiving side — pay the
// reconfiguration at most once.
//
// Not safe for concurrent use: direction switching is an unsynchronized
// mutation. Replicated pipeline stages need one cipherState each.
type cipherState struct {
	key   SecretKey
	block cipher.Block
	dir   direction
	mode  cipher.BlockMode
}

// configure lazily builds the block cipher and points the mode wrapper in
// the requested direction. A no-op when the direction already matches.
func (c *cipherState) configure(dir direction) error {
	if c.block == nil {
		block, err := aes.NewCipher(c.key.material)
		if err != nil {
			return fmt.Errorf("creating cipher: %w", err)
		}
		c.block = block
	}

	if c.dir != dir {
		c.dir = dir
		switch dir {
		case directionEncrypt:
			c.mode = ecbEncrypter{c.block}
		case directionDecrypt:
			c.mode = ecbDecrypter{c.block}
		}
	}

	return nil
}

// encrypt pads src to the block size and encrypts it, returning a fresh
// ciphertext buffer. src is not modified.
func (c *cipherState) encrypt(src []byte) ([]byte, error) {
	if err := c.configure(directionEncrypt); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrEncrypt, err)
	}

	padded := pkcs7Pad(src, aes.BlockSize)
	c.mode.CryptBlocks(padded, padded)

	return padded, nil
}

// decrypt decrypts src and strips the padding, returning a fresh plaintext
// buffer. src is not modified.
func (c *cipherState) decrypt(src []byte) ([]byte, error) {
	if err := c.configure(directionDecrypt); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrDecrypt, err)
	}

	if len(src) == 0 || len(src)%aes.BlockSize != 0 {
		return nil, fmt.Errorf("%w: ciphertext length %d is not a positive multiple of the block size",
			ErrDecrypt, len(src))
	}

	plain := make([]byte, len(src))
	c.mode.CryptBlocks(plain, src)

	out, err := pkcs7Unpad(plain, aes.BlockSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrDecrypt, err)
	}

	return out, nil
}

// ecbEncrypter applies the block cipher block-by-block in the encrypt
// direction. Ciphertext is deterministic for a given key and plaintext;
// identical plaintext blocks produce identical ciphertext blocks.
type ecbEncrypter struct {
	b cipher.Block
}

func (e ecbEncrypter) BlockSize() int { return e.b.BlockSize() }

func (e ecbEncrypter) CryptBlocks(dst, src []byte) {
	bs := e.b.BlockSize()
	for len(src) > 0 {
		e.b.Encrypt(dst, src[:bs])
		src = src[bs:]
		dst = dst[bs:]
	}
}

// ecbDecrypter is the decrypt direction of ecbEncrypter over the same block.
type ecbDecrypter struct {
	b cipher.Block
}

func (d ecbDecrypter) BlockSize() int { return d.b.BlockSize() }

func (d ecbDecrypter) CryptBlocks(dst, src []byte) {
	bs := d.b.BlockSize()
	for len(src) > 0 {
		d.b.Decrypt(dst, src[:bs])
		src = src[bs:]
		dst = dst[bs:]
	}
}

// pkcs7Pad returns a new buffer holding src extended to a whole number of
// blocks; every padding byte holds the padding length. Input that is already
// block-aligned gains a full block of padding.
func pkcs7Pad(src []byte, blockSize int) []byte {
	n := blockSize - len(src)%blockSize
	padded := make([]byte, len(src)+n)
	copy(padded, src)
	for i := len(src); i < len(padded); i++ {
		padded[i] = byte(n)
	}

	return padded
}

// pkcs7Unpad validates and strips the padding appended by pkcs7Pad.
func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, fmt.Errorf("invalid padded length %d", len(data))
	}

	n := int(data[len(data)-1])
	if n == 0 || n > blockSize || n > len(data) {
		return nil, fmt.Errorf("invalid padding length %d", n)
	}
	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, fmt.Errorf("inconsistent padding")
		}
	}

	return data[:len(data)-n], nil
}

package pad

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"

	"golang.org/x/crypto/argon2"
)

// Derivation parameters for FromPassphrase. Both sides must use the same
// passphrase and salt to arrive at the same pad.
const (
	deriveTime    = 4
	deriveMemory  = 64 * 1024
	deriveThreads = 1
)

var ErrEmptyPassphrase = errors.New("cannot use an empty passphrase")

// Generate will generate a pad with the given number of bits from the OS
// entropy pool.
func Generate(length int) (Pad, error) {
	if length <= 0 {
		return nil, fmt.Errorf("asked to generate a %d-bit pad", length)
	}
	buf := make([]byte, (length+7)/8)
	n, err := rand.Read(buf)
	if n < len(buf) {
		return nil, fmt.Errorf("failed to read requested bytes: %v", err)
	}
	return unpackBits(buf, length), nil
}

// GenerateOffset generates a pad along with a random starting offset into it.
func GenerateOffset(length int) (Pad, int, error) {
	p, err := Generate(length)
	if err != nil {
		return nil, 0, err
	}
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		return nil, 0, err
	}
	return p, int(binary.BigEndian.Uint32(buf)) % length, nil
}

// FromPassphrase derives a pad of the given number of bits from a passphrase
// and salt using Argon2id. The derivation is deterministic, so two parties
// sharing the passphrase and salt hold the same pad without exchanging a file.
func FromPassphrase(passphrase, salt []byte, length int) (Pad, error) {
	if len(passphrase) == 0 {
		return nil, ErrEmptyPassphrase
	}
	if length <= 0 {
		return nil, fmt.Errorf("asked to derive a %d-bit pad", length)
	}
	key := argon2.IDKey(passphrase, salt, deriveTime, deriveMemory, deriveThreads, uint32((length+7)/8))
	return unpackBits(key, length), nil
}

func unpackBits(buf []byte, length int) Pad {
	bits := make(Pad, length)
	for i := range bits {
		bits[i] = buf[i/8]>>(i%8)&1 == 1
	}
	return bits
}

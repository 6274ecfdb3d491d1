package chainkey

import (
	"fmt"
	"io"
	"runtime"

	"golang.org/x/crypto/curve25519"
)

// RatchetPublicKey is the sender's currently active Curve25519 ratchet public key.
type RatchetPublicKey [KeySize]byte

// String returns the hex encoding of the public key.
func (k RatchetPublicKey) String() string {
	return fmt.Sprintf("%x", k[:])
}

// Bytes returns a copy of the public key as a slice.
func (k RatchetPublicKey) Bytes() []byte {
	return append([]byte(nil), k[:]...)
}

// ParseRatchetPublicKey copies a 32-byte public key as received in a message header.
func ParseRatchetPublicKey(b []byte) (RatchetPublicKey, error) {
	var k RatchetPublicKey
	if len(b) != KeySize {
		return k, fmt.Errorf("ratchet public key has %d bytes: %w", len(b), ErrInvalidLength)
	}
	copy(k[:], b)
	return k, nil
}

// RatchetKeyPair is a Curve25519 ratchet key pair. Only the public half is
// consumed by the chains; the private half belongs to the DH ratchet.
type RatchetKeyPair struct {
	privateKey Key
	publicKey  RatchetPublicKey
}

// GenerateRatchetKeyPair returns a new key pair with a clamped private key read from rand.
func GenerateRatchetKeyPair(rand io.Reader) (*RatchetKeyPair, error) {
	p := &RatchetKeyPair{}
	if _, err := io.ReadFull(rand, p.privateKey[:]); err != nil {
		return nil, fmt.Errorf("couldn't generate privKey: %s", err)
	}
	p.privateKey[0] &= 248
	p.privateKey[31] &= 127
	p.privateKey[31] |= 64

	pub, err := curve25519.X25519(p.privateKey[:], curve25519.Basepoint)
	if err != nil {
		p.Wipe()
		return nil, fmt.Errorf("couldn't derive pubKey: %s", err)
	}
	copy(p.publicKey[:], pub)
	runtime.SetFinalizer(p, (*RatchetKeyPair).Wipe)

	return p, nil
}

// PrivateKey returns a copy of the private key.
func (p *RatchetKeyPair) PrivateKey() Key {
	return p.privateKey
}

// PublicKey returns the public key.
func (p *RatchetKeyPair) PublicKey() RatchetPublicKey {
	return p.publicKey
}

// Wipe overwrites the private key with zeros.
func (p *RatchetKeyPair) Wipe() {
	p.privateKey.Wipe()
}

// String describes the pair by its public key only.
func (p *RatchetKeyPair) String() string {
	return fmt.Sprintf("RatchetKeyPair{publicKey: %s}", p.publicKey)
}

// GoString describes the pair by its public key only.
func (p *RatchetKeyPair) GoString() string {
	return p.String()
}

package chainkey

// KeySize is the size of chain keys, message keys and ratchet public keys.
const KeySize = 32

// Key is a 32-byte secret: a chain key or the material of a message key.
type Key [KeySize]byte

const redacted = "[redacted]"

// String doesn't reveal the key.
func (k Key) String() string {
	return redacted
}

// GoString doesn't reveal the key.
func (k Key) GoString() string {
	return redacted
}

// Wipe overwrites the key with zeros.
func (k *Key) Wipe() {
	wipeBytes(k[:])
}

// IsZero reports whether all bytes of the key are zero.
func (k *Key) IsZero() bool {
	var acc byte
	for _, b := range k {
		acc |= b
	}
	return acc == 0
}

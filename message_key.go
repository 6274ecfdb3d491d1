package chainkey

import "fmt"

// MessageKey is a one-time key for a single outgoing message.
type MessageKey struct {
	key        Key
	ratchetKey RatchetPublicKey
	index      uint64
}

// Key returns a copy of the key material. The caller wipes it after encrypting.
func (k *MessageKey) Key() Key {
	return k.key
}

// RatchetKey returns the ratchet public key the message key is bound to.
func (k *MessageKey) RatchetKey() RatchetPublicKey {
	return k.ratchetKey
}

// Index returns the position in the chain the key was derived at.
func (k *MessageKey) Index() uint64 {
	return k.index
}

// Wipe overwrites the key material with zeros.
func (k *MessageKey) Wipe() {
	k.key.Wipe()
}

// String describes the key without revealing its material.
func (k *MessageKey) String() string {
	return fmt.Sprintf("MessageKey{index: %d, ratchetKey: %s}", k.index, k.ratchetKey)
}

// GoString describes the key without revealing its material.
func (k *MessageKey) GoString() string {
	return k.String()
}

// RemoteMessageKey is a one-time key for a single incoming message.
type RemoteMessageKey struct {
	key   Key
	index uint64
}

// Key returns a copy of the key material. The caller wipes it after decrypting.
func (k *RemoteMessageKey) Key() Key {
	return k.key
}

// Index returns the position in the chain the key was derived at.
func (k *RemoteMessageKey) Index() uint64 {
	return k.index
}

// Wipe overwrites the key material with zeros.
func (k *RemoteMessageKey) Wipe() {
	k.key.Wipe()
}

// String describes the key without revealing its material.
func (k *RemoteMessageKey) String() string {
	return fmt.Sprintf("RemoteMessageKey{index: %d}", k.index)
}

// GoString describes the key without revealing its material.
func (k *RemoteMessageKey) GoString() string {
	return k.String()
}

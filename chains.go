package chainkey

import (
	"fmt"
	"runtime"
)

// chain is the symmetric-key ratchet shared by the sending and the receiving side.
// Operations on it are NOT THREAD-SAFE, make sure they're done in sequence.
type chain struct {
	noCopy noCopy

	// 32-byte chain key.
	ck Key

	// Number of the next message key derived from the chain.
	n uint64
}

func (c *chain) advance() {
	advanceChainKey(&c.ck, &c.ck)
	c.n++
}

// step writes the message key material for the current position to mk,
// advances the chain and returns the position mk belongs to.
func (c *chain) step(mk *Key) uint64 {
	expandChainKey(&c.ck, mk)
	n := c.n
	c.advance()
	return n
}

func (c *chain) wipe() {
	c.ck.Wipe()
}

// ChainKey is the sending chain. Every message key it creates is bound to the
// ratchet public key the sender uses at that moment.
type ChainKey struct {
	chain
}

// NewChainKey returns a sending chain at index 0 seeded with the chain key
// produced by the DH ratchet step. The caller should wipe its copy of seed.
func NewChainKey(seed Key) *ChainKey {
	c := &ChainKey{}
	c.ck = seed
	runtime.SetFinalizer(c, (*ChainKey).Wipe)
	return c
}

// RestoreChainKey returns a sending chain positioned at index. The pairing of
// key and index isn't validated; it must come from a previously valid chain.
func RestoreChainKey(key Key, index uint32) *ChainKey {
	c := NewChainKey(key)
	c.n = uint64(index)
	return c
}

// Index returns the index of the next message key.
func (c *ChainKey) Index() uint64 {
	return c.n
}

// Advance replaces the chain key with its successor without creating a message key.
func (c *ChainKey) Advance() {
	c.advance()
}

// CreateMessageKey derives the message key for the current index, binds it to
// ratchetKey and advances the chain.
func (c *ChainKey) CreateMessageKey(ratchetKey RatchetPublicKey) *MessageKey {
	mk := &MessageKey{ratchetKey: ratchetKey}
	mk.index = c.step(&mk.key)
	runtime.SetFinalizer(mk, (*MessageKey).Wipe)
	return mk
}

// Wipe overwrites the chain key with zeros. The chain must not be used afterwards.
func (c *ChainKey) Wipe() {
	c.wipe()
}

// String describes the chain without revealing its key.
func (c *ChainKey) String() string {
	return fmt.Sprintf("ChainKey{index: %d}", c.n)
}

// GoString describes the chain without revealing its key.
func (c *ChainKey) GoString() string {
	return c.String()
}

// RemoteChainKey is the receiving chain. Its message keys carry no ratchet key:
// the receiver already knows it from the message header.
type RemoteChainKey struct {
	chain
}

// NewRemoteChainKey returns a receiving chain at index 0 seeded with seed.
func NewRemoteChainKey(seed Key) *RemoteChainKey {
	c := &RemoteChainKey{}
	c.ck = seed
	runtime.SetFinalizer(c, (*RemoteChainKey).Wipe)
	return c
}

// RestoreRemoteChainKey returns a receiving chain positioned at index.
func RestoreRemoteChainKey(key Key, index uint32) *RemoteChainKey {
	c := NewRemoteChainKey(key)
	c.n = uint64(index)
	return c
}

// Index returns the index of the next message key.
func (c *RemoteChainKey) Index() uint64 {
	return c.n
}

// Advance replaces the chain key with its successor without creating a message key.
func (c *RemoteChainKey) Advance() {
	c.advance()
}

// CreateMessageKey derives the message key for the current index and advances the chain.
func (c *RemoteChainKey) CreateMessageKey() *RemoteMessageKey {
	mk := &RemoteMessageKey{}
	mk.index = c.step(&mk.key)
	runtime.SetFinalizer(mk, (*RemoteMessageKey).Wipe)
	return mk
}

// Wipe overwrites the chain key with zeros. The chain must not be used afterwards.
func (c *RemoteChainKey) Wipe() {
	c.wipe()
}

// String describes the chain without revealing its key.
func (c *RemoteChainKey) String() string {
	return fmt.Sprintf("RemoteChainKey{index: %d}", c.n)
}

// GoString describes the chain without revealing its key.
func (c *RemoteChainKey) GoString() string {
	return c.String()
}

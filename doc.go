// Package chainkey implements the symmetric-key ratchet of the Double Ratchet
// Algorithm as used by Olm: a chain key is turned into one message key and one
// successor chain key per message, with HMAC-SHA256 over the constants 0x01
// (message key) and 0x02 (next chain key).
//
// ChainKey is the sending side and binds every message key to the sender's
// ratchet public key. RemoteChainKey is the receiving side.
//
// Values holding secrets have a Wipe method. Call it as soon as the value is
// no longer needed, typically with defer:
//
//	ck := chainkey.NewChainKey(seed)
//	defer ck.Wipe()
//
//	mk := ck.CreateMessageKey(ratchetPair.PublicKey())
//	defer mk.Wipe()
//
// None of the types are safe for concurrent use.
package chainkey

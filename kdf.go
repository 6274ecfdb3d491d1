package chainkey

import (
	"crypto/hmac"
	"crypto/sha256"
	"fmt"
)

const (
	messageKeySeed  = 0x01
	advancementSeed = 0x02
)

// expandChainKey writes the message key material of the chain key ck to mk:
// HMAC-SHA256 keyed by ck over the single byte 0x01.
func expandChainKey(ck, mk *Key) {
	chainKdf(ck, messageKeySeed, mk)
}

// advanceChainKey writes the successor of the chain key ck to next:
// HMAC-SHA256 keyed by ck over the single byte 0x02. ck and next may alias.
func advanceChainKey(ck, next *Key) {
	chainKdf(ck, advancementSeed, next)
}

func chainKdf(ck *Key, seed byte, out *Key) {
	h := hmac.New(sha256.New, ck[:])

	// hash.Hash never returns an error on Write; if it does, the build is broken
	// and continuing would hand out wrong keys.
	if _, err := h.Write([]byte{seed}); err != nil {
		panic(fmt.Sprintf("chainkey: can't compute HMAC-SHA256 with a 32-byte key: %s", err))
	}

	var sum [sha256.Size]byte
	h.Sum(sum[:0])
	copy(out[:], sum[:])
	wipeBytes(sum[:])
}

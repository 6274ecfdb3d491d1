package chainkey

// rawChainKey exposes the memory backing the chain key of c.
func rawChainKey(c *chain) []byte {
	return c.ck[:]
}

// rawMessageKey exposes the memory backing the material of k.
func rawMessageKey(k *MessageKey) []byte {
	return k.key[:]
}

// rawRemoteMessageKey exposes the memory backing the material of k.
func rawRemoteMessageKey(k *RemoteMessageKey) []byte {
	return k.key[:]
}

// captureDecodedKeys makes the CBOR decoder report every key buffer it wipes.
func captureDecodedKeys() (captured *[][]byte, restore func()) {
	var bufs [][]byte
	orig := wipeDecoded
	wipeDecoded = func(b []byte) {
		bufs = append(bufs, b)
		orig(b)
	}
	return &bufs, func() { wipeDecoded = orig }
}

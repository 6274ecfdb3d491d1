package chainkey

import (
	"runtime"

	"github.com/awnumar/memguard"
)

func wipeBytes(b []byte) {
	memguard.WipeBytes(b)
	runtime.KeepAlive(b)
}

// noCopy may be embedded into structs which must not be copied
// after the first use. See https://golang.org/issues/8005#issuecomment-190753527.
type noCopy struct{}

// Lock is a no-op used by -copylocks checker from `go vet`.
func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

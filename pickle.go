package chainkey

import (
	"encoding/binary"
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// RecordSize is the size of the binary record of a chain: key followed by a
// big-endian uint32 index.
const RecordSize = KeySize + 4

// cborChain is the structured form of a persisted chain.
type cborChain struct {
	Key   []byte `cbor:"1,keyasint"`
	Index uint64 `cbor:"2,keyasint"`
}

// wipeDecoded erases key bytes allocated by the CBOR decoder.
var wipeDecoded = wipeBytes

func (c *chain) marshalBinary() ([]byte, error) {
	if c.n > MaxIndex {
		return nil, fmt.Errorf("can't persist chain at index %d: %w", c.n, ErrIndexOutOfRange)
	}
	b := make([]byte, RecordSize)
	copy(b, c.ck[:])
	binary.BigEndian.PutUint32(b[KeySize:], uint32(c.n))
	return b, nil
}

func (c *chain) unmarshalBinary(data []byte) error {
	if len(data) != RecordSize {
		return fmt.Errorf("chain record has %d bytes, want %d: %w", len(data), RecordSize, ErrInvalidLength)
	}
	copy(c.ck[:], data[:KeySize])
	c.n = uint64(binary.BigEndian.Uint32(data[KeySize:]))
	return nil
}

func (c *chain) marshalCBOR() ([]byte, error) {
	if c.n > MaxIndex {
		return nil, fmt.Errorf("can't persist chain at index %d: %w", c.n, ErrIndexOutOfRange)
	}
	return cbor.Marshal(cborChain{Key: c.ck[:], Index: c.n})
}

func (c *chain) unmarshalCBOR(data []byte) error {
	var tmp cborChain
	// The decoder fills tmp.Key before it reports errors in later fields.
	defer func() { wipeDecoded(tmp.Key) }()
	if err := cbor.Unmarshal(data, &tmp); err != nil {
		return fmt.Errorf("can't decode chain: %w", err)
	}

	if len(tmp.Key) != KeySize {
		return fmt.Errorf("chain key has %d bytes: %w", len(tmp.Key), ErrInvalidLength)
	}
	if tmp.Index > MaxIndex {
		return fmt.Errorf("chain index %d: %w", tmp.Index, ErrIndexOutOfRange)
	}
	copy(c.ck[:], tmp.Key)
	c.n = tmp.Index
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler. The record holds the live
// chain key and must be protected at rest.
func (c *ChainKey) MarshalBinary() ([]byte, error) {
	return c.marshalBinary()
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (c *ChainKey) UnmarshalBinary(data []byte) error {
	return c.unmarshalBinary(data)
}

// MarshalCBOR implements cbor.Marshaler.
func (c *ChainKey) MarshalCBOR() ([]byte, error) {
	return c.marshalCBOR()
}

// UnmarshalCBOR implements cbor.Unmarshaler.
func (c *ChainKey) UnmarshalCBOR(data []byte) error {
	return c.unmarshalCBOR(data)
}

// MarshalBinary implements encoding.BinaryMarshaler. The record holds the live
// chain key and must be protected at rest.
func (c *RemoteChainKey) MarshalBinary() ([]byte, error) {
	return c.marshalBinary()
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (c *RemoteChainKey) UnmarshalBinary(data []byte) error {
	return c.unmarshalBinary(data)
}

// MarshalCBOR implements cbor.Marshaler.
func (c *RemoteChainKey) MarshalCBOR() ([]byte, error) {
	return c.marshalCBOR()
}

// UnmarshalCBOR implements cbor.Unmarshaler.
func (c *RemoteChainKey) UnmarshalCBOR(data []byte) error {
	return c.unmarshalCBOR(data)
}

package domain

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionMetadata_Encode(t *testing.T) {
	t.Run("known layout", func(t *testing.T) {
		meta := SessionMetadata{
			PlateHash: make([]byte, 32),
			LotID:     "LOT-001",
			EntryTime: 1700000000,
		}

		encoded, err := meta.Encode()
		require.NoError(t, err)

		// 32 hash + 1 length + 7 lot id + 4 entry time
		assert.Len(t, encoded, 44)
		assert.Equal(t, make([]byte, 32), encoded[:32])
		assert.Equal(t, byte(7), encoded[32])
		assert.Equal(t, []byte("LOT-001"), encoded[33:40])
		// 1700000000 == 0x6553f100 big-endian
		assert.Equal(t, []byte{0x65, 0x53, 0xf1, 0x00}, encoded[40:44])
	})

	t.Run("empty lot id", func(t *testing.T) {
		meta := SessionMetadata{PlateHash: make([]byte, 32)}

		encoded, err := meta.Encode()
		require.NoError(t, err)
		assert.Len(t, encoded, MinEncodedSize)
	})

	t.Run("plate hash too short", func(t *testing.T) {
		meta := SessionMetadata{PlateHash: make([]byte, 31), LotID: "LOT-001"}

		_, err := meta.Encode()
		assert.ErrorIs(t, err, ErrInvalidPlateHashSize)
	})

	t.Run("plate hash too long", func(t *testing.T) {
		meta := SessionMetadata{PlateHash: make([]byte, 33)}

		_, err := meta.Encode()
		assert.ErrorIs(t, err, ErrInvalidPlateHashSize)
	})

	t.Run("lot id at the 255-byte limit", func(t *testing.T) {
		meta := SessionMetadata{
			PlateHash: make([]byte, 32),
			LotID:     strings.Repeat("a", 255),
		}

		encoded, err := meta.Encode()
		require.NoError(t, err)
		assert.Len(t, encoded, MinEncodedSize+255)
	})

	t.Run("lot id over the limit", func(t *testing.T) {
		meta := SessionMetadata{
			PlateHash: make([]byte, 32),
			LotID:     strings.Repeat("a", 256),
		}

		_, err := meta.Encode()
		assert.ErrorIs(t, err, ErrLotIDTooLong)
	})

	t.Run("multibyte lot id measured in bytes not runes", func(t *testing.T) {
		// 128 two-byte runes encode to 256 bytes
		meta := SessionMetadata{
			PlateHash: make([]byte, 32),
			LotID:     strings.Repeat("é", 128),
		}

		_, err := meta.Encode()
		assert.ErrorIs(t, err, ErrLotIDTooLong)
	})
}

func TestDecodeSessionMetadata(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		hash := bytes.Repeat([]byte{0xab}, 32)
		meta := SessionMetadata{
			PlateHash: hash,
			LotID:     "garage-42/level-3",
			EntryTime: 1700000000,
		}

		encoded, err := meta.Encode()
		require.NoError(t, err)

		decoded, err := DecodeSessionMetadata(encoded)
		require.NoError(t, err)
		assert.Equal(t, meta, decoded)
	})

	t.Run("round trip with zero hash scenario", func(t *testing.T) {
		meta := SessionMetadata{
			PlateHash: make([]byte, 32),
			LotID:     "LOT-001",
			EntryTime: 1700000000,
		}

		encoded, err := meta.Encode()
		require.NoError(t, err)
		require.Len(t, encoded, 44)

		decoded, err := DecodeSessionMetadata(encoded)
		require.NoError(t, err)
		assert.Equal(t, meta, decoded)
	})

	t.Run("entry time boundaries", func(t *testing.T) {
		for _, entryTime := range []uint32{0, 1, 4294967295} {
			meta := SessionMetadata{
				PlateHash: make([]byte, 32),
				LotID:     "L",
				EntryTime: entryTime,
			}

			encoded, err := meta.Encode()
			require.NoError(t, err)

			decoded, err := DecodeSessionMetadata(encoded)
			require.NoError(t, err)
			assert.Equal(t, entryTime, decoded.EntryTime)
		}
	})

	t.Run("buffer below minimum size", func(t *testing.T) {
		_, err := DecodeSessionMetadata(make([]byte, MinEncodedSize-1))
		assert.ErrorIs(t, err, ErrTruncatedMetadata)
	})

	t.Run("lot id length byte disagrees with buffer length", func(t *testing.T) {
		meta := SessionMetadata{PlateHash: make([]byte, 32), LotID: "LOT-001"}
		encoded, err := meta.Encode()
		require.NoError(t, err)

		// Claim a longer lot id than the buffer carries.
		encoded[32] = 200
		_, err = DecodeSessionMetadata(encoded)
		assert.ErrorIs(t, err, ErrTruncatedMetadata)
	})

	t.Run("decoded plate hash does not alias the input buffer", func(t *testing.T) {
		meta := SessionMetadata{PlateHash: bytes.Repeat([]byte{0x01}, 32), LotID: "L"}
		encoded, err := meta.Encode()
		require.NoError(t, err)

		decoded, err := DecodeSessionMetadata(encoded)
		require.NoError(t, err)

		encoded[0] = 0xff
		assert.Equal(t, byte(0x01), decoded.PlateHash[0])
	})
}

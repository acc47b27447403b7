package zmq

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"testing"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/stretchr/testify/assert"
)

func TestHashPartReversesBytes(t *testing.T) {
	var h chainhash.Hash
	for i := range h {
		h[i] = byte(i)
	}
	part := hashPart(&h)
	assert.Len(t, part, chainhash.HashSize)
	assert.Equal(t, byte(31), part[0])
	assert.Equal(t, byte(0), part[31])
	assert.Equal(t, h.String(), hex.EncodeToString(part))
}

func TestIntegerParts(t *testing.T) {
	assert.Equal(t, []byte{0xe8, 0x03, 0, 0, 0, 0, 0, 0}, int64Part(1000))
	assert.Equal(t, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}, int64Part(-1))
	assert.Equal(t, []byte{0x03, 0, 0, 0}, int32Part(3))
	assert.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, uint32Part(0x04030201))
	assert.Equal(t, []byte{0xff, 0xff, 0xff, 0xff}, uint32Part(^uint32(0)))
}

func TestTxPart(t *testing.T) {
	tx := testTx(7)
	raw, err := txPart(tx.MsgTx())
	assert.NoError(t, err)

	var buf bytes.Buffer
	assert.NoError(t, tx.MsgTx().Serialize(&buf))
	assert.Equal(t, buf.Bytes(), raw)
	assert.Equal(t, tx.MsgTx().SerializeSize(), len(raw))
}

func TestHeaderPart(t *testing.T) {
	block := testBlock(12)
	raw, err := headerPart(block.Header())
	assert.NoError(t, err)
	assert.Len(t, raw, 80)
	assert.Equal(t, block.GetPrevHash()[:], raw[4:36])
}

func TestTimestampPart(t *testing.T) {
	ts := time.Unix(1600000000, 123456789)
	part := timestampPart(ts)
	assert.Len(t, part, 8)
	assert.Equal(t, uint64(1600000000123), binary.LittleEndian.Uint64(part))
}

func TestSequencePart(t *testing.T) {
	h := chainhash.Hash{0x01, 0x02}

	part := sequencePart(&h, labelBlockConnect, nil)
	assert.Len(t, part, 33)
	assert.Equal(t, hashPart(&h), part[:32])
	assert.Equal(t, byte('C'), part[32])

	seq := uint64(42)
	part = sequencePart(&h, labelMempoolAccept, &seq)
	assert.Len(t, part, 41)
	assert.Equal(t, byte('A'), part[32])
	assert.Equal(t, uint64(42), binary.LittleEndian.Uint64(part[33:]))
}

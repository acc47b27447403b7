package zmq

import (
	"bytes"
	"encoding/binary"
	"time"

	"github.com/Qitmeer/zmqnotify/core/types"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// Sequence message labels.
const (
	labelBlockConnect    = 'C'
	labelBlockDisconnect = 'D'
	labelMempoolAccept   = 'A'
	labelMempoolRemoval  = 'R'
)

// timeNow is replaced by tests to pin message timestamps.
var timeNow = time.Now

// hashPart returns the hash in display order, the reverse of its internal
// little-endian order.
func hashPart(h *chainhash.Hash) []byte {
	part := make([]byte, chainhash.HashSize)
	for i := 0; i < chainhash.HashSize; i++ {
		part[i] = h[chainhash.HashSize-1-i]
	}
	return part
}

func int64Part(v int64) []byte {
	part := make([]byte, 8)
	binary.LittleEndian.PutUint64(part, uint64(v))
	return part
}

func int32Part(v int32) []byte {
	part := make([]byte, 4)
	binary.LittleEndian.PutUint32(part, uint32(v))
	return part
}

func uint32Part(v uint32) []byte {
	part := make([]byte, 4)
	binary.LittleEndian.PutUint32(part, v)
	return part
}

// txPart returns the network serialization of tx, witness data included.
func txPart(tx *wire.MsgTx) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(tx.SerializeSize())
	if err := tx.Serialize(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// headerPart returns the 80-byte serialized block header.
func headerPart(h *wire.BlockHeader) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(types.BlockHeaderSize)
	if err := h.Serialize(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// timestampPart returns t as milliseconds since the epoch.
func timestampPart(t time.Time) []byte {
	return int64Part(t.UnixNano() / int64(time.Millisecond))
}

// sequencePart builds the sequence topic payload:
//   <32-byte hash> | <1-byte label> | <8-byte LE mempool sequence> (A and R only)
func sequencePart(h *chainhash.Hash, label byte, mempoolSequence *uint64) []byte {
	size := chainhash.HashSize + 1
	if mempoolSequence != nil {
		size += 8
	}
	part := make([]byte, size)
	copy(part, hashPart(h))
	part[chainhash.HashSize] = label
	if mempoolSequence != nil {
		binary.LittleEndian.PutUint64(part[chainhash.HashSize+1:], *mempoolSequence)
	}
	return part
}

// Copyright (c) 2017-2020 The qitmeer developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package types

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// BlockHeaderSize is the number of bytes of a serialized block header.
const BlockHeaderSize = 80

// BlockIndex references a block known to the chain: its hash, its height and
// its header.  Chain notifications carry a BlockIndex rather than the full
// block, the block body is read from the block database when needed.
type BlockIndex struct {
	hash   chainhash.Hash
	height int32
	header wire.BlockHeader
}

// NewBlockIndex returns the index of a block with the given header at height.
func NewBlockIndex(header *wire.BlockHeader, height int32) *BlockIndex {
	return &BlockIndex{
		hash:   header.BlockHash(),
		height: height,
		header: *header,
	}
}

func (bi *BlockIndex) GetHash() *chainhash.Hash {
	return &bi.hash
}

func (bi *BlockIndex) GetHeight() int32 {
	return bi.height
}

func (bi *BlockIndex) GetPrevHash() *chainhash.Hash {
	return &bi.header.PrevBlock
}

func (bi *BlockIndex) Header() *wire.BlockHeader {
	return &bi.header
}

func (bi *BlockIndex) String() string {
	return bi.hash.String()
}

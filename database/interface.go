// Copyright (c) 2017-2020 The qitmeer developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package database provides the block storage the publishers read raw blocks
// from.  Backends register themselves as drivers and are selected by type
// name, see Open.
package database

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcutil"
)

// BlockReader is the read side of a block store.
type BlockReader interface {
	// FetchBlock returns the canonical serialization of the block with the
	// given hash, or ErrBlockNotFound.
	FetchBlock(hash *chainhash.Hash) ([]byte, error)

	// HasBlock reports whether the block with the given hash is stored.
	HasBlock(hash *chainhash.Hash) (bool, error)
}

// DB is a block store keyed by block hash.
type DB interface {
	BlockReader

	// Type returns the driver type name the database was opened with.
	Type() string

	// StoreBlock writes the serialized block under its hash.  Storing a
	// block twice overwrites the first copy.
	StoreBlock(block *btcutil.Block) error

	// Close releases the underlying storage.
	Close() error
}

// Copyright (c) 2017-2020 The qitmeer developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ldb implements the block database on top of goleveldb.
package ldb

import (
	"github.com/Qitmeer/zmqnotify/database"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcutil"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"
)

const DbType = "leveldb"

// blockKeyPrefix namespaces block entries inside the key space.
var blockKeyPrefix = []byte("b")

type db struct {
	ldb *leveldb.DB
}

func blockKey(hash *chainhash.Hash) []byte {
	key := make([]byte, len(blockKeyPrefix)+chainhash.HashSize)
	copy(key, blockKeyPrefix)
	copy(key[len(blockKeyPrefix):], hash[:])
	return key
}

// Open opens or creates a leveldb block database at path.
func Open(path string) (database.DB, error) {
	ldb, err := leveldb.OpenFile(path, &opt.Options{
		Strict:      opt.DefaultStrict,
		Compression: opt.NoCompression,
	})
	if err != nil {
		return nil, err
	}
	return &db{ldb: ldb}, nil
}

func (d *db) Type() string {
	return DbType
}

func (d *db) StoreBlock(block *btcutil.Block) error {
	raw, err := block.Bytes()
	if err != nil {
		return err
	}
	return d.ldb.Put(blockKey(block.Hash()), raw, nil)
}

func (d *db) FetchBlock(hash *chainhash.Hash) ([]byte, error) {
	raw, err := d.ldb.Get(blockKey(hash), nil)
	if err == leveldb.ErrNotFound {
		return nil, database.ErrBlockNotFound
	}
	return raw, err
}

func (d *db) HasBlock(hash *chainhash.Hash) (bool, error) {
	return d.ldb.Has(blockKey(hash), nil)
}

func (d *db) Close() error {
	return d.ldb.Close()
}

func init() {
	if err := database.RegisterDriver(database.Driver{DbType: DbType, Open: Open}); err != nil {
		panic(err)
	}
}

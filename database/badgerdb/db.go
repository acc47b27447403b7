// Copyright (c) 2017-2020 The qitmeer developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package badgerdb implements the block database on top of badger.
package badgerdb

import (
	"os"

	"github.com/Qitmeer/zmqnotify/database"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcutil"
	"github.com/dgraph-io/badger"
)

const DbType = "badger"

type db struct {
	bdb *badger.DB
}

// Open opens or creates a badger block database inside the directory path.
func Open(path string) (database.DB, error) {
	if err := os.MkdirAll(path, 0700); err != nil {
		return nil, err
	}
	opt := badger.DefaultOptions
	opt.Dir = path
	opt.ValueDir = path
	bdb, err := badger.Open(opt)
	if err != nil {
		return nil, err
	}
	return &db{bdb: bdb}, nil
}

func (d *db) Type() string {
	return DbType
}

func (d *db) StoreBlock(block *btcutil.Block) error {
	raw, err := block.Bytes()
	if err != nil {
		return err
	}
	return d.bdb.Update(func(txn *badger.Txn) error {
		return txn.Set(block.Hash().CloneBytes(), raw)
	})
}

func (d *db) FetchBlock(hash *chainhash.Hash) ([]byte, error) {
	var raw []byte
	err := d.bdb.View(func(txn *badger.Txn) error {
		item, err := txn.Get(hash[:])
		if err == badger.ErrKeyNotFound {
			return database.ErrBlockNotFound
		}
		if err != nil {
			return err
		}
		raw, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		return nil, err
	}
	return raw, nil
}

func (d *db) HasBlock(hash *chainhash.Hash) (bool, error) {
	_, err := d.FetchBlock(hash)
	if err == database.ErrBlockNotFound {
		return false, nil
	}
	return err == nil, err
}

func (d *db) Close() error {
	return d.bdb.Close()
}

func init() {
	if err := database.RegisterDriver(database.Driver{DbType: DbType, Open: Open}); err != nil {
		panic(err)
	}
}

// Copyright (c) 2017-2020 The qitmeer developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package boltdb implements the block database on top of bbolt.
package boltdb

import (
	"os"
	"path/filepath"

	"github.com/Qitmeer/zmqnotify/database"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcutil"
	"github.com/coreos/bbolt"
)

const (
	DbType = "bolt"

	dbFileName = "blocks.db"
)

var blockBucketName = []byte("blocks")

type db struct {
	bdb *bolt.DB
}

// Open opens or creates a bolt block database inside the directory path.
func Open(path string) (database.DB, error) {
	if err := os.MkdirAll(path, 0700); err != nil {
		return nil, err
	}
	bdb, err := bolt.Open(filepath.Join(path, dbFileName), 0600, nil)
	if err != nil {
		return nil, err
	}
	err = bdb.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(blockBucketName)
		return err
	})
	if err != nil {
		bdb.Close()
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
	return d.bdb.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(blockBucketName).Put(block.Hash()[:], raw)
	})
}

func (d *db) FetchBlock(hash *chainhash.Hash) ([]byte, error) {
	var raw []byte
	err := d.bdb.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(blockBucketName).Get(hash[:])
		if v == nil {
			return database.ErrBlockNotFound
		}
		// v is only valid for the life of the transaction
		raw = make([]byte, len(v))
		copy(raw, v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return raw, nil
}

func (d *db) HasBlock(hash *chainhash.Hash) (bool, error) {
	var has bool
	err := d.bdb.View(func(tx *bolt.Tx) error {
		has = tx.Bucket(blockBucketName).Get(hash[:]) != nil
		return nil
	})
	return has, err
}

func (d *db) Close() error {
	return d.bdb.Close()
}

func init() {
	if err := database.RegisterDriver(database.Driver{DbType: DbType, Open: Open}); err != nil {
		panic(err)
	}
}

// Copyright (c) 2017-2020 The qitmeer developers

package database_test

import (
	"path/filepath"
	"testing"

	"github.com/Qitmeer/zmqnotify/database"
	_ "github.com/Qitmeer/zmqnotify/database/badgerdb"
	_ "github.com/Qitmeer/zmqnotify/database/boltdb"
	_ "github.com/Qitmeer/zmqnotify/database/ldb"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/btcsuite/btcutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBlock(nonce uint32) *btcutil.Block {
	coinbase := wire.NewMsgTx(wire.TxVersion)
	coinbase.AddTxIn(wire.NewTxIn(wire.NewOutPoint(&chainhash.Hash{}, wire.MaxPrevOutIndex), []byte{0x51}, nil))
	coinbase.AddTxOut(wire.NewTxOut(5000000000, []byte{0x51}))

	merkle := coinbase.TxHash()
	header := wire.NewBlockHeader(1, &chainhash.Hash{}, &merkle, 0x207fffff, nonce)
	msgBlock := wire.NewMsgBlock(header)
	msgBlock.AddTransaction(coinbase)
	return btcutil.NewBlock(msgBlock)
}

func TestSupportedDrivers(t *testing.T) {
	assert.Equal(t, []string{"badger", "bolt", "leveldb"}, database.SupportedDrivers())
}

func TestRegisterDuplicateDriver(t *testing.T) {
	err := database.RegisterDriver(database.Driver{DbType: "leveldb"})
	assert.Error(t, err)
}

func TestOpenUnknownType(t *testing.T) {
	_, err := database.Open("ffldb", t.TempDir())
	assert.Error(t, err)
}

func TestStoreAndFetchBlock(t *testing.T) {
	for _, dbType := range database.SupportedDrivers() {
		t.Run(dbType, func(t *testing.T) {
			db, err := database.Open(dbType, filepath.Join(t.TempDir(), dbType))
			require.NoError(t, err)
			defer db.Close()

			assert.Equal(t, dbType, db.Type())

			block := testBlock(1)
			has, err := db.HasBlock(block.Hash())
			assert.NoError(t, err)
			assert.False(t, has)

			_, err = db.FetchBlock(block.Hash())
			assert.Equal(t, database.ErrBlockNotFound, err)

			require.NoError(t, db.StoreBlock(block))

			has, err = db.HasBlock(block.Hash())
			assert.NoError(t, err)
			assert.True(t, has)

			raw, err := db.FetchBlock(block.Hash())
			require.NoError(t, err)
			expected, err := block.Bytes()
			require.NoError(t, err)
			assert.Equal(t, expected, raw)

			other := testBlock(2)
			_, err = db.FetchBlock(other.Hash())
			assert.Equal(t, database.ErrBlockNotFound, err)
		})
	}
}

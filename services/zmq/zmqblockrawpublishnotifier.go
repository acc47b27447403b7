package zmq

import (
	"fmt"
	"sync"

	"github.com/Qitmeer/zmqnotify/core/types"
	"github.com/Qitmeer/zmqnotify/database"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// blockSource reads serialized blocks from the block database.
type blockSource struct {
	db   database.BlockReader
	lock sync.Locker
}

func newBlockSource(opts *NotifierOptions) blockSource {
	lock := opts.ChainLock
	if lock == nil {
		lock = &sync.Mutex{}
	}
	return blockSource{db: opts.BlockDB, lock: lock}
}

func (bs blockSource) read(hash *chainhash.Hash) ([]byte, error) {
	if bs.db == nil {
		return nil, fmt.Errorf("Can't read block %s from disk: no block database", hash)
	}
	bs.lock.Lock()
	defer bs.lock.Unlock()
	raw, err := bs.db.FetchBlock(hash)
	if err != nil {
		return nil, fmt.Errorf("Can't read block %s from disk: %v", hash, err)
	}
	return raw, nil
}

type ZMQBlockRawPublishNotifier struct {
	*ZMQPublishNotifier
	blocks blockSource
}

func newZMQBlockRawPublishNotifier(zp *ZMQPublishNotifier, opts *NotifierOptions) *ZMQBlockRawPublishNotifier {
	return &ZMQBlockRawPublishNotifier{ZMQPublishNotifier: zp, blocks: newBlockSource(opts)}
}

func (zp *ZMQBlockRawPublishNotifier) NotifyBlock(block *types.BlockIndex) error {
	log.Debug(fmt.Sprintf("Publish rawblock %s to %s", block.GetHash(), zp.address))
	raw, err := zp.blocks.read(block.GetHash())
	if err != nil {
		return err
	}
	return zp.send([][]byte{raw}, false)
}

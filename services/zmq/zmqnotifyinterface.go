package zmq

import (
	"github.com/Qitmeer/zmqnotify/core/types"
	"github.com/Qitmeer/zmqnotify/services/mempool"
	"github.com/btcsuite/btcutil"
)

// The interface for ZeroMQ notification
type IZMQNotification interface {
	// is enable
	IsEnable() bool

	// new best block
	UpdatedBlockTip(block *types.BlockIndex)

	// block connected
	BlockConnected(block *types.BlockIndex, txs []*btcutil.Tx)

	// block disconnected
	BlockDisconnected(block *types.BlockIndex, txs []*btcutil.Tx)

	// header added
	HeaderAdded(block *types.BlockIndex)

	TransactionAddedToMempool(tx *btcutil.Tx, fee btcutil.Amount, mempoolSequence uint64)
	TransactionRemovedFromMempool(tx *btcutil.Tx, reason mempool.RemovalReason,
		mempoolSequence uint64, block *types.BlockIndex)
	TransactionReplaced(replaced *btcutil.Tx, replacedFee btcutil.Amount,
		replacement *btcutil.Tx, replacementFee btcutil.Amount)

	// Shutdown
	Shutdown()
}

var _ IZMQNotification = (*ZMQNotification)(nil)

package zmq

import (
	"github.com/Qitmeer/zmqnotify/core/types"
	"github.com/Qitmeer/zmqnotify/services/mempool"
	"github.com/btcsuite/btcutil"
)

// DefaultNotifier ignores every event.  Publishers embed it and override the
// callbacks of their topic.
type DefaultNotifier struct{}

func (DefaultNotifier) NotifyBlock(*types.BlockIndex) error           { return nil }
func (DefaultNotifier) NotifyBlockConnect(*types.BlockIndex) error    { return nil }
func (DefaultNotifier) NotifyBlockDisconnect(*types.BlockIndex) error { return nil }
func (DefaultNotifier) NotifyTransaction(*btcutil.Tx) error           { return nil }

func (DefaultNotifier) NotifyTransactionAcceptance(*btcutil.Tx, uint64) error { return nil }
func (DefaultNotifier) NotifyTransactionRemoval(*btcutil.Tx, uint64) error    { return nil }
func (DefaultNotifier) NotifyTransactionFee(*btcutil.Tx, btcutil.Amount) error {
	return nil
}

func (DefaultNotifier) NotifyTransactionRemovalReason(*btcutil.Tx, mempool.RemovalReason) error {
	return nil
}

func (DefaultNotifier) NotifyTransactionReplaced(*btcutil.Tx, btcutil.Amount, *btcutil.Tx, btcutil.Amount) error {
	return nil
}

func (DefaultNotifier) NotifyMempoolTransactionConfirmed(*btcutil.Tx, *types.BlockIndex) error {
	return nil
}

func (DefaultNotifier) NotifyChainTipChanged(*types.BlockIndex) error     { return nil }
func (DefaultNotifier) NotifyChainBlockConnected(*types.BlockIndex) error { return nil }
func (DefaultNotifier) NotifyChainHeaderAdded(*types.BlockIndex) error    { return nil }

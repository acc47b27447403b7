package zmq

import (
	"fmt"

	"github.com/Qitmeer/zmqnotify/core/types"
	"github.com/Qitmeer/zmqnotify/services/mempool"
	"github.com/btcsuite/btcutil"
)

// txParts returns the txid and raw transaction parts shared by the mempool
// topics.
func txParts(tx *btcutil.Tx) ([][]byte, error) {
	raw, err := txPart(tx.MsgTx())
	if err != nil {
		return nil, fmt.Errorf("Can't serialize transaction %s: %v", tx.Hash(), err)
	}
	return [][]byte{hashPart(tx.Hash()), raw}, nil
}

// ZMQMempoolAddedPublishNotifier sends <txid> <tx> <fee>.
type ZMQMempoolAddedPublishNotifier struct {
	*ZMQPublishNotifier
}

func (zp *ZMQMempoolAddedPublishNotifier) NotifyTransactionFee(tx *btcutil.Tx, fee btcutil.Amount) error {
	log.Debug(fmt.Sprintf("Publish mempooladded %s to %s", tx.Hash(), zp.address))
	parts, err := txParts(tx)
	if err != nil {
		return err
	}
	return zp.send(append(parts, int64Part(int64(fee))), true)
}

// ZMQMempoolRemovedPublishNotifier sends <txid> <tx> <reason>.
type ZMQMempoolRemovedPublishNotifier struct {
	*ZMQPublishNotifier
}

func (zp *ZMQMempoolRemovedPublishNotifier) NotifyTransactionRemovalReason(tx *btcutil.Tx, reason mempool.RemovalReason) error {
	log.Debug(fmt.Sprintf("Publish mempoolremoved %s (%s) to %s", tx.Hash(), reason, zp.address))
	parts, err := txParts(tx)
	if err != nil {
		return err
	}
	return zp.send(append(parts, int32Part(int32(reason))), true)
}

// ZMQMempoolReplacedPublishNotifier sends <txid> <tx> <fee> of the replaced
// transaction followed by the same three parts of its replacement.
type ZMQMempoolReplacedPublishNotifier struct {
	*ZMQPublishNotifier
}

func (zp *ZMQMempoolReplacedPublishNotifier) NotifyTransactionReplaced(replaced *btcutil.Tx, replacedFee btcutil.Amount,
	replacement *btcutil.Tx, replacementFee btcutil.Amount) error {
	log.Debug(fmt.Sprintf("Publish mempoolreplaced %s by %s to %s", replaced.Hash(), replacement.Hash(), zp.address))
	parts, err := txParts(replaced)
	if err != nil {
		return err
	}
	parts = append(parts, int64Part(int64(replacedFee)))
	replacementParts, err := txParts(replacement)
	if err != nil {
		return err
	}
	parts = append(parts, replacementParts...)
	parts = append(parts, int64Part(int64(replacementFee)))
	return zp.send(parts, true)
}

// ZMQMempoolConfirmedPublishNotifier sends <txid> <tx> <height> <block hash>
// <header> for pool transactions included in a block.
type ZMQMempoolConfirmedPublishNotifier struct {
	*ZMQPublishNotifier
}

func (zp *ZMQMempoolConfirmedPublishNotifier) NotifyMempoolTransactionConfirmed(tx *btcutil.Tx, block *types.BlockIndex) error {
	log.Debug(fmt.Sprintf("Publish mempoolconfirmed %s in %s to %s", tx.Hash(), block.GetHash(), zp.address))
	parts, err := txParts(tx)
	if err != nil {
		return err
	}
	header, err := headerPart(block.Header())
	if err != nil {
		return fmt.Errorf("Can't serialize header %s: %v", block.GetHash(), err)
	}
	parts = append(parts, int32Part(block.GetHeight()), hashPart(block.GetHash()), header)
	return zp.send(parts, true)
}

package zmq

import (
	"fmt"

	"github.com/Qitmeer/zmqnotify/core/types"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcutil"
)

// ZMQSequencePublishNotifier publishes block (dis)connections and mempool
// acceptance and removal on one ordered topic.  Mempool messages carry the
// pool's own sequence number, block messages do not.
type ZMQSequencePublishNotifier struct {
	*ZMQPublishNotifier
}

func (zp *ZMQSequencePublishNotifier) publish(hash *chainhash.Hash, label byte, mempoolSequence *uint64) error {
	return zp.send([][]byte{sequencePart(hash, label, mempoolSequence)}, false)
}

func (zp *ZMQSequencePublishNotifier) NotifyBlockConnect(block *types.BlockIndex) error {
	log.Debug(fmt.Sprintf("Publish sequence block connect %s to %s", block.GetHash(), zp.address))
	return zp.publish(block.GetHash(), labelBlockConnect, nil)
}

func (zp *ZMQSequencePublishNotifier) NotifyBlockDisconnect(block *types.BlockIndex) error {
	log.Debug(fmt.Sprintf("Publish sequence block disconnect %s to %s", block.GetHash(), zp.address))
	return zp.publish(block.GetHash(), labelBlockDisconnect, nil)
}

func (zp *ZMQSequencePublishNotifier) NotifyTransactionAcceptance(tx *btcutil.Tx, mempoolSequence uint64) error {
	log.Debug(fmt.Sprintf("Publish hashtx mempool acceptance %s to %s", tx.Hash(), zp.address))
	return zp.publish(tx.Hash(), labelMempoolAccept, &mempoolSequence)
}

func (zp *ZMQSequencePublishNotifier) NotifyTransactionRemoval(tx *btcutil.Tx, mempoolSequence uint64) error {
	log.Debug(fmt.Sprintf("Publish hashtx mempool removal %s to %s", tx.Hash(), zp.address))
	return zp.publish(tx.Hash(), labelMempoolRemoval, &mempoolSequence)
}

package zmq

import (
	"fmt"

	"github.com/btcsuite/btcutil"
)

type ZMQTxHashPublishNotifier struct {
	*ZMQPublishNotifier
}

func (zp *ZMQTxHashPublishNotifier) NotifyTransaction(tx *btcutil.Tx) error {
	log.Debug(fmt.Sprintf("Publish hashtx %s to %s", tx.Hash(), zp.address))
	return zp.send([][]byte{hashPart(tx.Hash())}, false)
}

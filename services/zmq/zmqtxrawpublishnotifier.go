package zmq

import (
	"fmt"

	"github.com/btcsuite/btcutil"
)

type ZMQTxRawPublishNotifier struct {
	*ZMQPublishNotifier
}

func (zp *ZMQTxRawPublishNotifier) NotifyTransaction(tx *btcutil.Tx) error {
	log.Debug(fmt.Sprintf("Publish rawtx %s to %s", tx.Hash(), zp.address))
	raw, err := txPart(tx.MsgTx())
	if err != nil {
		return fmt.Errorf("Can't serialize transaction %s: %v", tx.Hash(), err)
	}
	return zp.send([][]byte{raw}, false)
}

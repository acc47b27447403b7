package zmq

import (
	"fmt"

	"github.com/Qitmeer/zmqnotify/core/types"
)

type ZMQBlockHashPublishNotifier struct {
	*ZMQPublishNotifier
}

func (zp *ZMQBlockHashPublishNotifier) NotifyBlock(block *types.BlockIndex) error {
	log.Debug(fmt.Sprintf("Publish hashblock %s to %s", block.GetHash(), zp.address))
	return zp.send([][]byte{hashPart(block.GetHash())}, false)
}

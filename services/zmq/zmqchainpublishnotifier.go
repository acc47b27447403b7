package zmq

import (
	"fmt"

	"github.com/Qitmeer/zmqnotify/core/types"
)

func headerParts(block *types.BlockIndex) ([][]byte, error) {
	header, err := headerPart(block.Header())
	if err != nil {
		return nil, fmt.Errorf("Can't serialize header %s: %v", block.GetHash(), err)
	}
	return [][]byte{hashPart(block.GetHash()), int32Part(block.GetHeight()), header}, nil
}

// ZMQChainTipChangedPublishNotifier sends <hash> <height> <header> of every
// new tip.
type ZMQChainTipChangedPublishNotifier struct {
	*ZMQPublishNotifier
}

func (zp *ZMQChainTipChangedPublishNotifier) NotifyChainTipChanged(block *types.BlockIndex) error {
	log.Debug(fmt.Sprintf("Publish chaintipchanged %s to %s", block.GetHash(), zp.address))
	parts, err := headerParts(block)
	if err != nil {
		return err
	}
	return zp.send(parts, true)
}

// ZMQChainHeaderAddedPublishNotifier sends <hash> <height> <header> of every
// header added to the header tree.
type ZMQChainHeaderAddedPublishNotifier struct {
	*ZMQPublishNotifier
}

func (zp *ZMQChainHeaderAddedPublishNotifier) NotifyChainHeaderAdded(block *types.BlockIndex) error {
	log.Debug(fmt.Sprintf("Publish chainheaderadded %s to %s", block.GetHash(), zp.address))
	parts, err := headerParts(block)
	if err != nil {
		return err
	}
	return zp.send(parts, true)
}

// ZMQChainConnectedPublishNotifier sends <hash> <height> <prev hash> <block>.
type ZMQChainConnectedPublishNotifier struct {
	*ZMQPublishNotifier
	blocks blockSource
}

func newZMQChainConnectedPublishNotifier(zp *ZMQPublishNotifier, opts *NotifierOptions) *ZMQChainConnectedPublishNotifier {
	return &ZMQChainConnectedPublishNotifier{ZMQPublishNotifier: zp, blocks: newBlockSource(opts)}
}

func (zp *ZMQChainConnectedPublishNotifier) NotifyChainBlockConnected(block *types.BlockIndex) error {
	log.Debug(fmt.Sprintf("Publish chainconnected %s to %s", block.GetHash(), zp.address))
	raw, err := zp.blocks.read(block.GetHash())
	if err != nil {
		return err
	}
	return zp.send([][]byte{
		hashPart(block.GetHash()),
		int32Part(block.GetHeight()),
		hashPart(block.GetPrevHash()),
		raw,
	}, true)
}

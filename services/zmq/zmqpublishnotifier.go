package zmq

import (
	"fmt"
	"sync"
	"time"

	"github.com/Qitmeer/zmqnotify/config"
	"github.com/Qitmeer/zmqnotify/core/types"
	"github.com/Qitmeer/zmqnotify/database"
	l "github.com/Qitmeer/zmqnotify/log"
	"github.com/Qitmeer/zmqnotify/metrics"
	"github.com/Qitmeer/zmqnotify/services/mempool"
	"github.com/btcsuite/btcutil"
	gometrics "github.com/rcrowley/go-metrics"
)

const (
	HashBlock        = "hashblock"
	HashTx           = "hashtx"
	RawBlock         = "rawblock"
	RawTx            = "rawtx"
	Sequence         = "sequence"
	MempoolAdded     = "mempooladded"
	MempoolRemoved   = "mempoolremoved"
	MempoolReplaced  = "mempoolreplaced"
	MempoolConfirmed = "mempoolconfirmed"
	ChainTipChanged  = "chaintipchanged"
	ChainConnected   = "chainconnected"
	ChainHeaderAdded = "chainheaderadded"
)

// defaultEndpoints are bound when a topic is configured with the address
// "default" or "*".
var defaultEndpoints = map[string]string{
	HashBlock:        "tcp://*:8230",
	HashTx:           "tcp://*:8231",
	RawBlock:         "tcp://*:8232",
	RawTx:            "tcp://*:8233",
	Sequence:         "tcp://*:8234",
	MempoolAdded:     "tcp://*:8235",
	MempoolRemoved:   "tcp://*:8236",
	MempoolReplaced:  "tcp://*:8237",
	MempoolConfirmed: "tcp://*:8238",
	ChainTipChanged:  "tcp://*:8239",
	ChainConnected:   "tcp://*:8240",
	ChainHeaderAdded: "tcp://*:8241",
}

// IZMQPublishNotifier is one topic published on one address.  Every callback
// is invoked for every event; topics ignore the ones they do not publish.
type IZMQPublishNotifier interface {
	Topic() string
	Address() string
	HighWaterMark() int
	SetHighWaterMark(hwm int)

	Initialize(registry *EndpointRegistry) error
	Shutdown()

	NotifyBlock(block *types.BlockIndex) error
	NotifyBlockConnect(block *types.BlockIndex) error
	NotifyBlockDisconnect(block *types.BlockIndex) error
	NotifyTransaction(tx *btcutil.Tx) error
	NotifyTransactionAcceptance(tx *btcutil.Tx, mempoolSequence uint64) error
	NotifyTransactionRemoval(tx *btcutil.Tx, mempoolSequence uint64) error
	NotifyTransactionFee(tx *btcutil.Tx, fee btcutil.Amount) error
	NotifyTransactionRemovalReason(tx *btcutil.Tx, reason mempool.RemovalReason) error
	NotifyTransactionReplaced(replaced *btcutil.Tx, replacedFee btcutil.Amount,
		replacement *btcutil.Tx, replacementFee btcutil.Amount) error
	NotifyMempoolTransactionConfirmed(tx *btcutil.Tx, block *types.BlockIndex) error
	NotifyChainTipChanged(block *types.BlockIndex) error
	NotifyChainBlockConnected(block *types.BlockIndex) error
	NotifyChainHeaderAdded(block *types.BlockIndex) error
}

// ZMQPublishNotifier holds what every topic shares: the endpoint and the
// per-notifier message sequence.
type ZMQPublishNotifier struct {
	DefaultNotifier

	topic         string
	address       string
	highWaterMark int

	mtx      sync.Mutex
	sequence uint32
	endpoint *Endpoint

	sentMeter   gometrics.Meter
	failedMeter gometrics.Meter
	sendTimer   gometrics.Timer
}

func newZMQPublishNotifier(topic, address string) *ZMQPublishNotifier {
	return &ZMQPublishNotifier{
		topic:         topic,
		address:       address,
		highWaterMark: config.DefaultZMQHighWaterMark,
		sentMeter:     metrics.NewMeter(fmt.Sprintf("zmq/%s/sent", topic)),
		failedMeter:   metrics.NewMeter(fmt.Sprintf("zmq/%s/failed", topic)),
		sendTimer:     metrics.NewTimer(fmt.Sprintf("zmq/%s/send", topic)),
	}
}

func (zp *ZMQPublishNotifier) Topic() string {
	return zp.topic
}

func (zp *ZMQPublishNotifier) Address() string {
	return zp.address
}

func (zp *ZMQPublishNotifier) HighWaterMark() int {
	return zp.highWaterMark
}

// SetHighWaterMark ignores negative values.
func (zp *ZMQPublishNotifier) SetHighWaterMark(hwm int) {
	if hwm >= 0 {
		zp.highWaterMark = hwm
	}
}

func (zp *ZMQPublishNotifier) Initialize(registry *EndpointRegistry) error {
	log.Debug(fmt.Sprintf("Initialize ZMQ publish notifier:%s %s", zp.topic, zp.address))

	zp.mtx.Lock()
	defer zp.mtx.Unlock()
	if zp.endpoint != nil {
		return nil
	}
	ep, err := registry.Acquire(zp.address, zp.highWaterMark)
	if err != nil {
		return err
	}
	zp.endpoint = ep
	return nil
}

func (zp *ZMQPublishNotifier) Shutdown() {
	zp.mtx.Lock()
	defer zp.mtx.Unlock()
	if zp.endpoint == nil {
		return
	}
	log.Debug(fmt.Sprintf("Shutdown:ZMQPublishNotifier [%s ---> %s]", zp.topic, zp.address))
	zp.endpoint.Release()
	zp.endpoint = nil
}

// send publishes one multipart message:
//   [topic][payload...][seq]             fixed shape
//   [topic][timestamp][payload...][seq]  timestamped shape
// The sequence only advances once the message is handed to the socket.
func (zp *ZMQPublishNotifier) send(payload [][]byte, timestamped bool) error {
	zp.mtx.Lock()
	defer zp.mtx.Unlock()

	if zp.endpoint == nil {
		return ErrNotInitialized
	}
	msg := make([][]byte, 0, len(payload)+3)
	msg = append(msg, []byte(zp.topic))
	if timestamped {
		msg = append(msg, timestampPart(timeNow()))
	}
	msg = append(msg, payload...)
	msg = append(msg, uint32Part(zp.sequence))

	start := time.Now()
	if err := zp.endpoint.Send(msg); err != nil {
		zp.failedMeter.Mark(1)
		return fmt.Errorf("Unable to publish %s: %v", zp.topic, err)
	}
	zp.sendTimer.UpdateSince(start)
	zp.sentMeter.Mark(1)
	log.Trace("Published message", "topic", zp.topic, "address", zp.address,
		"sequence", zp.sequence, "parts", l.SpewClosure(msg))
	zp.sequence++
	return nil
}

// NotifierOptions carries the collaborators some topics need.
type NotifierOptions struct {
	// BlockDB serves raw blocks to rawblock and chainconnected.
	BlockDB database.BlockReader

	// ChainLock is held while a raw block is read.
	ChainLock sync.Locker
}

// NewZMQPublishNotifier creates the notifier publishing topic on address.
func NewZMQPublishNotifier(topic, address string, opts *NotifierOptions) (IZMQPublishNotifier, error) {
	if opts == nil {
		opts = &NotifierOptions{}
	}
	zp := newZMQPublishNotifier(topic, address)
	switch topic {
	case HashBlock:
		return &ZMQBlockHashPublishNotifier{zp}, nil
	case HashTx:
		return &ZMQTxHashPublishNotifier{zp}, nil
	case RawBlock:
		return newZMQBlockRawPublishNotifier(zp, opts), nil
	case RawTx:
		return &ZMQTxRawPublishNotifier{zp}, nil
	case Sequence:
		return &ZMQSequencePublishNotifier{zp}, nil
	case MempoolAdded:
		return &ZMQMempoolAddedPublishNotifier{zp}, nil
	case MempoolRemoved:
		return &ZMQMempoolRemovedPublishNotifier{zp}, nil
	case MempoolReplaced:
		return &ZMQMempoolReplacedPublishNotifier{zp}, nil
	case MempoolConfirmed:
		return &ZMQMempoolConfirmedPublishNotifier{zp}, nil
	case ChainTipChanged:
		return &ZMQChainTipChangedPublishNotifier{zp}, nil
	case ChainConnected:
		return newZMQChainConnectedPublishNotifier(zp, opts), nil
	case ChainHeaderAdded:
		return &ZMQChainHeaderAddedPublishNotifier{zp}, nil
	}
	return nil, fmt.Errorf("%v: %s", ErrUnknownTopic, topic)
}

package zmq

import (
	"context"
	"fmt"
	"sync"

	"github.com/Qitmeer/zmqnotify/config"
	"github.com/Qitmeer/zmqnotify/core/blockchain"
	"github.com/Qitmeer/zmqnotify/core/event"
	"github.com/Qitmeer/zmqnotify/core/types"
	"github.com/Qitmeer/zmqnotify/database"
	"github.com/Qitmeer/zmqnotify/node/service"
	"github.com/Qitmeer/zmqnotify/services/mempool"
	"github.com/btcsuite/btcutil"
	mapset "github.com/deckarep/golang-set"
)

// Options configures the collaborators of ZMQNotification.  The zero value
// uses DefaultSocketFactory and publishes no raw blocks.
type Options struct {
	SocketFactory SocketFactory
	BlockDB       database.BlockReader
	ChainLock     sync.Locker
}

// NotifierInfo describes one active publisher.
type NotifierInfo struct {
	Topic         string
	Address       string
	HighWaterMark int
}

type ZMQNotification struct {
	service.Service

	cfg              *config.Config
	registry         *EndpointRegistry
	mtx              sync.RWMutex
	publishNotifiers []IZMQPublishNotifier

	events chan *event.Event
	sub    event.Subscription
	wg     sync.WaitGroup
}

// NewZMQNotification binds one publisher per configured topic and address.
// Publishers failing to bind are logged and left out, the others stay
// active.  An unknown topic is an error.
func NewZMQNotification(cfg *config.Config, opts *Options) (*ZMQNotification, error) {
	if opts == nil {
		opts = &Options{}
	}
	zn := &ZMQNotification{
		cfg:      cfg,
		registry: NewEndpointRegistry(opts.SocketFactory),
	}

	notifierOpts := &NotifierOptions{BlockDB: opts.BlockDB, ChainLock: opts.ChainLock}
	seen := mapset.NewSet()
	var notifiers []IZMQPublishNotifier
	for _, pub := range cfg.ZMQPublishers() {
		address := pub.Address
		if address == "default" || address == "*" {
			address = defaultEndpoints[pub.Topic]
		}
		key := pub.Topic + " " + address
		if seen.Contains(key) {
			log.Debug(fmt.Sprintf("Skip duplicate ZMQ publisher:%s %s", pub.Topic, address))
			continue
		}
		seen.Add(key)

		notifier, err := NewZMQPublishNotifier(pub.Topic, address, notifierOpts)
		if err != nil {
			return nil, err
		}
		notifier.SetHighWaterMark(pub.HighWaterMark)
		notifiers = append(notifiers, notifier)
	}

	for _, notifier := range notifiers {
		if err := notifier.Initialize(zn.registry); err != nil {
			log.Error(fmt.Sprintf("%s ZMQ publish notifier can't initialization", notifier.Topic()),
				"address", notifier.Address(), "error", err)
			continue
		}
		log.Info(fmt.Sprintf("ZMQ:Publish %s on %s", notifier.Topic(), notifier.Address()),
			"hwm", notifier.HighWaterMark())
		zn.publishNotifiers = append(zn.publishNotifiers, notifier)
	}
	return zn, nil
}

func (zn *ZMQNotification) IsEnable() bool {
	zn.mtx.RLock()
	defer zn.mtx.RUnlock()
	return len(zn.publishNotifiers) > 0
}

// ActiveNotifiers lists the publishers that are bound.
func (zn *ZMQNotification) ActiveNotifiers() []NotifierInfo {
	zn.mtx.RLock()
	defer zn.mtx.RUnlock()
	infos := make([]NotifierInfo, 0, len(zn.publishNotifiers))
	for _, n := range zn.publishNotifiers {
		infos = append(infos, NotifierInfo{
			Topic:         n.Topic(),
			Address:       n.Address(),
			HighWaterMark: n.HighWaterMark(),
		})
	}
	return infos
}

// notify runs fn on every publisher.  A failing publisher does not stop the
// others.
func (zn *ZMQNotification) notify(name string, fn func(IZMQPublishNotifier) error) {
	zn.mtx.RLock()
	defer zn.mtx.RUnlock()
	for _, n := range zn.publishNotifiers {
		if err := fn(n); err != nil {
			log.Warn(fmt.Sprintf("ZMQ %s failed", name), "topic", n.Topic(),
				"address", n.Address(), "error", err)
		}
	}
}

// UpdatedBlockTip publishes a new best block.
func (zn *ZMQNotification) UpdatedBlockTip(block *types.BlockIndex) {
	log.Trace(fmt.Sprintf("UpdatedBlockTip:%s", block.GetHash()))
	zn.notify("NotifyBlock", func(n IZMQPublishNotifier) error {
		return n.NotifyBlock(block)
	})
	zn.notify("NotifyChainTipChanged", func(n IZMQPublishNotifier) error {
		return n.NotifyChainTipChanged(block)
	})
}

func (zn *ZMQNotification) BlockConnected(block *types.BlockIndex, txs []*btcutil.Tx) {
	log.Trace(fmt.Sprintf("BlockConnected:%s", block.GetHash()))
	zn.publishTransactions(txs)
	zn.notify("NotifyBlockConnect", func(n IZMQPublishNotifier) error {
		return n.NotifyBlockConnect(block)
	})
	zn.notify("NotifyChainBlockConnected", func(n IZMQPublishNotifier) error {
		return n.NotifyChainBlockConnected(block)
	})
}

func (zn *ZMQNotification) BlockDisconnected(block *types.BlockIndex, txs []*btcutil.Tx) {
	log.Trace(fmt.Sprintf("BlockDisconnected:%s", block.GetHash()))
	zn.publishTransactions(txs)
	zn.notify("NotifyBlockDisconnect", func(n IZMQPublishNotifier) error {
		return n.NotifyBlockDisconnect(block)
	})
}

func (zn *ZMQNotification) publishTransactions(txs []*btcutil.Tx) {
	for _, tx := range txs {
		zn.notify("NotifyTransaction", func(n IZMQPublishNotifier) error {
			return n.NotifyTransaction(tx)
		})
	}
}

func (zn *ZMQNotification) HeaderAdded(block *types.BlockIndex) {
	log.Trace(fmt.Sprintf("HeaderAdded:%s", block.GetHash()))
	zn.notify("NotifyChainHeaderAdded", func(n IZMQPublishNotifier) error {
		return n.NotifyChainHeaderAdded(block)
	})
}

func (zn *ZMQNotification) TransactionAddedToMempool(tx *btcutil.Tx, fee btcutil.Amount, mempoolSequence uint64) {
	log.Trace(fmt.Sprintf("TransactionAddedToMempool:%s", tx.Hash()))
	zn.notify("NotifyTransaction", func(n IZMQPublishNotifier) error {
		return n.NotifyTransaction(tx)
	})
	zn.notify("NotifyTransactionAcceptance", func(n IZMQPublishNotifier) error {
		return n.NotifyTransactionAcceptance(tx, mempoolSequence)
	})
	zn.notify("NotifyTransactionFee", func(n IZMQPublishNotifier) error {
		return n.NotifyTransactionFee(tx, fee)
	})
}

// TransactionRemovedFromMempool publishes the removal reason of every removed
// transaction.  Transactions leaving for a block are reported as confirmed
// rather than on the sequence topic, the block connection covers them there.
func (zn *ZMQNotification) TransactionRemovedFromMempool(tx *btcutil.Tx, reason mempool.RemovalReason,
	mempoolSequence uint64, block *types.BlockIndex) {
	log.Trace(fmt.Sprintf("TransactionRemovedFromMempool:%s %s", tx.Hash(), reason))
	zn.notify("NotifyTransactionRemovalReason", func(n IZMQPublishNotifier) error {
		return n.NotifyTransactionRemovalReason(tx, reason)
	})
	if reason != mempool.RemovalBlock {
		zn.notify("NotifyTransactionRemoval", func(n IZMQPublishNotifier) error {
			return n.NotifyTransactionRemoval(tx, mempoolSequence)
		})
		return
	}
	if block != nil {
		zn.notify("NotifyMempoolTransactionConfirmed", func(n IZMQPublishNotifier) error {
			return n.NotifyMempoolTransactionConfirmed(tx, block)
		})
	}
}

func (zn *ZMQNotification) TransactionReplaced(replaced *btcutil.Tx, replacedFee btcutil.Amount,
	replacement *btcutil.Tx, replacementFee btcutil.Amount) {
	log.Trace(fmt.Sprintf("TransactionReplaced:%s by %s", replaced.Hash(), replacement.Hash()))
	zn.notify("NotifyTransactionReplaced", func(n IZMQPublishNotifier) error {
		return n.NotifyTransactionReplaced(replaced, replacedFee, replacement, replacementFee)
	})
}

// Start subscribes to the node event feed and dispatches chain and mempool
// notifications until Stop.
func (zn *ZMQNotification) Start(ctx context.Context, feed *event.Feed) error {
	if err := zn.Service.Start(ctx); err != nil {
		return err
	}
	log.Info("Starting ZMQ notification", "publishers", len(zn.ActiveNotifiers()))

	zn.events = make(chan *event.Event)
	zn.sub = feed.Subscribe(zn.events)
	zn.wg.Add(1)
	go zn.handler()
	return nil
}

func (zn *ZMQNotification) handler() {
	defer zn.wg.Done()
	for {
		select {
		case ev := <-zn.events:
			zn.handleEvent(ev)
			if ev.Ack != nil {
				ev.Ack <- struct{}{}
			}
		case err := <-zn.sub.Err():
			if err != nil {
				log.Error("ZMQ event subscription failed", "error", err)
			}
			return
		case <-zn.Context().Done():
			return
		}
	}
}

func (zn *ZMQNotification) handleEvent(ev *event.Event) {
	switch value := ev.Data.(type) {
	case *blockchain.Notification:
		zn.handleChainNotification(value)
	case *mempool.Notification:
		zn.handleMempoolNotification(value)
	}
}

func (zn *ZMQNotification) handleChainNotification(n *blockchain.Notification) {
	switch n.Type {
	case blockchain.BlockTipUpdated, blockchain.HeaderAdded:
		block, ok := n.Data.(*types.BlockIndex)
		if !ok {
			log.Warn(fmt.Sprintf("Chain notification %s is not a block index", n.Type))
			return
		}
		if n.Type == blockchain.BlockTipUpdated {
			zn.UpdatedBlockTip(block)
		} else {
			zn.HeaderAdded(block)
		}
	case blockchain.BlockConnected, blockchain.BlockDisconnected:
		data, ok := n.Data.(*blockchain.BlockConnectedNotifyData)
		if !ok || data.Block == nil {
			log.Warn(fmt.Sprintf("Chain notification %s is not a block", n.Type))
			return
		}
		if n.Type == blockchain.BlockConnected {
			zn.BlockConnected(data.Block, data.Transactions)
		} else {
			zn.BlockDisconnected(data.Block, data.Transactions)
		}
	}
}

func (zn *ZMQNotification) handleMempoolNotification(n *mempool.Notification) {
	switch data := n.Data.(type) {
	case *mempool.TxAcceptedNotifyData:
		zn.TransactionAddedToMempool(data.Tx, data.Fee, data.MempoolSequence)
	case *mempool.TxRemovedNotifyData:
		zn.TransactionRemovedFromMempool(data.Tx, data.Reason, data.MempoolSequence, data.Block)
	case *mempool.TxReplacedNotifyData:
		zn.TransactionReplaced(data.Replaced, data.ReplacedFee, data.Replacement, data.ReplacementFee)
	default:
		log.Warn(fmt.Sprintf("Mempool notification %s has unexpected data %T", n.Type, n.Data))
	}
}

// Stop ends the feed subscription and shuts every publisher down.
func (zn *ZMQNotification) Stop() error {
	if err := zn.Service.Stop(); err != nil {
		return err
	}
	if zn.sub != nil {
		zn.sub.Unsubscribe()
		zn.wg.Wait()
	}
	zn.Shutdown()
	return nil
}

// Shutdown releases every publisher and closes the remaining sockets.
func (zn *ZMQNotification) Shutdown() {
	zn.mtx.Lock()
	defer zn.mtx.Unlock()
	for _, n := range zn.publishNotifiers {
		n.Shutdown()
	}
	zn.publishNotifiers = nil
	zn.registry.Close()
	log.Info("ZMQ notification shutdown")
}

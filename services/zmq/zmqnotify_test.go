package zmq

import (
	"context"
	"testing"
	"time"

	"github.com/Qitmeer/zmqnotify/config"
	"github.com/Qitmeer/zmqnotify/core/blockchain"
	"github.com/Qitmeer/zmqnotify/core/event"
	"github.com/Qitmeer/zmqnotify/services/mempool"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	blockAddress   = "tcp://127.0.0.1:28332"
	txAddress      = "tcp://127.0.0.1:28333"
	mempoolAddress = "tcp://127.0.0.1:28334"
)

func topicsOf(msgs [][][]byte) []string {
	topics := make([]string, 0, len(msgs))
	for _, msg := range msgs {
		topics = append(topics, string(msg[0]))
	}
	return topics
}

func newTestNotification(t *testing.T, cfg *config.Config, factory *fakeFactory, opts *Options) *ZMQNotification {
	if opts == nil {
		opts = &Options{}
	}
	opts.SocketFactory = factory
	zn, err := NewZMQNotification(cfg, opts)
	require.NoError(t, err)
	return zn
}

func TestNewZMQNotification(t *testing.T) {
	cfg := &config.Config{
		Zmqpubhashblock:    []string{blockAddress, blockAddress, "default"},
		Zmqpubhashblockhwm: 50,
		Zmqpubhashtx:       []string{blockAddress},
		Zmqpubhashtxhwm:    70,
		Zmqpubrawtx:        []string{txAddress},
		Zmqpubrawtxhwm:     -1,
	}
	factory := newFakeFactory()
	factory.failBind[txAddress] = true
	zn := newTestNotification(t, cfg, factory, nil)

	assert.True(t, zn.IsEnable())
	assert.Equal(t, []NotifierInfo{
		{Topic: HashBlock, Address: blockAddress, HighWaterMark: 50},
		{Topic: HashBlock, Address: "tcp://*:8230", HighWaterMark: 50},
		{Topic: HashTx, Address: blockAddress, HighWaterMark: 70},
	}, zn.ActiveNotifiers())
	assert.Equal(t, 2, zn.registry.RefCount(blockAddress))
	assert.Equal(t, 50, factory.socket(blockAddress).hwm)

	zn.Shutdown()
	assert.False(t, zn.IsEnable())
	assert.Equal(t, 0, zn.registry.Len())
	for _, sock := range factory.sockets {
		assert.True(t, sock.closed)
	}
}

func TestNewZMQNotificationWithoutPublishers(t *testing.T) {
	zn := newTestNotification(t, &config.Config{}, newFakeFactory(), nil)
	assert.False(t, zn.IsEnable())
	assert.Empty(t, zn.ActiveNotifiers())
}

func TestNewZMQNotificationNotSupported(t *testing.T) {
	cfg := &config.Config{Zmqpubhashblock: []string{blockAddress}}
	factory := newFakeFactory()
	factory.createErr = ErrNotSupported
	zn := newTestNotification(t, cfg, factory, nil)
	assert.False(t, zn.IsEnable())
}

func TestBlockConnectedDispatch(t *testing.T) {
	cfg := &config.Config{
		Zmqpubhashblock:      []string{blockAddress},
		Zmqpubhashtx:         []string{txAddress},
		Zmqpubsequence:       []string{txAddress},
		Zmqpubchainconnected: []string{blockAddress},
	}
	block := testBlock(9)
	txs := []*btcutil.Tx{testTx(1), testTx(2)}
	db := &fakeBlockDB{blocks: map[chainhash.Hash][]byte{*block.GetHash(): {0x09}}}
	factory := newFakeFactory()
	zn := newTestNotification(t, cfg, factory, &Options{BlockDB: db})
	defer zn.Shutdown()

	zn.BlockConnected(block, txs)

	assert.Equal(t, []string{"chainconnected"}, topicsOf(factory.socket(blockAddress).sent()))
	assert.Equal(t, []string{"hashtx", "hashtx", "sequence"}, topicsOf(factory.socket(txAddress).sent()))
	seq := factory.socket(txAddress).sent()[2]
	assert.Equal(t, byte('C'), seq[1][32])

	zn.UpdatedBlockTip(block)
	assert.Equal(t, []string{"chainconnected", "hashblock"}, topicsOf(factory.socket(blockAddress).sent()))

	zn.BlockDisconnected(block, txs[:1])
	msgs := factory.socket(txAddress).sent()
	assert.Equal(t, []string{"hashtx", "hashtx", "sequence", "hashtx", "sequence"}, topicsOf(msgs))
	assert.Equal(t, byte('D'), msgs[4][1][32])
	assert.Equal(t, uint32(1), seqOf(msgs[4]))
}

func TestMempoolDispatch(t *testing.T) {
	cfg := &config.Config{
		Zmqpubsequence:         []string{txAddress},
		Zmqpubmempooladded:     []string{mempoolAddress},
		Zmqpubmempoolremoved:   []string{mempoolAddress},
		Zmqpubmempoolreplaced:  []string{mempoolAddress},
		Zmqpubmempoolconfirmed: []string{mempoolAddress},
	}
	factory := newFakeFactory()
	zn := newTestNotification(t, cfg, factory, nil)
	defer zn.Shutdown()
	tx := testTx(11)

	zn.TransactionAddedToMempool(tx, 1000, 42)
	seqMsgs := factory.socket(txAddress).sent()
	require.Len(t, seqMsgs, 1)
	assert.Equal(t, byte('A'), seqMsgs[0][1][32])
	assert.Equal(t, []byte{42, 0, 0, 0, 0, 0, 0, 0}, seqMsgs[0][1][33:])

	zn.TransactionRemovedFromMempool(tx, mempool.RemovalExpiry, 43, nil)
	zn.TransactionRemovedFromMempool(tx, mempool.RemovalBlock, 44, testBlock(20))
	zn.TransactionRemovedFromMempool(tx, mempool.RemovalBlock, 45, nil)
	zn.TransactionReplaced(tx, 10, testTx(12), 20)

	seqMsgs = factory.socket(txAddress).sent()
	require.Len(t, seqMsgs, 2)
	assert.Equal(t, byte('R'), seqMsgs[1][1][32])

	msgs := factory.socket(mempoolAddress).sent()
	assert.Equal(t, []string{
		"mempooladded",
		"mempoolremoved",
		"mempoolremoved", "mempoolconfirmed",
		"mempoolremoved",
		"mempoolreplaced",
	}, topicsOf(msgs))
	assert.Equal(t, []byte{3, 0, 0, 0}, msgs[2][4])
}

func TestDispatchContinuesAfterFailure(t *testing.T) {
	cfg := &config.Config{
		Zmqpubrawblock:  []string{blockAddress},
		Zmqpubhashblock: []string{txAddress},
	}
	factory := newFakeFactory()
	zn := newTestNotification(t, cfg, factory, nil)
	defer zn.Shutdown()

	// rawblock has no block database and fails.
	zn.UpdatedBlockTip(testBlock(1))
	assert.Empty(t, factory.socket(blockAddress).sent())
	assert.Len(t, factory.socket(txAddress).sent(), 1)
}

func TestFeedDispatch(t *testing.T) {
	cfg := &config.Config{
		Zmqpubhashblock:        []string{blockAddress},
		Zmqpubchainheaderadded: []string{blockAddress},
		Zmqpubhashtx:           []string{txAddress},
	}
	factory := newFakeFactory()
	zn := newTestNotification(t, cfg, factory, nil)
	feed := new(event.Feed)
	require.NoError(t, zn.Start(context.Background(), feed))

	send := func(data interface{}) {
		ev, ack := event.NewWithAck(data)
		feed.Send(ev)
		select {
		case <-ack:
		case <-time.After(5 * time.Second):
			t.Fatal("event was not acknowledged")
		}
	}
	block := testBlock(4)
	send(&blockchain.Notification{Type: blockchain.BlockTipUpdated, Data: block})
	send(&blockchain.Notification{Type: blockchain.HeaderAdded, Data: block})
	send(&blockchain.Notification{Type: blockchain.BlockConnected, Data: "bogus"})
	send(&mempool.Notification{Type: mempool.TxAccepted, Data: &mempool.TxAcceptedNotifyData{
		Tx: testTx(1), Fee: 5, MempoolSequence: 1,
	}})
	send("unrelated")

	assert.Equal(t, []string{"hashblock", "chainheaderadded"}, topicsOf(factory.socket(blockAddress).sent()))
	assert.Equal(t, []string{"hashtx"}, topicsOf(factory.socket(txAddress).sent()))

	assert.NoError(t, zn.Stop())
	assert.Error(t, zn.Stop())
	assert.Equal(t, 0, zn.registry.Len())
	assert.Equal(t, 0, feed.Send(event.New(block)))
}

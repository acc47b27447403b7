package zmq

import (
	"errors"
	"sync"
	"time"

	"github.com/Qitmeer/zmqnotify/core/types"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/btcsuite/btcutil"
)

var errSendFailed = errors.New("send failed")

type fakeSocket struct {
	factory *fakeFactory

	mtx       sync.Mutex
	address   string
	hwm       int
	keepAlive int
	ipv6      bool
	linger    int
	closed    bool
	failSend  bool
	messages  [][][]byte
}

func (s *fakeSocket) SetSendHighWaterMark(hwm int) error {
	s.hwm = hwm
	return nil
}

func (s *fakeSocket) SetTCPKeepAlive(keepAlive int) error {
	s.keepAlive = keepAlive
	return nil
}

func (s *fakeSocket) SetIPv6(enable bool) error {
	s.ipv6 = enable
	return nil
}

func (s *fakeSocket) SetLinger(millis int) error {
	s.linger = millis
	return nil
}

func (s *fakeSocket) Bind(address string) error {
	if s.factory.failBind[address] {
		return errors.New("address in use")
	}
	s.address = address
	return nil
}

func (s *fakeSocket) SendMessage(parts [][]byte) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	if s.failSend {
		return errSendFailed
	}
	msg := make([][]byte, len(parts))
	copy(msg, parts)
	s.messages = append(s.messages, msg)
	return nil
}

func (s *fakeSocket) Close() error {
	s.closed = true
	return nil
}

func (s *fakeSocket) setFailSend(fail bool) {
	s.mtx.Lock()
	s.failSend = fail
	s.mtx.Unlock()
}

func (s *fakeSocket) sent() [][][]byte {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return append([][][]byte(nil), s.messages...)
}

// fakeFactory records every socket it creates.
type fakeFactory struct {
	mtx       sync.Mutex
	sockets   []*fakeSocket
	failBind  map[string]bool
	createErr error
}

func newFakeFactory() *fakeFactory {
	return &fakeFactory{failBind: make(map[string]bool)}
}

func (f *fakeFactory) NewPubSocket() (Socket, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	s := &fakeSocket{factory: f, linger: -1}
	f.mtx.Lock()
	f.sockets = append(f.sockets, s)
	f.mtx.Unlock()
	return s, nil
}

// socket returns the last socket bound to address.
func (f *fakeFactory) socket(address string) *fakeSocket {
	f.mtx.Lock()
	defer f.mtx.Unlock()
	for i := len(f.sockets) - 1; i >= 0; i-- {
		if f.sockets[i].address == address {
			return f.sockets[i]
		}
	}
	return nil
}

type fakeBlockDB struct {
	blocks map[chainhash.Hash][]byte
}

func (db *fakeBlockDB) FetchBlock(hash *chainhash.Hash) ([]byte, error) {
	raw, ok := db.blocks[*hash]
	if !ok {
		return nil, errors.New("block not found")
	}
	return raw, nil
}

func (db *fakeBlockDB) HasBlock(hash *chainhash.Hash) (bool, error) {
	_, ok := db.blocks[*hash]
	return ok, nil
}

func testTx(lockTime uint32) *btcutil.Tx {
	msg := wire.NewMsgTx(wire.TxVersion)
	msg.AddTxIn(wire.NewTxIn(wire.NewOutPoint(&chainhash.Hash{0x01}, 0), []byte{0x51}, nil))
	msg.AddTxOut(wire.NewTxOut(5000, []byte{0x76, 0xa9}))
	msg.LockTime = lockTime
	return btcutil.NewTx(msg)
}

func testBlock(height int32) *types.BlockIndex {
	header := wire.NewBlockHeader(1, &chainhash.Hash{0xaa, byte(height)}, &chainhash.Hash{0xbb},
		0x1d00ffff, uint32(height))
	header.Timestamp = time.Unix(1600000000+int64(height), 0)
	return types.NewBlockIndex(header, height)
}

func reversed(b []byte) []byte {
	r := make([]byte, len(b))
	for i := range b {
		r[i] = b[len(b)-1-i]
	}
	return r
}

//go:build zmq
// +build zmq

package zmq

import (
	"errors"

	"github.com/zeromq/goczmq"
)

type czmqSocket struct {
	sock *goczmq.Sock
}

func (s *czmqSocket) SetSendHighWaterMark(hwm int) error {
	s.sock.SetSndhwm(hwm)
	return nil
}

func (s *czmqSocket) SetTCPKeepAlive(keepAlive int) error {
	s.sock.SetTcpKeepalive(keepAlive)
	return nil
}

func (s *czmqSocket) SetIPv6(enable bool) error {
	v := 0
	if enable {
		v = 1
	}
	s.sock.SetIpv6(v)
	return nil
}

func (s *czmqSocket) SetLinger(millis int) error {
	s.sock.SetLinger(millis)
	return nil
}

func (s *czmqSocket) Bind(address string) error {
	_, err := s.sock.Bind(address)
	return err
}

func (s *czmqSocket) SendMessage(parts [][]byte) error {
	return s.sock.SendMessage(parts)
}

func (s *czmqSocket) Close() error {
	s.sock.Destroy()
	return nil
}

// DefaultSocketFactory returns the czmq backed socket factory.
func DefaultSocketFactory() SocketFactory {
	return SocketFactoryFunc(func() (Socket, error) {
		sock := goczmq.NewSock(goczmq.Pub)
		if sock == nil {
			return nil, errors.New("failed to create socket")
		}
		return &czmqSocket{sock: sock}, nil
	})
}

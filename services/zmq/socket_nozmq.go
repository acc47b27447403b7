//go:build !zmq
// +build !zmq

package zmq

// DefaultSocketFactory returns a factory failing every socket creation with
// ErrNotSupported, so publishers are disabled instead of the node failing.
func DefaultSocketFactory() SocketFactory {
	return SocketFactoryFunc(func() (Socket, error) {
		return nil, ErrNotSupported
	})
}

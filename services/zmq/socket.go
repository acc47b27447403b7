package zmq

import "errors"

var (
	// ErrNotSupported is returned by the default socket factory of builds
	// without the zmq tag.
	ErrNotSupported = errors.New("ZMQ: not supported, rebuild with -tags zmq")

	// ErrNotInitialized a notifier was asked to send before Initialize
	// succeeded or after Shutdown.
	ErrNotInitialized = errors.New("ZMQ: publish notifier is not initialized")

	// ErrUnknownTopic no publish notifier exists for the topic.
	ErrUnknownTopic = errors.New("ZMQ: unknown publish notifier topic")
)

// lingerDiscard closes a socket without waiting for unsent messages.
const lingerDiscard = 0

// Socket is a bound PUB socket.  Implementations need not be safe for
// concurrent use, Endpoint serializes access.
type Socket interface {
	SetSendHighWaterMark(hwm int) error
	SetTCPKeepAlive(keepAlive int) error
	SetIPv6(enable bool) error
	SetLinger(millis int) error
	Bind(address string) error

	// SendMessage sends parts as one multipart message.
	SendMessage(parts [][]byte) error

	Close() error
}

// SocketFactory creates unbound PUB sockets.
type SocketFactory interface {
	NewPubSocket() (Socket, error)
}

// SocketFactoryFunc adapts a function to SocketFactory.
type SocketFactoryFunc func() (Socket, error)

func (f SocketFactoryFunc) NewPubSocket() (Socket, error) {
	return f()
}

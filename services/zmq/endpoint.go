package zmq

import (
	"fmt"
	"sync"
)

// Endpoint is a bound PUB socket shared by every notifier configured with the
// same address.
type Endpoint struct {
	address       string
	highWaterMark int
	sock          Socket

	// refs is guarded by the registry mutex.
	refs     int
	registry *EndpointRegistry

	sendMtx sync.Mutex
	closed  bool
}

func (e *Endpoint) Address() string {
	return e.address
}

// Send transmits parts as one multipart message.  A socket is not safe for
// concurrent use, so sends from the notifiers sharing it are serialized.
// Sending on a closed endpoint returns ErrNotInitialized.
func (e *Endpoint) Send(parts [][]byte) error {
	e.sendMtx.Lock()
	defer e.sendMtx.Unlock()
	if e.closed {
		return ErrNotInitialized
	}
	return e.sock.SendMessage(parts)
}

// Release drops one reference.  The socket is closed with the last one.
func (e *Endpoint) Release() {
	e.registry.release(e)
}

// EndpointRegistry owns the address to endpoint table.  At most one live
// endpoint exists per address.
type EndpointRegistry struct {
	factory   SocketFactory
	mtx       sync.Mutex
	endpoints map[string]*Endpoint
}

func NewEndpointRegistry(factory SocketFactory) *EndpointRegistry {
	if factory == nil {
		factory = DefaultSocketFactory()
	}
	return &EndpointRegistry{
		factory:   factory,
		endpoints: make(map[string]*Endpoint),
	}
}

// Acquire returns the live endpoint bound to address, creating and binding a
// new socket when there is none.  Options of the notifier that created the
// endpoint stay in effect for every later holder.
func (r *EndpointRegistry) Acquire(address string, highWaterMark int) (*Endpoint, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if ep, ok := r.endpoints[address]; ok {
		log.Debug("Reusing socket", "address", address, "refs", ep.refs+1)
		if ep.highWaterMark != highWaterMark {
			log.Warn("Socket already bound with a different high water mark, keeping the first",
				"address", address, "hwm", ep.highWaterMark, "requested", highWaterMark)
		}
		ep.refs++
		return ep, nil
	}

	sock, err := r.factory.NewPubSocket()
	if err != nil {
		return nil, fmt.Errorf("Failed to create socket: %v", err)
	}
	if err := configureSocket(sock, address, highWaterMark); err != nil {
		if cerr := sock.Close(); cerr != nil {
			log.Debug("Failed to close socket", "address", address, "error", cerr)
		}
		return nil, err
	}

	ep := &Endpoint{
		address:       address,
		highWaterMark: highWaterMark,
		sock:          sock,
		refs:          1,
		registry:      r,
	}
	r.endpoints[address] = ep
	log.Debug("Bound socket", "address", address, "hwm", highWaterMark)
	return ep, nil
}

func configureSocket(sock Socket, address string, highWaterMark int) error {
	log.Debug("Outbound message high water mark", "address", address, "hwm", highWaterMark)
	if err := sock.SetSendHighWaterMark(highWaterMark); err != nil {
		return fmt.Errorf("Failed to set outbound message high water mark: %v", err)
	}
	if err := sock.SetTCPKeepAlive(1); err != nil {
		return fmt.Errorf("Failed to set SO_KEEPALIVE: %v", err)
	}
	if err := sock.SetIPv6(isZMQAddressIPv6(address)); err != nil {
		return fmt.Errorf("Failed to set IPv6: %v", err)
	}
	if err := sock.Bind(address); err != nil {
		return fmt.Errorf("Failed to bind address %s: %v", address, err)
	}
	return nil
}

func (r *EndpointRegistry) release(ep *Endpoint) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if ep.refs <= 0 {
		return
	}
	ep.refs--
	if ep.refs > 0 {
		return
	}
	r.closeEndpoint(ep)
}

// closeEndpoint must be called with the registry mutex held.
func (r *EndpointRegistry) closeEndpoint(ep *Endpoint) {
	ep.refs = 0
	if cur, ok := r.endpoints[ep.address]; ok && cur == ep {
		delete(r.endpoints, ep.address)
	}
	log.Debug("Close socket", "address", ep.address)
	ep.sendMtx.Lock()
	defer ep.sendMtx.Unlock()
	ep.closed = true
	if err := ep.sock.SetLinger(lingerDiscard); err != nil {
		log.Debug("Failed to set linger", "address", ep.address, "error", err)
	}
	if err := ep.sock.Close(); err != nil {
		log.Debug("Failed to close socket", "address", ep.address, "error", err)
	}
}

// RefCount returns the number of holders of the endpoint bound to address.
func (r *EndpointRegistry) RefCount(address string) int {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	if ep, ok := r.endpoints[address]; ok {
		return ep.refs
	}
	return 0
}

func (r *EndpointRegistry) Len() int {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	return len(r.endpoints)
}

// Close tears down every remaining endpoint regardless of its holders.
func (r *EndpointRegistry) Close() {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	for _, ep := range r.endpoints {
		r.closeEndpoint(ep)
	}
}

package zmq

import (
	"net"
	"strings"
)

const tcpPrefix = "tcp://"

// isZMQAddressIPv6 reports whether address is a tcp endpoint bound to a
// literal IPv6 host.  Host names are not resolved.  Some systems refuse to
// bind a non IPv6 address when ZMQ_IPV6 is enabled, so anything else is
// treated as IPv4.
func isZMQAddressIPv6(address string) bool {
	colon := strings.LastIndex(address, ":")
	if !strings.HasPrefix(address, tcpPrefix) || colon < len(tcpPrefix) {
		return false
	}
	host := address[len(tcpPrefix):colon]
	host = strings.TrimSuffix(strings.TrimPrefix(host, "["), "]")
	ip := net.ParseIP(host)
	return ip != nil && ip.To4() == nil
}

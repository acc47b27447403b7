package zmq

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsZMQAddressIPv6(t *testing.T) {
	tests := []struct {
		address string
		ipv6    bool
	}{
		{"tcp://[::1]:28332", true},
		{"tcp://::1:28332", true},
		{"tcp://[2001:db8::1]:28332", true},
		{"tcp://127.0.0.1:28332", false},
		{"tcp://*:28332", false},
		{"tcp://localhost:28332", false},
		{"tcp://[::ffff:127.0.0.1]:28332", false},
		{"ipc:///tmp/zmq.sock", false},
		{"tcp:", false},
		{"", false},
	}
	for _, test := range tests {
		assert.Equal(t, test.ipv6, isZMQAddressIPv6(test.address), test.address)
	}
}

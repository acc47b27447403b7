//go:build zmq
// +build zmq

package zmq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeromq/goczmq"
)

func TestCzmqRoundTrip(t *testing.T) {
	const address = "tcp://127.0.0.1:28399"
	registry := NewEndpointRegistry(DefaultSocketFactory())
	defer registry.Close()

	n, err := NewZMQPublishNotifier(HashBlock, address, nil)
	require.NoError(t, err)
	require.NoError(t, n.Initialize(registry))
	defer n.Shutdown()

	sub, err := goczmq.NewSub(address, HashBlock)
	require.NoError(t, err)
	defer sub.Destroy()
	sub.SetRcvtimeo(200)

	block := testBlock(1)
	// PUB drops messages until the subscription has propagated.
	var msg [][]byte
	for i := 0; i < 50 && msg == nil; i++ {
		require.NoError(t, n.NotifyBlock(block))
		msg, _ = sub.RecvMessage()
	}
	require.NotNil(t, msg)
	assert.Equal(t, HashBlock, string(msg[0]))
	assert.Equal(t, hashPart(block.GetHash()), msg[1])
	assert.Len(t, msg[2], 4)
}

package blockchain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotificationTypeString(t *testing.T) {
	assert.Equal(t, "BlockTipUpdated", BlockTipUpdated.String())
	assert.Equal(t, "BlockConnected", BlockConnected.String())
	assert.Equal(t, "BlockDisconnected", BlockDisconnected.String())
	assert.Equal(t, "HeaderAdded", HeaderAdded.String())
	assert.Equal(t, "Unknown Notification Type (99)", NotificationType(99).String())
}

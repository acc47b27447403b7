// Copyright (c) 2017-2018 The qitmeer developers
// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2016 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"fmt"

	"github.com/Qitmeer/zmqnotify/core/types"
	"github.com/btcsuite/btcutil"
)

// NotificationType represents the type of a notification message.
type NotificationType int

// Constants for the type of a notification message.
const (
	// BlockTipUpdated indicates the associated block became the new best
	// block of the main chain.
	BlockTipUpdated NotificationType = iota

	// BlockConnected indicates the associated block was connected to the
	// main chain.
	BlockConnected

	// BlockDisconnected indicates the associated block was disconnected
	// from the main chain.
	BlockDisconnected

	// HeaderAdded indicates a new header was added to the header tree.  It
	// may or may not become part of the main chain later.
	HeaderAdded
)

// notificationTypeStrings is a map of notification types back to their constant
// names for pretty printing.
var notificationTypeStrings = map[NotificationType]string{
	BlockTipUpdated:   "BlockTipUpdated",
	BlockConnected:    "BlockConnected",
	BlockDisconnected: "BlockDisconnected",
	HeaderAdded:       "HeaderAdded",
}

// String returns the NotificationType in human-readable form.
func (n NotificationType) String() string {
	if s, ok := notificationTypeStrings[n]; ok {
		return s
	}
	return fmt.Sprintf("Unknown Notification Type (%d)", int(n))
}

// BlockConnectedNotifyData is the structure for data indicating information
// about a block connected to or disconnected from the main chain.
type BlockConnectedNotifyData struct {
	// Block is the index of the block being (dis)connected.
	Block *types.BlockIndex

	// Transactions are the transactions of the block, coinbase first.
	Transactions []*btcutil.Tx
}

// Notification defines notification that is sent to the caller via the callback
// function provided during the call to New and consists of a notification type
// as well as associated data that depends on the type as follows:
// 	- BlockTipUpdated:   *types.BlockIndex
// 	- BlockConnected:    *BlockConnectedNotifyData
// 	- BlockDisconnected: *BlockConnectedNotifyData
// 	- HeaderAdded:       *types.BlockIndex
type Notification struct {
	Type NotificationType
	Data interface{}
}

// Copyright (c) 2017-2020 The qitmeer developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mempool

import (
	"fmt"

	"github.com/Qitmeer/zmqnotify/core/types"
	"github.com/btcsuite/btcutil"
)

// NotificationType represents the type of a mempool notification message.
type NotificationType int

const (
	// TxAccepted indicates a transaction was accepted into the pool.
	TxAccepted NotificationType = iota

	// TxRemoved indicates a transaction left the pool.
	TxRemoved

	// TxReplaced indicates a pool transaction was replaced by another one.
	TxReplaced
)

var notificationTypeStrings = map[NotificationType]string{
	TxAccepted: "TxAccepted",
	TxRemoved:  "TxRemoved",
	TxReplaced: "TxReplaced",
}

func (n NotificationType) String() string {
	if s, ok := notificationTypeStrings[n]; ok {
		return s
	}
	return fmt.Sprintf("Unknown Notification Type (%d)", int(n))
}

// TxAcceptedNotifyData is sent for every transaction entering the pool.
type TxAcceptedNotifyData struct {
	Tx  *btcutil.Tx
	Fee btcutil.Amount

	// MempoolSequence is the pool's own event counter at acceptance.
	MempoolSequence uint64
}

// TxRemovedNotifyData is sent for every transaction leaving the pool.
type TxRemovedNotifyData struct {
	Tx              *btcutil.Tx
	Reason          RemovalReason
	MempoolSequence uint64

	// Block is the index of the confirming block when Reason is
	// RemovalBlock, nil otherwise.
	Block *types.BlockIndex
}

// TxReplacedNotifyData is sent when a pool transaction is replaced.
type TxReplacedNotifyData struct {
	Replaced       *btcutil.Tx
	ReplacedFee    btcutil.Amount
	Replacement    *btcutil.Tx
	ReplacementFee btcutil.Amount
}

// Notification is published by the pool on the node event feed.  Data depends
// on the type:
// 	- TxAccepted: *TxAcceptedNotifyData
// 	- TxRemoved:  *TxRemovedNotifyData
// 	- TxReplaced: *TxReplacedNotifyData
type Notification struct {
	Type NotificationType
	Data interface{}
}

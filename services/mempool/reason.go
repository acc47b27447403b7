// Copyright (c) 2017-2020 The qitmeer developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mempool

import "fmt"

// RemovalReason describes why a transaction left the memory pool.  The ordinal
// values are part of the published wire format and must not be reordered.
type RemovalReason int32

const (
	// RemovalExpiry the transaction stayed in the pool longer than the
	// configured expiry.
	RemovalExpiry RemovalReason = iota

	// RemovalSizeLimit the transaction was evicted to keep the pool within
	// its size limit.
	RemovalSizeLimit

	// RemovalReorg the transaction became invalid after a reorganization.
	RemovalReorg

	// RemovalBlock the transaction was included in a connected block.
	RemovalBlock

	// RemovalConflict the transaction conflicts with a transaction of a
	// connected block.
	RemovalConflict

	// RemovalReplaced the transaction was replaced by a higher fee one.
	RemovalReplaced
)

var removalReasonStrings = map[RemovalReason]string{
	RemovalExpiry:    "expiry",
	RemovalSizeLimit: "sizelimit",
	RemovalReorg:     "reorg",
	RemovalBlock:     "block",
	RemovalConflict:  "conflict",
	RemovalReplaced:  "replaced",
}

func (r RemovalReason) String() string {
	if s, ok := removalReasonStrings[r]; ok {
		return s
	}
	return fmt.Sprintf("unknown(%d)", int32(r))
}

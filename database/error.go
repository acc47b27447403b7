// Copyright (c) 2017-2020 The qitmeer developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package database

import "errors"

var (
	// ErrDbTypeRegistered a driver with the same type name was already
	// registered.
	ErrDbTypeRegistered = errors.New("database type already registered")

	// ErrDbUnknownType no driver is registered for the requested type.
	ErrDbUnknownType = errors.New("unknown database type")

	// ErrBlockNotFound the requested block is not stored.
	ErrBlockNotFound = errors.New("block not found")
)

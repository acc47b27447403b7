/*
 * Copyright (c) 2017-2020 The qitmeer developers
 */

package event

import (
	"github.com/ethereum/go-ethereum/event"
)

// Feed delivers every sent Event to all subscribed channels.
type Feed = event.Feed

type Subscription = event.Subscription

type Event struct {
	Data interface{}
	Ack  chan<- struct{}
}

func New(data interface{}) *Event {
	return &Event{Data: data, Ack: nil}
}

// NewWithAck returns an event together with the channel its subscriber signals
// once the event has been handled.
func NewWithAck(data interface{}) (*Event, <-chan struct{}) {
	ack := make(chan struct{}, 1)
	return &Event{Data: data, Ack: ack}, ack
}

package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotifierBroadcastReachesAllListeners(t *testing.T) {
	n := NewNotifier()

	a, b := 0, 0
	n.Subscribe(func() { a++ })
	n.Subscribe(func() { b++ })

	n.broadcast()
	n.broadcast()

	assert.Equal(t, 2, a)
	assert.Equal(t, 2, b)
}

func TestNotifierUnsubscribeStopsDelivery(t *testing.T) {
	n := NewNotifier()

	calls := 0
	unsubscribe := n.Subscribe(func() { calls++ })

	n.broadcast()
	unsubscribe()
	n.broadcast()

	assert.Equal(t, 1, calls)
}

func TestNotifierUnsubscribeIsIdempotent(t *testing.T) {
	n := NewNotifier()

	calls := 0
	unsubscribe := n.Subscribe(func() { calls++ })

	unsubscribe()
	assert.NotPanics(t, unsubscribe)

	n.broadcast()
	assert.Equal(t, 0, calls)
}

func TestNotifierMountUnmountCyclesLeaveNoDanglingListener(t *testing.T) {
	n := NewNotifier()

	calls := 0
	for i := 0; i < 5; i++ {
		unsubscribe := n.Subscribe(func() { calls++ })
		unsubscribe()
	}

	n.broadcast()
	assert.Equal(t, 0, calls)
}

func TestNotifierUnsubscribeOnlyRemovesOwnListener(t *testing.T) {
	n := NewNotifier()

	a, b := 0, 0
	unsubA := n.Subscribe(func() { a++ })
	n.Subscribe(func() { b++ })

	unsubA()
	n.broadcast()

	assert.Equal(t, 0, a)
	assert.Equal(t, 1, b)
}

package cart

import "sync"

// Notifier broadcasts a payload-less "cart changed" signal to any number of
// listeners. The signal carries no data on purpose: listeners re-read the
// cart through the Manager, so rapid successive mutations can never leave a
// listener holding a stale snapshot.
type Notifier struct {
	mu   sync.Mutex
	next int
	subs map[int]func()
}

func NewNotifier() *Notifier {
	return &Notifier{subs: make(map[int]func())}
}

// Subscribe registers fn and returns its unsubscribe func. The returned
// func may be called more than once; a subscribe/unsubscribe cycle leaves
// no dangling listener.
func (n *Notifier) Subscribe(fn func()) func() {
	n.mu.Lock()
	id := n.next
	n.next++
	n.subs[id] = fn
	n.mu.Unlock()

	return func() {
		n.mu.Lock()
		delete(n.subs, id)
		n.mu.Unlock()
	}
}

func (n *Notifier) broadcast() {
	n.mu.Lock()
	fns := make([]func(), 0, len(n.subs))
	for _, fn := range n.subs {
		fns = append(fns, fn)
	}
	n.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

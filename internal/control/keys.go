package control

type Key int

const (
	KeyLeft Key = iota
	KeyRight
)

func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	default:
		return "unknown"
	}
}

type KeyEvent struct {
	Key   Key
	Press bool
}

// KeySource delivers global key events to subscribers until the returned
// function is called.
type KeySource interface {
	Subscribe(handler func(KeyEvent)) (unsubscribe func())
}

// KeyHub is a KeySource fed by Dispatch. Handlers run synchronously, in
// subscription order.
type KeyHub struct {
	nextID   int
	handlers map[int]func(KeyEvent)
	order    []int
}

func NewKeyHub() *KeyHub {
	return &KeyHub{handlers: map[int]func(KeyEvent){}}
}

func (h *KeyHub) Subscribe(handler func(KeyEvent)) func() {
	id := h.nextID
	h.nextID++
	h.handlers[id] = handler
	h.order = append(h.order, id)

	return func() {
		if _, ok := h.handlers[id]; !ok {
			return
		}
		delete(h.handlers, id)
		for i, o := range h.order {
			if o == id {
				h.order = append(h.order[:i], h.order[i+1:]...)
				break
			}
		}
	}
}

func (h *KeyHub) Dispatch(ev KeyEvent) {
	// A handler may unsubscribe while we iterate.
	ids := append([]int(nil), h.order...)
	for _, id := range ids {
		if fn, ok := h.handlers[id]; ok {
			fn(ev)
		}
	}
}

// Len reports the number of live subscriptions.
func (h *KeyHub) Len() int { return len(h.handlers) }

// Subscription is a scoped key listener. Close is idempotent; callers defer
// it right after Activate so every exit path releases the listener.
type Subscription struct {
	cancel func()
	closed bool
}

func (s *Subscription) Close() {
	if s == nil || s.closed {
		return
	}
	s.closed = true
	s.cancel()
}

func (s *Subscription) Closed() bool { return s == nil || s.closed }

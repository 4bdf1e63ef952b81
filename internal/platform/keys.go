package platform

// Key names used by the controllers.
const (
	KeyEscape = "esc"
	KeyEnter  = "enter"
)

// KeyEvent is a single key press as seen by global listeners.
type KeyEvent struct {
	Key string
}

// KeyHandler receives key events.
type KeyHandler func(KeyEvent)

// Registration removes a listener. Remove is idempotent.
type Registration interface {
	Remove()
}

// KeySource is a global key-down event source.
type KeySource interface {
	AddKeyListener(KeyHandler) Registration
}

// KeyBus is an in-process KeySource. Listeners fire in registration order.
// A listener removed during a dispatch does not fire later in that dispatch.
type KeyBus struct {
	nextID    uint64
	listeners []*keyListener
}

type keyListener struct {
	id      uint64
	handler KeyHandler
	removed bool
}

type keyRegistration struct {
	bus *KeyBus
	l   *keyListener
}

// NewKeyBus returns an empty KeyBus.
func NewKeyBus() *KeyBus {
	return &KeyBus{}
}

// AddKeyListener registers h and returns its Registration.
func (b *KeyBus) AddKeyListener(h KeyHandler) Registration {
	b.nextID++
	l := &keyListener{id: b.nextID, handler: h}
	b.listeners = append(b.listeners, l)
	return &keyRegistration{bus: b, l: l}
}

func (r *keyRegistration) Remove() {
	if r.l.removed {
		return
	}
	r.l.removed = true
	r.bus.drop(r.l.id)
}

func (b *KeyBus) drop(id uint64) {
	kept := b.listeners[:0:0]
	for _, l := range b.listeners {
		if l.id != id {
			kept = append(kept, l)
		}
	}
	b.listeners = kept
}

// Dispatch delivers ev to every listener registered at the time of the call.
func (b *KeyBus) Dispatch(ev KeyEvent) {
	snapshot := make([]*keyListener, len(b.listeners))
	copy(snapshot, b.listeners)
	for _, l := range snapshot {
		if l.removed || l.handler == nil {
			continue
		}
		l.handler(ev)
	}
}

// Len returns the number of registered listeners.
func (b *KeyBus) Len() int {
	return len(b.listeners)
}

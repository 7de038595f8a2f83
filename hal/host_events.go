package hal

type hostKeyboard struct {
	ch chan KeyEvent
}

func newHostKeyboard() *hostKeyboard {
	return &hostKeyboard{ch: make(chan KeyEvent, 64)}
}

func (k *hostKeyboard) Events() <-chan KeyEvent { return k.ch }

func (k *hostKeyboard) emit(ev KeyEvent) {
	select {
	case k.ch <- ev:
	default:
	}
}

type hostPointer struct {
	ch   chan PointerEvent
	last PointerEvent
	seen bool
}

func newHostPointer() *hostPointer {
	return &hostPointer{ch: make(chan PointerEvent, 64)}
}

func (p *hostPointer) Events() <-chan PointerEvent { return p.ch }

// update emits an event when the position or button state changed.
func (p *hostPointer) update(x, y int, down bool) {
	ev := PointerEvent{X: x, Y: y, Down: down}
	if p.seen && ev == p.last {
		return
	}
	p.last = ev
	p.seen = true
	select {
	case p.ch <- ev:
	default:
	}
}

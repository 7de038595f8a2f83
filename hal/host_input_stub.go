//go:build !cgo

package hal

// Without the window backend there is nothing to poll.

func (k *hostKeyboard) poll() {}

func (p *hostPointer) poll() {}

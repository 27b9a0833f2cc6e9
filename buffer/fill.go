package buffer

import "github.com/wippyai/memory/errors"

// Whole-range operations cover [position, end) and leave position at end.

// Clear zeroes every byte from position to end.
func (b *WritableBuffer) Clear() error {
	w, err := b.rest("Clear")
	if err != nil {
		return err
	}
	clear(w)
	return nil
}

// Fill writes v to every byte from position to end.
func (b *WritableBuffer) Fill(v byte) error {
	w, err := b.rest("Fill")
	if err != nil {
		return err
	}
	for i := range w {
		w[i] = v
	}
	return nil
}

// ClearBits clears the bits set in mask on every byte from position to end.
func (b *WritableBuffer) ClearBits(mask byte) error {
	w, err := b.rest("ClearBits")
	if err != nil {
		return err
	}
	for i := range w {
		w[i] &^= mask
	}
	return nil
}

// SetBits sets the bits set in mask on every byte from position to end.
func (b *WritableBuffer) SetBits(mask byte) error {
	w, err := b.rest("SetBits")
	if err != nil {
		return err
	}
	for i := range w {
		w[i] |= mask
	}
	return nil
}

func (b *WritableBuffer) rest(op string) ([]byte, error) {
	w, err := b.window(errors.PhaseAccess, op, b.position, b.end-b.position)
	if err != nil {
		return nil, err
	}
	b.position = b.end
	return w, nil
}

package gallery

// Preview holds at most one item shown in the modal. Opening while already
// open replaces the item.
type Preview[T any] struct {
	item T
	open bool
}

// Open shows item.
func (p *Preview[T]) Open(item T) {
	p.item = item
	p.open = true
}

// Close dismisses the modal.
func (p *Preview[T]) Close() {
	var zero T
	p.item = zero
	p.open = false
}

// Current returns the previewed item, if any.
func (p *Preview[T]) Current() (T, bool) {
	return p.item, p.open
}

// IsOpen reports whether the modal is showing.
func (p *Preview[T]) IsOpen() bool {
	return p.open
}

package flowfield

// Cursor is a pointer position in surface coordinates.
type Cursor struct {
	X, Y float64
}

// PointerSource exposes a live cursor position. The Animator only reads it.
type PointerSource interface {
	Cursor() Cursor
}

// Pointer is the externally owned cursor. Hosts write real pointer positions
// with MoveTo; scripted sessions queue synthetic positions (see InjectMove)
// that Poll applies one per frame. The zero value is a cursor at (0, 0).
type Pointer struct {
	cur   Cursor
	queue []Cursor
}

var _ PointerSource = (*Pointer)(nil)

// Cursor returns the current position.
func (p *Pointer) Cursor() Cursor {
	return p.cur
}

// MoveTo sets the current position.
func (p *Pointer) MoveTo(x, y float64) {
	p.cur = Cursor{X: x, Y: y}
}

// Poll applies the oldest queued synthetic position, if any, and reports
// whether one was consumed. Hosts call it once per frame and skip real
// pointer input on frames where it returns true.
func (p *Pointer) Poll() bool {
	if len(p.queue) == 0 {
		return false
	}
	p.cur = p.queue[0]
	copy(p.queue, p.queue[1:])
	p.queue = p.queue[:len(p.queue)-1]
	return true
}

// Pending returns the number of queued synthetic positions.
func (p *Pointer) Pending() int {
	return len(p.queue)
}

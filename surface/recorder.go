package surface

// Op names a recorded draw primitive.
type Op uint8

const (
	OpCircle Op = iota
	OpRing
	OpLine
	OpGradient
)

// Call is one recorded draw primitive.
type Call struct {
	Op     Op
	X, Y   float32
	X2, Y2 float32 // line end
	Radius float32
	Width  float32
	Color  Color
	Outer  Color // gradient edge color
}

// Recorder is a Surface that records calls instead of drawing them.
// Used by headless runs and tests.
type Recorder struct {
	Calls []Call
}

func (r *Recorder) Circle(x, y, radius float32, c Color) {
	r.Calls = append(r.Calls, Call{Op: OpCircle, X: x, Y: y, Radius: radius, Color: c})
}

func (r *Recorder) Ring(x, y, radius, width float32, c Color) {
	r.Calls = append(r.Calls, Call{Op: OpRing, X: x, Y: y, Radius: radius, Width: width, Color: c})
}

func (r *Recorder) Line(x1, y1, x2, y2, width float32, c Color) {
	r.Calls = append(r.Calls, Call{Op: OpLine, X: x1, Y: y1, X2: x2, Y2: y2, Width: width, Color: c})
}

func (r *Recorder) RadialGradient(x, y, radius float32, inner, outer Color) {
	r.Calls = append(r.Calls, Call{Op: OpGradient, X: x, Y: y, Radius: radius, Color: inner, Outer: outer})
}

// Count returns how many calls of the given op were recorded.
func (r *Recorder) Count(op Op) int {
	n := 0
	for _, c := range r.Calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Reset drops all recorded calls.
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
}

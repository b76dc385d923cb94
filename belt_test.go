package tangent

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/tdewolff/test"
)

func TestBelt(t *testing.T) {
	var tests = []struct {
		c1, c2 Circle
		length float64
	}{
		{C(0, 0, 1), C(5, 0, 1), 10.0 + 2.0*math.Pi},
		{C(0, 0, 3), C(10, 0, 1), 32.96772023978592},
		{C(0, 0, 1), C(10, 0, 3), 32.96772023978592},
		{C(0, 0, 5), C(10, 0, 5), 20.0 + 10.0*math.Pi},
		{C(0, 0, 3), C(4, 0, 3), 8.0 + 6.0*math.Pi},
		{C(0, 0, 0), C(4, 0, 1), 11.392919856288785},
		{C(0, 0, 2), C(7, 3, 1), 24.78782024742771},
		{C(0, 0, 5), C(1, 0, 2), 10.0 * math.Pi},
		{C(1, 0, 2), C(0, 0, 5), 10.0 * math.Pi},
		{C(0, 0, 3), C(1, 0, 2), 6.0 * math.Pi},
		{C(2, 2, 3), C(2, 2, 3), 6.0 * math.Pi},
		{C(0, 0, 0), C(3, 4, 0), 10.0},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.c1, tt.c2), func(t *testing.T) {
			length, err := BeltLength(tt.c1, tt.c2)
			test.Error(t, err)
			test.That(t, near(length, tt.length, 1e-9), length, "!=", tt.length)

			p, err := Belt(tt.c1, tt.c2)
			test.Error(t, err)
			test.That(t, near(p.Length(), tt.length, 1e-9), p.Length(), "!=", tt.length)
		})
	}
}

func TestBeltCounterClockwise(t *testing.T) {
	p, err := Belt(C(0, 0, 3), C(10, 0, 1))
	test.Error(t, err)

	// starts at the tangent point below the centers and runs towards c2
	x, y := p.d[0], p.d[1]
	test.That(t, y < 0.0, p)
	test.That(t, near(math.Hypot(x, y), 3.0, 1e-9), p)
	test.That(t, p.d[2] > x, p)
	test.That(t, p.cmds[len(p.cmds)-1] == CloseCmd)

	arcs, i := 0, 0
	for _, cmd := range p.cmds {
		switch cmd {
		case MoveToCmd, LineToCmd:
			i += 2
		case ArcToCmd:
			test.That(t, p.d[i+2] == 1.0, "sweep")
			arcs++
			i += 5
		}
	}
	test.T(t, arcs, 2)
}

func TestBeltRandom(t *testing.T) {
	r := rand.New(rand.NewPCG(5, 6))
	for i := 0; i < 200; i++ {
		c1 := C(r.NormFloat64()*10.0, r.NormFloat64()*10.0, 0.1+r.Float64()*5.0)
		c2 := C(r.NormFloat64()*10.0, r.NormFloat64()*10.0, 0.1+r.Float64()*5.0)

		length, err := BeltLength(c1, c2)
		test.Error(t, err)
		p, err := Belt(c1, c2)
		test.Error(t, err)
		test.That(t, near(p.Length(), length, 1e-6*length), c1, c2, p.Length(), length)

		// the belt is never shorter than the largest circumference
		test.That(t, 2.0*math.Pi*math.Max(c1.Radius, c2.Radius) <= length+1e-9)
	}
}

func TestBeltErrors(t *testing.T) {
	_, err := Belt(C(0, 0, -1), C(3, 0, 1))
	test.That(t, errors.Is(err, ErrDegenerateInput), err)

	_, err = BeltLength(C(0, 0, 1), C(3, 0, math.NaN()))
	test.That(t, errors.Is(err, ErrDegenerateInput), err)
}

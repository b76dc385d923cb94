package main

import (
	"math"
	"testing"

	"github.com/tdewolff/test"

	"github.com/tangentkit/tangent"
)

func TestParseFloats(t *testing.T) {
	fs, err := parseFloats("1, -2.5,3e2", 3)
	test.Error(t, err)
	test.T(t, fs, []float64{1, -2.5, 300})

	for _, s := range []string{"1,2", "1,2,3,4", "1,x,3", "1,2,3px", "1,,3"} {
		_, err := parseFloats(s, 3)
		test.That(t, err != nil, s)
	}
}

func TestParseCircles(t *testing.T) {
	c1, c2, err := parseCircles("0,0,5", "10,1,3")
	test.Error(t, err)
	test.That(t, c1.Equals(tangent.C(0, 0, 5)))
	test.That(t, c2.Equals(tangent.C(10, 1, 3)))

	_, _, err = parseCircles("", "10,1,3")
	test.That(t, err != nil)

	_, _, err = parseCircles("0,0", "10,1,3")
	test.That(t, err != nil)
}

func TestBeltOutlineRoundtrip(t *testing.T) {
	c1, c2, err := parseCircles("0,0,2", "7,3,1")
	test.Error(t, err)
	p, err := tangent.Belt(c1, c2)
	test.Error(t, err)
	p.Translate(-4, 10)

	// the length command parses the printed outline back
	q, err := tangent.ParseSVGPath(p.String())
	test.Error(t, err)
	length, err := tangent.BeltLength(c1, c2)
	test.Error(t, err)
	test.That(t, math.Abs(q.Length()-length) < 1e-9, q.Length(), length)
}

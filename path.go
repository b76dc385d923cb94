package tangent

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	parseStrconv "github.com/tdewolff/parse/v2/strconv"
)

// PathCmd is a path command.
type PathCmd int

// see PathCmd
const (
	MoveToCmd PathCmd = iota
	LineToCmd
	ArcToCmd
	CloseCmd
)

// Path is a planar path made of straight lines and circular arcs, as used for outlines around circles. Coordinates follow the mathematical orientation with the y-axis pointing up, so that a positive sweep runs counter clockwise.
type Path struct {
	cmds []PathCmd
	d    []float64
	x0   float64
	y0   float64
}

// IsEmpty returns true if the path has no commands.
func (p *Path) IsEmpty() bool {
	return len(p.cmds) == 0
}

// Pos returns the current position of the path.
func (p *Path) Pos() (float64, float64) {
	if 0 < len(p.cmds) && p.cmds[len(p.cmds)-1] == CloseCmd {
		return p.x0, p.y0
	}
	if 1 < len(p.d) {
		return p.d[len(p.d)-2], p.d[len(p.d)-1]
	}
	return 0.0, 0.0
}

// Translate moves the path by (x,y).
func (p *Path) Translate(x, y float64) {
	i := 0
	for _, cmd := range p.cmds {
		switch cmd {
		case MoveToCmd, LineToCmd:
			p.d[i+0] += x
			p.d[i+1] += y
			i += 2
		case ArcToCmd:
			p.d[i+3] += x
			p.d[i+4] += y
			i += 5
		}
	}
	p.x0 += x
	p.y0 += y
}

////////////////////////////////////////////////////////////////

// MoveTo starts a new subpath at (x,y).
func (p *Path) MoveTo(x, y float64) {
	p.cmds = append(p.cmds, MoveToCmd)
	p.d = append(p.d, x, y)
	p.x0, p.y0 = x, y
}

// LineTo adds a straight line to (x,y).
func (p *Path) LineTo(x, y float64) {
	p.cmds = append(p.cmds, LineToCmd)
	p.d = append(p.d, x, y)
}

// ArcTo adds a circular arc with radius r to (x,y). The large and sweep flags select one of the four possible arcs as in SVG, sweep is true for a counter clockwise arc. A radius too small to reach (x,y) is scaled up to half the chord.
func (p *Path) ArcTo(r float64, large, sweep bool, x, y float64) {
	p.cmds = append(p.cmds, ArcToCmd)
	flarge := 0.0
	if large {
		flarge = 1.0
	}
	fsweep := 0.0
	if sweep {
		fsweep = 1.0
	}
	p.d = append(p.d, r, flarge, fsweep, x, y)
}

// Close closes the current subpath with a straight line to its start.
func (p *Path) Close() {
	p.cmds = append(p.cmds, CloseCmd)
}

// Length returns the length of the path.
func (p *Path) Length() float64 {
	length := 0.0
	x0, y0 := 0.0, 0.0
	x, y := 0.0, 0.0
	i := 0
	for _, cmd := range p.cmds {
		switch cmd {
		case MoveToCmd:
			x, y = p.d[i+0], p.d[i+1]
			x0, y0 = x, y
			i += 2
		case LineToCmd:
			length += math.Hypot(p.d[i+0]-x, p.d[i+1]-y)
			x, y = p.d[i+0], p.d[i+1]
			i += 2
		case ArcToCmd:
			r, theta := arcAngle(x, y, p.d[i+0], p.d[i+1] == 1.0, p.d[i+3], p.d[i+4])
			length += r * theta
			x, y = p.d[i+3], p.d[i+4]
			i += 5
		case CloseCmd:
			length += math.Hypot(x0-x, y0-y)
			x, y = x0, y0
		}
	}
	return length
}

// arcAngle returns the radius, corrected when it is too small, and the angle in radians spanned by the arc from (x1,y1) to (x2,y2). A zero radius gives a straight line, which is returned as radius 1 over an angle equal to its length.
func arcAngle(x1, y1, r float64, large bool, x2, y2 float64) (float64, float64) {
	chord := math.Hypot(x2-x1, y2-y1)
	if chord == 0.0 {
		return r, 0.0
	} else if r == 0.0 {
		return 1.0, chord
	} else if r <= chord/2.0 {
		return chord / 2.0, math.Pi
	}

	theta := 2.0 * math.Asin(chord/(2.0*r))
	if large {
		theta = 2.0*math.Pi - theta
	}
	return r, theta
}

////////////////////////////////////////////////////////////////

func num(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// ToSVG returns the path as SVG path data. Coordinates are written as is, so the caller flips the y-axis when needed.
func (p *Path) ToSVG() string {
	sb := strings.Builder{}
	i := 0
	for _, cmd := range p.cmds {
		switch cmd {
		case MoveToCmd:
			fmt.Fprintf(&sb, "M%s %s", num(p.d[i+0]), num(p.d[i+1]))
			i += 2
		case LineToCmd:
			fmt.Fprintf(&sb, "L%s %s", num(p.d[i+0]), num(p.d[i+1]))
			i += 2
		case ArcToCmd:
			fmt.Fprintf(&sb, "A%s %s 0 %s %s %s %s", num(p.d[i+0]), num(p.d[i+0]), num(p.d[i+1]), num(p.d[i+2]), num(p.d[i+3]), num(p.d[i+4]))
			i += 5
		case CloseCmd:
			sb.WriteString("z")
		}
	}
	return sb.String()
}

func (p *Path) String() string {
	return p.ToSVG()
}

////////////////////////////////////////////////////////////////

func skipCommaWhitespace(path []byte) int {
	i := 0
	for i < len(path) && (path[i] == ' ' || path[i] == ',' || path[i] == '\n' || path[i] == '\r' || path[i] == '\t') {
		i++
	}
	return i
}

func parseNum(path []byte) (float64, int, error) {
	i := skipCommaWhitespace(path)
	f, n := parseStrconv.ParseFloat(path[i:])
	if n == 0 {
		return 0.0, 0, fmt.Errorf("expected number at %q", string(path))
	}
	return f, i + n, nil
}

func parseNums(path []byte, fs []float64) (int, error) {
	i := 0
	for k := range fs {
		f, n, err := parseNum(path[i:])
		if err != nil {
			return 0, err
		}
		fs[k] = f
		i += n
	}
	return i, nil
}

// ParseSVGPath parses SVG path data consisting of the M, L, H, V, A and Z commands, in absolute or relative form. Arcs must be circular, the x-axis rotation is ignored.
func ParseSVGPath(s string) (*Path, error) {
	path := []byte(s)
	p := &Path{}

	var prevCmd byte
	fs := make([]float64, 7)
	i := 0
	for {
		i += skipCommaWhitespace(path[i:])
		if len(path) <= i {
			break
		}
		cmd := prevCmd
		if 'A' <= path[i] {
			cmd = path[i]
			i++
		} else if cmd == 'Z' || cmd == 'z' {
			return nil, fmt.Errorf("expected command at %q", string(path[i:]))
		}
		x, y := p.Pos()

		var n int
		var err error
		switch cmd {
		case 'M', 'm':
			if n, err = parseNums(path[i:], fs[:2]); err == nil {
				if cmd == 'm' {
					fs[0] += x
					fs[1] += y
				}
				p.MoveTo(fs[0], fs[1])
			}
		case 'L', 'l':
			if n, err = parseNums(path[i:], fs[:2]); err == nil {
				if cmd == 'l' {
					fs[0] += x
					fs[1] += y
				}
				p.LineTo(fs[0], fs[1])
			}
		case 'H', 'h':
			if n, err = parseNums(path[i:], fs[:1]); err == nil {
				if cmd == 'h' {
					fs[0] += x
				}
				p.LineTo(fs[0], y)
			}
		case 'V', 'v':
			if n, err = parseNums(path[i:], fs[:1]); err == nil {
				if cmd == 'v' {
					fs[0] += y
				}
				p.LineTo(x, fs[0])
			}
		case 'A', 'a':
			if n, err = parseNums(path[i:], fs[:7]); err == nil {
				if cmd == 'a' {
					fs[5] += x
					fs[6] += y
				}
				if !equalRel(math.Abs(fs[0]), math.Abs(fs[1])) {
					return nil, fmt.Errorf("elliptical arc with radii %g and %g is not supported", fs[0], fs[1])
				}
				large := math.Abs(fs[3]-1.0) < 1e-10
				sweep := math.Abs(fs[4]-1.0) < 1e-10
				p.ArcTo(math.Abs(fs[0]), large, sweep, fs[5], fs[6])
			}
		case 'Z', 'z':
			p.Close()
		default:
			return nil, fmt.Errorf("unsupported path command %q", cmd)
		}
		if err != nil {
			return nil, err
		}
		i += n
		prevCmd = cmd
		if cmd == 'M' {
			prevCmd = 'L'
		} else if cmd == 'm' {
			prevCmd = 'l'
		}
	}
	return p, nil
}

package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/paulmach/orb"
	"github.com/tdewolff/argp"
	"github.com/tdewolff/parse/v2/strconv"

	"github.com/tangentkit/tangent"
	"github.com/tangentkit/tangent/geo"
)

type Main struct{}

type Points struct {
	Verbose bool   `short:"v" desc:"Verbose logging"`
	Circle  string `index:"0" desc:"Circle as X,Y,R"`
	Point   string `index:"1" desc:"Point as X,Y"`
}

type Count struct {
	Verbose bool   `short:"v" desc:"Verbose logging"`
	Circle1 string `index:"0" desc:"First circle as X,Y,R"`
	Circle2 string `index:"1" desc:"Second circle as X,Y,R"`
}

type Lines struct {
	Verbose bool   `short:"v" desc:"Verbose logging"`
	Circle1 string `index:"0" desc:"First circle as X,Y,R"`
	Circle2 string `index:"1" desc:"Second circle as X,Y,R"`
}

type Touch struct {
	Verbose bool   `short:"v" desc:"Verbose logging"`
	Format  string `short:"f" default:"text" desc:"Output format, text or geojson"`
	Circle1 string `index:"0" desc:"First circle as X,Y,R"`
	Circle2 string `index:"1" desc:"Second circle as X,Y,R"`
}

type Belt struct {
	Verbose bool   `short:"v" desc:"Verbose logging"`
	Offset  string `short:"o" desc:"Translate the outline by X,Y"`
	Circle1 string `index:"0" desc:"First circle as X,Y,R"`
	Circle2 string `index:"1" desc:"Second circle as X,Y,R"`
}

type Length struct {
	Verbose bool   `short:"v" desc:"Verbose logging"`
	Path    string `index:"0" desc:"SVG path data with M, L, H, V, A and Z commands"`
}

type Contains struct {
	Verbose bool   `short:"v" desc:"Verbose logging"`
	Sphere  string `index:"0" desc:"Sphere as X,Y,Z,R"`
	Points  string `index:"1" desc:"Points as X,Y,Z;X,Y,Z;..."`
}

type Geo struct {
	Verbose bool   `short:"v" desc:"Verbose logging"`
	Circle1 string `index:"0" desc:"First circle as LON,LAT,METRES"`
	Circle2 string `index:"1" desc:"Second circle as LON,LAT,METRES"`
}

func main() {
	root := argp.NewCmd(&Main{}, "Tangent points and lines of circles by Tangentkit")
	root.AddCmd(&Points{}, "points", "Tangency points on a circle from an external point")
	root.AddCmd(&Count{}, "count", "Number of common tangents and relation of two circles")
	root.AddCmd(&Lines{}, "lines", "Common tangent lines of two circles")
	root.AddCmd(&Touch{}, "touch", "Touch points of the common tangents of two circles")
	root.AddCmd(&Belt{}, "belt", "Belt outline around two circles as SVG path data")
	root.AddCmd(&Length{}, "length", "Length of SVG path data such as a belt outline")
	root.AddCmd(&Contains{}, "contains", "Check whether a sphere contains all points")
	root.AddCmd(&Geo{}, "geo", "Tangent segments between two circles on the earth as GeoJSON")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Main) Run() error {
	return argp.ShowUsage
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// parseFloats parses n comma separated numbers.
func parseFloats(s string, n int) ([]float64, error) {
	fields := strings.Split(s, ",")
	if len(fields) != n {
		return nil, fmt.Errorf("expected %d comma separated numbers: %q", n, s)
	}
	fs := make([]float64, n)
	for i, field := range fields {
		b := []byte(strings.TrimSpace(field))
		f, m := strconv.ParseFloat(b)
		if m == 0 || m != len(b) {
			return nil, fmt.Errorf("invalid number %q in %q", field, s)
		}
		fs[i] = f
	}
	return fs, nil
}

func parseCircle(s string) (tangent.Circle, error) {
	fs, err := parseFloats(s, 3)
	if err != nil {
		return tangent.Circle{}, fmt.Errorf("circle: %w", err)
	}
	return tangent.C(fs[0], fs[1], fs[2]), nil
}

func parseCircles(s1, s2 string) (tangent.Circle, tangent.Circle, error) {
	if s1 == "" || s2 == "" {
		return tangent.Circle{}, tangent.Circle{}, argp.ShowUsage
	}
	c1, err := parseCircle(s1)
	if err != nil {
		return tangent.Circle{}, tangent.Circle{}, err
	}
	c2, err := parseCircle(s2)
	if err != nil {
		return tangent.Circle{}, tangent.Circle{}, err
	}
	return c1, c2, nil
}

func (cmd *Points) Run() error {
	if cmd.Circle == "" || cmd.Point == "" {
		return argp.ShowUsage
	}
	log := newLogger(cmd.Verbose)

	c, err := parseCircle(cmd.Circle)
	if err != nil {
		return err
	}
	fs, err := parseFloats(cmd.Point, 2)
	if err != nil {
		return fmt.Errorf("point: %w", err)
	}
	p := tangent.Pt(fs[0], fs[1])
	log.Debug("tangent points", "circle", c, "point", p)

	tg, err := tangent.TangentPoints(c, p)
	if err != nil {
		return err
	}
	if tg.OnCircle {
		log.Info("point lies on the circle", "point", p)
	}
	l1, l2 := tg.Lines(p)
	fmt.Println(tg.T1, l1)
	fmt.Println(tg.T2, l2)
	return nil
}

func (cmd *Count) Run() error {
	c1, c2, err := parseCircles(cmd.Circle1, cmd.Circle2)
	if err != nil {
		return err
	}
	log := newLogger(cmd.Verbose)
	log.Debug("tangent count", "c1", c1, "c2", c2)

	fmt.Println(tangent.TangentCount(c1, c2), tangent.Classify(c1, c2))
	return nil
}

func (cmd *Lines) Run() error {
	c1, c2, err := parseCircles(cmd.Circle1, cmd.Circle2)
	if err != nil {
		return err
	}
	log := newLogger(cmd.Verbose)

	lines, err := tangent.TangentLines(c1, c2)
	if err != nil {
		return err
	}
	log.Debug("tangent lines", "c1", c1, "c2", c2, "relation", tangent.Classify(c1, c2), "n", len(lines))
	for _, l := range lines {
		fmt.Println(l)
	}
	return nil
}

func (cmd *Touch) Run() error {
	c1, c2, err := parseCircles(cmd.Circle1, cmd.Circle2)
	if err != nil {
		return err
	} else if cmd.Format != "text" && cmd.Format != "geojson" {
		fmt.Println("ERROR: format must be text or geojson")
		return argp.ShowUsage
	}
	log := newLogger(cmd.Verbose)

	touches, err := tangent.TangentTouchPoints(c1, c2)
	if err != nil {
		return err
	}
	log.Debug("touch points", "c1", c1, "c2", c2, "n", len(touches))

	if cmd.Format == "geojson" {
		b, err := geo.TouchCollection(c1, c2, touches).MarshalJSON()
		if err != nil {
			return err
		}
		fmt.Println(string(b))
		return nil
	}
	for _, touch := range touches {
		kind := "internal"
		if touch.External(c1, c2) {
			kind = "external"
		}
		fmt.Printf("%v %v %s length=%g\n", touch.A, touch.B, kind, touch.Length())
	}
	return nil
}

func (cmd *Belt) Run() error {
	c1, c2, err := parseCircles(cmd.Circle1, cmd.Circle2)
	if err != nil {
		return err
	}
	log := newLogger(cmd.Verbose)

	p, err := tangent.Belt(c1, c2)
	if err != nil {
		return err
	}
	if cmd.Offset != "" {
		fs, err := parseFloats(cmd.Offset, 2)
		if err != nil {
			return fmt.Errorf("offset: %w", err)
		}
		p.Translate(fs[0], fs[1])
	}
	length, err := tangent.BeltLength(c1, c2)
	if err != nil {
		return err
	}
	log.Debug("belt", "c1", c1, "c2", c2, "relation", tangent.Classify(c1, c2), "path_length", p.Length())
	fmt.Println(p)
	fmt.Println("length:", length)
	return nil
}

func (cmd *Length) Run() error {
	if cmd.Path == "" {
		return argp.ShowUsage
	}
	log := newLogger(cmd.Verbose)

	p, err := tangent.ParseSVGPath(cmd.Path)
	if err != nil {
		return err
	}
	log.Debug("path", "svg", p)
	fmt.Println(p.Length())
	return nil
}

func (cmd *Contains) Run() error {
	if cmd.Sphere == "" {
		return argp.ShowUsage
	}
	log := newLogger(cmd.Verbose)

	fs, err := parseFloats(cmd.Sphere, 4)
	if err != nil {
		return fmt.Errorf("sphere: %w", err)
	}
	s := tangent.Sphere{Center: tangent.Point{X: fs[0], Y: fs[1], Z: fs[2]}, Radius: fs[3]}

	var ps []tangent.Point
	if cmd.Points != "" {
		for _, item := range strings.Split(cmd.Points, ";") {
			fs, err := parseFloats(item, 3)
			if err != nil {
				return fmt.Errorf("point: %w", err)
			}
			p := tangent.Point{X: fs[0], Y: fs[1], Z: fs[2]}
			log.Debug("point", "p", p, "inside", s.Contains(p))
			ps = append(ps, p)
		}
	}
	fmt.Println(s.ContainsAll(ps...))
	return nil
}

func (cmd *Geo) Run() error {
	if cmd.Circle1 == "" || cmd.Circle2 == "" {
		return argp.ShowUsage
	}
	log := newLogger(cmd.Verbose)

	var cs [2]geo.Circle
	for i, s := range []string{cmd.Circle1, cmd.Circle2} {
		fs, err := parseFloats(s, 3)
		if err != nil {
			return fmt.Errorf("circle: %w", err)
		}
		cs[i] = geo.Circle{Center: orb.Point{fs[0], fs[1]}, Radius: fs[2]}
	}

	segments, err := geo.TangentSegments(cs[0], cs[1])
	if err != nil {
		return err
	}
	log.Debug("tangent segments", "a", cs[0], "b", cs[1], "zone", geo.UTM(cs[0].Center).Zone(), "n", len(segments))

	b, err := geo.SegmentCollection(cs[0], cs[1], segments).MarshalJSON()
	if err != nil {
		return err
	}
	fmt.Println(string(b))
	return nil
}

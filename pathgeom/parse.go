package pathgeom

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/tsawler/svglayer/model"
)

// ErrSyntax is returned for path data that cannot be parsed.
var ErrSyntax = errors.New("pathgeom: invalid path data")

// Parse converts SVG path data into an absolute Path.
func Parse(d string) (*Path, error) {
	sc := &scanner{s: d}
	p := NewPath()

	var (
		cmd      byte
		lastCmd  byte
		lastCtrl model.Point
	)

	for {
		sc.skipSeparators()
		if sc.done() {
			break
		}

		c := sc.peek()
		switch {
		case isCommand(c):
			cmd = c
			sc.pos++
		case cmd == 0:
			return nil, fmt.Errorf("%w: expected command at offset %d", ErrSyntax, sc.pos)
		case cmd == 'Z' || cmd == 'z':
			return nil, fmt.Errorf("%w: unexpected number after closepath at offset %d", ErrSyntax, sc.pos)
		}

		relative := cmd >= 'a' && cmd <= 'z'
		cur := p.CurrentPoint
		abs := func(x, y float64) (float64, float64) {
			if relative {
				return cur.X + x, cur.Y + y
			}
			return x, y
		}

		switch cmd {
		case 'M', 'm':
			n, err := sc.numbers(2)
			if err != nil {
				return nil, err
			}
			// A leading relative moveto is relative to the origin.
			if !p.HasCurrentPoint {
				cur = model.Point{}
			}
			x, y := abs(n[0], n[1])
			p.MoveTo(x, y)
			// Further coordinate pairs are implicit linetos.
			if relative {
				cmd = 'l'
			} else {
				cmd = 'L'
			}

		case 'L', 'l':
			n, err := sc.numbers(2)
			if err != nil {
				return nil, err
			}
			p.LineTo(abs(n[0], n[1]))

		case 'H', 'h':
			n, err := sc.numbers(1)
			if err != nil {
				return nil, err
			}
			x := n[0]
			if relative {
				x += cur.X
			}
			p.LineTo(x, cur.Y)

		case 'V', 'v':
			n, err := sc.numbers(1)
			if err != nil {
				return nil, err
			}
			y := n[0]
			if relative {
				y += cur.Y
			}
			p.LineTo(cur.X, y)

		case 'C', 'c':
			n, err := sc.numbers(6)
			if err != nil {
				return nil, err
			}
			x1, y1 := abs(n[0], n[1])
			x2, y2 := abs(n[2], n[3])
			x, y := abs(n[4], n[5])
			p.CurveTo(x1, y1, x2, y2, x, y)
			lastCtrl = model.Point{X: x2, Y: y2}

		case 'S', 's':
			n, err := sc.numbers(4)
			if err != nil {
				return nil, err
			}
			x1, y1 := reflect(cur, lastCtrl, lastCmd, "CcSs")
			x2, y2 := abs(n[0], n[1])
			x, y := abs(n[2], n[3])
			p.CurveTo(x1, y1, x2, y2, x, y)
			lastCtrl = model.Point{X: x2, Y: y2}

		case 'Q', 'q':
			n, err := sc.numbers(4)
			if err != nil {
				return nil, err
			}
			x1, y1 := abs(n[0], n[1])
			x, y := abs(n[2], n[3])
			p.QuadTo(x1, y1, x, y)
			lastCtrl = model.Point{X: x1, Y: y1}

		case 'T', 't':
			n, err := sc.numbers(2)
			if err != nil {
				return nil, err
			}
			x1, y1 := reflect(cur, lastCtrl, lastCmd, "QqTt")
			x, y := abs(n[0], n[1])
			p.QuadTo(x1, y1, x, y)
			lastCtrl = model.Point{X: x1, Y: y1}

		case 'A', 'a':
			if _, err := sc.numbers(3); err != nil {
				return nil, err
			}
			for i := 0; i < 2; i++ {
				if _, err := sc.flag(); err != nil {
					return nil, err
				}
			}
			n, err := sc.numbers(2)
			if err != nil {
				return nil, err
			}
			p.ArcTo(abs(n[0], n[1]))

		case 'Z', 'z':
			p.ClosePath()

		default:
			return nil, fmt.Errorf("%w: unknown command %q", ErrSyntax, cmd)
		}
		lastCmd = cmd
	}

	return p, nil
}

// BoundsOf parses d and returns its bounds. ok is false when the data is
// malformed or empty.
func BoundsOf(d string) (model.BBox, bool) {
	p, err := Parse(d)
	if err != nil || p.IsEmpty() {
		return model.BBox{}, false
	}
	return p.Bounds()
}

// ParsePoints parses a polygon/polyline points list.
func ParsePoints(s string) ([]model.Point, error) {
	sc := &scanner{s: s}
	var pts []model.Point
	for {
		sc.skipSeparators()
		if sc.done() {
			return pts, nil
		}
		n, err := sc.numbers(2)
		if err != nil {
			return nil, err
		}
		pts = append(pts, model.Point{X: n[0], Y: n[1]})
	}
}

// reflect returns the reflection of the previous control point about the
// current point when the previous command belongs to the same curve kind,
// and the current point otherwise.
func reflect(cur, ctrl model.Point, lastCmd byte, kinds string) (float64, float64) {
	for i := 0; i < len(kinds); i++ {
		if lastCmd == kinds[i] {
			return 2*cur.X - ctrl.X, 2*cur.Y - ctrl.Y
		}
	}
	return cur.X, cur.Y
}

func isCommand(c byte) bool {
	switch c {
	case 'M', 'm', 'L', 'l', 'H', 'h', 'V', 'v', 'C', 'c',
		'S', 's', 'Q', 'q', 'T', 't', 'A', 'a', 'Z', 'z':
		return true
	}
	return false
}

// scanner tokenizes path data numbers and flags
type scanner struct {
	s   string
	pos int
}

func (sc *scanner) done() bool { return sc.pos >= len(sc.s) }

func (sc *scanner) peek() byte { return sc.s[sc.pos] }

func (sc *scanner) skipSeparators() {
	for !sc.done() {
		switch sc.peek() {
		case ' ', '\t', '\n', '\r', '\f', ',':
			sc.pos++
		default:
			return
		}
	}
}

// numbers reads exactly n numbers.
func (sc *scanner) numbers(n int) ([]float64, error) {
	out := make([]float64, n)
	for i := range out {
		sc.skipSeparators()
		v, err := sc.number()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// number reads one number: optional sign, digits, optional fraction and
// optional exponent. A second '.' ends the number.
func (sc *scanner) number() (float64, error) {
	start := sc.pos
	if !sc.done() && (sc.peek() == '+' || sc.peek() == '-') {
		sc.pos++
	}
	digits := sc.digits()
	if !sc.done() && sc.peek() == '.' {
		sc.pos++
		digits += sc.digits()
	}
	if digits == 0 {
		sc.pos = start
		return 0, fmt.Errorf("%w: expected number at offset %d", ErrSyntax, start)
	}
	if !sc.done() && (sc.peek() == 'e' || sc.peek() == 'E') {
		mark := sc.pos
		sc.pos++
		if !sc.done() && (sc.peek() == '+' || sc.peek() == '-') {
			sc.pos++
		}
		if sc.digits() == 0 {
			sc.pos = mark
		}
	}
	v, err := strconv.ParseFloat(sc.s[start:sc.pos], 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	return v, nil
}

func (sc *scanner) digits() int {
	n := 0
	for !sc.done() && sc.peek() >= '0' && sc.peek() <= '9' {
		sc.pos++
		n++
	}
	return n
}

// flag reads a single arc flag, which may be packed without separators.
func (sc *scanner) flag() (bool, error) {
	sc.skipSeparators()
	if sc.done() {
		return false, fmt.Errorf("%w: expected arc flag at end of data", ErrSyntax)
	}
	switch sc.peek() {
	case '0':
		sc.pos++
		return false, nil
	case '1':
		sc.pos++
		return true, nil
	}
	return false, fmt.Errorf("%w: expected arc flag at offset %d", ErrSyntax, sc.pos)
}

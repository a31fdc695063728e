package envelope

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	parsestrconv "github.com/tdewolff/parse/v2/strconv"
)

func skipCommaWhitespace(path []byte) int {
	i := 0
	for i < len(path) && (path[i] == ' ' || path[i] == ',' || path[i] == '\n' || path[i] == '\r' || path[i] == '\t') {
		i++
	}
	return i
}

var svgCmdLens = map[byte]int{
	'M': 2,
	'Z': 0,
	'L': 2,
	'H': 1,
	'V': 1,
	'C': 6,
	'S': 4,
	'Q': 4,
	'T': 2,
	'A': 7,
}

// ParseSVGPath parses an SVG 1.1 path data string into a path.
//
// All command letters except the elliptical arc are supported, in both
// absolute and relative form, including implicit command repetition and
// the smooth shorthands S and T, which are resolved to plain cubic and
// quadratic elements during parsing. Coordinates in the returned path are
// absolute. The H and V shorthands are preserved as [HLineTo] and
// [VLineTo] elements.
//
// Arc commands yield an *UnsupportedSegmentError rather than silently
// dropping data.
func ParseSVGPath(s string) (BezPath, error) {
	if len(s) == 0 {
		return BezPath{}, nil
	}

	i := 0
	path := []byte(s)
	i += skipCommaWhitespace(path)
	if path[0] == ',' || i >= len(path) || path[i] < 'A' {
		return nil, fmt.Errorf("bad path data: path should start with a command")
	}

	var p BezPath
	var f [7]float64
	// p0 is the current point, q and c the previous quadratic and cubic
	// control points for the smooth shorthands.
	var p0, p1, q, c, start Point
	prevCmd := byte('z')
	for {
		i += skipCommaWhitespace(path[i:])
		if len(path) <= i {
			break
		}

		cmd := prevCmd
		repeat := true
		if cmd == 'z' || cmd == 'Z' || !(path[i] >= '0' && path[i] <= '9' || path[i] == '.' || path[i] == '-' || path[i] == '+') {
			cmd = path[i]
			repeat = false
			i++
			i += skipCommaWhitespace(path[i:])
		}

		CMD := cmd
		if 'a' <= cmd && cmd <= 'z' {
			CMD -= 'a' - 'A'
		}
		n, ok := svgCmdLens[CMD]
		if !ok {
			return nil, fmt.Errorf("bad path data: unknown command '%c' at position %d", cmd, i)
		}
		for j := 0; j < n; j++ {
			num, adv := parsestrconv.ParseFloat(path[i:])
			if adv == 0 {
				if repeat && j == 0 && i < len(path) {
					return nil, fmt.Errorf("bad path data: unknown command '%c' at position %d", path[i], i+1)
				}
				return nil, fmt.Errorf("bad path data: %d numbers should follow command '%c' at position %d", n, cmd, i+1)
			}
			f[j] = num
			i += adv
			i += skipCommaWhitespace(path[i:])
		}

		switch cmd {
		case 'M', 'm':
			p1 = Pt(f[0], f[1])
			if cmd == 'm' {
				p1 = p1.Translate(Vec2(p0))
				cmd = 'l'
			} else {
				cmd = 'L'
			}
			start = p1
			p.MoveTo(p1)
		case 'Z', 'z':
			p1 = start
			p.ClosePath()
		case 'L', 'l':
			p1 = Pt(f[0], f[1])
			if cmd == 'l' {
				p1 = p1.Translate(Vec2(p0))
			}
			p.LineTo(p1)
		case 'H', 'h':
			p1.X = f[0]
			if cmd == 'h' {
				p1.X += p0.X
			}
			p1.Y = p0.Y
			p.HLineTo(p1.X)
		case 'V', 'v':
			p1.Y = f[0]
			if cmd == 'v' {
				p1.Y += p0.Y
			}
			p1.X = p0.X
			p.VLineTo(p1.Y)
		case 'C', 'c':
			cp1 := Pt(f[0], f[1])
			cp2 := Pt(f[2], f[3])
			p1 = Pt(f[4], f[5])
			if cmd == 'c' {
				cp1 = cp1.Translate(Vec2(p0))
				cp2 = cp2.Translate(Vec2(p0))
				p1 = p1.Translate(Vec2(p0))
			}
			p.CubicTo(cp1, cp2, p1)
			c = cp2
		case 'S', 's':
			cp1 := p0
			cp2 := Pt(f[0], f[1])
			p1 = Pt(f[2], f[3])
			if cmd == 's' {
				cp2 = cp2.Translate(Vec2(p0))
				p1 = p1.Translate(Vec2(p0))
			}
			if prevCmd == 'C' || prevCmd == 'c' || prevCmd == 'S' || prevCmd == 's' {
				cp1 = p0.Translate(p0.Sub(c))
			}
			p.CubicTo(cp1, cp2, p1)
			c = cp2
		case 'Q', 'q':
			cp := Pt(f[0], f[1])
			p1 = Pt(f[2], f[3])
			if cmd == 'q' {
				cp = cp.Translate(Vec2(p0))
				p1 = p1.Translate(Vec2(p0))
			}
			p.QuadTo(cp, p1)
			q = cp
		case 'T', 't':
			cp := p0
			p1 = Pt(f[0], f[1])
			if cmd == 't' {
				p1 = p1.Translate(Vec2(p0))
			}
			if prevCmd == 'Q' || prevCmd == 'q' || prevCmd == 'T' || prevCmd == 't' {
				cp = p0.Translate(p0.Sub(q))
			}
			p.QuadTo(cp, p1)
			q = cp
		case 'A', 'a':
			return nil, &UnsupportedSegmentError{Segment: "A"}
		}
		prevCmd = cmd
		p0 = p1
	}
	return p, nil
}

// SVGOptions specifies optional settings for [BezPath.SVG] and [WriteSVG].
type SVGOptions struct {
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent any
	// given coordinate.
	MaxPrecision int
}

// SVG converts the path to a string of SVG path commands.
//
// See [WriteSVG] for a version that writes to an [io.Writer] instead of
// returning a string.
func (p BezPath) SVG(opts SVGOptions) string {
	sb := &strings.Builder{}
	WriteSVG(sb, p, opts)
	return sb.String()
}

// WriteSVG converts a path to a string of SVG path commands and writes it
// to w.
//
// See [BezPath.SVG] for a version that returns a string instead.
//
// The current implementation doesn't take any special care to produce a
// short string (reducing precision, using relative movement).
func WriteSVG(w io.Writer, p BezPath, opts SVGOptions) error {
	space := []byte(" ")
	z := []byte("Z")
	var err error
	write := func(s []byte) {
		if err != nil {
			return
		}
		_, err = w.Write(s)
	}
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	format := func(n float64) string {
		maxPrec := opts.MaxPrecision
		if maxPrec <= 0 {
			return strconv.FormatFloat(n, 'f', -1, 64)
		} else {
			s := strconv.FormatFloat(n, 'f', maxPrec, 64)
			return strings.TrimRight(s, "0")
		}
	}
	first := true
	for i := range p {
		if err != nil {
			return err
		}
		el := p[i]
		if !first {
			write(space)
		}
		first = false
		switch el.Kind {
		case MoveToKind:
			writef("M%s,%s", format(el.P0.X), format(el.P0.Y))
		case LineToKind:
			writef("L%s,%s", format(el.P0.X), format(el.P0.Y))
		case HLineToKind:
			writef("H%s", format(el.P0.X))
		case VLineToKind:
			writef("V%s", format(el.P0.Y))
		case QuadToKind:
			writef("Q%s,%s %s,%s",
				format(el.P0.X), format(el.P0.Y),
				format(el.P1.X), format(el.P1.Y))
		case CubicToKind:
			writef("C%s,%s %s,%s %s,%s",
				format(el.P0.X), format(el.P0.Y),
				format(el.P1.X), format(el.P1.Y),
				format(el.P2.X), format(el.P2.Y))
		case ClosePathKind:
			write(z)
		default:
			panic("unreachable")
		}
	}
	return err
}

package gridmap

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridstar/grid"
)

var (
	// ErrBadLayout indicates a layout that cannot describe a grid.
	ErrBadLayout = errors.New("gridmap: bad layout")

	// ErrLayoutMismatch indicates a layout whose size differs from the target grid.
	ErrLayoutMismatch = errors.New("gridmap: layout does not match grid")
)

// Legend runes.
const (
	Open  = '.'
	Wall  = '#'
	Start = 'S'
	Goal  = 'G'
)

// DigitStep is the weight of one legend digit: '3' is weight 75.
const DigitStep = 25

// Layout is the YAML form of a grid.
type Layout struct {
	Name     string           `yaml:"name"`
	Topology string           `yaml:"topology,omitempty"`
	Rows     []string         `yaml:"rows"`
	Weights  []WeightOverride `yaml:"weights,omitempty"`
}

// WeightOverride sets one cell to an explicit weight after the rows are read.
type WeightOverride struct {
	X      int   `yaml:"x"`
	Y      int   `yaml:"y"`
	Weight uint8 `yaml:"weight"`
}

// Parse decodes and validates a layout. Unknown fields are rejected.
func Parse(data []byte) (*Layout, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var l Layout
	if err := dec.Decode(&l); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadLayout, err)
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return &l, nil
}

// Load reads and parses the layout file at path.
func Load(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("gridmap: load %s: %w", path, err)
	}
	l, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("gridmap: load %s: %w", path, err)
	}
	return l, nil
}

// Validate checks shape, legend, endpoint count, topology and overrides.
func (l *Layout) Validate() error {
	if _, err := l.topology(); err != nil {
		return err
	}
	if len(l.Rows) == 0 || len(l.Rows[0]) == 0 {
		return fmt.Errorf("%w: no rows", ErrBadLayout)
	}
	w := len(l.Rows[0])
	var starts, goals int
	for y, row := range l.Rows {
		if len(row) != w {
			return fmt.Errorf("%w: row %d has %d cells, want %d", ErrBadLayout, y, len(row), w)
		}
		for x := 0; x < len(row); x++ {
			switch c := row[x]; {
			case c == Start:
				starts++
			case c == Goal:
				goals++
			case c == Open, c == Wall, c >= '0' && c <= '9':
			default:
				return fmt.Errorf("%w: unknown tile %q at (%d,%d)", ErrBadLayout, c, x, y)
			}
		}
	}
	if starts > 1 || goals > 1 {
		return fmt.Errorf("%w: %d starts and %d goals, want at most one each", ErrBadLayout, starts, goals)
	}
	for _, o := range l.Weights {
		if o.X < 0 || o.X >= w || o.Y < 0 || o.Y >= len(l.Rows) {
			return fmt.Errorf("%w: override (%d,%d) outside %d×%d", ErrBadLayout, o.X, o.Y, w, len(l.Rows))
		}
	}
	return nil
}

func (l *Layout) topology() (grid.Topology, error) {
	switch strings.ToLower(strings.TrimSpace(l.Topology)) {
	case "", "conn4", "4":
		return grid.Conn4, nil
	case "conn8", "8":
		return grid.Conn8, nil
	default:
		return 0, fmt.Errorf("%w: topology %q", ErrBadLayout, l.Topology)
	}
}

// Values returns the cell weights indexed [y][x], overrides applied.
func (l *Layout) Values() [][]uint8 {
	out := make([][]uint8, len(l.Rows))
	for y, row := range l.Rows {
		out[y] = make([]uint8, len(row))
		for x := 0; x < len(row); x++ {
			out[y][x] = tileWeight(row[x])
		}
	}
	for _, o := range l.Weights {
		out[o.Y][o.X] = o.Weight
	}
	return out
}

func tileWeight(c byte) uint8 {
	switch {
	case c == Wall:
		return grid.Impassable
	case c >= '0' && c <= '9':
		return (c - '0') * DigitStep
	default:
		return 0
	}
}

// Build validates l and constructs a new grid from it.
func (l *Layout) Build() (*grid.Grid, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	t, _ := l.topology()
	return grid.From2D(l.Values(), t)
}

// Endpoints returns the cells marked S and G. ok is false unless both exist.
func (l *Layout) Endpoints() (start, goal grid.Point, ok bool) {
	var hasS, hasG bool
	for y, row := range l.Rows {
		if x := strings.IndexByte(row, Start); x >= 0 {
			start, hasS = grid.Point{X: x, Y: y}, true
		}
		if x := strings.IndexByte(row, Goal); x >= 0 {
			goal, hasG = grid.Point{X: x, Y: y}, true
		}
	}
	return start, goal, hasS && hasG
}

// Apply copies the layout's weights into g. The topology of g is left as is.
// Returns ErrLayoutMismatch if the sizes differ.
func (l *Layout) Apply(g *grid.Grid) error {
	if err := l.Validate(); err != nil {
		return err
	}
	if g == nil || g.Width != len(l.Rows[0]) || g.Height != len(l.Rows) {
		return fmt.Errorf("%w: layout is %d×%d", ErrLayoutMismatch, len(l.Rows[0]), len(l.Rows))
	}
	return g.SetWeights(l.Values())
}

// FromGrid renders g as a layout. Weights the legend cannot express are
// written as '.' plus an override.
func FromGrid(name string, g *grid.Grid) (*Layout, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: nil grid", ErrBadLayout)
	}
	l := &Layout{Name: name, Topology: g.Topology().String()}
	snap := g.Snapshot()
	for y := 0; y < snap.Height(); y++ {
		var sb strings.Builder
		for x := 0; x < snap.Width(); x++ {
			w := snap.WeightAt(y*snap.Width() + x)
			switch {
			case w == grid.Impassable:
				sb.WriteByte(Wall)
			case w == 0:
				sb.WriteByte(Open)
			case w%DigitStep == 0 && w/DigitStep <= 9:
				sb.WriteByte('0' + w/DigitStep)
			default:
				sb.WriteByte(Open)
				l.Weights = append(l.Weights, WeightOverride{X: x, Y: y, Weight: w})
			}
		}
		l.Rows = append(l.Rows, sb.String())
	}
	return l, nil
}

// Marshal encodes l as YAML.
func (l *Layout) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(l); err != nil {
		return nil, fmt.Errorf("gridmap: marshal %s: %w", l.Name, err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("gridmap: marshal %s: %w", l.Name, err)
	}
	return buf.Bytes(), nil
}

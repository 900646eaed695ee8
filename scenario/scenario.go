// Package scenario reads YAML scenario documents: a text map, its wormholes,
// a list of edits replayed against successive snapshots, the route endpoints
// and the movement rules.
//
//	map: |
//	  ..G
//	  .#.
//	wormholes:
//	  - {from: [0, 0], to: [2, 1]}
//	edits:
//	  - {op: terrain, at: [1, 1], terrain: "."}
//	  - {op: resize, width: 4, height: 3}
//	start: [0, 0]
//	finish: [3, 2]
//	rules:
//	  diagonal: false
package scenario

import (
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridroute/adjacency"
	"github.com/katalvlaran/gridroute/gridgraph"
)

var (
	// ErrEmptyScenario indicates a document without content.
	ErrEmptyScenario = errors.New("scenario: empty document")
	// ErrBadCoord indicates a coordinate that is not an [x, y] pair.
	ErrBadCoord = errors.New("scenario: coordinate must be [x, y]")
	// ErrBadEdit indicates an edit with an unknown op or missing fields.
	ErrBadEdit = errors.New("scenario: bad edit")
	// ErrMissingEndpoint indicates that start or finish is not set.
	ErrMissingEndpoint = errors.New("scenario: start and finish are required")
)

// Edit operations.
const (
	OpResize     = "resize"
	OpTerrain    = "terrain"
	OpWormhole   = "wormhole"
	OpUnwormhole = "unwormhole"
)

// Scenario is a decoded scenario document.
type Scenario struct {
	Map       string `yaml:"map"`
	Wormholes []Link `yaml:"wormholes"`
	Edits     []Edit `yaml:"edits"`
	Start     []int  `yaml:"start"`
	Finish    []int  `yaml:"finish"`
	Rules     Rules  `yaml:"rules"`
}

// Link is a wormhole given by coordinates.
type Link struct {
	From []int `yaml:"from"`
	To   []int `yaml:"to"`
}

// Edit is one structural change. Op selects which fields are read:
// resize uses Width and Height, terrain uses At and Terrain, wormhole uses
// From and To, unwormhole uses At.
type Edit struct {
	Op      string `yaml:"op"`
	At      []int  `yaml:"at,omitempty"`
	Terrain string `yaml:"terrain,omitempty"`
	From    []int  `yaml:"from,omitempty"`
	To      []int  `yaml:"to,omitempty"`
	Width   int    `yaml:"width,omitempty"`
	Height  int    `yaml:"height,omitempty"`
}

// Rules overrides movement rules. Nil fields keep whatever the caller
// already configured.
type Rules struct {
	Diagonal       *bool `yaml:"diagonal"`
	PassByWormhole *bool `yaml:"pass_by_wormhole"`
}

// Load reads and decodes the scenario at path.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read scenario %s", path)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "load scenario %s", path)
	}
	return s, nil
}

// Parse decodes a scenario document. Unknown keys are rejected.
func Parse(data []byte) (*Scenario, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var s Scenario
	if err := dec.Decode(&s); err != nil {
		if err == io.EOF {
			return nil, ErrEmptyScenario
		}
		return nil, errors.Wrap(err, "decode scenario")
	}
	return &s, nil
}

// Build constructs the initial Graph and replays every edit in order.
// Each edit works on the snapshot produced by the previous one.
func (s *Scenario) Build() (*gridgraph.Graph, error) {
	pairs := make([]gridgraph.WormholePair, 0, len(s.Wormholes))
	for i, l := range s.Wormholes {
		from, err := coord(l.From)
		if err != nil {
			return nil, errors.Wrapf(err, "wormhole %d from", i)
		}
		to, err := coord(l.To)
		if err != nil {
			return nil, errors.Wrapf(err, "wormhole %d to", i)
		}
		pairs = append(pairs, gridgraph.WormholePair{From: from, To: to})
	}

	g, err := gridgraph.FromTextMap(s.Map, pairs)
	if err != nil {
		return nil, errors.Wrap(err, "build map")
	}
	for i, e := range s.Edits {
		if g, err = e.Apply(g); err != nil {
			return nil, errors.Wrapf(err, "edit %d (%s)", i, e.Op)
		}
	}
	return g, nil
}

// Apply runs e against g and returns the new snapshot.
func (e Edit) Apply(g *gridgraph.Graph) (*gridgraph.Graph, error) {
	switch e.Op {
	case OpResize:
		return g.Resize(e.Width, e.Height)

	case OpTerrain:
		at, err := coord(e.At)
		if err != nil {
			return nil, err
		}
		r := []rune(e.Terrain)
		if len(r) != 1 {
			return nil, errors.Wrapf(ErrBadEdit, "terrain %q must be one rune", e.Terrain)
		}
		return g.SetTypeAt(at.X, at.Y, gridgraph.TerrainFromRune(r[0]))

	case OpWormhole:
		from, err := cellAt(g, e.From)
		if err != nil {
			return nil, err
		}
		to, err := cellAt(g, e.To)
		if err != nil {
			return nil, err
		}
		return g.AddWormhole(from, to)

	case OpUnwormhole:
		id, err := cellAt(g, e.At)
		if err != nil {
			return nil, err
		}
		return g.RemoveWormhole(id)

	default:
		return nil, errors.Wrapf(ErrBadEdit, "unknown op %q", e.Op)
	}
}

// Endpoints resolves start and finish on g.
func (s *Scenario) Endpoints(g *gridgraph.Graph) (start, finish gridgraph.VertexID, err error) {
	if s.Start == nil || s.Finish == nil {
		return "", "", ErrMissingEndpoint
	}
	if start, err = cellAt(g, s.Start); err != nil {
		return "", "", errors.Wrap(err, "start")
	}
	if finish, err = cellAt(g, s.Finish); err != nil {
		return "", "", errors.Wrap(err, "finish")
	}
	return start, finish, nil
}

// Options returns the movement-rule overrides set in the document.
func (s *Scenario) Options() []adjacency.Option {
	var opts []adjacency.Option
	if s.Rules.Diagonal != nil {
		opts = append(opts, adjacency.WithDiagonal(*s.Rules.Diagonal))
	}
	if s.Rules.PassByWormhole != nil {
		opts = append(opts, adjacency.WithPassByWormhole(*s.Rules.PassByWormhole))
	}
	return opts
}

func coord(xy []int) (gridgraph.Coord, error) {
	if len(xy) != 2 {
		return gridgraph.Coord{}, errors.Wrapf(ErrBadCoord, "got %v", xy)
	}
	return gridgraph.Coord{X: xy[0], Y: xy[1]}, nil
}

func cellAt(g *gridgraph.Graph, xy []int) (gridgraph.VertexID, error) {
	c, err := coord(xy)
	if err != nil {
		return "", err
	}
	id, ok := g.At(c.X, c.Y)
	if !ok {
		return "", errors.Wrapf(gridgraph.ErrOutOfBounds, "%v", c)
	}
	return id, nil
}

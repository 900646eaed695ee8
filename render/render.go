// Package render draws a gridgraph snapshot and a route on a terminal.
//
// Legend:
//
//	.  Normal      G  Gravel      #  Boulder
//	@  wormhole entrance          o  wormhole exit
//	S  route start   F  route finish   *  route cell
package render

import (
	"bufio"
	"io"

	"github.com/muesli/termenv"

	"github.com/katalvlaran/gridroute/gridgraph"
)

// Runes used for route and wormhole markers.
const (
	StartRune    = 'S'
	FinishRune   = 'F'
	PathRune     = '*'
	EntranceRune = '@'
	ExitRune     = 'o'
)

type config struct {
	profile   termenv.Profile
	useDetect bool
}

// Option configures Board.
type Option func(*config)

// WithProfile forces a color profile. termenv.Ascii gives plain text.
func WithProfile(p termenv.Profile) Option {
	return func(c *config) {
		c.profile = p
		c.useDetect = false
	}
}

// Board writes one line per board row. path is drawn over the terrain;
// it may be empty.
func Board(w io.Writer, g *gridgraph.Graph, path []gridgraph.VertexID, opts ...Option) error {
	cfg := config{useDetect: true}
	for _, opt := range opts {
		opt(&cfg)
	}
	var out *termenv.Output
	if cfg.useDetect {
		out = termenv.NewOutput(w)
	} else {
		out = termenv.NewOutput(w, termenv.WithProfile(cfg.profile))
	}
	st := newStyles(out)

	onPath := make(map[gridgraph.VertexID]rune, len(path))
	for i, id := range path {
		switch i {
		case 0:
			onPath[id] = StartRune
		case len(path) - 1:
			onPath[id] = FinishRune
		default:
			onPath[id] = PathRune
		}
	}
	exits := make(map[gridgraph.VertexID]bool)
	for _, wh := range g.Wormholes() {
		exits[wh.Exit] = true
	}

	bw := bufio.NewWriter(w)
	for _, row := range g.Board() {
		for _, id := range row {
			bw.WriteString(st.cell(g, id, onPath, exits))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

type styles struct {
	route, gravel, boulder, wormhole termenv.Style
	plain                            termenv.Style
}

func newStyles(out *termenv.Output) styles {
	return styles{
		route:    out.String().Foreground(out.Color("2")).Bold(),
		gravel:   out.String().Foreground(out.Color("3")),
		boulder:  out.String().Foreground(out.Color("8")),
		wormhole: out.String().Foreground(out.Color("5")).Bold(),
		plain:    out.String(),
	}
}

func (s styles) cell(g *gridgraph.Graph, id gridgraph.VertexID, onPath map[gridgraph.VertexID]rune, exits map[gridgraph.VertexID]bool) string {
	if r, ok := onPath[id]; ok {
		return s.route.Styled(string(r))
	}
	if _, ok := g.WormholeExit(id); ok {
		return s.wormhole.Styled(string(EntranceRune))
	}
	if exits[id] {
		return s.wormhole.Styled(string(ExitRune))
	}
	v, _ := g.Vertex(id)
	switch v.Type {
	case gridgraph.Gravel:
		return s.gravel.Styled(string(v.Type.Rune()))
	case gridgraph.Boulder:
		return s.boulder.Styled(string(v.Type.Rune()))
	default:
		return s.plain.Styled(string(v.Type.Rune()))
	}
}

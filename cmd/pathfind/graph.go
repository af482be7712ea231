package main

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/pathkit/builder"
	"github.com/katalvlaran/pathkit/core"
)

var (
	// ErrBadEdge is returned for an --edge value that is not FROM:TO[:WEIGHT].
	ErrBadEdge = errors.New("pathfind: bad edge")

	// ErrBadTopology is returned for an unrecognised --generate value.
	ErrBadTopology = errors.New("pathfind: bad topology")
)

// generator describes the --generate family of flags.
type generator struct {
	topology  string
	seed      int64
	maxWeight float64
	symmetric bool
}

// sampleGraph is the six-vertex network used when no edges are given.
func sampleGraph() *core.Graph[string, float64] {
	return core.NewGraph[string, float64]().
		AddEdge("A", "B", 4).
		AddEdge("A", "C", 7).
		AddEdge("B", "C", 2).
		AddEdge("C", "D", 3).
		AddEdge("C", "F", 6).
		AddEdge("C", "E", 1).
		AddEdge("D", "F", 2).
		AddEdge("E", "F", 3)
}

// buildGraph returns the sample network when neither edges nor a topology
// are given. Otherwise it generates gen.topology (if set) and adds the edges.
func buildGraph(edges []string, gen generator) (*core.Graph[string, float64], error) {
	if len(edges) == 0 && gen.topology == "" {
		return sampleGraph(), nil
	}

	g := core.NewGraph[string, float64]()
	if gen.topology != "" {
		var err error
		if g, err = gen.build(); err != nil {
			return nil, err
		}
	}
	for _, s := range edges {
		e, err := parseEdge(s)
		if err != nil {
			return nil, err
		}
		g.AddEdge(e.From, e.To, e.Weight)
	}

	return g, nil
}

// build parses the topology and runs the matching builder constructor.
func (gen generator) build() (*core.Graph[string, float64], error) {
	con, err := parseTopology(gen.topology)
	if err != nil {
		return nil, err
	}

	bopts := []builder.Option[float64]{builder.WithSeed[float64](gen.seed)}
	if gen.maxWeight != 0 {
		if !(gen.maxWeight >= 1) || math.IsInf(gen.maxWeight, 1) {
			return nil, fmt.Errorf("%w %q: --max-weight must be at least 1", ErrBadTopology, gen.topology)
		}
		bopts = append(bopts, builder.WithUniformWeight(1, gen.maxWeight))
	}
	if gen.symmetric {
		bopts = append(bopts, builder.WithSymmetric[float64]())
	}

	g, err := builder.BuildGraph(nil, bopts, con)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrBadTopology, gen.topology, err)
	}

	return g, nil
}

// parseTopology maps KIND:ARGS onto a builder constructor.
func parseTopology(topology string) (builder.Constructor[float64], error) {
	kind, args, _ := strings.Cut(topology, ":")
	bad := func(format string, a ...any) error {
		return fmt.Errorf("%w %q: %s", ErrBadTopology, topology, fmt.Sprintf(format, a...))
	}

	switch kind {
	case "path", "cycle", "star", "complete":
		n, err := strconv.Atoi(args)
		if err != nil {
			return nil, bad("want %s:N", kind)
		}
		switch kind {
		case "path":
			return builder.Path[float64](n), nil
		case "cycle":
			return builder.Cycle[float64](n), nil
		case "star":
			return builder.Star[float64](n), nil
		default:
			return builder.Complete[float64](n), nil
		}

	case "grid":
		rs, cs, ok := strings.Cut(args, "x")
		rows, err1 := strconv.Atoi(rs)
		cols, err2 := strconv.Atoi(cs)
		if !ok || err1 != nil || err2 != nil {
			return nil, bad("want grid:RxC")
		}
		return builder.Grid[float64](rows, cols), nil

	case "random":
		ns, ps, ok := strings.Cut(args, ":")
		n, err1 := strconv.Atoi(ns)
		p, err2 := strconv.ParseFloat(ps, 64)
		if !ok || err1 != nil || err2 != nil {
			return nil, bad("want random:N:P")
		}
		return builder.RandomSparse[float64](n, p), nil
	}

	return nil, bad("unknown kind %q", kind)
}

// parseEdge reads FROM:TO or FROM:TO:WEIGHT. Weights must be finite and
// non-negative; closed roads are modelled with --impassable instead of Inf.
func parseEdge(s string) (core.Edge[string, float64], error) {
	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return core.Edge[string, float64]{}, fmt.Errorf("%w %q: want FROM:TO[:WEIGHT]", ErrBadEdge, s)
	}

	e := core.Edge[string, float64]{
		From:   strings.TrimSpace(parts[0]),
		To:     strings.TrimSpace(parts[1]),
		Weight: 1,
	}
	if e.From == "" || e.To == "" {
		return core.Edge[string, float64]{}, fmt.Errorf("%w %q: empty vertex name", ErrBadEdge, s)
	}
	if len(parts) == 3 {
		w, err := strconv.ParseFloat(strings.TrimSpace(parts[2]), 64)
		if err != nil {
			return core.Edge[string, float64]{}, fmt.Errorf("%w %q: %w", ErrBadEdge, s, err)
		}
		if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
			return core.Edge[string, float64]{}, fmt.Errorf("%w %q: weight must be finite and non-negative", ErrBadEdge, s)
		}
		e.Weight = w
	}

	return e, nil
}

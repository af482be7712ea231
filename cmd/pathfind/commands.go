package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/pathkit/bfs"
	"github.com/katalvlaran/pathkit/dfs"
	"github.com/katalvlaran/pathkit/dijkstra"
)

type pathCmd struct {
	From        string   `short:"f" required:"" help:"Source vertex"`
	To          []string `short:"t" required:"" sep:"none" help:"Target vertex (repeatable)"`
	MaxDistance float64  `default:"-1" help:"Give up beyond this distance (negative: no limit)"`
	Impassable  float64  `help:"Skip edges weighing at least this much (0: none)"`
}

func (c *pathCmd) Run(env *runEnv) error {
	var opts []dijkstra.Option[float64]
	if c.MaxDistance >= 0 {
		opts = append(opts, dijkstra.WithMaxDistance(c.MaxDistance))
	}
	if c.Impassable > 0 {
		opts = append(opts, dijkstra.WithImpassable(c.Impassable))
	}

	routes, err := dijkstra.NewCache(env.graph, len(c.To), opts...)
	if err != nil {
		return err
	}

	reports := make([]routeReport, 0, len(c.To))
	for _, to := range c.To {
		res := routes.Search(c.From, to)
		env.log.Debug("search finished",
			"from", c.From, "to", to, "found", res.Found,
			"settled", res.Settled, "pushes", res.Pushes)
		reports = append(reports, routeReport{
			From:     c.From,
			To:       to,
			Found:    res.Found,
			Path:     res.Path,
			Distance: res.Distance,
			Settled:  res.Settled,
		})
	}
	hits, misses := routes.Stats()
	env.log.Debug("route cache", "hits", hits, "misses", misses)

	var v any = reports
	if len(reports) == 1 {
		v = reports[0]
	}

	return env.emit(v, func(w io.Writer) {
		for _, r := range reports {
			if !r.Found {
				fmt.Fprintf(w, "no path from %s to %s\n", r.From, r.To)
				continue
			}
			fmt.Fprintf(w, "%s (distance %s)\n", strings.Join(r.Path, " -> "), formatWeight(r.Distance))
		}
	})
}

type bfsCmd struct {
	From     string `short:"f" required:"" help:"Start vertex"`
	MaxDepth int    `help:"Do not go deeper than this many edges (0: no limit)"`
}

func (c *bfsCmd) Run(env *runEnv) error {
	var opts []bfs.Option[string]
	if c.MaxDepth > 0 {
		opts = append(opts, bfs.WithMaxDepth[string](c.MaxDepth))
	}

	res, err := bfs.BFS(env.graph, c.From, opts...)
	if err != nil {
		return err
	}
	env.log.Debug("bfs finished", "from", c.From, "visited", len(res.Order))

	return env.emitOrder(orderReport{Command: "bfs", From: c.From, Order: res.Order})
}

type dfsCmd struct {
	From     string `short:"f" help:"Start vertex (required unless --all)"`
	All      bool   `help:"Traverse every component in vertex insertion order"`
	Post     bool   `help:"Print the post-order instead of the pre-order"`
	MaxDepth int    `default:"-1" help:"Do not go deeper than this many edges (negative: no limit)"`
}

func (c *dfsCmd) Run(env *runEnv) error {
	opts := []dfs.Option[string]{dfs.WithMaxDepth[string](c.MaxDepth)}
	if c.All {
		opts = append(opts, dfs.WithFullTraversal[string]())
	} else if c.From == "" {
		return fmt.Errorf("dfs: --from is required without --all")
	}

	res, err := dfs.DFS(env.graph, c.From, opts...)
	if err != nil {
		return err
	}
	env.log.Debug("dfs finished", "from", c.From, "visited", len(res.Order), "skipped", res.SkippedNeighbors)

	order := res.Order
	if c.Post {
		order = res.PostOrder
	}

	return env.emitOrder(orderReport{Command: "dfs", From: c.From, Order: order})
}

type topoCmd struct{}

func (c *topoCmd) Run(env *runEnv) error {
	order, err := dfs.TopologicalSort(env.graph)
	if err != nil {
		return err
	}

	return env.emitOrder(orderReport{Command: "topo", Order: order})
}

func (env *runEnv) emitOrder(r orderReport) error {
	return env.emit(r, func(w io.Writer) {
		fmt.Fprintln(w, strings.Join(r.Order, " "))
	})
}

// formatWeight prints integral weights without a fractional part.
func formatWeight(w float64) string {
	return strconv.FormatFloat(w, 'f', -1, 64)
}

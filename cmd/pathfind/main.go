// Command pathfind builds a weighted directed graph from command-line edges
// and runs one of the pathkit algorithms over it.
//
//	pathfind path --from A --to F
//	pathfind -e A:B:2 -e B:C -e A:C:5 path --from A --to C
//	pathfind bfs --from A
//	pathfind dfs --all --post
//	pathfind topo
//	pathfind -o yaml path -f A -t E -t F
//	pathfind --generate grid:20x20 --max-weight 9 path -f 0,0 -t 19,19
//
// Without --edge or --generate the built-in sample network is used; --edge
// arcs are added on top of a generated graph.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/willabides/kongplete"

	"github.com/katalvlaran/pathkit/core"
)

type CLI struct {
	Verbose bool     `short:"v" help:"Log graph size and search statistics to stderr"`
	Output  string   `short:"o" enum:"text,json,yaml" default:"text" help:"Result format: text, json or yaml"`
	Edges   []string `name:"edge" short:"e" sep:"none" placeholder:"FROM:TO[:WEIGHT]" help:"Add a directed edge (repeatable); weight defaults to 1"`

	Generate  string  `placeholder:"KIND:ARGS" help:"Generate a graph: path:N, cycle:N, star:N, complete:N, grid:RxC or random:N:P"`
	Seed      int64   `default:"1" help:"Seed for random topologies and weights"`
	MaxWeight float64 `help:"Draw generated weights uniformly from [1, MAX) instead of using 1"`
	Symmetric bool    `help:"Generate both directions of every arc"`

	Path pathCmd `cmd:"" help:"Print the shortest path between two vertices"`
	BFS  bfsCmd  `cmd:"" name:"bfs" help:"Print the breadth-first visit order"`
	DFS  dfsCmd  `cmd:"" name:"dfs" help:"Print the depth-first visit order"`
	Topo topoCmd `cmd:"" help:"Print a topological order of the graph"`

	InstallCompletions kongplete.InstallCompletions `cmd:"" help:"Install shell completions"`
}

// runEnv is bound into every command's Run method.
type runEnv struct {
	graph  *core.Graph[string, float64]
	out    io.Writer
	log    *slog.Logger
	format string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run parses args, executes the selected command and returns the exit status.
func run(args []string, stdout, stderr io.Writer) int {
	var (
		cli      CLI
		exited   bool
		exitCode int
	)
	parser, err := kong.New(&cli,
		kong.Name("pathfind"),
		kong.Description("Shortest paths and traversals over a small weighted digraph."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(code int) { exited, exitCode = true, code }),
		kong.UsageOnError(),
	)
	if err != nil {
		fmt.Fprintln(stderr, "pathfind:", err)
		return 2
	}

	kongplete.Complete(parser)

	kctx, err := parser.Parse(args)
	if exited {
		return exitCode
	}
	if err != nil {
		fmt.Fprintln(stderr, "pathfind:", err)
		return 2
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	g, err := buildGraph(cli.Edges, generator{
		topology:  cli.Generate,
		seed:      cli.Seed,
		maxWeight: cli.MaxWeight,
		symmetric: cli.Symmetric,
	})
	if err != nil {
		logger.Error("building graph", "err", err)
		return 1
	}
	logger.Debug("graph ready", "vertices", g.Order(), "edges", g.Size(), "generate", cli.Generate)

	env := &runEnv{graph: g, out: stdout, log: logger, format: cli.Output}
	if err := kctx.Run(env); err != nil {
		logger.Error("command failed", "command", kctx.Command(), "err", err)
		return 1
	}

	return 0
}

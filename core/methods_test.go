package core_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/pathkit/core"
)

type GraphSuite struct {
	suite.Suite
	g *core.Graph[string, int]
}

func (s *GraphSuite) SetupTest() {
	s.g = core.NewGraph[string, int]()
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}

func (s *GraphSuite) TestAddVertexIdempotent() {
	require := require.New(s.T())
	require.False(s.g.HasVertex("A"), "empty graph should not have A")

	s.g.AddEdge("A", "B", 3)
	s.g.AddVertex("A")
	s.g.AddVertex("A")

	require.Equal(2, s.g.Order(), "re-adding A should not change the vertex count")
	w, ok := s.g.Weight("A", "B")
	require.True(ok, "AddVertex must not reset existing edges")
	require.Equal(3, w)
	require.Equal([]string{"A"}, s.g.Predecessors("B"))
}

func (s *GraphSuite) TestAddEdgeAutoAddsAndOverwrites() {
	require := require.New(s.T())

	s.g.AddEdge("A", "B", 5)
	require.True(s.g.HasVertex("A") && s.g.HasVertex("B"), "AddEdge should auto-add vertices")
	require.True(s.g.HasEdge("A", "B"))
	require.False(s.g.HasEdge("B", "A"), "edges are directed")

	s.g.AddEdge("A", "B", 9)
	w, _ := s.g.Weight("A", "B")
	require.Equal(9, w, "last write wins")
	require.Equal(1, s.g.Size(), "overwrite must not add a parallel edge")
}

func (s *GraphSuite) TestLinkUsesDefaultWeight() {
	require := require.New(s.T())

	s.g.Link("A", "B")
	w, ok := s.g.Weight("A", "B")
	require.True(ok)
	require.Equal(1, w)

	g := core.NewGraph[string, float64](core.WithDefaultWeight(2.5))
	g.Link("X", "Y")
	fw, _ := g.Weight("X", "Y")
	require.InDelta(2.5, fw, 1e-9)
}

func (s *GraphSuite) TestSelfLoop() {
	require := require.New(s.T())

	s.g.AddEdge("A", "A", 2)
	require.True(s.g.HasEdge("A", "A"))
	require.Equal([]string{"A"}, s.g.Successors("A"))
	require.Equal([]string{"A"}, s.g.Predecessors("A"))

	s.g.RemoveVertex("A")
	require.False(s.g.HasVertex("A"))
	require.Zero(s.g.Size())
}

func (s *GraphSuite) TestRemoveEdge() {
	require := require.New(s.T())

	s.g.AddEdge("A", "B", 1).AddEdge("B", "A", 1)
	s.g.RemoveEdge("A", "B")
	require.False(s.g.HasEdge("A", "B"))
	require.True(s.g.HasEdge("B", "A"), "reverse edge is independent")
	require.Empty(s.g.Predecessors("B"))
	require.Equal(1, s.g.Size())

	// Missing endpoints and missing edges are silent no-ops.
	s.g.RemoveEdge("A", "missing").RemoveEdge("missing", "A").RemoveEdge("A", "B")
	require.Equal(1, s.g.Size())
	require.Equal(2, s.g.Order())
}

func (s *GraphSuite) TestRemoveVertexCascade() {
	require := require.New(s.T())

	s.g.AddEdge("A", "V", 1).
		AddEdge("V", "B", 2).
		AddEdge("B", "V", 3).
		AddEdge("A", "B", 4).
		AddEdge("B", "C", 5)

	s.g.RemoveVertex("V")
	require.False(s.g.HasVertex("V"))
	for _, e := range s.g.Edges() {
		require.NotEqual("V", e.From)
		require.NotEqual("V", e.To)
	}
	require.True(s.g.HasEdge("A", "B"), "unrelated edges survive")
	require.True(s.g.HasEdge("B", "C"), "unrelated edges survive")
	require.Equal(2, s.g.Size())
	require.Equal([]string{"A"}, s.g.Predecessors("B"))

	// Absent vertex: no-op.
	s.g.RemoveVertex("V")
	require.Equal(3, s.g.Order())
}

func (s *GraphSuite) TestEnumerationOrder() {
	require := require.New(s.T())

	s.g.AddEdge("C", "A", 1).
		AddEdge("C", "B", 1).
		AddEdge("A", "B", 1).
		AddEdge("C", "D", 1)
	s.g.AddEdge("C", "A", 7) // update keeps slot

	require.Equal([]string{"C", "A", "B", "D"}, s.g.Vertices())
	require.Equal([]string{"A", "B", "D"}, s.g.Successors("C"))
	require.Equal([]string{"C", "A"}, s.g.Predecessors("B"))
	require.Equal([]core.Edge[string, int]{
		{From: "C", To: "A", Weight: 7},
		{From: "C", To: "B", Weight: 1},
		{From: "C", To: "D", Weight: 1},
		{From: "A", To: "B", Weight: 1},
	}, s.g.Edges())

	require.Nil(s.g.Successors("missing"))
	require.Nil(s.g.Predecessors("missing"))
	require.Nil(s.g.OutEdges("missing"))
}

func (s *GraphSuite) TestCloneIsIndependent() {
	require := require.New(s.T())

	s.g.AddEdge("A", "B", 1).AddEdge("B", "C", 2)
	c := s.g.Clone()
	c.RemoveVertex("B")
	c.AddEdge("C", "A", 3)

	require.True(s.g.HasEdge("A", "B"))
	require.True(s.g.HasEdge("B", "C"))
	require.False(s.g.HasEdge("C", "A"))
	require.Equal(2, s.g.Size())
	require.Equal([]string{"A", "C"}, c.Vertices())
	require.Equal(1, c.Size())

	s.g.Clear()
	require.Zero(s.g.Order())
	require.Zero(s.g.Size())
	require.Equal(2, c.Order())
}

func (s *GraphSuite) TestVersionTracksEffectiveMutations() {
	require := require.New(s.T())

	v0 := s.g.Version()
	s.g.AddEdge("A", "B", 1)
	v1 := s.g.Version()
	require.Greater(v1, v0)

	s.g.AddVertex("A")
	s.g.RemoveEdge("A", "missing")
	s.g.RemoveVertex("missing")
	_ = s.g.Vertices()
	require.Equal(v1, s.g.Version(), "no-ops and queries leave the version alone")

	s.g.AddEdge("A", "B", 5)
	require.Greater(s.g.Version(), v1, "weight update is a mutation")

	v2 := s.g.Version()
	s.g.RemoveVertex("B")
	require.Greater(s.g.Version(), v2)
}

// assertSymmetric checks that b ∈ out(a) iff a ∈ in(b) for every pair.
func assertSymmetric(t *testing.T, g *core.Graph[int, int]) {
	t.Helper()
	edges := 0
	for _, a := range g.Vertices() {
		for _, b := range g.Successors(a) {
			require.Contains(t, g.Predecessors(b), a, "edge %d→%d missing from in(%d)", a, b, b)
			edges++
		}
		for _, p := range g.Predecessors(a) {
			require.True(t, g.HasEdge(p, a), "in(%d) lists %d without edge", a, p)
		}
	}
	require.Equal(t, g.Size(), edges)
}

func TestGraph_RandomMutationsKeepIndicesSymmetric(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	g := core.NewGraph[int, int]()
	const n = 12
	for step := 0; step < 2000; step++ {
		a, b := rng.Intn(n), rng.Intn(n)
		switch rng.Intn(10) {
		case 0:
			g.RemoveVertex(a)
		case 1, 2, 3:
			g.RemoveEdge(a, b)
		case 4:
			g.AddVertex(a)
		default:
			g.AddEdge(a, b, rng.Intn(20))
		}
		if step%50 == 0 {
			assertSymmetric(t, g)
		}
	}
	assertSymmetric(t, g)
}

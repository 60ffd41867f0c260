package runtime

import (
	"fmt"

	"github.com/nithin218/mindmate/pkg/domain"
)

// Verdict is the result of a routing function on a conditional edge.
type Verdict string

const (
	// VerdictPass routes to the success terminal.
	VerdictPass Verdict = "pass"
	// VerdictFail routes into the retry loop.
	VerdictFail Verdict = "fail"
	// VerdictExhausted routes to the degraded terminal.
	VerdictExhausted Verdict = "exhausted"
)

// Router evaluates the state after a node completes and picks a verdict.
type Router func(state *domain.State) Verdict

// Conditional is one conditional-edge table entry: a routing function and
// the target node per verdict.
type Conditional struct {
	Route   Router
	Targets map[Verdict]string
}

// Graph is the explicit pipeline structure: named nodes, an unconditional
// edge table, and conditional edges keyed by the router's verdict. A node
// with no outgoing edge of either kind is terminal.
type Graph struct {
	Entry       string
	Nodes       map[string]domain.Stage
	Edges       map[string]string
	Conditional map[string]Conditional
}

// Validate checks structural integrity: the entry exists, every edge points
// to a known node, and no node carries both edge kinds.
func (g *Graph) Validate() error {
	if _, ok := g.Nodes[g.Entry]; !ok {
		return fmt.Errorf("graph: entry node %q not defined", g.Entry)
	}
	for from, to := range g.Edges {
		if _, ok := g.Nodes[from]; !ok {
			return fmt.Errorf("graph: edge from unknown node %q", from)
		}
		if _, ok := g.Nodes[to]; !ok {
			return fmt.Errorf("graph: edge %q -> %q targets unknown node", from, to)
		}
		if _, dup := g.Conditional[from]; dup {
			return fmt.Errorf("graph: node %q has both an unconditional and a conditional edge", from)
		}
	}
	for from, cond := range g.Conditional {
		if _, ok := g.Nodes[from]; !ok {
			return fmt.Errorf("graph: conditional edge from unknown node %q", from)
		}
		if cond.Route == nil {
			return fmt.Errorf("graph: conditional edge on %q has no router", from)
		}
		for verdict, to := range cond.Targets {
			if _, ok := g.Nodes[to]; !ok {
				return fmt.Errorf("graph: conditional edge %q[%s] targets unknown node %q", from, verdict, to)
			}
		}
	}
	return nil
}

package runtime_test

import (
	"context"
	"testing"

	"github.com/nithin218/mindmate/internal/runtime"
	"github.com/nithin218/mindmate/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordStage appends its name to the trace and returns a fresh snapshot.
func recordStage(name string) domain.Stage {
	return func(_ context.Context, state *domain.State) (*domain.State, error) {
		next := state.Clone()
		next.AppendTrace(name, "ok")
		return next, nil
	}
}

func linearGraph() *runtime.Graph {
	return &runtime.Graph{
		Entry: "a",
		Nodes: map[string]domain.Stage{
			"a": recordStage("a"),
			"b": recordStage("b"),
			"c": recordStage("c"),
		},
		Edges: map[string]string{"a": "b", "b": "c"},
	}
}

func TestEngine_WalksToTerminal(t *testing.T) {
	engine, err := runtime.NewEngine(linearGraph())
	require.NoError(t, err)

	final, err := engine.Run(context.Background(), domain.NewState("q"))
	require.NoError(t, err)

	require.Len(t, final.Trace, 3)
	assert.Equal(t, "a", final.Trace[0].Role)
	assert.Equal(t, "c", final.Trace[2].Role)
}

func TestEngine_ConditionalRouting(t *testing.T) {
	verdict := runtime.VerdictFail
	graph := &runtime.Graph{
		Entry: "check",
		Nodes: map[string]domain.Stage{
			"check": recordStage("check"),
			"ok":    recordStage("ok"),
			"bad":   recordStage("bad"),
		},
		Conditional: map[string]runtime.Conditional{
			"check": {
				Route: func(*domain.State) runtime.Verdict { return verdict },
				Targets: map[runtime.Verdict]string{
					runtime.VerdictPass: "ok",
					runtime.VerdictFail: "bad",
				},
			},
		},
	}

	engine, err := runtime.NewEngine(graph)
	require.NoError(t, err)

	final, err := engine.Run(context.Background(), domain.NewState("q"))
	require.NoError(t, err)
	assert.Equal(t, "bad", final.Trace[len(final.Trace)-1].Role)

	verdict = runtime.VerdictPass
	final, err = engine.Run(context.Background(), domain.NewState("q"))
	require.NoError(t, err)
	assert.Equal(t, "ok", final.Trace[len(final.Trace)-1].Role)
}

func TestEngine_UnmappedVerdict(t *testing.T) {
	graph := &runtime.Graph{
		Entry: "check",
		Nodes: map[string]domain.Stage{
			"check": recordStage("check"),
			"ok":    recordStage("ok"),
		},
		Conditional: map[string]runtime.Conditional{
			"check": {
				Route:   func(*domain.State) runtime.Verdict { return runtime.VerdictExhausted },
				Targets: map[runtime.Verdict]string{runtime.VerdictPass: "ok"},
			},
		},
	}

	engine, err := runtime.NewEngine(graph)
	require.NoError(t, err)

	_, err = engine.Run(context.Background(), domain.NewState("q"))
	assert.ErrorContains(t, err, "no target for verdict")
}

func TestEngine_Hooks(t *testing.T) {
	var entered, left []string
	hooks := domain.LifecycleHooks{
		OnStageEnter: func(_ context.Context, e *domain.StageEvent) {
			entered = append(entered, e.Node)
			assert.Zero(t, e.Duration)
		},
		OnStageLeave: func(_ context.Context, e *domain.StageEvent) {
			left = append(left, e.Node)
		},
	}

	engine, err := runtime.NewEngine(linearGraph(), runtime.WithLifecycleHooks(hooks))
	require.NoError(t, err)

	_, err = engine.Run(context.Background(), domain.NewState("q"))
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b", "c"}, entered)
	assert.Equal(t, []string{"a", "b", "c"}, left)
}

func TestEngine_ContextCancellation(t *testing.T) {
	engine, err := runtime.NewEngine(linearGraph())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = engine.Run(ctx, domain.NewState("q"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGraph_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*runtime.Graph)
		wantErr string
	}{
		{
			name:    "missing entry",
			mutate:  func(g *runtime.Graph) { g.Entry = "nope" },
			wantErr: "entry node",
		},
		{
			name:    "dangling edge",
			mutate:  func(g *runtime.Graph) { g.Edges["c"] = "nope" },
			wantErr: "unknown node",
		},
		{
			name: "conflicting edges",
			mutate: func(g *runtime.Graph) {
				g.Conditional = map[string]runtime.Conditional{
					"a": {
						Route:   func(*domain.State) runtime.Verdict { return runtime.VerdictPass },
						Targets: map[runtime.Verdict]string{runtime.VerdictPass: "b"},
					},
				}
			},
			wantErr: "both an unconditional and a conditional edge",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := linearGraph()
			tt.mutate(g)
			_, err := runtime.NewEngine(g)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

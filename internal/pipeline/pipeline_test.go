package pipeline_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/nithin218/mindmate/internal/pipeline"
	"github.com/nithin218/mindmate/internal/runtime"
	"github.com/nithin218/mindmate/pkg/capability"
	"github.com/nithin218/mindmate/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedClient is a capability stub. Ethics verdicts are consumed from the
// script in order (the last entry repeats); every other stage returns a
// canned answer tagged with its invocation count.
type scriptedClient struct {
	ethicsScript []string
	ethicsCalls  int
	cbtCalls     int
	failStage    string
}

func (c *scriptedClient) Complete(_ context.Context, req capability.Request) (string, error) {
	if req.Stage == c.failStage {
		return "", errors.New("upstream timeout")
	}
	switch req.Stage {
	case domain.NodeRewrite:
		return "rewritten: " + req.User, nil
	case domain.NodeEmotionAnalysis:
		return `{"emotion": "anxiety", "confidence": "high"}`, nil
	case domain.NodeCBTAgent:
		c.cbtCalls++
		return fmt.Sprintf("therapeutic response #%d", c.cbtCalls), nil
	case domain.NodeResourceSchedule:
		return `{"schedule": {"daily_activities": ["walk"]}}`, nil
	case domain.NodeEthicalGuardian:
		i := c.ethicsCalls
		if i >= len(c.ethicsScript) {
			i = len(c.ethicsScript) - 1
		}
		c.ethicsCalls++
		return c.ethicsScript[i], nil
	case domain.NodeWriter:
		return "final composed answer", nil
	}
	return "", fmt.Errorf("unexpected stage %q", req.Stage)
}

const (
	approve = `{"ethical": true, "feedback": "approved"}`
	reject  = `{"ethical": false, "feedback": "needs revision"}`
)

func run(t *testing.T, client capability.Client, opts ...pipeline.Option) (*domain.State, error) {
	t.Helper()
	engine, err := runtime.NewEngine(pipeline.New(client, opts...))
	require.NoError(t, err)
	return engine.Run(context.Background(), domain.NewState("I feel anxious about my exam"))
}

func roles(state *domain.State) []string {
	out := make([]string, 0, len(state.Trace))
	for _, e := range state.Trace {
		out = append(out, e.Role)
	}
	return out
}

func TestPipeline_HappyPath(t *testing.T) {
	client := &scriptedClient{ethicsScript: []string{approve}}

	final, err := run(t, client)
	require.NoError(t, err)

	assert.Equal(t, []string{
		domain.RoleRewrite,
		domain.RoleEmotionAnalyst,
		domain.RoleCBTAgent,
		domain.RoleResourceSchedule,
		domain.RoleEthicalGuardian,
		domain.RoleWriter,
	}, roles(final))
	assert.NotEmpty(t, final.FinalOutput)
	assert.Equal(t, "anxiety", final.Emotion)
	assert.Equal(t, 0, final.RetryCount)
	assert.Equal(t, "I feel anxious about my exam", final.UserQuery)
}

func TestPipeline_Termination_AlwaysRejected(t *testing.T) {
	client := &scriptedClient{ethicsScript: []string{reject}}

	final, err := run(t, client)
	require.NoError(t, err)

	// Initial attempt plus MaxRetries regenerations, then the fallback.
	assert.Equal(t, 4, client.cbtCalls)
	assert.Equal(t, domain.MaxRetries, final.RetryCount)
	assert.Equal(t, domain.FallbackMessage, final.FinalOutput)
	assert.False(t, final.EthicalCheck)

	// rewrite + emotion + 4 passes over (cbt, schedule, ethics); the retry
	// controller and the fallback add no trace entries.
	assert.Len(t, final.Trace, 14)
}

func TestPipeline_RetryEvolution(t *testing.T) {
	client := &scriptedClient{ethicsScript: []string{reject, approve}}

	final, err := run(t, client)
	require.NoError(t, err)

	assert.Equal(t, 1, final.RetryCount)
	assert.Equal(t, 2, client.cbtCalls)
	assert.Equal(t, "therapeutic response #2", final.TherapeuticResponse,
		"the rejected response must be regenerated, not reused")

	assert.Equal(t, []string{
		domain.RoleRewrite,
		domain.RoleEmotionAnalyst,
		domain.RoleCBTAgent,
		domain.RoleResourceSchedule,
		domain.RoleEthicalGuardian,
		domain.RoleCBTAgent,
		domain.RoleResourceSchedule,
		domain.RoleEthicalGuardian,
		domain.RoleWriter,
	}, roles(final))
}

func TestPipeline_CapabilityErrorAborts(t *testing.T) {
	client := &scriptedClient{ethicsScript: []string{approve}, failStage: domain.NodeCBTAgent}

	final, err := run(t, client)
	require.Error(t, err)
	assert.Nil(t, final, "no partial terminal state on capability failure")

	var capErr *domain.CapabilityError
	require.ErrorAs(t, err, &capErr)
	assert.Equal(t, domain.NodeCBTAgent, capErr.Stage)
}

func TestPipeline_MaxRetriesZero(t *testing.T) {
	client := &scriptedClient{ethicsScript: []string{reject}}

	final, err := run(t, client, pipeline.WithMaxRetries(0))
	require.NoError(t, err)

	assert.Equal(t, 1, client.cbtCalls, "no regeneration when the bound is zero")
	assert.Equal(t, 0, final.RetryCount)
	assert.Equal(t, domain.FallbackMessage, final.FinalOutput)
}

func TestPipeline_StagesPreserveNonOwnedFields(t *testing.T) {
	client := &scriptedClient{ethicsScript: []string{approve}}
	graph := pipeline.New(client)

	base := domain.NewState("I feel anxious about my exam")
	base.RewrittenQuery = "rewritten"
	base.Emotion = "anxiety"
	base.TherapeuticResponse = "response"
	base.ScheduleRecommendation = "schedule"
	base.AppendTrace("seed", "x")

	owned := map[string][]string{
		domain.NodeRewrite:          {"RewrittenQuery"},
		domain.NodeEmotionAnalysis:  {"Emotion"},
		domain.NodeCBTAgent:         {"TherapeuticResponse"},
		domain.NodeResourceSchedule: {"ScheduleRecommendation"},
		domain.NodeEthicalGuardian:  {"EthicalCheck", "EthicalFeedback"},
		domain.NodeWriter:           {"FinalOutput"},
	}

	for node := range owned {
		t.Run(node, func(t *testing.T) {
			next, err := graph.Nodes[node](context.Background(), base)
			require.NoError(t, err)

			// Input snapshot untouched.
			assert.Len(t, base.Trace, 1)

			// Non-owned fields byte-identical.
			assert.Equal(t, base.UserQuery, next.UserQuery)
			assert.Equal(t, base.RetryCount, next.RetryCount)
			if node != domain.NodeRewrite {
				assert.Equal(t, base.RewrittenQuery, next.RewrittenQuery)
			}
			if node != domain.NodeEmotionAnalysis {
				assert.Equal(t, base.Emotion, next.Emotion)
			}
			if node != domain.NodeCBTAgent {
				assert.Equal(t, base.TherapeuticResponse, next.TherapeuticResponse)
			}
			if node != domain.NodeResourceSchedule {
				assert.Equal(t, base.ScheduleRecommendation, next.ScheduleRecommendation)
			}

			// Exactly one trace entry appended.
			assert.Len(t, next.Trace, 2)
		})
	}
}

func TestPipeline_RetryControllerIsPureIncrement(t *testing.T) {
	client := &scriptedClient{ethicsScript: []string{approve}}
	graph := pipeline.New(client)

	base := domain.NewState("q")
	base.AppendTrace("seed", "x")

	next, err := graph.Nodes[domain.NodeIncrementRetry](context.Background(), base)
	require.NoError(t, err)

	assert.Equal(t, 1, next.RetryCount)
	assert.Equal(t, 0, base.RetryCount)
	assert.Len(t, next.Trace, 1, "retry controller appends no trace entry")
}

func TestPipeline_FallbackIsDeterministic(t *testing.T) {
	client := &scriptedClient{ethicsScript: []string{approve}}
	graph := pipeline.New(client)

	for _, emotion := range []string{"anxiety", "joy", ""} {
		state := domain.NewState("q")
		state.Emotion = emotion
		state.TherapeuticResponse = "whatever came before"

		next, err := graph.Nodes[domain.NodeMaxRetries](context.Background(), state)
		require.NoError(t, err)
		assert.Equal(t, domain.FallbackMessage, next.FinalOutput)
	}
}

func TestSupervisorRouting(t *testing.T) {
	client := &scriptedClient{ethicsScript: []string{approve}}
	route := pipeline.New(client).Conditional[domain.NodeEthicalGuardian].Route

	pass := domain.NewState("q")
	pass.EthicalCheck = true
	assert.Equal(t, runtime.VerdictPass, route(pass))

	fail := domain.NewState("q")
	fail.EthicalCheck = false
	assert.Equal(t, runtime.VerdictFail, route(fail))

	exhausted := domain.NewState("q")
	exhausted.EthicalCheck = false
	exhausted.RetryCount = domain.MaxRetries
	assert.Equal(t, runtime.VerdictExhausted, route(exhausted))
}

package pipeline

import (
	"context"
	"fmt"

	"github.com/nithin218/mindmate/pkg/capability"
	"github.com/nithin218/mindmate/pkg/decode"
	"github.com/nithin218/mindmate/pkg/domain"
)

// call invokes the capability for a stage and wraps failures.
func call(ctx context.Context, client capability.Client, stage, system, user string) (string, error) {
	out, err := client.Complete(ctx, capability.Request{Stage: stage, System: system, User: user})
	if err != nil {
		return "", &domain.CapabilityError{Stage: stage, Err: err}
	}
	return out, nil
}

// rewriteStage normalizes the user query for downstream analysis.
func rewriteStage(client capability.Client) domain.Stage {
	return func(ctx context.Context, state *domain.State) (*domain.State, error) {
		out, err := call(ctx, client, domain.NodeRewrite, capability.RewritePrompt, state.UserQuery)
		if err != nil {
			return nil, err
		}
		next := state.Clone()
		next.RewrittenQuery = out
		next.AppendTrace(domain.RoleRewrite, out)
		return next, nil
	}
}

// emotionStage classifies the primary emotion of the rewritten query.
func emotionStage(client capability.Client) domain.Stage {
	return func(ctx context.Context, state *domain.State) (*domain.State, error) {
		out, err := call(ctx, client, domain.NodeEmotionAnalysis, capability.EmotionPrompt, state.RewrittenQuery)
		if err != nil {
			return nil, err
		}
		next := state.Clone()
		next.Emotion = decode.Emotion(out)
		next.AppendTrace(domain.RoleEmotionAnalyst, out)
		return next, nil
	}
}

// cbtStage generates the therapeutic response. Re-executed on every retry.
func cbtStage(client capability.Client) domain.Stage {
	return func(ctx context.Context, state *domain.State) (*domain.State, error) {
		user := fmt.Sprintf("Query: %s\nEmotion: %s", state.RewrittenQuery, state.Emotion)
		out, err := call(ctx, client, domain.NodeCBTAgent, capability.CBTPrompt, user)
		if err != nil {
			return nil, err
		}
		next := state.Clone()
		next.TherapeuticResponse = out
		next.AppendTrace(domain.RoleCBTAgent, out)
		return next, nil
	}
}

// scheduleStage recommends resources and timing for the response.
func scheduleStage(client capability.Client) domain.Stage {
	return func(ctx context.Context, state *domain.State) (*domain.State, error) {
		user := fmt.Sprintf("Therapeutic Response: %s\nEmotion: %s", state.TherapeuticResponse, state.Emotion)
		out, err := call(ctx, client, domain.NodeResourceSchedule, capability.SchedulePrompt, user)
		if err != nil {
			return nil, err
		}
		next := state.Clone()
		next.ScheduleRecommendation = out
		next.AppendTrace(domain.RoleResourceSchedule, out)
		return next, nil
	}
}

// ethicsStage reviews the response and schedule; its outcome gates routing.
func ethicsStage(client capability.Client) domain.Stage {
	return func(ctx context.Context, state *domain.State) (*domain.State, error) {
		user := fmt.Sprintf("CBT Response: %s\nSchedule: %s", state.TherapeuticResponse, state.ScheduleRecommendation)
		out, err := call(ctx, client, domain.NodeEthicalGuardian, capability.EthicsPrompt, user)
		if err != nil {
			return nil, err
		}
		next := state.Clone()
		next.EthicalCheck, next.EthicalFeedback = decode.Ethics(out)
		next.AppendTrace(domain.RoleEthicalGuardian, out)
		return next, nil
	}
}

// writerStage composes the final output. Terminal on the success path.
func writerStage(client capability.Client) domain.Stage {
	return func(ctx context.Context, state *domain.State) (*domain.State, error) {
		user := fmt.Sprintf("CBT Response: %s\nSchedule: %s\nEmotion: %s",
			state.TherapeuticResponse, state.ScheduleRecommendation, state.Emotion)
		out, err := call(ctx, client, domain.NodeWriter, capability.WriterPrompt, user)
		if err != nil {
			return nil, err
		}
		next := state.Clone()
		next.FinalOutput = out
		next.AppendTrace(domain.RoleWriter, out)
		return next, nil
	}
}

// incrementRetryStage is the retry controller: a pure single-field update.
// No capability call, no trace entry.
func incrementRetryStage() domain.Stage {
	return func(_ context.Context, state *domain.State) (*domain.State, error) {
		next := state.Clone()
		next.RetryCount++
		return next, nil
	}
}

// fallbackStage is the degraded terminal once retries are exhausted.
// Deterministic and capability-free.
func fallbackStage() domain.Stage {
	return func(_ context.Context, state *domain.State) (*domain.State, error) {
		next := state.Clone()
		next.FinalOutput = domain.FallbackMessage
		return next, nil
	}
}

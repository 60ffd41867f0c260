// Package mindmate implements a staged conversational pipeline for
// mental-health support. A user question flows through query rewriting,
// emotion classification, a CBT-style therapeutic response, a daily schedule
// recommendation, and an ethical review before a writer stage composes the
// final answer. When the review rejects a response the pipeline retries the
// therapeutic stages with the reviewer's feedback, up to a fixed bound, then
// falls back to a safe referral message.
//
// The pipeline is capability-agnostic: stages talk to a capability.Client,
// which may be a remote chat-completion API or the deterministic local
// implementation in pkg/capability/local.
package mindmate

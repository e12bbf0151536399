// Package chat relays free-text questions to a generative-text assistant
// with a fixed persona and absorbs every provider failure into a
// user-facing string.
package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Persona conditions the assistant to stay in character.
const Persona = "You are Vrishabh, a helpful assistant for a microfinance platform. " +
	"You help rural borrowers and microfinance institutions with questions about " +
	"loans, EMI, credit scores and the application process. Keep answers short, " +
	"simple and friendly."

// Assistant is the capability the relay needs from a provider: send one
// message within the running conversation, or reset the conversation to
// just the persona prompt.
type Assistant interface {
	Send(ctx context.Context, text string) (string, error)
	Reset()
}

// Provider failure categories. Transports should wrap one of these so
// classification does not depend on error text.
var (
	ErrCredential   = errors.New("assistant credential rejected")
	ErrRateLimited  = errors.New("assistant rate limit reached")
	ErrConnectivity = errors.New("assistant unreachable")
)

const (
	msgCredential = "I can't reach my knowledge service right now because its access key was rejected. Please ask the platform operator to check the configuration."
	msgRateLimit  = "I'm receiving too many questions at the moment. Please wait a little and ask me again."
	msgNetwork    = "I couldn't reach my knowledge service. Please check your connection and try again."
	msgGeneric    = "Something went wrong while I was thinking about that. Please try asking again."
)

type Relay struct {
	assistant Assistant
	log       *zap.Logger
}

// NewRelay builds a relay around an assistant. A nil assistant puts the
// relay in offline mode: every question gets a templated reply that
// embeds the original text, and no external call is made.
func NewRelay(a Assistant, log *zap.Logger) *Relay {
	if log == nil {
		log = zap.NewNop()
	}
	return &Relay{assistant: a, log: log}
}

// Ask always resolves to a string; provider faults are classified and
// translated, never propagated.
func (r *Relay) Ask(ctx context.Context, text string) string {
	if r.assistant == nil {
		return offlineReply(text)
	}

	reply, err := r.assistant.Send(ctx, text)
	if err != nil {
		r.log.Warn("chat relay send failed", zap.Error(err))
		return classify(err)
	}
	return reply
}

// Reset discards prior turns and reseeds the persona prompt.
func (r *Relay) Reset() {
	if r.assistant != nil {
		r.assistant.Reset()
	}
}

func offlineReply(text string) string {
	return fmt.Sprintf("I'm running without my AI service right now, so I can't give a detailed answer to: \"%s\". "+
		"For loan applications, EMI schedules and credit scores, please use the dashboard, or ask a field officer for help.", text)
}

// classify prefers the structured categories; the substring checks are a
// fallback for unstructured errors from legacy transports.
func classify(err error) string {
	switch {
	case errors.Is(err, ErrCredential):
		return msgCredential
	case errors.Is(err, ErrRateLimited):
		return msgRateLimit
	case errors.Is(err, ErrConnectivity):
		return msgNetwork
	}

	text := err.Error()
	switch {
	case strings.Contains(text, "API_KEY_INVALID"), strings.Contains(text, "403"):
		return msgCredential
	case strings.Contains(text, "quota"), strings.Contains(text, "limit"):
		return msgRateLimit
	case strings.Contains(text, "network"), strings.Contains(text, "fetch"):
		return msgNetwork
	}
	return msgGeneric
}

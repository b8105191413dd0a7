// Package resolve turns raw text into a normalized domain.Action. Two
// resolvers exist: the keyword path (catalog matching) and the LLM path
// (function calls). They run as an ordered chain; the first one that claims
// the input wins, and both converge on the same Action union.
package resolve

import (
	"context"
	"time"

	"deskpilot/internal/domain"
	"deskpilot/internal/observability"
)

// Input carries what a resolver may need to resolve one user message.
type Input struct {
	Text    string
	History []domain.ChatTurn
}

// Resolver tries to turn an input into an action. ok=false means "not mine,
// try the next one"; an error aborts the whole resolution.
type Resolver interface {
	Name() string
	Resolve(ctx context.Context, in Input) (action domain.Action, ok bool, err error)
}

// Chain runs resolvers in order.
type Chain struct {
	resolvers []Resolver
}

func NewChain(resolvers ...Resolver) *Chain {
	return &Chain{resolvers: resolvers}
}

// Resolve walks the chain and returns the first claimed action. When no
// resolver claims the input, the result is the Unknown action: that is a
// soft miss, not an error.
func (c *Chain) Resolve(ctx context.Context, in Input) (domain.Action, error) {
	log := observability.LoggerFromContext(ctx)

	for _, r := range c.resolvers {
		start := time.Now()

		action, ok, err := r.Resolve(ctx, in)
		if err != nil {
			log.Error("resolver failed", "resolver", r.Name(), "error", err)
			return domain.Action{}, err
		}

		elapsed := time.Since(start)
		log.Info("resolver done",
			"resolver", r.Name(),
			"claimed", ok,
			"elapsed_ms", elapsed.Milliseconds())

		if ok {
			return action, nil
		}
	}

	return domain.Unknown(), nil
}

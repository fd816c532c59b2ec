package access

import "context"

// Checker answers whether a named caller may perform an operation.
// Implementations must fail closed: when in doubt, deny.
type Checker interface {
	Check(ctx context.Context, caller string, op Operation) (Decision, error)
}

// Guard is the directory-backed Checker: resolve the caller, then compare
// levels. It never returns an error; resolution failures are already
// folded into a deny by the Resolver.
type Guard struct {
	resolver *Resolver
}

func NewGuard(resolver *Resolver) *Guard {
	return &Guard{resolver: resolver}
}

func (g *Guard) Check(ctx context.Context, caller string, op Operation) (Decision, error) {
	return Decide(g.resolver.Resolve(ctx, caller), op), nil
}

// Static is a fixed-answer Checker for tests and local wiring.
type Static struct {
	AlwaysAllow bool
}

func (s *Static) Check(ctx context.Context, caller string, op Operation) (Decision, error) {
	if s.AlwaysAllow {
		return Decision{Allowed: true}, nil
	}
	return Decision{Reason: "static_deny"}, nil
}

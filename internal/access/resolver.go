package access

import (
	"context"
	"log/slog"

	"github.com/gatekit/gatekit/internal/directory"
)

// Resolver turns a caller name into a Resolution. The directory's list
// endpoint returns partial records, so a match is hydrated with a second
// lookup by id; callers only ever see the single logical resolve.
//
// Every failure mode — empty name, no match, transport error, malformed
// response — degrades to Unresolved. Errors are logged with their cause
// but never propagated: an unreachable directory must read as a denial,
// not bypass the gate.
type Resolver struct {
	dir directory.Lookup
	log *slog.Logger
}

func NewResolver(dir directory.Lookup) *Resolver {
	return &Resolver{dir: dir, log: slog.Default()}
}

// Resolve looks up name in the directory. Side-effect free and safe to
// retry; no caching, every call re-resolves.
func (r *Resolver) Resolve(ctx context.Context, name string) Resolution {
	if name == "" {
		return Unresolved
	}

	matches, err := r.dir.List(ctx, name)
	if err != nil {
		r.log.Error("identity lookup failed", "name", name, "err", err)
		return Unresolved
	}
	if len(matches) == 0 {
		r.log.Info("identity not in directory", "name", name)
		return Unresolved
	}

	ident, err := r.dir.GetByID(ctx, matches[0].ID)
	if err != nil {
		r.log.Error("identity hydration failed", "name", name, "id", matches[0].ID, "err", err)
		return Unresolved
	}
	return Resolution{Identity: ident, Resolved: true}
}

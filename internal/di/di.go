package di

import (
	"time"

	"github.com/gatekit/gatekit/internal/access"
	"github.com/gatekit/gatekit/internal/directory"
)

// ProvideChecker wires the access checker a gated service uses. The
// default is the directory-backed guard pointed at the users service;
// "fga" swaps in an OpenFGA store and "static" always allows (local
// development only).
func ProvideChecker(backend, directoryURL string, timeout time.Duration, fga access.OpenFGAConfig) access.Checker {
	switch backend {
	case "fga":
		c, err := access.NewOpenFGA(fga)
		if err != nil {
			panic(err)
		}
		return c
	case "static":
		return &access.Static{AlwaysAllow: true}
	default:
		client := directory.NewClient(directoryURL, timeout)
		return access.NewGuard(access.NewResolver(client))
	}
}

// Package access renders allow/deny decisions for inbound operations. The
// decision engine itself is pure: resolving a caller name against the
// directory happens in Resolver, and both are orchestrated per request by
// the identity middleware.
package access

import (
	"net/http"

	"github.com/gatekit/gatekit/internal/directory"
)

// Operation is the category of action a request performs, derived from
// the HTTP method.
type Operation string

const (
	OpRead    Operation = "read"
	OpCreate  Operation = "create"
	OpUpdate  Operation = "update"
	OpDelete  Operation = "delete"
	OpUnknown Operation = "unknown"
)

// OperationFromMethod maps an HTTP method onto an Operation. Methods
// outside the CRUD set map to OpUnknown, which no permission level
// satisfies.
func OperationFromMethod(method string) Operation {
	switch method {
	case http.MethodGet:
		return OpRead
	case http.MethodPost:
		return OpCreate
	case http.MethodPut:
		return OpUpdate
	case http.MethodDelete:
		return OpDelete
	default:
		return OpUnknown
	}
}

// RequiredLevel returns the minimum directory level that satisfies op.
// ok is false for operations no level satisfies.
func RequiredLevel(op Operation) (lvl directory.Level, ok bool) {
	switch op {
	case OpRead:
		return directory.ReadOnly, true
	case OpCreate, OpUpdate, OpDelete:
		return directory.FullAccess, true
	default:
		return 0, false
	}
}

// Resolution is the outcome of a caller-name lookup. When Resolved is
// false the Identity field is meaningless.
type Resolution struct {
	Identity directory.Identity
	Resolved bool
}

// Unresolved is the zero Resolution, returned for unknown callers and for
// every lookup failure.
var Unresolved = Resolution{}

// Decision is an allow/deny outcome. Reason is set only on denial and is
// for logs; callers see a fixed message regardless of cause.
type Decision struct {
	Allowed bool
	Reason  string
}

// Decide compares a resolution against the level op requires. Pure and
// total over the resolution × operation space.
func Decide(res Resolution, op Operation) Decision {
	if !res.Resolved {
		return Decision{Reason: "identity unresolved"}
	}
	required, ok := RequiredLevel(op)
	if !ok {
		return Decision{Reason: "operation " + string(op) + " not recognized"}
	}
	if res.Identity.Level < required {
		return Decision{Reason: "level " + res.Identity.Level.String() + " below required " + required.String()}
	}
	return Decision{Allowed: true}
}

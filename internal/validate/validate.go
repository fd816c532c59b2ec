// Package validate is the outcome type shared by the entity validation
// engines. Engines only classify; the service layer mutates after a
// valid result.
package validate

// Result classifies a proposed mutation. Reason is a specific, actionable
// message safe to show the caller (unlike authorization denials, a
// validation failure describes a fixable client mistake).
type Result struct {
	OK       bool
	NotFound bool // target entity absent; maps to 404 rather than 400
	Reason   string
}

func Valid() Result {
	return Result{OK: true}
}

func Invalid(reason string) Result {
	return Result{Reason: reason}
}

func NotFound(reason string) Result {
	return Result{NotFound: true, Reason: reason}
}

package access

import (
	"net/http"
	"testing"

	"github.com/gatekit/gatekit/internal/directory"
	"github.com/google/uuid"
)

func resolved(level directory.Level) Resolution {
	return Resolution{
		Identity: directory.Identity{ID: uuid.New(), Name: "tester", Level: level},
		Resolved: true,
	}
}

func TestDecide_TruthTable(t *testing.T) {
	ops := []Operation{OpRead, OpCreate, OpUpdate, OpDelete}
	cases := []struct {
		level directory.Level
		want  map[Operation]bool
	}{
		{directory.NoAccess, map[Operation]bool{OpRead: false, OpCreate: false, OpUpdate: false, OpDelete: false}},
		{directory.ReadOnly, map[Operation]bool{OpRead: true, OpCreate: false, OpUpdate: false, OpDelete: false}},
		{directory.FullAccess, map[Operation]bool{OpRead: true, OpCreate: true, OpUpdate: true, OpDelete: true}},
	}

	for _, tc := range cases {
		for _, op := range ops {
			got := Decide(resolved(tc.level), op)
			if got.Allowed != tc.want[op] {
				t.Errorf("Decide(%s, %s).Allowed = %v, want %v", tc.level, op, got.Allowed, tc.want[op])
			}
			if !got.Allowed && got.Reason == "" {
				t.Errorf("Decide(%s, %s) denied without a reason", tc.level, op)
			}
			if got.Allowed && got.Reason != "" {
				t.Errorf("Decide(%s, %s) allowed with reason %q", tc.level, op, got.Reason)
			}
		}
	}
}

func TestDecide_UnresolvedAlwaysDenied(t *testing.T) {
	for _, op := range []Operation{OpRead, OpCreate, OpUpdate, OpDelete, OpUnknown} {
		got := Decide(Unresolved, op)
		if got.Allowed {
			t.Errorf("Decide(unresolved, %s) allowed", op)
		}
	}
}

func TestDecide_UnknownOperationDeniedEvenForFullAccess(t *testing.T) {
	got := Decide(resolved(directory.FullAccess), OpUnknown)
	if got.Allowed {
		t.Fatal("unknown operation allowed for full access identity")
	}
}

func TestOperationFromMethod(t *testing.T) {
	cases := map[string]Operation{
		http.MethodGet:    OpRead,
		http.MethodPost:   OpCreate,
		http.MethodPut:    OpUpdate,
		http.MethodDelete: OpDelete,
		http.MethodPatch:  OpUnknown,
		"BREW":            OpUnknown,
	}
	for method, want := range cases {
		if got := OperationFromMethod(method); got != want {
			t.Errorf("OperationFromMethod(%s) = %s, want %s", method, got, want)
		}
	}
}

package access

import (
	"context"
	"fmt"

	fga "github.com/openfga/go-sdk/client"
)

// OpenFGA is a Checker backed by an OpenFGA store, for deployments that
// have outgrown the flat directory and model permissions as relations.
// The caller name becomes the user, the operation becomes the relation,
// and the protected service is the object.
type OpenFGA struct {
	c      *fga.OpenFgaClient
	object string
}

type OpenFGAConfig struct {
	APIURL  string
	StoreID string
	ModelID string // optional but recommended in prod
	Object  string // e.g. "service:blog"
}

func NewOpenFGA(cfg OpenFGAConfig) (*OpenFGA, error) {
	conf := &fga.ClientConfiguration{
		ApiUrl:  cfg.APIURL,
		StoreId: cfg.StoreID,
	}
	if cfg.ModelID != "" {
		conf.AuthorizationModelId = cfg.ModelID
	}

	client, err := fga.NewSdkClient(conf)
	if err != nil {
		return nil, fmt.Errorf("openfga_client_init: %w", err)
	}
	return &OpenFGA{c: client, object: cfg.Object}, nil
}

func (o *OpenFGA) Check(ctx context.Context, caller string, op Operation) (Decision, error) {
	if caller == "" || op == OpUnknown {
		return Decision{Reason: "identity unresolved"}, nil
	}

	checkReq := fga.ClientCheckRequest{
		User:     "user:" + caller,
		Relation: string(op),
		Object:   o.object,
	}
	resp, err := o.c.Check(ctx).Body(checkReq).Execute()
	if err != nil {
		return Decision{}, fmt.Errorf("fga_check_error: %w", err)
	}

	if resp.Allowed != nil && *resp.Allowed {
		return Decision{Allowed: true}, nil
	}
	return Decision{Reason: "policy_denied"}, nil
}

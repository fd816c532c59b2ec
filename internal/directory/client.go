package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Client talks to a remote directory service over its users API. It
// implements Lookup; callers must treat any returned error as "could not
// resolve", never as "identity does not exist" (that case is an empty
// List result).
type Client struct {
	base string
	hc   *http.Client
}

// NewClient builds a client for the directory at base, e.g.
// "http://localhost:8086". The timeout bounds each lookup round trip.
func NewClient(base string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		base: strings.TrimRight(base, "/"),
		hc:   &http.Client{Timeout: timeout},
	}
}

type listedUser struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

type hydratedUser struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Level Level  `json:"permissionLevel"`
}

// List queries GET /api/users?name=<name>. Records are partial: the list
// endpoint does not expose permission levels.
func (c *Client) List(ctx context.Context, name string) ([]Identity, error) {
	u := c.base + "/api/users"
	if name != "" {
		u += "?name=" + url.QueryEscape(name)
	}
	var listed []listedUser
	if err := c.getJSON(ctx, u, &listed); err != nil {
		return nil, err
	}
	out := make([]Identity, len(listed))
	for i, lu := range listed {
		out[i] = Identity{ID: lu.ID, Name: lu.Name, Email: lu.Email}
	}
	return out, nil
}

// GetByID queries GET /api/users/{id} and returns the full record,
// permission level included.
func (c *Client) GetByID(ctx context.Context, id uuid.UUID) (Identity, error) {
	var hu hydratedUser
	if err := c.getJSON(ctx, c.base+"/api/users/"+id.String(), &hu); err != nil {
		return Identity{}, err
	}
	return Identity{ID: id, Name: hu.Name, Email: hu.Email, Level: hu.Level}, nil
}

func (c *Client) getJSON(ctx context.Context, u string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("directory request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("directory request: unexpected status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("directory response: %w", err)
	}
	return nil
}

package implementation

import (
	"context"
	"encoding/json"

	"team-notes-be/pkg/blobstore"
)

// Storage keys, one per collection. The names follow the stored layout
// the data ships with, so an existing store keeps working.
const (
	tenantsKey     = "saas_tenants"
	membershipsKey = "saas_memberships"
	notesKey       = "saas_notes"
	usersKey       = "saas_users"
)

// collection wraps one blob store key holding a serialized array of
// records. A decode failure of the stored value propagates untouched;
// malformed persisted data is not defended against.
type collection struct {
	store blobstore.Store
	key   string
}

func (c collection) ensureInit(ctx context.Context) error {
	_, found, err := c.store.Get(ctx, c.key)
	if err != nil {
		return err
	}
	if found {
		return nil
	}
	return c.store.Set(ctx, c.key, []byte("[]"))
}

func (c collection) read(ctx context.Context, out interface{}) error {
	raw, found, err := c.store.Get(ctx, c.key)
	if err != nil {
		return err
	}
	if !found {
		return nil
	}
	return json.Unmarshal(raw, out)
}

func (c collection) write(ctx context.Context, records interface{}) error {
	raw, err := json.Marshal(records)
	if err != nil {
		return err
	}
	return c.store.Set(ctx, c.key, raw)
}

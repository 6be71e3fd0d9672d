// Package stores persists per-device state (profile, per-template
// defaults) in the key-value database. Records hydrate on access and
// flush only on explicit mutation.
package stores

import (
	"context"

	"github.com/zeptools/billgen/db/kvdb"
	"github.com/zeptools/billgen/formstate"
)

const profileKeyPrefix = "billgen_profile:"

type ProfileStore struct {
	KV kvdb.Client
}

func profileKey(device string) string {
	return profileKeyPrefix + device
}

// Get hydrates the device's profile. A device with no stored profile
// gets the zero profile, not an error.
func (s *ProfileStore) Get(ctx context.Context, device string) (formstate.Profile, error) {
	fields, err := s.KV.GetAllFields(ctx, profileKey(device))
	if err != nil {
		return formstate.Profile{}, err
	}
	return formstate.ProfileFromFields(fields), nil
}

func (s *ProfileStore) Put(ctx context.Context, device string, p formstate.Profile) error {
	return s.KV.SetFields(ctx, profileKey(device), p.Fields())
}

// Reset clears every profile field for the device.
func (s *ProfileStore) Reset(ctx context.Context, device string) error {
	_, err := s.KV.Delete(ctx, profileKey(device))
	return err
}

package stores

import (
	"context"

	"github.com/zeptools/billgen/db/kvdb"
	"github.com/zeptools/billgen/formstate"
)

const defaultsKeyPrefix = "billgen_defaults:"

// DefaultsStore keeps the per-(device, template) saved field values
// that seed future form initializations.
type DefaultsStore struct {
	KV kvdb.Client
}

func defaultsKey(device string, templateID string) string {
	return defaultsKeyPrefix + device + ":" + templateID
}

func (s *DefaultsStore) Get(ctx context.Context, device string, templateID string) (formstate.Values, error) {
	fields, err := s.KV.GetAllFields(ctx, defaultsKey(device, templateID))
	if err != nil {
		return nil, err
	}
	values := make(formstate.Values, len(fields))
	for k, v := range fields {
		values[k] = v
	}
	return values, nil
}

// Save merges the snapshot into the stored defaults. Hash semantics
// keep fields absent from values untouched, matching MergeDefaults.
func (s *DefaultsStore) Save(ctx context.Context, device string, templateID string, values formstate.Values) error {
	if len(values) == 0 {
		return nil
	}
	fields := make(map[string]any, len(values))
	for k, v := range values {
		fields[k] = v
	}
	return s.KV.SetFields(ctx, defaultsKey(device, templateID), fields)
}

func (s *DefaultsStore) Clear(ctx context.Context, device string, templateID string) error {
	_, err := s.KV.Delete(ctx, defaultsKey(device, templateID))
	return err
}

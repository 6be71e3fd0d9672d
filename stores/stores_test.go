package stores

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/zeptools/billgen/db/kvdb"
	"github.com/zeptools/billgen/formstate"
)

// fakeKV - in-memory kvdb.Client, hashes and plain keys in maps.
type fakeKV struct {
	hashes map[string]map[string]string
	values map[string]string
}

var _ kvdb.Client = (*fakeKV)(nil)

func newFakeKV() *fakeKV {
	return &fakeKV{
		hashes: map[string]map[string]string{},
		values: map[string]string{},
	}
}

func (f *fakeKV) Init() error         { return nil }
func (f *fakeKV) Close() error        { return nil }
func (f *fakeKV) GetHandle() any      { return nil }
func (f *fakeKV) GetConf() *kvdb.Conf { return nil }

func (f *fakeKV) Exists(_ context.Context, key string) (bool, error) {
	_, inHash := f.hashes[key]
	_, inVal := f.values[key]
	return inHash || inVal, nil
}

func (f *fakeKV) Delete(_ context.Context, keys ...string) (int64, error) {
	var n int64
	for _, key := range keys {
		if _, ok := f.hashes[key]; ok {
			delete(f.hashes, key)
			n++
		}
		if _, ok := f.values[key]; ok {
			delete(f.values, key)
			n++
		}
	}
	return n, nil
}

func (f *fakeKV) Expire(_ context.Context, key string, _ time.Duration) (bool, error) {
	ok, _ := f.Exists(context.Background(), key)
	return ok, nil
}

func (f *fakeKV) Set(_ context.Context, key string, value any, _ time.Duration) error {
	f.values[key] = fmt.Sprint(value)
	return nil
}

func (f *fakeKV) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := f.values[key]
	return v, ok, nil
}

func (f *fakeKV) SetField(_ context.Context, key string, field string, value any) error {
	if f.hashes[key] == nil {
		f.hashes[key] = map[string]string{}
	}
	f.hashes[key][field] = fmt.Sprint(value)
	return nil
}

func (f *fakeKV) GetField(_ context.Context, key string, field string) (string, bool, error) {
	v, ok := f.hashes[key][field]
	return v, ok, nil
}

func (f *fakeKV) SetFields(_ context.Context, key string, fields map[string]any) error {
	if f.hashes[key] == nil {
		f.hashes[key] = map[string]string{}
	}
	for k, v := range fields {
		f.hashes[key][k] = fmt.Sprint(v)
	}
	return nil
}

func (f *fakeKV) GetFields(_ context.Context, key string, fields ...string) (map[string]string, error) {
	out := map[string]string{}
	for _, field := range fields {
		if v, ok := f.hashes[key][field]; ok {
			out[field] = v
		}
	}
	return out, nil
}

func (f *fakeKV) RemoveFields(_ context.Context, key string, fields ...string) (int64, error) {
	var n int64
	for _, field := range fields {
		if _, ok := f.hashes[key][field]; ok {
			delete(f.hashes[key], field)
			n++
		}
	}
	return n, nil
}

func (f *fakeKV) GetAllFields(_ context.Context, key string) (map[string]string, error) {
	out := map[string]string{}
	for k, v := range f.hashes[key] {
		out[k] = v
	}
	return out, nil
}

func TestProfileRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := &ProfileStore{KV: newFakeKV()}

	p := formstate.Profile{
		FullName:      "Asha Rao",
		Address:       "12 MG Road",
		Phone:         "+911234567890",
		Email:         "asha@example.com",
		DriverName:    "Kumar",
		VehicleNumber: "KA 01 AB 1234",
	}
	if err := s.Put(ctx, "device-1", p); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got, err := s.Get(ctx, "device-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != p {
		t.Fatalf("round trip mismatch:\ngot  %+v\nwant %+v", got, p)
	}
}

func TestProfileMissingDevice(t *testing.T) {
	s := &ProfileStore{KV: newFakeKV()}
	got, err := s.Get(context.Background(), "unknown")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != (formstate.Profile{}) {
		t.Fatalf("missing device should hydrate zero profile, got %+v", got)
	}
	if got.Complete() {
		t.Fatal("zero profile must not be complete")
	}
}

func TestProfileReset(t *testing.T) {
	ctx := context.Background()
	s := &ProfileStore{KV: newFakeKV()}
	if err := s.Put(ctx, "d", formstate.Profile{FullName: "X", Address: "Y"}); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := s.Reset(ctx, "d"); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	got, err := s.Get(ctx, "d")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != (formstate.Profile{}) {
		t.Fatalf("profile after reset = %+v, want zero", got)
	}
}

func TestDefaultsMergeOnSave(t *testing.T) {
	ctx := context.Background()
	s := &DefaultsStore{KV: newFakeKV()}

	first := formstate.Values{"venueName": "Stamford Bridge", "slotTime": "8:00 PM - 9:00 PM"}
	if err := s.Save(ctx, "d", "playo", first); err != nil {
		t.Fatalf("Save: %v", err)
	}
	second := formstate.Values{"slotTime": "7:00 PM - 8:00 PM"}
	if err := s.Save(ctx, "d", "playo", second); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := s.Get(ctx, "d", "playo")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got["venueName"] != "Stamford Bridge" {
		t.Fatalf("unmentioned key lost on save: %v", got)
	}
	if got["slotTime"] != "7:00 PM - 8:00 PM" {
		t.Fatalf("mentioned key not updated: %v", got)
	}
}

func TestDefaultsScopedPerTemplate(t *testing.T) {
	ctx := context.Background()
	s := &DefaultsStore{KV: newFakeKV()}
	if err := s.Save(ctx, "d", "playo", formstate.Values{"venueName": "A"}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := s.Get(ctx, "d", "petrol")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("defaults leaked across templates: %v", got)
	}
}

func TestDefaultsClear(t *testing.T) {
	ctx := context.Background()
	s := &DefaultsStore{KV: newFakeKV()}
	if err := s.Save(ctx, "d", "playo", formstate.Values{"venueName": "A"}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := s.Clear(ctx, "d", "playo"); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	got, err := s.Get(ctx, "d", "playo")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("defaults after clear = %v, want empty", got)
	}
}

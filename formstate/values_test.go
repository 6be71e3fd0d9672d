package formstate

import (
	"testing"
	"time"

	"github.com/zeptools/billgen/genvals"
	"github.com/zeptools/billgen/templates"
)

var testPresets = genvals.PresetsAt(time.Date(2026, time.January, 15, 9, 0, 0, 0, time.UTC))

// autoGenerated reports whether a field's value comes from a generator, so
// determinism checks can skip it.
func autoGenerated(tpl *templates.Template, id string) bool {
	f, ok := tpl.Field(id)
	return ok && f.Generate != templates.GenNone
}

func TestInitializePriorityOrder(t *testing.T) {
	tpl, ok := templates.Get("driver")
	if !ok {
		t.Fatal("driver template missing")
	}
	profile := Profile{FullName: "Asha Rao", DriverName: "Sabarish A", VehicleNumber: "KA01AB1234"}
	saved := Values{"driverName": "Kept Driver"}

	values := Initialize(tpl, profile, saved, testPresets)

	// saved defaults beat the profile binding
	if values["driverName"] != "Kept Driver" {
		t.Fatalf("driverName = %q, want saved default", values["driverName"])
	}
	// profile binding beats the literal default
	if values["employeeName"] != "Asha Rao" {
		t.Fatalf("employeeName = %q, want profile value", values["employeeName"])
	}
	if values["vehicleNumber"] != "KA01AB1234" {
		t.Fatalf("vehicleNumber = %q, want profile value", values["vehicleNumber"])
	}
	// literal defaults
	if values["salaryAmount"] != "25000" {
		t.Fatalf("salaryAmount = %q", values["salaryAmount"])
	}
	if values["receiptType"] != templates.DriverReceiptSalary {
		t.Fatalf("receiptType = %q", values["receiptType"])
	}
	// toggle default
	if values["showSignature"] != "true" {
		t.Fatalf("showSignature = %q", values["showSignature"])
	}
	// date and period presets
	if values["receiptDate"] != "15/01/2026" {
		t.Fatalf("receiptDate = %q", values["receiptDate"])
	}
	if values["month"] != "December" {
		t.Fatalf("month = %q, want last-month label", values["month"])
	}
	// generated fields are non-empty
	if values["transactionId"] == "" || values["utr"] == "" {
		t.Fatal("generated fields must not be empty")
	}
}

func TestInitializeDeterminism(t *testing.T) {
	for _, tpl := range templates.All() {
		profile := Profile{FullName: "Asha Rao"}
		saved := Values{}
		a := Initialize(tpl, profile, saved, testPresets)
		b := Initialize(tpl, profile, saved, testPresets)
		for id, want := range a {
			if autoGenerated(tpl, id) {
				continue
			}
			if b[id] != want {
				t.Fatalf("template %q field %q: %q vs %q", tpl.ID, id, want, b[id])
			}
		}
	}
}

func TestFieldVisible(t *testing.T) {
	tpl, _ := templates.Get("driver")
	f, ok := tpl.Field("recipientPhone")
	if !ok {
		t.Fatal("recipientPhone missing")
	}
	values := Values{"receiptType": templates.DriverReceiptPhonePe}
	if !FieldVisible(f, values) {
		t.Fatal("field should be visible when controlling value matches")
	}
	values["receiptType"] = templates.DriverReceiptSalary
	if FieldVisible(f, values) {
		t.Fatal("field should be hidden for any other value")
	}
	values["receiptType"] = ""
	if FieldVisible(f, values) {
		t.Fatal("field should be hidden for empty controlling value")
	}
	always, _ := tpl.Field("driverName")
	if !FieldVisible(always, Values{}) {
		t.Fatal("field without condition is always visible")
	}
}

func TestHiddenFieldRetainsValue(t *testing.T) {
	s := NewSession("driver")
	tpl, _ := templates.Get("driver")
	if err := s.Initialize(tpl, Profile{}, Values{}, testPresets); err != nil {
		t.Fatal(err)
	}
	s.SetField("recipientPhone", "+911234567890")
	s.SetField("receiptType", templates.DriverReceiptSalary) // hides it
	phone, _ := tpl.Field("recipientPhone")
	if FieldVisible(phone, s.Values()) {
		t.Fatal("expected hidden")
	}
	s.SetField("receiptType", templates.DriverReceiptPhonePe) // shows it again
	if s.Values()["recipientPhone"] != "+911234567890" {
		t.Fatalf("hidden field lost its value: %q", s.Values()["recipientPhone"])
	}
}

func TestSessionStateMachine(t *testing.T) {
	s := NewSession("petrol")
	tpl, _ := templates.Get("petrol")
	if s.State != StateUninitialized {
		t.Fatalf("state = %d", s.State)
	}
	if err := s.Initialize(tpl, Profile{}, Values{}, testPresets); err != nil {
		t.Fatal(err)
	}
	if s.State != StateInitialized {
		t.Fatalf("state = %d", s.State)
	}
	if err := s.Initialize(tpl, Profile{}, Values{}, testPresets); err == nil {
		t.Fatal("re-initialization must fail, not discard edits")
	}
	s.SetField("location", "INDIRANAGAR")
	if s.State != StateEditing {
		t.Fatalf("state = %d", s.State)
	}
	_ = s.Snapshot()
	if s.State != StateExported {
		t.Fatalf("state = %d", s.State)
	}
}

// The export handler rebuilds a session from the submitted values and
// persists its snapshot; the snapshot must carry exactly those values
// and be detached from the live map.
func TestSessionSnapshotFromSubmittedValues(t *testing.T) {
	submitted := Values{"quantity": "42", "ratePerLitre": "129.39"}
	s := NewSession("petrol")
	for id, value := range submitted {
		s.SetField(id, value)
	}
	snap := s.Snapshot()
	if len(snap) != len(submitted) {
		t.Fatalf("snapshot = %v, want %v", snap, submitted)
	}
	for id, want := range submitted {
		if snap[id] != want {
			t.Fatalf("field %q: %q, want %q", id, snap[id], want)
		}
	}
	if s.State != StateExported {
		t.Fatalf("state = %d, want exported", s.State)
	}
	snap["quantity"] = "99"
	if s.Values()["quantity"] != "42" {
		t.Fatal("snapshot shares storage with the live values")
	}
}

func TestDefaultsRoundTrip(t *testing.T) {
	tpl, _ := templates.Get("playo")
	first := Initialize(tpl, Profile{}, Values{}, testPresets)
	first["venueName"] = "Koramangala Arena"
	first["courtPrice"] = "1800"

	saved := MergeDefaults(Values{}, first)
	again := Initialize(tpl, Profile{}, saved, testPresets)

	for id, want := range first {
		if autoGenerated(tpl, id) {
			continue
		}
		if again[id] != want {
			t.Fatalf("field %q: %q, want %q", id, again[id], want)
		}
	}
}

func TestMergeDefaultsKeepsAbsentKeys(t *testing.T) {
	saved := Values{"a": "1", "b": "2"}
	merged := MergeDefaults(saved, Values{"b": "3"})
	if merged["a"] != "1" || merged["b"] != "3" {
		t.Fatalf("merged = %v", merged)
	}
	// inputs untouched
	if saved["b"] != "2" {
		t.Fatal("MergeDefaults mutated its input")
	}
}

func TestProfileComplete(t *testing.T) {
	if (Profile{FullName: "x"}).Complete() {
		t.Fatal("address required")
	}
	if !(Profile{FullName: "x", Address: "y"}).Complete() {
		t.Fatal("full name + address is complete")
	}
}

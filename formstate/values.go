// Package formstate resolves, edits and snapshots the live field values of
// an open template. Toggle values are stored as "true"/"false" strings so a
// Values map stays a flat string-to-string mapping end to end.
package formstate

import (
	"maps"

	"github.com/zeptools/billgen/genvals"
	"github.com/zeptools/billgen/templates"
)

// Values - live per-(template, session) field values.
type Values map[string]string

func (v Values) Clone() Values {
	return maps.Clone(v)
}

// Bool reads a toggle field.
func (v Values) Bool(id string) bool {
	return v[id] == "true"
}

// Initialize resolves the initial value for every field descriptor.
// Priority order per field:
// saved defaults > profile binding > auto-generated > toggle/select default
// > date/period preset > empty string.
func Initialize(tpl *templates.Template, profile Profile, saved Values, presets genvals.DatePresets) Values {
	values := make(Values, len(tpl.Fields))
	for _, f := range tpl.Fields {
		values[f.ID] = resolveField(f, profile, saved, presets)
	}
	return values
}

func resolveField(f templates.Field, profile Profile, saved Values, presets genvals.DatePresets) string {
	if savedVal, ok := saved[f.ID]; ok && savedVal != "" {
		return savedVal
	}
	if f.ProfileKey != "" {
		if profVal := profile.Value(f.ProfileKey); profVal != "" {
			return profVal
		}
	}
	if generated, ok := genvals.Generate(f.Generate); ok {
		return generated
	}
	if f.Type == templates.FieldToggle {
		if f.Default != "" {
			return f.Default
		}
		return "true"
	}
	if f.Default != "" {
		return f.Default
	}
	switch f.Type {
	case templates.FieldDate:
		return presets.Today
	case templates.FieldPeriod:
		return presets.LastMonth.Label
	default:
		return ""
	}
}

// FieldVisible evaluates a descriptor's visibility against the current
// values. Evaluated per render pass; hidden fields keep their stored value.
func FieldVisible(f templates.Field, values Values) bool {
	if f.ShowWhen.Always() {
		return true
	}
	return values[f.ShowWhen.DependsOn] == f.ShowWhen.Equals
}

// VisibleFields filters the template's fields in display order.
func VisibleFields(tpl *templates.Template, values Values) []templates.Field {
	visible := make([]templates.Field, 0, len(tpl.Fields))
	for _, f := range tpl.Fields {
		if FieldVisible(f, values) {
			visible = append(visible, f)
		}
	}
	return visible
}

// MergeDefaults merges the session's current values into the persisted
// per-template defaults. Keys absent from current stay untouched.
func MergeDefaults(saved Values, current Values) Values {
	merged := make(Values, len(saved)+len(current))
	maps.Copy(merged, saved)
	maps.Copy(merged, current)
	return merged
}

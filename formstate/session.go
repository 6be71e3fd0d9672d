package formstate

import (
	"fmt"

	"github.com/zeptools/billgen/genvals"
	"github.com/zeptools/billgen/templates"
)

// State of one open form.
type State int

const (
	StateUninitialized State = iota
	StateInitialized
	StateEditing
	StateExported
)

// Session - form state machine for one active template.
// Uninitialized -> Initialized -> Editing -> Exported.
// Re-initialization only happens by opening a different template; it must
// not silently discard in-session edits of the same one.
type Session struct {
	TemplateID string
	State      State
	values     Values
}

func NewSession(templateID string) *Session {
	return &Session{TemplateID: templateID, State: StateUninitialized}
}

// Initialize resolves the initial values. Calling it twice on the same
// session is a programming error surfaced as an error, not a silent reset.
func (s *Session) Initialize(tpl *templates.Template, profile Profile, saved Values, presets genvals.DatePresets) error {
	if s.State != StateUninitialized {
		return fmt.Errorf("form session for %q already initialized", s.TemplateID)
	}
	if tpl.ID != s.TemplateID {
		return fmt.Errorf("form session is for %q, got template %q", s.TemplateID, tpl.ID)
	}
	s.values = Initialize(tpl, profile, saved, presets)
	s.State = StateInitialized
	return nil
}

// SetField - total function; widgets constrain input upstream, nothing is
// validated here. Hidden fields keep their last value and reappear
// unchanged when shown again.
func (s *Session) SetField(id string, value string) {
	if s.values == nil {
		s.values = Values{}
	}
	s.values[id] = value
	if s.State == StateInitialized {
		s.State = StateEditing
	}
}

// Values returns the live values map (not a copy).
func (s *Session) Values() Values {
	return s.values
}

// Snapshot marks the session exported and returns the values to merge
// into the persisted per-template defaults.
func (s *Session) Snapshot() Values {
	s.State = StateExported
	return s.values.Clone()
}

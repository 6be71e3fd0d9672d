package web

import (
	"bytes"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/zeptools/billgen/access"
	"github.com/zeptools/billgen/export"
	"github.com/zeptools/billgen/formstate"
	"github.com/zeptools/billgen/genvals"
	"github.com/zeptools/billgen/locks/keyonlylocks"
	"github.com/zeptools/billgen/render"
	"github.com/zeptools/billgen/requests"
	"github.com/zeptools/billgen/responses"
	"github.com/zeptools/billgen/security"
	"github.com/zeptools/billgen/stores"
	"github.com/zeptools/billgen/templates"
	"github.com/zeptools/billgen/tpl"
	"github.com/zeptools/billgen/web/session"
)

const previewTemplateKey = "preview"

// Handlers carries the wired application state for the HTTP surface.
type Handlers struct {
	SessionManager *session.Manager
	Gate           *access.Gate
	Audit          *access.AuditLog
	Profiles       *stores.ProfileStore
	Defaults       *stores.DefaultsStore
	Exporter       *export.Exporter
	HTMLTemplates  *tpl.HTMLTemplateStore
	ActionLocks    *sync.Map
}

type checkAccessRequest struct {
	Email string `json:"email"`
}

type checkAccessResponse struct {
	Valid bool   `json:"valid"`
	Token string `json:"token,omitzero"`
}

func (h *Handlers) CheckAccess(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var body checkAccessRequest
	if err := requests.DecodeJSONBody(r, &body); err != nil {
		responses.WriteSimpleErrorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !access.ValidEmail(body.Email) {
		responses.WriteSimpleErrorJSON(w, http.StatusBadRequest, "missing or malformed email")
		return
	}
	email := access.NormalizeEmail(body.Email)

	// the caller's previous session, if any, feeds the grace fallback
	prevSessionID, cached, _ := h.SessionManager.SessionFromCookie(ctx, r)

	switch h.Gate.Check(email, cached) {

	case access.Allowed:
		sessionID, err := session.GenerateSessionID()
		if err != nil {
			responses.WriteSimpleErrorJSON(w, http.StatusInternalServerError, "internal server error")
			return
		}
		sess := access.Session{Email: email, ValidatedAt: time.Now().UTC()}
		if err = h.SessionManager.SaveSession(ctx, sessionID, sess); err != nil {
			responses.WriteSimpleErrorJSON(w, http.StatusInternalServerError, "internal server error")
			return
		}
		if err = h.SessionManager.SetSessionCookie(w, sessionID); err != nil {
			responses.WriteSimpleErrorJSON(w, http.StatusInternalServerError, "internal server error")
			return
		}
		token, err := security.GenerateHS256AccessToken(
			h.SessionManager.AppName, email,
			[]byte(h.SessionManager.Conf.SigningKey), access.GracePeriod,
		)
		if err != nil {
			responses.WriteSimpleErrorJSON(w, http.StatusInternalServerError, "internal server error")
			return
		}
		responses.EncodeWriteJSON(w, http.StatusOK, checkAccessResponse{Valid: true, Token: token})

	case access.Denied:
		// terminal: drop whatever session the caller had
		if prevSessionID != "" {
			if err := h.SessionManager.DeleteSession(ctx, prevSessionID); err != nil {
				log.Printf("[WARN][WEB] deleting denied session: %v", err)
			}
		}
		h.SessionManager.RemoveSessionCookie(w)
		responses.EncodeWriteJSON(w, http.StatusOK, checkAccessResponse{Valid: false})

	default: // access.Unavailable
		responses.WriteSimpleErrorJSON(w, http.StatusInternalServerError, "access check unavailable")
	}
}

type logDownloadRequest struct {
	Email    string `json:"email"`
	Template string `json:"template"`
	Format   string `json:"format"`
}

func (h *Handlers) LogDownload(w http.ResponseWriter, r *http.Request) {
	var body logDownloadRequest
	if err := requests.DecodeJSONBody(r, &body); err != nil {
		responses.WriteSimpleErrorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.Email == "" || body.Template == "" || body.Format == "" {
		responses.WriteSimpleErrorJSON(w, http.StatusBadRequest, "email, template and format are required")
		return
	}
	h.Audit.LogDownload(r.Context(), body.Email, body.Template, body.Format, requests.GetClientIP(r))
	responses.EncodeWriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}

type requestAccessRequest struct {
	Email  string `json:"email"`
	Reason string `json:"reason,omitzero"`
}

func (h *Handlers) RequestAccess(w http.ResponseWriter, r *http.Request) {
	var body requestAccessRequest
	if err := requests.DecodeJSONBody(r, &body); err != nil {
		responses.WriteSimpleErrorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.Email == "" {
		responses.WriteSimpleErrorJSON(w, http.StatusBadRequest, "email is required")
		return
	}
	h.Audit.LogRequest(r.Context(), body.Email, body.Reason, requests.GetClientIP(r))
	responses.EncodeWriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *Handlers) TemplateList(w http.ResponseWriter, r *http.Request) {
	responses.EncodeWriteJSON(w, http.StatusOK, templates.All())
}

func (h *Handlers) TemplateGet(w http.ResponseWriter, r *http.Request) {
	tmpl, ok := templates.Get(r.PathValue("id"))
	if !ok {
		responses.WriteSimpleErrorJSON(w, http.StatusNotFound, "template not found")
		return
	}
	responses.EncodeWriteJSON(w, http.StatusOK, tmpl)
}

// TemplateForm returns the initialized form values for the caller:
// saved defaults, profile bindings and generated values already resolved.
func (h *Handlers) TemplateForm(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	templateID := r.PathValue("id")
	tmpl, ok := templates.Get(templateID)
	if !ok {
		responses.WriteSimpleErrorJSON(w, http.StatusNotFound, "template not found")
		return
	}
	sess, _ := session.SessionFromContext(ctx)
	profile, err := h.Profiles.Get(ctx, sess.Email)
	if err != nil {
		responses.WriteSimpleErrorJSON(w, http.StatusInternalServerError, "internal server error")
		return
	}
	saved, err := h.Defaults.Get(ctx, sess.Email, templateID)
	if err != nil {
		responses.WriteSimpleErrorJSON(w, http.StatusInternalServerError, "internal server error")
		return
	}
	form := formstate.NewSession(templateID)
	if err = form.Initialize(tmpl, profile, saved, genvals.Presets()); err != nil {
		responses.WriteSimpleErrorJSON(w, http.StatusInternalServerError, "internal server error")
		return
	}
	responses.EncodeWriteJSON(w, http.StatusOK, form.Values())
}

type previewRequest struct {
	Values formstate.Values `json:"values"`
}

func (h *Handlers) Preview(w http.ResponseWriter, r *http.Request) {
	var body previewRequest
	if err := requests.DecodeJSONBody(r, &body); err != nil {
		responses.WriteSimpleErrorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}
	doc := render.Preview(r.PathValue("id"), body.Values)
	t, ok := h.HTMLTemplates.Base[previewTemplateKey]
	if !ok {
		responses.WriteSimpleErrorJSON(w, http.StatusInternalServerError, "preview template missing")
		return
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, doc); err != nil {
		log.Printf("[ERROR][WEB] preview render: %v", err)
		responses.WriteSimpleErrorJSON(w, http.StatusInternalServerError, "preview render failed")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		log.Printf("[ERROR][WEB] writing preview: %v", err)
	}
}

type exportRequest struct {
	Values formstate.Values `json:"values"`
	Format string           `json:"format"`
}

// Export renders and streams the file. All-or-nothing: bytes are
// buffered fully before any header is written, so a render failure
// yields a clean JSON error instead of a truncated download.
func (h *Handlers) Export(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	templateID := r.PathValue("id")
	if _, ok := templates.Get(templateID); !ok {
		responses.WriteSimpleErrorJSON(w, http.StatusNotFound, "template not found")
		return
	}
	var body exportRequest
	if err := requests.DecodeJSONBody(r, &body); err != nil {
		responses.WriteSimpleErrorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}
	format, err := export.ParseFormat(body.Format)
	if err != nil {
		responses.WriteSimpleErrorJSON(w, http.StatusBadRequest, "unsupported format")
		return
	}
	sess, _ := session.SessionFromContext(ctx)

	// one export at a time per caller
	lockKeys := []string{"export:" + sess.Email}
	acquired, ok := keyonlylocks.AcquireLocks(h.ActionLocks, lockKeys)
	if !ok {
		responses.WriteSimpleErrorJSON(w, http.StatusConflict, "export already in progress")
		return
	}
	defer keyonlylocks.ReleaseLocks(h.ActionLocks, acquired)

	form := formstate.NewSession(templateID)
	for id, value := range body.Values {
		form.SetField(id, value)
	}

	doc := render.Preview(templateID, form.Values())
	var buf bytes.Buffer
	if err = h.Exporter.Export(doc, format, &buf); err != nil {
		log.Printf("[ERROR][WEB] export %s as %s: %v", templateID, format, err)
		responses.WriteSimpleErrorJSON(w, http.StatusInternalServerError, "export failed")
		return
	}

	// the snapshot lands in the defaults hash, whose per-field write
	// keeps absent keys untouched (formstate.MergeDefaults semantics)
	if err = h.Defaults.Save(ctx, sess.Email, templateID, form.Snapshot()); err != nil {
		log.Printf("[WARN][WEB] saving defaults for %s: %v", templateID, err)
	}
	h.Audit.LogDownload(ctx, sess.Email, templateID, format.String(), requests.GetClientIP(r))

	filename := export.Filename(templateID, format, time.Now())
	responses.WriteFileBytesWithFilename(w, filename, format.MIME(), buf.Bytes())
}

func (h *Handlers) ProfileGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess, _ := session.SessionFromContext(ctx)
	profile, err := h.Profiles.Get(ctx, sess.Email)
	if err != nil {
		responses.WriteSimpleErrorJSON(w, http.StatusInternalServerError, "internal server error")
		return
	}
	responses.EncodeWriteJSON(w, http.StatusOK, profile)
}

func (h *Handlers) ProfilePut(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess, _ := session.SessionFromContext(ctx)
	var profile formstate.Profile
	if err := requests.DecodeJSONBody(r, &profile); err != nil {
		responses.WriteSimpleErrorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.Profiles.Put(ctx, sess.Email, profile); err != nil {
		responses.WriteSimpleErrorJSON(w, http.StatusInternalServerError, "internal server error")
		return
	}
	responses.EncodeWriteJSON(w, http.StatusOK, profile)
}

func (h *Handlers) ProfileDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess, _ := session.SessionFromContext(ctx)
	if err := h.Profiles.Reset(ctx, sess.Email); err != nil {
		responses.WriteSimpleErrorJSON(w, http.StatusInternalServerError, "internal server error")
		return
	}
	responses.EncodeWriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *Handlers) DefaultsGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess, _ := session.SessionFromContext(ctx)
	saved, err := h.Defaults.Get(ctx, sess.Email, r.PathValue("id"))
	if err != nil {
		responses.WriteSimpleErrorJSON(w, http.StatusInternalServerError, "internal server error")
		return
	}
	responses.EncodeWriteJSON(w, http.StatusOK, saved)
}

func (h *Handlers) DefaultsDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess, _ := session.SessionFromContext(ctx)
	if err := h.Defaults.Clear(ctx, sess.Email, r.PathValue("id")); err != nil {
		responses.WriteSimpleErrorJSON(w, http.StatusInternalServerError, "internal server error")
		return
	}
	responses.EncodeWriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if sessionID, ok := session.SessionIDFromContext(ctx); ok {
		if err := h.SessionManager.DeleteSession(ctx, sessionID); err != nil {
			log.Printf("[WARN][WEB] deleting session on logout: %v", err)
		}
	}
	h.SessionManager.RemoveSessionCookie(w)
	responses.EncodeWriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}

package web

import (
	"net/http"

	"github.com/zeptools/billgen/routing"
	"github.com/zeptools/billgen/throttle"
)

// NewRouter assembles the API routes with their wrappers.
func NewRouter(h *Handlers, throttleStore *throttle.BucketStore[string]) *routing.BaseRouter {
	router := &routing.BaseRouter{ServeMux: http.NewServeMux()}

	corsWrapper := &CORSWrapper{}
	logWrapper := &RequestLogWrapper{}
	sessionWrapper := &SessionWrapper{Manager: h.SessionManager}
	accessThrottle := &ThrottleWrapper{Store: throttleStore, GroupID: "access"}

	router.Group("/api/", func(api *routing.RouteGroup) {
		// open endpoints
		api.HandleFunc("POST check-access", h.CheckAccess, accessThrottle)
		api.HandleFunc("POST request-access", h.RequestAccess, accessThrottle)

		// session-gated endpoints
		api.Group("", func(gated *routing.RouteGroup) {
			gated.HandleFunc("POST log-download", h.LogDownload)
			gated.HandleFunc("GET templates", h.TemplateList)
			gated.HandleFunc("GET templates/{id}", h.TemplateGet)
			gated.HandleFunc("GET templates/{id}/form", h.TemplateForm)
			gated.HandleFunc("POST templates/{id}/preview", h.Preview)
			gated.HandleFunc("POST templates/{id}/export", h.Export)
			gated.HandleFunc("GET templates/{id}/defaults", h.DefaultsGet)
			gated.HandleFunc("DELETE templates/{id}/defaults", h.DefaultsDelete)
			gated.HandleFunc("GET profile", h.ProfileGet)
			gated.HandleFunc("PUT profile", h.ProfilePut)
			gated.HandleFunc("DELETE profile", h.ProfileDelete)
			gated.HandleFunc("POST logout", h.Logout)
		}, sessionWrapper)
	}, corsWrapper, logWrapper)

	// preflight requests never match the method-specific patterns above
	router.HandleFunc("OPTIONS /api/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}, corsWrapper)

	return router
}

package handler

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"
)

type templResponse struct {
	component templ.Component
	status    int
	options   []datastar.PatchElementOption
}

func (t templResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if IsDataStar(r) {
		return datastar.NewSSE(w, r).PatchElementTempl(t.component, t.options...)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if t.status != 0 {
		w.WriteHeader(t.status)
	}
	return t.component.Render(r.Context(), w)
}

// Templ renders a component as an HTML page, or patches it into the page
// over SSE for DataStar requests.
func Templ(component templ.Component, opts ...datastar.PatchElementOption) Response {
	return templResponse{component: component, options: opts}
}

// TemplWithStatus is Templ with a non-200 status for regular requests.
func TemplWithStatus(status int, component templ.Component) Response {
	return templResponse{component: component, status: status}
}

// WithTarget selects the element a DataStar patch replaces.
func WithTarget(selector string) datastar.PatchElementOption {
	return datastar.WithSelector(selector)
}

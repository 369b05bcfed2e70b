package handler

import (
	"net/http"

	"github.com/starfederation/datastar-go/datastar"
)

type redirectResponse struct {
	url  string
	code int
}

func (rr redirectResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if IsDataStar(r) {
		return datastar.NewSSE(w, r).Redirect(rr.url)
	}
	// http.Redirect would clean the path; the target is sent as built.
	w.Header().Set("Location", rr.url)
	w.WriteHeader(rr.code)
	return nil
}

// Redirect answers with a 303 See Other, or an SSE redirect for DataStar requests.
func Redirect(url string) Response {
	return RedirectWithCode(url, http.StatusSeeOther)
}

// RedirectWithCode is Redirect with an explicit 3xx status. url is written to
// Location untouched, so it must be an absolute path or URL.
func RedirectWithCode(url string, code int) Response {
	return redirectResponse{url: url, code: code}
}

package binder

import (
	"net/http"
	"net/url"
)

// BindQuery returns a binder filling `query`-tagged fields from the URL query.
//
//	type pageQuery struct {
//	    Lang  string `query:"lang"`
//	    GCLID string `query:"gclid"`
//	    Debug bool   `query:"debug"`
//	    Tags  []string `query:"tag"` // ?tag=a&tag=b or ?tag=a,b
//	    Skip  string `query:"-"`
//	}
//
// Fields without a tag use the lower-cased field name. Missing parameters keep
// their zero value.
func BindQuery() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		return Query(r.URL.Query(), v)
	}
}

// Query binds already parsed values into v.
func Query(values url.Values, v any) error {
	return bindStruct(v, "query", values, ErrInvalidQuery)
}

// Package validator builds small declarative checks.
//
// Each rule constructor returns a Rule pairing a Check func with translation-ready
// error metadata. Apply evaluates the rules and returns ValidationErrors, which
// implements error and can be recovered with Extract:
//
//	err := validator.Apply(
//	    validator.MaxLen("gclid", gclid, 512),
//	    validator.Matches("gclid", gclid, clickIDPattern, "click id"),
//	    validator.NoControlChars("gclid", gclid),
//	)
//	if ve := validator.Extract(err); ve.Has("gclid") {
//	    // drop the parameter
//	}
package validator

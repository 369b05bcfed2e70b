// Package environment names the deployment stages and parses the APP_ENV
// value into one of them.
//
//	env := environment.Parse(os.Getenv("APP_ENV"))
//	if env.IsProduction() {
//	    // ...
//	}
package environment

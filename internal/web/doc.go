// Package web holds the localized page layer: the templ views, their message
// catalogs and the chi routes serving them.
package web

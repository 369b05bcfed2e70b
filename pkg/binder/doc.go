// Package binder maps URL query parameters onto tagged structs for handler.Wrap.
package binder

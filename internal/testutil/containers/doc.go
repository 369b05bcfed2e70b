// Package containers starts throwaway databases for integration tests.
// Every file is behind the integration build tag:
//
//	go test -tags integration ./...
package containers

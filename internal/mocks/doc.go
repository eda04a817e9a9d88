// Package mocks provides hand-rolled test doubles for the advisor's
// interface boundaries: the record store and the generative service.
package mocks

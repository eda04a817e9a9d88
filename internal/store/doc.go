// Package store defines the persistence interfaces consumed by the advisor
// pipeline and the sentinel errors those implementations return. Concrete
// implementations live under internal/platform.
package store

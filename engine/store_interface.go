package engine

import "github.com/lixenwraith/bounce-arena/core"

// AnyStore is the type-erased view World uses for entity lifecycle
type AnyStore interface {
	Remove(e core.Entity)
	Has(e core.Entity) bool
	Len() int
	Clear()
}

var (
	_ AnyStore = (*Store[struct{}])(nil)
)

package store

import (
	"github.com/Sachin1-28/frontend-potfolio-code-sub000/internal/domain"
	"github.com/Sachin1-28/frontend-potfolio-code-sub000/pkg/transport"
)

// Position is where a created record is placed in its list.
type Position int

const (
	Append Position = iota
	Prepend
)

// Reducers never modify a slice in place: every change builds a new backing
// array so snapshots handed to subscribers stay valid.

func fetchPending[T any](s ListState[T]) ListState[T] {
	s.Loading = true
	s.Error = ""
	return s
}

// fetchFulfilled replaces the list wholesale.
func fetchFulfilled[T any](s ListState[T], items []T) ListState[T] {
	s.Loading = false
	s.Items = append([]T{}, items...)
	return s
}

func fetchRejected[T any](s ListState[T], err error) ListState[T] {
	s.Loading = false
	s.Error = transport.MessageOf(err)
	if transport.IsUnauthorized(err) {
		s.Items = []T{}
	}
	return s
}

func operationPending[T any](s ListState[T], op Operation) ListState[T] {
	s.OperationLoading = true
	s.OperationType = op
	s.Error = ""
	return s
}

func operationDone[T any](s ListState[T]) ListState[T] {
	s.OperationLoading = false
	s.OperationType = OpNone
	return s
}

func operationRejected[T any](s ListState[T], err error) ListState[T] {
	s = operationDone(s)
	s.Error = transport.MessageOf(err)
	return s
}

func created[T any](s ListState[T], item T, pos Position) ListState[T] {
	s = operationDone(s)
	items := make([]T, 0, len(s.Items)+1)
	if pos == Prepend {
		items = append(items, item)
		items = append(items, s.Items...)
	} else {
		items = append(items, s.Items...)
		items = append(items, item)
	}
	s.Items = items
	return s
}

// updated replaces the record with item's key. A key that is no longer in the
// list leaves the items untouched.
func updated[T domain.Keyed](s ListState[T], item T) ListState[T] {
	s = operationDone(s)
	idx := indexOf(s.Items, item.Key())
	if idx < 0 {
		return s
	}
	items := append([]T{}, s.Items...)
	items[idx] = item
	s.Items = items
	return s
}

func removed[T domain.Keyed](s ListState[T], id string) ListState[T] {
	s = operationDone(s)
	items := make([]T, 0, len(s.Items))
	for _, it := range s.Items {
		if it.Key() != id {
			items = append(items, it)
		}
	}
	s.Items = items
	return s
}

func clearError[T any](s ListState[T]) ListState[T] {
	s.Error = ""
	return s
}

func indexOf[T domain.Keyed](items []T, id string) int {
	for i, it := range items {
		if it.Key() == id {
			return i
		}
	}
	return -1
}

// Entity reducers mirror the list ones for singletons.

func entityFetchPending[T any](s EntityState[T]) EntityState[T] {
	s.Loading = true
	s.Error = ""
	return s
}

func entityFetchFulfilled[T any](s EntityState[T], entity *T) EntityState[T] {
	s.Loading = false
	s.Entity = entity
	return s
}

func entityFetchRejected[T any](s EntityState[T], err error) EntityState[T] {
	s.Loading = false
	s.Error = transport.MessageOf(err)
	if transport.IsUnauthorized(err) {
		s.Entity = nil
	}
	return s
}

func entityOperationPending[T any](s EntityState[T], op Operation) EntityState[T] {
	s.OperationLoading = true
	s.OperationType = op
	s.Error = ""
	return s
}

func entityReplaced[T any](s EntityState[T], entity T) EntityState[T] {
	s.OperationLoading = false
	s.OperationType = OpNone
	s.Entity = &entity
	return s
}

func entityRemoved[T domain.Keyed](s EntityState[T], id string) EntityState[T] {
	s.OperationLoading = false
	s.OperationType = OpNone
	if s.Entity != nil && (*s.Entity).Key() == id {
		s.Entity = nil
	}
	return s
}

func entityOperationRejected[T any](s EntityState[T], err error) EntityState[T] {
	s.OperationLoading = false
	s.OperationType = OpNone
	s.Error = transport.MessageOf(err)
	return s
}

func entityClearError[T any](s EntityState[T]) EntityState[T] {
	s.Error = ""
	return s
}

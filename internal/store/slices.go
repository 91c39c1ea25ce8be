package store

import (
	"context"

	"github.com/Sachin1-28/frontend-potfolio-code-sub000/internal/domain"
	"github.com/Sachin1-28/frontend-potfolio-code-sub000/pkg/log"
	"github.com/Sachin1-28/frontend-potfolio-code-sub000/pkg/transport"
)

// collectionAPI is the server contract of a list resource.
type collectionAPI[T any] interface {
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, body transport.Body) (T, error)
	Update(ctx context.Context, id string, body transport.Body) (T, error)
	Delete(ctx context.Context, id string) error
}

// ListSlice runs the async operations of one list resource and records their
// outcome in the store.
type ListSlice[T domain.Keyed] struct {
	store    *Store
	name     string
	api      collectionAPI[T]
	position Position
	sel      func(*State) *ListState[T]
}

func newListSlice[T domain.Keyed](s *Store, name string, a collectionAPI[T], pos Position, sel func(*State) *ListState[T]) *ListSlice[T] {
	return &ListSlice[T]{store: s, name: name, api: a, position: pos, sel: sel}
}

// State returns the slice's current state.
func (l *ListSlice[T]) State() ListState[T] {
	st := l.store.Snapshot()
	return *l.sel(&st)
}

func (l *ListSlice[T]) action(op, phase string, err error) Action {
	return Action{Type: l.name + "/" + op + "/" + phase, Err: err}
}

func (l *ListSlice[T]) reduce(op, phase string, err error, fn func(ListState[T]) ListState[T]) {
	l.store.apply(l.action(op, phase, err), func(st *State) {
		p := l.sel(st)
		*p = fn(*p)
	})
}

// Fetch replaces the list with the server's. On failure the error is both
// recorded in the slice and returned.
func (l *ListSlice[T]) Fetch(ctx context.Context) error {
	l.reduce("fetch", "pending", nil, fetchPending[T])

	items, err := l.api.List(ctx)
	if err != nil {
		l.reduce("fetch", "rejected", err, func(s ListState[T]) ListState[T] { return fetchRejected(s, err) })
		l.store.logger.Warn("fetch failed", log.String("resource", l.name), log.Err(err))
		return err
	}
	l.reduce("fetch", "fulfilled", nil, func(s ListState[T]) ListState[T] { return fetchFulfilled(s, items) })
	return nil
}

// Create submits body and places the server's record at the slice's
// convention position.
func (l *ListSlice[T]) Create(ctx context.Context, body transport.Body) (T, error) {
	return l.mutate(ctx, OpCreate, func() (T, error) { return l.api.Create(ctx, body) },
		func(s ListState[T], item T) ListState[T] { return created(s, item, l.position) })
}

// Update replaces the record with id by the server's copy. An id that is no
// longer in the list leaves the list as it was.
func (l *ListSlice[T]) Update(ctx context.Context, id string, body transport.Body) (T, error) {
	return l.mutate(ctx, OpUpdate, func() (T, error) { return l.api.Update(ctx, id, body) },
		func(s ListState[T], item T) ListState[T] { return updated(s, item) })
}

// Delete removes the record once the server confirms.
func (l *ListSlice[T]) Delete(ctx context.Context, id string) error {
	_, err := l.mutate(ctx, OpDelete, func() (T, error) {
		var zero T
		return zero, l.api.Delete(ctx, id)
	}, func(s ListState[T], _ T) ListState[T] { return removed(s, id) })
	return err
}

// ClearError drops the recorded error.
func (l *ListSlice[T]) ClearError() {
	l.reduce("error", "cleared", nil, clearError[T])
}

// mutate raises the operation flag, calls the server and applies the result.
// The server's record, never the draft, is what lands in the list.
func (l *ListSlice[T]) mutate(ctx context.Context, op Operation, call func() (T, error), done func(ListState[T], T) ListState[T]) (T, error) {
	l.reduce(string(op), "pending", nil, func(s ListState[T]) ListState[T] { return operationPending(s, op) })

	item, err := call()
	if err != nil {
		l.reduce(string(op), "rejected", err, func(s ListState[T]) ListState[T] { return operationRejected(s, err) })
		l.store.logger.Warn("operation failed",
			log.String("resource", l.name),
			log.String("operation", string(op)),
			log.Err(err))
		var zero T
		return zero, err
	}
	l.reduce(string(op), "fulfilled", nil, func(s ListState[T]) ListState[T] { return done(s, item) })
	return item, nil
}

// contactAPI is the contact endpoint group.
type contactAPI interface {
	Submit(ctx context.Context, body interface{}) (domain.ContactResponse, error)
	ToggleRead(ctx context.Context, id string) (domain.ContactResponse, error)
}

// ContactSlice is the contact inbox. Listing needs a session; submitting does not.
type ContactSlice struct {
	*ListSlice[domain.ContactResponse]
	api contactAPI
}

// Submit sends a message as a visitor and appends the stored response.
func (c *ContactSlice) Submit(ctx context.Context, body interface{}) (domain.ContactResponse, error) {
	return c.mutate(ctx, OpSubmit, func() (domain.ContactResponse, error) { return c.api.Submit(ctx, body) },
		func(s ListState[domain.ContactResponse], item domain.ContactResponse) ListState[domain.ContactResponse] {
			return created(s, item, Append)
		})
}

// ToggleRead flips the read flag of a response.
func (c *ContactSlice) ToggleRead(ctx context.Context, id string) (domain.ContactResponse, error) {
	return c.mutate(ctx, OpMarkRead, func() (domain.ContactResponse, error) { return c.api.ToggleRead(ctx, id) },
		updated[domain.ContactResponse])
}

// aboutAPI is the about endpoint group.
type aboutAPI interface {
	Get(ctx context.Context) (*domain.About, error)
	Create(ctx context.Context, body transport.Body) (domain.About, error)
	Update(ctx context.Context, id string, body transport.Body) (domain.About, error)
	UploadResume(ctx context.Context, form *transport.Form) (domain.About, error)
	UploadProfileImage(ctx context.Context, form *transport.Form) (domain.About, error)
	ToggleActive(ctx context.Context, id string) (domain.About, error)
	Delete(ctx context.Context, id string) error
}

// AboutSlice holds the singleton profile.
type AboutSlice struct {
	store *Store
	api   aboutAPI
}

// State returns the slice's current state.
func (a *AboutSlice) State() EntityState[domain.About] {
	return a.store.Snapshot().About
}

func (a *AboutSlice) reduce(op, phase string, err error, fn func(EntityState[domain.About]) EntityState[domain.About]) {
	a.store.apply(Action{Type: "about/" + op + "/" + phase, Err: err}, func(st *State) {
		st.About = fn(st.About)
	})
}

// Fetch loads the profile. A server without one yields a nil entity.
func (a *AboutSlice) Fetch(ctx context.Context) error {
	a.reduce("fetch", "pending", nil, entityFetchPending[domain.About])

	about, err := a.api.Get(ctx)
	if err != nil {
		a.reduce("fetch", "rejected", err, func(s EntityState[domain.About]) EntityState[domain.About] {
			return entityFetchRejected(s, err)
		})
		a.store.logger.Warn("fetch failed", log.String("resource", "about"), log.Err(err))
		return err
	}
	a.reduce("fetch", "fulfilled", nil, func(s EntityState[domain.About]) EntityState[domain.About] {
		return entityFetchFulfilled(s, about)
	})
	return nil
}

func (a *AboutSlice) Create(ctx context.Context, body transport.Body) (domain.About, error) {
	return a.replace(ctx, OpCreate, func() (domain.About, error) { return a.api.Create(ctx, body) })
}

func (a *AboutSlice) Update(ctx context.Context, id string, body transport.Body) (domain.About, error) {
	return a.replace(ctx, OpUpdate, func() (domain.About, error) { return a.api.Update(ctx, id, body) })
}

func (a *AboutSlice) UploadResume(ctx context.Context, form *transport.Form) (domain.About, error) {
	return a.replace(ctx, OpUploadResume, func() (domain.About, error) { return a.api.UploadResume(ctx, form) })
}

func (a *AboutSlice) UploadProfileImage(ctx context.Context, form *transport.Form) (domain.About, error) {
	return a.replace(ctx, OpUploadImage, func() (domain.About, error) { return a.api.UploadProfileImage(ctx, form) })
}

func (a *AboutSlice) ToggleActive(ctx context.Context, id string) (domain.About, error) {
	return a.replace(ctx, OpToggle, func() (domain.About, error) { return a.api.ToggleActive(ctx, id) })
}

// Delete removes the profile once the server confirms.
func (a *AboutSlice) Delete(ctx context.Context, id string) error {
	a.reduce(string(OpDelete), "pending", nil, func(s EntityState[domain.About]) EntityState[domain.About] {
		return entityOperationPending(s, OpDelete)
	})
	if err := a.api.Delete(ctx, id); err != nil {
		a.rejected(OpDelete, err)
		return err
	}
	a.reduce(string(OpDelete), "fulfilled", nil, func(s EntityState[domain.About]) EntityState[domain.About] {
		return entityRemoved(s, id)
	})
	return nil
}

// ClearError drops the recorded error.
func (a *AboutSlice) ClearError() {
	a.reduce("error", "cleared", nil, entityClearError[domain.About])
}

func (a *AboutSlice) replace(ctx context.Context, op Operation, call func() (domain.About, error)) (domain.About, error) {
	a.reduce(string(op), "pending", nil, func(s EntityState[domain.About]) EntityState[domain.About] {
		return entityOperationPending(s, op)
	})
	about, err := call()
	if err != nil {
		a.rejected(op, err)
		return domain.About{}, err
	}
	a.reduce(string(op), "fulfilled", nil, func(s EntityState[domain.About]) EntityState[domain.About] {
		return entityReplaced(s, about)
	})
	return about, nil
}

func (a *AboutSlice) rejected(op Operation, err error) {
	a.reduce(string(op), "rejected", err, func(s EntityState[domain.About]) EntityState[domain.About] {
		return entityOperationRejected(s, err)
	})
	a.store.logger.Warn("operation failed",
		log.String("resource", "about"),
		log.String("operation", string(op)),
		log.Err(err))
}

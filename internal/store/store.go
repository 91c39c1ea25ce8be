package store

import (
	"context"
	"sync"

	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"

	"github.com/Sachin1-28/frontend-potfolio-code-sub000/internal/api"
	"github.com/Sachin1-28/frontend-potfolio-code-sub000/internal/domain"
	"github.com/Sachin1-28/frontend-potfolio-code-sub000/pkg/log"
	"github.com/Sachin1-28/frontend-potfolio-code-sub000/pkg/session"
)

// Action describes one applied state transition, e.g. "skills/fetch/fulfilled".
type Action struct {
	Type string
	Err  error
}

// Subscriber is called after every applied action with the state that action
// produced. It runs outside the store lock, on the goroutine that completed
// the operation, and must not block.
type Subscriber func(Action, State)

// Store is the single state container. Operations may be called from any
// goroutine; completions are applied in arrival order.
type Store struct {
	mu    sync.Mutex
	state State

	subMu   sync.Mutex
	subs    map[int]Subscriber
	nextSub int

	api      *api.Client
	sessions session.Repository
	logger   log.Logger
	validate *validator.Validate

	skills         *ListSlice[domain.Skill]
	projects       *ListSlice[domain.Project]
	experiences    *ListSlice[domain.Experience]
	certifications *ListSlice[domain.Certification]
	contacts       *ContactSlice
	about          *AboutSlice
	auth           *AuthSlice
}

// New builds the store and rehydrates the auth slice from sessions. A stored
// token puts the store in the authenticated state without a network call.
// subs are registered before rehydration.
func New(ctx context.Context, client *api.Client, sessions session.Repository, logger log.Logger, subs ...Subscriber) *Store {
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	s := &Store{
		state:    initialState(),
		subs:     make(map[int]Subscriber),
		api:      client,
		sessions: sessions,
		logger:   logger,
		validate: validator.New(),
	}

	s.skills = newListSlice[domain.Skill](s, "skills", client.Skills, Append,
		func(st *State) *ListState[domain.Skill] { return &st.Skills })
	s.projects = newListSlice[domain.Project](s, "projects", client.Projects, Prepend,
		func(st *State) *ListState[domain.Project] { return &st.Projects })
	s.experiences = newListSlice[domain.Experience](s, "experiences", client.Experiences, Prepend,
		func(st *State) *ListState[domain.Experience] { return &st.Experiences })
	s.certifications = newListSlice[domain.Certification](s, "certifications", client.Certifications, Append,
		func(st *State) *ListState[domain.Certification] { return &st.Certifications })
	s.contacts = &ContactSlice{
		ListSlice: newListSlice[domain.ContactResponse](s, "contacts", client.Contact, Append,
			func(st *State) *ListState[domain.ContactResponse] { return &st.Contacts }),
		api: client.Contact,
	}
	s.about = &AboutSlice{store: s, api: client.About}
	s.auth = &AuthSlice{store: s, api: client.Auth, sessions: sessions}

	for _, fn := range subs {
		s.Subscribe(fn)
	}
	if err := s.auth.Rehydrate(ctx); err != nil {
		logger.Warn("could not rehydrate session", log.Err(err))
	}
	return s
}

func (s *Store) Skills() *ListSlice[domain.Skill]                 { return s.skills }
func (s *Store) Projects() *ListSlice[domain.Project]             { return s.projects }
func (s *Store) Experiences() *ListSlice[domain.Experience]       { return s.experiences }
func (s *Store) Certifications() *ListSlice[domain.Certification] { return s.certifications }
func (s *Store) Contacts() *ContactSlice                          { return s.contacts }
func (s *Store) About() *AboutSlice                               { return s.about }
func (s *Store) Auth() *AuthSlice                                 { return s.auth }

// Snapshot returns the current state. Reducers never share backing arrays
// with earlier states, so the snapshot is safe to keep.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe registers fn and returns a function that removes it.
func (s *Store) Subscribe(fn Subscriber) func() {
	s.subMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.subMu.Unlock()

	return func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}
}

// dispatch applies reduce to a copy of the state. When reduce returns an error
// nothing is applied and nobody is notified.
func (s *Store) dispatch(action Action, reduce func(st *State) error) error {
	s.mu.Lock()
	next := s.state
	if err := reduce(&next); err != nil {
		s.mu.Unlock()
		return err
	}
	s.state = next
	s.mu.Unlock()

	s.logger.Debug("dispatch", log.String("action", action.Type))

	s.subMu.Lock()
	subs := make([]Subscriber, 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.subMu.Unlock()

	// Notify outside of locks
	for _, fn := range subs {
		fn(action, next)
	}
	return nil
}

// apply is dispatch for reducers that cannot fail.
func (s *Store) apply(action Action, reduce func(st *State)) {
	_ = s.dispatch(action, func(st *State) error {
		reduce(st)
		return nil
	})
}

// FetchAll loads every resource concurrently. A failure does not cancel the
// other fetches; each slice records its own outcome and the first error is
// returned.
func (s *Store) FetchAll(ctx context.Context) error {
	var g errgroup.Group
	g.Go(func() error { return s.skills.Fetch(ctx) })
	g.Go(func() error { return s.projects.Fetch(ctx) })
	g.Go(func() error { return s.experiences.Fetch(ctx) })
	g.Go(func() error { return s.certifications.Fetch(ctx) })
	g.Go(func() error { return s.about.Fetch(ctx) })
	if s.Snapshot().Auth.IsAuthenticated() {
		g.Go(func() error { return s.contacts.Fetch(ctx) })
	}
	return g.Wait()
}

// Package api binds each portfolio resource to its REST endpoints. Every
// group is built from the same transport.Client so authentication and error
// handling are shared.
package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/Sachin1-28/frontend-potfolio-code-sub000/internal/domain"
	"github.com/Sachin1-28/frontend-potfolio-code-sub000/pkg/transport"
)

// Base paths of the server contract.
const (
	SkillsPath         = "/api/skills"
	ProjectsPath       = "/api/projects"
	ExperiencesPath    = "/api/experiences"
	CertificationsPath = "/api/certifications"
	AboutPath          = "/api/about"
	ContactPath        = "/api/contact"
	AuthPath           = "/api/auth"
)

// Collection is the CRUD contract shared by list resources.
type Collection[T any] struct {
	res *transport.Resource
}

// NewCollection binds a collection to basePath. Updates use PUT.
func NewCollection[T any](c *transport.Client, basePath string) *Collection[T] {
	return &Collection[T]{res: c.Resource(basePath)}
}

// List fetches every record, in server order.
func (c *Collection[T]) List(ctx context.Context) ([]T, error) {
	var out []T
	if err := c.res.Get(ctx, "", &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

// Create posts a new record and returns the server's copy.
func (c *Collection[T]) Create(ctx context.Context, body transport.Body) (T, error) {
	var out T
	err := c.res.Post(ctx, "", body, &out)
	return out, err
}

// Update replaces the record with the given id and returns the server's copy.
func (c *Collection[T]) Update(ctx context.Context, id string, body transport.Body) (T, error) {
	var out T
	if id == "" {
		return out, domain.ErrMissingID
	}
	err := c.res.Put(ctx, escape(id), body, &out)
	return out, err
}

// Delete removes the record with the given id.
func (c *Collection[T]) Delete(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrMissingID
	}
	return c.res.Delete(ctx, escape(id), nil)
}

func escape(id string) string {
	return url.PathEscape(id)
}

// Skills is the /api/skills group.
type Skills = Collection[domain.Skill]

// Projects is the /api/projects group.
type Projects = Collection[domain.Project]

// Experiences is the /api/experiences group.
type Experiences = Collection[domain.Experience]

// Certifications is the /api/certifications group.
type Certifications = Collection[domain.Certification]

// Client groups every resource API over one transport.
type Client struct {
	Skills         *Skills
	Projects       *Projects
	Experiences    *Experiences
	Certifications *Certifications
	About          *About
	Contact        *Contact
	Auth           *Auth
}

// New builds every resource group over t. verifyPath is the session check
// endpoint used by Auth.Verify.
func New(t *transport.Client, verifyPath string) *Client {
	return &Client{
		Skills:         NewCollection[domain.Skill](t, SkillsPath),
		Projects:       NewCollection[domain.Project](t, ProjectsPath),
		Experiences:    NewCollection[domain.Experience](t, ExperiencesPath),
		Certifications: NewCollection[domain.Certification](t, CertificationsPath),
		About:          NewAbout(t),
		Contact:        NewContact(t),
		Auth:           NewAuth(t, verifyPath),
	}
}

func missing(what string) error {
	return fmt.Errorf("%w: %s", domain.ErrMissingID, what)
}

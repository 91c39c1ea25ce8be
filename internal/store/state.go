// Package store holds the process-wide client state: one slice per portfolio
// resource plus the auth slice. Every change goes through the Store's dispatch,
// which applies one reducer to completion before the next.
package store

import (
	"github.com/Sachin1-28/frontend-potfolio-code-sub000/internal/domain"
)

// Operation names the mutation in flight on a slice.
type Operation string

const (
	OpNone         Operation = ""
	OpCreate       Operation = "create"
	OpUpdate       Operation = "update"
	OpDelete       Operation = "delete"
	OpToggle       Operation = "toggle"
	OpMarkRead     Operation = "mark-read"
	OpSubmit       Operation = "submit"
	OpUploadResume Operation = "upload-resume"
	OpUploadImage  Operation = "upload-image"
)

// ListState is the state of a list resource.
type ListState[T any] struct {
	// Items in server order.
	Items []T `json:"items"`

	// Loading is true only while the list fetch is outstanding.
	Loading bool `json:"loading"`

	OperationLoading bool      `json:"operationLoading"`
	OperationType    Operation `json:"operationType,omitempty"`

	// Error is the message of the last rejected operation. It stays until cleared.
	Error string `json:"error,omitempty"`
}

// EntityState is the state of a singleton resource.
type EntityState[T any] struct {
	Entity           *T        `json:"entity"`
	Loading          bool      `json:"loading"`
	OperationLoading bool      `json:"operationLoading"`
	OperationType    Operation `json:"operationType,omitempty"`
	Error            string    `json:"error,omitempty"`
}

// AuthState is the state of the auth slice.
type AuthState struct {
	Status  AuthStatus   `json:"status"`
	User    *domain.User `json:"user,omitempty"`
	Token   string       `json:"-"`
	Loading bool         `json:"loading"`
	Error   string       `json:"error,omitempty"`
}

// IsAuthenticated reports whether a session is held.
func (a AuthState) IsAuthenticated() bool {
	return a.Status == StatusAuthenticated
}

// State is the composed state of every slice.
type State struct {
	Skills         ListState[domain.Skill]           `json:"skills"`
	Projects       ListState[domain.Project]         `json:"projects"`
	Experiences    ListState[domain.Experience]      `json:"experiences"`
	Certifications ListState[domain.Certification]   `json:"certifications"`
	Contacts       ListState[domain.ContactResponse] `json:"contacts"`
	About          EntityState[domain.About]         `json:"about"`
	Auth           AuthState                         `json:"auth"`
}

func initialState() State {
	return State{
		Skills:         ListState[domain.Skill]{Items: []domain.Skill{}},
		Projects:       ListState[domain.Project]{Items: []domain.Project{}},
		Experiences:    ListState[domain.Experience]{Items: []domain.Experience{}},
		Certifications: ListState[domain.Certification]{Items: []domain.Certification{}},
		Contacts:       ListState[domain.ContactResponse]{Items: []domain.ContactResponse{}},
		Auth:           AuthState{Status: StatusAnonymous},
	}
}

package api

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Sachin1-28/frontend-potfolio-code-sub000/internal/domain"
	"github.com/Sachin1-28/frontend-potfolio-code-sub000/pkg/transport"
)

// About is the /api/about group. The resource is a singleton; mutations
// address it by id and file uploads go to dedicated sub-resources.
type About struct {
	res *transport.Resource
}

// NewAbout binds the about endpoints.
func NewAbout(c *transport.Client) *About {
	return &About{res: c.Resource(AboutPath)}
}

// Get fetches the profile. The server may answer with the record or with a
// one-element list; nil means none exists yet.
func (a *About) Get(ctx context.Context) (*domain.About, error) {
	var raw json.RawMessage
	if err := a.res.Get(ctx, "", &raw); err != nil {
		return nil, err
	}
	return decodeAbout(raw)
}

func decodeAbout(raw json.RawMessage) (*domain.About, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	if raw[0] == '[' {
		var list []domain.About
		if err := json.Unmarshal(raw, &list); err != nil {
			return nil, fmt.Errorf("decode about list: %w", err)
		}
		if len(list) == 0 {
			return nil, nil
		}
		return &list[0], nil
	}
	var out domain.About
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode about: %w", err)
	}
	return &out, nil
}

// Create posts the profile.
func (a *About) Create(ctx context.Context, body transport.Body) (domain.About, error) {
	var out domain.About
	err := a.res.Post(ctx, "", body, &out)
	return out, err
}

// Update patches the profile with the given id.
func (a *About) Update(ctx context.Context, id string, body transport.Body) (domain.About, error) {
	var out domain.About
	if id == "" {
		return out, missing("about")
	}
	err := a.res.Patch(ctx, escape(id), body, &out)
	return out, err
}

// UploadResume replaces the resume file. The form must carry a "resume" file part.
func (a *About) UploadResume(ctx context.Context, form *transport.Form) (domain.About, error) {
	var out domain.About
	err := a.res.Post(ctx, "resume", form, &out)
	return out, err
}

// UploadProfileImage replaces the profile image. The form must carry a "profileImage" file part.
func (a *About) UploadProfileImage(ctx context.Context, form *transport.Form) (domain.About, error) {
	var out domain.About
	err := a.res.Post(ctx, "profile-image", form, &out)
	return out, err
}

// ToggleActive flips whether the profile is shown on the public site.
func (a *About) ToggleActive(ctx context.Context, id string) (domain.About, error) {
	var out domain.About
	if id == "" {
		return out, missing("about")
	}
	err := a.res.Patch(ctx, escape(id)+"/toggle-active", nil, &out)
	return out, err
}

// Delete removes the profile.
func (a *About) Delete(ctx context.Context, id string) error {
	if id == "" {
		return missing("about")
	}
	return a.res.Delete(ctx, escape(id), nil)
}

package api

import (
	"context"

	"github.com/Sachin1-28/frontend-potfolio-code-sub000/internal/domain"
	"github.com/Sachin1-28/frontend-potfolio-code-sub000/pkg/transport"
)

// Contact is the /api/contact group: public submissions plus the admin inbox.
type Contact struct {
	*Collection[domain.ContactResponse]
}

// NewContact binds the contact endpoints.
func NewContact(c *transport.Client) *Contact {
	return &Contact{Collection: NewCollection[domain.ContactResponse](c, ContactPath)}
}

// Submit sends a message as a visitor would. The body is JSON.
func (c *Contact) Submit(ctx context.Context, body interface{}) (domain.ContactResponse, error) {
	return c.Create(ctx, transport.JSON(body))
}

// ToggleRead flips the read flag of a response.
func (c *Contact) ToggleRead(ctx context.Context, id string) (domain.ContactResponse, error) {
	var out domain.ContactResponse
	if id == "" {
		return out, missing("contact response")
	}
	err := c.res.Patch(ctx, escape(id)+"/read", nil, &out)
	return out, err
}

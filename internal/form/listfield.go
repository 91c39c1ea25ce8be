// Package form holds client-side drafts: the editable copy of a record before
// it is submitted. Drafts validate themselves and serialize to the multipart
// payload the server expects.
package form

import (
	"fmt"
	"strings"

	"github.com/Sachin1-28/frontend-potfolio-code-sub000/internal/domain"
)

// ListField is a variable-length list of strings being edited, such as key
// responsibilities. It always has at least one slot; blank slots are dropped
// on submission.
type ListField []string

// NewListField returns a field holding values, or a single empty slot.
func NewListField(values ...string) ListField {
	f := append(ListField{}, values...)
	f.ensure()
	return f
}

func (f *ListField) ensure() {
	if len(*f) == 0 {
		*f = append(*f, "")
	}
}

// Len returns the number of slots.
func (f *ListField) Len() int {
	f.ensure()
	return len(*f)
}

// Items returns the slots, blanks included.
func (f *ListField) Items() []string {
	f.ensure()
	return append([]string(nil), (*f)...)
}

// Append adds an empty slot at the end.
func (f *ListField) Append() {
	f.ensure()
	*f = append(*f, "")
}

// Set stores v in slot i.
func (f *ListField) Set(i int, v string) error {
	f.ensure()
	if i < 0 || i >= len(*f) {
		return fmt.Errorf("%w: %d of %d", domain.ErrIndexOutOfRange, i, len(*f))
	}
	(*f)[i] = v
	return nil
}

// Remove deletes slot i. The last remaining slot cannot be removed.
func (f *ListField) Remove(i int) error {
	f.ensure()
	if i < 0 || i >= len(*f) {
		return fmt.Errorf("%w: %d of %d", domain.ErrIndexOutOfRange, i, len(*f))
	}
	if len(*f) == 1 {
		return domain.ErrLastSlot
	}
	next := make(ListField, 0, len(*f)-1)
	next = append(next, (*f)[:i]...)
	next = append(next, (*f)[i+1:]...)
	*f = next
	return nil
}

// Values returns the trimmed, non-blank entries in order.
func (f ListField) Values() []string {
	out := make([]string, 0, len(f))
	for _, v := range f {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

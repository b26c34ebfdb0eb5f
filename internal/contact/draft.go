// Package contact implements the contact form: the draft of its four fields,
// the urlencoded payload, and the one-shot submission to the site origin.
//
// A Draft is a plain value. Callers own it and thread it through
// UpdateField and Submitter.Submit, which both return the next draft rather
// than mutating shared state.
package contact

import (
	"fmt"
	"strings"
)

// Field identifies one of the four form inputs. The value is the form
// input name used on the wire.
type Field string

const (
	FieldName    Field = "name"
	FieldEmail   Field = "email"
	FieldPhone   Field = "phone"
	FieldMessage Field = "message"
)

// Fields lists the form inputs in display order.
func Fields() []Field {
	return []Field{FieldName, FieldEmail, FieldPhone, FieldMessage}
}

// ParseField maps an input name to its Field.
func ParseField(s string) (Field, error) {
	f := Field(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case FieldName, FieldEmail, FieldPhone, FieldMessage:
		return f, nil
	}
	return "", fmt.Errorf("unknown contact field %q", s)
}

// Draft holds the not-yet-submitted values of the form.
// The zero value is the empty draft.
type Draft struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

// IsEmpty reports whether every field is blank.
func (d Draft) IsEmpty() bool {
	return d == Draft{}
}

// Get returns the value held for f.
func (d Draft) Get(f Field) string {
	switch f {
	case FieldName:
		return d.Name
	case FieldEmail:
		return d.Email
	case FieldPhone:
		return d.Phone
	case FieldMessage:
		return d.Message
	}
	return ""
}

// With returns a copy of d with f set to value. Unknown fields leave the
// copy unchanged.
func (d Draft) With(f Field, value string) Draft {
	switch f {
	case FieldName:
		d.Name = value
	case FieldEmail:
		d.Email = value
	case FieldPhone:
		d.Phone = value
	case FieldMessage:
		d.Message = value
	}
	return d
}

// UpdateField replaces one field of the draft and returns the new draft.
func UpdateField(d Draft, f Field, value string) Draft {
	return d.With(f, value)
}

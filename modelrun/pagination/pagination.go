// Package pagination provides the cursor and page types shared by the
// list operations of the SDK.
//
// List endpoints return pages linked by opaque cursors. A Cursor is a
// tagged value: FirstPage() requests the base listing endpoint, and
// CursorAt requests an explicit page obtained from a previous response.
// The zero Cursor is invalid, so an exhausted page (no next cursor)
// cannot be mistaken for "start over" — passing it to a list operation
// fails before any network call.
package pagination

import "errors"

// ErrInvalidCursor is returned when a list operation receives a cursor
// that carries no page target, or when CursorAt is given an empty one.
var ErrInvalidCursor = errors.New("pagination: cursor must be FirstPage or a non-empty page target")

// Cursor identifies a page position in a list endpoint.
type Cursor struct {
	target string
	valid  bool
}

// FirstPage returns the cursor for the base listing endpoint.
func FirstPage() Cursor {
	return Cursor{valid: true}
}

// CursorAt returns a cursor for an explicit page target, as found in a
// page's Next or Previous field. An empty target is a caller error.
func CursorAt(target string) (Cursor, error) {
	if target == "" {
		return Cursor{}, ErrInvalidCursor
	}
	return Cursor{target: target, valid: true}, nil
}

// Valid reports whether the cursor identifies a page at all.
// The zero Cursor is not valid.
func (c Cursor) Valid() bool {
	return c.valid
}

// IsFirstPage reports whether the cursor requests the base listing endpoint.
func (c Cursor) IsFirstPage() bool {
	return c.valid && c.target == ""
}

// Target returns the explicit page target, or "" for the first page.
func (c Cursor) Target() string {
	return c.target
}

// Page is one page of list results.
type Page[T any] struct {
	// Previous is the cursor target of the previous page, if any.
	Previous *string `json:"previous"`

	// Next is the cursor target of the next page, if any.
	Next *string `json:"next"`

	// Results holds the records in this page.
	Results []T `json:"results"`
}

// NextCursor returns the cursor for the page after this one.
// ok is false when this is the last page; stop paginating.
func (p *Page[T]) NextCursor() (cursor Cursor, ok bool) {
	if p.Next == nil || *p.Next == "" {
		return Cursor{}, false
	}
	return Cursor{target: *p.Next, valid: true}, true
}

// PreviousCursor returns the cursor for the page before this one.
// ok is false when this is the first page.
func (p *Page[T]) PreviousCursor() (cursor Cursor, ok bool) {
	if p.Previous == nil || *p.Previous == "" {
		return Cursor{}, false
	}
	return Cursor{target: *p.Previous, valid: true}, true
}

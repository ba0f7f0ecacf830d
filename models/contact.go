package models

// Contact is an address-book entry owned by exactly one user.
// Ownership is enforced at the persistence layer: every query on
// contacts carries a user_id predicate, so a contact of another user
// is indistinguishable from a missing row.
type Contact struct {
	ContactID int64  `json:"id"`
	UserID    int64  `json:"-"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// TableName returns the name of the database table
// associated with the Contact model.
func (c Contact) TableName() string {
	return "contacts"
}

// ContactFilter holds the optional search predicates for contact search.
// Empty fields are not applied. Name matches first_name or last_name.
type ContactFilter struct {
	Name  string
	Email string
	Phone string
}

// PageRequest carries 1-indexed pagination parameters.
type PageRequest struct {
	Page int
	Size int
}

// DefaultPageSize is applied when the client does not pass a size parameter.
const DefaultPageSize = 10

// Normalize clamps page and size to sane values.
func (p PageRequest) Normalize() PageRequest {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Size < 1 {
		p.Size = DefaultPageSize
	}
	return p
}

// Offset converts the 1-indexed page into a SQL offset.
func (p PageRequest) Offset() uint64 {
	return uint64((p.Page - 1) * p.Size)
}

package identity

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/smartsolar/backend/internal/domain/document"
)

// RoleAdmin is the role attribute that grants dashboard access. Any
// other value, or none at all, is a customer.
const RoleAdmin = "admin"

// User is a profile read from the users collection.
type User struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Address   string
	City      string
	Role      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ParseUser decodes a user profile document.
func ParseUser(doc document.Document) User {
	return User{
		ID:        doc.ID,
		FirstName: doc.Str("firstName"),
		LastName:  doc.Str("lastName"),
		Email:     doc.Str("email"),
		Phone:     doc.Str("phone"),
		Address:   doc.Str("address"),
		City:      doc.Str("city"),
		Role:      doc.Str("userType"),
		CreatedAt: doc.Time("createdAt"),
		UpdatedAt: doc.Time("updatedAt"),
	}
}

// IsAdmin reports whether the profile carries the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// EventTime is the ordering key for the newest-first sort.
func (u User) EventTime() time.Time {
	return u.CreatedAt
}

// FullName joins the name fields, falling back to a label when the
// profile has neither.
func (u User) FullName() string {
	name := strings.TrimSpace(strings.TrimSpace(u.FirstName) + " " + strings.TrimSpace(u.LastName))
	if name == "" {
		return "Unnamed User"
	}
	return name
}

// RoleLabel is the capitalized role shown on the user card, defaulting
// to Customer for profiles without a role attribute.
func (u User) RoleLabel() string {
	if u.Role == "" {
		return "Customer"
	}
	r, size := utf8.DecodeRuneInString(u.Role)
	return string(unicode.ToUpper(r)) + u.Role[size:]
}

// HomeAddress joins the address fields for display.
func (u User) HomeAddress() string {
	parts := make([]string, 0, 2)
	for _, p := range []string{u.Address, u.City} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

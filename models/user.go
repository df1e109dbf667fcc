package models

import "time"

// Allowed values of [User.UserType].
const (
	UserTypeAdmin = "admin"
	UserTypeUser  = "user"
)

// Allowed values of [User.Status], [Post.Status] and [Post.IsPublished].
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// User represents an account entity used for authentication and authorization.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the 24-character hexadecimal identifier of the user.
	ID string `json:"_id"`

	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`

	// Email is unique across all users.
	Email string `json:"email"`

	// Mobile is exactly ten characters long.
	Mobile string `json:"mobile"`

	// Username is unique across all users and must satisfy the username policy.
	Username string `json:"username"`

	// UserType is one of [UserTypeAdmin] or [UserTypeUser].
	UserType string `json:"user_type"`

	// Password stores the bcrypt hash of the user's password.
	// It is never serialized.
	Password string `json:"-"`

	// Status is one of [StatusActive] or [StatusInactive]. Inactive users
	// cannot log in.
	Status string `json:"status"`

	// Token is the current session token. An empty token means the user is
	// logged out. It is never serialized.
	Token string `json:"-"`

	// TokenExpiresAt is the expiry of Token, nil when there is no session.
	TokenExpiresAt *time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// IsActive reports whether the account is allowed to log in.
func (u User) IsActive() bool {
	return u.Status != StatusInactive
}

// UserPayload is the inbound representation of a user used both for creation
// and for partial updates. A nil field means the key was absent from the
// request body.
type UserPayload struct {
	FirstName *string `json:"first_name,omitempty" validate:"required"`
	LastName  *string `json:"last_name,omitempty" validate:"required"`
	Email     *string `json:"email,omitempty" validate:"required,email"`
	Mobile    *string `json:"mobile,omitempty" validate:"required,len=10"`
	Username  *string `json:"username,omitempty" validate:"required"`
	UserType  *string `json:"user_type,omitempty" validate:"required,oneof=admin user"`
	Password  *string `json:"password,omitempty" validate:"required"`
	Status    *string `json:"status,omitempty" validate:"required,oneof=active inactive"`
}

// UserPayloadFields lists the body keys recognized by user create and update
// operations.
var UserPayloadFields = []string{
	"first_name",
	"last_name",
	"email",
	"mobile",
	"username",
	"user_type",
	"password",
	"status",
}

// IsEmpty reports whether no recognized field is set.
func (p UserPayload) IsEmpty() bool {
	return p.FirstName == nil &&
		p.LastName == nil &&
		p.Email == nil &&
		p.Mobile == nil &&
		p.Username == nil &&
		p.UserType == nil &&
		p.Password == nil &&
		p.Status == nil
}

// Fields returns the JSON names of the set fields in declaration order.
func (p UserPayload) Fields() []string {
	return presentFields(UserPayloadFields,
		p.FirstName, p.LastName, p.Email, p.Mobile,
		p.Username, p.UserType, p.Password, p.Status)
}

// ToUser converts a fully populated payload into a [User].
// Absent fields are left empty.
func (p UserPayload) ToUser() User {
	return User{
		FirstName: deref(p.FirstName),
		LastName:  deref(p.LastName),
		Email:     deref(p.Email),
		Mobile:    deref(p.Mobile),
		Username:  deref(p.Username),
		UserType:  deref(p.UserType),
		Password:  deref(p.Password),
		Status:    deref(p.Status),
	}
}

// Apply returns a copy of user with every non-nil payload field applied.
func (p UserPayload) Apply(user User) User {
	setIfPresent(&user.FirstName, p.FirstName)
	setIfPresent(&user.LastName, p.LastName)
	setIfPresent(&user.Email, p.Email)
	setIfPresent(&user.Mobile, p.Mobile)
	setIfPresent(&user.Username, p.Username)
	setIfPresent(&user.UserType, p.UserType)
	setIfPresent(&user.Password, p.Password)
	setIfPresent(&user.Status, p.Status)
	return user
}

// Credentials is the login request body.
type Credentials struct {
	Email    *string `json:"email,omitempty" validate:"required"`
	Password *string `json:"password,omitempty" validate:"required"`
}

// UserFilter holds the optional query filters of the user list endpoint.
type UserFilter struct {
	// Search is matched case-insensitively against first name, last name,
	// mobile, email and username.
	Search   string
	Status   string
	UserType string
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// presentFields pairs names with values by position and keeps the names of
// non-nil values.
func presentFields(names []string, values ...*string) []string {
	fields := make([]string, 0, len(values))
	for i, v := range values {
		if v != nil {
			fields = append(fields, names[i])
		}
	}
	return fields
}

func setIfPresent(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

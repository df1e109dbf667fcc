package models

import "time"

// Post is a titled text entry owned by a user.
type Post struct {
	// ID is the 24-character hexadecimal identifier of the post.
	ID string `json:"_id"`

	// Title is unique across all posts, 5 to 50 characters long.
	Title string `json:"title"`

	// Description is at least 10 characters long.
	Description string `json:"description"`

	// IsPublished is one of [StatusActive] or [StatusInactive].
	IsPublished string `json:"is_published"`

	// Status is one of [StatusActive] or [StatusInactive].
	Status string `json:"status"`

	// UserID references the owning user.
	UserID string `json:"user_id"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Post model.
func (p Post) TableName() string {
	return "posts"
}

// PostPayload is the inbound representation of a post used both for creation
// and for partial updates. A nil field means the key was absent from the
// request body.
type PostPayload struct {
	Title       *string `json:"title,omitempty" validate:"required,min=5,max=50"`
	Description *string `json:"description,omitempty" validate:"required,min=10"`
	IsPublished *string `json:"is_published,omitempty" validate:"required,oneof=active inactive"`
	Status      *string `json:"status,omitempty" validate:"required,oneof=active inactive"`
	UserID      *string `json:"user_id,omitempty" validate:"required,hex24"`
}

// PostPayloadFields lists the body keys recognized by post create and update
// operations.
var PostPayloadFields = []string{
	"title",
	"description",
	"is_published",
	"status",
	"user_id",
}

// IsEmpty reports whether no recognized field is set.
func (p PostPayload) IsEmpty() bool {
	return p.Title == nil &&
		p.Description == nil &&
		p.IsPublished == nil &&
		p.Status == nil &&
		p.UserID == nil
}

// Fields returns the JSON names of the set fields in declaration order.
func (p PostPayload) Fields() []string {
	return presentFields(PostPayloadFields,
		p.Title, p.Description, p.IsPublished, p.Status, p.UserID)
}

// ToPost converts a fully populated payload into a [Post].
func (p PostPayload) ToPost() Post {
	return Post{
		Title:       deref(p.Title),
		Description: deref(p.Description),
		IsPublished: deref(p.IsPublished),
		Status:      deref(p.Status),
		UserID:      deref(p.UserID),
	}
}

// PostFilter holds the optional query filters of the post list endpoint.
type PostFilter struct {
	// Search is matched case-insensitively against title and description.
	Search      string
	IsPublished string
	Status      string
	// UserID restricts the result to posts of a single owner.
	UserID string
}

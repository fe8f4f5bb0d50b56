// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

const (
	// DefaultPostsLimit is the page size used when the client does not ask
	// for one.
	DefaultPostsLimit uint64 = 10

	// MaxPostsLimit caps the page size of a single list request.
	MaxPostsLimit uint64 = 100
)

// Post is a user-authored entry together with its owner and the number of
// votes it received.
type Post struct {
	// ID is the server-assigned identifier of the post.
	ID int64 `json:"id"`

	Title     string `json:"title"`
	Content   string `json:"content"`
	Published bool   `json:"published"`

	// CreatedAt is set by the database on insert.
	CreatedAt time.Time `json:"created_at"`

	// OwnerID references the user who created the post. It never changes
	// after creation.
	OwnerID int64 `json:"owner_id"`

	// Owner is the public view of the owning user.
	Owner User `json:"owner"`

	// Votes is the number of rows in votes referencing this post.
	Votes int64 `json:"votes"`
}

// PostInput lists exactly the fields a client may set on create and update.
type PostInput struct {
	Title   string `json:"title" validate:"required,max=255"`
	// Content may be empty; a missing content decodes as empty too.
	Content string `json:"content"`

	// Published defaults to true when omitted.
	Published *bool `json:"published,omitempty"`

	// OwnerID is accepted so that older clients do not get rejected, but it
	// is never applied: the owner is always the acting user.
	OwnerID *int64 `json:"owner_id,omitempty"`
}

// IsPublished returns the requested publication flag, true when omitted.
func (p PostInput) IsPublished() bool {
	if p.Published == nil {
		return true
	}
	return *p.Published
}

// PostFilter narrows and pages the list of posts.
type PostFilter struct {
	Limit  uint64 `json:"limit" validate:"min=1,max=100"`
	Skip   uint64 `json:"skip"`
	Search string `json:"search,omitempty" validate:"max=255"`
}

// NewPostFilter returns a filter with the default page size.
func NewPostFilter() PostFilter {
	return PostFilter{Limit: DefaultPostsLimit}
}

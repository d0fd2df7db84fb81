// Package filters narrows user and post collections for display and holds
// the filter state the views render from.
//
// The filter functions are pure: they never modify their input and return
// the input itself only when no narrowing applies.
package filters

import (
	"strings"

	"github.com/jmgilman/go/placeholder"
)

// UnknownAuthor is shown for a post whose owner is not in the user collection.
const UnknownAuthor = "Unknown User"

// MissingEmail is shown when a post's owner has no known email.
const MissingEmail = "-"

// Users returns the users whose name, username or email contains term,
// ignoring case. An empty term returns users unchanged.
func Users(users []placeholder.User, term string) []placeholder.User {
	if term == "" {
		return users
	}

	needle := strings.ToLower(term)
	out := make([]placeholder.User, 0, len(users))
	for _, u := range users {
		if matchUser(u, needle) {
			out = append(out, u)
		}
	}
	return out
}

// Posts narrows posts to those owned by ownerID when it is non-nil, then to
// those whose title contains term, ignoring case. Either stage is skipped
// when its argument is absent.
func Posts(posts []placeholder.Post, ownerID *int, term string) []placeholder.Post {
	result := posts

	if ownerID != nil {
		owned := make([]placeholder.Post, 0, len(result))
		for _, p := range result {
			if p.UserID == *ownerID {
				owned = append(owned, p)
			}
		}
		result = owned
	}

	if term != "" {
		needle := strings.ToLower(term)
		titled := make([]placeholder.Post, 0, len(result))
		for _, p := range result {
			if strings.Contains(strings.ToLower(p.Title), needle) {
				titled = append(titled, p)
			}
		}
		result = titled
	}

	return result
}

// AuthorName returns the name of the user with the given id, or
// UnknownAuthor.
func AuthorName(users []placeholder.User, id int) string {
	if u, ok := findUser(users, id); ok {
		return u.Name
	}
	return UnknownAuthor
}

// Kind distinguishes the entries of a combined listing.
type Kind string

const (
	KindUser Kind = "user"
	KindPost Kind = "post"
)

// Item is one entry of a combined listing. Exactly one of User and Post is
// set, according to Kind.
type Item struct {
	Kind Kind
	User *placeholder.User
	Post *placeholder.Post

	// AuthorEmail is the owner's email for posts, or MissingEmail.
	AuthorEmail string
}

// Combined searches users and posts together. Users match as in Users; posts
// match when their author's username contains term. Posts whose author is
// unknown only appear for an empty term. Users are listed before posts.
func Combined(users []placeholder.User, posts []placeholder.Post, term string) []Item {
	needle := strings.ToLower(term)
	items := make([]Item, 0, len(users)+len(posts))

	for _, u := range Users(users, term) {
		items = append(items, Item{Kind: KindUser, User: &u})
	}

	for _, p := range posts {
		author, ok := findUser(users, p.UserID)
		if needle != "" {
			if !ok || author.Username == "" || !strings.Contains(strings.ToLower(author.Username), needle) {
				continue
			}
		}

		email := MissingEmail
		if ok && author.Email != "" {
			email = author.Email
		}

		items = append(items, Item{Kind: KindPost, Post: &p, AuthorEmail: email})
	}

	return items
}

func matchUser(u placeholder.User, needle string) bool {
	return strings.Contains(strings.ToLower(u.Name), needle) ||
		strings.Contains(strings.ToLower(u.Username), needle) ||
		strings.Contains(strings.ToLower(u.Email), needle)
}

func findUser(users []placeholder.User, id int) (placeholder.User, bool) {
	for _, u := range users {
		if u.ID == id {
			return u, true
		}
	}
	return placeholder.User{}, false
}

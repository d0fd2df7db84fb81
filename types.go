package placeholder

// User is a user record as served by the API.
type User struct {
	// Identification
	ID int `json:"id" yaml:"id"`

	// Profile
	Name     string `json:"name" yaml:"name"`
	Username string `json:"username" yaml:"username"`
	Email    string `json:"email" yaml:"email"`
}

// Post is a post record as served by the API.
// UserID references the owning user but is not enforced locally; the owner
// may be missing from any cached user collection.
type Post struct {
	// Identification
	ID     int `json:"id" yaml:"id"`
	UserID int `json:"userId" yaml:"userId"`

	// Content
	Title string `json:"title" yaml:"title"`
	Body  string `json:"body,omitempty" yaml:"body,omitempty"`
}

// CreateUserOptions contains the fields for creating a user.
// The identifier is assigned by the server.
type CreateUserOptions struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// UpdateUserOptions contains fields for updating a user.
// Only non-nil fields are sent.
type UpdateUserOptions struct {
	Name     *string `json:"name,omitempty"`
	Username *string `json:"username,omitempty"`
	Email    *string `json:"email,omitempty"`
}

// IsEmpty reports whether no field is set.
func (o UpdateUserOptions) IsEmpty() bool {
	return o.Name == nil && o.Username == nil && o.Email == nil
}

// Apply returns a copy of u with the set fields replaced.
func (o UpdateUserOptions) Apply(u User) User {
	if o.Name != nil {
		u.Name = *o.Name
	}
	if o.Username != nil {
		u.Username = *o.Username
	}
	if o.Email != nil {
		u.Email = *o.Email
	}
	return u
}

// CreatePostOptions contains the fields for creating a post.
type CreatePostOptions struct {
	UserID int    `json:"userId"`
	Title  string `json:"title"`
	Body   string `json:"body,omitempty"`
}

// UpdatePostOptions contains fields for updating a post.
// Only non-nil fields are sent.
type UpdatePostOptions struct {
	UserID *int    `json:"userId,omitempty"`
	Title  *string `json:"title,omitempty"`
	Body   *string `json:"body,omitempty"`
}

// IsEmpty reports whether no field is set.
func (o UpdatePostOptions) IsEmpty() bool {
	return o.UserID == nil && o.Title == nil && o.Body == nil
}

// Apply returns a copy of p with the set fields replaced.
func (o UpdatePostOptions) Apply(p Post) Post {
	if o.UserID != nil {
		p.UserID = *o.UserID
	}
	if o.Title != nil {
		p.Title = *o.Title
	}
	if o.Body != nil {
		p.Body = *o.Body
	}
	return p
}

// ListPostsOptions narrows a post listing on the server side.
type ListPostsOptions struct {
	// UserID restricts the listing to one owner. Zero means all posts.
	UserID int `url:"userId,omitempty"`
}

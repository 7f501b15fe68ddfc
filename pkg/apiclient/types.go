package apiclient

import "time"

// Project mirrors the API's project representation.
type Project struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Tags        []string  `json:"tags"`
	Image       *string   `json:"image"`
	Images      []string  `json:"images"`
	Link        *string   `json:"link"`
	IsVisible   bool      `json:"isVisible"`
	IsFeatured  bool      `json:"isFeatured"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ProjectDraft is the write shape for create and update calls. Nil fields
// are omitted so the server's partial-update semantics apply.
type ProjectDraft struct {
	Title       string    `json:"title,omitempty"`
	Description string    `json:"description,omitempty"`
	Tags        *[]string `json:"tags,omitempty"`
	Image       string    `json:"image,omitempty"`
	Images      *[]string `json:"images,omitempty"`
	Link        *string   `json:"link,omitempty"`
	IsVisible   *bool     `json:"isVisible,omitempty"`
	IsFeatured  *bool     `json:"isFeatured,omitempty"`
}

// User mirrors the API's account representation.
type User struct {
	ID    int64   `json:"id"`
	Email string  `json:"email"`
	Name  *string `json:"name,omitempty"`
}

// Contact mirrors a stored contact submission.
type Contact struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// AuthResponse is the login/register payload.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

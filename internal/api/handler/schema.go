package handler

import (
	"time"

	"github.com/bandsite/cms-api/internal/core/domain"
)

// Request schemas. Create requests validate required fields; patch requests
// use pointers so absent fields stay untouched.

// --- Auth ---

type registerRequest struct {
	Name     string `json:"name"     validate:"required,min=2,max=100"`
	Email    string `json:"email"    validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,min=8,max=128"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password"     validate:"required,min=8,max=128"`
}

type roleRequest struct {
	Role string `json:"role" validate:"required,oneof=admin member user"`
}

// sessionResponse is the data of register and login.
type sessionResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      *domain.User `json:"user"`
}

// --- Band content ---

type memberRequest struct {
	Name          string `json:"name"            validate:"required,min=2,max=100"`
	Instrument    string `json:"instrument"      validate:"required,max=100"`
	Bio           string `json:"bio"             validate:"max=2000"`
	ImageURL      string `json:"image_url"       validate:"omitempty,url"`
	ImagePublicID string `json:"image_public_id" validate:"max=255"`
	Order         int    `json:"order"           validate:"min=0,max=100"`
	Active        *bool  `json:"active"`
}

type memberPatchRequest struct {
	Name          *string `json:"name"            validate:"omitempty,min=2,max=100"`
	Instrument    *string `json:"instrument"      validate:"omitempty,max=100"`
	Bio           *string `json:"bio"             validate:"omitempty,max=2000"`
	ImageURL      *string `json:"image_url"       validate:"omitempty,url"`
	ImagePublicID *string `json:"image_public_id" validate:"omitempty,max=255"`
	Order         *int    `json:"order"           validate:"omitempty,min=0,max=100"`
	Active        *bool   `json:"active"`
}

type gigRequest struct {
	Title       string     `json:"title"       validate:"required,max=200"`
	Venue       string     `json:"venue"       validate:"required,max=200"`
	City        string     `json:"city"        validate:"required,max=100"`
	Date        *time.Time `json:"date"        validate:"required"`
	TicketURL   string     `json:"ticket_url"  validate:"omitempty,url"`
	Price       float64    `json:"price"       validate:"min=0,max=10000"`
	Description string     `json:"description" validate:"max=2000"`
	SoldOut     bool       `json:"sold_out"`
}

type gigPatchRequest struct {
	Title       *string    `json:"title"       validate:"omitempty,max=200"`
	Venue       *string    `json:"venue"       validate:"omitempty,max=200"`
	City        *string    `json:"city"        validate:"omitempty,max=100"`
	Date        *time.Time `json:"date"`
	TicketURL   *string    `json:"ticket_url"  validate:"omitempty,url"`
	Price       *float64   `json:"price"       validate:"omitempty,min=0,max=10000"`
	Description *string    `json:"description" validate:"omitempty,max=2000"`
	SoldOut     *bool      `json:"sold_out"`
}

type gigListQuery struct {
	When string `json:"when" query:"when" validate:"omitempty,oneof=upcoming past all"`
}

type songRequest struct {
	Title       string `json:"title"        validate:"required,max=200"`
	Album       string `json:"album"        validate:"max=200"`
	Duration    int    `json:"duration"     validate:"min=0,max=3600"`
	ReleaseYear int    `json:"release_year" validate:"omitempty,min=1900,max=2100"`
	Lyrics      string `json:"lyrics"       validate:"max=10000"`
	SpotifyURL  string `json:"spotify_url"  validate:"omitempty,url"`
	YoutubeURL  string `json:"youtube_url"  validate:"omitempty,url"`
	Order       int    `json:"order"        validate:"min=0"`
}

type songPatchRequest struct {
	Title       *string `json:"title"        validate:"omitempty,max=200"`
	Album       *string `json:"album"        validate:"omitempty,max=200"`
	Duration    *int    `json:"duration"     validate:"omitempty,min=0,max=3600"`
	ReleaseYear *int    `json:"release_year" validate:"omitempty,min=1900,max=2100"`
	Lyrics      *string `json:"lyrics"       validate:"omitempty,max=10000"`
	SpotifyURL  *string `json:"spotify_url"  validate:"omitempty,url"`
	YoutubeURL  *string `json:"youtube_url"  validate:"omitempty,url"`
	Order       *int    `json:"order"        validate:"omitempty,min=0"`
}

type galleryRequest struct {
	ImageURL    string `json:"image_url"   validate:"required,url"`
	PublicID    string `json:"public_id"   validate:"required,max=255"`
	Title       string `json:"title"       validate:"max=200"`
	Description string `json:"description" validate:"max=1000"`
}

type galleryPatchRequest struct {
	Title       *string `json:"title"       validate:"omitempty,max=200"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
}

type newsRequest struct {
	Title         string `json:"title"           validate:"required,min=3,max=200"`
	Content       string `json:"content"         validate:"required,max=20000"`
	Excerpt       string `json:"excerpt"         validate:"max=500"`
	ImageURL      string `json:"image_url"       validate:"omitempty,url"`
	ImagePublicID string `json:"image_public_id" validate:"max=255"`
	Published     bool   `json:"published"`
}

type newsPatchRequest struct {
	Title         *string `json:"title"           validate:"omitempty,min=3,max=200"`
	Content       *string `json:"content"         validate:"omitempty,max=20000"`
	Excerpt       *string `json:"excerpt"         validate:"omitempty,max=500"`
	ImageURL      *string `json:"image_url"       validate:"omitempty,url"`
	ImagePublicID *string `json:"image_public_id" validate:"omitempty,max=255"`
	Published     *bool   `json:"published"`
}

// --- Inbox ---

type contactRequest struct {
	Name    string `json:"name"    validate:"required,max=100"`
	Email   string `json:"email"   validate:"required,email"`
	Subject string `json:"subject" validate:"max=200"`
	Message string `json:"message" validate:"required,min=10,max=5000"`
}

type guestbookRequest struct {
	Name    string `json:"name"    validate:"max=100"`
	Message string `json:"message" validate:"required,min=2,max=1000"`
}

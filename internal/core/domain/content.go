package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Member is a band member shown on the line-up page.
type Member struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name          string             `json:"name" bson:"name"`
	Instrument    string             `json:"instrument" bson:"instrument"`
	Bio           string             `json:"bio,omitempty" bson:"bio,omitempty"`
	ImageURL      string             `json:"image_url,omitempty" bson:"image_url,omitempty"`
	ImagePublicID string             `json:"image_public_id,omitempty" bson:"image_public_id,omitempty"`
	Order         int                `json:"order" bson:"order"`
	Active        bool               `json:"active" bson:"active"`
	CreatedAt     time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at" bson:"updated_at"`
}

type MemberPatch struct {
	Name          *string `bson:"name,omitempty"`
	Instrument    *string `bson:"instrument,omitempty"`
	Bio           *string `bson:"bio,omitempty"`
	ImageURL      *string `bson:"image_url,omitempty"`
	ImagePublicID *string `bson:"image_public_id,omitempty"`
	Order         *int    `bson:"order,omitempty"`
	Active        *bool   `bson:"active,omitempty"`
}

// Gig is a concert date.
type Gig struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	Venue       string             `json:"venue" bson:"venue"`
	City        string             `json:"city" bson:"city"`
	Date        time.Time          `json:"date" bson:"date"`
	TicketURL   string             `json:"ticket_url,omitempty" bson:"ticket_url,omitempty"`
	Price       float64            `json:"price,omitempty" bson:"price,omitempty"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	SoldOut     bool               `json:"sold_out" bson:"sold_out"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updated_at"`
}

type GigPatch struct {
	Title       *string    `bson:"title,omitempty"`
	Venue       *string    `bson:"venue,omitempty"`
	City        *string    `bson:"city,omitempty"`
	Date        *time.Time `bson:"date,omitempty"`
	TicketURL   *string    `bson:"ticket_url,omitempty"`
	Price       *float64   `bson:"price,omitempty"`
	Description *string    `bson:"description,omitempty"`
	SoldOut     *bool      `bson:"sold_out,omitempty"`
}

// GigWindow selects gigs relative to now.
type GigWindow string

const (
	GigsUpcoming GigWindow = "upcoming"
	GigsPast     GigWindow = "past"
	GigsAll      GigWindow = "all"
)

// Song is an entry of the discography.
type Song struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	Album       string             `json:"album,omitempty" bson:"album,omitempty"`
	Duration    int                `json:"duration,omitempty" bson:"duration,omitempty"`
	ReleaseYear int                `json:"release_year,omitempty" bson:"release_year,omitempty"`
	Lyrics      string             `json:"lyrics,omitempty" bson:"lyrics,omitempty"`
	SpotifyURL  string             `json:"spotify_url,omitempty" bson:"spotify_url,omitempty"`
	YoutubeURL  string             `json:"youtube_url,omitempty" bson:"youtube_url,omitempty"`
	Order       int                `json:"order" bson:"order"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updated_at"`
}

type SongPatch struct {
	Title       *string `bson:"title,omitempty"`
	Album       *string `bson:"album,omitempty"`
	Duration    *int    `bson:"duration,omitempty"`
	ReleaseYear *int    `bson:"release_year,omitempty"`
	Lyrics      *string `bson:"lyrics,omitempty"`
	SpotifyURL  *string `bson:"spotify_url,omitempty"`
	YoutubeURL  *string `bson:"youtube_url,omitempty"`
	Order       *int    `bson:"order,omitempty"`
}

// GalleryImage is a photo hosted on the media host.
type GalleryImage struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title       string             `json:"title,omitempty" bson:"title,omitempty"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	ImageURL    string             `json:"image_url" bson:"image_url"`
	PublicID    string             `json:"public_id" bson:"public_id"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updated_at"`
}

type GalleryImagePatch struct {
	Title       *string `bson:"title,omitempty"`
	Description *string `bson:"description,omitempty"`
}

// NewsPost is a blog entry. Content holds markdown, ContentHTML the
// sanitized rendering of it.
type NewsPost struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title         string             `json:"title" bson:"title"`
	Slug          string             `json:"slug" bson:"slug"`
	Content       string             `json:"content" bson:"content"`
	ContentHTML   string             `json:"content_html" bson:"content_html"`
	Excerpt       string             `json:"excerpt,omitempty" bson:"excerpt,omitempty"`
	ImageURL      string             `json:"image_url,omitempty" bson:"image_url,omitempty"`
	ImagePublicID string             `json:"image_public_id,omitempty" bson:"image_public_id,omitempty"`
	Published     bool               `json:"published" bson:"published"`
	PublishedAt   *time.Time         `json:"published_at,omitempty" bson:"published_at,omitempty"`
	AuthorID      string             `json:"author_id" bson:"author_id"`
	CreatedAt     time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at" bson:"updated_at"`
}

type NewsPostPatch struct {
	Title         *string    `bson:"title,omitempty"`
	Slug          *string    `bson:"slug,omitempty"`
	Content       *string    `bson:"content,omitempty"`
	ContentHTML   *string    `bson:"content_html,omitempty"`
	Excerpt       *string    `bson:"excerpt,omitempty"`
	ImageURL      *string    `bson:"image_url,omitempty"`
	ImagePublicID *string    `bson:"image_public_id,omitempty"`
	Published     *bool      `bson:"published,omitempty"`
	PublishedAt   *time.Time `bson:"published_at,omitempty"`
}

// ContactMessage is a message sent through the public contact form.
type ContactMessage struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Email     string             `json:"email" bson:"email"`
	Subject   string             `json:"subject,omitempty" bson:"subject,omitempty"`
	Message   string             `json:"message" bson:"message"`
	Read      bool               `json:"read" bson:"read"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updated_at"`
}

// GuestbookEntry is shown publicly once a moderator approved it.
type GuestbookEntry struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Message   string             `json:"message" bson:"message"`
	UserID    string             `json:"user_id" bson:"user_id"`
	Approved  bool               `json:"approved" bson:"approved"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updated_at"`
}

// MediaAsset is a file stored on the media host.
type MediaAsset struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
	Width    int    `json:"width,omitempty"`
	Height   int    `json:"height,omitempty"`
	Format   string `json:"format,omitempty"`
	Bytes    int64  `json:"bytes,omitempty"`
}

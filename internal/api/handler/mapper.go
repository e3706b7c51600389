package handler

import (
	"github.com/bandsite/cms-api/internal/core/domain"
	"github.com/bandsite/cms-api/internal/core/ports"
)

// --- Request → domain ---

func (r memberRequest) toDomain() *domain.Member {
	active := true
	if r.Active != nil {
		active = *r.Active
	}
	return &domain.Member{
		Name:          r.Name,
		Instrument:    r.Instrument,
		Bio:           r.Bio,
		ImageURL:      r.ImageURL,
		ImagePublicID: r.ImagePublicID,
		Order:         r.Order,
		Active:        active,
	}
}

func (r memberPatchRequest) toPatch() domain.MemberPatch {
	return domain.MemberPatch{
		Name:          r.Name,
		Instrument:    r.Instrument,
		Bio:           r.Bio,
		ImageURL:      r.ImageURL,
		ImagePublicID: r.ImagePublicID,
		Order:         r.Order,
		Active:        r.Active,
	}
}

func (r gigRequest) toDomain() *domain.Gig {
	return &domain.Gig{
		Title:       r.Title,
		Venue:       r.Venue,
		City:        r.City,
		Date:        r.Date.UTC(),
		TicketURL:   r.TicketURL,
		Price:       r.Price,
		Description: r.Description,
		SoldOut:     r.SoldOut,
	}
}

func (r gigPatchRequest) toPatch() domain.GigPatch {
	p := domain.GigPatch{
		Title:       r.Title,
		Venue:       r.Venue,
		City:        r.City,
		TicketURL:   r.TicketURL,
		Price:       r.Price,
		Description: r.Description,
		SoldOut:     r.SoldOut,
	}
	if r.Date != nil {
		d := r.Date.UTC()
		p.Date = &d
	}
	return p
}

func (r songRequest) toDomain() *domain.Song {
	return &domain.Song{
		Title:       r.Title,
		Album:       r.Album,
		Duration:    r.Duration,
		ReleaseYear: r.ReleaseYear,
		Lyrics:      r.Lyrics,
		SpotifyURL:  r.SpotifyURL,
		YoutubeURL:  r.YoutubeURL,
		Order:       r.Order,
	}
}

func (r songPatchRequest) toPatch() domain.SongPatch {
	return domain.SongPatch{
		Title:       r.Title,
		Album:       r.Album,
		Duration:    r.Duration,
		ReleaseYear: r.ReleaseYear,
		Lyrics:      r.Lyrics,
		SpotifyURL:  r.SpotifyURL,
		YoutubeURL:  r.YoutubeURL,
		Order:       r.Order,
	}
}

func (r galleryRequest) toDomain() *domain.GalleryImage {
	return &domain.GalleryImage{
		Title:       r.Title,
		Description: r.Description,
		ImageURL:    r.ImageURL,
		PublicID:    r.PublicID,
	}
}

func (r galleryPatchRequest) toPatch() domain.GalleryImagePatch {
	return domain.GalleryImagePatch{Title: r.Title, Description: r.Description}
}

// --- Request → service input ---

func (r newsRequest) toInput() ports.NewsInput {
	return ports.NewsInput{
		Title:         r.Title,
		Content:       r.Content,
		Excerpt:       r.Excerpt,
		ImageURL:      r.ImageURL,
		ImagePublicID: r.ImagePublicID,
		Published:     r.Published,
	}
}

func (r newsPatchRequest) toUpdate() ports.NewsUpdate {
	return ports.NewsUpdate{
		Title:         r.Title,
		Content:       r.Content,
		Excerpt:       r.Excerpt,
		ImageURL:      r.ImageURL,
		ImagePublicID: r.ImagePublicID,
		Published:     r.Published,
	}
}

func (r contactRequest) toInput() ports.ContactInput {
	return ports.ContactInput{Name: r.Name, Email: r.Email, Subject: r.Subject, Message: r.Message}
}

func toSession(s *ports.Session) sessionResponse {
	return sessionResponse{Token: s.Token, ExpiresAt: s.ExpiresAt, User: s.User}
}

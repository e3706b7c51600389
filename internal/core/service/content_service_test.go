package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bandsite/cms-api/internal/core/domain"
	"github.com/bandsite/cms-api/internal/core/ports"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Neues Album: Über Nacht!": "neues-album-ueber-nacht",
		"Rock & Roll 2026":         "rock-und-roll-2026",
		"Café Größenwahn":          "cafe-groessenwahn",
		"  Straße   frei  ":        "strasse-frei",
		"!!!":                      "beitrag",
		"":                         "beitrag",
	}
	for in, want := range cases {
		if got := Slugify(in); got != want {
			t.Errorf("Slugify(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestTextProcessor(t *testing.T) {
	p := NewTextProcessor()

	if got := p.Plain("  <b>Hallo</b> Welt<script>alert(1)</script> "); got != "Hallo Welt" {
		t.Fatalf("Plain: got %q", got)
	}

	html, err := p.Markdown("# Tour\n\n[Tickets](https://example.com)\n\n<script>alert(1)</script>")
	if err != nil {
		t.Fatalf("Markdown: %v", err)
	}
	if !strings.Contains(html, "<h1>Tour</h1>") {
		t.Fatalf("expected heading, got %q", html)
	}
	if !strings.Contains(html, `rel="nofollow`) {
		t.Fatalf("expected nofollow link, got %q", html)
	}
	if strings.Contains(html, "<script") {
		t.Fatalf("script survived sanitizing: %q", html)
	}
}

func newTestNewsService() (*NewsService, *stubNewsRepo, *stubCleaner) {
	repo := newStubNewsRepo()
	cleaner := &stubCleaner{}
	svc := NewNewsService(repo, NewTextProcessor(), cleaner, zerolog.Nop())
	return svc, repo, cleaner
}

func TestNewsService_Create(t *testing.T) {
	svc, _, _ := newTestNewsService()
	fixed := time.Date(2026, 5, 1, 18, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }
	author := domain.Claim{Subject: "author-1", Role: domain.RoleAdmin}

	post, err := svc.Create(context.Background(), author, ports.NewsInput{
		Title:     "Neue Single draußen",
		Content:   "**Jetzt** hören",
		Excerpt:   "<i>kurz</i>",
		Published: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if post.Slug != "neue-single-draussen" {
		t.Fatalf("unexpected slug %q", post.Slug)
	}
	if !strings.Contains(post.ContentHTML, "<strong>Jetzt</strong>") {
		t.Fatalf("content not rendered: %q", post.ContentHTML)
	}
	if post.Excerpt != "kurz" {
		t.Fatalf("excerpt not stripped: %q", post.Excerpt)
	}
	if post.AuthorID != "author-1" {
		t.Fatalf("author not recorded: %q", post.AuthorID)
	}
	if post.PublishedAt == nil || !post.PublishedAt.Equal(fixed) {
		t.Fatalf("expected published_at %v, got %v", fixed, post.PublishedAt)
	}

	draft, err := svc.Create(context.Background(), author, ports.NewsInput{Title: "Entwurf", Content: "x"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if draft.PublishedAt != nil {
		t.Fatalf("draft must not carry published_at, got %v", draft.PublishedAt)
	}
}

func TestNewsService_Get_HidesDrafts(t *testing.T) {
	svc, _, _ := newTestNewsService()
	draft, err := svc.Create(context.Background(), domain.Claim{Subject: "a"}, ports.NewsInput{Title: "Geheim", Content: "x"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	for _, key := range []string{draft.Slug, draft.ID.Hex()} {
		if _, err := svc.Get(context.Background(), key, false); err != errNewsNotFound {
			t.Fatalf("%s: expected draft to be hidden, got %v", key, err)
		}
		got, err := svc.Get(context.Background(), key, true)
		if err != nil {
			t.Fatalf("%s: expected draft with includeDrafts, got %v", key, err)
		}
		if got.ID != draft.ID {
			t.Fatalf("%s: resolved wrong post", key)
		}
	}

	if _, err := svc.Get(context.Background(), primitive.NewObjectID().Hex(), true); err == nil {
		t.Fatal("expected error for unknown id")
	}
}

func TestNewsService_Update(t *testing.T) {
	svc, repo, cleaner := newTestNewsService()
	first := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return first }

	post, err := svc.Create(context.Background(), domain.Claim{Subject: "a"}, ports.NewsInput{
		Title:         "Entwurf",
		Content:       "x",
		ImagePublicID: "band/old",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	id := post.ID.Hex()

	title, content, published, image := "Tour 2026", "*neu*", true, "band/new"
	updated, err := svc.Update(context.Background(), id, ports.NewsUpdate{
		Title:         &title,
		Content:       &content,
		Published:     &published,
		ImagePublicID: &image,
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Slug != "tour-2026" {
		t.Fatalf("slug not regenerated: %q", updated.Slug)
	}
	if !strings.Contains(updated.ContentHTML, "<em>neu</em>") {
		t.Fatalf("content not re-rendered: %q", updated.ContentHTML)
	}
	if updated.PublishedAt == nil || !updated.PublishedAt.Equal(first) {
		t.Fatalf("expected first publication time, got %v", updated.PublishedAt)
	}
	if len(cleaner.ids) != 1 || cleaner.ids[0] != "band/old" {
		t.Fatalf("expected replaced image to be released, got %v", cleaner.ids)
	}

	// Publishing again keeps the original timestamp.
	svc.now = func() time.Time { return first.Add(48 * time.Hour) }
	again, err := svc.Update(context.Background(), id, ports.NewsUpdate{Published: &published})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if !again.PublishedAt.Equal(first) {
		t.Fatalf("published_at moved to %v", again.PublishedAt)
	}

	if err := svc.Delete(context.Background(), id); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if len(cleaner.ids) != 2 || cleaner.ids[1] != "band/new" {
		t.Fatalf("expected image released on delete, got %v", cleaner.ids)
	}
	if len(repo.docs) != 0 {
		t.Fatalf("post not deleted")
	}
}

func TestMemberService_ImageLifecycle(t *testing.T) {
	repo := newStubMemberRepo()
	cleaner := &stubCleaner{}
	svc := NewMemberService(repo, cleaner)
	fixed := time.Date(2026, 3, 3, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	m, err := svc.Create(context.Background(), &domain.Member{Name: "Kai", Instrument: "Drums", ImagePublicID: "band/kai-1"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if !m.CreatedAt.Equal(fixed) || !m.UpdatedAt.Equal(fixed) {
		t.Fatalf("timestamps not stamped: %v %v", m.CreatedAt, m.UpdatedAt)
	}
	id := m.ID.Hex()

	name := "Kai R."
	if _, err := svc.Update(context.Background(), id, domain.MemberPatch{Name: &name}); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	same := "band/kai-1"
	if _, err := svc.Update(context.Background(), id, domain.MemberPatch{ImagePublicID: &same}); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if len(cleaner.ids) != 0 {
		t.Fatalf("nothing should be released yet, got %v", cleaner.ids)
	}

	next := "band/kai-2"
	updated, err := svc.Update(context.Background(), id, domain.MemberPatch{ImagePublicID: &next})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.ImagePublicID != next || updated.Name != name {
		t.Fatalf("patch not applied: %+v", updated)
	}
	if len(cleaner.ids) != 1 || cleaner.ids[0] != "band/kai-1" {
		t.Fatalf("expected old image released, got %v", cleaner.ids)
	}

	if err := svc.Delete(context.Background(), id); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if len(cleaner.ids) != 2 || cleaner.ids[1] != next {
		t.Fatalf("expected current image released, got %v", cleaner.ids)
	}
	if err := svc.Delete(context.Background(), id); err == nil {
		t.Fatal("expected not found on second delete")
	}
}

type stubGigRepo struct {
	ports.GigRepository
	window domain.GigWindow
	now    time.Time
}

func (r *stubGigRepo) List(_ context.Context, window domain.GigWindow, now time.Time, page ports.Page) (*ports.List[domain.Gig], error) {
	r.window, r.now = window, now
	return ports.NewList[domain.Gig](nil, 0, page), nil
}

func TestGigService_List_Window(t *testing.T) {
	repo := &stubGigRepo{}
	svc := NewGigService(repo)
	berlin := time.FixedZone("CEST", 2*3600)
	svc.now = func() time.Time { return time.Date(2026, 7, 1, 20, 0, 0, 0, berlin) }

	if _, err := svc.List(context.Background(), "", ports.Page{}); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if repo.window != domain.GigsAll {
		t.Fatalf("empty window should mean all, got %q", repo.window)
	}
	if repo.now.Location() != time.UTC || repo.now.Hour() != 18 {
		t.Fatalf("expected now in UTC, got %v", repo.now)
	}

	if _, err := svc.List(context.Background(), domain.GigsPast, ports.Page{}); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if repo.window != domain.GigsPast {
		t.Fatalf("window not passed through, got %q", repo.window)
	}
}

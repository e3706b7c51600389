package handler

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bandsite/cms-api/internal/core/domain"
	"github.com/bandsite/cms-api/internal/core/ports"
)

type stubGigService struct {
	ports.GigService
	createFn func(ctx context.Context, g *domain.Gig) (*domain.Gig, error)
	updateFn func(ctx context.Context, id string, p domain.GigPatch) (*domain.Gig, error)
	listFn   func(ctx context.Context, w domain.GigWindow, p ports.Page) (*ports.List[domain.Gig], error)
}

func (s *stubGigService) Create(ctx context.Context, g *domain.Gig) (*domain.Gig, error) {
	return s.createFn(ctx, g)
}

func (s *stubGigService) Update(ctx context.Context, id string, p domain.GigPatch) (*domain.Gig, error) {
	return s.updateFn(ctx, id, p)
}

func (s *stubGigService) List(ctx context.Context, w domain.GigWindow, p ports.Page) (*ports.List[domain.Gig], error) {
	return s.listFn(ctx, w, p)
}

type stubNewsService struct {
	ports.NewsService
	getFn    func(ctx context.Context, idOrSlug string, includeDrafts bool) (*domain.NewsPost, error)
	createFn func(ctx context.Context, author domain.Claim, in ports.NewsInput) (*domain.NewsPost, error)
}

func (s *stubNewsService) Get(ctx context.Context, idOrSlug string, includeDrafts bool) (*domain.NewsPost, error) {
	return s.getFn(ctx, idOrSlug, includeDrafts)
}

func (s *stubNewsService) Create(ctx context.Context, author domain.Claim, in ports.NewsInput) (*domain.NewsPost, error) {
	return s.createFn(ctx, author, in)
}

func TestGigHandler_Create(t *testing.T) {
	stub := &stubGigService{createFn: func(_ context.Context, g *domain.Gig) (*domain.Gig, error) {
		assert.Equal(t, "Release Show", g.Title)
		assert.Equal(t, time.Date(2026, 11, 20, 19, 0, 0, 0, time.UTC), g.Date)
		assert.Equal(t, 25.5, g.Price)
		return g, nil
	}}
	body := `{"title":"Release Show","venue":"Lido","city":"Berlin","date":"2026-11-20T20:00:00+01:00","price":25.5}`
	c, rec := newJSONContext(http.MethodPost, "/api/gigs", body)

	require.NoError(t, NewGigHandler(stub).Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Release Show", decode(t, rec)["data"].(map[string]any)["title"])
}

func TestGigHandler_Create_Invalid(t *testing.T) {
	c, _ := newJSONContext(http.MethodPost, "/api/gigs", `{"title":"x","venue":"Lido","city":"Berlin","ticket_url":"nope","price":-1}`)

	err := NewGigHandler(&stubGigService{}).Create(c)

	var ve validator.ValidationErrors
	require.ErrorAs(t, err, &ve)
	fields := make([]string, 0, len(ve))
	for _, issue := range FieldIssues(ve) {
		fields = append(fields, issue.Field)
	}
	assert.Equal(t, []string{"date", "ticket_url", "price"}, fields)
}

func TestGigHandler_Update_OnlyPresentFields(t *testing.T) {
	stub := &stubGigService{updateFn: func(_ context.Context, id string, p domain.GigPatch) (*domain.Gig, error) {
		assert.Equal(t, "g1", id)
		require.NotNil(t, p.SoldOut)
		assert.True(t, *p.SoldOut)
		assert.Nil(t, p.Title)
		assert.Nil(t, p.Date)
		return &domain.Gig{SoldOut: true}, nil
	}}
	c, rec := newJSONContext(http.MethodPut, "/api/gigs/g1", `{"sold_out":true}`)
	c.SetParamNames("id")
	c.SetParamValues("g1")

	require.NoError(t, NewGigHandler(stub).Update(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGigHandler_List_Window(t *testing.T) {
	for _, when := range []string{"", "upcoming", "past", "all"} {
		t.Run(when, func(t *testing.T) {
			stub := &stubGigService{listFn: func(_ context.Context, w domain.GigWindow, p ports.Page) (*ports.List[domain.Gig], error) {
				assert.Equal(t, domain.GigWindow(when), w)
				assert.Equal(t, ports.Page{Page: 1, Limit: ports.DefaultPageLimit}, p)
				return ports.NewList[domain.Gig](nil, 0, p), nil
			}}
			c, rec := newJSONContext(http.MethodGet, "/api/gigs?when="+when, "")

			require.NoError(t, NewGigHandler(stub).List(c))
			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestNewsHandler_Get_HidesDrafts(t *testing.T) {
	stub := &stubNewsService{getFn: func(_ context.Context, idOrSlug string, includeDrafts bool) (*domain.NewsPost, error) {
		assert.Equal(t, "neues-album", idOrSlug)
		assert.False(t, includeDrafts)
		return &domain.NewsPost{Title: "Neues Album", Slug: idOrSlug, Published: true}, nil
	}}
	c, rec := newJSONContext(http.MethodGet, "/api/news/neues-album", "")
	c.SetParamNames("id")
	c.SetParamValues("neues-album")

	require.NoError(t, NewNewsHandler(stub).Get(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestNewsHandler_Create_UsesAuthor(t *testing.T) {
	author := domain.Claim{Subject: "a1", Email: "admin@band.de", Role: domain.RoleAdmin}
	stub := &stubNewsService{createFn: func(_ context.Context, got domain.Claim, in ports.NewsInput) (*domain.NewsPost, error) {
		assert.Equal(t, author, got)
		assert.Equal(t, "Tour 2026", in.Title)
		assert.True(t, in.Published)
		return &domain.NewsPost{Title: in.Title, Slug: "tour-2026", AuthorID: got.Subject}, nil
	}}
	c, rec := newJSONContext(http.MethodPost, "/api/news", `{"title":"Tour 2026","content":"**Bald!**","published":true}`)
	withClaim(c, author)

	require.NoError(t, NewNewsHandler(stub).Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestPageQuery(t *testing.T) {
	cases := []struct {
		query   string
		want    ports.Page
		wantErr bool
	}{
		{query: "", want: ports.Page{Page: 1, Limit: 20}},
		{query: "?page=3&limit=5", want: ports.Page{Page: 3, Limit: 5}},
		{query: "?page=0&limit=1000", want: ports.Page{Page: 1, Limit: ports.MaxPageLimit}},
		{query: "?limit=ten", wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.query, func(t *testing.T) {
			c, _ := newJSONContext(http.MethodGet, "/x"+tc.query, "")
			got, err := pageQuery(c)
			if tc.wantErr {
				var appErr *domain.Error
				require.ErrorAs(t, err, &appErr)
				assert.Equal(t, domain.KindBadRequest, appErr.Kind)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

var _ echo.Validator = NewValidator()

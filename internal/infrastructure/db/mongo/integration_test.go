//go:build integration

package mongo

import (
	"context"
	"errors"
	"log"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tcmongo "github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bandsite/cms-api/internal/core/domain"
	"github.com/bandsite/cms-api/internal/core/ports"
)

var testDB *mongo.Database

func TestMain(m *testing.M) {
	ctx := context.Background()

	container, err := tcmongo.Run(ctx, "mongo:7")
	if err != nil {
		log.Fatalf("failed to start container: %s", err)
	}
	uri, err := container.ConnectionString(ctx)
	if err != nil {
		log.Fatalf("failed to obtain connection string: %s", err)
	}

	client, db, err := Connect(ctx, Config{URI: uri, Database: "bandsite_test", AppName: "integration"})
	if err != nil {
		log.Fatalf("failed to connect to mongo container: %s", err)
	}
	if err := EnsureValidators(ctx, db); err != nil {
		log.Fatalf("validators: %s", err)
	}
	if err := EnsureIndexes(ctx, db); err != nil {
		log.Fatalf("indexes: %s", err)
	}
	testDB = db

	code := m.Run()

	if err := client.Disconnect(ctx); err != nil {
		log.Printf("failed to disconnect: %s", err)
	}
	if err := container.Terminate(ctx); err != nil {
		log.Printf("failed to terminate container: %s", err)
	}
	os.Exit(code)
}

func newUser(email string) *domain.User {
	now := time.Now().UTC()
	return &domain.User{Name: "Test", Email: email, PasswordHash: "x", Role: domain.RoleUser, CreatedAt: now, UpdatedAt: now}
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(testDB)

	require.NoError(t, repo.Create(ctx, newUser("dup@example.com")))
	err := repo.Create(ctx, newUser("dup@example.com"))
	require.Error(t, err)
	assert.True(t, mongo.IsDuplicateKeyError(err), "got %v", err)
}

func TestUserRepository_SchemaValidator(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(testDB)

	u := newUser("root@example.com")
	u.Role = "root"
	err := repo.Create(ctx, u)

	var we mongo.WriteException
	require.True(t, errors.As(err, &we), "got %v", err)
	require.NotEmpty(t, we.WriteErrors)
	assert.Equal(t, 121, we.WriteErrors[0].Code)
}

func TestUserRepository_InvalidID(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(testDB)

	for _, id := range []string{"abc", "zzzzzzzzzzzzzzzzzzzzzzzz"} {
		_, err := repo.FindByID(ctx, id)
		assert.ErrorIs(t, err, primitive.ErrInvalidHex, id)
		assert.ErrorIs(t, repo.Delete(ctx, id), primitive.ErrInvalidHex, id)
	}

	_, err := repo.FindByID(ctx, primitive.NewObjectID().Hex())
	assert.Equal(t, domain.ErrUserNotFound, err)
}

func TestUserRepository_RoleAndPassword(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(testDB)

	u := newUser("role@example.com")
	require.NoError(t, repo.Create(ctx, u))

	updated, err := repo.UpdateRole(ctx, u.ID.Hex(), domain.RoleMember)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleMember, updated.Role)
	assert.True(t, updated.UpdatedAt.After(u.UpdatedAt) || updated.UpdatedAt.Equal(u.UpdatedAt))

	require.NoError(t, repo.UpdatePassword(ctx, u.ID.Hex(), "new-hash"))
	found, err := repo.FindByEmail(ctx, "role@example.com")
	require.NoError(t, err)
	assert.Equal(t, "new-hash", found.PasswordHash)
}

func TestStore_PatchAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewMemberRepository(testDB)

	m := &domain.Member{Name: "Kai", Instrument: "Drums", Order: 2, Active: true}
	require.NoError(t, repo.Create(ctx, m))
	require.False(t, m.ID.IsZero())

	_, err := repo.Update(ctx, m.ID.Hex(), domain.MemberPatch{})
	assert.Equal(t, errEmptyUpdate, err)

	inactive, order := false, 0
	updated, err := repo.Update(ctx, m.ID.Hex(), domain.MemberPatch{Active: &inactive, Order: &order})
	require.NoError(t, err)
	assert.False(t, updated.Active)
	assert.Equal(t, 0, updated.Order)
	assert.Equal(t, "Drums", updated.Instrument)

	deleted, err := repo.Delete(ctx, m.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, "Kai", deleted.Name)

	_, err = repo.Delete(ctx, m.ID.Hex())
	var appErr *domain.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, domain.KindNotFound, appErr.Kind)
}

func TestGigRepository_Windows(t *testing.T) {
	ctx := context.Background()
	require.NoError(t, testDB.Collection(collectionGigs).Drop(ctx))
	repo := NewGigRepository(testDB)

	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	for i, offset := range []int{-2, -1, 1, 2} {
		g := &domain.Gig{Title: "Gig", Venue: "Halle", City: "Leipzig", Date: now.AddDate(0, 0, offset)}
		require.NoError(t, repo.Create(ctx, g), i)
	}

	upcoming, err := repo.List(ctx, domain.GigsUpcoming, now, ports.Page{})
	require.NoError(t, err)
	require.Len(t, upcoming.Items, 2)
	assert.True(t, upcoming.Items[0].Date.Before(upcoming.Items[1].Date), "upcoming ascending")

	past, err := repo.List(ctx, domain.GigsPast, now, ports.Page{})
	require.NoError(t, err)
	require.Len(t, past.Items, 2)
	assert.True(t, past.Items[0].Date.After(past.Items[1].Date), "past descending")

	all, err := repo.List(ctx, domain.GigsAll, now, ports.Page{Page: 2, Limit: 3})
	require.NoError(t, err)
	assert.Equal(t, int64(4), all.Total)
	assert.Equal(t, 2, all.TotalPages)
	assert.Len(t, all.Items, 1)
}

func TestNewsRepository_SlugAndDrafts(t *testing.T) {
	ctx := context.Background()
	require.NoError(t, testDB.Collection(collectionNews).DeleteMany(ctx, bson.M{}))
	repo := NewNewsRepository(testDB)

	now := time.Now().UTC()
	require.NoError(t, repo.Create(ctx, &domain.NewsPost{Title: "A", Slug: "a", Published: true, PublishedAt: &now}))
	require.NoError(t, repo.Create(ctx, &domain.NewsPost{Title: "B", Slug: "b"}))

	err := repo.Create(ctx, &domain.NewsPost{Title: "A", Slug: "a"})
	assert.True(t, mongo.IsDuplicateKeyError(err), "got %v", err)

	post, err := repo.FindBySlug(ctx, "b")
	require.NoError(t, err)
	assert.False(t, post.Published)

	published, err := repo.List(ctx, true, ports.Page{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), published.Total)

	all, err := repo.List(ctx, false, ports.Page{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), all.Total)
}

func TestInboxRepositories(t *testing.T) {
	ctx := context.Background()
	contact := NewContactRepository(testDB)
	guestbook := NewGuestbookRepository(testDB)

	msg := &domain.ContactMessage{Name: "Lea", Email: "lea@example.com", Message: "Hallo Band"}
	require.NoError(t, contact.Create(ctx, msg))
	read, err := contact.MarkRead(ctx, msg.ID.Hex())
	require.NoError(t, err)
	assert.True(t, read.Read)

	entry := &domain.GuestbookEntry{Name: "Fan", Message: "Super", UserID: "u1"}
	require.NoError(t, guestbook.Create(ctx, entry))
	approved, err := guestbook.Approve(ctx, entry.ID.Hex())
	require.NoError(t, err)
	assert.True(t, approved.Approved)

	list, err := guestbook.List(ctx, true, ports.Page{})
	require.NoError(t, err)
	assert.NotEmpty(t, list.Items)
}

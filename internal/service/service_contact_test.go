package service

import (
	"context"
	"testing"

	"github.com/akmalmp/go-contacts/internal/config"
	"github.com/akmalmp/go-contacts/internal/logger"
	"github.com/akmalmp/go-contacts/internal/store"
	"github.com/akmalmp/go-contacts/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContactService(repo *mockContactRepository) ContactService {
	return NewContactService(repo, config.App{PageSize: 10}, logger.Nop())
}

func TestContactCreate_Success(t *testing.T) {
	var persisted models.Contact
	repo := &mockContactRepository{
		createFn: func(_ context.Context, contact models.Contact) (models.Contact, error) {
			persisted = contact
			contact.ContactID = 1
			return contact, nil
		},
	}
	svc := newTestContactService(repo)

	created, err := svc.Create(context.Background(), models.User{UserID: 7}, models.ContactRequest{
		FirstName: "Akmal",
		LastName:  "Muhammad Pridianto",
		Email:     "akmal@gmail.com",
		Phone:     "12345678",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), created.ContactID)
	assert.Equal(t, int64(7), persisted.UserID, "contact must be owned by the authenticated user")
}

func TestContactCreate_EmptyFirstNameAndBadEmail(t *testing.T) {
	svc := newTestContactService(&mockContactRepository{})

	_, err := svc.Create(context.Background(), models.User{UserID: 7}, models.ContactRequest{
		FirstName: "",
		LastName:  "Muhammad Pridianto",
		Email:     "salah",
		Phone:     "12345678",
	})
	require.Error(t, err)

	var verrs models.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, []string{"The first name field is required."}, verrs["first_name"])
	assert.Equal(t, []string{"The email field must be a valid email address."}, verrs["email"])
}

func TestContactGet_PassesThroughNotFound(t *testing.T) {
	repo := &mockContactRepository{
		findFn: func(_ context.Context, _, _ int64) (models.Contact, error) {
			return models.Contact{}, store.ErrContactNotFound
		},
	}
	svc := newTestContactService(repo)

	_, err := svc.Get(context.Background(), models.User{UserID: 7}, 99)
	assert.ErrorIs(t, err, store.ErrContactNotFound)
}

func TestContactUpdate_FullOverwrite(t *testing.T) {
	var updated models.Contact
	repo := &mockContactRepository{
		updateFn: func(_ context.Context, contact models.Contact) (models.Contact, error) {
			updated = contact
			return contact, nil
		},
	}
	svc := newTestContactService(repo)

	// optional fields absent from the request become empty
	_, err := svc.Update(context.Background(), models.User{UserID: 7}, 3, models.ContactRequest{
		FirstName: "test2",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(3), updated.ContactID)
	assert.Equal(t, int64(7), updated.UserID)
	assert.Equal(t, "test2", updated.FirstName)
	assert.Empty(t, updated.LastName)
	assert.Empty(t, updated.Email)
	assert.Empty(t, updated.Phone)
}

func TestContactDelete_Scoped(t *testing.T) {
	var gotUserID, gotContactID int64
	repo := &mockContactRepository{
		deleteFn: func(_ context.Context, userID, contactID int64) error {
			gotUserID, gotContactID = userID, contactID
			return nil
		},
	}
	svc := newTestContactService(repo)

	require.NoError(t, svc.Delete(context.Background(), models.User{UserID: 7}, 3))
	assert.Equal(t, int64(7), gotUserID)
	assert.Equal(t, int64(3), gotContactID)
}

func TestContactSearch_DefaultPageSize(t *testing.T) {
	var gotPage models.PageRequest
	repo := &mockContactRepository{
		searchFn: func(_ context.Context, _ int64, _ models.ContactFilter, page models.PageRequest) ([]models.Contact, int64, error) {
			gotPage = page
			return []models.Contact{}, 0, nil
		},
	}
	svc := newTestContactService(repo)

	contacts, meta, err := svc.Search(context.Background(), models.User{UserID: 7}, models.ContactFilter{}, models.PageRequest{})
	require.NoError(t, err)

	assert.Equal(t, 1, gotPage.Page)
	assert.Equal(t, 10, gotPage.Size)
	assert.Empty(t, contacts)
	assert.Equal(t, int64(0), meta.Total)
	assert.Equal(t, 1, meta.CurrentPage)
}

func TestContactSearch_MetaComputation(t *testing.T) {
	repo := &mockContactRepository{
		searchFn: func(_ context.Context, _ int64, _ models.ContactFilter, page models.PageRequest) ([]models.Contact, int64, error) {
			rows := make([]models.Contact, page.Size)
			return rows, 23, nil
		},
	}
	svc := newTestContactService(repo)

	contacts, meta, err := svc.Search(context.Background(), models.User{UserID: 7},
		models.ContactFilter{Name: "first"}, models.PageRequest{Page: 2, Size: 5})
	require.NoError(t, err)

	assert.Len(t, contacts, 5)
	assert.Equal(t, int64(23), meta.Total)
	assert.Equal(t, 2, meta.CurrentPage)
	assert.Equal(t, 5, meta.Size)
	assert.Equal(t, int64(5), meta.TotalPage)
}

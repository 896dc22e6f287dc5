package service

import (
	"context"
	"errors"
	"testing"

	"beautycrm_backend/internal/accounts/repository"
	"beautycrm_backend/platform/apperr"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubReader struct {
	account     repository.Account
	contacts    []repository.Contact
	getErr      error
	contactsErr error
}

func (s stubReader) GetByID(context.Context, uuid.UUID) (repository.Account, error) {
	return s.account, s.getErr
}

func (s stubReader) ListContacts(context.Context, uuid.UUID) ([]repository.Contact, error) {
	return s.contacts, s.contactsErr
}

func TestGetReturnsAccountWithContacts(t *testing.T) {
	prospectID := uuid.New()
	id := uuid.New()
	svc := New(stubReader{
		account: repository.Account{ID: id, Name: "Glow Salon", AccountType: "Salon", City: "Ipoh", SourceProspectID: &prospectID},
		contacts: []repository.Contact{
			{ID: uuid.New(), AccountID: id, FirstName: "Mei", LastName: "Ling Tan"},
		},
	})

	resp, err := svc.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Glow Salon", resp.Name)
	assert.Equal(t, &prospectID, resp.SourceProspectID)
	require.Len(t, resp.Contacts, 1)
	assert.Equal(t, "Ling Tan", resp.Contacts[0].LastName)
}

func TestGetWithoutContactsReturnsEmptySlice(t *testing.T) {
	resp, err := New(stubReader{account: repository.Account{ID: uuid.New()}}).Get(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.NotNil(t, resp.Contacts)
	assert.Empty(t, resp.Contacts)
}

func TestGetMapsErrors(t *testing.T) {
	_, err := New(stubReader{getErr: repository.ErrNotFound}).Get(context.Background(), uuid.New())
	assert.True(t, apperr.Is(err, apperr.KindNotFound))

	_, err = New(stubReader{getErr: errors.New("conn reset")}).Get(context.Background(), uuid.New())
	assert.True(t, apperr.Is(err, apperr.KindInternal))

	_, err = New(stubReader{contactsErr: errors.New("conn reset")}).Get(context.Background(), uuid.New())
	assert.True(t, apperr.Is(err, apperr.KindInternal))
}

package persistence

import (
	"testing"

	"github.com/mkboutique/backend/internal/domain/partner"
	"github.com/mkboutique/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormClientRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormClientRepository(db)
	ctx := t.Context()
	s1 := seedSociete(t, db, "Un")
	s2 := seedSociete(t, db, "Deux")

	client, err := partner.NewClient(s1.ID, partner.ClientFields{
		NomClient:    "Bennani",
		PrenomClient: "Nadia",
		Telephone:    "0612345678",
		Email:        shared.StringPtr("Nadia@Example.com"),
	})
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, client))
	seedClient(t, db, s1.ID, "0600000001")

	t.Run("telephone uniqueness by scope", func(t *testing.T) {
		exists, err := repo.ExistsByTelephone(ctx, 0, "0612345678", 0)
		require.NoError(t, err)
		assert.True(t, exists, "global scope sees every societe")

		exists, err = repo.ExistsByTelephone(ctx, s2.ID, "0612345678", 0)
		require.NoError(t, err)
		assert.False(t, exists, "tenant scope only sees its own rows")

		exists, err = repo.ExistsByTelephone(ctx, s1.ID, "0612345678", client.ID)
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("email uniqueness is case-insensitive", func(t *testing.T) {
		exists, err := repo.ExistsByEmail(ctx, 0, "nadia@example.com", 0)
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("orders by nom then prenom", func(t *testing.T) {
		list, err := repo.FindAllForSociete(ctx, s1.ID, false)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "Alaoui", list[0].NomClient)
		assert.Equal(t, "Bennani", list[1].NomClient)
	})

	t.Run("cross-societe access is not found", func(t *testing.T) {
		_, err := repo.FindByIDForSociete(ctx, s2.ID, client.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.ErrorIs(t, repo.DeleteForSociete(ctx, s2.ID, client.ID), shared.ErrNotFound)
	})

	t.Run("CountReservations", func(t *testing.T) {
		count, err := repo.CountReservations(ctx, client.ID)
		require.NoError(t, err)
		assert.Zero(t, count)
	})
}

func TestGormClientRepository_TiedNamesKeepInsertionOrder(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormClientRepository(db)
	s := seedSociete(t, db, "Atelier")

	first := seedClient(t, db, s.ID, "0600000003")
	second := seedClient(t, db, s.ID, "0600000001")
	third := seedClient(t, db, s.ID, "0600000002")

	list, err := repo.FindAllForSociete(t.Context(), s.ID, false)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []int{first.ID, second.ID, third.ID}, []int{list[0].ID, list[1].ID, list[2].ID})
}

func TestGormClientRepository_UniqueIndexes(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormClientRepository(db)
	ctx := t.Context()
	s1 := seedSociete(t, db, "Un")
	s2 := seedSociete(t, db, "Deux")

	newClient := func(societeID int, telephone string, email *string) *partner.Client {
		c, err := partner.NewClient(societeID, partner.ClientFields{
			NomClient:    "Tazi",
			PrenomClient: "Imane",
			Telephone:    telephone,
			Email:        email,
		})
		require.NoError(t, err)
		return c
	}

	require.NoError(t, repo.Save(ctx, newClient(s1.ID, "0655555555", shared.StringPtr("imane@atelier.ma"))))

	t.Run("same telephone in the same societe", func(t *testing.T) {
		err := repo.Save(ctx, newClient(s1.ID, "0655555555", nil))
		assert.True(t, shared.HasCode(err, shared.CodeAlreadyExists))
	})

	t.Run("same email in the same societe", func(t *testing.T) {
		err := repo.Save(ctx, newClient(s1.ID, "0655555556", shared.StringPtr("imane@atelier.ma")))
		assert.True(t, shared.HasCode(err, shared.CodeAlreadyExists))
	})

	t.Run("another societe may reuse both", func(t *testing.T) {
		require.NoError(t, repo.Save(ctx, newClient(s2.ID, "0655555555", shared.StringPtr("imane@atelier.ma"))))
	})

	t.Run("clients without email do not collide", func(t *testing.T) {
		require.NoError(t, repo.Save(ctx, newClient(s1.ID, "0655555557", nil)))
		require.NoError(t, repo.Save(ctx, newClient(s1.ID, "0655555558", nil)))
	})
}

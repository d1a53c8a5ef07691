package accounts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/loginflow/internal/client/models"
	"github.com/dmitrijs2005/loginflow/internal/cryptox"
)

func TestBuildAccounts_DefaultSeed(t *testing.T) {
	accs, err := BuildAccounts(DefaultSeed())
	require.NoError(t, err)
	require.Len(t, accs, 2)

	assert.Equal(t, "admin", accs[0].Username)
	assert.True(t, cryptox.CheckPassword([]byte("password123"), accs[0].Salt, accs[0].Verifier))
	assert.False(t, cryptox.CheckPassword([]byte("test123"), accs[0].Salt, accs[0].Verifier))

	assert.Equal(t, "testuser", accs[1].Username)
	assert.True(t, cryptox.CheckPassword([]byte("test123"), accs[1].Salt, accs[1].Verifier))
}

func TestBuildAccounts_Rejects(t *testing.T) {
	u := func(id, name, email string) models.SeedAccount {
		return models.SeedAccount{User: models.User{ID: id, Username: name, Email: email}, Password: "pw"}
	}

	tests := []struct {
		name  string
		seeds []models.SeedAccount
	}{
		{"missing id", []models.SeedAccount{u("", "a", "")}},
		{"missing username", []models.SeedAccount{u("1", "", "")}},
		{"duplicate id", []models.SeedAccount{u("1", "a", ""), u("1", "b", "")}},
		{"duplicate username ignoring case", []models.SeedAccount{u("1", "Bob", ""), u("2", "bob", "")}},
		{"duplicate email ignoring case", []models.SeedAccount{u("1", "a", "X@y.z"), u("2", "b", "x@Y.z")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildAccounts(tt.seeds)
			assert.Error(t, err)
		})
	}
}

func TestBuildAccounts_EmptyEmailsDoNotCollide(t *testing.T) {
	seeds := []models.SeedAccount{
		{User: models.User{ID: "1", Username: "a"}},
		{User: models.User{ID: "2", Username: "b"}},
	}
	accs, err := BuildAccounts(seeds)
	require.NoError(t, err)
	assert.Len(t, accs, 2)
}

func TestFoldKey(t *testing.T) {
	assert.Equal(t, foldKey("admin"), foldKey("ADMIN"))
	assert.NotEqual(t, foldKey("admin"), foldKey("admin2"))
}

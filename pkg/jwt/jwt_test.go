package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/Inventario-multimarca/pkg/jwt"
)

func TestGenerateAndParse(t *testing.T) {
	id := pkgjwt.Identity{UserID: "u2", UserName: "Ana Manager", Role: "MANAGER", Brands: []string{"Yuteco", "Finca Don Rafa"}}
	tok, err := pkgjwt.Generate("s3cret", "test", 5, id)
	require.NoError(t, err)

	claims, err := pkgjwt.Parse("s3cret", tok)
	require.NoError(t, err)
	assert.Equal(t, "u2", claims.UserID)
	assert.Equal(t, "Ana Manager", claims.UserName)
	assert.Equal(t, "MANAGER", claims.Role)
	assert.Equal(t, []string{"Yuteco", "Finca Don Rafa"}, claims.Brands)
	assert.Equal(t, "test", claims.Issuer)
}

// Firma con otro secreto → error.
func TestParse_SecretoIncorrecto(t *testing.T) {
	tok, err := pkgjwt.Generate("a", "test", 5, pkgjwt.Identity{UserID: "u1", Role: "ADMIN"})
	require.NoError(t, err)
	_, err = pkgjwt.Parse("b", tok)
	assert.Error(t, err)
}

// Token expirado → error.
func TestParse_Expirado(t *testing.T) {
	tok, err := pkgjwt.Generate("a", "test", -1, pkgjwt.Identity{UserID: "u1", Role: "ADMIN"})
	require.NoError(t, err)
	_, err = pkgjwt.Parse("a", tok)
	assert.Error(t, err)
}

func TestGenerate_SinSecreto(t *testing.T) {
	_, err := pkgjwt.Generate("", "test", 5, pkgjwt.Identity{UserID: "u1"})
	assert.Error(t, err)
}

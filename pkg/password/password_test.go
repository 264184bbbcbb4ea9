package password_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dulceria/sweets-api/pkg/password"
)

// Dos hashes del mismo password difieren (salt fresco) pero ambos verifican.
func TestHash_SaltFrescoPorLlamada(t *testing.T) {
	h1, err := password.Hash("caramelo")
	require.NoError(t, err)
	h2, err := password.Hash("caramelo")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2, "cada hash debe llevar salt propio")
	assert.True(t, password.Verify("caramelo", h1))
	assert.True(t, password.Verify("caramelo", h2))
}

func TestVerify_PasswordIncorrecto(t *testing.T) {
	h, err := password.Hash("caramelo")
	require.NoError(t, err)

	assert.False(t, password.Verify("carameloX", h))
	assert.False(t, password.Verify("", h))
}

func TestHash_FormatoPHC(t *testing.T) {
	h, err := password.Hash("pw1")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(h, "$argon2id$v=19$m=65536,t=1,p=4$"),
		"el digest debe ir en formato PHC: %s", h)
	assert.NotContains(t, h, "pw1", "el texto plano nunca aparece en el digest")
}

// Verify devuelve false, nunca un panic ni error, ante digests malformados.
func TestVerify_DigestMalformado(t *testing.T) {
	casos := []string{
		"",
		"no-es-un-hash",
		"$argon2id$v=19$m=65536,t=1,p=4$salt",              // faltan partes
		"$argon2id$v=19$m=65536,t=1,p=4$!!!$AAAA",          // salt no base64
		"$argon2id$v=19$m=65536,t=1,p=4$AAAA$!!!",          // hash no base64
		"$argon2id$v=18$m=65536,t=1,p=4$AAAA$AAAA",         // versión distinta
		"$bcrypt$v=19$m=65536,t=1,p=4$AAAA$AAAA",           // otro esquema
		"$argon2id$v=19$m=abc,t=1,p=4$AAAA$AAAA",           // parámetros rotos
	}
	for _, digest := range casos {
		assert.False(t, password.Verify("caramelo", digest), "digest: %q", digest)
	}
}

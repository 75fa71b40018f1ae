package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/biblioteca-admin/internal/application/auth"
	"github.com/tu-usuario/biblioteca-admin/internal/domain"
)

func TestExtractProfile_Envelope(t *testing.T) {
	body := []byte(`{"success":true,"data":{"id":"u-1","name":"Carlos","email":"carlos@uni.edu","role":"user"}}`)

	profile, err := auth.ExtractProfile(body, "carlos@uni.edu")
	require.NoError(t, err)
	assert.Equal(t, "u-1", profile.ID)
	assert.Equal(t, "user", profile.Role)
}

func TestExtractProfile_EnvelopeRechazado(t *testing.T) {
	body := []byte(`{"success":false,"message":"credenciales inválidas"}`)

	_, err := auth.ExtractProfile(body, "carlos@uni.edu")
	assert.ErrorIs(t, err, domain.ErrCredencialesInvalidas,
		"un success=false explícito es rechazo, no forma desconocida")
}

func TestExtractProfile_PerfilCrudo(t *testing.T) {
	body := []byte(`{"id":"u-2","name":"Ana","email":"ana@uni.edu"}`)

	profile, err := auth.ExtractProfile(body, "ana@uni.edu")
	require.NoError(t, err)
	assert.Equal(t, "Ana", profile.Name)
}

func TestExtractProfile_ListaUsers(t *testing.T) {
	body := []byte(`{"Users":[
		{"id":"u-1","email":"otro@uni.edu"},
		{"id":"u-2","email":"Carlos@Uni.edu","name":"Carlos"}
	]}`)

	profile, err := auth.ExtractProfile(body, "carlos@uni.edu")
	require.NoError(t, err, "el email se compara sin distinguir mayúsculas")
	assert.Equal(t, "u-2", profile.ID)
}

func TestExtractProfile_ListaSinCoincidencia(t *testing.T) {
	body := []byte(`{"Users":[{"id":"u-1","email":"otro@uni.edu"}]}`)

	_, err := auth.ExtractProfile(body, "carlos@uni.edu")
	assert.ErrorIs(t, err, domain.ErrCredencialesInvalidas)
}

func TestExtractProfile_FormaDesconocida(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"objeto sin campos de perfil", `{"foo":"bar"}`},
		{"array crudo", `[1,2,3]`},
		{"no es json", `<html>error</html>`},
		{"vacío", ``},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := auth.ExtractProfile([]byte(tc.body), "carlos@uni.edu")
			assert.ErrorIs(t, err, domain.ErrRespuestaInvalida)
		})
	}
}

func TestLoginShapes_OrdenEstable(t *testing.T) {
	// El orden de los matchers es parte del contrato: envelope primero.
	require.Len(t, auth.LoginShapes, 3)
	assert.Equal(t, "envelope", auth.LoginShapes[0].Name)
	assert.Equal(t, "perfil", auth.LoginShapes[1].Name)
	assert.Equal(t, "lista", auth.LoginShapes[2].Name)
}

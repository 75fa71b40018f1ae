package auth_test

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/biblioteca-admin/internal/application/auth"
	"github.com/tu-usuario/biblioteca-admin/internal/domain"
	"github.com/tu-usuario/biblioteca-admin/internal/domain/entity"
	"github.com/tu-usuario/biblioteca-admin/internal/infrastructure/localstore"
	"github.com/tu-usuario/biblioteca-admin/pkg/logger"
)

// ──────────────────────────────────────────────
// Utilidades
// ──────────────────────────────────────────────

// redProhibida falla el test si alguien intenta salir a la red.
type redProhibida struct{ t *testing.T }

func (r redProhibida) RoundTrip(*http.Request) (*http.Response, error) {
	r.t.Fatal("se realizó una petición de red que no debía ocurrir")
	return nil, nil
}

func newFixture(t *testing.T, baseURL string, client *http.Client) (*auth.Service, *localstore.Credentials, *auth.Resolver) {
	t.Helper()
	roles := auth.NewResolver(bootstrapAdmin)
	creds := localstore.NewCredentials(localstore.NewMemoryStore(), roles.DefaultRoleFor, logger.Nop())
	svc := auth.NewService(creds, roles, baseURL, client, logger.Nop())
	return svc, creds, roles
}

// ──────────────────────────────────────────────
// Login del administrador de arranque
// ──────────────────────────────────────────────

func TestLogin_BootstrapAdminSinRed(t *testing.T) {
	client := &http.Client{Transport: redProhibida{t}}
	svc, creds, _ := newFixture(t, "http://backend.invalido", client)

	profile, err := svc.Login(context.Background(), bootstrapAdmin, "cualquier-secreto")
	require.NoError(t, err)

	assert.Equal(t, entity.RoleAdmin, profile.Role)
	assert.Equal(t, bootstrapAdmin, profile.Email)
	assert.NotEmpty(t, profile.ID)

	assert.True(t, creds.IsAuthenticated())
	assert.Equal(t, auth.StateAuthenticated, svc.State())
	assert.True(t, svc.View().IsAuthenticated)
}

func TestLogin_BootstrapAdminIgnoraMayusculas(t *testing.T) {
	client := &http.Client{Transport: redProhibida{t}}
	svc, _, _ := newFixture(t, "http://backend.invalido", client)

	profile, err := svc.Login(context.Background(), "Admin@Biblioteca.EDU", "x")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, profile.Role)
}

// ──────────────────────────────────────────────
// Login remoto
// ──────────────────────────────────────────────

func TestLogin_RemotoExitoso(t *testing.T) {
	var gotAuth, gotCT string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotCT = r.Header.Get("Content-Type")
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/login", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":{"id":"u-7","name":"Laura","email":"laura@uni.edu","role":"librarian"}}`))
	}))
	defer srv.Close()

	svc, creds, _ := newFixture(t, srv.URL, srv.Client())

	profile, err := svc.Login(context.Background(), "laura@uni.edu", "secreto")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleLibrarian, profile.Role)
	assert.True(t, creds.IsAuthenticated())

	wantBasic := "Basic " + base64.StdEncoding.EncodeToString([]byte("laura@uni.edu:secreto"))
	assert.Equal(t, wantBasic, gotAuth)
	assert.Equal(t, "application/json", gotCT)
}

func TestLogin_RemotoRechazado(t *testing.T) {
	cases := []struct {
		name    string
		handler http.HandlerFunc
		wantErr error
	}{
		{
			name: "HTTP 401",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
			},
			wantErr: domain.ErrCredencialesInvalidas,
		},
		{
			name: "envelope con success=false",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"success":false,"message":"no"}`))
			},
			wantErr: domain.ErrCredencialesInvalidas,
		},
		{
			name: "cuerpo irreconocible",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`<html>proxy caído</html>`))
			},
			wantErr: domain.ErrRespuestaInvalida,
		},
		{
			name: "HTTP 500",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			wantErr: domain.ErrRespuestaInvalida,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(tc.handler)
			defer srv.Close()

			svc, creds, _ := newFixture(t, srv.URL, srv.Client())

			_, err := svc.Login(context.Background(), "carlos@uni.edu", "malo")
			assert.ErrorIs(t, err, tc.wantErr)
			assert.False(t, creds.IsAuthenticated(),
				"un login fallido no debe dejar la sesión autenticada")
			assert.NotEqual(t, auth.StateAuthenticated, svc.State())
		})
	}
}

func TestLogin_ServidorInalcanzable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // cerrado a propósito

	svc, creds, _ := newFixture(t, srv.URL, &http.Client{})

	_, err := svc.Login(context.Background(), "carlos@uni.edu", "secreto")
	assert.ErrorIs(t, err, domain.ErrServidorNoDisponible)
	assert.False(t, creds.IsAuthenticated())
}

func TestLogin_EntradaVacia(t *testing.T) {
	svc, _, _ := newFixture(t, "http://backend.invalido", &http.Client{Transport: redProhibida{t}})

	_, err := svc.Login(context.Background(), "", "secreto")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.Login(context.Background(), "carlos@uni.edu", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────
// Cabeceras, logout y estado
// ──────────────────────────────────────────────

func TestHeaderBuilder_CicloLoginLogout(t *testing.T) {
	client := &http.Client{Transport: redProhibida{t}}
	svc, creds, roles := newFixture(t, "http://backend.invalido", client)
	headers := auth.NewHeaderBuilder(creds, roles)

	assert.Nil(t, headers.Build(), "sin sesión no hay cabeceras")

	_, err := svc.Login(context.Background(), bootstrapAdmin, "admin12345")
	require.NoError(t, err)

	h := headers.Build()
	require.NotNil(t, h)
	wantBasic := "Basic " + base64.StdEncoding.EncodeToString([]byte(bootstrapAdmin+":admin12345"))
	assert.Equal(t, wantBasic, h[auth.HeaderAuthorization])
	assert.Equal(t, entity.RoleAdmin, h[auth.HeaderRole])

	svc.Logout()
	assert.Nil(t, headers.Build(), "tras logout las cabeceras vuelven a ser nil")
	assert.Equal(t, auth.StateAnonymous, svc.State())
	assert.False(t, svc.View().IsAuthenticated)
}

func TestCheckStatus_Reconcilia(t *testing.T) {
	client := &http.Client{Transport: redProhibida{t}}
	svc, creds, _ := newFixture(t, "http://backend.invalido", client)

	// Sin credenciales: anónimo.
	view := svc.CheckStatus()
	assert.False(t, view.IsAuthenticated)
	assert.Equal(t, auth.StateAnonymous, svc.State())

	// Con credenciales persistidas por otra instancia del servicio.
	err := creds.Save("carlos@uni.edu", "secreto", &entity.User{
		ID: "u-2", Name: "Carlos", Email: "carlos@uni.edu", Role: entity.RoleUser,
	})
	require.NoError(t, err)

	view = svc.CheckStatus()
	assert.True(t, view.IsAuthenticated)
	require.NotNil(t, view.CurrentUser)
	assert.Equal(t, "Carlos", view.CurrentUser.Name)

	// Idempotente.
	again := svc.CheckStatus()
	assert.Equal(t, view, again)
}

func TestHasRole(t *testing.T) {
	client := &http.Client{Transport: redProhibida{t}}
	svc, _, _ := newFixture(t, "http://backend.invalido", client)

	assert.False(t, svc.HasRole(entity.RoleAdmin), "sin perfil nunca hay rol")

	_, err := svc.Login(context.Background(), bootstrapAdmin, "x")
	require.NoError(t, err)

	assert.True(t, svc.HasRole(entity.RoleAdmin))
	assert.True(t, svc.HasRole(entity.RoleLibrarian, entity.RoleAdmin))
	assert.False(t, svc.HasRole(entity.RoleLibrarian))
}

package http

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/biblioteca-admin/internal/domain/entity"
	"github.com/tu-usuario/biblioteca-admin/internal/infrastructure/memory"
	"github.com/tu-usuario/biblioteca-admin/pkg/logger"
)

// ──────────────────────────────────────────────
// Utilidades
// ──────────────────────────────────────────────

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	repos := memory.NewRepos()
	require.NoError(t, repos.SeedDemo())

	app := fiber.New()
	err := Router(app, RouterDeps{
		Users:      repos.Users,
		Books:      repos.Books,
		Categories: repos.Categories,
		Borrows:    repos.Borrows,
		UploadDir:  t.TempDir(),
		Log:        logger.Nop(),
	})
	require.NoError(t, err)
	return app
}

func basicHeader(email, password string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(email+":"+password))
}

// newMultipart escribe un formulario multipart con un único archivo en buf y
// devuelve el Content-Type resultante.
func newMultipart(t *testing.T, buf *bytes.Buffer, field, filename, content string) string {
	t.Helper()
	w := multipart.NewWriter(buf)
	part, err := w.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = io.WriteString(part, content)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return w.FormDataContentType()
}

// envelopeBody es la forma decodificada de las respuestas del stub.
type envelopeBody struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Total   int             `json:"total"`
	Message string          `json:"message"`
}

func doReq(t *testing.T, app *fiber.App, method, path, auth string, body any) (int, envelopeBody) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelopeBody
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 && json.Valid(raw) {
		_ = json.Unmarshal(raw, &env)
	}
	return resp.StatusCode, env
}

// ──────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────

func TestLogin_ConCuerpoJSON(t *testing.T) {
	app := newTestApp(t)

	status, env := doReq(t, app, fiber.MethodPost, "/api/auth/login", "",
		map[string]string{"email": "carlos@uni.edu", "password": "estudiante123"})

	require.Equal(t, http.StatusOK, status)
	assert.True(t, env.Success)

	var u entity.User
	require.NoError(t, json.Unmarshal(env.Data, &u))
	assert.Equal(t, "carlos@uni.edu", u.Email)
	assert.Equal(t, entity.RoleUser, u.Role)
	assert.NotContains(t, string(env.Data), "password",
		"el hash de la contraseña nunca viaja en la respuesta")
}

func TestLogin_ConCabeceraBasic(t *testing.T) {
	app := newTestApp(t)

	status, env := doReq(t, app, fiber.MethodPost, "/api/auth/login",
		basicHeader("laura@biblioteca.edu", "bibliotecaria1"), nil)

	require.Equal(t, http.StatusOK, status)
	assert.True(t, env.Success)
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	app := newTestApp(t)

	status, env := doReq(t, app, fiber.MethodPost, "/api/auth/login", "",
		map[string]string{"email": "carlos@uni.edu", "password": "equivocada"})

	assert.Equal(t, http.StatusUnauthorized, status)
	assert.False(t, env.Success)
}

func TestLogin_SinCredenciales(t *testing.T) {
	app := newTestApp(t)

	status, env := doReq(t, app, fiber.MethodPost, "/api/auth/login", "", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.False(t, env.Success)
}

// ──────────────────────────────────────────────
// Autorización por rol
// ──────────────────────────────────────────────

func TestBooks_RequierenSesion(t *testing.T) {
	app := newTestApp(t)

	status, _ := doReq(t, app, fiber.MethodGet, "/api/books", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestBooks_ListadoConRolUser(t *testing.T) {
	app := newTestApp(t)

	status, env := doReq(t, app, fiber.MethodGet, "/api/books",
		basicHeader("carlos@uni.edu", "estudiante123"), nil)

	require.Equal(t, http.StatusOK, status)
	assert.True(t, env.Success)
	assert.Equal(t, 2, env.Total)
}

func TestBooks_CrearRequiereStaff(t *testing.T) {
	app := newTestApp(t)
	payload := map[string]any{"title": "Rayuela", "author": "Julio Cortázar", "copies_total": 2}

	status, _ := doReq(t, app, fiber.MethodPost, "/api/books",
		basicHeader("carlos@uni.edu", "estudiante123"), payload)
	assert.Equal(t, http.StatusForbidden, status, "un lector no puede crear libros")

	status, env := doReq(t, app, fiber.MethodPost, "/api/books",
		basicHeader("laura@biblioteca.edu", "bibliotecaria1"), payload)
	require.Equal(t, http.StatusCreated, status)
	assert.True(t, env.Success)

	var book entity.Book
	require.NoError(t, json.Unmarshal(env.Data, &book))
	assert.Equal(t, 2, book.CopiesAvailable, "las copias disponibles arrancan en el total")
}

func TestUsers_SoloAdmin(t *testing.T) {
	app := newTestApp(t)

	status, _ := doReq(t, app, fiber.MethodGet, "/api/users",
		basicHeader("laura@biblioteca.edu", "bibliotecaria1"), nil)
	assert.Equal(t, http.StatusForbidden, status, "la gestión de usuarios es solo admin")

	status, env := doReq(t, app, fiber.MethodGet, "/api/users",
		basicHeader("admin@biblioteca.edu", "admin12345"), nil)
	require.Equal(t, http.StatusOK, status)
	assert.True(t, env.Success)
	assert.Equal(t, 4, env.Total)
	assert.NotContains(t, string(env.Data), "password")
}

func TestPistaDeRolNoEleva(t *testing.T) {
	app := newTestApp(t)

	// El rol efectivo sale del registro del servidor, no de la cabecera.
	req := httptest.NewRequest(fiber.MethodGet, "/api/users", nil)
	req.Header.Set("Authorization", basicHeader("carlos@uni.edu", "estudiante123"))
	req.Header.Set("X-User-Role", entity.RoleAdmin)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

// ──────────────────────────────────────────────
// Préstamos y dashboard
// ──────────────────────────────────────────────

func TestBorrows_CicloDevolucion(t *testing.T) {
	app := newTestApp(t)
	staff := basicHeader("laura@biblioteca.edu", "bibliotecaria1")

	status, env := doReq(t, app, fiber.MethodGet, "/api/borrows", staff, nil)
	require.Equal(t, http.StatusOK, status)

	var borrows []entity.Borrow
	require.NoError(t, json.Unmarshal(env.Data, &borrows))
	require.Len(t, borrows, 1)
	id := borrows[0].ID

	status, env = doReq(t, app, fiber.MethodPost, "/api/borrows/"+id+"/return", staff, nil)
	require.Equal(t, http.StatusOK, status)
	assert.True(t, env.Success)

	// Devolver dos veces es conflicto.
	status, env = doReq(t, app, fiber.MethodPost, "/api/borrows/"+id+"/return", staff, nil)
	assert.Equal(t, http.StatusConflict, status)
	assert.False(t, env.Success)
}

func TestBorrows_SinEjemplaresDisponibles(t *testing.T) {
	app := newTestApp(t)
	staff := basicHeader("laura@biblioteca.edu", "bibliotecaria1")

	// Localizar a Ana y un libro con una sola copia libre tras agotarlo.
	_, env := doReq(t, app, fiber.MethodGet, "/api/users",
		basicHeader("admin@biblioteca.edu", "admin12345"), nil)
	var users []entity.User
	require.NoError(t, json.Unmarshal(env.Data, &users))
	var anaID string
	for _, u := range users {
		if u.Email == "ana@uni.edu" {
			anaID = u.ID
		}
	}
	require.NotEmpty(t, anaID)

	_, env = doReq(t, app, fiber.MethodGet, "/api/books", staff, nil)
	var books []entity.Book
	require.NoError(t, json.Unmarshal(env.Data, &books))
	var bookID string
	for _, b := range books {
		if b.Title == "Cosmos" {
			bookID = b.ID
		}
	}
	require.NotEmpty(t, bookID)

	payload := map[string]any{"user_id": anaID, "book_id": bookID}
	for i := 0; i < 2; i++ {
		status, _ := doReq(t, app, fiber.MethodPost, "/api/borrows", staff, payload)
		require.Equal(t, http.StatusCreated, status)
	}

	status, env := doReq(t, app, fiber.MethodPost, "/api/borrows", staff, payload)
	assert.Equal(t, http.StatusConflict, status)
	assert.False(t, env.Success)
}

func TestDashboard_Resumen(t *testing.T) {
	app := newTestApp(t)

	status, env := doReq(t, app, fiber.MethodGet, "/api/dashboard",
		basicHeader("carlos@uni.edu", "estudiante123"), nil)
	require.Equal(t, http.StatusOK, status)
	require.True(t, env.Success)

	var summary struct {
		Books         int `json:"books"`
		Categories    int `json:"categories"`
		Users         int `json:"users"`
		ActiveBorrows int `json:"active_borrows"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &summary))
	assert.Equal(t, 2, summary.Books)
	assert.Equal(t, 2, summary.Categories)
	assert.Equal(t, 4, summary.Users)
	assert.Equal(t, 1, summary.ActiveBorrows)
}

func TestUpload_GuardaArchivo(t *testing.T) {
	app := newTestApp(t)

	var buf bytes.Buffer
	w := newMultipart(t, &buf, "file", "portada.jpg", "bytes-de-imagen")

	req := httptest.NewRequest(fiber.MethodPost, "/api/uploads", &buf)
	req.Header.Set("Content-Type", w)
	req.Header.Set("Authorization", basicHeader("laura@biblioteca.edu", "bibliotecaria1"))

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var env envelopeBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	require.True(t, env.Success)

	var out struct {
		Path string `json:"path"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &out))
	assert.True(t, strings.HasPrefix(out.Path, "/uploads/"))
	assert.True(t, strings.HasSuffix(out.Path, ".jpg"))
}

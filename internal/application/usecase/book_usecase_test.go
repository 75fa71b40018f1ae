package usecase_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/biblioteca-admin/internal/application/dto"
	"github.com/tu-usuario/biblioteca-admin/internal/application/usecase"
	"github.com/tu-usuario/biblioteca-admin/internal/domain"
	"github.com/tu-usuario/biblioteca-admin/internal/infrastructure/rest"
	"github.com/tu-usuario/biblioteca-admin/pkg/logger"
	"github.com/tu-usuario/biblioteca-admin/pkg/validation"
)

type sinCabeceras struct{}

func (sinCabeceras) Build() map[string]string { return nil }

func newBookUC(t *testing.T, handler http.HandlerFunc) *usecase.BookUseCase {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	api := rest.New(srv.URL, sinCabeceras{}, srv.Client(), "es", logger.Nop())
	return usecase.NewBookUseCase(api, validation.New())
}

func TestBookList_DecodificaEnvelope(t *testing.T) {
	uc := newBookUC(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/books", r.URL.Path)
		require.Equal(t, "20", r.URL.Query().Get("limit"))
		_, _ = w.Write([]byte(`{"success":true,"data":[
			{"id":"b-1","title":"Cosmos","author":"Carl Sagan","copies_total":3,"copies_available":2},
			{"id":"b-2","title":"Cien años de soledad","author":"G. García Márquez","copies_total":2,"copies_available":2}
		],"total":12}`))
	})

	books, total, err := uc.List(context.Background(), dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, books, 2)
	assert.Equal(t, 12, total)
	assert.Equal(t, "Cosmos", books[0].Title)
}

func TestBookList_ArraySinEnvelope(t *testing.T) {
	uc := newBookUC(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id":"b-1","title":"Cosmos"}]`))
	})

	books, total, err := uc.List(context.Background(), dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, books, 1)
	assert.Equal(t, 1, total)
}

func TestBookCreate_ValidaAntesDeEnviar(t *testing.T) {
	uc := newBookUC(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("una entrada inválida no debe llegar al servidor")
	})

	_, err := uc.Create(context.Background(), dto.CreateBookRequest{Title: "Sin autor"})
	assert.Error(t, err)
}

func TestBookCreate_Exitoso(t *testing.T) {
	uc := newBookUC(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"success":true,"data":{"id":"b-9","title":"Cosmos","author":"Carl Sagan","copies_total":3,"copies_available":3}}`))
	})

	book, err := uc.Create(context.Background(), dto.CreateBookRequest{
		Title: "Cosmos", Author: "Carl Sagan", CopiesTotal: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, "b-9", book.ID)
	assert.Equal(t, 3, book.CopiesAvailable)
}

func TestBookGet_AccesoDenegado(t *testing.T) {
	uc := newBookUC(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	_, err := uc.Get(context.Background(), "b-1")
	assert.ErrorIs(t, err, domain.ErrAccesoDenegado,
		"el caso de uso traduce 401/403 pero nunca cierra la sesión")
}

func TestBookDelete_MensajeDelServidor(t *testing.T) {
	uc := newBookUC(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"success":false,"message":"el libro tiene préstamos activos"}`))
	})

	err := uc.Delete(context.Background(), "b-1")
	require.Error(t, err)
	assert.EqualError(t, err, "el libro tiene préstamos activos")
}

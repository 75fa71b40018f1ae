package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/biblioteca-admin/internal/application/auth"
	"github.com/tu-usuario/biblioteca-admin/internal/domain/entity"
)

const bootstrapAdmin = "admin@biblioteca.edu"

func TestDefaultRoleFor(t *testing.T) {
	r := auth.NewResolver(bootstrapAdmin)

	cases := []struct {
		name      string
		principal string
		want      string
	}{
		{"cuenta de arranque", "admin@biblioteca.edu", entity.RoleAdmin},
		{"cuenta de arranque con mayúsculas", "Admin@Biblioteca.edu", entity.RoleAdmin},
		{"usuario cualquiera", "carlos@uni.edu", entity.RoleUser},
		{"principal vacío", "", entity.RoleUser},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, r.DefaultRoleFor(tc.principal))
		})
	}
}

func TestResolve(t *testing.T) {
	r := auth.NewResolver(bootstrapAdmin)

	t.Run("rol explícito válido gana", func(t *testing.T) {
		got := r.Resolve(&entity.User{Role: entity.RoleLibrarian}, "carlos@uni.edu")
		assert.Equal(t, entity.RoleLibrarian, got)
	})

	t.Run("rol inválido cae al por defecto", func(t *testing.T) {
		got := r.Resolve(&entity.User{Role: "superuser"}, "carlos@uni.edu")
		assert.Equal(t, entity.RoleUser, got)
	})

	t.Run("perfil nil cae al por defecto", func(t *testing.T) {
		assert.Equal(t, entity.RoleAdmin, r.Resolve(nil, bootstrapAdmin))
		assert.Equal(t, entity.RoleUser, r.Resolve(nil, "otro@uni.edu"))
	})
}

func TestResolver_SinBootstrapConfigurado(t *testing.T) {
	r := auth.NewResolver("")
	// Sin cuenta de arranque configurada, nadie es admin implícito.
	assert.False(t, r.IsBootstrapAdmin(""))
	assert.Equal(t, entity.RoleUser, r.DefaultRoleFor("admin@biblioteca.edu"))
}

package http

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseBasic(t *testing.T) {
	encode := func(s string) string {
		return "Basic " + base64.StdEncoding.EncodeToString([]byte(s))
	}

	cases := []struct {
		name         string
		header       string
		wantEmail    string
		wantPassword string
		wantOK       bool
	}{
		{"credencial válida", encode("carlos@uni.edu:secreto"), "carlos@uni.edu", "secreto", true},
		{"esquema en minúsculas", "basic " + base64.StdEncoding.EncodeToString([]byte("a@b.c:x")), "a@b.c", "x", true},
		{"contraseña con dos puntos", encode("a@b.c:cla:ve"), "a@b.c", "cla:ve", true},
		{"contraseña vacía", encode("a@b.c:"), "a@b.c", "", true},
		{"sin cabecera", "", "", "", false},
		{"esquema distinto", "Bearer abc123", "", "", false},
		{"base64 inválido", "Basic ???", "", "", false},
		{"sin separador", encode("sin-dos-puntos"), "", "", false},
		{"email vacío", encode(":secreto"), "", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			email, password, ok := parseBasic(tc.header)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.wantEmail, email)
			assert.Equal(t, tc.wantPassword, password)
		})
	}
}

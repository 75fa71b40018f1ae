package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/tu-usuario/biblioteca-admin/internal/domain"
	"github.com/tu-usuario/biblioteca-admin/internal/domain/entity"
	"github.com/tu-usuario/biblioteca-admin/internal/infrastructure/localstore"
	"github.com/tu-usuario/biblioteca-admin/pkg/logger"
)

// State estados del servicio de sesión.
type State int

const (
	StateUnknown State = iota
	StateChecking
	StateAuthenticated
	StateAnonymous
)

// String para logs.
func (s State) String() string {
	switch s {
	case StateChecking:
		return "checking"
	case StateAuthenticated:
		return "authenticated"
	case StateAnonymous:
		return "anonymous"
	default:
		return "unknown"
	}
}

// View es la proyección en memoria expuesta al resto de la aplicación.
// No se persiste: se recalcula del registro de credenciales en cada chequeo.
type View struct {
	IsAuthenticated bool
	CurrentUser     *entity.User
	Loading         bool
}

// Service orquesta login, logout y refresco de estado de la sesión.
// Es el único escritor de la proyección View; nunca muta credenciales
// almacenadas salvo a través del registro de credenciales.
//
// Una segunda llamada concurrente a Login no está protegida: la última
// escritura al almacén gana (comportamiento preservado).
type Service struct {
	creds      *localstore.Credentials
	roles      *Resolver
	httpClient *http.Client
	baseURL    string
	log        *logger.Logger

	state State
	view  View
}

// NewService construye el servicio de sesión. httpClient nil usa el cliente
// por defecto del transporte (sin timeout propio, comportamiento preservado).
func NewService(creds *localstore.Credentials, roles *Resolver, baseURL string, httpClient *http.Client, log *logger.Logger) *Service {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		creds:      creds,
		roles:      roles,
		httpClient: httpClient,
		baseURL:    baseURL,
		log:        log,
		state:      StateUnknown,
	}
}

// State devuelve el estado actual.
func (s *Service) State() State { return s.state }

// View devuelve la proyección actual.
func (s *Service) View() View { return s.view }

// CheckStatus reconcilia la proyección con el almacén local. No hace I/O de
// red; es idempotente y seguro de llamar en cada montaje de vista protegida.
func (s *Service) CheckStatus() View {
	s.state = StateChecking
	s.view.Loading = true

	if s.creds.IsAuthenticated() {
		profile := s.creds.CurrentProfile()
		if profile != nil {
			profile.Role = s.roles.Resolve(profile, s.creds.Principal())
			s.view = View{IsAuthenticated: true, CurrentUser: profile}
			s.state = StateAuthenticated
			return s.view
		}
	}

	s.view = View{}
	s.state = StateAnonymous
	return s.view
}

// Login autentica al principal. La cuenta de administrador de arranque se
// resuelve localmente sin ronda de red (atajo heredado de la consola
// original); el resto va contra POST /auth/login con cabecera Basic y
// cuerpo {email, password}.
func (s *Service) Login(ctx context.Context, principal, secret string) (*entity.User, error) {
	if principal == "" || secret == "" {
		return nil, domain.ErrInvalidInput
	}

	if s.roles.IsBootstrapAdmin(principal) {
		profile := &entity.User{
			ID:    uuid.New().String(),
			Name:  "Administrador",
			Email: principal,
			Role:  entity.RoleAdmin,
		}
		return s.finishLogin(principal, secret, profile)
	}

	profile, err := s.remoteLogin(ctx, principal, secret)
	if err != nil {
		return nil, err
	}
	return s.finishLogin(principal, secret, profile)
}

// remoteLogin realiza exactamente una petición al endpoint de autenticación.
func (s *Service) remoteLogin(ctx context.Context, principal, secret string) (*entity.User, error) {
	payload, err := json.Marshal(map[string]string{
		"email":    principal,
		"password": secret,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/auth/login", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(HeaderAuthorization, BasicCredential(principal, secret))

	resp, err := s.httpClient.Do(req)
	if err != nil {
		s.log.Warn().Err(err).Msg("login: backend inalcanzable")
		return nil, fmt.Errorf("%w: %v", domain.ErrServidorNoDisponible, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, domain.ErrCredencialesInvalidas
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: HTTP %d", domain.ErrRespuestaInvalida, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrServidorNoDisponible, err)
	}
	return ExtractProfile(body, principal)
}

// finishLogin aplica el rol por defecto si hace falta, persiste y transiciona.
func (s *Service) finishLogin(principal, secret string, profile *entity.User) (*entity.User, error) {
	profile.Role = s.roles.Resolve(profile, principal)
	if err := s.creds.Save(principal, secret, profile); err != nil {
		return nil, err
	}
	s.view = View{IsAuthenticated: true, CurrentUser: profile}
	s.state = StateAuthenticated
	s.log.Info().Str("principal", principal).Str("role", profile.Role).Msg("sesión iniciada")
	return profile, nil
}

// Logout limpia el almacén y transiciona a anónimo. La navegación posterior
// (volver a la vista de login) es responsabilidad del llamador.
func (s *Service) Logout() {
	s.creds.Clear()
	s.view = View{}
	s.state = StateAnonymous
	s.log.Info().Msg("sesión cerrada")
}

// HasRole indica si el rol resuelto del perfil actual está entre roles.
// Devuelve false (nunca falla) si no hay perfil cargado.
func (s *Service) HasRole(roles ...string) bool {
	profile := s.view.CurrentUser
	if profile == nil {
		profile = s.creds.CurrentProfile()
	}
	if profile == nil {
		return false
	}
	resolved := s.roles.Resolve(profile, s.creds.Principal())
	for _, r := range roles {
		if r == resolved {
			return true
		}
	}
	return false
}

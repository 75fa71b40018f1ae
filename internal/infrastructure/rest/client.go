// Package rest implementa el cliente genérico de recursos: toda operación de
// datos de la consola pasa por aquí, adjunta las cabeceras de autorización y
// normaliza las respuestas heterogéneas del backend al envelope uniforme
// {success, data, total, message}.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"

	"golang.org/x/text/message"

	"github.com/tu-usuario/biblioteca-admin/pkg/i18n"
	"github.com/tu-usuario/biblioteca-admin/pkg/logger"
)

// Envelope es la forma uniforme a la que se normaliza toda respuesta.
type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Total   int             `json:"total,omitempty"`
	Message string          `json:"message,omitempty"`

	// Status es el código HTTP observado (0 si la petición no llegó a
	// completarse). No viaja en JSON; lo usan los llamadores para distinguir
	// un 401/403 de otros fallos.
	Status int `json:"-"`
}

// HeaderSource entrega las cabeceras de autorización por petición, o nil si
// no hay sesión (en cuyo caso la petición sale anónima y el servidor decide).
type HeaderSource interface {
	Build() map[string]string
}

// Client cliente REST genérico. No implementa reintentos ni timeout propio
// (hereda los del transporte) y nunca dispara logout ni redirecciones: un
// 401/403 se devuelve al llamador como envelope fallido.
type Client struct {
	baseURL    string
	httpClient *http.Client
	headers    HeaderSource
	msgs       *message.Printer
	log        *logger.Logger
}

// New construye el cliente. httpClient nil usa un *http.Client vacío;
// locale vacío cae al español.
func New(baseURL string, headers HeaderSource, httpClient *http.Client, locale string, log *logger.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		headers:    headers,
		msgs:       i18n.NewPrinter(locale),
		log:        log,
	}
}

// GetAll lista un recurso: GET /<resource>?<query>.
func (c *Client) GetAll(ctx context.Context, resource string, query url.Values) Envelope {
	path := "/" + resource
	if len(query) > 0 {
		path += "?" + query.Encode()
	}
	return c.do(ctx, http.MethodGet, path, "", nil)
}

// GetByID obtiene un recurso: GET /<resource>/<id>.
func (c *Client) GetByID(ctx context.Context, resource, id string) Envelope {
	return c.do(ctx, http.MethodGet, "/"+resource+"/"+url.PathEscape(id), "", nil)
}

// Create crea un recurso: POST /<resource>.
func (c *Client) Create(ctx context.Context, resource string, payload any) Envelope {
	return c.doJSON(ctx, http.MethodPost, "/"+resource, payload)
}

// Update actualiza un recurso: PUT /<resource>/<id>.
func (c *Client) Update(ctx context.Context, resource, id string, payload any) Envelope {
	return c.doJSON(ctx, http.MethodPut, "/"+resource+"/"+url.PathEscape(id), payload)
}

// Delete elimina un recurso: DELETE /<resource>/<id>.
func (c *Client) Delete(ctx context.Context, resource, id string) Envelope {
	return c.do(ctx, http.MethodDelete, "/"+resource+"/"+url.PathEscape(id), "", nil)
}

// ExecuteAction ejecuta una acción de recurso: POST /<resource>/<id>/<action>.
func (c *Client) ExecuteAction(ctx context.Context, resource, id, action string, payload any) Envelope {
	path := "/" + resource + "/" + url.PathEscape(id) + "/" + action
	if payload == nil {
		return c.do(ctx, http.MethodPost, path, "", nil)
	}
	return c.doJSON(ctx, http.MethodPost, path, payload)
}

// UploadFile sube un archivo multipart (portadas, avatares): POST /<resource>.
func (c *Client) UploadFile(ctx context.Context, resource, field, filename string, r io.Reader) Envelope {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile(field, filename)
	if err != nil {
		return c.failure(0, err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return c.failure(0, err)
	}
	if err := w.Close(); err != nil {
		return c.failure(0, err)
	}
	return c.do(ctx, http.MethodPost, "/"+resource, w.FormDataContentType(), &buf)
}

func (c *Client) doJSON(ctx context.Context, method, path string, payload any) Envelope {
	raw, err := json.Marshal(payload)
	if err != nil {
		return c.failure(0, err)
	}
	return c.do(ctx, method, path, "application/json", bytes.NewReader(raw))
}

// do ejecuta la petición y normaliza la respuesta.
func (c *Client) do(ctx context.Context, method, path, contentType string, body io.Reader) Envelope {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return c.failure(0, err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	for k, v := range c.headers.Build() {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Str("method", method).Str("path", path).Msg("petición fallida")
		return Envelope{Success: false, Message: c.msgs.Sprintf(i18n.MsgServerUnreachable)}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Envelope{Success: false, Status: resp.StatusCode, Message: c.msgs.Sprintf(i18n.MsgServerUnreachable)}
	}
	return c.normalize(resp.StatusCode, raw)
}

// normalize convierte el cuerpo crudo al envelope uniforme.
func (c *Client) normalize(status int, raw []byte) Envelope {
	switch status {
	case http.StatusUnauthorized:
		return Envelope{Success: false, Status: status, Message: c.msgs.Sprintf(i18n.MsgSessionExpired)}
	case http.StatusForbidden:
		return Envelope{Success: false, Status: status, Message: c.msgs.Sprintf(i18n.MsgAccessDenied)}
	}
	if status < 200 || status > 299 {
		// Mensaje del servidor si trae envelope, genérico si no.
		if env, ok := decodeEnvelope(raw); ok {
			env.Status = status
			if env.Message == "" {
				env.Message = c.msgs.Sprintf(i18n.MsgOperationFailed)
			}
			env.Success = false
			return env
		}
		return Envelope{Success: false, Status: status, Message: c.msgs.Sprintf(i18n.MsgOperationFailed)}
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		return Envelope{Success: true, Status: status}
	}

	// Envelope del servidor tal cual.
	if env, ok := decodeEnvelope(raw); ok {
		env.Status = status
		return env
	}

	// Array crudo sin envelope: éxito con total = longitud.
	var arr []json.RawMessage
	if err := json.Unmarshal(raw, &arr); err == nil {
		return Envelope{Success: true, Status: status, Data: json.RawMessage(raw), Total: len(arr)}
	}

	// Objeto crudo: éxito con el objeto como data.
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err == nil {
		return Envelope{Success: true, Status: status, Data: json.RawMessage(raw)}
	}

	c.log.Warn().Int("status", status).Msg("respuesta no reconocida")
	return Envelope{Success: false, Status: status, Message: c.msgs.Sprintf(i18n.MsgMalformedResponse)}
}

// decodeEnvelope intenta leer el cuerpo como envelope nativo del servidor
// (lo identifica la presencia del campo success).
func decodeEnvelope(raw []byte) (Envelope, bool) {
	var probe struct {
		Success *bool           `json:"success"`
		Data    json.RawMessage `json:"data"`
		Total   int             `json:"total"`
		Message string          `json:"message"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil || probe.Success == nil {
		return Envelope{}, false
	}
	return Envelope{
		Success: *probe.Success,
		Data:    probe.Data,
		Total:   probe.Total,
		Message: probe.Message,
	}, true
}

func (c *Client) failure(status int, err error) Envelope {
	c.log.Warn().Err(err).Msg("no se pudo construir la petición")
	return Envelope{
		Success: false,
		Status:  status,
		Message: fmt.Sprintf("%s: %v", c.msgs.Sprintf(i18n.MsgOperationFailed), err),
	}
}

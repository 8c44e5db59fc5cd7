package http_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acampos/gestorapp/internal/application/auth"
	"github.com/acampos/gestorapp/internal/domain"
	"github.com/acampos/gestorapp/internal/domain/entity"
	"github.com/acampos/gestorapp/internal/domain/repository"
	apphttp "github.com/acampos/gestorapp/internal/interfaces/http"
	"github.com/acampos/gestorapp/pkg/config"
	"github.com/acampos/gestorapp/pkg/token"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes mínimos de persistencia para el flujo de registro/login
// ──────────────────────────────────────────────────────────────────────────────

type fakeUsuariosRepo struct {
	porCorreo map[string]entity.Usuario
}

func (r *fakeUsuariosRepo) Create(_ context.Context, u *entity.Usuario) error {
	if _, existe := r.porCorreo[u.Correo]; existe {
		return domain.ErrEmailYaRegistrado
	}
	r.porCorreo[u.Correo] = *u
	return nil
}

func (r *fakeUsuariosRepo) FindByEmail(_ context.Context, correo string) (*entity.Usuario, error) {
	u, ok := r.porCorreo[correo]
	if !ok {
		return nil, nil
	}
	cp := u
	return &cp, nil
}

// nopFondosRepo aprovisionamiento de fondos que siempre acepta; estos tests
// cubren el flujo HTTP, no el libro contable.
type nopFondosRepo struct{}

func (nopFondosRepo) Crear(context.Context, string) error { return nil }

func (nopFondosRepo) Get(context.Context, string) (*entity.Fondos, error) { return nil, nil }

func (nopFondosRepo) GetForUpdate(context.Context, string) (*entity.Fondos, error) { return nil, nil }

func (nopFondosRepo) ActualizarSaldo(context.Context, string, decimal.Decimal, time.Time) error {
	return nil
}

type directTxRunner struct {
	usuarios *fakeUsuariosRepo
}

func (r *directTxRunner) RunRegistro(_ context.Context, fn func(
	usuarios repository.UsuarioRepository,
	fondos repository.FondosRepository,
) error) error {
	return fn(r.usuarios, &nopFondosRepo{})
}

// buildAuthApp monta las rutas de auth sobre una app Fiber de test.
func buildAuthApp() *fiber.App {
	usuarios := &fakeUsuariosRepo{porCorreo: map[string]entity.Usuario{}}
	uc := auth.NewAuthUseCase(usuarios, &directTxRunner{usuarios: usuarios})
	h := apphttp.NewAuthHandler(uc, config.SesionConfig{
		Secret:     testSecret,
		ExpMinutes: testExpMin,
		Issuer:     testIssuer,
	})
	app := fiber.New()
	app.Post("/validar", h.Validar)
	app.Post("/login", h.Login)
	app.Get("/logout", h.Logout)
	return app
}

func postForm(t *testing.T, app *fiber.App, path string, form url.Values) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func formRegistro(user, email, pass, cpass string) url.Values {
	return url.Values{
		"user":   {user},
		"email":  {email},
		"pass":   {pass},
		"c_pass": {cpass},
	}
}

func bodyString(t *testing.T, resp *http.Response) string {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

func cookieSesion(resp *http.Response) *http.Cookie {
	for _, ck := range resp.Cookies() {
		if ck.Name == apphttp.SesionCookie {
			return ck
		}
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// POST /validar
// ──────────────────────────────────────────────────────────────────────────────

func TestValidar_RegistroExitosoRedirigeConSesion(t *testing.T) {
	app := buildAuthApp()
	resp := postForm(t, app, "/validar", formRegistro("Ana", "ana@ejemplo.com", "secreta123", "secreta123"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/index", resp.Header.Get("Location"))

	ck := cookieSesion(resp)
	require.NotNil(t, ck, "el registro inicia sesión con la cookie")
	assert.True(t, ck.HttpOnly, "la cookie de sesión no es legible desde JS")

	usuarioID, nombre, err := token.Parse(testSecret, ck.Value)
	require.NoError(t, err)
	assert.NotEmpty(t, usuarioID)
	assert.Equal(t, "Ana", nombre)
}

func TestValidar_MatrizDeValidacion(t *testing.T) {
	casos := []struct {
		nombre  string
		form    url.Values
		mensaje string
	}{
		{"campos vacíos", formRegistro("", "", "", ""),
			"Todos los campos son requeridos."},
		{"falta confirmación", formRegistro("Ana", "ana@ejemplo.com", "secreta123", ""),
			"Todos los campos son requeridos."},
		{"contraseñas distintas", formRegistro("Ana", "ana@ejemplo.com", "secreta123", "otra456"),
			"Las contraseñas no coinciden."},
		{"correo sin arroba", formRegistro("Ana", "ana.ejemplo.com", "secreta123", "secreta123"),
			"Por favor, introduce un correo electrónico válido."},
		{"contraseña corta", formRegistro("Ana", "ana@ejemplo.com", "abc12", "abc12"),
			"La contraseña debe tener al menos 6 caracteres."},
	}
	for _, caso := range casos {
		t.Run(caso.nombre, func(t *testing.T) {
			app := buildAuthApp()
			resp := postForm(t, app, "/validar", caso.form)
			defer resp.Body.Close()

			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.Equal(t, caso.mensaje, bodyString(t, resp))
			assert.Nil(t, cookieSesion(resp), "una petición rechazada no abre sesión")
		})
	}
}

func TestValidar_CorreoDuplicadoRetorna409(t *testing.T) {
	app := buildAuthApp()

	resp := postForm(t, app, "/validar", formRegistro("Ana", "ana@ejemplo.com", "secreta123", "secreta123"))
	resp.Body.Close()
	require.Equal(t, http.StatusFound, resp.StatusCode)

	resp = postForm(t, app, "/validar", formRegistro("Otra Ana", "ana@ejemplo.com", "distinta9", "distinta9"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "El correo electrónico ya existe.", bodyString(t, resp))
}

// ──────────────────────────────────────────────────────────────────────────────
// POST /login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_ExitosoRedirigeConSesion(t *testing.T) {
	app := buildAuthApp()
	resp := postForm(t, app, "/validar", formRegistro("Ana", "ana@ejemplo.com", "secreta123", "secreta123"))
	resp.Body.Close()

	resp = postForm(t, app, "/login", url.Values{
		"email":    {"ana@ejemplo.com"},
		"password": {"secreta123"},
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/index", resp.Header.Get("Location"))
	assert.NotNil(t, cookieSesion(resp))
}

func TestLogin_MismaRespuestaParaCorreoYContrasenia(t *testing.T) {
	app := buildAuthApp()
	resp := postForm(t, app, "/validar", formRegistro("Ana", "ana@ejemplo.com", "secreta123", "secreta123"))
	resp.Body.Close()

	casos := []url.Values{
		{"email": {"nadie@ejemplo.com"}, "password": {"secreta123"}}, // correo desconocido
		{"email": {"ana@ejemplo.com"}, "password": {"equivocada"}},   // contraseña errada
	}
	for _, form := range casos {
		resp := postForm(t, app, "/login", form)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "Credenciales incorrectas.", bodyString(t, resp),
			"la respuesta no debe permitir enumerar cuentas")
		resp.Body.Close()
	}
}

func TestLogin_CamposVacios(t *testing.T) {
	app := buildAuthApp()
	resp := postForm(t, app, "/login", url.Values{"email": {"ana@ejemplo.com"}})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Por favor, introduce correo y contraseña.", bodyString(t, resp))
}

// ──────────────────────────────────────────────────────────────────────────────
// GET /logout
// ──────────────────────────────────────────────────────────────────────────────

func TestLogout_ExpiraLaCookieYRedirige(t *testing.T) {
	app := buildAuthApp()
	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	req.AddCookie(sesionCookie(t))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/?showLogin=true", resp.Header.Get("Location"))

	ck := cookieSesion(resp)
	require.NotNil(t, ck)
	assert.Empty(t, ck.Value, "la cookie se sobreescribe vacía y expirada")
}

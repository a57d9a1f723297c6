package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/libreria-online/internal/application/auth"
	"github.com/tu-usuario/libreria-online/internal/application/catalogo"
	"github.com/tu-usuario/libreria-online/internal/application/compras"
	"github.com/tu-usuario/libreria-online/internal/application/dto"
	"github.com/tu-usuario/libreria-online/internal/application/ventas"
	"github.com/tu-usuario/libreria-online/internal/infrastructure/memoria"
	"github.com/tu-usuario/libreria-online/internal/infrastructure/pagos"
	apphttp "github.com/tu-usuario/libreria-online/internal/interfaces/http"
)

// setupAPI levanta la API completa sobre la variante en memoria con pagos
// simulados, igual que cmd/api con STORE_DRIVER=memoria.
func setupAPI(t *testing.T) (*fiber.App, *auth.AuthUseCase) {
	t.Helper()

	usuarioRepo := memoria.NewUsuarioRepository()
	libroRepo := memoria.NewLibroRepository()
	compraRepo := memoria.NewCompraRepository()

	authUC := auth.NewAuthUseCase(usuarioRepo, auth.JWTConfig{Secret: testJWTSecret, Issuer: testIssuer})
	catalogoUC := catalogo.NewCatalogoUseCase(libroRepo)
	comprasUC := compras.NewComprasUseCase(compraRepo, libroRepo, pagos.NewSimuladoClient(), nil)
	dashboardUC := ventas.NewDashboardUseCase(compraRepo)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:      authUC,
		CatalogoUC:  catalogoUC,
		ComprasUC:   comprasUC,
		DashboardUC: dashboardUC,
		JWTSecret:   testJWTSecret,
	})
	return app, authUC
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func registrar(t *testing.T, app *fiber.App, email, password string) string {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/registro", "", dto.RegistroRequest{Email: email, Password: password})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	return decode[dto.TokenResponse](t, resp).Token
}

func loginAdmin(t *testing.T, app *fiber.App, authUC *auth.AuthUseCase) string {
	t.Helper()
	require.NoError(t, authUC.SembrarAdmin(context.Background(), "admin@libreria.com", "clave-admin"))
	resp := doJSON(t, app, http.MethodPost, "/login", "", dto.LoginRequest{Email: "admin@libreria.com", Password: "clave-admin"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	return decode[dto.TokenResponse](t, resp).Token
}

func TestAPI_CatalogoVacioEsPublico(t *testing.T) {
	app, _ := setupAPI(t)

	resp := doJSON(t, app, http.MethodGet, "/libros", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	libros := decode[[]dto.LibroResponse](t, resp)
	assert.Empty(t, libros)
}

func TestAPI_SubirLibro_SoloAdmin(t *testing.T) {
	app, authUC := setupAPI(t)
	adminToken := loginAdmin(t, app, authUC)
	userToken := registrar(t, app, "a@x.com", "secreta1")

	nuevo := dto.CrearLibroRequest{
		Titulo:      "El arte de programar",
		Descripcion: "Una guía completa para desarrolladores autodidactas.",
		Precio:      decimal.NewFromInt(1200),
		Imagen:      "https://via.placeholder.com/150?text=Libro+1",
	}

	// Sin token → 401.
	resp := doJSON(t, app, http.MethodPost, "/libros", "", nuevo)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	// Usuario común → 403.
	resp = doJSON(t, app, http.MethodPost, "/libros", userToken, nuevo)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	// Admin → 200 {mensaje, libro}.
	resp = doJSON(t, app, http.MethodPost, "/libros", adminToken, nuevo)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	creado := decode[dto.CrearLibroResponse](t, resp)
	assert.Equal(t, "Libro agregado", creado.Mensaje)
	assert.NotEmpty(t, creado.Libro.ID)

	// El catálogo público lo lista.
	resp = doJSON(t, app, http.MethodGet, "/libros", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	libros := decode[[]dto.LibroResponse](t, resp)
	require.Len(t, libros, 1)
	assert.Equal(t, "El arte de programar", libros[0].Titulo)
}

func TestAPI_RegistroDuplicado(t *testing.T) {
	app, _ := setupAPI(t)
	registrar(t, app, "a@x.com", "secreta1")

	resp := doJSON(t, app, http.MethodPost, "/registro", "", dto.RegistroRequest{Email: "a@x.com", Password: "otra"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	errBody := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "Usuario ya existe", errBody.Error)
}

func TestAPI_RegistroSinEmail(t *testing.T) {
	app, _ := setupAPI(t)

	resp := doJSON(t, app, http.MethodPost, "/registro", "", map[string]string{"password": "x"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	errBody := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "Email requerido", errBody.Error)
}

func TestAPI_CompraYHistorialAislado(t *testing.T) {
	app, _ := setupAPI(t)
	tokenA := registrar(t, app, "a@x.com", "secreta1")
	tokenB := registrar(t, app, "b@x.com", "secreta2")

	// A compra 2 × JS avanzado (1500).
	resp := doJSON(t, app, http.MethodPost, "/crear-preferencia", tokenA, map[string]any{
		"cart": []map[string]any{{"title": "JS avanzado", "price": 1500, "quantity": 2}},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	pref := decode[dto.PreferenciaResponse](t, resp)
	assert.NotEmpty(t, pref.PreferenciaID)
	assert.NotEmpty(t, pref.InitPoint)

	// Historial de A: una compra con total 3000.
	resp = doJSON(t, app, http.MethodGet, "/historial", tokenA, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	deA := decode[[]dto.CompraResponse](t, resp)
	require.Len(t, deA, 1)
	assert.True(t, deA[0].Total.Equal(decimal.NewFromInt(3000)))

	// Historial de B: vacío; nunca ve las compras de A.
	resp = doJSON(t, app, http.MethodGet, "/historial", tokenB, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	deB := decode[[]dto.CompraResponse](t, resp)
	assert.Empty(t, deB)

	// Sin token no hay historial.
	resp = doJSON(t, app, http.MethodGet, "/historial", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

func TestAPI_CarritoVacio(t *testing.T) {
	app, _ := setupAPI(t)
	token := registrar(t, app, "a@x.com", "secreta1")

	resp := doJSON(t, app, http.MethodPost, "/crear-preferencia", token, map[string]any{"cart": []any{}})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestAPI_Dashboard(t *testing.T) {
	app, authUC := setupAPI(t)
	adminToken := loginAdmin(t, app, authUC)
	tokenA := registrar(t, app, "a@x.com", "secreta1")

	// Usuario común no ve el dashboard.
	resp := doJSON(t, app, http.MethodGet, "/dashboard", tokenA, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	// Dashboard vacío: total 0 y mapa vacío.
	resp = doJSON(t, app, http.MethodGet, "/dashboard", adminToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	vacio := decode[dto.DashboardResponse](t, resp)
	assert.True(t, vacio.TotalVentas.IsZero())
	assert.Empty(t, vacio.LibrosVendidos)

	// Dos compras de compradores distintos se agregan por título.
	resp = doJSON(t, app, http.MethodPost, "/crear-preferencia", tokenA, map[string]any{
		"cart": []map[string]any{{"title": "JS avanzado", "price": 1500, "quantity": 2}},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	tokenB := registrar(t, app, "b@x.com", "secreta2")
	resp = doJSON(t, app, http.MethodPost, "/crear-preferencia", tokenB, map[string]any{
		"cart": []map[string]any{
			{"title": "JS avanzado", "price": 1500, "quantity": 1},
			{"title": "El arte de programar", "price": 1200, "quantity": 1},
		},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/dashboard", adminToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	dash := decode[dto.DashboardResponse](t, resp)
	assert.True(t, dash.TotalVentas.Equal(decimal.NewFromInt(5700)),
		"totalVentas debe ser 3000+1500+1200, fue %s", dash.TotalVentas)
	assert.Equal(t, int64(3), dash.LibrosVendidos["JS avanzado"])
	assert.Equal(t, int64(1), dash.LibrosVendidos["El arte de programar"])
}

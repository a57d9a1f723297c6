package pagos_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/libreria-online/internal/domain/entity"
	"github.com/tu-usuario/libreria-online/internal/infrastructure/pagos"
)

func compraDePrueba() *entity.Compra {
	return &entity.Compra{
		ID:             "compra-123",
		CompradorEmail: "a@x.com",
		Libros: []entity.LineaCompra{
			{Titulo: "JS avanzado", Precio: decimal.NewFromInt(1500), Cantidad: 2},
		},
		Total: decimal.NewFromInt(3000),
		Fecha: time.Now(),
	}
}

func TestMercadoPago_CrearPreferencia(t *testing.T) {
	var capturado map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/checkout/preferences", r.URL.Path)
		assert.Equal(t, "Bearer token-de-prueba", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&capturado))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"pref_abc","init_point":"https://checkout/pref_abc"}`))
	}))
	defer srv.Close()

	cli := pagos.NewMercadoPagoClient("token-de-prueba", srv.URL)
	pref, err := cli.CrearPreferencia(context.Background(), compraDePrueba())
	require.NoError(t, err)

	assert.Equal(t, "pref_abc", pref.ID)
	assert.Equal(t, "https://checkout/pref_abc", pref.InitPoint)

	items, ok := capturado["items"].([]any)
	require.True(t, ok, "el payload debe llevar items")
	require.Len(t, items, 1)
	item := items[0].(map[string]any)
	assert.Equal(t, "JS avanzado", item["title"])
	assert.Equal(t, "compra-123", capturado["external_reference"])
}

func TestMercadoPago_ErrorDelProveedor(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`{"message":"upstream caído"}`))
	}))
	defer srv.Close()

	cli := pagos.NewMercadoPagoClient("token", srv.URL)
	_, err := cli.CrearPreferencia(context.Background(), compraDePrueba())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestMercadoPago_RespuestaSinID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	cli := pagos.NewMercadoPagoClient("token", srv.URL)
	_, err := cli.CrearPreferencia(context.Background(), compraDePrueba())
	assert.Error(t, err)
}

func TestSimulado_SiempreCreaPreferencia(t *testing.T) {
	cli := pagos.NewSimuladoClient()

	pref, err := cli.CrearPreferencia(context.Background(), compraDePrueba())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(pref.ID, "pref_"), "id simulado debe llevar prefijo pref_")
	assert.Contains(t, pref.InitPoint, pref.ID)
}

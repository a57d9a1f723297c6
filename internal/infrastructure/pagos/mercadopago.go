package pagos

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/libreria-online/internal/application/compras"
	"github.com/tu-usuario/libreria-online/internal/domain/entity"
)

const defaultBaseURL = "https://api.mercadopago.com"

var _ compras.PreferenciaCreator = (*MercadoPagoClient)(nil)

// MercadoPagoClient crea preferencias de pago reales vía
// POST /checkout/preferences. Usa net/http de la stdlib; no hay SDK del
// proveedor entre las dependencias del proyecto.
type MercadoPagoClient struct {
	httpClient  *http.Client
	baseURL     string
	accessToken string
}

// NewMercadoPagoClient construye el cliente. baseURL vacío usa la API real;
// los tests la apuntan a un httptest.Server.
func NewMercadoPagoClient(accessToken, baseURL string) *MercadoPagoClient {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &MercadoPagoClient{
		httpClient:  &http.Client{Timeout: 30 * time.Second},
		baseURL:     baseURL,
		accessToken: accessToken,
	}
}

// preferenceItem una línea del carrito en el formato del proveedor.
type preferenceItem struct {
	Title     string          `json:"title"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

type preferenceRequest struct {
	Items             []preferenceItem `json:"items"`
	ExternalReference string           `json:"external_reference"`
}

type preferenceResponse struct {
	ID        string `json:"id"`
	InitPoint string `json:"init_point"`
}

// CrearPreferencia envía el carrito al proveedor y devuelve el id de la
// preferencia y la URL de redirección. Un fallo se devuelve de inmediato, sin
// reintentos: el caso de uso lo convierte en error de upstream.
func (c *MercadoPagoClient) CrearPreferencia(ctx context.Context, compra *entity.Compra) (*compras.Preferencia, error) {
	items := make([]preferenceItem, 0, len(compra.Libros))
	for _, l := range compra.Libros {
		items = append(items, preferenceItem{
			Title:     l.Titulo,
			Quantity:  l.Cantidad,
			UnitPrice: l.Precio,
		})
	}
	payload, err := json.Marshal(preferenceRequest{
		Items:             items,
		ExternalReference: compra.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("serializar preferencia: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/checkout/preferences", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("construir petición: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("llamar al proveedor de pagos: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("leer respuesta del proveedor: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("proveedor de pagos respondió %d: %s", resp.StatusCode, string(body))
	}

	var out preferenceResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("decodificar preferencia: %w", err)
	}
	if out.ID == "" {
		return nil, fmt.Errorf("el proveedor no devolvió id de preferencia")
	}
	return &compras.Preferencia{ID: out.ID, InitPoint: out.InitPoint}, nil
}

// Package compras contiene los casos de uso del ciclo de compra: creación de
// la preferencia de pago (que registra la compra en el ledger), historial por
// comprador y recibo PDF.
package compras

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/libreria-online/internal/application/dto"
	"github.com/tu-usuario/libreria-online/internal/domain"
	"github.com/tu-usuario/libreria-online/internal/domain/entity"
	"github.com/tu-usuario/libreria-online/internal/domain/repository"
)

// ComprasUseCase orquesta preferencia de pago + ledger.
type ComprasUseCase struct {
	compraRepo repository.CompraRepository
	libroRepo  repository.LibroRepository
	pagos      PreferenciaCreator
	recibos    ReciboGenerator
}

// NewComprasUseCase construye el caso de uso. recibos puede ser nil si la
// variante no expone recibos PDF.
func NewComprasUseCase(
	compraRepo repository.CompraRepository,
	libroRepo repository.LibroRepository,
	pagos PreferenciaCreator,
	recibos ReciboGenerator,
) *ComprasUseCase {
	return &ComprasUseCase{compraRepo: compraRepo, libroRepo: libroRepo, pagos: pagos, recibos: recibos}
}

// CrearPreferencia valida el carrito, crea la preferencia en el proveedor y
// registra la compra en el ledger. La compra se agrega exactamente una vez y
// solo si la preferencia se creó con éxito.
//
// El total se calcula como Σ precio×cantidad sobre las líneas. El precio de
// cada línea se re-deriva del catálogo cuando el id del libro resuelve; si no
// resuelve se acepta el precio enviado (ver resolverLinea). El registro
// resultante es un snapshot: nunca se recalcula contra el catálogo vivo.
func (uc *ComprasUseCase) CrearPreferencia(ctx context.Context, compradorEmail string, in dto.CrearPreferenciaRequest) (*dto.PreferenciaResponse, error) {
	if len(in.Cart) == 0 {
		return nil, domain.ErrEntradaInvalida
	}

	lineas := make([]entity.LineaCompra, 0, len(in.Cart))
	total := decimal.Zero
	for _, item := range in.Cart {
		linea, err := uc.resolverLinea(ctx, item)
		if err != nil {
			return nil, err
		}
		lineas = append(lineas, linea)
		total = total.Add(linea.Subtotal())
	}

	compra := &entity.Compra{
		ID:             uuid.New().String(),
		CompradorEmail: compradorEmail,
		Libros:         lineas,
		Total:          total,
		Fecha:          time.Now(),
	}

	pref, err := uc.pagos.CrearPreferencia(ctx, compra)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrProveedorPagos, err)
	}
	if err := uc.compraRepo.Agregar(ctx, compra); err != nil {
		return nil, err
	}

	return &dto.PreferenciaResponse{PreferenciaID: pref.ID, InitPoint: pref.InitPoint}, nil
}

// resolverLinea valida una línea del carrito y fija su precio.
//
// Este es el único punto donde se decide qué precio entra al ledger: si el id
// del libro existe en el catálogo se usa el precio del catálogo (el cliente no
// puede falsificar totales de títulos conocidos); si la línea no trae id o el
// id no resuelve, se acepta el precio enviado para mantener el contrato de
// carritos legados.
func (uc *ComprasUseCase) resolverLinea(ctx context.Context, item dto.LineaCarrito) (entity.LineaCompra, error) {
	if item.Cantidad < 1 || item.Precio.IsNegative() {
		return entity.LineaCompra{}, domain.ErrEntradaInvalida
	}
	linea := entity.LineaCompra{
		LibroID:  item.ID,
		Titulo:   item.Titulo,
		Precio:   item.Precio,
		Cantidad: item.Cantidad,
	}
	if item.ID == "" {
		return linea, nil
	}
	libro, err := uc.libroRepo.BuscarPorID(ctx, item.ID)
	if err != nil {
		return entity.LineaCompra{}, err
	}
	if libro != nil {
		linea.Titulo = libro.Titulo
		linea.Precio = libro.Precio
	}
	return linea, nil
}

// Historial devuelve las compras del comprador indicado, y solo las suyas.
func (uc *ComprasUseCase) Historial(ctx context.Context, compradorEmail string) ([]dto.CompraResponse, error) {
	compras, err := uc.compraRepo.ListarPorComprador(ctx, compradorEmail)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CompraResponse, 0, len(compras))
	for _, c := range compras {
		out = append(out, toCompraResponse(c))
	}
	return out, nil
}

// Recibo genera el PDF de una compra propia. Una compra ajena o inexistente
// devuelve ErrCompraNoEncontrada (no se revela si existe).
func (uc *ComprasUseCase) Recibo(ctx context.Context, compradorEmail, compraID string) ([]byte, error) {
	if uc.recibos == nil {
		return nil, domain.ErrCompraNoEncontrada
	}
	compra, err := uc.compraRepo.BuscarPorID(ctx, compraID)
	if err != nil {
		return nil, err
	}
	if compra == nil || compra.CompradorEmail != compradorEmail {
		return nil, domain.ErrCompraNoEncontrada
	}
	return uc.recibos.GenerarRecibo(ctx, compra)
}

func toCompraResponse(c *entity.Compra) dto.CompraResponse {
	libros := make([]dto.LineaCarrito, 0, len(c.Libros))
	for _, l := range c.Libros {
		libros = append(libros, dto.LineaCarrito{
			ID:       l.LibroID,
			Titulo:   l.Titulo,
			Precio:   l.Precio,
			Cantidad: l.Cantidad,
		})
	}
	return dto.CompraResponse{
		ID:     c.ID,
		Fecha:  c.Fecha,
		Libros: libros,
		Total:  c.Total,
	}
}

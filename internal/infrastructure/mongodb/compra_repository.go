package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tu-usuario/libreria-online/internal/domain/entity"
	"github.com/tu-usuario/libreria-online/internal/domain/repository"
)

var _ repository.CompraRepository = (*CompraRepo)(nil)

// lineaDoc línea de compra embebida en el documento de la compra.
type lineaDoc struct {
	LibroID  string `bson:"libro_id,omitempty"`
	Titulo   string `bson:"titulo"`
	Precio   string `bson:"precio"` // decimal como string
	Cantidad int64  `bson:"cantidad"`
}

// compraDoc documento BSON de una compra. Las líneas van embebidas: la compra
// es un snapshot inmutable y se lee siempre completa.
type compraDoc struct {
	ID             string     `bson:"_id"`
	CompradorEmail string     `bson:"comprador_email"`
	Libros         []lineaDoc `bson:"libros"`
	Total          string     `bson:"total"`
	Fecha          time.Time  `bson:"fecha"`
}

// CompraRepo adaptador de persistencia del ledger sobre MongoDB. Solo inserta
// y lee; no hay updates.
type CompraRepo struct {
	col *mongo.Collection
}

// NewCompraRepository construye el adaptador.
func NewCompraRepository(db *mongo.Database) *CompraRepo {
	return &CompraRepo{col: db.Collection(colCompras)}
}

// Agregar anexa una compra al ledger.
func (r *CompraRepo) Agregar(ctx context.Context, compra *entity.Compra) error {
	if _, err := r.col.InsertOne(ctx, toCompraDoc(compra)); err != nil {
		return fmt.Errorf("insertar compra: %w", err)
	}
	return nil
}

// ListarPorComprador devuelve las compras del email indicado, más antiguas
// primero.
func (r *CompraRepo) ListarPorComprador(ctx context.Context, email string) ([]*entity.Compra, error) {
	return r.listar(ctx, bson.M{"comprador_email": email})
}

// ListarTodas devuelve el ledger completo.
func (r *CompraRepo) ListarTodas(ctx context.Context) ([]*entity.Compra, error) {
	return r.listar(ctx, bson.M{})
}

// BuscarPorID devuelve la compra o (nil, nil) si no existe.
func (r *CompraRepo) BuscarPorID(ctx context.Context, id string) (*entity.Compra, error) {
	var doc compraDoc
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("buscar compra por id: %w", err)
	}
	return fromCompraDoc(doc)
}

func (r *CompraRepo) listar(ctx context.Context, filtro bson.M) ([]*entity.Compra, error) {
	opts := options.Find().SetSort(bson.D{{Key: "fecha", Value: 1}})
	cursor, err := r.col.Find(ctx, filtro, opts)
	if err != nil {
		return nil, fmt.Errorf("listar compras: %w", err)
	}
	defer cursor.Close(ctx)

	var out []*entity.Compra
	for cursor.Next(ctx) {
		var doc compraDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decodificar compra: %w", err)
		}
		compra, err := fromCompraDoc(doc)
		if err != nil {
			return nil, err
		}
		out = append(out, compra)
	}
	return out, cursor.Err()
}

func toCompraDoc(c *entity.Compra) compraDoc {
	libros := make([]lineaDoc, 0, len(c.Libros))
	for _, l := range c.Libros {
		libros = append(libros, lineaDoc{
			LibroID:  l.LibroID,
			Titulo:   l.Titulo,
			Precio:   l.Precio.String(),
			Cantidad: l.Cantidad,
		})
	}
	return compraDoc{
		ID:             c.ID,
		CompradorEmail: c.CompradorEmail,
		Libros:         libros,
		Total:          c.Total.String(),
		Fecha:          c.Fecha,
	}
}

func fromCompraDoc(doc compraDoc) (*entity.Compra, error) {
	total, err := decimal.NewFromString(doc.Total)
	if err != nil {
		return nil, fmt.Errorf("total corrupto en compra %s: %w", doc.ID, err)
	}
	libros := make([]entity.LineaCompra, 0, len(doc.Libros))
	for _, l := range doc.Libros {
		precio, err := decimal.NewFromString(l.Precio)
		if err != nil {
			return nil, fmt.Errorf("precio corrupto en compra %s: %w", doc.ID, err)
		}
		libros = append(libros, entity.LineaCompra{
			LibroID:  l.LibroID,
			Titulo:   l.Titulo,
			Precio:   precio,
			Cantidad: l.Cantidad,
		})
	}
	return &entity.Compra{
		ID:             doc.ID,
		CompradorEmail: doc.CompradorEmail,
		Libros:         libros,
		Total:          total,
		Fecha:          doc.Fecha,
	}, nil
}

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

var _ repository.LibroRepository = (*LibroRepo)(nil)

// libroDoc documento BSON de un libro del catálogo.
type libroDoc struct {
	ID          string    `bson:"_id"`
	Titulo      string    `bson:"titulo"`
	Descripcion string    `bson:"descripcion"`
	Precio      string    `bson:"precio"` // decimal como string
	Imagen      string    `bson:"imagen"`
	CreadoEn    time.Time `bson:"creado_en"`
}

// LibroRepo adaptador de persistencia del catálogo sobre MongoDB.
type LibroRepo struct {
	col *mongo.Collection
}

// NewLibroRepository construye el adaptador.
func NewLibroRepository(db *mongo.Database) *LibroRepo {
	return &LibroRepo{col: db.Collection(colLibros)}
}

// Crear inserta un libro.
func (r *LibroRepo) Crear(ctx context.Context, libro *entity.Libro) error {
	if _, err := r.col.InsertOne(ctx, toLibroDoc(libro)); err != nil {
		return fmt.Errorf("insertar libro: %w", err)
	}
	return nil
}

// Listar devuelve el catálogo en orden de inserción (por fecha de alta).
func (r *LibroRepo) Listar(ctx context.Context) ([]*entity.Libro, error) {
	opts := options.Find().SetSort(bson.D{{Key: "creado_en", Value: 1}})
	cursor, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("listar libros: %w", err)
	}
	defer cursor.Close(ctx)

	var out []*entity.Libro
	for cursor.Next(ctx) {
		var doc libroDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decodificar libro: %w", err)
		}
		libro, err := fromLibroDoc(doc)
		if err != nil {
			return nil, err
		}
		out = append(out, libro)
	}
	return out, cursor.Err()
}

// BuscarPorID devuelve el libro o (nil, nil) si no existe.
func (r *LibroRepo) BuscarPorID(ctx context.Context, id string) (*entity.Libro, error) {
	var doc libroDoc
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("buscar libro por id: %w", err)
	}
	return fromLibroDoc(doc)
}

func toLibroDoc(l *entity.Libro) libroDoc {
	return libroDoc{
		ID:          l.ID,
		Titulo:      l.Titulo,
		Descripcion: l.Descripcion,
		Precio:      l.Precio.String(),
		Imagen:      l.Imagen,
		CreadoEn:    l.CreadoEn,
	}
}

func fromLibroDoc(doc libroDoc) (*entity.Libro, error) {
	precio, err := decimal.NewFromString(doc.Precio)
	if err != nil {
		return nil, fmt.Errorf("precio corrupto en libro %s: %w", doc.ID, err)
	}
	return &entity.Libro{
		ID:          doc.ID,
		Titulo:      doc.Titulo,
		Descripcion: doc.Descripcion,
		Precio:      precio,
		Imagen:      doc.Imagen,
		CreadoEn:    doc.CreadoEn,
	}, nil
}

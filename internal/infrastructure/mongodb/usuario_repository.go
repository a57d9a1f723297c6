package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tu-usuario/libreria-online/internal/domain"
	"github.com/tu-usuario/libreria-online/internal/domain/entity"
	"github.com/tu-usuario/libreria-online/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// usuarioDoc documento BSON de un usuario.
type usuarioDoc struct {
	ID           string    `bson:"_id"`
	Email        string    `bson:"email"`
	PasswordHash string    `bson:"password_hash"`
	Rol          string    `bson:"rol"`
	CreadoEn     time.Time `bson:"creado_en"`
}

// UsuarioRepo adaptador de persistencia de usuarios sobre MongoDB.
type UsuarioRepo struct {
	col *mongo.Collection
}

// NewUsuarioRepository construye el adaptador.
func NewUsuarioRepository(db *mongo.Database) *UsuarioRepo {
	return &UsuarioRepo{col: db.Collection(colUsuarios)}
}

// EnsureIndexes crea el índice único por email. Idempotente; se llama una vez
// al arrancar.
func (r *UsuarioRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("índice único de email: %w", err)
	}
	return nil
}

// Crear inserta un usuario. Un email duplicado devuelve ErrUsuarioYaExiste
// (lo garantiza el índice único, no una lectura previa).
func (r *UsuarioRepo) Crear(ctx context.Context, usuario *entity.Usuario) error {
	doc := usuarioDoc{
		ID:           usuario.ID,
		Email:        usuario.Email,
		PasswordHash: usuario.PasswordHash,
		Rol:          string(usuario.Rol),
		CreadoEn:     usuario.CreadoEn,
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrUsuarioYaExiste
		}
		return fmt.Errorf("insertar usuario: %w", err)
	}
	return nil
}

// BuscarPorEmail devuelve el usuario o (nil, nil) si el email no existe.
func (r *UsuarioRepo) BuscarPorEmail(ctx context.Context, email string) (*entity.Usuario, error) {
	var doc usuarioDoc
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("buscar usuario por email: %w", err)
	}
	rol, ok := entity.ParseRol(doc.Rol)
	if !ok {
		return nil, fmt.Errorf("usuario %s con rol desconocido %q", doc.ID, doc.Rol)
	}
	return &entity.Usuario{
		ID:           doc.ID,
		Email:        doc.Email,
		PasswordHash: doc.PasswordHash,
		Rol:          rol,
		CreadoEn:     doc.CreadoEn,
	}, nil
}

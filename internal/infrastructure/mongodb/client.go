// Package mongodb implementa los puertos de persistencia sobre MongoDB: la
// variante persistente del servidor. Colecciones: usuarios (índice único por
// email), libros y compras. Los montos decimales se guardan como string y se
// convierten en el borde del adaptador.
package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/tu-usuario/libreria-online/pkg/config"
)

// Nombres de colecciones.
const (
	colUsuarios = "usuarios"
	colLibros   = "libros"
	colCompras  = "compras"
)

// NewDatabase conecta al servidor, verifica con ping y devuelve el handle de
// la base de datos junto con la función de desconexión.
func NewDatabase(ctx context.Context, cfg config.MongoConfig) (*mongo.Database, func(), error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("conectar a MongoDB: %w", err)
	}
	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("ping MongoDB: %w", err)
	}

	cerrar := func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
	}
	return client.Database(cfg.Database), cerrar, nil
}

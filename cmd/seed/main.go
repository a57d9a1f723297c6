// seed siembra fuera de banda la cuenta admin (y opcionalmente un catálogo
// de ejemplo) en la variante MongoDB. Es la única vía para obtener rol admin:
// el endpoint de registro siempre crea usuarios con rol "usuario".
//
// Uso: go run ./cmd/seed -email admin@libreria.com -password <secreto> [-libros]
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/libreria-online/internal/application/auth"
	"github.com/tu-usuario/libreria-online/internal/domain/entity"
	"github.com/tu-usuario/libreria-online/internal/infrastructure/mongodb"
	"github.com/tu-usuario/libreria-online/pkg/config"
)

func main() {
	email := flag.String("email", "", "email de la cuenta admin")
	password := flag.String("password", "", "password de la cuenta admin")
	conLibros := flag.Bool("libros", false, "sembrar también un catálogo de ejemplo")
	flag.Parse()

	if *email == "" || *password == "" {
		fmt.Fprintln(os.Stderr, "uso: seed -email <email> -password <password> [-libros]")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, cerrar, err := mongodb.NewDatabase(ctx, cfg.Mongo)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conectar a MongoDB: %v\n", err)
		os.Exit(1)
	}
	defer cerrar()

	usuarioRepo := mongodb.NewUsuarioRepository(db)
	if err := usuarioRepo.EnsureIndexes(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "crear índices: %v\n", err)
		os.Exit(1)
	}

	authUC := auth.NewAuthUseCase(usuarioRepo, auth.JWTConfig{Secret: cfg.JWT.Secret, Issuer: cfg.JWT.Issuer})
	if err := authUC.SembrarAdmin(ctx, *email, *password); err != nil {
		fmt.Fprintf(os.Stderr, "sembrar admin: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("admin listo: %s\n", *email)

	if !*conLibros {
		return
	}

	libroRepo := mongodb.NewLibroRepository(db)
	existentes, err := libroRepo.Listar(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "listar catálogo: %v\n", err)
		os.Exit(1)
	}
	if len(existentes) > 0 {
		fmt.Printf("catálogo ya tiene %d libros, no se siembra\n", len(existentes))
		return
	}

	ejemplos := []entity.Libro{
		{
			Titulo:      "El arte de programar",
			Descripcion: "Una guía completa para desarrolladores autodidactas.",
			Precio:      decimal.NewFromInt(1200),
			Imagen:      "https://via.placeholder.com/150?text=Libro+1",
		},
		{
			Titulo:      "JavaScript avanzado",
			Descripcion: "Domina el lenguaje del navegador con ejemplos reales.",
			Precio:      decimal.NewFromInt(1500),
			Imagen:      "https://via.placeholder.com/150?text=Libro+2",
		},
	}
	for _, l := range ejemplos {
		l.ID = uuid.New().String()
		l.CreadoEn = time.Now()
		if err := libroRepo.Crear(ctx, &l); err != nil {
			fmt.Fprintf(os.Stderr, "sembrar libro %q: %v\n", l.Titulo, err)
			os.Exit(1)
		}
	}
	fmt.Printf("catálogo sembrado: %d libros\n", len(ejemplos))
}

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/tu-usuario/libreria-online/internal/application/auth"
	"github.com/tu-usuario/libreria-online/internal/application/catalogo"
	"github.com/tu-usuario/libreria-online/internal/application/compras"
	"github.com/tu-usuario/libreria-online/internal/application/ventas"
	"github.com/tu-usuario/libreria-online/internal/domain/repository"
	"github.com/tu-usuario/libreria-online/internal/infrastructure/memoria"
	"github.com/tu-usuario/libreria-online/internal/infrastructure/mongodb"
	"github.com/tu-usuario/libreria-online/internal/infrastructure/pagos"
	infrapdf "github.com/tu-usuario/libreria-online/internal/infrastructure/pdf"
	httpRouter "github.com/tu-usuario/libreria-online/internal/interfaces/http"
	"github.com/tu-usuario/libreria-online/pkg/config"
	"github.com/tu-usuario/libreria-online/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()

	// Almacenamiento: variante en memoria (mock) o MongoDB (persistente).
	var (
		usuarioRepo repository.UsuarioRepository
		libroRepo   repository.LibroRepository
		compraRepo  repository.CompraRepository
	)
	if cfg.Store.Driver == config.StoreMongo {
		db, cerrar, err := mongodb.NewDatabase(ctx, cfg.Mongo)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a MongoDB")
		}
		defer cerrar()

		mongoUsuarios := mongodb.NewUsuarioRepository(db)
		if err := mongoUsuarios.EnsureIndexes(ctx); err != nil {
			log.Fatal().Err(err).Msg("índices de usuarios")
		}
		usuarioRepo = mongoUsuarios
		libroRepo = mongodb.NewLibroRepository(db)
		compraRepo = mongodb.NewCompraRepository(db)
	} else {
		usuarioRepo = memoria.NewUsuarioRepository()
		libroRepo = memoria.NewLibroRepository()
		compraRepo = memoria.NewCompraRepository()
	}

	// Proveedor de pagos: real solo si hay access token; si no, simulado.
	var pagosClient compras.PreferenciaCreator
	if cfg.Pagos.AccessToken != "" {
		pagosClient = pagos.NewMercadoPagoClient(cfg.Pagos.AccessToken, cfg.Pagos.BaseURL)
		log.Info().Msg("proveedor de pagos: Mercado Pago")
	} else {
		pagosClient = pagos.NewSimuladoClient()
		log.Info().Msg("proveedor de pagos: simulado")
	}

	authUC := auth.NewAuthUseCase(usuarioRepo, auth.JWTConfig{
		Secret: cfg.JWT.Secret,
		Issuer: cfg.JWT.Issuer,
	})
	catalogoUC := catalogo.NewCatalogoUseCase(libroRepo)

	// La variante en memoria arranca vacía: sembrar el admin desde env si
	// está configurado (la variante Mongo se siembra con cmd/seed).
	if cfg.Store.Driver == config.StoreMemoria && cfg.Admin.Email != "" {
		if err := authUC.SembrarAdmin(ctx, cfg.Admin.Email, cfg.Admin.Password); err != nil {
			log.Fatal().Err(err).Msg("sembrar admin")
		}
		log.Info().Str("email", cfg.Admin.Email).Msg("cuenta admin sembrada")
	}
	comprasUC := compras.NewComprasUseCase(compraRepo, libroRepo, pagosClient, infrapdf.NewMarotoReciboGenerator())
	dashboardUC := ventas.NewDashboardUseCase(compraRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Librería Online API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		CatalogoUC:  catalogoUC,
		ComprasUC:   comprasUC,
		DashboardUC: dashboardUC,
		JWTSecret:   cfg.JWT.Secret,
		PublicDir:   "./public",
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/libreria-online/internal/application/auth"
	"github.com/tu-usuario/libreria-online/internal/application/catalogo"
	"github.com/tu-usuario/libreria-online/internal/application/compras"
	"github.com/tu-usuario/libreria-online/internal/application/ventas"
	"github.com/tu-usuario/libreria-online/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	CatalogoUC  *catalogo.CatalogoUseCase
	ComprasUC   *compras.ComprasUseCase
	DashboardUC *ventas.DashboardUseCase
	JWTSecret   string
	PublicDir   string // directorio del front estático; vacío = sin SPA fallback
}

// Router registra las rutas de la API. Tres niveles de acceso: público,
// usuario autenticado y solo admin.
func Router(app *fiber.App, deps RouterDeps) {
	authHandler := NewAuthHandler(deps.AuthUC)
	libroHandler := NewLibroHandler(deps.CatalogoUC)
	compraHandler := NewCompraHandler(deps.ComprasUC)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)

	autenticado := AuthMiddleware(deps.JWTSecret)
	soloAdmin := RequireRol(entity.RolAdmin)

	// Público
	app.Get("/libros", libroHandler.Listar)
	app.Post("/login", authHandler.Login)
	app.Post("/registro", authHandler.Registro)

	// Usuario autenticado: la identidad del token es el alcance de los datos
	app.Post("/crear-preferencia", autenticado, compraHandler.CrearPreferencia)
	app.Get("/historial", autenticado, compraHandler.Historial)
	app.Get("/historial/:id/recibo", autenticado, compraHandler.Recibo)

	// Solo admin
	app.Post("/libros", autenticado, soloAdmin, libroHandler.Crear)
	app.Get("/dashboard", autenticado, soloAdmin, dashboardHandler.Resumen)

	// Front estático + fallback SPA: cualquier GET no atendido devuelve el
	// index para que el router del navegador resuelva la ruta.
	if deps.PublicDir != "" {
		app.Static("/", deps.PublicDir)
		app.Use(func(c *fiber.Ctx) error {
			if c.Method() != fiber.MethodGet {
				return fiber.ErrNotFound
			}
			return c.SendFile(deps.PublicDir + "/index.html")
		})
	}
}

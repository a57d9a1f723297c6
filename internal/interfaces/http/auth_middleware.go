package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/libreria-online/internal/application/dto"
	"github.com/tu-usuario/libreria-online/internal/domain/entity"
	"github.com/tu-usuario/libreria-online/pkg/jwt"
)

// Locals keys para la identidad decodificada del token.
const (
	LocalEmail = "email"
	LocalRol   = "rol"
)

// AuthMiddleware valida el Bearer Token JWT y deja email y rol en c.Locals.
// Sin token responde 401; un token que no verifica (firma o expiración)
// responde 403. No muta estado: solo adjunta la identidad al contexto.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Token requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Token requerido"})
		}
		email, rol, err := jwt.Parsear(jwtSecret, strings.TrimSpace(parts[1]))
		if err != nil {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Error: "Token inválido"})
		}
		c.Locals(LocalEmail, email)
		c.Locals(LocalRol, rol)
		return c.Next()
	}
}

// RequireRol autoriza solo a los roles indicados. Debe usarse DESPUÉS de
// AuthMiddleware. Un claim de rol ausente o fuera del enum también rechaza:
// el matching es exhaustivo sobre los roles conocidos.
func RequireRol(permitidos ...entity.Rol) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rol, ok := entity.ParseRol(GetRol(c))
		if !ok {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Error: "No autorizado"})
		}
		for _, p := range permitidos {
			if rol == p {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Error: "No autorizado"})
	}
}

// GetEmail devuelve el email del contexto (después del middleware de auth).
func GetEmail(c *fiber.Ctx) string {
	v := c.Locals(LocalEmail)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetRol devuelve el rol del contexto (después del middleware de auth).
func GetRol(c *fiber.Ctx) string {
	v := c.Locals(LocalRol)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

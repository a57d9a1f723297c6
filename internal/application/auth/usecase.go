package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/libreria-online/internal/application/dto"
	"github.com/tu-usuario/libreria-online/internal/domain"
	"github.com/tu-usuario/libreria-online/internal/domain/entity"
	"github.com/tu-usuario/libreria-online/internal/domain/repository"
	"github.com/tu-usuario/libreria-online/pkg/jwt"
)

// DuracionToken es la vida del token emitido. Fija: no hay refresh.
const DuracionToken = 2 * time.Hour

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret string
	Issuer string
}

// AuthUseCase casos de uso de autenticación: registro y login. El registro
// siempre crea usuarios con rol "usuario"; la cuenta admin se siembra fuera
// de banda (cmd/seed).
type AuthUseCase struct {
	usuarioRepo repository.UsuarioRepository
	jwtCfg      JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(usuarioRepo repository.UsuarioRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{usuarioRepo: usuarioRepo, jwtCfg: jwtCfg}
}

// Registrar crea un usuario: hashea el password con bcrypt, persiste y emite
// el token de sesión. Devuelve ErrUsuarioYaExiste si el email ya está tomado.
func (uc *AuthUseCase) Registrar(ctx context.Context, in dto.RegistroRequest) (*dto.TokenResponse, error) {
	existente, err := uc.usuarioRepo.BuscarPorEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrUsuarioYaExiste
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	usuario := &entity.Usuario{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		Rol:          entity.RolUsuario,
		CreadoEn:     time.Now(),
	}
	if err := uc.usuarioRepo.Crear(ctx, usuario); err != nil {
		return nil, err
	}
	return uc.emitirToken(usuario)
}

// Login verifica email/password y emite el token con el rol almacenado.
// Cualquier fallo de credenciales (email desconocido o password incorrecto)
// devuelve ErrCredencialesInvalidas sin distinguir el caso.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.TokenResponse, error) {
	usuario, err := uc.usuarioRepo.BuscarPorEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, domain.ErrCredencialesInvalidas
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usuario.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrCredencialesInvalidas
	}
	return uc.emitirToken(usuario)
}

// SembrarAdmin crea la cuenta admin si no existe (idempotente). Es la única
// vía de elevación de rol: la invocan cmd/seed (variante Mongo) y el arranque
// de la variante en memoria; no hay endpoint que la exponga.
func (uc *AuthUseCase) SembrarAdmin(ctx context.Context, email, password string) error {
	existente, err := uc.usuarioRepo.BuscarPorEmail(ctx, email)
	if err != nil {
		return err
	}
	if existente != nil {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return uc.usuarioRepo.Crear(ctx, &entity.Usuario{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		Rol:          entity.RolAdmin,
		CreadoEn:     time.Now(),
	})
}

func (uc *AuthUseCase) emitirToken(usuario *entity.Usuario) (*dto.TokenResponse, error) {
	token, err := jwt.Generar(uc.jwtCfg.Secret, usuario.Email, string(usuario.Rol), uc.jwtCfg.Issuer, DuracionToken)
	if err != nil {
		return nil, err
	}
	return &dto.TokenResponse{Token: token}, nil
}

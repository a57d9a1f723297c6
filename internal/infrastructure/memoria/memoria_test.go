package memoria_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/libreria-online/internal/domain"
	"github.com/tu-usuario/libreria-online/internal/domain/entity"
	"github.com/tu-usuario/libreria-online/internal/infrastructure/memoria"
)

func TestUsuarioRepo_EmailUnico(t *testing.T) {
	repo := memoria.NewUsuarioRepository()
	ctx := context.Background()

	require.NoError(t, repo.Crear(ctx, &entity.Usuario{Email: "a@x.com", Rol: entity.RolUsuario}))
	err := repo.Crear(ctx, &entity.Usuario{Email: "a@x.com", Rol: entity.RolUsuario})
	assert.ErrorIs(t, err, domain.ErrUsuarioYaExiste)
}

func TestUsuarioRepo_NoEncontradoEsNilNil(t *testing.T) {
	repo := memoria.NewUsuarioRepository()

	u, err := repo.BuscarPorEmail(context.Background(), "nadie@x.com")
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestLibroRepo_OrdenDeInsercion(t *testing.T) {
	repo := memoria.NewLibroRepository()
	ctx := context.Background()

	for _, titulo := range []string{"Primero", "Segundo", "Tercero"} {
		require.NoError(t, repo.Crear(ctx, &entity.Libro{ID: titulo, Titulo: titulo}))
	}

	libros, err := repo.Listar(ctx)
	require.NoError(t, err)
	require.Len(t, libros, 3)
	assert.Equal(t, "Primero", libros[0].Titulo)
	assert.Equal(t, "Segundo", libros[1].Titulo)
	assert.Equal(t, "Tercero", libros[2].Titulo)
}

func TestLibroRepo_BuscarPorID(t *testing.T) {
	repo := memoria.NewLibroRepository()
	ctx := context.Background()

	require.NoError(t, repo.Crear(ctx, &entity.Libro{ID: "libro-1", Titulo: "JS avanzado"}))

	l, err := repo.BuscarPorID(ctx, "libro-1")
	require.NoError(t, err)
	require.NotNil(t, l)
	assert.Equal(t, "JS avanzado", l.Titulo)

	desconocido, err := repo.BuscarPorID(ctx, "no-existe")
	require.NoError(t, err)
	assert.Nil(t, desconocido)
}

// El ledger guarda copias: mutar la compra después de Agregar no altera lo
// registrado.
func TestCompraRepo_RegistroInmutable(t *testing.T) {
	repo := memoria.NewCompraRepository()
	ctx := context.Background()

	compra := &entity.Compra{
		ID:             "compra-1",
		CompradorEmail: "a@x.com",
		Libros: []entity.LineaCompra{
			{Titulo: "JS avanzado", Precio: decimal.NewFromInt(1500), Cantidad: 2},
		},
		Total: decimal.NewFromInt(3000),
	}
	require.NoError(t, repo.Agregar(ctx, compra))

	compra.Libros[0].Cantidad = 99
	compra.Total = decimal.NewFromInt(1)

	guardada, err := repo.BuscarPorID(ctx, "compra-1")
	require.NoError(t, err)
	require.NotNil(t, guardada)
	assert.Equal(t, int64(2), guardada.Libros[0].Cantidad)
	assert.True(t, guardada.Total.Equal(decimal.NewFromInt(3000)))
}

func TestCompraRepo_ListarPorComprador(t *testing.T) {
	repo := memoria.NewCompraRepository()
	ctx := context.Background()

	require.NoError(t, repo.Agregar(ctx, &entity.Compra{ID: "c1", CompradorEmail: "a@x.com"}))
	require.NoError(t, repo.Agregar(ctx, &entity.Compra{ID: "c2", CompradorEmail: "b@x.com"}))
	require.NoError(t, repo.Agregar(ctx, &entity.Compra{ID: "c3", CompradorEmail: "a@x.com"}))

	deA, err := repo.ListarPorComprador(ctx, "a@x.com")
	require.NoError(t, err)
	require.Len(t, deA, 2)
	assert.Equal(t, "c1", deA[0].ID)
	assert.Equal(t, "c3", deA[1].ID)

	todas, err := repo.ListarTodas(ctx)
	require.NoError(t, err)
	assert.Len(t, todas, 3)
}

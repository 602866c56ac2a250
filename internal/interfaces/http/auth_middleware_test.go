package http

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carolinyr9/estocai/internal/domain/entity"
	"github.com/Carolinyr9/estocai/pkg/jwt"
)

const testSecret = "segredo-de-teste"

func buildTestApp() *fiber.App {
	app := fiber.New()
	protected := app.Group("/", AuthMiddleware(testSecret))
	protected.Get("/reader", RequireRole(entity.RoleUser), func(c *fiber.Ctx) error {
		return c.SendString(GetUsername(c))
	})
	protected.Get("/admin", RequireRole(entity.RoleAdmin), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	protected.Patch("/users/:id", RequireSelfOrAdmin(), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func tokenFor(t *testing.T, userID, role string) string {
	t.Helper()
	token, err := jwt.Generate(testSecret, userID, "carol", role, "estocai-test", 15)
	require.NoError(t, err)
	return token
}

func TestAuthMiddleware(t *testing.T) {
	app := buildTestApp()

	t.Run("sem header devolve 401", func(t *testing.T) {
		req := httptest.NewRequest(fiber.MethodGet, "/reader", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("header sem Bearer devolve 401", func(t *testing.T) {
		req := httptest.NewRequest(fiber.MethodGet, "/reader", nil)
		req.Header.Set("Authorization", "Basic abc")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("token adulterado devolve 401", func(t *testing.T) {
		req := httptest.NewRequest(fiber.MethodGet, "/reader", nil)
		req.Header.Set("Authorization", "Bearer "+tokenFor(t, "u1", entity.RoleUser)+"x")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("token válido passa e carrega os locals", func(t *testing.T) {
		req := httptest.NewRequest(fiber.MethodGet, "/reader", nil)
		req.Header.Set("Authorization", "Bearer "+tokenFor(t, "u1", entity.RoleUser))
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})
}

func TestRequireRole(t *testing.T) {
	app := buildTestApp()

	get := func(path, role string) int {
		req := httptest.NewRequest(fiber.MethodGet, path, nil)
		req.Header.Set("Authorization", "Bearer "+tokenFor(t, "u1", role))
		resp, err := app.Test(req)
		require.NoError(t, err)
		return resp.StatusCode
	}

	t.Run("USER acessa rota de leitura", func(t *testing.T) {
		assert.Equal(t, fiber.StatusOK, get("/reader", entity.RoleUser))
	})

	t.Run("ADMIN herda a authority USER", func(t *testing.T) {
		assert.Equal(t, fiber.StatusOK, get("/reader", entity.RoleAdmin))
	})

	t.Run("USER não acessa rota de admin", func(t *testing.T) {
		assert.Equal(t, fiber.StatusForbidden, get("/admin", entity.RoleUser))
	})

	t.Run("ADMIN acessa rota de admin", func(t *testing.T) {
		assert.Equal(t, fiber.StatusOK, get("/admin", entity.RoleAdmin))
	})
}

func TestRequireSelfOrAdmin(t *testing.T) {
	app := buildTestApp()

	patch := func(path, userID, role string) int {
		req := httptest.NewRequest(fiber.MethodPatch, path, nil)
		req.Header.Set("Authorization", "Bearer "+tokenFor(t, userID, role))
		resp, err := app.Test(req)
		require.NoError(t, err)
		return resp.StatusCode
	}

	t.Run("o próprio usuário pode", func(t *testing.T) {
		assert.Equal(t, fiber.StatusOK, patch("/users/u1", "u1", entity.RoleUser))
	})

	t.Run("outro usuário comum não pode", func(t *testing.T) {
		assert.Equal(t, fiber.StatusForbidden, patch("/users/u2", "u1", entity.RoleUser))
	})

	t.Run("ADMIN pode sobre qualquer id", func(t *testing.T) {
		assert.Equal(t, fiber.StatusOK, patch("/users/u2", "admin", entity.RoleAdmin))
	})
}

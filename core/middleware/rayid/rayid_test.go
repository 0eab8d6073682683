package rayid

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	app := fiber.New()
	app.Use(New())
	var local string
	app.Get("/", func(c *fiber.Ctx) error {
		local, _ = c.Locals(LocalKey).(string)
		return c.SendStatus(fiber.StatusNoContent)
	})

	t.Run("Generated", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
		require.NoError(t, err)

		id := resp.Header.Get(Header)
		_, err = uuid.Parse(id)
		assert.NoError(t, err)
		assert.Equal(t, id, local)
	})

	t.Run("Propagated", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set(Header, "upstream-ray")
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, "upstream-ray", resp.Header.Get(Header))
		assert.Equal(t, "upstream-ray", local)
	})
}

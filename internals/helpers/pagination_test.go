package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolveFor(t *testing.T, target string) Paging {
	t.Helper()

	var got Paging
	app := fiber.New()
	app.Get("/items", func(c *fiber.Ctx) error {
		got = ResolvePaging(c, 20, 100)
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	return got
}

func TestResolvePaging(t *testing.T) {
	tests := []struct {
		target      string
		wantPage    int
		wantPerPage int
		wantOffset  int
	}{
		{"/items", 1, 20, 0},
		{"/items?page=3&per_page=10", 3, 10, 20},
		{"/items?page=2&limit=15", 2, 15, 15},
		{"/items?page=0&per_page=-5", 1, 20, 0},
		{"/items?per_page=500", 1, 100, 0},
		{"/items?page=abc", 1, 20, 0},
	}
	for _, tc := range tests {
		p := resolveFor(t, tc.target)
		assert.Equal(t, tc.wantPage, p.Page, tc.target)
		assert.Equal(t, tc.wantPerPage, p.PerPage, tc.target)
		assert.Equal(t, tc.wantOffset, p.Offset, tc.target)
	}
}

func TestBuildPagination(t *testing.T) {
	p := BuildPagination(45, Paging{Page: 2, PerPage: 20, Offset: 20, Limit: 20})
	assert.Equal(t, 3, p.TotalPages)
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrev)

	last := BuildPagination(45, Paging{Page: 3, PerPage: 20, Offset: 40, Limit: 20})
	assert.False(t, last.HasNext)
}

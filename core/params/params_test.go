package params

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func queryContext(t *testing.T, rawQuery string) echo.Context {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/?"+rawQuery, nil)
	return echo.New().NewContext(req, httptest.NewRecorder())
}

func TestNewQueryParamsDefaults(t *testing.T) {
	p := NewQueryParams(queryContext(t, ""))

	assert.Equal(t, 0, p.PageNumber)
	assert.Equal(t, DefaultPageSize, p.PageSize)
	assert.Empty(t, p.Search)
}

func TestNewQueryParamsClampsPageSize(t *testing.T) {
	p := NewQueryParams(queryContext(t, "page=2&page_size=500&search=padel"))

	assert.Equal(t, 2, p.PageNumber)
	assert.Equal(t, MaxPageSize, p.PageSize)
	assert.Equal(t, "padel", p.Search)
}

func TestNewQueryParamsRejectsNegativePage(t *testing.T) {
	p := NewQueryParams(queryContext(t, "page=-3&page_size=-1"))

	assert.Equal(t, 0, p.PageNumber)
	assert.Equal(t, DefaultPageSize, p.PageSize)
}

func TestOffset(t *testing.T) {
	p := QueryParams{PageNumber: 3, PageSize: 25}

	assert.Equal(t, 25, p.Limit())
	assert.Equal(t, 75, p.Offset())
}

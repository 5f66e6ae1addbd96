//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"adslot-panel/internal/handler/httperr"
	"adslot-panel/internal/handler/middleware"
	"adslot-panel/internal/pkg/errs"
	"adslot-panel/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newErrorHandlerRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.ErrorHandler())
	return router
}

func TestErrorHandler(t *testing.T) {
	t.Run("abort writes the envelope and records a public error", func(t *testing.T) {
		router := newErrorHandlerRouter()
		router.GET("/boom", func(c *gin.Context) {
			httperr.AbortWithError(c, http.StatusBadGateway, errs.New("sheet timeout"), "Record store unavailable", nil)
		})

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/boom", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusBadGateway, "Record store unavailable")
	})

	t.Run("renders a recorded public error when the handler wrote nothing", func(t *testing.T) {
		router := newErrorHandlerRouter()
		router.GET("/silent", func(c *gin.Context) {
			resp := httperr.Response{Status: http.StatusNotFound}
			resp.Error.Message = "Booking not found"
			_ = c.Error(&gin.Error{Err: errs.New("missing id"), Type: gin.ErrorTypePublic, Meta: resp})
		})

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/silent", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusNotFound, "Booking not found")
	})

	t.Run("falls back to a generic envelope when no error was recorded", func(t *testing.T) {
		router := newErrorHandlerRouter()
		router.GET("/empty", func(c *gin.Context) {})

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/empty", nil, "")
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlash_RoundTrip(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// First request sets the flash
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	SetFlash(c, "error", "Please log in to continue.")

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies, "SetFlash should write a cookie")

	// Second request carries the cookie and takes the flash
	w2 := httptest.NewRecorder()
	c2, _ := gin.CreateTestContext(w2)
	c2.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	for _, cookie := range cookies {
		c2.Request.AddCookie(cookie)
	}

	flash := TakeFlash(c2)
	require.NotNil(t, flash)
	assert.Equal(t, "error", flash.Category)
	assert.Equal(t, "Please log in to continue.", flash.Message)

	// TakeFlash clears the cookie
	cleared := false
	for _, cookie := range w2.Result().Cookies() {
		if cookie.Name == "flash" && cookie.MaxAge < 0 {
			cleared = true
		}
	}
	assert.True(t, cleared, "TakeFlash should expire the cookie")
}

func TestTakeFlash_NoCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	assert.Nil(t, TakeFlash(c))
}

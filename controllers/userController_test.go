package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"gopkg.in/go-playground/assert.v1"
)

func TestLoginRejectsPayloadWithoutPassword(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/users/login", strings.NewReader(`{"email":"waiter@example.com"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	Login()(c)

	assert.Equal(t, w.Code, http.StatusBadRequest)
}

func TestLoginRejectsPayloadWithoutEmail(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/users/login", strings.NewReader(`{"password":"secret123"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	Login()(c)

	assert.Equal(t, w.Code, http.StatusBadRequest)
}

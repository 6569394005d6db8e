package logmodule

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
)

func TestGinrusLogsRequest(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Ginrus("API"))
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/bad", func(c *gin.Context) { c.Status(http.StatusBadRequest) })

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/ok", nil))
	entry := hook.LastEntry()
	assert.Equal(t, log.InfoLevel, entry.Level)
	assert.Equal(t, "API", entry.Data["prefix"])
	assert.Equal(t, "/ok", entry.Data["path"])

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/bad", nil))
	assert.Equal(t, log.WarnLevel, hook.LastEntry().Level)
}

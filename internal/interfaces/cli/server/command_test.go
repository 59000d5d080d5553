package server

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestMapEnvToGinMode(t *testing.T) {
	cases := map[string]string{
		"production":  gin.ReleaseMode,
		"prod":        gin.ReleaseMode,
		"release":     gin.ReleaseMode,
		"test":        gin.TestMode,
		"testing":     gin.TestMode,
		"development": gin.DebugMode,
		"":            gin.DebugMode,
		"staging":     gin.DebugMode,
	}
	for in, want := range cases {
		assert.Equal(t, want, mapEnvToGinMode(in), in)
	}
}

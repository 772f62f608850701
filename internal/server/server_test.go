package server

import (
	"net"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/rhydam1003/demo-erp/internal/config"
)

// A failed ListenAndServe must still run the shutdown path so held
// resources are released before the error is returned.
func TestRunCleansUpWhenStartFails(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// Occupy a port so the server cannot bind it
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer listener.Close()
	port := listener.Addr().(*net.TCPAddr).Port

	cfg := &config.Config{}
	cfg.Server.Port = strconv.Itoa(port)

	s := &Server{
		config: cfg,
		router: gin.New(),
		logger: zerolog.Nop(),
	}

	err = s.Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error starting server")
}

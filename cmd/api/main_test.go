package main

import (
	"net"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harentsoaR/doctors-portal-api/internal/config"
	"github.com/harentsoaR/doctors-portal-api/internal/services"
)

func TestCorsConfig(t *testing.T) {
	all := corsConfig([]string{"*"})
	assert.True(t, all.AllowAllOrigins)
	assert.False(t, all.AllowCredentials)

	some := corsConfig([]string{"https://portal.example"})
	assert.False(t, some.AllowAllOrigins)
	assert.Equal(t, []string{"https://portal.example"}, some.AllowOrigins)
	assert.True(t, some.AllowCredentials)
}

func TestNewVerifierSelection(t *testing.T) {
	assert.IsType(t, services.DisabledVerifier{}, newVerifier(&config.Config{}))
	assert.IsType(t, &services.JWTVerifier{}, newVerifier(&config.Config{JWTSecret: "s"}))
}

func TestConnectMongoWithoutURI(t *testing.T) {
	client, db := connectMongo(&config.Config{})
	assert.Nil(t, client)
	assert.Nil(t, db)
}

func TestNewRouterIgnoresForwardedForByDefault(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tests := []struct {
		name    string
		proxies []string
		want    string
	}{
		{"no trusted proxies", nil, "192.0.2.1"},
		{"peer is trusted", []string{"192.0.2.0/24"}, "203.0.113.9"},
		{"invalid entry trusts none", []string{"not-a-cidr"}, "192.0.2.1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRouter(&config.Config{TrustedProxies: tt.proxies})
			r.GET("/ip", func(c *gin.Context) { c.String(http.StatusOK, c.ClientIP()) })

			req := httptest.NewRequest(http.MethodGet, "/ip", nil)
			req.Header.Set("X-Forwarded-For", "203.0.113.9")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.want, w.Body.String())
		})
	}
}

func TestRunReturnsListenError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ln, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	defer ln.Close()

	_, port, err := net.SplitHostPort(ln.Addr().String())
	require.NoError(t, err)
	for _, k := range []string{"MONGO_URI", "DB_CLUSTER", "FIREBASE_SERVICE_ACCOUNT", "JWT_SECRET", "TRUSTED_PROXIES"} {
		t.Setenv(k, "")
	}
	t.Setenv("PORT", port)

	assert.Error(t, run())
}

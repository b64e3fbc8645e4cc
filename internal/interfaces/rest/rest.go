// Package rest exposes the inventory over HTTP: account and customer CRUD,
// slot transitions, notifier configuration, dashboard stats and a
// server-sent-events feed of store snapshots.
package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/medeiros-dev/reseller-vault/configs"
	"github.com/medeiros-dev/reseller-vault/internal/domain/port/store"
	"github.com/medeiros-dev/reseller-vault/internal/observability/metrics"
	"github.com/medeiros-dev/reseller-vault/internal/usecases/accounts"
	"github.com/medeiros-dev/reseller-vault/internal/usecases/customers"
	"github.com/medeiros-dev/reseller-vault/internal/usecases/digest"
	"github.com/medeiros-dev/reseller-vault/internal/usecases/slots"
)

// DigestDispatcher is what the test-send endpoint needs from the digest side.
type DigestDispatcher interface {
	Handle(ctx context.Context) (digest.Result, error)
}

// Server bundles the use cases behind the HTTP surface.
type Server struct {
	accounts  accounts.UseCaseInterface
	customers customers.UseCaseInterface
	slots     slots.EngineInterface
	store     store.Store
	digest    DigestDispatcher
}

func NewServer(
	accountsUC accounts.UseCaseInterface,
	customersUC customers.UseCaseInterface,
	slotEngine slots.EngineInterface,
	st store.Store,
	digestHandler DigestDispatcher,
) *Server {
	return &Server{
		accounts:  accountsUC,
		customers: customersUC,
		slots:     slotEngine,
		store:     st,
		digest:    digestHandler,
	}
}

// Router builds the gin engine with tracing, metrics and token auth wired in.
func (s *Server) Router(cfg *configs.Config) *gin.Engine {
	srv := gin.Default()
	srv.Use(otelgin.Middleware(cfg.OtelServiceName))

	srv.Use(func(c *gin.Context) {
		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = c.Request.URL.Path
		}
		if endpoint == "/metrics" {
			c.Next()
			return
		}
		start := time.Now()
		c.Next()
		status := c.Writer.Status()
		metrics.HttpRequestsTotal.WithLabelValues(endpoint, http.StatusText(status)).Inc()
		metrics.HttpRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	})

	srv.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	srv.GET("/metrics", gin.WrapH(metrics.MetricsHandler()))

	api := srv.Group("/api", bearerAuth(cfg.APIToken))
	{
		api.GET("/accounts", s.listAccounts)
		api.POST("/accounts", s.createAccount)
		api.GET("/accounts/:id", s.getAccount)
		api.PUT("/accounts/:id", s.updateAccount)
		api.DELETE("/accounts/:id", s.deleteAccount)
		api.PUT("/accounts/:id/slots/:slotId", s.assignSlot)
		api.DELETE("/accounts/:id/slots/:slotId", s.clearSlot)

		api.GET("/customers", s.listCustomers)
		api.POST("/customers", s.createCustomer)
		api.DELETE("/customers/:id", s.deleteCustomer)

		api.GET("/notifier-config", s.getNotifierConfig)
		api.PUT("/notifier-config", s.putNotifierConfig)
		api.POST("/notifier-config/test", s.testSend)

		api.GET("/stats", s.getStats)
		api.GET("/service-defaults", s.serviceDefaults)
		api.GET("/feed", s.feed)
	}

	return srv
}

// bearerAuth enforces a static bearer token. An empty configured token
// disables auth entirely, which is the single-user localhost setup.
func bearerAuth(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token == "" {
			c.Next()
			return
		}
		if c.GetHeader("Authorization") != "Bearer "+token {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or missing token"})
			return
		}
		c.Next()
	}
}

package server

import (
	"context"
	"net/http"
	"time"

	"github.com/a13312860897-create/invomate-sub001/internal/config"
	invoicedomain "github.com/a13312860897-create/invomate-sub001/internal/invoice/domain"
	reportingdomain "github.com/a13312860897-create/invomate-sub001/internal/reporting/domain"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Config    config.Config
	Log       *zap.Logger
	Engine    *gin.Engine
	Reporting reportingdomain.Service
	Invoices  invoicedomain.Service
}

type Server struct {
	cfg          config.Config
	log          *zap.Logger
	engine       *gin.Engine
	reportingSvc reportingdomain.Service
	invoiceSvc   invoicedomain.Service
}

func NewEngine(cfg config.Config) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(ErrorHandlingMiddleware())
	return engine
}

func NewServer(p Params) *Server {
	return &Server{
		cfg:          p.Config,
		log:          p.Log.Named("server"),
		engine:       p.Engine,
		reportingSvc: p.Reporting,
		invoiceSvc:   p.Invoices,
	}
}

func (s *Server) RegisterRoutes() {
	s.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	s.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := s.engine.Group("/v1")
	owners := v1.Group("/owners/:owner_id")

	owners.GET("/reports/:month", s.GetUnifiedReport)
	owners.GET("/reports/:month/consistency", s.GetReportConsistency)
	owners.DELETE("/reports", s.InvalidateReports)

	owners.POST("/invoices", s.CreateInvoice)
	owners.GET("/invoices", s.ListInvoices)
	owners.GET("/invoices/:id", s.GetInvoice)
	owners.PUT("/invoices/:id", s.UpdateInvoice)
	owners.DELETE("/invoices/:id", s.DeleteInvoice)
}

func RunHTTP(lc fx.Lifecycle, s *Server) {
	srv := &http.Server{
		Addr:              s.cfg.HTTPAddr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			s.log.Info("http server starting", zap.String("addr", s.cfg.HTTPAddr))
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					s.log.Error("http server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})
}

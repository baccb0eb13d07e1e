package bootstrap

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	httpapi "github.com/Yash-N0007/Risk-Aware-Legal-NLP/internal/api/http"
	"github.com/Yash-N0007/Risk-Aware-Legal-NLP/internal/api/http/middleware"
	"github.com/Yash-N0007/Risk-Aware-Legal-NLP/internal/docreview/clause"
	"github.com/Yash-N0007/Risk-Aware-Legal-NLP/internal/docreview/facade"
	docreviewhttp "github.com/Yash-N0007/Risk-Aware-Legal-NLP/internal/docreview/http"
	"github.com/Yash-N0007/Risk-Aware-Legal-NLP/internal/docreview/session"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	EngineURL   string
	CORSOrigins []string
	Facade      facade.Facade
	Store       *clause.Store
	Sessions    *session.Repository
	Redis       *redis.Client
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = dep.CORSOrigins
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "X-Request-Id", "X-Session-Id")
	corsCfg.ExposeHeaders = append(corsCfg.ExposeHeaders, "X-Request-Id", "X-Session-Id")
	r.Use(cors.New(corsCfg))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.EngineURL, dep.Redis)
	healthHandler.RegisterRoutes(r)

	api := r.Group("/api/v1")
	api.Use(middleware.RequestID())

	handler := docreviewhttp.NewHandler(dep.Facade, dep.Store, dep.Sessions)
	docreviewhttp.Register(api, handler)

	return r
}

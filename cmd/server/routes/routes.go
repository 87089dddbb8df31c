package routes

import (
	"errors"
	"net/http"
	"slices"

	"fichas-crud/internal/cadastro/domain/ficha"
	"fichas-crud/internal/pkg/log/acess_log"
	"fichas-crud/internal/web/handler"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "fichas-crud/docs"
)

// Deps são as dependências já construídas que o roteador expõe.
type Deps struct {
	Env         string
	CORSOrigins []string
	Logger      *zap.Logger
	Ficha       ficha.Controller
	Web         *handler.WebHandler
}

func SetupRouter(deps Deps) (*gin.Engine, error) {
	if deps.Ficha == nil || deps.Web == nil || deps.Logger == nil {
		return nil, errors.New("dependências do roteador incompletas")
	}

	switch deps.Env {
	case "prod":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(acess_log.Middleware(deps.Logger))
	r.Use(cors.New(corsConfig(deps.CORSOrigins)))

	// Acessível em /doc/index.html
	r.GET("/doc/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	deps.Web.Routes(r)
	SetupApiRoutes(r, deps.Ficha)
	return r, nil
}

func SetupApiRoutes(r *gin.Engine, fichaController ficha.Controller) {
	route := r.Group("/api")
	fichaController.Routes(route)
}

// corsConfig libera qualquer origem quando a lista está vazia ou contém "*".
func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", acess_log.RayTraceHeader},
		ExposeHeaders: []string{acess_log.RayTraceHeader},
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}

package bootstrap

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	httpapi "github.com/resume-site/resume-backend/internal/api/http"
	"github.com/resume-site/resume-backend/internal/api/http/middleware"
	authhttp "github.com/resume-site/resume-backend/internal/auth/http"
	authmw "github.com/resume-site/resume-backend/internal/auth/middleware"
	authrepo "github.com/resume-site/resume-backend/internal/auth/repository"
	authsvc "github.com/resume-site/resume-backend/internal/auth/service"
	"github.com/resume-site/resume-backend/internal/auth/token"
	"github.com/resume-site/resume-backend/internal/presence"
	presencehttp "github.com/resume-site/resume-backend/internal/presence/http"
	requestshttp "github.com/resume-site/resume-backend/internal/requests/http"
	requestsrepo "github.com/resume-site/resume-backend/internal/requests/repository"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	Tokens      *token.Service
	Hub         *presence.Hub
	DB          *pgxpool.Pool // nil in degraded mode
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())

	// The site is served from a different origin; mirror its
	// allow-everything CORS posture.
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	r.Use(cors.New(corsCfg))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.DB)
	healthHandler.RegisterRoutes(r)

	presenceHandler := presencehttp.NewHandler(dep.Hub)
	presenceHandler.RegisterRoutes(r)

	api := r.Group("/api")
	api.Use(middleware.RequireDB(dep.DB))

	userRepo := authrepo.NewUserRepository(dep.DB)
	authService := authsvc.NewAuthService(userRepo, dep.Tokens)
	authHandler := authhttp.NewHandler(authService)
	authHandler.Register(api.Group("/auth"))

	requestRepo := requestsrepo.NewRepo(dep.DB)
	requestHandler := requestshttp.NewHandler(requestRepo)

	public := api.Group("/project-requests")
	authed := api.Group("/project-requests")
	authed.Use(authmw.RequireAuth(dep.Tokens, userRepo))
	requestHandler.Register(public, authed)

	return r
}

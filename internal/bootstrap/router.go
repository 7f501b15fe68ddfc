package bootstrap

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/time/rate"

	httpapi "github.com/devfolio/portfolio-backend/internal/api/http"
	"github.com/devfolio/portfolio-backend/internal/api/http/middleware"
	authhttp "github.com/devfolio/portfolio-backend/internal/auth/http"
	authmw "github.com/devfolio/portfolio-backend/internal/auth/middleware"
	authrepo "github.com/devfolio/portfolio-backend/internal/auth/repository"
	authservice "github.com/devfolio/portfolio-backend/internal/auth/service"
	"github.com/devfolio/portfolio-backend/internal/cache"
	contacthttp "github.com/devfolio/portfolio-backend/internal/contact/http"
	contactrepo "github.com/devfolio/portfolio-backend/internal/contact/repository"
	contactservice "github.com/devfolio/portfolio-backend/internal/contact/service"
	projecthttp "github.com/devfolio/portfolio-backend/internal/projects/http"
	projectrepo "github.com/devfolio/portfolio-backend/internal/projects/repository"
	projectservice "github.com/devfolio/portfolio-backend/internal/projects/service"
	"github.com/devfolio/portfolio-backend/internal/uploader"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	DB          *pgxpool.Pool
	Uploader    *uploader.Client
	Cache       *cache.ListingCache
	JWTSecret   []byte
	TokenTTL    time.Duration
	CORSOrigins []string
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = dep.CORSOrigins
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	r.Use(cors.New(corsCfg))

	// Same typed-nil care as the cache below: a nil pool must stay a nil Pinger.
	var dbPing httpapi.Pinger
	if dep.DB != nil {
		dbPing = dep.DB
	}
	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dbPing)
	healthHandler.RegisterRoutes(r)

	api := r.Group("/api")

	guard := authmw.BearerAuth(dep.JWTSecret)

	// The cache is optional; a nil *ListingCache must stay a nil interface.
	var listingCache projectservice.ListingCache
	if dep.Cache != nil {
		listingCache = dep.Cache
	}

	projectRepo := projectrepo.NewRepo(dep.DB)
	projectSvc := projectservice.NewProjectService(projectRepo, dep.Uploader, listingCache)
	projecthttp.New(projectSvc).Register(api.Group("/projects"), guard)

	contactRepo := contactrepo.NewRepo(dep.DB)
	contactSvc := contactservice.NewContactService(contactRepo)
	contactLimit := middleware.RateLimit(rate.Every(time.Minute/5), 5)
	contacthttp.New(contactSvc).Register(api.Group("/contact"), contactLimit, guard)

	userRepo := authrepo.NewUserRepo(dep.DB)
	authSvc := authservice.NewAuthService(userRepo, dep.JWTSecret, dep.TokenTTL)
	authhttp.New(authSvc).Register(api.Group("/auth"))

	return r
}

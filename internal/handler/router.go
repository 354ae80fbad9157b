package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"maya-connect/internal/domain/user"
	"maya-connect/internal/handler/api"
	"maya-connect/internal/handler/middleware"
	"maya-connect/internal/pkg/config"
	"maya-connect/internal/pkg/validation"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth         *api.AuthHandler
	Signup       *api.SignupHandler
	QR           *api.QRHandler
	Partner      *api.PartnerHandler
	Transaction  *api.TransactionHandler
	Subscription *api.SubscriptionHandler
	Dashboard    *api.DashboardHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	validation.RegisterBinding()
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		addRoutes(apiGroup.Group("/signup"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Signup.Submit},
			{Method: http.MethodPost, Path: "/validate", Handler: h.Signup.ValidateStep},
			{Method: http.MethodPost, Path: "/format-birth-date", Handler: h.Signup.FormatBirthDate},
		})

		member := apiGroup.Group("")
		member.Use(authMiddleware.RequireAuth())
		{
			addRoutes(member, []route{
				{Method: http.MethodGet, Path: "/qr", Handler: h.QR.Current},
				{Method: http.MethodPost, Path: "/qr/refresh", Handler: h.QR.Refresh},
				{Method: http.MethodGet, Path: "/qr/export", Handler: h.QR.Export},
				{Method: http.MethodGet, Path: "/qr/stream", Handler: h.QR.Stream},

				{Method: http.MethodGet, Path: "/partners/nearby-offers", Handler: h.Partner.NearbyOffers},
				{Method: http.MethodGet, Path: "/partners/:id", Handler: h.Partner.Get},
				{Method: http.MethodGet, Path: "/stores/nearby", Handler: h.Partner.NearbyStores},

				{Method: http.MethodGet, Path: "/transactions", Handler: h.Transaction.List},
				{Method: http.MethodGet, Path: "/transactions/summary", Handler: h.Transaction.Summary},

				{Method: http.MethodGet, Path: "/subscriptions/status", Handler: h.Subscription.Status},

				{
					Method:  http.MethodGet,
					Path:    "/partner/dashboard",
					Handler: h.Dashboard.Get,
					Mw:      []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(user.RolePartner)},
				},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}

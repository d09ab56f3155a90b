package ginserver

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	gin "github.com/gin-gonic/gin"

	"travelgo/internal/infra/config"
	"travelgo/internal/infra/obs"
)

type TourHTTP interface {
	Catalog(c *gin.Context)
	Detail(c *gin.Context)
}

type CopyHTTP interface {
	Block(c *gin.Context)
}

type SearchHTTP interface {
	Submit(c *gin.Context)
}

type PageHTTP interface {
	Create(c *gin.Context)
	Get(c *gin.Context)
	Close(c *gin.Context)
	SetFilters(c *gin.Context)
	InputPrice(c *gin.Context)
	ClearFilter(c *gin.Context)
	ApplySearch(c *gin.Context)
	ApplyStoredSearch(c *gin.Context)
	SetLanguage(c *gin.Context)
	SetSearchValues(c *gin.Context)
	SubmitSearch(c *gin.Context)
}

type PickerHTTP interface {
	Get(c *gin.Context)
	Open(c *gin.Context)
	Click(c *gin.Context)
	Inputs(c *gin.Context)
	Apply(c *gin.Context)
	Cancel(c *gin.Context)
	Key(c *gin.Context)
	Focus(c *gin.Context)
}

type PreferencesHTTP interface {
	Get(c *gin.Context)
	Update(c *gin.Context)
}

type Handlers struct {
	Tours       TourHTTP
	Copy        CopyHTTP
	Search      SearchHTTP
	Pages       PageHTTP
	Picker      PickerHTTP
	Preferences PreferencesHTTP
	Metrics     gin.HandlerFunc
}

func NewServer(cfg config.Config, obsMW obs.Middleware, health obs.HealthHandlers, h Handlers) *http.Server {
	mode := configureGinMode(cfg.Env)
	if obsMW.Logger != nil {
		obsMW.Logger.Info("gin initialized", "mode", mode)
	}
	return &http.Server{Addr: cfg.HTTPAddr, Handler: NewRouter(cfg, obsMW, health, h)}
}

// NewRouter builds the route table without touching the global gin mode.
func NewRouter(cfg config.Config, obsMW obs.Middleware, health obs.HealthHandlers, h Handlers) *gin.Engine {
	origins := cfg.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(obsMW.Handlers()...)
	router.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		ExposeHeaders: []string{
			"Content-Length",
			"Content-Type",
			"X-Request-ID",
		},
		MaxAge: 12 * time.Hour,
	}))

	router.GET("/livez", health.Livez)
	router.GET("/readyz", health.Readyz)
	if h.Metrics != nil {
		router.GET("/metrics", h.Metrics)
	}

	api := router.Group("/api/v1")
	if h.Tours != nil {
		api.GET("/tours", h.Tours.Catalog)
		api.GET("/tours/:id", h.Tours.Detail)
	}
	if h.Copy != nil {
		api.GET("/copy/:region", h.Copy.Block)
	}
	if h.Search != nil {
		api.POST("/search", h.Search.Submit)
	}
	if h.Preferences != nil {
		api.GET("/preferences/:client", h.Preferences.Get)
		api.PUT("/preferences/:client", h.Preferences.Update)
	}
	if h.Pages != nil {
		pageGroup := api.Group("/pages")
		pageGroup.POST("", h.Pages.Create)
		pageGroup.GET("/:id", h.Pages.Get)
		pageGroup.DELETE("/:id", h.Pages.Close)
		pageGroup.PUT("/:id/filters", h.Pages.SetFilters)
		pageGroup.POST("/:id/price", h.Pages.InputPrice)
		pageGroup.DELETE("/:id/filters/:key", h.Pages.ClearFilter)
		pageGroup.POST("/:id/search", h.Pages.ApplySearch)
		pageGroup.POST("/:id/search/stored", h.Pages.ApplyStoredSearch)
		pageGroup.PUT("/:id/search/form", h.Pages.SetSearchValues)
		pageGroup.POST("/:id/search/form/submit", h.Pages.SubmitSearch)
		pageGroup.PUT("/:id/language", h.Pages.SetLanguage)
		if h.Picker != nil {
			pageGroup.GET("/:id/picker", h.Picker.Get)
			pageGroup.POST("/:id/picker/:form/open", h.Picker.Open)
			pageGroup.POST("/:id/picker/click", h.Picker.Click)
			pageGroup.PUT("/:id/picker/inputs", h.Picker.Inputs)
			pageGroup.POST("/:id/picker/apply", h.Picker.Apply)
			pageGroup.POST("/:id/picker/cancel", h.Picker.Cancel)
			pageGroup.POST("/:id/picker/key", h.Picker.Key)
			pageGroup.POST("/:id/picker/focus", h.Picker.Focus)
		}
	}
	return router
}

func configureGinMode(env string) string {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "debug", "dev", "local":
		gin.SetMode(gin.DebugMode)
		return gin.DebugMode
	case "test", "testing":
		gin.SetMode(gin.TestMode)
		return gin.TestMode
	default:
		gin.SetMode(gin.ReleaseMode)
		return gin.ReleaseMode
	}
}

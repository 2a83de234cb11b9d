package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Gk2403-techi/greenscape/internal/appointment"
	"github.com/Gk2403-techi/greenscape/internal/chat"
	"github.com/Gk2403-techi/greenscape/internal/logging"
	"github.com/Gk2403-techi/greenscape/internal/middleware"
	"github.com/Gk2403-techi/greenscape/internal/plan"
)

type Deps struct {
	Plan        *plan.Handler
	Chat        *chat.Handler
	Schedule    *appointment.Handler
	Logger      *zap.Logger
	CORSOrigins []string
	StaticDir   string
}

func NewRouter(d Deps) (*gin.Engine, error) {
	logger := logging.OrNop(d.Logger)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(logger), middleware.Recovery(logger))

	if len(d.CORSOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     d.CORSOrigins,
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
			ExposeHeaders:    []string{middleware.RequestIDHeader},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	tmpl, err := loadTemplates()
	if err != nil {
		return nil, err
	}
	r.SetHTMLTemplate(tmpl)

	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/favicon.ico", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{})
	})

	if d.StaticDir != "" {
		r.Static("/static", d.StaticDir)
	}

	if d.Plan != nil {
		r.GET("/", d.Plan.Index)
		r.POST("/generate", d.Plan.Generate)
	}
	if d.Chat != nil {
		r.POST("/chat", d.Chat.Chat)
	}
	if d.Schedule != nil {
		r.POST("/schedule", d.Schedule.Schedule)
	}

	return r, nil
}

package server

import (
	"github.com/nfrund/denik/internal/handlers"
	"github.com/samber/do/v2"
)

// RegisterRoutes sets up all the application routes.
func (s *Server) RegisterRoutes() {
	homeHandler := do.MustInvoke[*handlers.HomeHandler](s.injector)
	authHandler := do.MustInvoke[*handlers.AuthHandler](s.injector)
	themeHandler := do.MustInvoke[*handlers.ThemeHandler](s.injector)

	s.E.GET("/", homeHandler.HomeGet)
	s.E.GET("/theme.css", themeHandler.CSSGet)
	s.E.GET("/health", handlers.HealthGet)

	auth := s.E.Group("/auth")
	auth.GET("", authHandler.ScreenGet)
	auth.GET("/tab/:tab", authHandler.TabGet)
	auth.POST("/login", authHandler.LoginPost)
	auth.POST("/register", authHandler.RegisterPost)
	auth.GET("/logout", authHandler.Logout)
}

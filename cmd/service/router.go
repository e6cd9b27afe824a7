package service

import (
	"html/template"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/saas-journey/journey/app/core"
	"github.com/saas-journey/journey/app/response"
	"github.com/saas-journey/journey/cmd/service/handler"
	"github.com/saas-journey/journey/cmd/service/middleware"
	"github.com/saas-journey/journey/pkg/utils"
)

func serve(core *core.Core) {
	httpSrv := &handler.HttpSrv{
		Core:   core,
		Engine: core.HttpEngine(),
	}
	setupHttpRouter(httpSrv)

	core.HttpEngine().Run(core.Cfg().Addr)
}

func setupHttpRouter(s *handler.HttpSrv) {
	s.Engine.SetFuncMap(template.FuncMap{
		"formatDate": utils.FormatDate,
		"relTime":    utils.FormatRelativeTime,
		"truncate": func(text string) string {
			return utils.Truncate(text, utils.DEFAULT_TRUNCATE_LENGTH)
		},
		"moodEmoji": utils.MoodEmoji,
		"tagColor":  utils.TagColor,
	})
	s.Engine.LoadHTMLGlob("./tpls/*")
	s.Engine.Static("/static", "./static")

	s.Engine.Use(middleware.I18n(), response.NewResponse())
	s.Engine.Use(middleware.Cors)
	s.Engine.Use(middleware.AcceptLanguage())
	s.Engine.Use(middleware.RequestMetrics(s.Core))

	s.Engine.GET("/metrics", func(c *gin.Context) {
		promhttp.Handler().ServeHTTP(c.Writer, c.Request)
	})

	// 页面路由，每个请求都会刷新会话
	pages := s.Engine.Group("", middleware.SessionRefresh(s.Core))
	{
		pages.GET("/", s.HomePage)
		pages.GET("/login", s.LoginPage)
		pages.GET("/journal", s.JournalListPage)
		pages.GET("/journal/new", s.NewEntryPage)
		pages.GET("/journal/:id", s.EntryDetailPage)
	}

	apiV1 := s.Engine.Group("/api/v1")
	{
		apiV1.POST("/login", s.Login)
		apiV1.POST("/register", s.Register)
		apiV1.POST("/logout", s.Logout)

		authed := apiV1.Group("")
		authed.Use(middleware.Authorization(s.Core))

		authed.GET("/user/info", s.GetUser)

		journal := authed.Group("/journal")
		{
			journal.GET("/entries", s.ListEntries)
			journal.POST("/entry", s.CreateEntry)
			journal.GET("/entry/:id", s.GetEntry)
			journal.PUT("/entry/:id", s.UpdateEntry)
			journal.DELETE("/entry/:id", s.DeleteEntry)

			journal.GET("/draft", s.GetDraft)
			journal.PUT("/draft", s.SaveDraft)
			journal.DELETE("/draft", s.ClearDraft)
		}
	}
}

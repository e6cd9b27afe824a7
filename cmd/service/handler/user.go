package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	v1 "github.com/saas-journey/journey/app/logic/v1"
	"github.com/saas-journey/journey/app/response"
	"github.com/saas-journey/journey/pkg/errors"
	"github.com/saas-journey/journey/pkg/i18n"
	"github.com/saas-journey/journey/pkg/utils"
)

type LoginRequest struct {
	Email    string `json:"email" form:"email" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

func (s *HttpSrv) setSessionCookie(c *gin.Context, token string, maxAge int) {
	cfg := s.Core.Cfg().Session
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(cfg.Name(), token, maxAge, "/", cfg.CookieDomain, cfg.CookieSecure, true)
}

func (s *HttpSrv) Login(c *gin.Context) {
	var (
		err error
		req LoginRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	result, err := v1.NewAuthLogic(c, s.Core).Login(req.Email, req.Password)
	if err != nil {
		response.APIError(c, err)
		return
	}

	s.setSessionCookie(c, result.Token, int(s.Core.SessionTTL().Seconds()))
	response.APISuccess(c, result)
}

func (s *HttpSrv) Register(c *gin.Context) {
	var (
		err error
		req LoginRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	result, err := v1.NewAuthLogic(c, s.Core).Register(req.Email, req.Password)
	if err != nil {
		response.APIError(c, err)
		return
	}

	s.setSessionCookie(c, result.Token, int(s.Core.SessionTTL().Seconds()))
	response.APISuccess(c, result)
}

func (s *HttpSrv) Logout(c *gin.Context) {
	token, _ := c.Cookie(s.Core.Cfg().Session.Name())
	if err := v1.NewAuthLogic(c, s.Core).Logout(token); err != nil {
		response.APIError(c, err)
		return
	}

	s.setSessionCookie(c, "", -1)
	response.APISuccess(c, nil)
}

func (s *HttpSrv) GetUser(c *gin.Context) {
	claims, ok := v1.InjectTokenClaim(c)
	if !ok {
		response.APIError(c, errors.New("handler.GetUser", i18n.ERROR_UNAUTHORIZED, nil).Code(http.StatusUnauthorized))
		return
	}
	response.APISuccess(c, gin.H{
		"user_id": claims.User,
		"email":   claims.Email,
	})
}

package handler

import (
	"github.com/gin-gonic/gin"

	v1 "github.com/saas-journey/journey/app/logic/v1"
	"github.com/saas-journey/journey/app/response"
	"github.com/saas-journey/journey/pkg/types"
	"github.com/saas-journey/journey/pkg/utils"
)

func (s *HttpSrv) GetDraft(c *gin.Context) {
	draft, err := v1.NewDraftLogic(c, s.Core).GetDraft()
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, draft)
}

type SaveDraftRequest struct {
	Title   string   `json:"title" form:"title"`
	Content string   `json:"content" form:"content"`
	Mood    string   `json:"mood" form:"mood"`
	Tags    []string `json:"tags" form:"tags"`
}

func (s *HttpSrv) SaveDraft(c *gin.Context) {
	var (
		err error
		req SaveDraftRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	err = v1.NewDraftLogic(c, s.Core).SaveDraft(types.DraftEntry{
		Title:   req.Title,
		Content: req.Content,
		Mood:    req.Mood,
		Tags:    req.Tags,
	})
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, nil)
}

func (s *HttpSrv) ClearDraft(c *gin.Context) {
	if err := v1.NewDraftLogic(c, s.Core).ClearDraft(); err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, nil)
}

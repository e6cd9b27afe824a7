package handler

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	v1 "github.com/saas-journey/journey/app/logic/v1"
	"github.com/saas-journey/journey/app/response"
	"github.com/saas-journey/journey/pkg/types"
	"github.com/saas-journey/journey/pkg/utils"
)

type CreateEntryRequest struct {
	Title   string   `json:"title" form:"title"`
	Content string   `json:"content" form:"content"`
	Mood    string   `json:"mood" form:"mood"`
	Tags    []string `json:"tags" form:"tags"`
}

func (s *HttpSrv) CreateEntry(c *gin.Context) {
	var (
		err error
		req CreateEntryRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	entry, err := v1.NewJournalLogic(c, s.Core).CreateEntry(v1.EntryPayload{
		Title:   req.Title,
		Content: req.Content,
		Mood:    req.Mood,
		Tags:    req.Tags,
	})
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, entry)
}

func (s *HttpSrv) GetEntry(c *gin.Context) {
	entry, err := v1.NewJournalLogic(c, s.Core).GetEntry(c.Param("id"))
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, entry)
}

func (s *HttpSrv) UpdateEntry(c *gin.Context) {
	var (
		err error
		req CreateEntryRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	entry, err := v1.NewJournalLogic(c, s.Core).UpdateEntry(c.Param("id"), v1.EntryPayload{
		Title:   req.Title,
		Content: req.Content,
		Mood:    req.Mood,
		Tags:    req.Tags,
	})
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, entry)
}

func (s *HttpSrv) DeleteEntry(c *gin.Context) {
	if err := v1.NewJournalLogic(c, s.Core).DeleteEntry(c.Param("id")); err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, nil)
}

func parseFilterCriteria(c *gin.Context) types.FilterCriteria {
	criteria := types.FilterCriteria{
		SearchText: c.Query("search"),
		Mood:       c.Query("mood"),
	}
	// 复选框提交为重复参数，API调用也接受逗号分隔
	for _, raw := range c.QueryArray("tags") {
		for _, tag := range strings.Split(raw, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				criteria.Tags = append(criteria.Tags, tag)
			}
		}
	}
	return criteria
}

func (s *HttpSrv) ListEntries(c *gin.Context) {
	page, _ := strconv.ParseUint(c.DefaultQuery("page", "1"), 10, 64)
	pageSize, _ := strconv.ParseUint(c.DefaultQuery("pagesize", "20"), 10, 64)
	if page == 0 {
		page = 1
	}
	if pageSize == 0 || pageSize > 100 {
		pageSize = 20
	}

	result, err := v1.NewJournalLogic(c, s.Core).ListEntries(parseFilterCriteria(c), page, pageSize)
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, result)
}

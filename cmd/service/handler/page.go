package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	v1 "github.com/saas-journey/journey/app/logic/v1"
	"github.com/saas-journey/journey/app/response"
	"github.com/saas-journey/journey/pkg/auth"
	"github.com/saas-journey/journey/pkg/errors"
	"github.com/saas-journey/journey/pkg/types"
)

func (s *HttpSrv) siteTitle() string {
	if title := s.Core.Cfg().Site.SiteTitle; title != "" {
		return title
	}
	return "Journey"
}

// HomePage 首页只做登录态分流
func (s *HttpSrv) HomePage(c *gin.Context) {
	if _, ok := v1.InjectTokenClaim(c); ok {
		c.Redirect(http.StatusFound, auth.DefaultLanding)
		return
	}
	c.Redirect(http.StatusFound, auth.LoginPath)
}

func (s *HttpSrv) LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{
		"siteTitle": s.siteTitle(),
	})
}

func (s *HttpSrv) JournalListPage(c *gin.Context) {
	criteria := parseFilterCriteria(c)

	result, err := v1.NewJournalLogic(c, s.Core).ListEntries(criteria, types.NO_PAGINATION, types.NO_PAGINATION)
	if err != nil {
		response.APIError(c, err)
		return
	}

	c.HTML(http.StatusOK, "journal_list.html", gin.H{
		"siteTitle": s.siteTitle(),
		"entries":   result.List,
		"total":     result.Total,
		"filtered":  result.Filtered,
		"criteria":  criteria,
		"filtering": !criteria.IsEmpty(),
		"moods":     types.MOOD_LIST,
		"tags":      types.TAG_LIST,
	})
}

func (s *HttpSrv) NewEntryPage(c *gin.Context) {
	draft, err := v1.NewDraftLogic(c, s.Core).GetDraft()
	if err != nil {
		// 草稿读取失败时展示空表单
		draft = nil
	}

	c.HTML(http.StatusOK, "entry_form.html", gin.H{
		"siteTitle": s.siteTitle(),
		"draft":     draft,
		"moods":     types.MOOD_LIST,
		"tags":      types.TAG_LIST,
	})
}

func (s *HttpSrv) EntryDetailPage(c *gin.Context) {
	entry, err := v1.NewJournalLogic(c, s.Core).GetEntry(c.Param("id"))
	if err != nil {
		if cerr, ok := err.(*errors.CustomizedError); ok && cerr.GetCode() == http.StatusNotFound {
			c.HTML(http.StatusNotFound, "not_found.html", gin.H{
				"siteTitle": s.siteTitle(),
			})
			return
		}
		response.APIError(c, err)
		return
	}

	mood := ""
	if entry.Mood != nil {
		mood = *entry.Mood
	}

	c.HTML(http.StatusOK, "entry_detail.html", gin.H{
		"siteTitle": s.siteTitle(),
		"entry":     entry,
		"entryMood": mood,
		"moods":     types.MOOD_LIST,
		"tags":      types.TAG_LIST,
	})
}

// Package web is the HTML form interface: a gin router serving the creation
// and search form, the create/keep-draft action and the lookup.
package web

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"net/http"
	"time"

	"github.com/dmitrijs2005/liftlog/internal/common"
	"github.com/dmitrijs2005/liftlog/internal/grid"
	"github.com/dmitrijs2005/liftlog/internal/logging"
	"github.com/dmitrijs2005/liftlog/internal/server/drafts"
	"github.com/dmitrijs2005/liftlog/internal/server/models"
	"github.com/dmitrijs2005/liftlog/internal/server/services"
	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templates embed.FS

const indexTemplate = "index.html"

// LiftService is the part of services.LiftService the handlers need.
type LiftService interface {
	Create(ctx context.Context, req services.CreateLiftRequest) ([]int64, error)
	Find(ctx context.Context, componentID, serialNumber string) (*models.LiftRecord, error)
}

// Options configure sessions and the optional metrics endpoint.
type Options struct {
	SessionSecret  []byte
	SessionTTL     time.Duration
	MetricsHandler http.Handler
}

type Handler struct {
	lifts   LiftService
	drafts  drafts.Store
	logger  logging.Logger
	opts    Options
	tmpl    *template.Template
	now     func() time.Time
	alpha   []string
	numeric []string
}

func NewHandler(ls LiftService, ds drafts.Store, l logging.Logger, opts Options) (*Handler, error) {
	tmpl, err := template.New(indexTemplate).
		Funcs(template.FuncMap{"options": newOptionList}).
		ParseFS(templates, "templates/"+indexTemplate)
	if err != nil {
		return nil, err
	}

	return &Handler{
		lifts:   ls,
		drafts:  ds,
		logger:  l.With("module", "web"),
		opts:    opts,
		tmpl:    tmpl,
		now:     time.Now,
		alpha:   grid.AlphabeticAxisLabels(),
		numeric: grid.NumericAxisLabels(),
	}, nil
}

// Router builds the gin engine with logging, recovery and session middleware.
func (h *Handler) Router() *gin.Engine {
	r := gin.New()
	r.Use(h.requestLogger, gin.Recovery())
	r.SetHTMLTemplate(h.tmpl)

	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "OK") })
	if h.opts.MetricsHandler != nil {
		r.GET("/metrics", gin.WrapH(h.opts.MetricsHandler))
	}

	pages := r.Group("/", h.session)
	pages.GET("/", h.index)
	pages.POST("/add", h.add)
	pages.GET("/search", h.search)

	return r
}

type optionList struct {
	Labels   []string
	Selected string
}

func newOptionList(labels []string, selected string) optionList {
	return optionList{Labels: labels, Selected: selected}
}

type searchQuery struct {
	ComponentID  string
	SerialNumber string
}

type pageData struct {
	Projects     []models.Project
	ProjectName  string
	InstallDate  string
	AlphaLabels  []string
	NumberLabels []string
	Draft        models.Draft
	Query        searchQuery
	Result       *models.LiftRecord
	Searched     bool
	Error        string
}

func (h *Handler) page(draft models.Draft) pageData {
	return pageData{
		Projects:     models.Projects(),
		InstallDate:  models.NewDate(h.now()).String(),
		AlphaLabels:  h.alpha,
		NumberLabels: h.numeric,
		Draft:        draft,
	}
}

func (h *Handler) render(c *gin.Context, status int, data pageData) {
	c.HTML(status, indexTemplate, data)
}

// errorStatus maps service errors to an HTTP status and a message safe to
// show to the user.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, common.ErrorParse):
		return http.StatusBadRequest, "流水號格式錯誤: " + err.Error()
	case errors.Is(err, common.ErrorValidation):
		return http.StatusBadRequest, "輸入資料錯誤: " + err.Error()
	default:
		return http.StatusInternalServerError, "資料庫錯誤，請稍後再試"
	}
}

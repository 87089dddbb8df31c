package handler

import (
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"fichas-crud/internal/cadastro/domain/model"
	"fichas-crud/internal/web"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type WebHandler struct {
	templates map[string]*template.Template
	statuses  []string
	logger    *zap.Logger
}

// NewWebHandler compila os templates embarcados. Cada página é um template
// isolado contendo base.html + a página.
func NewWebHandler(logger *zap.Logger) (*WebHandler, error) {
	return newWebHandler(web.Templates, logger)
}

func newWebHandler(fsys fs.FS, logger *zap.Logger) (*WebHandler, error) {
	templates := make(map[string]*template.Template)

	pages := []string{
		"fichas.html",
	}

	for _, page := range pages {
		tmpl, err := template.New("").ParseFS(fsys, "templates/base.html", "templates/"+page)
		if err != nil {
			return nil, fmt.Errorf("error parsing template %s: %w", page, err)
		}
		templates[page] = tmpl
	}

	statuses := make([]string, len(model.AllStatuses))
	for i, s := range model.AllStatuses {
		statuses[i] = string(s)
	}

	return &WebHandler{
		templates: templates,
		statuses:  statuses,
		logger:    logger,
	}, nil
}

// Routes registra a página e os arquivos estáticos.
func (h *WebHandler) Routes(r gin.IRouter) {
	r.GET("/", h.ServeFichas)
	r.StaticFS("/static", http.FS(web.Static()))
}

// renderTemplate helper para renderizar templates com segurança
func (h *WebHandler) renderTemplate(c *gin.Context, page string, data gin.H) {
	tmpl, ok := h.templates[page]
	if !ok {
		c.String(http.StatusInternalServerError, "Template not found: "+page)
		return
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := tmpl.ExecuteTemplate(c.Writer, "base.html", data); err != nil {
		h.logger.Error("[WEB] falha ao renderizar template", zap.String("page", page), zap.Error(err))
	}
}

// ServeFichas exibe o quadro com uma coluna por status
func (h *WebHandler) ServeFichas(c *gin.Context) {
	h.renderTemplate(c, "fichas.html", gin.H{
		"Title":    "Fichas",
		"Statuses": h.statuses,
	})
}

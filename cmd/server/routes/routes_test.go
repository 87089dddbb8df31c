package routes

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"fichas-crud/internal/cadastro/domain/ficha"
	"fichas-crud/internal/pkg/log/acess_log"
	"fichas-crud/internal/testutil"
	"fichas-crud/internal/web/handler"
)

func newRouter(t *testing.T, origins []string) *gin.Engine {
	t.Helper()

	use, err := ficha.New(testutil.OpenDB(t), ficha.Options{AtomicBatch: true}, zap.NewNop())
	require.NoError(t, err)
	web, err := handler.NewWebHandler(zap.NewNop())
	require.NoError(t, err)

	r, err := SetupRouter(Deps{
		Env:         "test",
		CORSOrigins: origins,
		Logger:      zap.NewNop(),
		Ficha:       use.Controller,
		Web:         web,
	})
	require.NoError(t, err)
	return r
}

func call(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestFichaLifecycle(t *testing.T) {
	r := newRouter(t, nil)

	w := call(r, http.MethodPost, "/api/fichas", `{"name":"Maria","cpf":"12345678901","description":"Primeiro contato","status":"Lead"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.NotEmpty(t, w.Header().Get(acess_log.RayTraceHeader))

	var created []ficha.FichaResponseDto
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.Len(t, created, 1)
	id := created[0].ID

	w = call(r, http.MethodGet, "/api/fichas", "")
	require.Equal(t, http.StatusOK, w.Code)
	var list []ficha.FichaResponseDto
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Equal(t, created, list)

	w = call(r, http.MethodPut, fmt.Sprintf("/api/fichas/%d", id), `{"name":"Maria","cpf":"12345678901","description":"Primeiro contato","status":"Aguardando"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var updated ficha.FichaResponseDto
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "Aguardando", updated.Status)

	w = call(r, http.MethodDelete, "/api/fichas", fmt.Sprintf(`{"ids":[%d]}`, id))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Fichas deletadas com sucesso.","deleted":1}`, w.Body.String())

	w = call(r, http.MethodGet, "/api/fichas", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestPageAndAssets(t *testing.T) {
	r := newRouter(t, nil)

	w := call(r, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `id="Lead"`)

	w = call(r, http.MethodGet, "/static/js/fichas.js", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSwaggerDoc(t *testing.T) {
	r := newRouter(t, nil)

	w := call(r, http.MethodGet, "/doc/index.html", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = call(r, http.MethodGet, "/doc/doc.json", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/api/fichas/{id}")
}

func TestCORSPreflight(t *testing.T) {
	r := newRouter(t, []string{"http://painel.local"})

	req := httptest.NewRequest(http.MethodOptions, "/api/fichas", nil)
	req.Header.Set("Origin", "http://painel.local")
	req.Header.Set("Access-Control-Request-Method", http.MethodDelete)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://painel.local", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSConfig(t *testing.T) {
	assert.True(t, corsConfig(nil).AllowAllOrigins)
	assert.True(t, corsConfig([]string{"http://a", "*"}).AllowAllOrigins)

	cfg := corsConfig([]string{"http://a"})
	assert.False(t, cfg.AllowAllOrigins)
	assert.Equal(t, []string{"http://a"}, cfg.AllowOrigins)
}

func TestSetupRouterRequiresDeps(t *testing.T) {
	_, err := SetupRouter(Deps{Env: "test", Logger: zap.NewNop()})
	assert.Error(t, err)
}

package ficha

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"fichas-crud/internal/cadastro/domain/model"
	"fichas-crud/internal/pkg/log/acess_log"
	"fichas-crud/internal/pkg/rest_err"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Controller interface define os métodos do controller de fichas
type Controller interface {
	Routes(routes gin.IRouter)
	Create(c *gin.Context)
	Read(c *gin.Context)
	List(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

type controllerImpl struct {
	service Service
	logger  *zap.Logger
}

func NewController(service Service, logger *zap.Logger) Controller {
	return &controllerImpl{
		service: service,
		logger:  logger,
	}
}

// Routes registra as rotas de fichas
func (ctrl *controllerImpl) Routes(routes gin.IRouter) {
	fichaGroup := routes.Group("/fichas")

	{
		fichaGroup.POST("", ctrl.Create)
		fichaGroup.GET("", ctrl.List)
		fichaGroup.GET("/:id", ctrl.Read)
		fichaGroup.PUT("/:id", ctrl.Update)
		fichaGroup.DELETE("", ctrl.Delete)
	}
}

// Create cria uma ou várias fichas
// @Summary      Cria fichas
// @Description  Aceita um objeto ou um array de objetos. Todos os campos são obrigatórios.
// @Tags         Ficha
// @Accept       json
// @Produce      json
// @Param        request body FichaRequestDto true "Ficha (ou array de fichas)"
// @Success      201  {array}   FichaResponseDto
// @Failure      400  {object}  rest_err.RestErr  "Campo ausente ou corpo inválido."
// @Failure      500  {object}  rest_err.RestErr  "Erro interno do servidor."
// @Router       /api/fichas [post]
func (ctrl *controllerImpl) Create(c *gin.Context) {
	rayTrace := acess_log.RayTrace(c)

	body, err := c.GetRawData()
	if err != nil {
		restError := rest_err.NewBadRequestError(rayTrace, "Não foi possível ler o corpo da requisição.")
		c.JSON(restError.Code, restError)
		return
	}

	reqs, err := decodeCreateRequest(body)
	if err != nil {
		msg := "Corpo JSON inválido ou mal formatado."
		if errors.Is(err, errEmptyBatch) {
			msg = "É necessário enviar ao menos uma ficha."
		}
		restError := rest_err.NewBadRequestError(rayTrace, msg)
		c.JSON(restError.Code, restError)
		return
	}

	fichas := make([]model.Ficha, len(reqs))
	for i, req := range reqs {
		fichas[i] = req.toModel()
	}

	created, err := ctrl.service.Create(c.Request.Context(), fichas)
	if err != nil {
		if len(created) > 0 {
			ctrl.logger.Warn("[FICHA] lote interrompido com fichas já gravadas",
				zap.Int("persisted", len(created)),
				zap.Stringp("ray_trace", rayTrace),
			)
		}
		ctrl.respondError(c, err, "Ficha não encontrada.", "Erro ao criar fichas no banco de dados.")
		return
	}

	c.JSON(http.StatusCreated, ToResponseList(created))
}

// @Summary      Lista fichas
// @Description  Retorna todas as fichas cadastradas.
// @Tags         Ficha
// @Produce      json
// @Success      200  {array}   FichaResponseDto
// @Failure      500  {object}  rest_err.RestErr  "Erro interno do servidor."
// @Router       /api/fichas [get]
func (ctrl *controllerImpl) List(c *gin.Context) {
	fichas, err := ctrl.service.List(c.Request.Context())
	if err != nil {
		ctrl.respondError(c, err, "Ficha não encontrada.", "Erro ao listar fichas no banco de dados.")
		return
	}
	c.JSON(http.StatusOK, ToResponseList(fichas))
}

// @Summary      Busca uma ficha
// @Tags         Ficha
// @Produce      json
// @Param        id path int true "ID da ficha"
// @Success      200  {object}  FichaResponseDto
// @Failure      400  {object}  rest_err.RestErr  "ID inválido."
// @Failure      404  {object}  rest_err.RestErr  "Ficha não encontrada."
// @Failure      500  {object}  rest_err.RestErr  "Erro interno do servidor."
// @Router       /api/fichas/{id} [get]
func (ctrl *controllerImpl) Read(c *gin.Context) {
	id, ok := ctrl.parseID(c)
	if !ok {
		return
	}

	f, err := ctrl.service.Read(c.Request.Context(), id)
	if err != nil {
		ctrl.respondError(c, err, "Ficha não encontrada.", "Erro ao buscar ficha no banco de dados.")
		return
	}
	c.JSON(http.StatusOK, ToResponse(f))
}

// @Summary      Atualiza uma ficha
// @Description  Substitui todos os campos da ficha. name, cpf, description e status são obrigatórios.
// @Tags         Ficha
// @Accept       json
// @Produce      json
// @Param        id path int true "ID da ficha"
// @Param        request body FichaRequestDto true "Novos dados da ficha"
// @Success      200  {object}  FichaResponseDto
// @Failure      400  {object}  rest_err.RestErr  "ID inválido, corpo inválido ou campo ausente."
// @Failure      404  {object}  rest_err.RestErr  "Ficha não encontrada."
// @Failure      500  {object}  rest_err.RestErr  "Erro interno do servidor."
// @Router       /api/fichas/{id} [put]
func (ctrl *controllerImpl) Update(c *gin.Context) {
	id, ok := ctrl.parseID(c)
	if !ok {
		return
	}

	var request FichaRequestDto
	if err := c.ShouldBindJSON(&request); err != nil {
		restError := rest_err.NewBadRequestError(acess_log.RayTrace(c), "Corpo JSON inválido ou mal formatado.")
		c.JSON(restError.Code, restError)
		return
	}

	f := request.toModel()
	f.ID = id

	updated, err := ctrl.service.Update(c.Request.Context(), f)
	if err != nil {
		ctrl.respondError(c, err, "Ficha não encontrada.", "Erro ao atualizar ficha no banco de dados.")
		return
	}
	c.JSON(http.StatusOK, ToResponse(updated))
}

// @Summary      Deleta fichas
// @Description  Exclui permanentemente todas as fichas cujos IDs forem enviados.
// @Tags         Ficha
// @Accept       json
// @Produce      json
// @Param        request body DeleteFichasRequestDto true "IDs a excluir"
// @Success      200  {object}  DeleteFichasResponseDto
// @Failure      400  {object}  rest_err.RestErr  "Array de IDs ausente, vazio ou inválido."
// @Failure      404  {object}  rest_err.RestErr  "Nenhuma ficha encontrada."
// @Failure      500  {object}  rest_err.RestErr  "Erro interno do servidor."
// @Router       /api/fichas [delete]
func (ctrl *controllerImpl) Delete(c *gin.Context) {
	var req DeleteFichasRequestDto
	if err := c.ShouldBindJSON(&req); err != nil {
		restError := rest_err.NewBadRequestError(acess_log.RayTrace(c), "É necessário enviar um array de IDs.")
		c.JSON(restError.Code, restError)
		return
	}

	deleted, err := ctrl.service.Delete(c.Request.Context(), req.IDs)
	if err != nil {
		ctrl.respondError(c, err, "Nenhuma ficha encontrada para deletar.", "Erro ao deletar fichas no banco de dados.")
		return
	}

	c.JSON(http.StatusOK, DeleteFichasResponseDto{
		Message: "Fichas deletadas com sucesso.",
		Deleted: deleted,
	})
}

func (ctrl *controllerImpl) parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		restError := rest_err.NewBadRequestError(acess_log.RayTrace(c), "O ID fornecido na URL não é válido.")
		c.JSON(restError.Code, restError)
		return 0, false
	}
	return id, true
}

// respondError traduz erros do domínio para a resposta HTTP. Falhas
// inesperadas são registradas no log e devolvidas com mensagem genérica.
func (ctrl *controllerImpl) respondError(c *gin.Context, err error, notFoundMsg, internalMsg string) {
	rayTrace := acess_log.RayTrace(c)
	_ = c.Error(err)

	var (
		restError *rest_err.RestErr
		verr      *ValidationError
	)
	switch {
	case errors.As(err, &verr):
		restError = rest_err.NewBadRequestValidationError(rayTrace, "Todos os campos são obrigatórios.", causesOf(verr))
	case errors.Is(err, ErrInvalidInput):
		restError = rest_err.NewBadRequestError(rayTrace, "Dados de entrada inválidos.")
	case errors.Is(err, ErrNotFound):
		restError = rest_err.NewNotFoundError(rayTrace, notFoundMsg)
	default:
		ctrl.logger.Error("[FICHA] "+internalMsg,
			zap.Error(err),
			zap.Stringp("ray_trace", rayTrace),
			zap.String("method", c.Request.Method),
		)
		restError = rest_err.NewInternalServerError(rayTrace, internalMsg, nil)
	}

	c.JSON(restError.Code, restError)
}

func causesOf(verr *ValidationError) []rest_err.Causes {
	causes := make([]rest_err.Causes, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		field := f.Field
		if verr.Index >= 0 {
			field = fmt.Sprintf("fichas[%d].%s", verr.Index, f.Field)
		}
		causes = append(causes, rest_err.NewCause(field, ruleMessage(f.Rule)))
	}
	return causes
}

func ruleMessage(rule string) string {
	switch rule {
	case "required":
		return "campo obrigatório"
	case "oneof":
		return "status não reconhecido"
	default:
		return "valor inválido"
	}
}

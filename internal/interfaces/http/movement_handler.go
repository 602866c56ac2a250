package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Carolinyr9/estocai/internal/application/usecase"
)

// MovementHandler expõe o log de auditoria (somente leitura).
type MovementHandler struct {
	uc     *usecase.MovementUseCase
	report *usecase.MovementReportUseCase
}

// NewMovementHandler constrói o handler.
func NewMovementHandler(uc *usecase.MovementUseCase, report *usecase.MovementReportUseCase) *MovementHandler {
	return &MovementHandler{uc: uc, report: report}
}

// List godoc
// @Summary      Listar movimentações
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Limite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.MovementListResponse
// @Router       /movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(limit, offset)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// ListByType godoc
// @Summary      Listar movimentações por tipo
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        type  path  string  true  "entry | exit | edited | none"
// @Success      200   {object}  dto.MovementListResponse
// @Router       /movements/type/{type} [get]
func (h *MovementHandler) ListByType(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.ListByType(c.Params("type"), limit, offset)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// ListByDescription godoc
// @Summary      Listar movimentações por descrição
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        description  path  string  true  "added | removed | edited | consult | ..."
// @Success      200  {object}  dto.MovementListResponse
// @Router       /movements/description/{description} [get]
func (h *MovementHandler) ListByDescription(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.ListByDescription(c.Params("description"), limit, offset)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// ListByProduct godoc
// @Summary      Histórico de um produto
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID do produto"
// @Success      200  {object}  dto.MovementListResponse
// @Router       /movements/product/{id} [get]
func (h *MovementHandler) ListByProduct(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.ListByProduct(c.Params("id"), limit, offset)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Report godoc
// @Summary      Relatório em PDF do histórico de um produto
// @Tags         movements
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID do produto"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /movements/product/{id}/report [get]
func (h *MovementHandler) Report(c *fiber.Ctx) error {
	pdfBytes, err := h.report.Generate(c.Context(), c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="movements.pdf"`)
	return c.Send(pdfBytes)
}

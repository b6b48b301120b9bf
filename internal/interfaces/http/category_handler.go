package http

import (
	"encoding/json"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Catalogo-api/internal/application/category"
	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/pkg/logger"
)

// CategoryUseCases casos de uso que expone el handler.
type CategoryUseCases struct {
	Get    *category.GetCategoryUseCase
	Create *category.CreateCategoryUseCase
	Update *category.UpdateCategoryUseCase
	Delete *category.DeleteCategoryUseCase
	List   *category.ListCategoriesUseCase
}

// CategoryHandler maneja las peticiones HTTP para Category.
type CategoryHandler struct {
	uc       CategoryUseCases
	validate *validator.Validate
	log      *logger.Logger
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(uc CategoryUseCases, log *logger.Logger) *CategoryHandler {
	return &CategoryHandler{uc: uc, validate: validator.New(), log: log}
}

// GetByID godoc
// @Summary      Obtener categoría por ID
// @Tags         categories
// @Produce      json
// @Param        id   path  string  true  "ID de la categoría (UUID)"
// @Success      200  {object}  dto.CategoryOutput
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/categories/{id} [get]
func (h *CategoryHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get.Execute(c.UserContext(), category.GetCategoryInput{ID: c.Params("id")})
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar categorías
// @Tags         categories
// @Produce      json
// @Param        limit   query  int     false  "Límite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Param        filter  query  string  false  "Filtro por nombre"
// @Success      200     {object}  dto.CategoryListOutput
// @Failure      400     {object}  dto.ErrorResponse
// @Router       /api/categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	var in dto.ListCategoriesRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	if err := h.validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: err.Error()})
	}
	out, err := h.uc.List.Execute(c.UserContext(), category.ListCategoriesInput{
		Limit:  in.Limit,
		Offset: in.Offset,
		Filter: in.Filter,
	})
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear categoría
// @Tags         categories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCategoryRequest  true  "Datos de la categoría"
// @Success      201   {object}  dto.CategoryOutput
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/categories [post]
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	raw, err := decodeRaw(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	// Tipos incorrectos (name: 155, name: null) se reportan con los mensajes de dominio antes de decodificar.
	if errs := (entity.CategoryRules{Name: raw["name"]}).Validate(); !errs.Empty() {
		return validationError(c, errs)
	}
	var in dto.CreateCategoryRequest
	if err := json.Unmarshal(c.Body(), &in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create.Execute(c.UserContext(), category.CreateCategoryInput{
		Name:        in.Name,
		Description: in.Description,
		IsActive:    in.IsActive,
	})
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar categoría
// @Tags         categories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la categoría (UUID)"
// @Param        body  body  dto.UpdateCategoryRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.CategoryOutput
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/categories/{id} [put]
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	raw, err := decodeRaw(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if name, ok := raw["name"]; ok {
		if errs := (entity.CategoryRules{Name: name}).Validate(); !errs.Empty() {
			return validationError(c, errs)
		}
	}
	var in dto.UpdateCategoryRequest
	if err := json.Unmarshal(c.Body(), &in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	// "description": null borra la descripción; la clave ausente la deja igual.
	description, hasDescription := raw["description"]
	out, err := h.uc.Update.Execute(c.UserContext(), category.UpdateCategoryInput{
		ID:               c.Params("id"),
		Name:             in.Name,
		Description:      in.Description,
		ClearDescription: hasDescription && description == nil,
		IsActive:         in.IsActive,
	})
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar categoría
// @Tags         categories
// @Security     Bearer
// @Param        id   path  string  true  "ID de la categoría (UUID)"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/categories/{id} [delete]
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete.Execute(c.UserContext(), category.DeleteCategoryInput{ID: c.Params("id")}); err != nil {
		return writeError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// decodeRaw decodifica el cuerpo JSON a un objeto sin tipar.
func decodeRaw(c *fiber.Ctx) (map[string]any, error) {
	var raw map[string]any
	if err := json.Unmarshal(c.Body(), &raw); err != nil {
		return nil, err
	}
	if raw == nil {
		raw = map[string]any{}
	}
	return raw, nil
}

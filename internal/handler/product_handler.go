package handler

import (
	"errors"
	"net/http"
	"strconv"

	"app/internal/config"
	"app/internal/middleware"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// レスポンスメッセージは既存APIとの互換を守る（文言・ピリオド含む）。
const (
	msgProductsRetrieved = "Products retrieved successfully."
	msgProductRetrieved  = "Product retrieved successfully."
	msgProductCreated    = "Product created successfully."
	msgProductUpdated    = "Product updated successfully."
	msgProductDeleted    = "Product deleted successfully."
	msgProductNotFound   = "Product not found."
	msgValidationError   = "Validation Error."
	msgInternalError     = "Internal server error."
)

// POST/PUT /productsのリクエスト
type ProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	SupplierID  int64   `json:"supplier_id"`
}

// /products の認証付きCRUD
type ProductHandler struct {
	uc *usecase.ProductUsecase
}

// DI
func NewProductHandler(uc *usecase.ProductUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// 商品ルートを登録。全opがbearer必須。
func (h *ProductHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/products")

	g.Use(middleware.AuthJWT(cfg))

	g.GET("", h.index)
	g.GET("/:id", h.show)
	g.POST("", h.store)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.destroy)
}

func (h *ProductHandler) index(c echo.Context) error {
	products, err := h.uc.ListProducts(c.Request().Context())
	if err != nil {
		return writeProductError(c, err)
	}

	return respondOK(c, msgProductsRetrieved, products)
}

func (h *ProductHandler) show(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		//数値でないidは存在しない商品として扱う
		return respondError(c, http.StatusNotFound, msgProductNotFound, nil)
	}

	p, err := h.uc.GetProduct(c.Request().Context(), id)
	if err != nil {
		return writeProductError(c, err)
	}

	return respondOK(c, msgProductRetrieved, p)
}

func (h *ProductHandler) store(c echo.Context) error {
	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request body.", nil)
	}

	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return respondError(c, http.StatusUnauthorized, "Unauthorized.", nil)
	}

	created, err := h.uc.CreateProduct(c.Request().Context(), userID, usecase.ProductFieldsInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		SupplierID:  req.SupplierID,
	})
	if err != nil {
		return writeProductError(c, err)
	}

	return respondOK(c, msgProductCreated, created)
}

func (h *ProductHandler) update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		//数値でないidは存在しない商品として扱う
		return respondError(c, http.StatusNotFound, msgProductNotFound, nil)
	}

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request body.", nil)
	}

	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return respondError(c, http.StatusUnauthorized, "Unauthorized.", nil)
	}

	updated, err := h.uc.UpdateProduct(c.Request().Context(), userID, id, usecase.ProductFieldsInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		SupplierID:  req.SupplierID,
	})
	if err != nil {
		return writeProductError(c, err)
	}

	return respondOK(c, msgProductUpdated, updated)
}

func (h *ProductHandler) destroy(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		//数値でないidは存在しない商品として扱う
		return respondError(c, http.StatusNotFound, msgProductNotFound, nil)
	}

	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return respondError(c, http.StatusUnauthorized, "Unauthorized.", nil)
	}

	if err := h.uc.DeleteProduct(c.Request().Context(), userID, id); err != nil {
		return writeProductError(c, err)
	}

	//削除成功はdataを空オブジェクトで返す
	return respondOK(c, msgProductDeleted, map[string]interface{}{})
}

// usecaseのエラーをenvelopeへ変換する。
// not foundもvalidationも404を返すのは既存契約（conventionalには422だが互換を優先）。
func writeProductError(c echo.Context, err error) error {
	if errors.Is(err, usecase.ErrProductNotFound) {
		return respondError(c, http.StatusNotFound, msgProductNotFound, nil)
	}
	if ve, ok := usecase.AsValidationError(err); ok {
		return respondError(c, http.StatusNotFound, msgValidationError, ve.Fields)
	}
	return respondError(c, http.StatusInternalServerError, msgInternalError, nil)
}

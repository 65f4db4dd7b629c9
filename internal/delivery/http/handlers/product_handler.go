package handlers

import (
	"net/http"

	"github.com/kbf-dev/galerie-commerce-service/internal/delivery/http/dto/request"
	"github.com/kbf-dev/galerie-commerce-service/internal/delivery/http/dto/response"
	"github.com/kbf-dev/galerie-commerce-service/internal/domain"
	"github.com/kbf-dev/galerie-commerce-service/internal/usecase"
	productdto "github.com/kbf-dev/galerie-commerce-service/internal/usecase/dto/product"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type ProductHandler struct {
	Usecase  usecase.ProductUsecase
	PageSize int
}

func NewProductHandler(uc usecase.ProductUsecase, pageSize int) *ProductHandler {
	return &ProductHandler{Usecase: uc, PageSize: pageSize}
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req request.CreateProductRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "malformed payload")
	}

	netPrice, err := decimal.NewFromString(req.NetPrice)
	if err != nil {
		return badRequest(c, "invalid net_price")
	}
	var vatRate *decimal.Decimal
	if req.VATRate != nil {
		parsed, err := decimal.NewFromString(*req.VATRate)
		if err != nil {
			return badRequest(c, "invalid vat_rate")
		}
		vatRate = &parsed
	}

	output, err := h.Usecase.CreateProduct(c.Request().Context(), &productdto.CreateProductInput{
		MerchantID:          c.Param("id"),
		Name:                req.Name,
		Description:         req.Description,
		Category:            domain.Category(req.Category),
		NetPrice:            netPrice,
		VATRate:             vatRate,
		Stock:               req.Stock,
		StockAlertThreshold: req.StockAlertThreshold,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, response.FromProductOutput(output))
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	output, err := h.Usecase.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, response.FromProductOutput(output))
}

func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	var req request.UpdateProductRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "malformed payload")
	}

	input := &productdto.UpdateProductInput{
		ProductID:           c.Param("id"),
		Name:                req.Name,
		Description:         req.Description,
		StockAlertThreshold: req.StockAlertThreshold,
	}
	if req.Category != nil {
		category := domain.Category(*req.Category)
		input.Category = &category
	}
	if req.NetPrice != nil {
		parsed, err := decimal.NewFromString(*req.NetPrice)
		if err != nil {
			return badRequest(c, "invalid net_price")
		}
		input.NetPrice = &parsed
	}
	if req.VATRate != nil {
		parsed, err := decimal.NewFromString(*req.VATRate)
		if err != nil {
			return badRequest(c, "invalid vat_rate")
		}
		input.VATRate = &parsed
	}

	output, err := h.Usecase.UpdateProduct(c.Request().Context(), input)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, response.FromProductOutput(output))
}

func (h *ProductHandler) ListProducts(c echo.Context) error {
	page, size := parsePage(c, h.PageSize)
	outputs, total, err := h.Usecase.ListProducts(c.Request().Context(), &productdto.ListProductsInput{
		MerchantID: c.Param("id"),
		Category:   domain.Category(c.QueryParam("category")),
		ActiveOnly: c.QueryParam("active") != "false",
		Page:       page,
		Size:       size,
	})
	if err != nil {
		return writeError(c, err)
	}

	items := make([]*response.ProductResponse, len(outputs))
	for i, output := range outputs {
		items[i] = response.FromProductOutput(output)
	}
	return c.JSON(http.StatusOK, response.PageResponse{Items: items, Total: total, Page: page, Size: size})
}

// UpdateStock handles direct restocks and debits outside a sale.
func (h *ProductHandler) UpdateStock(c echo.Context) error {
	var req request.StockUpdateRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "quantity must be an integer")
	}

	output, err := h.Usecase.UpdateStock(c.Request().Context(), &productdto.UpdateStockInput{
		ProductID: c.Param("id"),
		Delta:     req.Quantity,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, response.StockUpdateResponse{
		ProductID:   output.ProductID,
		ProductName: output.ProductName,
		NewStock:    output.NewStock,
	})
}

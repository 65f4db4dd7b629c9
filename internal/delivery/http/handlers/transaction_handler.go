package handlers

import (
	"net/http"

	"github.com/kbf-dev/galerie-commerce-service/internal/delivery/http/dto/request"
	"github.com/kbf-dev/galerie-commerce-service/internal/delivery/http/dto/response"
	"github.com/kbf-dev/galerie-commerce-service/internal/delivery/http/middleware"
	"github.com/kbf-dev/galerie-commerce-service/internal/usecase/sale"
	saledto "github.com/kbf-dev/galerie-commerce-service/internal/usecase/dto/sale"
	"github.com/labstack/echo/v4"
)

type TransactionHandler struct {
	Usecase  sale.SaleUsecase
	PageSize int
}

func NewTransactionHandler(uc sale.SaleUsecase, pageSize int) *TransactionHandler {
	return &TransactionHandler{Usecase: uc, PageSize: pageSize}
}

// ProcessSale records a sale of the product to the calling customer.
func (h *TransactionHandler) ProcessSale(c echo.Context) error {
	var req request.SaleRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "quantity must be an integer")
	}

	var customerID *string
	if caller, ok := middleware.CallerFrom(c); ok && caller.IsCustomer() {
		id := caller.UserID
		customerID = &id
	}

	output, err := h.Usecase.ProcessSale(c.Request().Context(), &saledto.ProcessSaleInput{
		ProductID:  c.Param("id"),
		Quantity:   req.Quantity,
		CustomerID: customerID,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, response.FromTransactionOutput(output))
}

func (h *TransactionHandler) GetTransaction(c echo.Context) error {
	output, err := h.Usecase.GetTransaction(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, response.FromTransactionOutput(output))
}

func (h *TransactionHandler) ListProductTransactions(c echo.Context) error {
	page, size := parsePage(c, h.PageSize)
	outputs, total, err := h.Usecase.ListProductTransactions(c.Request().Context(), &saledto.ListTransactionsInput{
		ProductID: c.Param("id"),
		Page:      page,
		Size:      size,
	})
	if err != nil {
		return writeError(c, err)
	}

	items := make([]*response.TransactionResponse, len(outputs))
	for i, output := range outputs {
		items[i] = response.FromTransactionOutput(output)
	}
	return c.JSON(http.StatusOK, response.PageResponse{Items: items, Total: total, Page: page, Size: size})
}

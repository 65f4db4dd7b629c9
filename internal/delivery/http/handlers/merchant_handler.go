package handlers

import (
	"net/http"
	"time"

	"github.com/kbf-dev/galerie-commerce-service/internal/delivery/http/dto/request"
	"github.com/kbf-dev/galerie-commerce-service/internal/delivery/http/dto/response"
	"github.com/kbf-dev/galerie-commerce-service/internal/delivery/http/middleware"
	"github.com/kbf-dev/galerie-commerce-service/internal/domain"
	"github.com/kbf-dev/galerie-commerce-service/internal/usecase"
	merchantdto "github.com/kbf-dev/galerie-commerce-service/internal/usecase/dto/merchant"
	"github.com/labstack/echo/v4"
)

type MerchantHandler struct {
	Usecase  usecase.MerchantUsecase
	PageSize int
}

func NewMerchantHandler(uc usecase.MerchantUsecase, pageSize int) *MerchantHandler {
	return &MerchantHandler{Usecase: uc, PageSize: pageSize}
}

func (h *MerchantHandler) CreateMerchant(c echo.Context) error {
	var req request.CreateMerchantRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "malformed payload")
	}

	userID := req.UserID
	if caller, ok := middleware.CallerFrom(c); ok && caller.Role != domain.RoleAdmin {
		// Non-admin callers register themselves.
		userID = caller.UserID
	}

	output, err := h.Usecase.CreateMerchant(c.Request().Context(), &merchantdto.CreateMerchantInput{
		UserID:      userID,
		BrandName:   req.BrandName,
		Description: req.Description,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, response.FromMerchantOutput(output))
}

func (h *MerchantHandler) GetMerchant(c echo.Context) error {
	output, err := h.Usecase.GetMerchant(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, response.FromMerchantOutput(output))
}

// GetMyMerchant returns the merchant owned by the authenticated caller.
func (h *MerchantHandler) GetMyMerchant(c echo.Context) error {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "authentication required"})
	}

	output, err := h.Usecase.GetMerchantForUser(c.Request().Context(), caller.UserID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, response.FromMerchantOutput(output))
}

func (h *MerchantHandler) UpdateMerchant(c echo.Context) error {
	var req request.UpdateMerchantRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "malformed payload")
	}

	output, err := h.Usecase.UpdateMerchant(c.Request().Context(), &merchantdto.UpdateMerchantInput{
		MerchantID:  c.Param("id"),
		BrandName:   req.BrandName,
		Description: req.Description,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, response.FromMerchantOutput(output))
}

func (h *MerchantHandler) ListMerchants(c echo.Context) error {
	page, size := parsePage(c, h.PageSize)
	outputs, total, err := h.Usecase.ListMerchants(c.Request().Context(), &merchantdto.ListMerchantsInput{
		ActiveOnly: c.QueryParam("active") != "false",
		BrandName:  c.QueryParam("brand_name"),
		Page:       page,
		Size:       size,
	})
	if err != nil {
		return writeError(c, err)
	}

	items := make([]*response.MerchantResponse, len(outputs))
	for i, output := range outputs {
		items[i] = response.FromMerchantOutput(output)
	}
	return c.JSON(http.StatusOK, response.PageResponse{Items: items, Total: total, Page: page, Size: size})
}

func (h *MerchantHandler) DeactivateMerchant(c echo.Context) error {
	if err := h.Usecase.DeactivateMerchant(c.Request().Context(), c.Param("id")); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// GetRevenue reports over [from, to); clients wanting an inclusive end
// add one unit of least precision themselves.
func (h *MerchantHandler) GetRevenue(c echo.Context) error {
	from, err := time.Parse(time.RFC3339, c.QueryParam("from"))
	if err != nil {
		return badRequest(c, "invalid 'from' timestamp")
	}
	to, err := time.Parse(time.RFC3339, c.QueryParam("to"))
	if err != nil {
		return badRequest(c, "invalid 'to' timestamp")
	}

	output, err := h.Usecase.GetRevenue(c.Request().Context(), &merchantdto.RevenueInput{
		MerchantID: c.Param("id"),
		From:       from,
		To:         to,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, response.FromRevenueOutput(output))
}

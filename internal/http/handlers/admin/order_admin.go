package admin

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/awandha/engrave-shop/internal/constants"
	"github.com/awandha/engrave-shop/internal/http/response"
	"github.com/awandha/engrave-shop/internal/models"
	"github.com/awandha/engrave-shop/internal/repository"
	"github.com/awandha/engrave-shop/internal/service"
)

// AdminOrderItem 后台订单项视图，含刻字信息的展示片段
type AdminOrderItem struct {
	models.OrderItem
	Engraving     string `json:"engraving,omitempty"`
	EngravingHTML string `json:"engraving_html,omitempty"`
}

// AdminOrderDetail 后台订单详情视图
type AdminOrderDetail struct {
	models.Order
	Items []AdminOrderItem `json:"items"`
}

// GetAdminOrders 后台订单列表
func (h *Handler) GetAdminOrders(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	filter := repository.OrderListFilter{
		Page:       page,
		PageSize:   pageSize,
		Status:     strings.TrimSpace(c.Query("status")),
		OrderNo:    strings.TrimSpace(c.Query("order_no")),
		GuestEmail: strings.TrimSpace(c.Query("email")),
	}
	if from := strings.TrimSpace(c.Query("created_from")); from != "" {
		if t, err := time.Parse(time.RFC3339, from); err == nil {
			filter.CreatedFrom = &t
		}
	}
	if to := strings.TrimSpace(c.Query("created_to")); to != "" {
		if t, err := time.Parse(time.RFC3339, to); err == nil {
			filter.CreatedTo = &t
		}
	}

	orders, total, err := h.OrderService.ListOrdersForAdmin(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "error.order_fetch_failed", err)
		return
	}

	response.SuccessWithPage(c, orders, response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	})
}

// GetAdminOrder 后台订单详情，订单项附带刻字展示
func (h *Handler) GetAdminOrder(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	order, err := h.OrderService.GetAdminOrder(uint(id))
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			respondError(c, response.CodeNotFound, "error.order_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.order_fetch_failed", err)
		return
	}

	detail := AdminOrderDetail{Order: *order, Items: make([]AdminOrderItem, 0, len(order.Items))}
	for _, item := range order.Items {
		detail.Items = append(detail.Items, AdminOrderItem{
			OrderItem:     item,
			Engraving:     item.GetMeta(constants.EngravingOrderMetaKey),
			EngravingHTML: service.RenderEngravingMetaHTML(item),
		})
	}
	response.Success(c, detail)
}

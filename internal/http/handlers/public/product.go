package public

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/awandha/engrave-shop/internal/http/response"
	"github.com/awandha/engrave-shop/internal/models"
	"github.com/awandha/engrave-shop/internal/repository"
	"github.com/awandha/engrave-shop/internal/widget"
)

// ProductDetail 商品详情响应，可刻字商品附带输入控件片段
type ProductDetail struct {
	*models.Product
	EngravingFieldHTML string `json:"engraving_field_html,omitempty"`
	EngravingMaxLength int    `json:"engraving_max_length,omitempty"`
}

// ListProducts 商品列表
func (h *Handler) ListProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	products, total, err := h.ProductRepo.List(repository.ProductListFilter{
		Page:       page,
		PageSize:   pageSize,
		Search:     strings.TrimSpace(c.Query("search")),
		OnlyActive: true,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}

	totalPage := total / int64(pageSize)
	if total%int64(pageSize) != 0 {
		totalPage++
	}
	response.SuccessWithPage(c, products, response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: totalPage,
	})
}

// GetProduct 商品详情
func (h *Handler) GetProduct(c *gin.Context) {
	product, err := h.ProductRepo.GetBySlug(c.Param("slug"), true)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	if product == nil {
		respondError(c, response.CodeNotFound, "error.product_not_found", nil)
		return
	}

	detail := ProductDetail{Product: product}
	if product.Engravable {
		setting, err := h.CartService.EngravingSetting()
		if err != nil {
			respondError(c, response.CodeInternal, "error.internal", err)
			return
		}
		html, err := widget.FieldHTML(setting.MaxTextLength)
		if err != nil {
			respondError(c, response.CodeInternal, "error.internal", err)
			return
		}
		detail.EngravingFieldHTML = string(html)
		detail.EngravingMaxLength = setting.MaxTextLength
	}
	response.Success(c, detail)
}

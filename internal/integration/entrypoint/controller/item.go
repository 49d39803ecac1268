// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stockee/backend/internal/application/usecase/item"
	domainerror "github.com/stockee/backend/internal/domain/error"
	"github.com/stockee/backend/internal/infra/metrics"
	"github.com/stockee/backend/internal/integration/entrypoint/dto"
)

// ItemController handles item endpoints for personal and group scopes.
type ItemController struct {
	listUseCase    *item.ListItemsUseCase
	getUseCase     *item.GetItemUseCase
	createUseCase  *item.CreateItemUseCase
	updateUseCase  *item.UpdateItemUseCase
	deleteUseCase  *item.DeleteItemUseCase
	adjustUseCase  *item.AdjustStockUseCase
	reorderUseCase *item.ReorderItemsUseCase
}

// NewItemController creates a new item controller instance.
func NewItemController(
	listUseCase *item.ListItemsUseCase,
	getUseCase *item.GetItemUseCase,
	createUseCase *item.CreateItemUseCase,
	updateUseCase *item.UpdateItemUseCase,
	deleteUseCase *item.DeleteItemUseCase,
	adjustUseCase *item.AdjustStockUseCase,
	reorderUseCase *item.ReorderItemsUseCase,
) *ItemController {
	return &ItemController{
		listUseCase:    listUseCase,
		getUseCase:     getUseCase,
		createUseCase:  createUseCase,
		updateUseCase:  updateUseCase,
		deleteUseCase:  deleteUseCase,
		adjustUseCase:  adjustUseCase,
		reorderUseCase: reorderUseCase,
	}
}

// List handles GET /items requests.
func (c *ItemController) List(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	groupID, ok := parseOptionalUUIDQuery(ctx, "group_id")
	if !ok {
		return
	}
	categoryID, ok := parseOptionalUUIDQuery(ctx, "category_id")
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), item.ListItemsInput{
		UserID:        userID,
		GroupID:       groupID,
		CategoryID:    categoryID,
		Uncategorized: ctx.Query("uncategorized") == "true",
		LowStockOnly:  ctx.Query("low_stock") == "true",
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ItemListResponse{
		Items: dto.ToItemResponses(output.Items),
	})
}

// Get handles GET /items/:id requests.
func (c *ItemController) Get(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	itemID, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	found, err := c.getUseCase.Execute(ctx.Request.Context(), item.GetItemInput{
		ItemID: itemID,
		UserID: userID,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToItemResponse(found))
}

// Create handles POST /items requests.
func (c *ItemController) Create(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	groupID, ok := parseOptionalUUIDQuery(ctx, "group_id")
	if !ok {
		return
	}

	var req dto.CreateItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body", string(domainerror.ErrCodeMissingItemFields))
		return
	}
	categoryID, err := parseOptionalUUID(req.CategoryID)
	if err != nil {
		badRequest(ctx, "Invalid category_id", string(domainerror.ErrCodeInvalidItemCategory))
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), item.CreateItemInput{
		UserID:      userID,
		GroupID:     groupID,
		Name:        req.Name,
		ProductName: req.ProductName,
		Price:       req.Price,
		Quantity:    req.Quantity,
		Unit:        req.Unit,
		Threshold:   req.Threshold,
		Note:        req.Note,
		CategoryID:  categoryID,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToItemResponse(output.Item))
}

// Update handles PATCH /items/:id requests.
func (c *ItemController) Update(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	itemID, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body", string(domainerror.ErrCodeMissingItemFields))
		return
	}
	categoryID, err := parseOptionalUUID(req.CategoryID)
	if err != nil {
		badRequest(ctx, "Invalid category_id", string(domainerror.ErrCodeInvalidItemCategory))
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), item.UpdateItemInput{
		ItemID:         itemID,
		UserID:         userID,
		Name:           req.Name,
		ProductName:    req.ProductName,
		Price:          req.Price,
		ClearPrice:     req.ClearPrice,
		Quantity:       req.Quantity,
		Unit:           req.Unit,
		Threshold:      req.Threshold,
		ClearThreshold: req.ClearThreshold,
		Note:           req.Note,
		CategoryID:     categoryID,
		ClearCategory:  req.ClearCategory,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToItemResponse(output.Item))
}

// Delete handles DELETE /items/:id requests.
func (c *ItemController) Delete(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	itemID, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	err := c.deleteUseCase.Execute(ctx.Request.Context(), item.DeleteItemInput{
		ItemID: itemID,
		UserID: userID,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Increment handles POST /items/:id/increment requests.
func (c *ItemController) Increment(ctx *gin.Context) {
	c.adjust(ctx, item.StockIncrement)
}

// Decrement handles POST /items/:id/decrement requests.
func (c *ItemController) Decrement(ctx *gin.Context) {
	c.adjust(ctx, item.StockDecrement)
}

func (c *ItemController) adjust(ctx *gin.Context, direction item.StockDirection) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	itemID, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	output, err := c.adjustUseCase.Execute(ctx.Request.Context(), item.AdjustStockInput{
		ItemID:    itemID,
		UserID:    userID,
		Direction: direction,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	metrics.StockAdjustments.WithLabelValues(string(direction)).Inc()

	ctx.JSON(http.StatusOK, dto.ToItemResponse(output.Item))
}

// Reorder handles PUT /items/reorder requests.
func (c *ItemController) Reorder(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	groupID, ok := parseOptionalUUIDQuery(ctx, "group_id")
	if !ok {
		return
	}

	orders, ok := bindReorder(ctx, string(domainerror.ErrCodeInvalidItemSortOrder))
	if !ok {
		return
	}

	err := c.reorderUseCase.Execute(ctx.Request.Context(), item.ReorderItemsInput{
		UserID:  userID,
		GroupID: groupID,
		Orders:  orders,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

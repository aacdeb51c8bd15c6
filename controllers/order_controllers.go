package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jugnuu/themis-pos/models"
	"github.com/jugnuu/themis-pos/services"
	"github.com/jugnuu/themis-pos/store"
	"github.com/jugnuu/themis-pos/utils"
)

type OrderController struct {
	Service *services.OrderService
}

func NewOrderController(svc *services.OrderService) *OrderController {
	return &OrderController{Service: svc}
}

// PlaceOrder -> diner submits an order from the table menu
func (oc *OrderController) PlaceOrder(c *gin.Context) {
	var req services.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.Service.Submit(req)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "Success", "id": order.ID})
}

// CallWaiter -> table asks for a waiter; pure notification, no order row
func (oc *OrderController) CallWaiter(c *gin.Context) {
	var req struct {
		Table string `json:"table"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	oc.Service.CallWaiter(req.Table)

	c.JSON(http.StatusOK, gin.H{"status": "Waiter called"})
}

// MarkServed -> staff marks a pending order as served
func (oc *OrderController) MarkServed(c *gin.Context) {
	id, err := orderIDParam(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := oc.Service.MarkServed(id); err != nil {
		respondTransitionError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "Done"})
}

// Checkout -> staff finalizes an order into sales history
func (oc *OrderController) Checkout(c *gin.Context) {
	id, err := orderIDParam(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := oc.Service.Checkout(id); err != nil {
		respondTransitionError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "Table Cleared"})
}

func orderIDParam(c *gin.Context) (uint, error) {
	idStr := c.Param("order_id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		return 0, errors.New("invalid order id")
	}
	return uint(id), nil
}

func respondTransitionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrOrderNotFound):
		utils.RespondError(c, http.StatusNotFound, err)
	case errors.Is(err, models.ErrInvalidTransition):
		utils.RespondError(c, http.StatusBadRequest, err)
	default:
		utils.RespondError(c, http.StatusInternalServerError, err)
	}
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jugnuu/themis-pos/services"
	"github.com/jugnuu/themis-pos/utils"
)

// ViewController serves the admin-gated read views.
type ViewController struct {
	Service *services.OrderService
}

func NewViewController(svc *services.OrderService) *ViewController {
	return &ViewController{Service: svc}
}

// Dashboard -> active (Pending) orders
func (vc *ViewController) Dashboard(c *gin.Context) {
	orders, err := vc.Service.ActiveOrders()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Active orders", orders)
}

// Billing -> everything not yet paid (Pending + Served)
func (vc *ViewController) Billing(c *gin.Context) {
	orders, err := vc.Service.BillingOrders()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Unpaid orders", orders)
}

// Sales -> lifetime totals plus today/week/month breakdowns
func (vc *ViewController) Sales(c *gin.Context) {
	report, err := vc.Service.Sales()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Sales report", report)
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jugnuu/themis-pos/menu"
	"github.com/jugnuu/themis-pos/utils"
)

// GetMenu -> the static catalog, scoped to the requesting table
func GetMenu(c *gin.Context) {
	table := c.DefaultQuery("table", "1")

	utils.RespondJSON(c, http.StatusOK, "Menu", gin.H{
		"table":      table,
		"categories": menu.Categories,
		"menu":       menu.Catalog(),
	})
}

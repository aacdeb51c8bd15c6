package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/jugnuu/themis-pos/utils"
)

// SessionController handles the single shared-secret admin login. The
// password hash and session manager are injected so tests can use their
// own credentials.
type SessionController struct {
	Sessions          *utils.SessionManager
	AdminPasswordHash []byte
}

func NewSessionController(sessions *utils.SessionManager, adminPasswordHash []byte) *SessionController {
	return &SessionController{
		Sessions:          sessions,
		AdminPasswordHash: adminPasswordHash,
	}
}

// Login -> compare the shared secret, set the admin session cookie
func (sc *SessionController) Login(c *gin.Context) {
	var input struct {
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := bcrypt.CompareHashAndPassword(sc.AdminPasswordHash, []byte(input.Password)); err != nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid password"))
		return
	}

	token, err := sc.Sessions.Issue()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	// cookie only; the token is not a bearer credential for an API client
	c.SetCookie(utils.AdminSessionCookie, token, 24*60*60, "/", "", false, true)

	utils.InfoLogger.Printf("Admin login from %s", c.ClientIP())

	utils.RespondJSON(c, http.StatusOK, "Login successful", gin.H{
		"redirect": "/dashboard",
	})
}

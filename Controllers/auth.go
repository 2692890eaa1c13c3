package Controllers

import (
	"errors"
	"net/http"

	"HospitalMS/Models"
	"HospitalMS/Session"
	"HospitalMS/Utils/Token"

	"github.com/gin-gonic/gin"
)

// Sessions is the per-user session registry, set in main.
var Sessions *Session.Manager

type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	uid, token, err := Models.LoginCheck(input.Username, input.Password)

	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "username or password is incorrect."})
		return
	}

	user, err := Models.GetUserByID(uid)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := Sessions.Get(uid); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load records"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Login Successful", "jwt": token, "role": user.Role})
}

type RegisterInput struct {
	Username        string `json:"username" binding:"required"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
	Role            string `json:"role" binding:"required"`
}

func Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Password != input.ConfirmPassword {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Passwords do not match"})
		return
	}

	user := Models.User{}

	user.Username = input.Username
	user.Password = input.Password
	user.Role = input.Role
	_, err := user.SaveUser()

	if err != nil {
		if errors.Is(err, Models.ErrUsernameTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Username already exists"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Account created successfully"})
}

func CurrentUser(c *gin.Context) {
	user_id, err := Token.ExtractTokenID(c)

	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := Models.GetUserByID(user_id)

	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var output struct {
		ID       uint   `json:"ID"`
		Username string `json:"username"`
		Role     string `json:"role"`
	}
	output.ID = user_id
	output.Username = user.Username
	output.Role = user.Role
	c.JSON(http.StatusOK, gin.H{"message": "success", "data": output})
}

// Logout drops the server-side session; the in-memory sequences are rebuilt
// on the next login.
func Logout(c *gin.Context) {
	user_id, err := Token.ExtractTokenID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	Sessions.Drop(user_id)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

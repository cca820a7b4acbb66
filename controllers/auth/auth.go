package authController

import (
	"finsim/config"
	"finsim/database"
	"finsim/ledger"
	"finsim/middleware"
	"finsim/models"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// startSession creates a session row and issues the JWT bound to it.
func startSession(c *fiber.Ctx, user *models.User) (string, error) {
	tokenID := uuid.NewString()

	session := models.Session{
		UserID:    user.ID,
		TokenID:   tokenID,
		IPAddress: c.IP(),
		Device:    c.Get("User-Agent"),
	}
	if err := database.Database.Db.Create(&session).Error; err != nil {
		return "", err
	}

	return middleware.GenerateJWT(user.ID, user.Username, tokenID)
}

// Register creates a user with the configured starting cash and logs them in.
func Register(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedRegister").(*struct {
		Username     string `json:"username"`
		Password     string `json:"password"`
		Confirmation string `json:"confirmation"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// Check if username already exists
	if err := db.Where("username = ?", reqData.Username).First(&models.User{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, ledger.ErrDuplicateUser.Error(), nil)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	newUser := models.User{
		Username: reqData.Username,
		Password: string(hashedPassword),
		Cash:     config.AppConfig.InitialCash,
	}

	if err := db.Create(&newUser).Error; err != nil {
		// The unique index is the last line of defense against a
		// concurrent registration with the same name.
		return middleware.JsonResponse(c, fiber.StatusConflict, false, ledger.ErrDuplicateUser.Error(), nil)
	}

	token, err := startSession(c, &newUser)
	if err != nil {
		log.Printf("Error starting session: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to start session!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User registered successfully.", fiber.Map{
		"userId":   newUser.ID,
		"username": newUser.Username,
		"cash":     newUser.Cash,
		"token":    token,
	})
}

// Login verifies credentials and binds a new session. Unknown usernames and
// wrong passwords get the same message.
func Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*struct {
		Username string `json:"username"`
		Password string `json:"password"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("username = ? AND is_deleted = ?", reqData.Username, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, ledger.ErrAuthFailed.Error(), nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, ledger.ErrAuthFailed.Error(), nil)
	}

	user.LastLogin = time.Now()
	if err := db.Save(&user).Error; err != nil {
		log.Printf("Error saving last login time: %v", err)
	}

	token, err := startSession(c, &user)
	if err != nil {
		log.Printf("Error starting session: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to start session!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful.", fiber.Map{
		"userId":   user.ID,
		"username": user.Username,
		"token":    token,
	})
}

// Logout revokes the current session. Revoking an already-revoked session is
// a no-op, so the route is idempotent.
func Logout(c *fiber.Ctx) error {
	tokenID, ok := c.Locals("tokenId").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid user session!", nil)
	}

	now := time.Now()
	if err := database.Database.Db.Model(&models.Session{}).
		Where("token_id = ? AND revoked_at IS NULL", tokenID).
		Update("revoked_at", &now).Error; err != nil {
		log.Printf("Error revoking session: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to log out!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Logged out.", nil)
}

// ChangePassword requires the current password before accepting a new one.
func ChangePassword(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid user session!", nil)
	}

	reqData, ok := c.Locals("validatedChangePassword").(*struct {
		CurrentPassword string `json:"currentPassword"`
		NewPassword     string `json:"newPassword"`
		Confirmation    string `json:"confirmation"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userId, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.CurrentPassword)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Current password is incorrect!", nil)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.NewPassword), config.AppConfig.SaltRound)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to hash password!", nil)
	}

	err = database.Database.Db.Transaction(func(tx *gorm.DB) error {
		return tx.Model(&user).Update("password", string(hashedPassword)).Error
	})
	if err != nil {
		log.Printf("Error updating password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update password!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Password changed.", nil)
}

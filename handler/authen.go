package handler

import (
	"time"

	"cinema_booking/model"
	"cinema_booking/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// POST /auth/login
func (h *Handler) Login(c *fiber.Ctx) error {
	input := c.Locals("input").(model.LoginInput)

	var account model.Account
	if err := h.db.Where("username = ? AND active = true", input.Username).
		First(&account).Error; err != nil {
		return utils.ErrorResponse(c, 401, "Sai tài khoản hoặc mật khẩu", nil)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(input.Password)); err != nil {
		return utils.ErrorResponse(c, 401, "Sai tài khoản hoặc mật khẩu", nil)
	}

	claims := jwt.MapClaims{
		"userId":   account.ID,
		"username": account.Username,
		"role":     account.Role,
		"exp":      time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(h.cfg.JWTSecret))
	if err != nil {
		return utils.ErrorResponse(c, 500, "Không thể tạo token", err)
	}

	return utils.SuccessResponse(c, 200, model.TokenData{AccessToken: signed})
}

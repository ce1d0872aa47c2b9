package handlers

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/whygabriel1/rccwebpage87/database"
	"github.com/whygabriel1/rccwebpage87/models"
)

type AuthHandler struct {
	JWTSecret string
}

func NewAuthHandler() *AuthHandler {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "dev-secret" // en producción va en .env
	}
	return &AuthHandler{JWTSecret: secret}
}

func (h *AuthHandler) signJWT(sub uint, role, name string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":  sub,
		"role": role,
		"name": name,
		"exp":  time.Now().Add(ttl).Unix(),
		"iat":  time.Now().Unix(),
	}
	tk := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tk.SignedString([]byte(h.JWTSecret))
}

type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// POST /api/login
// Prueba primero contra la tabla admin y después contra users. El
// token de sesión es un JWT de vida corta validado por el servidor; el
// cliente no guarda ninguna bandera de rol confiable.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"message": "Username and password required"})
	}
	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, map[string]any{"message": "Username and password required"})
	}

	var adm models.Admin
	if err := database.DB.Where("nombre_usuario = ?", username).First(&adm).Error; err == nil {
		if bcrypt.CompareHashAndPassword([]byte(adm.Clave), []byte(req.Password)) == nil {
			return h.loginOK(c, adm.ID, adm.NombreUsuario, "admin")
		}
		return c.JSON(http.StatusUnauthorized, map[string]any{"message": "Invalid credentials"})
	}

	var u models.User
	if err := database.DB.Where("username = ?", username).First(&u).Error; err == nil {
		if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.Password)) == nil {
			return h.loginOK(c, u.ID, u.Username, "user")
		}
	}
	return c.JSON(http.StatusUnauthorized, map[string]any{"message": "Invalid credentials"})
}

func (h *AuthHandler) loginOK(c echo.Context, id uint, username, role string) error {
	token, err := h.signJWT(id, role, username, 12*time.Hour)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Error during login"})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"token":   token,
		"user":    map[string]any{"id": id, "username": username, "role": role},
	})
}

type adminPayload struct {
	NombreUsuario string `json:"nombreUsuario"`
	Clave         string `json:"clave"`
}

// GET /api/admin
func (h *AuthHandler) ListAdmins(c echo.Context) error {
	var admins []models.Admin
	if err := database.DB.Find(&admins).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Error fetching admins"})
	}
	return c.JSON(http.StatusOK, admins)
}

// POST /api/admin
func (h *AuthHandler) CreateAdmin(c echo.Context) error {
	var p adminPayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"message": "Validation error"})
	}
	p.NombreUsuario = strings.TrimSpace(p.NombreUsuario)

	fields := map[string]string{}
	if p.NombreUsuario == "" {
		fields["nombreUsuario"] = "El nombre de usuario es obligatorio"
	}
	if len(p.Clave) < 6 {
		fields["clave"] = "La clave debe tener al menos 6 caracteres"
	}
	if len(fields) > 0 {
		return c.JSON(http.StatusBadRequest, map[string]any{"message": "Validation error", "fields": fields})
	}

	var dup models.Admin
	if err := database.DB.Where("nombre_usuario = ?", p.NombreUsuario).First(&dup).Error; err == nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"message": "Admin with this username already exists"})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(p.Clave), bcrypt.DefaultCost)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Error creating admin"})
	}
	adm := models.Admin{NombreUsuario: p.NombreUsuario, Clave: string(hash)}
	if err := database.DB.Create(&adm).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Error creating admin"})
	}
	return c.JSON(http.StatusCreated, adm)
}

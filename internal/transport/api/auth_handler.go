package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/IEVN1001-20001021/api-paso/internal/domain"
	"github.com/IEVN1001-20001021/api-paso/internal/service"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	userService UserServicer
}

func NewAuthHandler(userService UserServicer) *AuthHandler {
	return &AuthHandler{
		userService: userService,
	}
}

type UserRegisterParams struct {
	Username  string `binding:"required,max=50"        json:"usuario"`
	Email     string `binding:"required,email,max=100" json:"correo"`
	Password  string `binding:"required,min=6,max=255" json:"contraseña"`
	Surname1  string `binding:"required,max=50"        json:"APaterno"`
	Surname2  string `binding:"required,max=50"        json:"AMaterno"`
	BirthDate string `binding:"required"               json:"fecha_nacimiento"`
	Sex       string `binding:"required,max=20"        json:"sexo"`
}

// Register POST RegisterRoute. Creates the user together with its profile.
func (h *AuthHandler) Register(c *gin.Context) {
	var params UserRegisterParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).
			SetType(gin.ErrorTypeBind)
		return
	}

	birthDate, parseErr := time.Parse(dateLayout, params.BirthDate)
	if parseErr != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Fecha de nacimiento inválida."})
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	_, createErr := h.userService.Register(ctx, service.RegisterUserArgs{
		Username:  params.Username,
		Email:     params.Email,
		Password:  params.Password,
		Surname1:  params.Surname1,
		Surname2:  params.Surname2,
		BirthDate: birthDate,
		Sex:       params.Sex,
	})
	if createErr != nil {
		switch {
		case errors.Is(createErr, domain.ErrUnderage):
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "El usuario debe ser mayor de 18 años."})
		case errors.Is(createErr, domain.ErrDuplicateKey):
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "El correo ya está registrado."})
		default:
			_ = c.AbortWithError(http.StatusInternalServerError, createErr).
				SetType(gin.ErrorTypePrivate)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Usuario y perfil registrados exitosamente."})
}

type UserLoginParams struct {
	Email    string `binding:"required,email" json:"email"`
	Password string `binding:"required"       json:"password"`
}

// Login POST LoginRoute. A missing account and a wrong password produce the
// same client-facing message.
func (h *AuthHandler) Login(c *gin.Context) {
	var params UserLoginParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).
			SetType(gin.ErrorTypeBind)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	_, token, err := h.userService.Login(ctx, service.LoginUserArgs{
		Email:    params.Email,
		Password: params.Password,
	})
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) || errors.Is(err, domain.ErrPasswordMissMatch) {
			_ = c.Error(err)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Correo o contraseña incorrectos."})
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).
			SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Login exitoso", "token": token})
}

// ShowUser GET UserRoute. Public username lookup for rendering order and trip
// participants.
func (h *AuthHandler) ShowUser(c *gin.Context) {
	userID, ok := parseIDParam(c, "userID")
	if !ok {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Identificador de usuario inválido."})
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	user, err := h.userService.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Usuario no encontrado"})
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).
			SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": user.ID, "usuario": user.Username})
}

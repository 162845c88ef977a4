package controller

import (
	"github.com/gofiber/fiber/v2"

	"team-notes-be/internal/dto"
	"team-notes-be/internal/entity"
	"team-notes-be/internal/pkg/serverutils"
	"team-notes-be/internal/service"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	Register(ctx *fiber.Ctx) error
	Login(ctx *fiber.Ctx) error
	ResetPassword(ctx *fiber.Ctx) error
	Me(ctx *fiber.Ctx) error
	DeleteMe(ctx *fiber.Ctx) error
}

type authController struct {
	authService service.IAuthService
}

func NewAuthController(authService service.IAuthService) IAuthController {
	return &authController{authService: authService}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/auth/v1")
	h.Post("register", c.Register)
	h.Post("login", c.Login)
	h.Post("reset-password", c.ResetPassword)
	h.Get("me", serverutils.JwtMiddleware, c.Me)
	h.Delete("me", serverutils.JwtMiddleware, c.DeleteMe)
}

func (c *authController) Register(ctx *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	user, err := c.authService.Register(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success register", dto.RegisterResponse{
		Id:    user.Id,
		Email: user.Email,
	}))
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.authService.Login(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success login", res))
}

func (c *authController) ResetPassword(ctx *fiber.Ctx) error {
	var req dto.ResetPasswordRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.authService.ResetPassword(ctx.Context(), &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success reset password", nil))
}

func (c *authController) Me(ctx *fiber.Ctx) error {
	email := ctx.Locals("user_email").(string)

	user, err := c.authService.GetByEmail(ctx.Context(), email)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show profile", toUserDTO(user)))
}

func (c *authController) DeleteMe(ctx *fiber.Ctx) error {
	email := ctx.Locals("user_email").(string)

	if err := c.authService.DeleteByEmail(ctx.Context(), email); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete account", nil))
}

func toUserDTO(u *entity.User) dto.UserDTO {
	return dto.UserDTO{
		Id:          u.Id,
		Name:        u.Name,
		CompanyName: u.CompanyName,
		Email:       u.Email,
		Role:        string(u.Role),
	}
}

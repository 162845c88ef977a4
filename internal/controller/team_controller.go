package controller

import (
	"github.com/gofiber/fiber/v2"

	"team-notes-be/internal/dto"
	"team-notes-be/internal/entity"
	"team-notes-be/internal/pkg/serverutils"
	"team-notes-be/internal/service"
)

type ITeamController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	ListMine(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	GetOrCreate(ctx *fiber.Ctx) error
	Join(ctx *fiber.Ctx) error
	ListMembers(ctx *fiber.Ctx) error
	RotateInvite(ctx *fiber.Ctx) error
	Upgrade(ctx *fiber.Ctx) error
	UpdateMemberRole(ctx *fiber.Ctx) error
}

type teamController struct {
	tenantService     service.ITenantService
	membershipService service.IMembershipService
}

func NewTeamController(tenantService service.ITenantService, membershipService service.IMembershipService) ITeamController {
	return &teamController{
		tenantService:     tenantService,
		membershipService: membershipService,
	}
}

func (c *teamController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/team/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("", c.Create)
	h.Get("", c.ListMine)
	h.Post("lookup", c.GetOrCreate)
	h.Post("join", c.Join)
	h.Get(":id", c.Show)
	h.Get(":id/members", c.ListMembers)
	h.Post(":id/rotate-invite", c.RotateInvite)
	h.Post(":id/upgrade", c.Upgrade)
	h.Put(":id/members/role", c.UpdateMemberRole)
}

func (c *teamController) Create(ctx *fiber.Ctx) error {
	email := ctx.Locals("user_email").(string)

	var req dto.CreateTeamRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	tenant, err := c.tenantService.CreateTeam(ctx.Context(), req.Name, email)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create team", toTeamResponse(tenant)))
}

func (c *teamController) ListMine(ctx *fiber.Ctx) error {
	email := ctx.Locals("user_email").(string)

	teams, err := c.tenantService.ListUserTeams(ctx.Context(), email)
	if err != nil {
		return err
	}

	res := make([]dto.TeamResponse, len(teams))
	for i, t := range teams {
		res[i] = toTeamResponse(t)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list teams", res))
}

func (c *teamController) Show(ctx *fiber.Ctx) error {
	email := ctx.Locals("user_email").(string)
	tenantId := ctx.Params("id")

	if err := c.requireMember(ctx, email, tenantId); err != nil {
		return err
	}

	tenant, err := c.tenantService.GetById(ctx.Context(), tenantId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show team", toTeamResponse(tenant)))
}

func (c *teamController) GetOrCreate(ctx *fiber.Ctx) error {
	var req dto.GetOrCreateTeamRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	tenant, err := c.tenantService.GetOrCreateByName(ctx.Context(), req.Name)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success lookup team", toTeamResponse(tenant)))
}

func (c *teamController) Join(ctx *fiber.Ctx) error {
	email := ctx.Locals("user_email").(string)

	var req dto.JoinTeamRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	tenant, member, err := c.membershipService.JoinByInviteCode(ctx.Context(), email, req.InviteCode)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success join team", dto.JoinTeamResponse{
		Tenant: toTeamResponse(tenant),
		Member: toMemberResponse(member),
	}))
}

func (c *teamController) ListMembers(ctx *fiber.Ctx) error {
	email := ctx.Locals("user_email").(string)
	tenantId := ctx.Params("id")

	if err := c.requireMember(ctx, email, tenantId); err != nil {
		return err
	}

	members, err := c.membershipService.ListMembers(ctx.Context(), tenantId)
	if err != nil {
		return err
	}

	res := make([]dto.MemberResponse, len(members))
	for i, m := range members {
		res[i] = toMemberResponse(m)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list members", res))
}

func (c *teamController) RotateInvite(ctx *fiber.Ctx) error {
	email := ctx.Locals("user_email").(string)
	tenantId := ctx.Params("id")

	if err := c.requireAdmin(ctx, email, tenantId); err != nil {
		return err
	}

	tenant, err := c.tenantService.RotateInviteCode(ctx.Context(), tenantId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success rotate invite code", toTeamResponse(tenant)))
}

func (c *teamController) Upgrade(ctx *fiber.Ctx) error {
	email := ctx.Locals("user_email").(string)
	tenantId := ctx.Params("id")

	if err := c.requireAdmin(ctx, email, tenantId); err != nil {
		return err
	}

	tenant, err := c.tenantService.UpgradeToPro(ctx.Context(), tenantId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success upgrade team", toTeamResponse(tenant)))
}

func (c *teamController) UpdateMemberRole(ctx *fiber.Ctx) error {
	email := ctx.Locals("user_email").(string)
	tenantId := ctx.Params("id")

	if err := c.requireAdmin(ctx, email, tenantId); err != nil {
		return err
	}

	var req dto.UpdateMemberRoleRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	member, err := c.membershipService.UpdateRole(ctx.Context(), req.UserEmail, tenantId, req.Role)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update member role", toMemberResponse(member)))
}

// The store itself enforces no access control; these checks belong to
// the delivery surface, which decides what the acting user may do.
func (c *teamController) requireMember(ctx *fiber.Ctx, email, tenantId string) error {
	member, err := c.membershipService.GetForTenant(ctx.Context(), email, tenantId)
	if err != nil {
		return err
	}
	if member == nil {
		return fiber.NewError(fiber.StatusForbidden, "not a member of this team")
	}
	return nil
}

func (c *teamController) requireAdmin(ctx *fiber.Ctx, email, tenantId string) error {
	member, err := c.membershipService.GetForTenant(ctx.Context(), email, tenantId)
	if err != nil {
		return err
	}
	if member == nil || member.Role != entity.RoleAdmin {
		return fiber.NewError(fiber.StatusForbidden, "admin role required")
	}
	return nil
}

func toTeamResponse(t *entity.Tenant) dto.TeamResponse {
	return dto.TeamResponse{
		Id:         t.Id,
		Name:       t.Name,
		Plan:       string(t.Plan),
		CreatedAt:  t.CreatedAt,
		InviteCode: t.InviteCode,
		OwnerEmail: t.OwnerEmail,
	}
}

func toMemberResponse(m *entity.Membership) dto.MemberResponse {
	return dto.MemberResponse{
		UserEmail: m.UserEmail,
		TenantId:  m.TenantId,
		Role:      string(m.Role),
	}
}

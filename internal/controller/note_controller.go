package controller

import (
	"github.com/gofiber/fiber/v2"

	"team-notes-be/internal/dto"
	"team-notes-be/internal/entity"
	"team-notes-be/internal/pkg/serverutils"
	"team-notes-be/internal/service"
)

type INoteController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Count(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type noteController struct {
	noteService       service.INoteService
	membershipService service.IMembershipService
}

func NewNoteController(noteService service.INoteService, membershipService service.IMembershipService) INoteController {
	return &noteController{
		noteService:       noteService,
		membershipService: membershipService,
	}
}

func (c *noteController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/note/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.List)
	h.Get("count", c.Count)
	h.Post("", c.Create)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
}

func (c *noteController) List(ctx *fiber.Ctx) error {
	email := ctx.Locals("user_email").(string)
	tenantId := ctx.Query("tenant_id")
	if tenantId == "" {
		return fiber.NewError(fiber.StatusBadRequest, "tenant_id is required")
	}
	if err := c.requireMember(ctx, email, tenantId); err != nil {
		return err
	}

	notes, err := c.noteService.List(ctx.Context(), tenantId)
	if err != nil {
		return err
	}

	res := make([]dto.NoteResponse, len(notes))
	for i, n := range notes {
		res[i] = toNoteResponse(n)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list notes", res))
}

func (c *noteController) Count(ctx *fiber.Ctx) error {
	email := ctx.Locals("user_email").(string)
	tenantId := ctx.Query("tenant_id")
	if tenantId == "" {
		return fiber.NewError(fiber.StatusBadRequest, "tenant_id is required")
	}
	if err := c.requireMember(ctx, email, tenantId); err != nil {
		return err
	}

	count, err := c.noteService.Count(ctx.Context(), tenantId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success count notes", dto.NoteCountResponse{
		TenantId: tenantId,
		Count:    count,
	}))
}

func (c *noteController) Create(ctx *fiber.Ctx) error {
	email := ctx.Locals("user_email").(string)

	var req dto.CreateNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}
	if err := c.requireMember(ctx, email, req.TenantId); err != nil {
		return err
	}

	note, err := c.noteService.Create(ctx.Context(), req.TenantId, email, req.Title, req.Content)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success create note", toNoteResponse(note)))
}

func (c *noteController) Update(ctx *fiber.Ctx) error {
	email := ctx.Locals("user_email").(string)

	var req dto.UpdateNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = ctx.Params("id")
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}
	if err := c.requireMember(ctx, email, req.TenantId); err != nil {
		return err
	}

	note, err := c.noteService.Update(ctx.Context(), req.TenantId, req.Id, req.Title, req.Content)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update note", toNoteResponse(note)))
}

func (c *noteController) Delete(ctx *fiber.Ctx) error {
	email := ctx.Locals("user_email").(string)
	noteId := ctx.Params("id")
	tenantId := ctx.Query("tenant_id")
	if tenantId == "" {
		return fiber.NewError(fiber.StatusBadRequest, "tenant_id is required")
	}
	if err := c.requireMember(ctx, email, tenantId); err != nil {
		return err
	}

	if err := c.noteService.Delete(ctx.Context(), tenantId, noteId); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete note", nil))
}

func (c *noteController) requireMember(ctx *fiber.Ctx, email, tenantId string) error {
	member, err := c.membershipService.GetForTenant(ctx.Context(), email, tenantId)
	if err != nil {
		return err
	}
	if member == nil {
		return fiber.NewError(fiber.StatusForbidden, "not a member of this team")
	}
	return nil
}

func toNoteResponse(n *entity.Note) dto.NoteResponse {
	return dto.NoteResponse{
		Id:          n.Id,
		TenantId:    n.TenantId,
		AuthorEmail: n.AuthorEmail,
		Title:       n.Title,
		Content:     n.Content,
		CreatedAt:   n.CreatedAt,
		UpdatedAt:   n.UpdatedAt,
	}
}

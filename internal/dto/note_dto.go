package dto

import "time"

type CreateNoteRequest struct {
	TenantId string `json:"tenant_id" validate:"required"`
	Title    string `json:"title" validate:"required"`
	Content  string `json:"content"`
}

type UpdateNoteRequest struct {
	Id       string
	TenantId string `json:"tenant_id" validate:"required"`
	Title    string `json:"title" validate:"required"`
	Content  string `json:"content"`
}

type NoteResponse struct {
	Id          string    `json:"id"`
	TenantId    string    `json:"tenant_id"`
	AuthorEmail string    `json:"author_email"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type NoteCountResponse struct {
	TenantId string `json:"tenant_id"`
	Count    int    `json:"count"`
}

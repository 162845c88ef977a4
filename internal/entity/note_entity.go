package entity

import "time"

type Note struct {
	Id          string
	TenantId    string
	AuthorEmail string
	Title       string
	Content     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

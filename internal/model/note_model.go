package model

// Note is the stored record shape inside "saas_notes".
type Note struct {
	Id          string `json:"id"`
	TenantId    string `json:"tenantId"`
	AuthorEmail string `json:"authorEmail"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

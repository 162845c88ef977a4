package model

// Tenant is the stored record shape inside the "saas_tenants" collection.
// Timestamps are ISO-8601 strings in the persisted form.
type Tenant struct {
	Id         string  `json:"id"`
	Name       string  `json:"name"`
	Plan       string  `json:"plan"`
	CreatedAt  string  `json:"createdAt"`
	InviteCode string  `json:"inviteCode"`
	OwnerEmail *string `json:"ownerEmail"`
}

package model

// Membership is the stored record shape inside "saas_memberships".
type Membership struct {
	UserEmail string `json:"userEmail"`
	TenantId  string `json:"tenantId"`
	Role      string `json:"role"`
}

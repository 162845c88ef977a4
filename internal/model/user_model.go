package model

// User is the stored record shape inside "saas_users". The password field
// holds a bcrypt hash; legacy records with a different hash scheme will
// fail login until the password is reset.
type User struct {
	Id           string  `json:"id"`
	Name         string  `json:"name"`
	CompanyName  string  `json:"companyName"`
	Email        string  `json:"email"`
	Password     string  `json:"password"`
	Role         string  `json:"role"`
	RegisteredAt string  `json:"registeredAt"`
	LastLogin    *string `json:"lastLogin"`
}

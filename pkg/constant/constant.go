package constant

const (
	// RoleUser is the role granted to every user by default.
	RoleUser = "USER"
	// RoleAdmin grants access to user provisioning endpoints.
	RoleAdmin = "ADMIN"

	// DefaultTheme is the settings theme assigned to new users.
	DefaultTheme = "theme-default"

	// BearerScheme is the expected scheme on the access token header.
	BearerScheme = "bearer"

	// PrincipalKey is the request-locals key holding the authenticated user.
	PrincipalKey = "principal"
)

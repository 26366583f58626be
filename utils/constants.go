package utils

// Redis key prefixes.
const (
	// AuthRevokedPrefix marks token hashes that were explicitly signed out.
	AuthRevokedPrefix = "auth:revoked:"
)

// Caller roles carried in JWT claims and gin context.
const (
	RoleCustomer = "customer"
	RoleVendor   = "vendor"
	RoleAdmin    = "admin"
)

package auth

const (
	RoleAdmin       = "Admin"
	RoleManager     = "Manager"
	RoleOfficeStaff = "Office Staff"
	RoleSupport     = "Support"
)

const DefaultRole = RoleOfficeStaff

var AllRoles = []string{
	RoleAdmin,
	RoleManager,
	RoleOfficeStaff,
	RoleSupport,
}

func ValidRole(role string) bool {
	for _, candidate := range AllRoles {
		if role == candidate {
			return true
		}
	}
	return false
}

package constants

import "fmt"

const (
	RoleSuperAdmin  = "super_admin"
	RoleSchoolAdmin = "school_admin"
	RoleTeacher     = "teacher"
)

var (
	AllRoles = []string{
		RoleSuperAdmin,
		RoleSchoolAdmin,
		RoleTeacher,
	}

	AdminRoles = []string{
		RoleSuperAdmin,
		RoleSchoolAdmin,
	}

	SuperAdminOnly = []string{
		RoleSuperAdmin,
	}
)

const (
	errOnlySuperAdminsCanAccess = "only super admins may access %s"
	errOnlyAdminsCanAccess      = "only school admins may access %s"
	errOnlyTeachersCanAccess    = "only teachers may access %s"
)

func RoleErrorSuperAdmin(feature string) string {
	return fmt.Sprintf(errOnlySuperAdminsCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(errOnlyAdminsCanAccess, feature)
}

func RoleErrorTeacher(feature string) string {
	return fmt.Sprintf(errOnlyTeachersCanAccess, feature)
}

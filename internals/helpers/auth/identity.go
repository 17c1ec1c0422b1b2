// file: internals/helpers/auth/identity.go
package auth

import (
	"github.com/gofiber/fiber/v2"

	"kampusku_backend/internals/constants"
)

/* =======================================================
   Identity — identitas ber-role hasil verifikasi JWT,
   diisi AuthMiddleware ke fiber Locals per request.
   GroupID terisi untuk student, TeacherID untuk teacher;
   keduanya bisa nil (link tidak divalidasi saat tulis).
   ======================================================= */

type Identity struct {
	UserID    int
	Email     string
	Role      string
	GroupID   *int
	TeacherID *int
}

func (id Identity) IsAdmin() bool   { return id.Role == constants.RoleAdmin }
func (id Identity) IsTeacher() bool { return id.Role == constants.RoleTeacher }
func (id Identity) IsStudent() bool { return id.Role == constants.RoleStudent }

// OwnsTeacher: apakah identitas teacher ini memiliki teacherID tsb.
func (id Identity) OwnsTeacher(teacherID int) bool {
	return id.TeacherID != nil && *id.TeacherID == teacherID
}

// GetIdentity membaca locals yang diisi AuthMiddleware.
// Error 401 bila request lolos tanpa middleware (salah wiring).
func GetIdentity(c *fiber.Ctx) (Identity, error) {
	userID, ok := c.Locals("user_id").(int)
	if !ok {
		return Identity{}, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - identitas tidak ditemukan")
	}
	role, ok := c.Locals("user_role").(string)
	if !ok {
		return Identity{}, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - role tidak ditemukan")
	}

	id := Identity{UserID: userID, Role: role}
	if email, ok := c.Locals("user_email").(string); ok {
		id.Email = email
	}
	if gid, ok := c.Locals("group_id").(int); ok {
		id.GroupID = &gid
	}
	if tid, ok := c.Locals("teacher_id").(int); ok {
		id.TeacherID = &tid
	}
	return id, nil
}

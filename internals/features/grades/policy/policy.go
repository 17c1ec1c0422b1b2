// file: internals/features/grades/policy/policy.go
package policy

import (
	"github.com/gofiber/fiber/v2"

	"kampusku_backend/internals/constants"
	authHelper "kampusku_backend/internals/helpers/auth"
)

/* =======================================================
   Access policy untuk grades — fungsi murni atas Identity.

   Decision table:
     role     | read                        | create           | update/delete
     ---------+-----------------------------+------------------+------------------
     admin    | semua                       | bebas            | semua baris
     teacher  | grades miliknya, atau per   | hanya teacher_id | hanya baris dengan
              | student (tanpa cek subject) | = dirinya        | teacher_id dirinya
     student  | hanya grades dirinya        | ditolak          | ditolak

   Catatan: read per student oleh teacher sengaja TIDAK dicek
   terhadap kepemilikan subject (asimetri dengan write disengaja).
   ======================================================= */

var errForbidden = fiber.NewError(fiber.StatusForbidden, "Akses ditolak")

// CanViewStudentGrades: student hanya boleh melihat nilai dirinya;
// admin & teacher boleh melihat nilai student mana pun.
func CanViewStudentGrades(id authHelper.Identity, studentID int) error {
	if id.IsStudent() && id.UserID != studentID {
		return errForbidden
	}
	return nil
}

// CanViewTeacherGrades: teacher hanya boleh melihat daftar nilai
// yang dia berikan sendiri; student ditolak; admin bebas.
func CanViewTeacherGrades(id authHelper.Identity, teacherID int) error {
	switch id.Role {
	case constants.RoleAdmin:
		return nil
	case constants.RoleTeacher:
		if !id.OwnsTeacher(teacherID) {
			return errForbidden
		}
		return nil
	default:
		return errForbidden
	}
}

// CanViewAllGrades: admin only.
func CanViewAllGrades(id authHelper.Identity) error {
	if !id.IsAdmin() {
		return errForbidden
	}
	return nil
}

// CanCreateGrade: student ditolak; teacher hanya atas namanya
// sendiri (teacherID dari request == identitas teacher caller);
// admin bebas.
func CanCreateGrade(id authHelper.Identity, teacherID int) error {
	switch id.Role {
	case constants.RoleAdmin:
		return nil
	case constants.RoleTeacher:
		if !id.OwnsTeacher(teacherID) {
			return fiber.NewError(fiber.StatusForbidden, "Anda hanya bisa menambah nilai untuk subject Anda sendiri")
		}
		return nil
	default:
		return errForbidden
	}
}

// CanMutateGrade: aturan update/delete. ownerTeacherID adalah
// teacher_id yang TERSIMPAN di baris grade — baris harus
// di-fetch dulu (baris tidak ada = 404, bukan 403).
func CanMutateGrade(id authHelper.Identity, ownerTeacherID int) error {
	switch id.Role {
	case constants.RoleAdmin:
		return nil
	case constants.RoleTeacher:
		if !id.OwnsTeacher(ownerTeacherID) {
			return fiber.NewError(fiber.StatusForbidden, "Anda hanya bisa mengubah nilai yang Anda berikan sendiri")
		}
		return nil
	default:
		return errForbidden
	}
}

// file: internals/seeds/seeder.go
package seeds

import (
	"errors"
	"log"

	"gorm.io/gorm"

	"kampusku_backend/internals/configs"
	"kampusku_backend/internals/constants"
	groupModel "kampusku_backend/internals/features/academics/groups/model"
	roomModel "kampusku_backend/internals/features/academics/rooms/model"
	subjectModel "kampusku_backend/internals/features/academics/subjects/model"
	teacherModel "kampusku_backend/internals/features/academics/teachers/model"
	gradeModel "kampusku_backend/internals/features/grades/model"
	scheduleModel "kampusku_backend/internals/features/schedules/model"
	authService "kampusku_backend/internals/features/users/auth/service"
	userModel "kampusku_backend/internals/features/users/user/model"
)

// RunAllSeeds dipanggil setiap start; idempotent.
func RunAllSeeds(db *gorm.DB) {
	seedDefaultAdmin(db)
	if configs.GetEnv("SEED_DEMO_DATA", "false") == "true" {
		seedDemoData(db)
	}
}

// seedDefaultAdmin memastikan minimal ada satu akun admin
// supaya instalasi baru bisa langsung dipakai.
func seedDefaultAdmin(db *gorm.DB) {
	email := configs.GetEnv("SEED_ADMIN_EMAIL", "admin@kampusku.local")
	password := configs.GetEnv("SEED_ADMIN_PASSWORD", "")
	if password == "" {
		log.Println("⚠️ SEED_ADMIN_PASSWORD kosong, skip seed admin")
		return
	}

	var existing userModel.UserModel
	err := db.First(&existing, "user_email = ?", email).Error
	if err == nil {
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("❌ Seed admin gagal cek: %v", err)
		return
	}

	hash, err := authService.HashPassword(password)
	if err != nil {
		log.Printf("❌ Seed admin gagal hash password: %v", err)
		return
	}

	admin := userModel.UserModel{
		UserName:     "Administrator",
		UserEmail:    email,
		UserPassword: hash,
		UserRole:     constants.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("❌ Seed admin gagal: %v", err)
		return
	}
	log.Printf("✅ Admin default dibuat: %s", email)
}

// seedDemoData mengisi dataset demo (group, teacher, room, subject,
// user teacher/student, jadwal, nilai). Skip bila sudah ada group.
func seedDemoData(db *gorm.DB) {
	var count int64
	if err := db.Model(&groupModel.GroupModel{}).Count(&count).Error; err != nil {
		log.Printf("❌ Seed demo gagal cek: %v", err)
		return
	}
	if count > 0 {
		return
	}

	desc := func(s string) *string { return &s }

	err := db.Transaction(func(tx *gorm.DB) error {
		groups := []groupModel.GroupModel{
			{GroupName: "TI-1A", GroupDescription: desc("Teknik Informatika angkatan 1, kelas A")},
			{GroupName: "TI-1B", GroupDescription: desc("Teknik Informatika angkatan 1, kelas B")},
		}
		if err := tx.Create(&groups).Error; err != nil {
			return err
		}

		teachers := []teacherModel.TeacherModel{
			{TeacherName: "Budi Santoso", TeacherEmail: "budi@kampusku.local", TeacherDepartment: "Informatika"},
			{TeacherName: "Siti Rahma", TeacherEmail: "siti@kampusku.local", TeacherDepartment: "Matematika"},
		}
		if err := tx.Create(&teachers).Error; err != nil {
			return err
		}

		rooms := []roomModel.RoomModel{
			{RoomName: "R-101", RoomCapacity: 40},
			{RoomName: "Lab Komputer 1", RoomCapacity: 30, RoomDescription: desc("Lab praktikum pemrograman")},
		}
		if err := tx.Create(&rooms).Error; err != nil {
			return err
		}

		subjects := []subjectModel.SubjectModel{
			{SubjectName: "Algoritma dan Pemrograman", SubjectTeacherID: teachers[0].TeacherID},
			{SubjectName: "Kalkulus", SubjectTeacherID: teachers[1].TeacherID},
		}
		if err := tx.Create(&subjects).Error; err != nil {
			return err
		}

		hash, err := authService.HashPassword("demo12345")
		if err != nil {
			return err
		}
		users := []userModel.UserModel{
			{UserName: "Budi Santoso", UserEmail: "budi.user@kampusku.local", UserPassword: hash,
				UserRole: constants.RoleTeacher, UserTeacherID: &teachers[0].TeacherID},
			{UserName: "Andi Wijaya", UserEmail: "andi@kampusku.local", UserPassword: hash,
				UserRole: constants.RoleStudent, UserGroupID: &groups[0].GroupID},
			{UserName: "Dewi Lestari", UserEmail: "dewi@kampusku.local", UserPassword: hash,
				UserRole: constants.RoleStudent, UserGroupID: &groups[1].GroupID},
		}
		if err := tx.Create(&users).Error; err != nil {
			return err
		}

		schedules := []scheduleModel.ScheduleEntryModel{
			{ScheduleGroupID: groups[0].GroupID, ScheduleSubjectID: subjects[0].SubjectID,
				ScheduleTeacherID: teachers[0].TeacherID, ScheduleRoomID: rooms[1].RoomID,
				ScheduleDate: "2025-09-01", ScheduleTimeStart: "08:00", ScheduleTimeEnd: "09:40"},
			{ScheduleGroupID: groups[0].GroupID, ScheduleSubjectID: subjects[1].SubjectID,
				ScheduleTeacherID: teachers[1].TeacherID, ScheduleRoomID: rooms[0].RoomID,
				ScheduleDate: "2025-09-01", ScheduleTimeStart: "10:00", ScheduleTimeEnd: "11:40"},
			{ScheduleGroupID: groups[1].GroupID, ScheduleSubjectID: subjects[0].SubjectID,
				ScheduleTeacherID: teachers[0].TeacherID, ScheduleRoomID: rooms[1].RoomID,
				ScheduleDate: "2025-09-02", ScheduleTimeStart: "08:00", ScheduleTimeEnd: "09:40"},
		}
		if err := tx.Create(&schedules).Error; err != nil {
			return err
		}

		grades := []gradeModel.GradeModel{
			{GradeStudentID: users[1].UserID, GradeSubjectID: subjects[0].SubjectID,
				GradeTeacherID: teachers[0].TeacherID, GradeScore: 5,
				GradeType: gradeModel.GradeTypeHomework, GradeDate: "2025-09-05"},
			{GradeStudentID: users[2].UserID, GradeSubjectID: subjects[0].SubjectID,
				GradeTeacherID: teachers[0].TeacherID, GradeScore: 4,
				GradeType: gradeModel.GradeTypeTest, GradeDate: "2025-09-05"},
		}
		return tx.Create(&grades).Error
	})
	if err != nil {
		log.Printf("❌ Seed demo gagal: %v", err)
		return
	}
	log.Println("✅ Dataset demo dibuat.")
}

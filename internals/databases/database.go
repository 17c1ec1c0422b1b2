package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	groupModel "kampusku_backend/internals/features/academics/groups/model"
	roomModel "kampusku_backend/internals/features/academics/rooms/model"
	subjectModel "kampusku_backend/internals/features/academics/subjects/model"
	teacherModel "kampusku_backend/internals/features/academics/teachers/model"
	gradeModel "kampusku_backend/internals/features/grades/model"
	scheduleModel "kampusku_backend/internals/features/schedules/model"
	userModel "kampusku_backend/internals/features/users/user/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Koneksi ke PostgreSQL...")

	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=kampusku&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // cocok untuk PgBouncer (transaction pooling)
	}), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ Gagal konek DB: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// Migrate urut dari tabel referensi ke tabel yang ber-FK
// supaya constraint cascade ikut terbentuk.
func Migrate() {
	if err := DB.AutoMigrate(
		&groupModel.GroupModel{},
		&teacherModel.TeacherModel{},
		&roomModel.RoomModel{},
		&subjectModel.SubjectModel{},
		&userModel.UserModel{},
		&scheduleModel.ScheduleEntryModel{},
		&gradeModel.GradeModel{},
	); err != nil {
		log.Fatalf("❌ Gagal migrate: %v", err)
	}
	log.Println("✅ Migrasi tabel selesai.")
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

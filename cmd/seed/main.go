package main

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stemsi/edureg-backend/internal/config"
	"github.com/stemsi/edureg-backend/internal/database"
	"github.com/stemsi/edureg-backend/internal/logger"
	"github.com/stemsi/edureg-backend/internal/model"
	"github.com/stemsi/edureg-backend/internal/repository"
	"github.com/stemsi/edureg-backend/internal/service"
)

func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	courseRepo := repository.NewCourseRepository(pool)
	teacherRepo := repository.NewTeacherRepository(pool)
	batchRepo := repository.NewBatchRepository(pool)
	assignmentRepo := repository.NewAssignmentRepository(pool)
	studentRepo := repository.NewStudentRepository(pool)
	registrationRepo := repository.NewRegistrationRepository(pool)
	studentCourseRepo := repository.NewStudentCourseRepository(pool)

	courseService := service.NewCourseService(courseRepo)
	teacherService := service.NewTeacherService(teacherRepo)
	batchService := service.NewBatchService(batchRepo)
	assignmentService := service.NewAssignmentService(assignmentRepo)
	registrationService := service.NewRegistrationService(pool, studentRepo, registrationRepo, studentCourseRepo, log)

	fmt.Println("=== Seeding sample data ===")

	courses := []model.CreateCourseRequest{
		{Name: "Introduction to Databases", Code: "DB101", Description: "Relational fundamentals", Credits: 4},
		{Name: "Distributed Systems", Code: "DS301", Description: "Consensus and replication", Credits: 6},
		{Name: "Operating Systems", Code: "OS201", Description: "Processes, memory, filesystems", Credits: 5},
	}

	teachers := []model.CreateTeacherRequest{
		{FirstName: "Ana", LastName: "Moreno", Email: "ana.moreno@edureg.example", Phone: "081234567", Department: "Computer Science"},
		{FirstName: "Rudi", LastName: "Hartono", Email: "rudi.hartono@edureg.example", Phone: "081234568", Department: "Computer Science"},
		{FirstName: "Mei", LastName: "Lin", Email: "mei.lin@edureg.example", Phone: "081234569", Department: "Mathematics"},
	}

	now := time.Now()
	var batchIDs []int64

	for i := range courses {
		course, err := findOrCreateCourse(ctx, courseService, &courses[i])
		if err != nil {
			log.Fatal().Err(err).Str("code", courses[i].Code).Msg("Failed to seed course")
		}

		teacher, err := teacherService.Create(ctx, &teachers[i])
		if err != nil {
			if !repository.IsUniqueness(err) {
				log.Fatal().Err(err).Msg("Failed to seed teacher")
			}
		} else {
			if _, err := assignmentService.Assign(ctx, &model.AssignTeacherRequest{
				CourseID:  course.ID,
				TeacherID: teacher.ID,
			}); err != nil && !repository.IsUniqueness(err) {
				log.Fatal().Err(err).Msg("Failed to seed assignment")
			}
		}

		batch, err := batchService.Create(ctx, &model.CreateBatchRequest{
			Name:      fmt.Sprintf("%s %d Morning", course.Code, now.Year()),
			StartDate: now.AddDate(0, 1, 0),
			EndDate:   now.AddDate(0, 6, 0),
			CourseID:  course.ID,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to seed batch")
		}
		batchIDs = append(batchIDs, batch.ID)
		fmt.Printf("Seeded course %s with batch %d\n", course.Code, batch.ID)
	}

	// A few students through the composite register flow; unique emails
	// keep repeated seed runs from tripping the email constraint.
	payments := []float64{120, 450, 600, 750, 90}
	for i, payment := range payments {
		suffix := uuid.NewString()[:8]
		outcome, err := registrationService.RegisterStudent(ctx, &model.RegisterStudentRequest{
			FirstName:     fmt.Sprintf("Student%d", i+1),
			LastName:      "Seed",
			Email:         fmt.Sprintf("student.%s@edureg.example", suffix),
			DateOfBirth:   time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC),
			BatchID:       batchIDs[i%len(batchIDs)],
			PaymentAmount: payment,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to seed registration")
		}
		if outcome.Failed {
			log.Warn().Str("notice", outcome.Notice).Msg("Seed registration rolled back")
			continue
		}
		fmt.Printf("Registered student %d into batch %d (status %s)\n",
			outcome.Student.ID, outcome.Registration.BatchID, outcome.Registration.Status)
	}

	fmt.Println("=== Done ===")
}

// findOrCreateCourse reuses a course when the seed already ran.
func findOrCreateCourse(ctx context.Context, svc *service.CourseService, req *model.CreateCourseRequest) (*model.Course, error) {
	course, err := svc.Create(ctx, req)
	if err == nil {
		return course, nil
	}
	if repository.IsUniqueness(err) {
		return svc.GetByCode(ctx, req.Code)
	}
	return nil, err
}

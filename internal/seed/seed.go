// Package seed inserts the default teachers, courses and demo account so
// a fresh database is usable immediately.
package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rhydam1003/demo-erp/internal/pkg/auth"
)

type seedTeacher struct {
	name       string
	department string
	email      string
}

type seedCourse struct {
	code         string
	name         string
	semester     int
	teacherEmail string
}

var defaultTeachers = []seedTeacher{
	{"Dr. Rajesh Kumar", "Computer Science", "rajesh.kumar@college.edu"},
	{"Prof. Anita Sharma", "Computer Science", "anita.sharma@college.edu"},
	{"Dr. Vikram Singh", "Computer Science", "vikram.singh@college.edu"},
	{"Prof. Meera Nair", "Computer Science", "meera.nair@college.edu"},
}

var defaultCourses = []seedCourse{
	{"CSE301", "Database Management Systems", 5, "rajesh.kumar@college.edu"},
	{"CSE302", "Operating Systems", 5, "anita.sharma@college.edu"},
	{"CSE303", "Computer Networks", 5, "vikram.singh@college.edu"},
	{"CSE304", "Software Engineering", 5, "meera.nair@college.edu"},
}

// CreateDefaultData creates the default teachers, courses and a demo
// student if they don't exist. Every insert is a conflict-tolerant upsert
// so reruns are harmless.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating default data (Teachers/Courses)...")
	var finalErr error

	teacherIDs := make(map[string]int64, len(defaultTeachers))
	for _, t := range defaultTeachers {
		var id int64
		err := dbPool.QueryRow(ctx,
			`INSERT INTO teachers (name, department, email) VALUES ($1, $2, $3)
			 ON CONFLICT ON CONSTRAINT teachers_email_key DO UPDATE SET name = EXCLUDED.name
			 RETURNING id`,
			t.name, t.department, t.email).Scan(&id)
		if err != nil {
			lgr.Error().Err(err).Str("teacher", t.name).Msg("Error seeding teacher")
			finalErr = errors.Join(finalErr, fmt.Errorf("seeding teacher %s: %w", t.name, err))
			continue
		}
		teacherIDs[t.email] = id
	}

	for _, c := range defaultCourses {
		teacherID, ok := teacherIDs[c.teacherEmail]
		if !ok {
			continue
		}
		_, err := dbPool.Exec(ctx,
			`INSERT INTO courses (code, name, semester, teacher_id) VALUES ($1, $2, $3, $4)
			 ON CONFLICT ON CONSTRAINT courses_code_key DO NOTHING`,
			c.code, c.name, c.semester, teacherID)
		if err != nil {
			lgr.Error().Err(err).Str("course", c.code).Msg("Error seeding course")
			finalErr = errors.Join(finalErr, fmt.Errorf("seeding course %s: %w", c.code, err))
		}
	}

	if err := createDemoStudent(ctx, dbPool, lgr); err != nil {
		finalErr = errors.Join(finalErr, err)
	}

	return finalErr
}

// createDemoStudent inserts the demo login used in development
func createDemoStudent(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	var exists bool
	err := dbPool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM students WHERE email = $1)`,
		"demo@college.edu").Scan(&exists)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking demo student")
		return fmt.Errorf("checking demo student: %w", err)
	}
	if exists {
		return nil
	}

	hashed, err := auth.HashPassword("password123")
	if err != nil {
		return fmt.Errorf("hashing demo password: %w", err)
	}

	_, err = dbPool.Exec(ctx,
		`INSERT INTO students (name, email, password, roll_no, semester, branch)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT ON CONSTRAINT students_email_key DO NOTHING`,
		"Demo Student", "demo@college.edu", hashed, "CS21B001", 5, "CSE")
	if err != nil {
		lgr.Error().Err(err).Msg("Error seeding demo student")
		return fmt.Errorf("seeding demo student: %w", err)
	}

	lgr.Info().Str("email", "demo@college.edu").Msg("Demo student created")
	return nil
}

package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/examcell/exam-admin-api/internal/models"
)

// Seed file names expected in the data directory.
const (
	fileClassrooms    = "classrooms.csv"
	fileTeachersSem3  = "teacher-list.csv"
	fileTeachersSem5  = "teacher-list-sem-5.csv"
	fileSeatingRooms  = "classroom_list.csv"
	fileStudentsFifth = "student_list.csv"
	fileStudentsThird = "student_list_3rd.csv"
)

type classroomSeeder interface {
	InsertMissing(ctx context.Context, rooms []models.Classroom) (int64, error)
}

type teacherSeeder interface {
	InsertMissing(ctx context.Context, teachers []models.Teacher) (int64, error)
}

type allocationClearer interface {
	DeleteAll(ctx context.Context) error
}

type seatingRoomReplacer interface {
	Replace(ctx context.Context, rooms []models.SeatingRoom) error
}

type studentReplacer interface {
	ReplaceThirdSem(ctx context.Context, students []models.Student) error
	ReplaceFifthSem(ctx context.Context, students []models.Student) error
}

// IngestService loads the flat seed files into the database on startup. The
// duty-side tables are insert-if-absent, the seating-side lists are replaced
// wholesale, and stale allocations are wiped so a fresh term starts clean.
type IngestService struct {
	dataDir     string
	classrooms  classroomSeeder
	teachers    teacherSeeder
	allocations allocationClearer
	rooms       seatingRoomReplacer
	students    studentReplacer
	logger      *zap.Logger
}

// NewIngestService wires the seed loader.
func NewIngestService(
	dataDir string,
	classrooms classroomSeeder,
	teachers teacherSeeder,
	allocations allocationClearer,
	rooms seatingRoomReplacer,
	students studentReplacer,
	logger *zap.Logger,
) *IngestService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &IngestService{
		dataDir:     dataDir,
		classrooms:  classrooms,
		teachers:    teachers,
		allocations: allocations,
		rooms:       rooms,
		students:    students,
		logger:      logger,
	}
}

// Run executes the full seed sequence.
func (s *IngestService) Run(ctx context.Context) error {
	if err := s.seedClassrooms(ctx); err != nil {
		return err
	}
	if err := s.seedTeachers(ctx); err != nil {
		return err
	}
	if err := s.allocations.DeleteAll(ctx); err != nil {
		return fmt.Errorf("clear stale allocations: %w", err)
	}
	if err := s.seedSeatingRooms(ctx); err != nil {
		return err
	}
	if err := s.seedStudents(ctx); err != nil {
		return err
	}
	s.logger.Info("seed data loaded", zap.String("data_dir", s.dataDir))
	return nil
}

func (s *IngestService) seedClassrooms(ctx context.Context) error {
	records, err := s.readCSV(fileClassrooms)
	if err != nil {
		return err
	}
	rooms := make([]models.Classroom, 0, len(records))
	for _, rec := range records {
		if len(rec) < 3 {
			continue
		}
		benches, err1 := strconv.Atoi(strings.TrimSpace(rec[1]))
		perBench, err2 := strconv.Atoi(strings.TrimSpace(rec[2]))
		if err1 != nil || err2 != nil {
			s.logger.Warn("skipping malformed classroom row", zap.Strings("row", rec))
			continue
		}
		rooms = append(rooms, models.Classroom{
			Name:             strings.TrimSpace(rec[0]),
			NumBenches:       benches,
			StudentsPerBench: perBench,
			TotalCapacity:    benches * perBench,
		})
	}
	inserted, err := s.classrooms.InsertMissing(ctx, rooms)
	if err != nil {
		return fmt.Errorf("seed classrooms: %w", err)
	}
	s.logger.Info("classrooms seeded", zap.Int64("inserted", inserted), zap.Int("total", len(rooms)))
	return nil
}

// seedTeachers merges the two semester files. The first occurrence of a name
// wins: a teacher listed for both semesters keeps the flag of the file seen
// first, matching the duty allocator's one-track-per-teacher assumption.
func (s *IngestService) seedTeachers(ctx context.Context) error {
	seen := make(map[string]struct{})
	var teachers []models.Teacher

	collect := func(file string, sem3 bool) error {
		records, err := s.readCSV(file)
		if err != nil {
			return err
		}
		for _, rec := range records {
			if len(rec) < 3 {
				continue
			}
			name := strings.TrimSpace(rec[0])
			if name == "" {
				continue
			}
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			teachers = append(teachers, models.Teacher{
				Name:        name,
				Division:    strings.TrimSpace(rec[2]),
				TeachesSem3: sem3,
				TeachesSem5: !sem3,
			})
		}
		return nil
	}

	if err := collect(fileTeachersSem3, true); err != nil {
		return err
	}
	if err := collect(fileTeachersSem5, false); err != nil {
		return err
	}

	inserted, err := s.teachers.InsertMissing(ctx, teachers)
	if err != nil {
		return fmt.Errorf("seed teachers: %w", err)
	}
	s.logger.Info("teachers seeded", zap.Int64("inserted", inserted), zap.Int("total", len(teachers)))
	return nil
}

func (s *IngestService) seedSeatingRooms(ctx context.Context) error {
	lines, err := s.readLines(fileSeatingRooms)
	if err != nil {
		return err
	}
	rooms := make([]models.SeatingRoom, 0, len(lines))
	for _, line := range lines {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			s.logger.Warn("skipping malformed seating room row", zap.String("row", line))
			continue
		}
		benches, err := strconv.Atoi(fields[1])
		if err != nil {
			s.logger.Warn("skipping malformed seating room row", zap.String("row", line))
			continue
		}
		rooms = append(rooms, models.SeatingRoom{
			SequenceNumber: len(rooms) + 1,
			ClassroomName:  fields[0],
			NoOfBenches:    benches,
		})
	}
	if err := s.rooms.Replace(ctx, rooms); err != nil {
		return fmt.Errorf("seed seating rooms: %w", err)
	}
	s.logger.Info("seating rooms seeded", zap.Int("total", len(rooms)))
	return nil
}

func (s *IngestService) seedStudents(ctx context.Context) error {
	fifth, err := s.readStudentList(fileStudentsFifth)
	if err != nil {
		return err
	}
	if err := s.students.ReplaceFifthSem(ctx, fifth); err != nil {
		return fmt.Errorf("seed fifth-sem students: %w", err)
	}

	third, err := s.readStudentList(fileStudentsThird)
	if err != nil {
		return err
	}
	if err := s.students.ReplaceThirdSem(ctx, third); err != nil {
		return fmt.Errorf("seed third-sem students: %w", err)
	}

	s.logger.Info("students seeded", zap.Int("third_sem", len(third)), zap.Int("fifth_sem", len(fifth)))
	return nil
}

// readStudentList parses a space-separated "rno usn name..." file. Name may
// itself contain spaces; trailing commas are stripped.
func (s *IngestService) readStudentList(file string) ([]models.Student, error) {
	lines, err := s.readLines(file)
	if err != nil {
		return nil, err
	}
	students := make([]models.Student, 0, len(lines))
	for _, line := range lines {
		fields := strings.Fields(line)
		if len(fields) < 3 {
			s.logger.Warn("skipping malformed student row", zap.String("row", line))
			continue
		}
		rno, err := strconv.Atoi(fields[0])
		if err != nil {
			s.logger.Warn("skipping malformed student row", zap.String("row", line))
			continue
		}
		name := strings.TrimRight(strings.Join(fields[2:], " "), ",")
		students = append(students, models.Student{
			RollNo: rno,
			USN:    fields[1],
			Name:   name,
		})
	}
	return students, nil
}

// TeacherDetails returns the raw rows of both teacher seed files, course
// included, for the teachers-details listing.
func (s *IngestService) TeacherDetails() ([]models.TeacherDetail, error) {
	var details []models.TeacherDetail

	collect := func(file string, semester int) error {
		records, err := s.readCSV(file)
		if err != nil {
			return err
		}
		for _, rec := range records {
			if len(rec) < 3 {
				continue
			}
			details = append(details, models.TeacherDetail{
				Name:     strings.TrimSpace(rec[0]),
				Course:   strings.TrimSpace(rec[1]),
				Division: strings.TrimSpace(rec[2]),
				Semester: semester,
			})
		}
		return nil
	}

	if err := collect(fileTeachersSem3, 3); err != nil {
		return nil, err
	}
	if err := collect(fileTeachersSem5, 5); err != nil {
		return nil, err
	}
	return details, nil
}

func (s *IngestService) readCSV(file string) ([][]string, error) {
	f, err := os.Open(filepath.Join(s.dataDir, file))
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", file, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", file, err)
	}
	return records, nil
}

func (s *IngestService) readLines(file string) ([]string, error) {
	raw, err := os.ReadFile(filepath.Join(s.dataDir, file))
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", file, err)
	}
	var lines []string
	for _, line := range strings.Split(string(raw), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines, nil
}

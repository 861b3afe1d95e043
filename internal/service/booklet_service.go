package service

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/examcell/exam-admin-api/internal/dto"
	"github.com/examcell/exam-admin-api/internal/models"
	appErrors "github.com/examcell/exam-admin-api/pkg/errors"
)

type bookletRepo interface {
	Replace(ctx context.Context, exec sqlx.ExtContext, booklets []models.Booklet) error
	List(ctx context.Context, filter dto.BookletFilter) ([]models.Booklet, error)
}

// BookletService generates and lists answer-booklet assignments.
type BookletService struct {
	booklets  bookletRepo
	tx        txBeginner
	validator *validator.Validate
	logger    *zap.Logger
}

// NewBookletService wires the booklet dependencies.
func NewBookletService(booklets bookletRepo, tx txBeginner, validate *validator.Validate, logger *zap.Logger) *BookletService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BookletService{booklets: booklets, tx: tx, validator: validate, logger: logger}
}

// bookletID builds the printed booklet label for one roll number.
func bookletID(isaExamNumber, division string, roll int) string {
	return fmt.Sprintf("ISA-M-%s-%s-%03d", isaExamNumber, division, roll)
}

// Assign generates one booklet per roll in [StartRoll, EndRoll] and replaces
// the whole stored set with the new batch in one transaction.
func (s *BookletService) Assign(ctx context.Context, req dto.AssignBookletsRequest) (*dto.AssignBookletsResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "All fields are required")
	}

	booklets := make([]models.Booklet, 0, req.EndRoll-req.StartRoll+1)
	for roll := req.StartRoll; roll <= req.EndRoll; roll++ {
		booklets = append(booklets, models.Booklet{
			BookletID:     bookletID(req.ISAExamNumber, req.Division, roll),
			RollNumber:    roll,
			Division:      req.Division,
			Course:        req.Course,
			Semester:      req.Semester,
			ISAExamNumber: req.ISAExamNumber,
		})
	}
	if len(booklets) == 0 {
		return nil, appErrors.Clone(appErrors.ErrEmptyResult, "No valid booklets to assign")
	}

	tx, err := s.tx.BeginTxx(ctx, nil)
	if err != nil {
		return nil, s.storeError(err, "failed to open transaction")
	}
	if err := s.booklets.Replace(ctx, tx, booklets); err != nil {
		_ = tx.Rollback()
		return nil, s.storeError(err, "Failed to assign booklets")
	}
	if err := tx.Commit(); err != nil {
		return nil, s.storeError(err, "Failed to assign booklets")
	}

	s.logger.Info("booklets assigned",
		zap.String("exam", req.ISAExamNumber),
		zap.String("division", req.Division),
		zap.Int("count", len(booklets)),
	)
	return &dto.AssignBookletsResponse{
		Success: true,
		Message: "Booklets assigned successfully",
		Count:   len(booklets),
	}, nil
}

// List returns booklets matching the filter, ordered by roll number.
func (s *BookletService) List(ctx context.Context, filter dto.BookletFilter) ([]models.Booklet, error) {
	booklets, err := s.booklets.List(ctx, filter)
	if err != nil {
		return nil, s.storeError(err, "failed to list booklets")
	}
	return booklets, nil
}

func (s *BookletService) storeError(err error, message string) error {
	s.logger.Error(message, zap.Error(err))
	return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, message)
}

package service

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"artisticdb/internal/errors"
	"artisticdb/internal/model"
	"artisticdb/internal/repository"
)

// ClassService handles class listings, moderation and seat reservations.
type ClassService interface {
	List(ctx context.Context) ([]model.Class, error)
	ListByInstructor(ctx context.Context, email string) ([]model.Class, error)
	Create(ctx context.Context, instructorEmail string, details model.ClassDetails) (model.InsertResult, error)
	ReserveSeat(ctx context.Context, name string) (model.UpdateResult, error)
	SetFeedback(ctx context.Context, id, feedback string) (model.UpdateResult, error)
	SetStatus(ctx context.Context, id string, status model.ClassStatus) (model.UpdateResult, error)
	Delete(ctx context.Context, id, actorEmail string, actorRole model.Role) (model.DeleteResult, error)
}

type classService struct {
	repo repository.ClassRepository
	log  *zap.Logger
}

// NewClassService creates a new class service.
func NewClassService(repo repository.ClassRepository, log *zap.Logger) ClassService {
	return &classService{repo: repo, log: log}
}

func (s *classService) List(ctx context.Context) ([]model.Class, error) {
	classes, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list classes: %w", err)
	}
	return classes, nil
}

func (s *classService) ListByInstructor(ctx context.Context, email string) ([]model.Class, error) {
	classes, err := s.repo.ListByInstructor(ctx, model.NormalizeEmail(email))
	if err != nil {
		return nil, fmt.Errorf("list classes of %s: %w", email, err)
	}
	return classes, nil
}

// Create lists a new class for instructorEmail. New classes always start
// pending with no enrolled students.
func (s *classService) Create(ctx context.Context, instructorEmail string, details model.ClassDetails) (model.InsertResult, error) {
	details.InstructorEmail = model.NormalizeEmail(instructorEmail)
	details.Status = model.ClassStatusPending
	details.EnrolledStudents = 0
	details.Feedback = ""

	class := &model.Class{ClassDetails: details, CreatedAt: time.Now().UTC()}
	res, err := s.repo.Create(ctx, class)
	if mongo.IsDuplicateKeyError(err) {
		return model.InsertResult{}, errors.ErrClassExists
	}
	if err != nil {
		s.log.Error("create class", zap.String("class", details.Name), zap.Error(err))
		return model.InsertResult{}, fmt.Errorf("create class: %w", err)
	}
	return res, nil
}

// ReserveSeat enrolls one student in the class called name.
func (s *classService) ReserveSeat(ctx context.Context, name string) (model.UpdateResult, error) {
	res, err := s.repo.ReserveSeat(ctx, name)
	if err != nil {
		s.log.Error("reserve seat", zap.String("class", name), zap.Error(err))
		return model.UpdateResult{}, fmt.Errorf("reserve seat: %w", err)
	}
	if res.MatchedCount > 0 {
		return res, nil
	}

	// Nothing matched: either the class does not exist or it is full.
	if _, err := s.repo.FindByName(ctx, name); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.UpdateResult{}, errors.ErrClassNotFound
		}
		return model.UpdateResult{}, fmt.Errorf("find class %q: %w", name, err)
	}
	return model.UpdateResult{}, errors.ErrNoSeatsAvailable
}

func (s *classService) SetFeedback(ctx context.Context, id, feedback string) (model.UpdateResult, error) {
	oid, err := repository.ParseID(id)
	if err != nil {
		return model.UpdateResult{}, err
	}
	res, err := s.repo.UpdateFeedback(ctx, oid, feedback)
	return s.checkMatched(res, err)
}

func (s *classService) SetStatus(ctx context.Context, id string, status model.ClassStatus) (model.UpdateResult, error) {
	oid, err := repository.ParseID(id)
	if err != nil {
		return model.UpdateResult{}, err
	}
	res, err := s.repo.UpdateStatus(ctx, oid, status)
	return s.checkMatched(res, err)
}

// Delete removes a class. Admins may delete any class; instructors only
// their own.
func (s *classService) Delete(ctx context.Context, id, actorEmail string, actorRole model.Role) (model.DeleteResult, error) {
	oid, err := repository.ParseID(id)
	if err != nil {
		return model.DeleteResult{}, err
	}

	class, err := s.repo.FindByID(ctx, oid)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.DeleteResult{}, errors.ErrClassNotFound
		}
		return model.DeleteResult{}, fmt.Errorf("find class %s: %w", id, err)
	}

	switch actorRole {
	case model.RoleAdmin:
	case model.RoleInstructor:
		if class.InstructorEmail != model.NormalizeEmail(actorEmail) {
			return model.DeleteResult{}, errors.ErrForbidden
		}
	default:
		return model.DeleteResult{}, errors.ErrRoleRequired
	}

	res, err := s.repo.Delete(ctx, oid)
	if err != nil {
		s.log.Error("delete class", zap.String("id", id), zap.Error(err))
		return model.DeleteResult{}, fmt.Errorf("delete class: %w", err)
	}
	return res, nil
}

func (s *classService) checkMatched(res model.UpdateResult, err error) (model.UpdateResult, error) {
	if err != nil {
		return model.UpdateResult{}, fmt.Errorf("update class: %w", err)
	}
	if res.MatchedCount == 0 {
		return model.UpdateResult{}, errors.ErrClassNotFound
	}
	return res, nil
}

package workplan

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/chhinhsovath/next-native-sa-tracking/internal/domain/user"
	"github.com/chhinhsovath/next-native-sa-tracking/internal/domain/workplan"
	"github.com/chhinhsovath/next-native-sa-tracking/internal/pkg/validator"
	"github.com/chhinhsovath/next-native-sa-tracking/internal/repository/postgresql"
)

type WorkPlanServiceImpl struct {
	tx postgresql.TxManager
	workplan.WorkPlanRepository
	now func() time.Time
}

func NewWorkPlanService(tx postgresql.TxManager, workPlanRepository workplan.WorkPlanRepository) workplan.WorkPlanService {
	return &WorkPlanServiceImpl{
		tx:                 tx,
		WorkPlanRepository: workPlanRepository,
		now:                time.Now,
	}
}

func (s *WorkPlanServiceImpl) Create(ctx context.Context, userID string, req workplan.CreateWorkPlanRequest) (workplan.WorkPlanResponse, error) {
	if err := req.Validate(); err != nil {
		return workplan.WorkPlanResponse{}, err
	}

	created, err := s.WorkPlanRepository.Create(ctx, workplan.WorkPlan{
		UserID:      userID,
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		DueDate:     req.ParsedDueDate(),
		Status:      workplan.StatusDraft,
	})
	if err != nil {
		return workplan.WorkPlanResponse{}, fmt.Errorf("failed to create work plan: %w", err)
	}
	return workplan.NewWorkPlanResponse(created), nil
}

func (s *WorkPlanServiceImpl) List(ctx context.Context, userID string, query workplan.ListQuery) ([]workplan.WorkPlanResponse, error) {
	query.UserID = ""
	filter, err := query.Filter()
	if err != nil {
		return nil, err
	}
	filter.UserID = &userID
	return s.list(ctx, filter)
}

func (s *WorkPlanServiceImpl) ListAll(ctx context.Context, query workplan.ListQuery) ([]workplan.WorkPlanResponse, error) {
	filter, err := query.Filter()
	if err != nil {
		return nil, err
	}
	return s.list(ctx, filter)
}

func (s *WorkPlanServiceImpl) list(ctx context.Context, filter workplan.ListFilter) ([]workplan.WorkPlanResponse, error) {
	plans, err := s.WorkPlanRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list work plans: %w", err)
	}

	ids := make([]string, 0, len(plans))
	for _, p := range plans {
		ids = append(ids, p.ID)
	}
	comments, err := s.WorkPlanRepository.CommentsFor(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load work plan comments: %w", err)
	}
	for i := range plans {
		plans[i].Comments = comments[plans[i].ID]
	}

	return workplan.NewWorkPlanResponses(plans), nil
}

// Update applies the owner's changes under a row lock.
func (s *WorkPlanServiceImpl) Update(ctx context.Context, userID string, req workplan.UpdateWorkPlanRequest) (workplan.WorkPlanResponse, error) {
	if err := req.Validate(); err != nil {
		return workplan.WorkPlanResponse{}, err
	}

	var result workplan.WorkPlan
	err := s.tx.WithinTx(ctx, func(txCtx context.Context) error {
		plan, err := s.WorkPlanRepository.GetByIDForUpdate(txCtx, req.ID)
		if err != nil {
			return fmt.Errorf("failed to get work plan: %w", err)
		}
		if plan.UserID != userID {
			return workplan.ErrWorkPlanNotFound
		}
		if plan.IsLocked() {
			return workplan.ErrWorkPlanLocked
		}

		if req.Title != nil {
			plan.Title = strings.TrimSpace(*req.Title)
		}
		if req.Description != nil {
			plan.Description = strings.TrimSpace(*req.Description)
		}
		if due := req.ParsedDueDate(); due != nil {
			plan.DueDate = *due
		}
		if req.Progress != nil {
			plan.Progress = *req.Progress
		}
		if req.Achievement != nil {
			plan.Achievement = req.Achievement
		}
		if req.Output != nil {
			plan.Output = req.Output
		}
		if req.Status != nil {
			if err := plan.SetStatus(workplan.Status(strings.ToUpper(*req.Status)), false, s.now()); err != nil {
				return err
			}
		}

		result, err = s.save(txCtx, plan, userID, user.RoleStaff, req.Comments)
		return err
	})
	if err != nil {
		return workplan.WorkPlanResponse{}, err
	}
	return workplan.NewWorkPlanResponse(result), nil
}

// AdminUpdate moves the plan along the state machine and appends a comment.
func (s *WorkPlanServiceImpl) AdminUpdate(ctx context.Context, adminID string, req workplan.AdminUpdateWorkPlanRequest) (workplan.WorkPlanResponse, error) {
	if err := req.Validate(); err != nil {
		return workplan.WorkPlanResponse{}, err
	}

	var result workplan.WorkPlan
	err := s.tx.WithinTx(ctx, func(txCtx context.Context) error {
		plan, err := s.WorkPlanRepository.GetByIDForUpdate(txCtx, req.ID)
		if err != nil {
			return fmt.Errorf("failed to get work plan: %w", err)
		}
		if req.Status != nil {
			if err := plan.SetStatus(workplan.Status(strings.ToUpper(*req.Status)), true, s.now()); err != nil {
				return err
			}
		}

		result, err = s.save(txCtx, plan, adminID, user.RoleAdmin, req.Comments)
		return err
	})
	if err != nil {
		return workplan.WorkPlanResponse{}, err
	}
	return workplan.NewWorkPlanResponse(result), nil
}

// save writes the plan, appends the optional comment and reloads the log.
func (s *WorkPlanServiceImpl) save(ctx context.Context, plan workplan.WorkPlan, authorID string, role user.Role, comment *string) (workplan.WorkPlan, error) {
	updated, err := s.WorkPlanRepository.Update(ctx, plan)
	if err != nil {
		return workplan.WorkPlan{}, fmt.Errorf("failed to update work plan: %w", err)
	}
	updated.Owner = plan.Owner

	if comment != nil && !validator.IsEmpty(*comment) {
		_, err := s.WorkPlanRepository.AddComment(ctx, workplan.Comment{
			WorkPlanID: plan.ID,
			AuthorID:   authorID,
			AuthorRole: role,
			Text:       strings.TrimSpace(*comment),
		})
		if err != nil {
			return workplan.WorkPlan{}, fmt.Errorf("failed to add work plan comment: %w", err)
		}
	}

	comments, err := s.WorkPlanRepository.CommentsFor(ctx, []string{plan.ID})
	if err != nil {
		return workplan.WorkPlan{}, fmt.Errorf("failed to load work plan comments: %w", err)
	}
	updated.Comments = comments[plan.ID]
	return updated, nil
}

func (s *WorkPlanServiceImpl) Delete(ctx context.Context, userID string, id string) error {
	if validator.IsEmpty(id) {
		return validator.Single("id", "id is required")
	}

	return s.tx.WithinTx(ctx, func(txCtx context.Context) error {
		plan, err := s.WorkPlanRepository.GetByIDForUpdate(txCtx, id)
		if err != nil {
			return fmt.Errorf("failed to get work plan: %w", err)
		}
		if plan.UserID != userID {
			return workplan.ErrWorkPlanNotFound
		}
		if !plan.IsDeletable() {
			return workplan.ErrWorkPlanLocked
		}
		if err := s.WorkPlanRepository.Delete(txCtx, id); err != nil {
			return fmt.Errorf("failed to delete work plan: %w", err)
		}
		return nil
	})
}

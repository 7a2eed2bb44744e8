package worker

import (
	"context"

	"github.com/cmlabs-hris/weekly-payroll-go/internal/domain/worker"
)

type WorkerServiceImpl struct {
	workerRepo worker.WorkerRepository
}

func NewWorkerService(workerRepo worker.WorkerRepository) worker.WorkerService {
	return &WorkerServiceImpl{workerRepo: workerRepo}
}

// Create implements worker.WorkerService.
func (s *WorkerServiceImpl) Create(ctx context.Context, req worker.CreateWorkerRequest) (worker.WorkerResponse, error) {
	if err := req.Validate(); err != nil {
		return worker.WorkerResponse{}, err
	}

	status := worker.StatusActive
	if req.Status != nil {
		status = worker.Status(*req.Status)
	}

	created, err := s.workerRepo.Create(ctx, worker.Worker{
		Name:        req.Name,
		Phone:       req.Phone,
		DailySalary: req.DailySalary,
		Status:      status,
	})
	if err != nil {
		return worker.WorkerResponse{}, err
	}

	return worker.ToResponse(created), nil
}

// List implements worker.WorkerService.
func (s *WorkerServiceImpl) List(ctx context.Context, filter worker.WorkerFilter) (worker.ListWorkerResponse, error) {
	if err := filter.Validate(); err != nil {
		return worker.ListWorkerResponse{}, err
	}

	workers, total, err := s.workerRepo.List(ctx, filter)
	if err != nil {
		return worker.ListWorkerResponse{}, err
	}

	data := make([]worker.WorkerResponse, 0, len(workers))
	for _, w := range workers {
		data = append(data, worker.ToResponse(w))
	}

	return worker.ListWorkerResponse{
		Meta: filter.Meta(total),
		Data: data,
	}, nil
}

// Get implements worker.WorkerService.
func (s *WorkerServiceImpl) Get(ctx context.Context, id string) (worker.WorkerResponse, error) {
	w, err := s.workerRepo.GetByID(ctx, id)
	if err != nil {
		return worker.WorkerResponse{}, err
	}
	return worker.ToResponse(w), nil
}

// Update implements worker.WorkerService.
func (s *WorkerServiceImpl) Update(ctx context.Context, req worker.UpdateWorkerRequest) (worker.WorkerResponse, error) {
	if err := req.Validate(); err != nil {
		return worker.WorkerResponse{}, err
	}

	updated, err := s.workerRepo.Update(ctx, req)
	if err != nil {
		return worker.WorkerResponse{}, err
	}
	return worker.ToResponse(updated), nil
}

// SoftDelete implements worker.WorkerService.
func (s *WorkerServiceImpl) SoftDelete(ctx context.Context, id string) (worker.WorkerResponse, error) {
	deleted, err := s.workerRepo.SoftDelete(ctx, id)
	if err != nil {
		return worker.WorkerResponse{}, err
	}
	return worker.ToResponse(deleted), nil
}

// HardDelete implements worker.WorkerService.
func (s *WorkerServiceImpl) HardDelete(ctx context.Context, id string) (worker.WorkerResponse, error) {
	deleted, err := s.workerRepo.Delete(ctx, id)
	if err != nil {
		return worker.WorkerResponse{}, err
	}
	return worker.ToResponse(deleted), nil
}

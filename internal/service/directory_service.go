package service

import (
	"context"
	"strings"
	"time"

	"chambers-practice-be/internal/dto"
	"chambers-practice-be/internal/entity"
	"chambers-practice-be/internal/pkg/logger"
	"chambers-practice-be/internal/pkg/serverutils"
	"chambers-practice-be/internal/repository/specification"
	"chambers-practice-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
)

type IDirectoryService interface {
	List(ctx context.Context, dirType string) (*dto.DirectoryListResponse, error)
	Add(ctx context.Context, dirType, value string) (*dto.OkResponse, error)
	Remove(ctx context.Context, dirType, value string) (*dto.OkResponse, error)

	// EnrichFromNote promotes populated categorizable note fields into
	// the directory lists. Fire-and-forget: failures are logged, never
	// surfaced, and never roll back the note write that triggered them.
	EnrichFromNote(ctx context.Context, note *entity.AttendanceNote)
}

type directoryService struct {
	uowFactory unitofwork.RepositoryFactory
	ownerId    uuid.UUID
	seeds      map[string][]string
	cache      *gocache.Cache
	log        logger.ILogger
}

func NewDirectoryService(uowFactory unitofwork.RepositoryFactory, ownerId uuid.UUID, seeds map[string][]string, log logger.ILogger) IDirectoryService {
	return &directoryService{
		uowFactory: uowFactory,
		ownerId:    ownerId,
		seeds:      seeds,
		cache:      gocache.New(5*time.Minute, 10*time.Minute),
		log:        log,
	}
}

func (s *directoryService) List(ctx context.Context, dirType string) (*dto.DirectoryListResponse, error) {
	if !entity.IsDirectoryType(dirType) {
		return nil, serverutils.NewValidationError("Invalid or missing type")
	}

	if cached, ok := s.cache.Get(cacheKey(dirType)); ok {
		return &dto.DirectoryListResponse{Items: cached.([]string)}, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	items, err := uow.DirectoryRepository().FindAll(ctx,
		specification.OwnedBy{OwnerID: s.ownerId},
		specification.ByDirectoryType{Type: dirType},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, serverutils.NewStoreError("List failed", err)
	}

	// Seed values first, stored values after, duplicates suppressed.
	merged := make([]string, 0, len(items))
	seen := make(map[string]bool)
	for _, v := range s.seeds[dirType] {
		v = strings.TrimSpace(v)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		merged = append(merged, v)
	}
	for _, item := range items {
		v := strings.TrimSpace(item.Value)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		merged = append(merged, v)
	}

	s.cache.Set(cacheKey(dirType), merged, gocache.DefaultExpiration)
	return &dto.DirectoryListResponse{Items: merged}, nil
}

func (s *directoryService) Add(ctx context.Context, dirType, value string) (*dto.OkResponse, error) {
	if !entity.IsDirectoryType(dirType) {
		return nil, serverutils.NewValidationError("Invalid or missing type")
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, serverutils.NewValidationError("value is required")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := s.insertIfAbsent(ctx, uow, dirType, value); err != nil {
		return nil, serverutils.NewStoreError("Insert failed", err)
	}

	s.cache.Delete(cacheKey(dirType))
	return &dto.OkResponse{Ok: true}, nil
}

func (s *directoryService) Remove(ctx context.Context, dirType, value string) (*dto.OkResponse, error) {
	if !entity.IsDirectoryType(dirType) {
		return nil, serverutils.NewValidationError("Invalid or missing type")
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, serverutils.NewValidationError("value is required")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	err := uow.DirectoryRepository().Delete(ctx,
		specification.OwnedBy{OwnerID: s.ownerId},
		specification.ByDirectoryType{Type: dirType},
		specification.ByValue{Value: value},
	)
	if err != nil {
		return nil, serverutils.NewStoreError("Delete failed", err)
	}

	s.cache.Delete(cacheKey(dirType))
	return &dto.OkResponse{Ok: true}, nil
}

func (s *directoryService) EnrichFromNote(ctx context.Context, note *entity.AttendanceNote) {
	fields := map[string]string{
		entity.DirectoryTypeJudges:       note.Coram,
		entity.DirectoryTypeLawyers:      note.LawyerName,
		entity.DirectoryTypeLawFirms:     note.LawFirm,
		entity.DirectoryTypeCourtrooms:   note.CourtName,
		entity.DirectoryTypeContra:       note.Contra,
		entity.DirectoryTypeHearingTypes: note.HearingType,
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	for dirType, value := range fields {
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		if err := s.insertIfAbsent(ctx, uow, dirType, value); err != nil {
			s.log.Warn("directory", "Enrichment insert failed", map[string]interface{}{
				"type":  dirType,
				"value": value,
				"error": err.Error(),
			})
			continue
		}
		s.cache.Delete(cacheKey(dirType))
	}
}

// insertIfAbsent is a defensive check-then-insert: the store carries no
// uniqueness constraint on (owner, type, value). Two concurrent inserts
// of the same new value can both land; directory lists are advisory
// autocomplete data, so a duplicate is cosmetic.
func (s *directoryService) insertIfAbsent(ctx context.Context, uow unitofwork.UnitOfWork, dirType, value string) error {
	existing, err := uow.DirectoryRepository().FindOne(ctx,
		specification.OwnedBy{OwnerID: s.ownerId},
		specification.ByDirectoryType{Type: dirType},
		specification.ByValue{Value: value},
	)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	item := entity.DirectoryItem{
		Id:      uuid.New(),
		OwnerId: s.ownerId,
		Type:    dirType,
		Value:   value,
	}
	return uow.DirectoryRepository().Create(ctx, &item)
}

func cacheKey(dirType string) string {
	return "directory:" + dirType
}

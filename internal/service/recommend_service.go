package service

import (
	"context"
	"time"

	"naeilum-be/internal/apperr"
	"naeilum-be/internal/dto"
	"naeilum-be/internal/entity"
	"naeilum-be/internal/pkg/logger"
	"naeilum-be/internal/repository/memory"
	"naeilum-be/pkg/fortune"
	"naeilum-be/pkg/namegen"
)

type IRecommendService interface {
	Recommend(ctx context.Context, sessionID string, req *dto.RecommendRequest) (*dto.RecommendResponse, error)
	Select(ctx context.Context, sessionID string, index int) (*dto.SelectResponse, error)
	Selected(ctx context.Context, sessionID string) (*dto.SelectionResponse, error)
}

type recommendService struct {
	sessions *memory.SessionRepository
	names    *namegen.Generator
	fortunes *fortune.Generator
	log      logger.ILogger
}

func NewRecommendService(
	sessions *memory.SessionRepository,
	names *namegen.Generator,
	fortunes *fortune.Generator,
	log logger.ILogger,
) IRecommendService {
	return &recommendService{
		sessions: sessions,
		names:    names,
		fortunes: fortunes,
		log:      log,
	}
}

// Recommend normalizes the submitted name, derives the shortlist for today
// and replaces the session's state with it. Any prior selection and fortune
// are discarded so a resubmission never leaks stale state.
func (s *recommendService) Recommend(ctx context.Context, sessionID string, req *dto.RecommendRequest) (*dto.RecommendResponse, error) {
	seed, err := namegen.Normalize(req.Name)
	if err != nil {
		return nil, err
	}

	gender := entity.Gender(req.Gender)
	if !gender.Valid() {
		return nil, apperr.ErrInvalidSeed
	}

	shortlist, err := s.names.Shortlist(seed, gender, time.Now())
	if err != nil {
		s.log.Error("recommend", "shortlist generation failed", map[string]interface{}{
			"gender": string(gender),
			"error":  err.Error(),
		})
		return nil, err
	}

	sess := s.sessions.GetOrCreate(sessionID)
	sess.Lock()
	sess.SeedKey = seed.Key
	sess.SeedDisplay = seed.Display
	sess.Gender = gender
	sess.Shortlist = shortlist
	sess.Selected = nil
	sess.Fortune = nil
	sess.Unlock()
	s.sessions.Save(sess)

	s.log.Info("recommend", "shortlist generated", map[string]interface{}{
		"gender":     string(gender),
		"candidates": len(shortlist),
	})

	names := make([]dto.NameDTO, 0, len(shortlist))
	for _, e := range shortlist {
		names = append(names, toNameDTO(e))
	}
	return &dto.RecommendResponse{Success: true, Names: names}, nil
}

// Select validates the index against the session's own stored shortlist and
// commits the candidate at that position. A failed validation leaves the
// session untouched.
func (s *recommendService) Select(ctx context.Context, sessionID string, index int) (*dto.SelectResponse, error) {
	sess, found := s.sessions.Get(sessionID)
	if !found {
		return nil, apperr.ErrNoSelection
	}

	sess.Lock()
	defer sess.Unlock()

	if len(sess.Shortlist) == 0 {
		return nil, apperr.ErrNoSelection
	}
	if index < 0 || index >= len(sess.Shortlist) {
		return nil, apperr.ErrOutOfRange
	}

	selected := sess.Shortlist[index]
	sess.Selected = &selected
	sess.Fortune = s.fortunes.Daily(selected, time.Now())
	s.sessions.Save(sess)

	s.log.Info("recommend", "name selected", map[string]interface{}{
		"index":    index,
		"category": selected.Category,
	})

	entries := make([]dto.FortuneDTO, 0, len(sess.Fortune))
	for _, f := range sess.Fortune {
		entries = append(entries, dto.FortuneDTO{
			Category:   f.Category,
			CategoryKo: f.CategoryKo,
			Message:    f.Message,
			MessageKo:  f.MessageKo,
		})
	}
	return &dto.SelectResponse{Success: true, Name: toNameDTO(selected), Fortune: entries}, nil
}

func (s *recommendService) Selected(ctx context.Context, sessionID string) (*dto.SelectionResponse, error) {
	sess, found := s.sessions.Get(sessionID)
	if !found {
		return nil, apperr.ErrNoSelection
	}

	sess.Lock()
	defer sess.Unlock()

	if sess.Selected == nil {
		return nil, apperr.ErrNoSelection
	}
	return &dto.SelectionResponse{Success: true, Name: toNameDTO(*sess.Selected)}, nil
}

func toNameDTO(e entity.NameEntry) dto.NameDTO {
	return dto.NameDTO{
		Name:         e.Name,
		Hanja:        e.Hanja,
		Romanization: e.Romanization,
		Meaning:      e.Meaning,
		Category:     e.Category,
	}
}

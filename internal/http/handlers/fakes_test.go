package handlers

import (
	"fmt"
	"net/http"
	"sort"

	"garagehub/pkg/models"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// In-memory stand-ins for the gorm repositories, so handler behavior
// is testable without postgres.

type fakeGarageStore struct {
	garages map[string]*models.Garage
}

func newFakeGarageStore(garages ...*models.Garage) *fakeGarageStore {
	s := &fakeGarageStore{garages: make(map[string]*models.Garage)}
	for _, g := range garages {
		if g.ID == uuid.Nil {
			g.ID = uuid.New()
		}
		s.garages[g.Slug] = g
	}
	return s
}

func (s *fakeGarageStore) GetBySlug(slug string) (*models.Garage, error) {
	g, ok := s.garages[slug]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *g
	return &copied, nil
}

func (s *fakeGarageStore) Update(garage *models.Garage) error {
	if _, ok := s.garages[garage.Slug]; !ok {
		return gorm.ErrRecordNotFound
	}
	copied := *garage
	s.garages[garage.Slug] = &copied
	return nil
}

func (s *fakeGarageStore) ListServices(garageID uuid.UUID) ([]models.GarageService, error) {
	return nil, nil
}

func (s *fakeGarageStore) ListReviews(garageID uuid.UUID) ([]models.Review, error) {
	return nil, nil
}

type fakeScheduleStore struct {
	weeks map[uuid.UUID][]models.OpeningHours
}

func newFakeScheduleStore() *fakeScheduleStore {
	return &fakeScheduleStore{weeks: make(map[uuid.UUID][]models.OpeningHours)}
}

func (s *fakeScheduleStore) ReadSchedule(garageID uuid.UUID) ([]models.OpeningHours, error) {
	stored := s.weeks[garageID]
	out := make([]models.OpeningHours, len(stored))
	copy(out, stored)
	sort.Slice(out, func(i, j int) bool { return out[i].DayOfWeek < out[j].DayOfWeek })
	return out, nil
}

func (s *fakeScheduleStore) ReplaceSchedule(garageID uuid.UUID, week []models.OpeningHours) ([]models.OpeningHours, error) {
	if len(week) != 7 {
		return nil, fmt.Errorf("expected 7 days, got %d", len(week))
	}
	stored := make([]models.OpeningHours, len(week))
	copy(stored, week)
	for i := range stored {
		stored[i].GarageID = garageID
		if stored[i].ID == uuid.Nil {
			stored[i].ID = uuid.New()
		}
	}
	s.weeks[garageID] = stored
	return s.ReadSchedule(garageID)
}

type fakeCallbackStore struct {
	requests []models.CallbackRequest
	failNext bool
}

func (s *fakeCallbackStore) Create(request *models.CallbackRequest) error {
	if s.failNext {
		return fmt.Errorf("storage down")
	}
	if request.ID == uuid.Nil {
		request.ID = uuid.New()
	}
	s.requests = append(s.requests, *request)
	return nil
}

func (s *fakeCallbackStore) ListByGarage(garageID uuid.UUID) ([]models.CallbackRequest, error) {
	var out []models.CallbackRequest
	for _, r := range s.requests {
		if r.GarageID == garageID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *fakeCallbackStore) MarkNotified(id uuid.UUID) error {
	for i := range s.requests {
		if s.requests[i].ID == id {
			s.requests[i].Notified = true
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

type fakeNotifier struct {
	sent []models.CallbackRequest
	err  error
}

func (n *fakeNotifier) SendCallbackRequest(garage *models.Garage, request *models.CallbackRequest) error {
	if n.err != nil {
		return n.err
	}
	n.sent = append(n.sent, *request)
	return nil
}

// testValidator mirrors the production CustomValidator closely enough
// for handler tests: reject empty required callback fields.
type testValidator struct{}

func (testValidator) Validate(i interface{}) error {
	if req, ok := i.(*models.CreateCallbackRequest); ok {
		if req.CustomerName == "" || req.CustomerPhone == "" {
			return echo.NewHTTPError(http.StatusBadRequest, "validation failed")
		}
	}
	return nil
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = testValidator{}
	return e
}

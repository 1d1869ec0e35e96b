package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"tourism-booking/internal/data/catalog"
	"tourism-booking/internal/data/entity"
	"tourism-booking/internal/dto/request"
	"tourism-booking/internal/dto/response"
	"tourism-booking/internal/form"
	"tourism-booking/internal/gateway"
	"tourism-booking/internal/metrics"
	"tourism-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	// One-shot submissions (original wire contract)
	SubmitBikeBooking(ctx context.Context, req *request.BikeBookingRequest) (*response.BookingOutcome, error)
	SubmitCabBooking(ctx context.Context, req *request.CabBookingRequest) (*response.BookingOutcome, error)

	// Reactive recompute of the derived total while the user edits
	Estimate(req *request.BookingEstimateRequest) (*response.EstimateResponse, error)

	// Form sessions, one per open booking dialog
	OpenForm(req *request.OpenFormRequest) (*response.FormState, error)
	UpdateForm(formID string, req *request.UpdateFormRequest) (*response.FormState, error)
	SubmitForm(ctx context.Context, formID string, req *request.SubmitFormRequest) (*response.FormState, error)
	CloseForm(formID string, trigger form.Trigger) error

	// ExpireIdleForms dismisses sessions idle longer than ttl and reports
	// how many were closed.
	ExpireIdleForms(ttl time.Duration) int
}

type formSession struct {
	id       string
	itemType string
	itemName string
	ctrl     *form.Controller
	shell    *form.Shell
	verifier *gateway.PassThroughVerifier
	lastSeen time.Time // guarded by bookingService.mu
}

type bookingService struct {
	store    *catalog.Store
	api      BookingsAPI
	notifier form.Notifier
	cfg      *utils.Config
	log      *zap.Logger

	mu       sync.Mutex
	sessions map[string]*formSession
}

func NewBookingService(store *catalog.Store, api BookingsAPI, notifier form.Notifier, cfg *utils.Config, log *zap.Logger) BookingService {
	s := &bookingService{
		store:    store,
		api:      api,
		notifier: notifier,
		cfg:      cfg,
		log:      log.With(zap.String("service", "booking")),
		sessions: make(map[string]*formSession),
	}

	// Idle dialogs are eventually dismissed through the same close path as
	// every other trigger.
	go s.runJanitor(time.Minute, cfg.Form.SessionTTL)

	return s
}

// ==================== ONE-SHOT SUBMISSIONS ====================

func (s *bookingService) SubmitBikeBooking(ctx context.Context, req *request.BikeBookingRequest) (*response.BookingOutcome, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Bike booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	bike, ok := s.store.Bikes.FindByID(req.BikeID)
	if !ok {
		return nil, fmt.Errorf("bike %s not found", req.BikeID)
	}

	people := req.NumberOfPeople
	if people == 0 {
		people = 1
	}
	if people > bike.Capacity {
		return nil, fmt.Errorf("validation failed: number of people exceeds bike capacity of %d", bike.Capacity)
	}

	draft := form.NewBikeDraft(bike.Name)
	draft.BookingDate = req.BookingDate
	draft.BookingTime = req.BookingTime
	draft.Name = req.Name
	draft.Email = req.Email
	draft.PrimaryPhone = req.PrimaryPhone
	draft.SecondaryPhone = req.SecondaryPhone
	draft.NumberOfPeople = people
	draft.SpecialRequests = req.SpecialRequests

	outcome, err := s.submitOnce(ctx, draft, bike.PricePerDay, req.RecaptchaToken, s.api.SubmitBikeBooking,
		"Bike booking confirmed successfully!", bike.Name)
	metrics.IncBooking("bike", err == nil)
	return outcome, err
}

func (s *bookingService) SubmitCabBooking(ctx context.Context, req *request.CabBookingRequest) (*response.BookingOutcome, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Cab booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	cab, ok := s.store.Cabs.FindByID(req.CabID)
	if !ok {
		return nil, fmt.Errorf("cab %s not found", req.CabID)
	}

	people := req.NumberOfPeople
	if people == 0 {
		people = 1
	}
	if people > cab.Capacity {
		return nil, fmt.Errorf("validation failed: number of people exceeds cab capacity of %d", cab.Capacity)
	}

	draft := form.NewCabDraft(cab.Name)
	if req.TripType != "" {
		draft.TripType = entity.TripType(req.TripType)
	}
	draft.PickUpLocation = req.PickUpLocation
	draft.DropLocation = req.DropLocation
	draft.PickUpDate = req.PickUpDate
	draft.PickUpTime = req.PickUpTime
	draft.ReturnDate = req.ReturnDate
	draft.ReturnTime = req.ReturnTime
	draft.Name = req.Name
	draft.Email = req.Email
	draft.PrimaryPhone = req.PrimaryPhone
	draft.SecondaryPhone = req.SecondaryPhone
	draft.NumberOfPeople = people
	draft.SpecialRequests = req.SpecialRequests

	outcome, err := s.submitOnce(ctx, draft, cab.PricePerDay, req.RecaptchaToken, s.api.SubmitVehicleBooking,
		"Booking confirmed successfully!", cab.Name)
	metrics.IncBooking("cab", err == nil)
	return outcome, err
}

// submitOnce runs one full controller lifecycle for a request that carries
// the whole form in a single call: open, submit, close.
func (s *bookingService) submitOnce(ctx context.Context, draft form.Draft, pricePerUnit float64, token string,
	submit form.SubmitFunc, successMsg, itemName string) (*response.BookingOutcome, error) {

	var shell *form.Shell
	ctrl := form.NewController(form.Config{
		Draft:          draft,
		PricePerUnit:   pricePerUnit,
		Submit:         submit,
		Verifier:       gateway.NewPassThroughVerifier(token),
		Notifier:       s.notifier,
		SuccessMessage: successMsg,
		OnSuccess: func() {
			shell.ScheduleClose(s.cfg.Form.AutoCloseDelay)
		},
		Log: s.log,
	})
	shell = form.OpenShell(ctrl, form.NopScrollLock{}, nil)
	defer shell.Dismiss(form.TriggerAutoClose)

	// The derived total is reset with the draft on success; capture it first.
	total := s.derivedTotal(ctrl)

	if err := ctrl.Submit(ctx); err != nil {
		return nil, err
	}

	outcome := &response.BookingOutcome{
		EnquiryID:   utils.GenerateEnquiryID(),
		ItemName:    itemName,
		Status:      form.StatusPending,
		TotalCost:   fmt.Sprintf("%.2f", total),
		SubmittedAt: time.Now(),
	}

	s.log.Info("Booking forwarded upstream",
		zap.String("enquiry_id", outcome.EnquiryID),
		zap.String("item", itemName),
		zap.String("total_cost", outcome.TotalCost),
	)

	return outcome, nil
}

func (s *bookingService) derivedTotal(ctrl *form.Controller) float64 {
	var total float64
	ctrl.Snapshot(func(d form.Draft) {
		switch draft := d.(type) {
		case *form.BikeDraft:
			total = draft.TotalCost
		case *form.CabDraft:
			total = draft.TotalCost
		}
	})
	return total
}

// ==================== ESTIMATES ====================

func (s *bookingService) Estimate(req *request.BookingEstimateRequest) (*response.EstimateResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	var (
		itemName    string
		pricePerDay float64
	)
	switch req.ItemType {
	case "bike":
		bike, ok := s.store.Bikes.FindByID(req.ItemID)
		if !ok {
			return nil, fmt.Errorf("bike %s not found", req.ItemID)
		}
		itemName, pricePerDay = bike.Name, bike.PricePerDay
	case "cab":
		cab, ok := s.store.Cabs.FindByID(req.ItemID)
		if !ok {
			return nil, fmt.Errorf("cab %s not found", req.ItemID)
		}
		itemName, pricePerDay = cab.Name, cab.PricePerDay
	}

	trip := entity.TripOneWay
	if req.TripType != "" {
		trip = entity.TripType(req.TripType)
	}

	days := 1
	if trip.RequiresReturn() {
		if req.ReturnDate == "" {
			days = 2
		} else if d := form.RentalDays(req.PickUpDate, req.ReturnDate); d > 0 {
			days = d
		}
	}

	return &response.EstimateResponse{
		ItemName:    itemName,
		RentalDays:  days,
		PricePerDay: pricePerDay,
		TotalCost:   form.EstimateTotal(pricePerDay, trip, req.PickUpDate, req.ReturnDate),
	}, nil
}

// ==================== FORM SESSIONS ====================

func (s *bookingService) OpenForm(req *request.OpenFormRequest) (*response.FormState, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	var (
		draft      form.Draft
		price      float64
		submit     form.SubmitFunc
		successMsg string
		itemName   string
	)
	switch req.ItemType {
	case "bike":
		bike, ok := s.store.Bikes.FindByID(req.ItemID)
		if !ok {
			return nil, fmt.Errorf("bike %s not found", req.ItemID)
		}
		draft = form.NewBikeDraft(bike.Name)
		price = bike.PricePerDay
		submit = s.api.SubmitBikeBooking
		successMsg = "Bike booking confirmed successfully!"
		itemName = bike.Name
	case "cab":
		cab, ok := s.store.Cabs.FindByID(req.ItemID)
		if !ok {
			return nil, fmt.Errorf("cab %s not found", req.ItemID)
		}
		draft = form.NewCabDraft(cab.Name)
		price = cab.PricePerDay
		submit = s.api.SubmitVehicleBooking
		successMsg = "Booking confirmed successfully!"
		itemName = cab.Name
	}

	id := uuid.New().String()
	verifier := gateway.NewPassThroughVerifier("")

	var shell *form.Shell
	ctrl := form.NewController(form.Config{
		Draft:          draft,
		PricePerUnit:   price,
		Submit:         submit,
		Verifier:       verifier,
		Notifier:       s.notifier,
		SuccessMessage: successMsg,
		OnSuccess: func() {
			shell.ScheduleClose(s.cfg.Form.AutoCloseDelay)
		},
		Log: s.log,
	})
	shell = form.OpenShell(ctrl, form.NopScrollLock{}, func(trigger form.Trigger) {
		s.removeSession(id, trigger)
	})

	sess := &formSession{
		id:       id,
		itemType: req.ItemType,
		itemName: itemName,
		ctrl:     ctrl,
		shell:    shell,
		verifier: verifier,
		lastSeen: time.Now(),
	}

	s.mu.Lock()
	s.sessions[id] = sess
	open := len(s.sessions)
	s.mu.Unlock()

	metrics.SetOpenForms(open)
	s.log.Info("Booking form opened",
		zap.String("form_id", id),
		zap.String("item_type", req.ItemType),
		zap.String("item", itemName),
	)

	return s.formState(sess), nil
}

func (s *bookingService) UpdateForm(formID string, req *request.UpdateFormRequest) (*response.FormState, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	sess, err := s.getSession(formID)
	if err != nil {
		return nil, err
	}

	if err := sess.ctrl.Apply(func(d form.Draft) { applyEdits(d, req) }); err != nil {
		return nil, err
	}

	return s.formState(sess), nil
}

func (s *bookingService) SubmitForm(ctx context.Context, formID string, req *request.SubmitFormRequest) (*response.FormState, error) {
	sess, err := s.getSession(formID)
	if err != nil {
		return nil, err
	}

	sess.verifier.SetToken(req.RecaptchaToken)

	err = sess.ctrl.Submit(ctx)
	metrics.IncBooking(sess.itemType, err == nil)
	if err != nil {
		return nil, err
	}

	return s.formState(sess), nil
}

func (s *bookingService) CloseForm(formID string, trigger form.Trigger) error {
	sess, err := s.getSession(formID)
	if err != nil {
		return err
	}

	sess.shell.Dismiss(trigger)
	return nil
}

func (s *bookingService) ExpireIdleForms(ttl time.Duration) int {
	cutoff := time.Now().Add(-ttl)

	s.mu.Lock()
	var idle []*formSession
	for _, sess := range s.sessions {
		if sess.lastSeen.Before(cutoff) {
			idle = append(idle, sess)
		}
	}
	s.mu.Unlock()

	// Dismiss outside the lock: the close callback removes the session and
	// takes the lock itself.
	for _, sess := range idle {
		sess.shell.Dismiss(form.TriggerExpired)
	}
	return len(idle)
}

func (s *bookingService) runJanitor(interval, ttl time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		if n := s.ExpireIdleForms(ttl); n > 0 {
			s.log.Info("Expired idle booking forms", zap.Int("count", n))
		}
	}
}

func (s *bookingService) getSession(formID string) (*formSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[formID]
	if !ok {
		return nil, fmt.Errorf("booking form %s not found", formID)
	}
	sess.lastSeen = time.Now()
	return sess, nil
}

func (s *bookingService) removeSession(id string, trigger form.Trigger) {
	s.mu.Lock()
	_, ok := s.sessions[id]
	delete(s.sessions, id)
	open := len(s.sessions)
	s.mu.Unlock()

	if ok {
		metrics.SetOpenForms(open)
		s.log.Info("Booking form closed",
			zap.String("form_id", id),
			zap.String("trigger", string(trigger)),
		)
	}
}

func (s *bookingService) formState(sess *formSession) *response.FormState {
	state := &response.FormState{
		FormID:   sess.id,
		ItemType: sess.itemType,
		State:    string(sess.ctrl.State()),
	}
	sess.ctrl.Snapshot(func(d form.Draft) {
		switch draft := d.(type) {
		case *form.BikeDraft:
			cp := *draft
			state.Draft = cp
		case *form.CabDraft:
			cp := *draft
			state.Draft = cp
		}
	})
	return state
}

// applyEdits copies the non-nil edits onto the draft. Fields that do not
// exist for the draft's item type are ignored.
func applyEdits(d form.Draft, req *request.UpdateFormRequest) {
	setString := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}

	switch draft := d.(type) {
	case *form.BikeDraft:
		setString(&draft.BookingDate, req.BookingDate)
		setString(&draft.BookingTime, req.BookingTime)
		setString(&draft.Name, req.Name)
		setString(&draft.Email, req.Email)
		setString(&draft.PrimaryPhone, req.PrimaryPhone)
		setString(&draft.SecondaryPhone, req.SecondaryPhone)
		setString(&draft.SpecialRequests, req.SpecialRequests)
		if req.NumberOfPeople != nil {
			draft.NumberOfPeople = *req.NumberOfPeople
		}
	case *form.CabDraft:
		if req.TripType != nil {
			draft.TripType = entity.TripType(*req.TripType)
		}
		setString(&draft.PickUpLocation, req.PickUpLocation)
		setString(&draft.DropLocation, req.DropLocation)
		setString(&draft.PickUpDate, req.PickUpDate)
		setString(&draft.PickUpTime, req.PickUpTime)
		setString(&draft.ReturnDate, req.ReturnDate)
		setString(&draft.ReturnTime, req.ReturnTime)
		setString(&draft.Name, req.Name)
		setString(&draft.Email, req.Email)
		setString(&draft.PrimaryPhone, req.PrimaryPhone)
		setString(&draft.SecondaryPhone, req.SecondaryPhone)
		setString(&draft.SpecialRequests, req.SpecialRequests)
		if req.NumberOfPeople != nil {
			draft.NumberOfPeople = *req.NumberOfPeople
		}
	}
}

package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	leadsRepo "jdservices/database/repository/leads"
	"jdservices/handlers"
	"jdservices/models"
	"jdservices/routes"
	"jdservices/services/lookup"
	"jdservices/services/search"
	"jdservices/services/wizard"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type memStore struct {
	sessions map[string]models.WizardSession
}

func newMemStore() *memStore {
	return &memStore{sessions: make(map[string]models.WizardSession)}
}

func (m *memStore) Save(_ context.Context, s *models.WizardSession) error {
	m.sessions[s.SessionID] = *s
	return nil
}

func (m *memStore) Get(_ context.Context, id string) (*models.WizardSession, error) {
	s, ok := m.sessions[id]
	if !ok {
		return nil, wizard.ErrSessionNotFound
	}
	return &s, nil
}

func (m *memStore) Delete(_ context.Context, id string) error {
	delete(m.sessions, id)
	return nil
}

type fakeSink struct {
	subs []models.EstimateSubmission
	err  error
}

func (f *fakeSink) Submit(_ context.Context, sub models.EstimateSubmission) error {
	if f.err != nil {
		return f.err
	}
	f.subs = append(f.subs, sub)
	return nil
}

type fakeArchiver struct {
	leads []models.Lead
	err   error
}

func (f *fakeArchiver) Create(_ context.Context, lead models.Lead) (string, error) {
	if lead.ID == "" {
		lead.ID = fmt.Sprintf("lead-%d", len(f.leads)+1)
	}
	f.leads = append(f.leads, lead)
	return lead.ID, nil
}

func (f *fakeArchiver) GetByID(_ context.Context, id string) (*models.Lead, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.leads {
		if f.leads[i].ID == id {
			return &f.leads[i], nil
		}
	}
	return nil, leadsRepo.ErrLeadNotFound
}

func (f *fakeArchiver) GetByService(_ context.Context, service models.Service) ([]models.Lead, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Lead
	for _, lead := range f.leads {
		if lead.Submission.Service == service {
			out = append(out, lead)
		}
	}
	return out, nil
}

func (f *fakeArchiver) DeleteByID(_ context.Context, id string) error {
	for i := range f.leads {
		if f.leads[i].ID == id {
			f.leads = append(f.leads[:i], f.leads[i+1:]...)
			return nil
		}
	}
	return leadsRepo.ErrLeadNotFound
}

type fakeNotifier struct {
	alerts []models.EstimateSubmission
}

func (f *fakeNotifier) EnqueueLeadAlert(sub models.EstimateSubmission) error {
	f.alerts = append(f.alerts, sub)
	return nil
}

type fakeSender struct {
	leadAlerts []models.EstimateSubmission
	messages   []models.ContactMessage
	err        error
}

func (f *fakeSender) SendLeadAlert(_ context.Context, sub models.EstimateSubmission) error {
	if f.err != nil {
		return f.err
	}
	f.leadAlerts = append(f.leadAlerts, sub)
	return nil
}

func (f *fakeSender) SendContactMessage(_ context.Context, msg models.ContactMessage) error {
	if f.err != nil {
		return f.err
	}
	f.messages = append(f.messages, msg)
	return nil
}

type testEnv struct {
	router   *gin.Engine
	store    *memStore
	sink     *fakeSink
	archiver *fakeArchiver
	notifier *fakeNotifier
	sender   *fakeSender
	searches *int
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	logger := zap.NewNop()

	env := &testEnv{
		store:    newMemStore(),
		sink:     &fakeSink{},
		archiver: &fakeArchiver{},
		notifier: &fakeNotifier{},
		sender:   &fakeSender{},
		searches: new(int),
	}

	searchFn := func(_ context.Context, query, _ string) ([]models.MaterialOption, error) {
		*env.searches++
		return []models.MaterialOption{{ID: "hd-" + query + "-0", Name: query, Source: "HomeDepot", PricePerSqFt: 2.5}}, nil
	}
	registry := search.NewRegistry(searchFn, search.Options{
		Debounce: time.Millisecond,
		Now:      time.Now,
	})

	sessionSvc := &wizard.DefaultSessionService{
		Store:    env.store,
		Lookup:   lookup.AddressParser{},
		Sink:     env.sink,
		Leads:    env.archiver,
		Notifier: env.notifier,
		Logger:   logger,
	}

	wizardHandler := handlers.NewWizardHandler(sessionSvc, registry, logger)
	searchClient := search.NewClient("test-key", time.Second)
	searchHandler := handlers.NewSearchHandler(searchClient, logger)
	lookupHandler := handlers.NewLookupHandler(lookup.AddressParser{}, logger)
	estimateHandler := handlers.NewEstimateHandler(env.sink, env.archiver, env.notifier, logger)
	contactHandler := handlers.NewContactHandler(env.sender, logger)
	leadsHandler := handlers.NewLeadsHandler(env.archiver, logger)

	bundle := &handlers.HandlerBundle{
		CreateSession:   wizardHandler.CreateSession,
		GetSession:      wizardHandler.GetSession,
		AdvanceSession:  wizardHandler.AdvanceSession,
		BackSession:     wizardHandler.BackSession,
		SearchMaterials: wizardHandler.SearchMaterials,
		SearchState:     wizardHandler.SearchState,
		ConfirmSession:  wizardHandler.ConfirmSession,
		CancelSession:   wizardHandler.CancelSession,
		SearchFlooring:  searchHandler.SearchFlooring,
		LookupProperty:  lookupHandler.LookupProperty,
		SubmitEstimate:  estimateHandler.SubmitEstimate,
		SubmitContact:   contactHandler.SubmitContact,
		ListLeads:       leadsHandler.ListLeads,
		GetLead:         leadsHandler.GetLead,
		DeleteLead:      leadsHandler.DeleteLead,
	}

	env.router = gin.New()
	routes.RegisterWizardRoutes(env.router, bundle)
	routes.RegisterDirectRoutes(env.router, bundle)
	routes.RegisterLeadRoutes(env.router, bundle)
	return env
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}

func validContactBody() map[string]interface{} {
	return map[string]interface{}{
		"contact": map[string]interface{}{
			"name":  "Jane Doe",
			"email": "jane@example.com",
			"phone": "5125550147",
		},
	}
}

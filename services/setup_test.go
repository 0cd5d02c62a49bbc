package services

import (
	"context"
	"testing"
	"time"

	"scholarhub/extraction"
	"scholarhub/models"
	"scholarhub/repository"
	"scholarhub/testutil"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var start = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

type fixture struct {
	db        *gorm.DB
	clock     *testutil.Clock
	apps      *repository.ApplicationRepository
	users     *repository.UserRepository
	history   *repository.HistoryRepository
	documents *repository.DocumentRepository
	extractor *fakeExtractor

	scholarships *repository.ScholarshipRepository

	Applications *ApplicationService
	Admin        *AdminService
	Users        *UserService
	Tracked      *TrackedService
	Documents    *DocumentService
	Reconcile    *ReconcileService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testutil.NewDB(t)
	log := testutil.Logger()
	clock := &testutil.Clock{T: start}

	f := &fixture{
		db:        db,
		clock:     clock,
		apps:      repository.NewApplicationRepository(db),
		users:     repository.NewUserRepository(db),
		history:   repository.NewHistoryRepository(db),
		documents: repository.NewDocumentRepository(db),
		extractor: &fakeExtractor{},
	}
	f.scholarships = repository.NewScholarshipRepository(db)
	scholarships := f.scholarships
	tracked := repository.NewTrackedApplicationRepository(db)
	gate := NewRoleGate(f.users)

	f.Applications = NewApplicationService(f.apps, f.users, scholarships, f.history, log, clock.Now)
	f.Admin = NewAdminService(gate, f.apps, scholarships, f.history, log, clock.Now)
	f.Users = NewUserService(f.users, log)
	f.Tracked = NewTrackedService(tracked, scholarships, log, clock.Now)
	f.Documents = NewDocumentService(f.documents, f.users, f.extractor, log, clock.Now)
	f.Reconcile = NewReconcileService(f.users, f.documents, log)
	return f
}

// submitEssay takes a fresh application through draft and submission.
func (f *fixture) submitEssay(t *testing.T, uid, appID string) {
	t.Helper()
	ctx := context.Background()
	_, err := f.Applications.SaveEssayDraft(ctx, uid, appID, "I want to study engineering.")
	require.NoError(t, err)
	_, err = f.Applications.SubmitEssay(ctx, uid, appID)
	require.NoError(t, err)
}

func (f *fixture) start(t *testing.T, uid, scholarshipID string) *models.Application {
	t.Helper()
	res, err := f.Applications.StartApplication(context.Background(), uid, scholarshipID)
	require.NoError(t, err)
	return res.Application
}

type fakeExtractor struct {
	result *extraction.Result
	err    error
	calls  int
}

func (f *fakeExtractor) Extract(_ context.Context, _ extraction.Request) (*extraction.Result, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if f.result == nil {
		return &extraction.Result{Fields: map[string]interface{}{}}, nil
	}
	return f.result, nil
}

// racingStore lets a test write to the row between the read and the compare-and-swap.
type racingStore struct {
	ApplicationStore
	beforeSwap func()
}

func (s *racingStore) CompareAndSwap(ctx context.Context, app *models.Application, expectedVersion int) error {
	if s.beforeSwap != nil {
		s.beforeSwap()
		s.beforeSwap = nil
	}
	return s.ApplicationStore.CompareAndSwap(ctx, app, expectedVersion)
}

func float(v float64) *float64 { return &v }

func text(s string) *string { return &s }

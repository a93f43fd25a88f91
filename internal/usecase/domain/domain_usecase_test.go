package domain

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"leadflow-crm/internal/auth"
	"leadflow-crm/internal/entities"
	"leadflow-crm/internal/repository"
)

type repoMock struct{ mock.Mock }

var _ repository.Repository = (*repoMock)(nil)

func (m *repoMock) OnStart(_ context.Context) error { return nil }
func (m *repoMock) OnStop(_ context.Context) error  { return nil }

func (m *repoMock) CreateUser(ctx context.Context, user entities.User) (*entities.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *repoMock) GetUser(ctx context.Context, id string) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *repoMock) GetUserByUsername(ctx context.Context, username string) (*entities.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *repoMock) CreateLead(ctx context.Context, lead entities.Lead) (*entities.Lead, error) {
	args := m.Called(ctx, lead)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Lead), args.Error(1)
}

func (m *repoMock) ListLeads(ctx context.Context, filter entities.LeadFilter) (*entities.LeadPage, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.LeadPage), args.Error(1)
}

func (m *repoMock) GetLead(ctx context.Context, id string) (*entities.Lead, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Lead), args.Error(1)
}

func (m *repoMock) UpdateLead(ctx context.Context, id string, patch entities.LeadUpdate) (*entities.Lead, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Lead), args.Error(1)
}

func (m *repoMock) DeleteLead(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *repoMock) AddNote(ctx context.Context, leadID string, note entities.Note) (*entities.Note, error) {
	args := m.Called(ctx, leadID, note)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Note), args.Error(1)
}

func (m *repoMock) RemoveNote(ctx context.Context, leadID, noteID string) error {
	args := m.Called(ctx, leadID, noteID)
	return args.Error(0)
}

func (m *repoMock) Analytics(ctx context.Context) (entities.AnalyticsSnapshot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return entities.AnalyticsSnapshot{}, args.Error(1)
	}
	return args.Get(0).(entities.AnalyticsSnapshot), args.Error(1)
}

func newTestUsecase(repo repository.Repository) *Usecase {
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	return New(zap.NewNop().Sugar(), context.Background(), repo, tokens, nil, time.Second, bcrypt.MinCost)
}

const (
	leadID = "7ad0a14e-6f1c-4a3f-9f52-0b1f39f3f9a1"
	noteID = "0f7a4f6e-1c2b-4d3e-8a9b-5c6d7e8f9a0b"
)

func TestUsecase_CreateLeadDefaults(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	repo.On("CreateLead", mock.Anything, mock.MatchedBy(func(l entities.Lead) bool {
		return l.Status == entities.StatusNew &&
			l.Source == entities.SourceWebsite &&
			l.Email == "jane@x.com" &&
			l.ID != ""
	})).Return(&entities.Lead{ID: "1"}, nil)

	_, err := uc.CreateLead(context.Background(), entities.Lead{
		Name:  "Jane Doe",
		Email: "  JANE@X.COM ",
	})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestUsecase_CreateLeadInvalidEnumsFallBack(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	repo.On("CreateLead", mock.Anything, mock.MatchedBy(func(l entities.Lead) bool {
		return l.Status == entities.StatusNew && l.Source == entities.SourceWebsite
	})).Return(&entities.Lead{ID: "1"}, nil)

	_, err := uc.CreateLead(context.Background(), entities.Lead{
		Name:   "Jane Doe",
		Email:  "jane@x.com",
		Source: "Carrier Pigeon",
		Status: "maybe",
	})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestUsecase_CreateLeadValidation(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	_, err := uc.CreateLead(context.Background(), entities.Lead{Name: "   ", Email: "jane@x.com"})
	require.ErrorIs(t, err, entities.ErrInvalidArgument)

	_, err = uc.CreateLead(context.Background(), entities.Lead{Name: "Jane", Email: "  "})
	require.ErrorIs(t, err, entities.ErrInvalidArgument)

	_, err = uc.CreateLead(context.Background(), entities.Lead{
		Name:  strings.Repeat("x", 121),
		Email: "jane@x.com",
	})
	require.ErrorIs(t, err, entities.ErrInvalidArgument)

	repo.AssertNotCalled(t, "CreateLead", mock.Anything, mock.Anything)
}

func TestUsecase_ListLeadsNormalizesFilter(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	repo.On("ListLeads", mock.Anything, entities.LeadFilter{
		Sort:  entities.SortNewest,
		Page:  1,
		Limit: 20,
	}).Return(&entities.LeadPage{}, nil)

	_, err := uc.ListLeads(context.Background(), entities.LeadFilter{Status: "all", Sort: "bogus"})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestUsecase_LeadMalformedID(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	_, err := uc.Lead(context.Background(), "definitely-not-a-uuid")
	require.ErrorIs(t, err, entities.ErrLeadNotFound)
	repo.AssertNotCalled(t, "GetLead", mock.Anything, mock.Anything)
}

func TestUsecase_UpdateLeadValidation(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	empty := "   "
	_, err := uc.UpdateLead(context.Background(), leadID, entities.LeadUpdate{Name: &empty})
	require.ErrorIs(t, err, entities.ErrInvalidArgument)

	badStatus := entities.Status("done")
	_, err = uc.UpdateLead(context.Background(), leadID, entities.LeadUpdate{Status: &badStatus})
	require.ErrorIs(t, err, entities.ErrInvalidArgument)

	repo.AssertNotCalled(t, "UpdateLead", mock.Anything, mock.Anything, mock.Anything)
}

func TestUsecase_UpdateLeadNormalizesEmail(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	repo.On("UpdateLead", mock.Anything, leadID, mock.MatchedBy(func(p entities.LeadUpdate) bool {
		return p.Email != nil && *p.Email == "jane@x.com"
	})).Return(&entities.Lead{ID: leadID}, nil)

	email := " JANE@X.COM "
	_, err := uc.UpdateLead(context.Background(), leadID, entities.LeadUpdate{Email: &email})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestUsecase_AddNoteValidation(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	_, err := uc.AddNote(context.Background(), leadID, "   ")
	require.ErrorIs(t, err, entities.ErrInvalidArgument)

	_, err = uc.AddNote(context.Background(), leadID, strings.Repeat("x", 2001))
	require.ErrorIs(t, err, entities.ErrInvalidArgument)

	repo.AssertNotCalled(t, "AddNote", mock.Anything, mock.Anything, mock.Anything)
}

func TestUsecase_AddNoteTrims(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	repo.On("AddNote", mock.Anything, leadID, mock.MatchedBy(func(n entities.Note) bool {
		return n.Text == "call back Friday" && n.ID != ""
	})).Return(&entities.Note{Text: "call back Friday"}, nil)

	note, err := uc.AddNote(context.Background(), leadID, "  call back Friday  ")
	require.NoError(t, err)
	require.Equal(t, "call back Friday", note.Text)
	repo.AssertExpectations(t)
}

func TestUsecase_RemoveNoteMalformedNoteIDStillChecksLead(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	repo.On("RemoveNote", mock.Anything, leadID, "00000000-0000-0000-0000-000000000000").
		Return(nil)

	err := uc.RemoveNote(context.Background(), leadID, "garbage")
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestUsecase_RemoveNoteMalformedLeadID(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	err := uc.RemoveNote(context.Background(), "nope", noteID)
	require.ErrorIs(t, err, entities.ErrLeadNotFound)
	repo.AssertNotCalled(t, "RemoveNote", mock.Anything, mock.Anything, mock.Anything)
}

func TestUsecase_RegisterDefaultsRoleAndHashes(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	repo.On("CreateUser", mock.Anything, mock.MatchedBy(func(u entities.User) bool {
		return u.Role == entities.RoleAdmin &&
			u.Username == "alice" &&
			u.PasswordHash != "" &&
			u.PasswordHash != "hunter22"
	})).Return(&entities.User{ID: "u1", Username: "alice", Role: entities.RoleAdmin}, nil)

	user, err := uc.Register(context.Background(), entities.Credentials{
		Username: " alice ",
		Password: "hunter22",
	})
	require.NoError(t, err)
	require.Equal(t, entities.RoleAdmin, user.Role)
	repo.AssertExpectations(t)
}

func TestUsecase_RegisterValidation(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	_, err := uc.Register(context.Background(), entities.Credentials{Username: "", Password: "pw"})
	require.ErrorIs(t, err, entities.ErrInvalidArgument)

	_, err = uc.Register(context.Background(), entities.Credentials{Username: "bob", Password: ""})
	require.ErrorIs(t, err, entities.ErrInvalidArgument)

	_, err = uc.Register(context.Background(), entities.Credentials{
		Username: "bob", Password: "pw", Role: "superuser",
	})
	require.ErrorIs(t, err, entities.ErrInvalidArgument)

	repo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
}

func TestUsecase_LoginUnknownUserAndWrongPasswordLookIdentical(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	hash, err := auth.HashPassword("correct", bcrypt.MinCost)
	require.NoError(t, err)

	repo.On("GetUserByUsername", mock.Anything, "ghost").
		Return(nil, entities.ErrUserNotFound)
	repo.On("GetUserByUsername", mock.Anything, "alice").
		Return(&entities.User{ID: "u1", Username: "alice", PasswordHash: hash, Role: entities.RoleAgent}, nil)

	_, _, errUnknown := uc.Login(context.Background(), entities.Credentials{Username: "ghost", Password: "whatever"})
	_, _, errWrongPw := uc.Login(context.Background(), entities.Credentials{Username: "alice", Password: "wrong"})

	require.ErrorIs(t, errUnknown, entities.ErrInvalidCredentials)
	require.ErrorIs(t, errWrongPw, entities.ErrInvalidCredentials)
	require.Equal(t, errUnknown.Error(), errWrongPw.Error())
}

func TestUsecase_LoginIssuesVerifiableToken(t *testing.T) {
	repo := &repoMock{}
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	uc := New(zap.NewNop().Sugar(), context.Background(), repo, tokens, nil, time.Second, bcrypt.MinCost)

	hash, err := auth.HashPassword("correct", bcrypt.MinCost)
	require.NoError(t, err)
	repo.On("GetUserByUsername", mock.Anything, "alice").
		Return(&entities.User{ID: "u1", Username: "alice", PasswordHash: hash, Role: entities.RoleAdmin}, nil)

	token, user, err := uc.Login(context.Background(), entities.Credentials{Username: "alice", Password: "correct"})
	require.NoError(t, err)
	require.Equal(t, "alice", user.Username)

	identity, err := tokens.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "u1", identity.UserID)
	require.Equal(t, entities.RoleAdmin, identity.Role)
}

func TestUsecase_AnalyticsDelegates(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	expected := entities.AnalyticsSnapshot{
		StatusBreakdown: []entities.StatusCount{{Status: entities.StatusNew, Count: 3}},
	}
	repo.On("Analytics", mock.Anything).Return(expected, nil)

	snap, err := uc.Analytics(context.Background())
	require.NoError(t, err)
	require.Equal(t, expected, snap)
	repo.AssertExpectations(t)
}

package grpc

import (
	"context"

	"github.com/dmitrijs2005/aroha/internal/logging"
	"github.com/dmitrijs2005/aroha/internal/server/models"
	"github.com/dmitrijs2005/aroha/internal/server/services"
)

type fakeUser struct {
	refreshResp *services.TokenPair
	refreshErr  error

	regResp *models.User
	regErr  error

	saltResp []byte
	saltErr  error

	loginResp *services.TokenPair
	loginErr  error
}

func (f *fakeUser) RefreshToken(ctx context.Context, refresh string) (*services.TokenPair, error) {
	return f.refreshResp, f.refreshErr
}
func (f *fakeUser) Register(ctx context.Context, username string, salt []byte, verifier []byte) (*models.User, error) {
	return f.regResp, f.regErr
}
func (f *fakeUser) GetSalt(ctx context.Context, username string) ([]byte, error) {
	return f.saltResp, f.saltErr
}
func (f *fakeUser) Login(ctx context.Context, username string, verifierCandidate []byte) (*services.TokenPair, error) {
	return f.loginResp, f.loginErr
}

type fakeRecords struct {
	gotUserID string
	got       *models.Record
	inserted  bool
	list      []models.Record
	err       error
}

func (f *fakeRecords) Insert(ctx context.Context, userID string, rec *models.Record) (bool, error) {
	f.gotUserID, f.got = userID, rec
	return f.inserted, f.err
}
func (f *fakeRecords) List(ctx context.Context, userID string) ([]models.Record, error) {
	f.gotUserID = userID
	return f.list, f.err
}

type fakeDiary struct {
	gotUserID, gotDate string
	saved              *models.DiaryEntry
	entry              *models.DiaryEntry
	list               []models.DiaryEntry
	err                error
}

func (f *fakeDiary) Save(ctx context.Context, userID string, e *models.DiaryEntry) (*models.DiaryEntry, error) {
	f.gotUserID, f.saved = userID, e
	if f.err != nil {
		return nil, f.err
	}
	out := *e
	out.ID = "d1"
	return &out, nil
}
func (f *fakeDiary) List(ctx context.Context, userID string) ([]models.DiaryEntry, error) {
	f.gotUserID = userID
	return f.list, f.err
}
func (f *fakeDiary) Get(ctx context.Context, userID, date string) (*models.DiaryEntry, error) {
	f.gotUserID, f.gotDate = userID, date
	return f.entry, f.err
}
func (f *fakeDiary) Delete(ctx context.Context, userID, date string) error {
	f.gotUserID, f.gotDate = userID, date
	return f.err
}

type fakeExports struct {
	key, url string
	err      error
}

func (f *fakeExports) PresignUpload(ctx context.Context, userID string) (string, string, error) {
	return f.key, f.url, f.err
}

type fakes struct {
	users   *fakeUser
	records *fakeRecords
	diary   *fakeDiary
	exports *fakeExports
}

func newFakes() *fakes {
	return &fakes{users: &fakeUser{}, records: &fakeRecords{}, diary: &fakeDiary{}, exports: &fakeExports{}}
}

func (f *fakes) server(secret string) *GRPCServer {
	return NewGRPCServer("127.0.0.1:0", logging.NewNop(), Services{
		Users:   f.users,
		Records: f.records,
		Diary:   f.diary,
		Exports: f.exports,
	}, secret)
}

func withUser(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

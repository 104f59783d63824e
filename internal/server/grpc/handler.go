package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/aroha/internal/common"
	pb "github.com/dmitrijs2005/aroha/internal/proto"
	"github.com/dmitrijs2005/aroha/internal/server/models"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// toStatus maps service errors onto gRPC codes. Unknown errors are logged and
// hidden behind codes.Internal.
func (s *GRPCServer) toStatus(ctx context.Context, op string, err error) error {
	switch {
	case errors.Is(err, common.ErrRefreshTokenExpired):
		return status.Error(codes.Unauthenticated, common.ErrRefreshTokenExpired.Error())
	case errors.Is(err, common.ErrorUnauthorized), errors.Is(err, common.ErrInvalidToken):
		return status.Error(codes.Unauthenticated, "unauthorized")
	case errors.Is(err, common.ErrInvalidInput):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, "not found")
	case errors.Is(err, common.ErrorAlreadyExists):
		return status.Error(codes.AlreadyExists, "already exists")
	}
	s.logger.Error(ctx, op+" failed", "error", err)
	return status.Error(codes.Internal, "internal error")
}

func (s *GRPCServer) userID(ctx context.Context) (string, error) {
	id, ok := UserIDFromContext(ctx)
	if !ok {
		return "", status.Error(codes.Unauthenticated, "missing token")
	}
	return id, nil
}

func (s *GRPCServer) RegisterUser(ctx context.Context, req *pb.RegisterUserRequest) (*pb.RegisterUserResponse, error) {
	s.logger.Info(ctx, "Registration request")

	result, err := s.users.Register(ctx, req.Username, req.Salt, req.Verifier)
	if err != nil {
		return nil, s.toStatus(ctx, "register", err)
	}

	s.logger.Info(ctx, "Registered", "user_id", result.ID)
	return &pb.RegisterUserResponse{UserId: result.ID}, nil
}

func (s *GRPCServer) GetSalt(ctx context.Context, req *pb.GetSaltRequest) (*pb.GetSaltResponse, error) {
	result, err := s.users.GetSalt(ctx, req.Username)
	if err != nil {
		return nil, s.toStatus(ctx, "get salt", err)
	}
	return &pb.GetSaltResponse{Salt: result}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {
	tokens, err := s.users.Login(ctx, req.Username, req.VerifierCandidate)
	if err != nil {
		return nil, s.toStatus(ctx, "login", err)
	}
	return &pb.LoginResponse{UserId: tokens.UserID, AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken}, nil
}

func (s *GRPCServer) RefreshToken(ctx context.Context, req *pb.RefreshTokenRequest) (*pb.RefreshTokenResponse, error) {
	tokens, err := s.users.RefreshToken(ctx, req.RefreshToken)
	if err != nil {
		return nil, s.toStatus(ctx, "refresh token", err)
	}
	return &pb.RefreshTokenResponse{AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken}, nil
}

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}

func (s *GRPCServer) InsertRecord(ctx context.Context, req *pb.InsertRecordRequest) (*pb.InsertRecordResponse, error) {
	uid, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}
	if req.Record == nil {
		return nil, status.Error(codes.InvalidArgument, "record is missing")
	}

	rec := recordFromPB(req.Record)
	inserted, err := s.records.Insert(ctx, uid, rec)
	if err != nil {
		return nil, s.toStatus(ctx, "insert record", err)
	}
	if !inserted {
		s.logger.Debug(ctx, "duplicate record ignored", "user_id", uid, "created_at", rec.CreatedAt)
	}
	return &pb.InsertRecordResponse{Inserted: inserted}, nil
}

func (s *GRPCServer) ListRecords(ctx context.Context, req *pb.ListRecordsRequest) (*pb.ListRecordsResponse, error) {
	uid, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}
	recs, err := s.records.List(ctx, uid)
	if err != nil {
		return nil, s.toStatus(ctx, "list records", err)
	}

	out := make([]*pb.Record, 0, len(recs))
	for i := range recs {
		out = append(out, recordToPB(&recs[i]))
	}
	return &pb.ListRecordsResponse{Records: out}, nil
}

func (s *GRPCServer) SaveDiaryEntry(ctx context.Context, req *pb.SaveDiaryEntryRequest) (*pb.SaveDiaryEntryResponse, error) {
	uid, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}
	if req.Entry == nil {
		return nil, status.Error(codes.InvalidArgument, "entry is missing")
	}

	saved, err := s.diary.Save(ctx, uid, &models.DiaryEntry{
		EntryDate: req.Entry.EntryDate,
		Title:     req.Entry.Title,
		Content:   req.Entry.Content,
	})
	if err != nil {
		return nil, s.toStatus(ctx, "save diary entry", err)
	}
	return &pb.SaveDiaryEntryResponse{Entry: diaryToPB(saved)}, nil
}

func (s *GRPCServer) ListDiaryEntries(ctx context.Context, req *pb.ListDiaryEntriesRequest) (*pb.ListDiaryEntriesResponse, error) {
	uid, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}
	entries, err := s.diary.List(ctx, uid)
	if err != nil {
		return nil, s.toStatus(ctx, "list diary entries", err)
	}

	out := make([]*pb.DiaryEntry, 0, len(entries))
	for i := range entries {
		out = append(out, diaryToPB(&entries[i]))
	}
	return &pb.ListDiaryEntriesResponse{Entries: out}, nil
}

func (s *GRPCServer) GetDiaryEntry(ctx context.Context, req *pb.GetDiaryEntryRequest) (*pb.GetDiaryEntryResponse, error) {
	uid, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}
	e, err := s.diary.Get(ctx, uid, req.EntryDate)
	if err != nil {
		return nil, s.toStatus(ctx, "get diary entry", err)
	}
	return &pb.GetDiaryEntryResponse{Entry: diaryToPB(e)}, nil
}

func (s *GRPCServer) DeleteDiaryEntry(ctx context.Context, req *pb.DeleteDiaryEntryRequest) (*pb.DeleteDiaryEntryResponse, error) {
	uid, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.diary.Delete(ctx, uid, req.EntryDate); err != nil {
		return nil, s.toStatus(ctx, "delete diary entry", err)
	}
	return &pb.DeleteDiaryEntryResponse{}, nil
}

func (s *GRPCServer) GetExportUploadURL(ctx context.Context, req *pb.GetExportUploadURLRequest) (*pb.GetExportUploadURLResponse, error) {
	uid, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}
	key, url, err := s.exports.PresignUpload(ctx, uid)
	if err != nil {
		return nil, s.toStatus(ctx, "presign export upload", err)
	}
	s.logger.Info(ctx, "Export upload URL issued", "user_id", uid, "key", key)
	return &pb.GetExportUploadURLResponse{Key: key, Url: url}, nil
}

// recordFromPB drops the client's id; the server assigns its own.
func recordFromPB(r *pb.Record) *models.Record {
	answers := make([]int, len(r.Answers))
	for i, a := range r.Answers {
		answers[i] = int(a)
	}
	return &models.Record{
		Answers:   answers,
		Total:     int(r.Total),
		Severity:  r.Severity,
		Locale:    r.Locale,
		CreatedAt: r.CreatedAt,
	}
}

func recordToPB(r *models.Record) *pb.Record {
	answers := make([]int32, len(r.Answers))
	for i, a := range r.Answers {
		answers[i] = int32(a)
	}
	return &pb.Record{
		Id:        r.ID,
		Answers:   answers,
		Total:     int32(r.Total),
		Severity:  r.Severity,
		Locale:    r.Locale,
		CreatedAt: r.CreatedAt,
		SyncedAt:  r.SyncedAt,
	}
}

func diaryToPB(e *models.DiaryEntry) *pb.DiaryEntry {
	return &pb.DiaryEntry{
		Id:        e.ID,
		EntryDate: e.EntryDate,
		Title:     e.Title,
		Content:   e.Content,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

package client

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/aroha/internal/client/models"
	"github.com/dmitrijs2005/aroha/internal/common"
	pb "github.com/dmitrijs2005/aroha/internal/proto"
	"github.com/dmitrijs2005/aroha/internal/scoring"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.ArohaServiceClient

	mu           sync.RWMutex
	accessToken  string
	refreshToken string
}

var _ Client = (*GRPCClient)(nil)

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) tokens() (string, string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken, s.refreshToken
}

func (s *GRPCClient) setTokens(access, refresh string) {
	s.mu.Lock()
	s.accessToken = access
	s.refreshToken = refresh
	s.mu.Unlock()
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {

	access, refresh := s.tokens()
	ctx = withAccessToken(ctx, access)

	err := invoker(ctx, method, req, reply, cc, opts...)

	if err != nil {

		st, ok := status.FromError(err)
		if !ok {
			return err
		}

		if st.Code() != codes.Unauthenticated {
			return err
		}
		if st.Message() != common.ErrTokenExpired.Error() {
			return err
		}

		if refresh == "" {
			return err
		}

		refreshTokenResponse, err := s.client.RefreshToken(ctx, &pb.RefreshTokenRequest{RefreshToken: refresh})
		if err != nil {
			return err
		}

		s.setTokens(refreshTokenResponse.AccessToken, refreshTokenResponse.RefreshToken)

		ctx = withAccessToken(ctx, refreshTokenResponse.AccessToken)
		return invoker(ctx, method, req, reply, cc, opts...)

	}

	return err
}

// NewArohaClient dials endpointURL lazily; no connection is attempted until
// the first call.
func NewArohaClient(endpointURL string) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	err := c.InitGRPCClient()
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient() error {

	conn, err := grpc.NewClient(s.endpointURL, grpc.WithTransportCredentials(insecure.NewCredentials()), grpc.WithUnaryInterceptor(s.accessTokenInterceptor))
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewArohaServiceClient(conn)
	return nil
}

func (s *GRPCClient) Register(ctx context.Context, userName string, salt []byte, key []byte) error {

	req := &pb.RegisterUserRequest{Username: userName, Salt: salt, Verifier: key}

	_, err := s.client.RegisterUser(ctx, req)

	if err != nil {
		return s.mapError(err)
	}

	return nil

}

func (s *GRPCClient) GetSalt(ctx context.Context, userName string) ([]byte, error) {

	ctx, cancel := context.WithTimeout(ctx, 12*time.Second)
	defer cancel()

	req := &pb.GetSaltRequest{Username: userName}

	resp, err := s.client.GetSalt(ctx, req)

	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Salt, nil
}

func (s *GRPCClient) Login(ctx context.Context, userName string, key []byte) (string, error) {

	req := &pb.LoginRequest{Username: userName, VerifierCandidate: key}

	resp, err := s.client.Login(ctx, req)

	if err != nil {
		return "", s.mapError(err)
	}

	s.setTokens(resp.AccessToken, resp.RefreshToken)

	return resp.UserId, nil

}

func (s *GRPCClient) Logout() {
	s.setTokens("", "")
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

func (s *GRPCClient) Ping(ctx context.Context) error {

	req := &pb.PingRequest{}

	resp, err := s.client.Ping(ctx, req)
	if err != nil {
		return s.mapError(err)
	}

	if resp.Status != "OK" {
		return ErrUnavailable
	}

	return nil

}

func (s *GRPCClient) InsertRecord(ctx context.Context, r models.Record) (bool, error) {
	resp, err := s.client.InsertRecord(ctx, &pb.InsertRecordRequest{Record: recordToPB(r)})
	if err != nil {
		return false, s.mapError(err)
	}
	return resp.Inserted, nil
}

func (s *GRPCClient) ListRecords(ctx context.Context) ([]models.Record, error) {
	resp, err := s.client.ListRecords(ctx, &pb.ListRecordsRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}

	res := make([]models.Record, 0, len(resp.Records))
	for _, r := range resp.Records {
		if r == nil {
			continue
		}
		res = append(res, recordFromPB(r))
	}
	return res, nil
}

func (s *GRPCClient) SaveDiaryEntry(ctx context.Context, e models.DiaryEntry) (*models.DiaryEntry, error) {
	resp, err := s.client.SaveDiaryEntry(ctx, &pb.SaveDiaryEntryRequest{Entry: diaryToPB(e)})
	if err != nil {
		return nil, s.mapError(err)
	}
	if resp.Entry == nil {
		return nil, fmt.Errorf("rpc error: empty diary entry in response")
	}
	saved := diaryFromPB(resp.Entry)
	return &saved, nil
}

func (s *GRPCClient) ListDiaryEntries(ctx context.Context) ([]models.DiaryEntry, error) {
	resp, err := s.client.ListDiaryEntries(ctx, &pb.ListDiaryEntriesRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}

	res := make([]models.DiaryEntry, 0, len(resp.Entries))
	for _, e := range resp.Entries {
		if e == nil {
			continue
		}
		res = append(res, diaryFromPB(e))
	}
	return res, nil
}

func (s *GRPCClient) GetDiaryEntry(ctx context.Context, date string) (*models.DiaryEntry, error) {
	resp, err := s.client.GetDiaryEntry(ctx, &pb.GetDiaryEntryRequest{EntryDate: date})
	if err != nil {
		return nil, s.mapError(err)
	}
	if resp.Entry == nil {
		return nil, ErrNotFound
	}
	e := diaryFromPB(resp.Entry)
	return &e, nil
}

func (s *GRPCClient) DeleteDiaryEntry(ctx context.Context, date string) error {
	_, err := s.client.DeleteDiaryEntry(ctx, &pb.DeleteDiaryEntryRequest{EntryDate: date})
	if err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) GetExportUploadURL(ctx context.Context) (string, string, error) {
	resp, err := s.client.GetExportUploadURL(ctx, &pb.GetExportUploadURLRequest{})
	if err != nil {
		return "", "", s.mapError(err)
	}
	return resp.Key, resp.Url, nil
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return ErrUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	case codes.NotFound:
		return ErrNotFound
	case codes.AlreadyExists:
		return ErrAlreadyExists
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", common.ErrInvalidInput, st.Message())
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}

func recordToPB(r models.Record) *pb.Record {
	answers := make([]int32, len(r.Answers))
	for i, a := range r.Answers {
		answers[i] = int32(a)
	}
	return &pb.Record{
		Id:        r.ID,
		Answers:   answers,
		Total:     int32(r.Total),
		Severity:  string(r.Severity),
		Locale:    string(r.Locale),
		CreatedAt: r.CreatedAt.UTC(),
	}
}

func recordFromPB(r *pb.Record) models.Record {
	answers := make([]int, len(r.Answers))
	for i, a := range r.Answers {
		answers[i] = int(a)
	}
	return models.Record{
		ID:        r.Id,
		Answers:   answers,
		Total:     int(r.Total),
		Severity:  scoring.Severity(r.Severity),
		Locale:    models.Language(r.Locale),
		CreatedAt: models.NormalizeTime(r.CreatedAt),
	}
}

func diaryToPB(e models.DiaryEntry) *pb.DiaryEntry {
	return &pb.DiaryEntry{
		Id:        e.ID,
		EntryDate: e.EntryDate,
		Title:     e.Title,
		Content:   e.Content,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func diaryFromPB(e *pb.DiaryEntry) models.DiaryEntry {
	return models.DiaryEntry{
		ID:        e.Id,
		EntryDate: e.EntryDate,
		Title:     e.Title,
		Content:   e.Content,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

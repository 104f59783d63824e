// Package grpc exposes the Aroha backend over gRPC.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/aroha/internal/logging"
	pb "github.com/dmitrijs2005/aroha/internal/proto"
	"github.com/dmitrijs2005/aroha/internal/server/models"
	"github.com/dmitrijs2005/aroha/internal/server/services"
	"google.golang.org/grpc"
)

type userSvc interface {
	RefreshToken(ctx context.Context, refreshToken string) (*services.TokenPair, error)
	Register(ctx context.Context, username string, salt, verifier []byte) (*models.User, error)
	GetSalt(ctx context.Context, userName string) ([]byte, error)
	Login(ctx context.Context, userName string, verifierCandidate []byte) (*services.TokenPair, error)
}

type recordSvc interface {
	Insert(ctx context.Context, userID string, rec *models.Record) (bool, error)
	List(ctx context.Context, userID string) ([]models.Record, error)
}

type diarySvc interface {
	Save(ctx context.Context, userID string, e *models.DiaryEntry) (*models.DiaryEntry, error)
	List(ctx context.Context, userID string) ([]models.DiaryEntry, error)
	Get(ctx context.Context, userID, date string) (*models.DiaryEntry, error)
	Delete(ctx context.Context, userID, date string) error
}

type exportSvc interface {
	PresignUpload(ctx context.Context, userID string) (string, string, error)
}

// Services groups the business logic the server dispatches to.
type Services struct {
	Users   userSvc
	Records recordSvc
	Diary   diarySvc
	Exports exportSvc
}

type GRPCServer struct {
	address   string
	users     userSvc
	records   recordSvc
	diary     diarySvc
	exports   exportSvc
	logger    logging.Logger
	jwtSecret []byte
}

var _ pb.ArohaServiceServer = (*GRPCServer)(nil)

func NewGRPCServer(a string, l logging.Logger, svc Services, secretKey string) *GRPCServer {
	return &GRPCServer{
		address:   a,
		logger:    l.With("module", "grpc_server"),
		users:     svc.Users,
		records:   svc.Records,
		diary:     svc.Diary,
		exports:   svc.Exports,
		jwtSecret: []byte(secretKey),
	}
}

// Run serves until ctx is cancelled, then stops gracefully.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve is Run on an existing listener.
func (s *GRPCServer) Serve(ctx context.Context, listen net.Listener) error {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.accessTokenInterceptor))
	pb.RegisterArohaServiceServer(srv, s)

	serveDone := make(chan struct{})
	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		select {
		case <-ctx.Done():
			s.logger.Info(ctx, "Stopping gRPC server...")
			srv.GracefulStop()
		case <-serveDone:
		}
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", listen.Addr().String())

	err := srv.Serve(listen)
	close(serveDone)
	<-stopped
	return err
}

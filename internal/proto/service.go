package proto

import (
	"context"

	"google.golang.org/grpc"
)

const ServiceName = "aroha.v1.ArohaService"

const (
	ArohaService_RegisterUser_FullMethodName       = "/" + ServiceName + "/RegisterUser"
	ArohaService_GetSalt_FullMethodName            = "/" + ServiceName + "/GetSalt"
	ArohaService_Login_FullMethodName              = "/" + ServiceName + "/Login"
	ArohaService_RefreshToken_FullMethodName       = "/" + ServiceName + "/RefreshToken"
	ArohaService_Ping_FullMethodName               = "/" + ServiceName + "/Ping"
	ArohaService_InsertRecord_FullMethodName       = "/" + ServiceName + "/InsertRecord"
	ArohaService_ListRecords_FullMethodName        = "/" + ServiceName + "/ListRecords"
	ArohaService_SaveDiaryEntry_FullMethodName     = "/" + ServiceName + "/SaveDiaryEntry"
	ArohaService_ListDiaryEntries_FullMethodName   = "/" + ServiceName + "/ListDiaryEntries"
	ArohaService_GetDiaryEntry_FullMethodName      = "/" + ServiceName + "/GetDiaryEntry"
	ArohaService_DeleteDiaryEntry_FullMethodName   = "/" + ServiceName + "/DeleteDiaryEntry"
	ArohaService_GetExportUploadURL_FullMethodName = "/" + ServiceName + "/GetExportUploadURL"
)

// ArohaServiceClient is the client API of the Aroha backend.
type ArohaServiceClient interface {
	RegisterUser(ctx context.Context, in *RegisterUserRequest, opts ...grpc.CallOption) (*RegisterUserResponse, error)
	GetSalt(ctx context.Context, in *GetSaltRequest, opts ...grpc.CallOption) (*GetSaltResponse, error)
	Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error)
	RefreshToken(ctx context.Context, in *RefreshTokenRequest, opts ...grpc.CallOption) (*RefreshTokenResponse, error)
	Ping(ctx context.Context, in *PingRequest, opts ...grpc.CallOption) (*PingResponse, error)
	InsertRecord(ctx context.Context, in *InsertRecordRequest, opts ...grpc.CallOption) (*InsertRecordResponse, error)
	ListRecords(ctx context.Context, in *ListRecordsRequest, opts ...grpc.CallOption) (*ListRecordsResponse, error)
	SaveDiaryEntry(ctx context.Context, in *SaveDiaryEntryRequest, opts ...grpc.CallOption) (*SaveDiaryEntryResponse, error)
	ListDiaryEntries(ctx context.Context, in *ListDiaryEntriesRequest, opts ...grpc.CallOption) (*ListDiaryEntriesResponse, error)
	GetDiaryEntry(ctx context.Context, in *GetDiaryEntryRequest, opts ...grpc.CallOption) (*GetDiaryEntryResponse, error)
	DeleteDiaryEntry(ctx context.Context, in *DeleteDiaryEntryRequest, opts ...grpc.CallOption) (*DeleteDiaryEntryResponse, error)
	GetExportUploadURL(ctx context.Context, in *GetExportUploadURLRequest, opts ...grpc.CallOption) (*GetExportUploadURLResponse, error)
}

type arohaServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewArohaServiceClient(cc grpc.ClientConnInterface) ArohaServiceClient {
	return &arohaServiceClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *arohaServiceClient) RegisterUser(ctx context.Context, in *RegisterUserRequest, opts ...grpc.CallOption) (*RegisterUserResponse, error) {
	return invoke[RegisterUserResponse](ctx, c.cc, ArohaService_RegisterUser_FullMethodName, in, opts)
}

func (c *arohaServiceClient) GetSalt(ctx context.Context, in *GetSaltRequest, opts ...grpc.CallOption) (*GetSaltResponse, error) {
	return invoke[GetSaltResponse](ctx, c.cc, ArohaService_GetSalt_FullMethodName, in, opts)
}

func (c *arohaServiceClient) Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error) {
	return invoke[LoginResponse](ctx, c.cc, ArohaService_Login_FullMethodName, in, opts)
}

func (c *arohaServiceClient) RefreshToken(ctx context.Context, in *RefreshTokenRequest, opts ...grpc.CallOption) (*RefreshTokenResponse, error) {
	return invoke[RefreshTokenResponse](ctx, c.cc, ArohaService_RefreshToken_FullMethodName, in, opts)
}

func (c *arohaServiceClient) Ping(ctx context.Context, in *PingRequest, opts ...grpc.CallOption) (*PingResponse, error) {
	return invoke[PingResponse](ctx, c.cc, ArohaService_Ping_FullMethodName, in, opts)
}

func (c *arohaServiceClient) InsertRecord(ctx context.Context, in *InsertRecordRequest, opts ...grpc.CallOption) (*InsertRecordResponse, error) {
	return invoke[InsertRecordResponse](ctx, c.cc, ArohaService_InsertRecord_FullMethodName, in, opts)
}

func (c *arohaServiceClient) ListRecords(ctx context.Context, in *ListRecordsRequest, opts ...grpc.CallOption) (*ListRecordsResponse, error) {
	return invoke[ListRecordsResponse](ctx, c.cc, ArohaService_ListRecords_FullMethodName, in, opts)
}

func (c *arohaServiceClient) SaveDiaryEntry(ctx context.Context, in *SaveDiaryEntryRequest, opts ...grpc.CallOption) (*SaveDiaryEntryResponse, error) {
	return invoke[SaveDiaryEntryResponse](ctx, c.cc, ArohaService_SaveDiaryEntry_FullMethodName, in, opts)
}

func (c *arohaServiceClient) ListDiaryEntries(ctx context.Context, in *ListDiaryEntriesRequest, opts ...grpc.CallOption) (*ListDiaryEntriesResponse, error) {
	return invoke[ListDiaryEntriesResponse](ctx, c.cc, ArohaService_ListDiaryEntries_FullMethodName, in, opts)
}

func (c *arohaServiceClient) GetDiaryEntry(ctx context.Context, in *GetDiaryEntryRequest, opts ...grpc.CallOption) (*GetDiaryEntryResponse, error) {
	return invoke[GetDiaryEntryResponse](ctx, c.cc, ArohaService_GetDiaryEntry_FullMethodName, in, opts)
}

func (c *arohaServiceClient) DeleteDiaryEntry(ctx context.Context, in *DeleteDiaryEntryRequest, opts ...grpc.CallOption) (*DeleteDiaryEntryResponse, error) {
	return invoke[DeleteDiaryEntryResponse](ctx, c.cc, ArohaService_DeleteDiaryEntry_FullMethodName, in, opts)
}

func (c *arohaServiceClient) GetExportUploadURL(ctx context.Context, in *GetExportUploadURLRequest, opts ...grpc.CallOption) (*GetExportUploadURLResponse, error) {
	return invoke[GetExportUploadURLResponse](ctx, c.cc, ArohaService_GetExportUploadURL_FullMethodName, in, opts)
}

// ArohaServiceServer is implemented by the backend.
type ArohaServiceServer interface {
	RegisterUser(context.Context, *RegisterUserRequest) (*RegisterUserResponse, error)
	GetSalt(context.Context, *GetSaltRequest) (*GetSaltResponse, error)
	Login(context.Context, *LoginRequest) (*LoginResponse, error)
	RefreshToken(context.Context, *RefreshTokenRequest) (*RefreshTokenResponse, error)
	Ping(context.Context, *PingRequest) (*PingResponse, error)
	InsertRecord(context.Context, *InsertRecordRequest) (*InsertRecordResponse, error)
	ListRecords(context.Context, *ListRecordsRequest) (*ListRecordsResponse, error)
	SaveDiaryEntry(context.Context, *SaveDiaryEntryRequest) (*SaveDiaryEntryResponse, error)
	ListDiaryEntries(context.Context, *ListDiaryEntriesRequest) (*ListDiaryEntriesResponse, error)
	GetDiaryEntry(context.Context, *GetDiaryEntryRequest) (*GetDiaryEntryResponse, error)
	DeleteDiaryEntry(context.Context, *DeleteDiaryEntryRequest) (*DeleteDiaryEntryResponse, error)
	GetExportUploadURL(context.Context, *GetExportUploadURLRequest) (*GetExportUploadURLResponse, error)
}

func RegisterArohaServiceServer(s grpc.ServiceRegistrar, srv ArohaServiceServer) {
	s.RegisterService(&ArohaService_ServiceDesc, srv)
}

func unary[Req, Resp any](name string, call func(ArohaServiceServer, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	fullMethod := "/" + ServiceName + "/" + name

	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(ArohaServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(ArohaServiceServer), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

var ArohaService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ArohaServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary("RegisterUser", ArohaServiceServer.RegisterUser),
		unary("GetSalt", ArohaServiceServer.GetSalt),
		unary("Login", ArohaServiceServer.Login),
		unary("RefreshToken", ArohaServiceServer.RefreshToken),
		unary("Ping", ArohaServiceServer.Ping),
		unary("InsertRecord", ArohaServiceServer.InsertRecord),
		unary("ListRecords", ArohaServiceServer.ListRecords),
		unary("SaveDiaryEntry", ArohaServiceServer.SaveDiaryEntry),
		unary("ListDiaryEntries", ArohaServiceServer.ListDiaryEntries),
		unary("GetDiaryEntry", ArohaServiceServer.GetDiaryEntry),
		unary("DeleteDiaryEntry", ArohaServiceServer.DeleteDiaryEntry),
		unary("GetExportUploadURL", ArohaServiceServer.GetExportUploadURL),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "aroha/v1/service",
}

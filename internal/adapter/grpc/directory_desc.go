package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

// DirectoryServiceName is the fully qualified gRPC service name.
const DirectoryServiceName = "employee.v1.Directory"

// DirectoryService is the server API for the employee.v1.Directory service.
type DirectoryService interface {
	ListEmployees(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	CreateEmployee(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetEmployee(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UpdateEmployee(context.Context, *structpb.Struct) (*structpb.Struct, error)
	DeleteEmployee(context.Context, *structpb.Struct) (*emptypb.Empty, error)
	ListEmployeesByGender(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListEmployeesPage(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListCompanies(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	CreateCompany(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetCompany(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetCompanyEmployees(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UpdateCompany(context.Context, *structpb.Struct) (*structpb.Struct, error)
	DeleteCompany(context.Context, *structpb.Struct) (*emptypb.Empty, error)
	ListCompaniesPage(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

var _ DirectoryService = (*DirectoryServer)(nil)

// FullMethod returns the full RPC path of a Directory method.
func FullMethod(method string) string {
	return "/" + DirectoryServiceName + "/" + method
}

// unary builds a method handler decoding requests into a fresh Req and
// converting usecase errors into status errors.
func unary[Req any, Resp proto.Message](
	method string,
	call func(DirectoryService, context.Context, *Req) (Resp, error),
) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			handler := func(ctx context.Context, req any) (any, error) {
				resp, err := call(srv.(DirectoryService), ctx, req.(*Req))
				if err != nil {
					return nil, toStatus(err)
				}
				return resp, nil
			}
			if interceptor == nil {
				return handler(ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: FullMethod(method)}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// DirectoryServiceDesc describes the employee.v1.Directory service.
var DirectoryServiceDesc = grpc.ServiceDesc{
	ServiceName: DirectoryServiceName,
	HandlerType: (*DirectoryService)(nil),
	Methods: []grpc.MethodDesc{
		unary("ListEmployees", DirectoryService.ListEmployees),
		unary("CreateEmployee", DirectoryService.CreateEmployee),
		unary("GetEmployee", DirectoryService.GetEmployee),
		unary("UpdateEmployee", DirectoryService.UpdateEmployee),
		unary("DeleteEmployee", DirectoryService.DeleteEmployee),
		unary("ListEmployeesByGender", DirectoryService.ListEmployeesByGender),
		unary("ListEmployeesPage", DirectoryService.ListEmployeesPage),
		unary("ListCompanies", DirectoryService.ListCompanies),
		unary("CreateCompany", DirectoryService.CreateCompany),
		unary("GetCompany", DirectoryService.GetCompany),
		unary("GetCompanyEmployees", DirectoryService.GetCompanyEmployees),
		unary("UpdateCompany", DirectoryService.UpdateCompany),
		unary("DeleteCompany", DirectoryService.DeleteCompany),
		unary("ListCompaniesPage", DirectoryService.ListCompaniesPage),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "employee/v1/directory.proto",
}

// RegisterDirectoryServer registers srv on s.
func RegisterDirectoryServer(s grpc.ServiceRegistrar, srv DirectoryService) {
	s.RegisterService(&DirectoryServiceDesc, srv)
}

package grpc

// proto.go defines the gRPC server interface derived from
// dealdesk/financing/v1/financing.proto. This file serves as a stand-in for
// buf-generated code. Once `buf generate` is run, replace this file with the
// import from github.com/dealdesk/financing-service/api/gen/go/financing/v1.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dealdesk/financing-service/internal/application/dto"
)

// ---------------------------------------------------------------------------
// Wire messages
// ---------------------------------------------------------------------------

// Money amounts travel as strings so the wire format never loses decimal
// precision; handlers parse them into decimal.Decimal at the boundary.

// ComputeQuoteRequest asks for a payment and amortization schedule.
type ComputeQuoteRequest struct {
	TenantID        string `json:"tenant_id"`
	Principal       string `json:"principal"`
	DownPayment     string `json:"down_payment"`
	ResidualPercent string `json:"residual_percent"`
	AnnualRateBps   int    `json:"annual_rate_bps"`
	TermMonths      int    `json:"term_months"`
	Instrument      string `json:"instrument"`
}

// ComputeQuoteResponse carries the computed quote.
type ComputeQuoteResponse struct {
	Quote dto.QuoteResponse `json:"quote"`
}

// CompareLendersRequest asks for an ordered comparison across the tenant's
// lender catalogue.
type CompareLendersRequest struct {
	TenantID        string `json:"tenant_id"`
	Principal       string `json:"principal"`
	DownPayment     string `json:"down_payment"`
	ResidualPercent string `json:"residual_percent"`
	TermMonths      int    `json:"term_months"`
	CreditScore     int    `json:"credit_score"`
}

// CompareLendersResponse carries the ordered quotes.
type CompareLendersResponse struct {
	Comparison dto.CompareLendersResponse `json:"comparison"`
}

// FinancialProfile is the borrower's financial picture on the wire.
type FinancialProfile struct {
	MaxDownPayment         string `json:"max_down_payment"`
	MonthlyBudget          string `json:"monthly_budget"`
	CashOnHand             string `json:"cash_on_hand"`
	AnnualRevenue          string `json:"annual_revenue"`
	CollateralValue        string `json:"collateral_value"`
	PreferredTermMonths    int    `json:"preferred_term_months"`
	CreditScore            int    `json:"credit_score"`
	OperatingHistoryMonths int    `json:"operating_history_months"`
}

// MatchingParameter is one weighted borrower preference on the wire.
type MatchingParameter struct {
	Kind   string `json:"kind"`
	Value  string `json:"value"`
	Weight int    `json:"weight"`
}

// SynthesizeStructuresRequest asks for a ranked set of candidate structures.
type SynthesizeStructuresRequest struct {
	TenantID        string              `json:"tenant_id"`
	Principal       string              `json:"principal"`
	ResidualPercent string              `json:"residual_percent"`
	AnnualRateBps   int                 `json:"annual_rate_bps"`
	Instrument      string              `json:"instrument"`
	Profile         FinancialProfile    `json:"profile"`
	Matching        []MatchingParameter `json:"matching"`
	UseCatalogue    bool                `json:"use_catalogue"`
}

// SynthesizeStructuresResponse carries the ranked candidates.
type SynthesizeStructuresResponse struct {
	Result dto.SynthesizeStructuresResponse `json:"result"`
}

// UpsertRateProfileRequest creates or replaces a lender rate policy.
type UpsertRateProfileRequest struct {
	TenantID               string         `json:"tenant_id"`
	ProfileID              string         `json:"profile_id"`
	Name                   string         `json:"name"`
	BaseRateBps            int            `json:"base_rate_bps"`
	TermAdjustments        map[int]int    `json:"term_adjustments"`
	CreditTierAdjustments  map[string]int `json:"credit_tier_adjustments"`
	DownPaymentAdjustments map[int]int    `json:"down_payment_adjustments"`
}

// UpsertRateProfileResponse carries the stored profile.
type UpsertRateProfileResponse struct {
	Profile dto.RateProfileResponse `json:"profile"`
}

// GetRateProfileRequest identifies a rate profile to retrieve.
type GetRateProfileRequest struct {
	TenantID  string `json:"tenant_id"`
	ProfileID string `json:"profile_id"`
}

// GetRateProfileResponse carries the requested profile.
type GetRateProfileResponse struct {
	Profile dto.RateProfileResponse `json:"profile"`
}

// ListRateProfilesRequest identifies a tenant's catalogue.
type ListRateProfilesRequest struct {
	TenantID string `json:"tenant_id"`
}

// ListRateProfilesResponse carries the full catalogue.
type ListRateProfilesResponse struct {
	Catalogue dto.ListRateProfilesResponse `json:"catalogue"`
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

// FinancingServiceServer is the server API for FinancingService.
// It mirrors the proto-generated interface from dealdesk.financing.v1.FinancingService.
type FinancingServiceServer interface {
	ComputeQuote(context.Context, *ComputeQuoteRequest) (*ComputeQuoteResponse, error)
	CompareLenders(context.Context, *CompareLendersRequest) (*CompareLendersResponse, error)
	SynthesizeStructures(context.Context, *SynthesizeStructuresRequest) (*SynthesizeStructuresResponse, error)
	UpsertRateProfile(context.Context, *UpsertRateProfileRequest) (*UpsertRateProfileResponse, error)
	GetRateProfile(context.Context, *GetRateProfileRequest) (*GetRateProfileResponse, error)
	ListRateProfiles(context.Context, *ListRateProfilesRequest) (*ListRateProfilesResponse, error)
	mustEmbedUnimplementedFinancingServiceServer()
}

// UnimplementedFinancingServiceServer provides forward-compatible default implementations.
type UnimplementedFinancingServiceServer struct{}

func (UnimplementedFinancingServiceServer) ComputeQuote(context.Context, *ComputeQuoteRequest) (*ComputeQuoteResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ComputeQuote not implemented")
}
func (UnimplementedFinancingServiceServer) CompareLenders(context.Context, *CompareLendersRequest) (*CompareLendersResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CompareLenders not implemented")
}
func (UnimplementedFinancingServiceServer) SynthesizeStructures(context.Context, *SynthesizeStructuresRequest) (*SynthesizeStructuresResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SynthesizeStructures not implemented")
}
func (UnimplementedFinancingServiceServer) UpsertRateProfile(context.Context, *UpsertRateProfileRequest) (*UpsertRateProfileResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpsertRateProfile not implemented")
}
func (UnimplementedFinancingServiceServer) GetRateProfile(context.Context, *GetRateProfileRequest) (*GetRateProfileResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetRateProfile not implemented")
}
func (UnimplementedFinancingServiceServer) ListRateProfiles(context.Context, *ListRateProfilesRequest) (*ListRateProfilesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListRateProfiles not implemented")
}
func (UnimplementedFinancingServiceServer) mustEmbedUnimplementedFinancingServiceServer() {}

// RegisterFinancingServiceServer registers the FinancingServiceServer with the gRPC server.
func RegisterFinancingServiceServer(s *grpclib.Server, srv FinancingServiceServer) {
	s.RegisterService(&_FinancingService_serviceDesc, srv) //nolint:revive // gRPC handler registration
}

//nolint:revive // gRPC handler registration
var _FinancingService_serviceDesc = grpclib.ServiceDesc{
	ServiceName: "dealdesk.financing.v1.FinancingService",
	HandlerType: (*FinancingServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "ComputeQuote", Handler: _FinancingService_ComputeQuote_Handler},                 //nolint:revive // gRPC handler registration
		{MethodName: "CompareLenders", Handler: _FinancingService_CompareLenders_Handler},             //nolint:revive // gRPC handler registration
		{MethodName: "SynthesizeStructures", Handler: _FinancingService_SynthesizeStructures_Handler}, //nolint:revive // gRPC handler registration
		{MethodName: "UpsertRateProfile", Handler: _FinancingService_UpsertRateProfile_Handler},       //nolint:revive // gRPC handler registration
		{MethodName: "GetRateProfile", Handler: _FinancingService_GetRateProfile_Handler},             //nolint:revive // gRPC handler registration
		{MethodName: "ListRateProfiles", Handler: _FinancingService_ListRateProfiles_Handler},         //nolint:revive // gRPC handler registration
	},
	Streams: []grpclib.StreamDesc{},
}

//nolint:revive,errcheck // gRPC handler registration
func _FinancingService_ComputeQuote_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(ComputeQuoteRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FinancingServiceServer).ComputeQuote(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/dealdesk.financing.v1.FinancingService/ComputeQuote",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FinancingServiceServer).ComputeQuote(ctx, req.(*ComputeQuoteRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _FinancingService_CompareLenders_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(CompareLendersRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FinancingServiceServer).CompareLenders(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/dealdesk.financing.v1.FinancingService/CompareLenders",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FinancingServiceServer).CompareLenders(ctx, req.(*CompareLendersRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _FinancingService_SynthesizeStructures_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(SynthesizeStructuresRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FinancingServiceServer).SynthesizeStructures(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/dealdesk.financing.v1.FinancingService/SynthesizeStructures",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FinancingServiceServer).SynthesizeStructures(ctx, req.(*SynthesizeStructuresRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _FinancingService_UpsertRateProfile_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpsertRateProfileRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FinancingServiceServer).UpsertRateProfile(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/dealdesk.financing.v1.FinancingService/UpsertRateProfile",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FinancingServiceServer).UpsertRateProfile(ctx, req.(*UpsertRateProfileRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _FinancingService_GetRateProfile_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetRateProfileRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FinancingServiceServer).GetRateProfile(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/dealdesk.financing.v1.FinancingService/GetRateProfile",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FinancingServiceServer).GetRateProfile(ctx, req.(*GetRateProfileRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _FinancingService_ListRateProfiles_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListRateProfilesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FinancingServiceServer).ListRateProfiles(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/dealdesk.financing.v1.FinancingService/ListRateProfiles",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FinancingServiceServer).ListRateProfiles(ctx, req.(*ListRateProfilesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

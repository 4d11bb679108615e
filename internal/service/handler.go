package service

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"
)

// BillingServiceName is the fully-qualified name of the service.
const BillingServiceName = "billing.v1.BillingService"

// Procedure paths, relative to the server root.
const (
	UpsertRecordProcedure    = "/billing.v1.BillingService/UpsertRecord"
	DeleteRecordProcedure    = "/billing.v1.BillingService/DeleteRecord"
	ListRecordsProcedure     = "/billing.v1.BillingService/ListRecords"
	GetMonthSummaryProcedure = "/billing.v1.BillingService/GetMonthSummary"
	ListMonthsProcedure      = "/billing.v1.BillingService/ListMonths"
)

// NewBillingServiceHandler builds an HTTP handler serving every procedure of
// svc. It returns the path prefix to mount the handler on.
func NewBillingServiceHandler(svc *BillingService, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{WithJSON()}, opts...)

	upsert := connect.NewUnaryHandler(UpsertRecordProcedure, svc.UpsertRecord, opts...)
	del := connect.NewUnaryHandler(DeleteRecordProcedure, svc.DeleteRecord, opts...)
	list := connect.NewUnaryHandler(ListRecordsProcedure, svc.ListRecords, opts...)
	summary := connect.NewUnaryHandler(GetMonthSummaryProcedure, svc.GetMonthSummary, opts...)
	months := connect.NewUnaryHandler(ListMonthsProcedure, svc.ListMonths, opts...)

	return "/" + BillingServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case UpsertRecordProcedure:
			upsert.ServeHTTP(w, r)
		case DeleteRecordProcedure:
			del.ServeHTTP(w, r)
		case ListRecordsProcedure:
			list.ServeHTTP(w, r)
		case GetMonthSummaryProcedure:
			summary.ServeHTTP(w, r)
		case ListMonthsProcedure:
			months.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// BillingServiceClient calls a BillingService over HTTP.
type BillingServiceClient struct {
	upsert  *connect.Client[UpsertRecordRequest, UpsertRecordResponse]
	del     *connect.Client[DeleteRecordRequest, DeleteRecordResponse]
	list    *connect.Client[ListRecordsRequest, ListRecordsResponse]
	summary *connect.Client[GetMonthSummaryRequest, GetMonthSummaryResponse]
	months  *connect.Client[ListMonthsRequest, ListMonthsResponse]
}

// NewBillingServiceClient creates a client for the service at baseURL.
func NewBillingServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *BillingServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{WithJSON()}, opts...)
	return &BillingServiceClient{
		upsert:  connect.NewClient[UpsertRecordRequest, UpsertRecordResponse](httpClient, baseURL+UpsertRecordProcedure, opts...),
		del:     connect.NewClient[DeleteRecordRequest, DeleteRecordResponse](httpClient, baseURL+DeleteRecordProcedure, opts...),
		list:    connect.NewClient[ListRecordsRequest, ListRecordsResponse](httpClient, baseURL+ListRecordsProcedure, opts...),
		summary: connect.NewClient[GetMonthSummaryRequest, GetMonthSummaryResponse](httpClient, baseURL+GetMonthSummaryProcedure, opts...),
		months:  connect.NewClient[ListMonthsRequest, ListMonthsResponse](httpClient, baseURL+ListMonthsProcedure, opts...),
	}
}

func (c *BillingServiceClient) UpsertRecord(ctx context.Context, req *connect.Request[UpsertRecordRequest]) (*connect.Response[UpsertRecordResponse], error) {
	return c.upsert.CallUnary(ctx, req)
}

func (c *BillingServiceClient) DeleteRecord(ctx context.Context, req *connect.Request[DeleteRecordRequest]) (*connect.Response[DeleteRecordResponse], error) {
	return c.del.CallUnary(ctx, req)
}

func (c *BillingServiceClient) ListRecords(ctx context.Context, req *connect.Request[ListRecordsRequest]) (*connect.Response[ListRecordsResponse], error) {
	return c.list.CallUnary(ctx, req)
}

func (c *BillingServiceClient) GetMonthSummary(ctx context.Context, req *connect.Request[GetMonthSummaryRequest]) (*connect.Response[GetMonthSummaryResponse], error) {
	return c.summary.CallUnary(ctx, req)
}

func (c *BillingServiceClient) ListMonths(ctx context.Context, req *connect.Request[ListMonthsRequest]) (*connect.Response[ListMonthsResponse], error) {
	return c.months.CallUnary(ctx, req)
}

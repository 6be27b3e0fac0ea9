package grpc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
	"liyu1981.xyz/inventory-alert-service/pkg/alerts"
	"liyu1981.xyz/inventory-alert-service/pkg/common"
	"liyu1981.xyz/inventory-alert-service/pkg/events"
	"liyu1981.xyz/inventory-alert-service/pkg/models"
)

func toStatus(err error) error {
	switch {
	case errors.Is(err, alerts.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, alerts.ErrInvalidType),
		errors.Is(err, alerts.ErrInvalidSeverity),
		errors.Is(err, alerts.ErrInvalidParams):
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		common.GetLoggerWith(common.LoggerNameGrpcServer).Error("Request failed", zap.Error(err))
		return status.Error(codes.Internal, err.Error())
	}
}

// toStruct re-encodes v through its JSON form so gRPC clients see the same
// field names as REST clients.
func toStruct(v any) (*structpb.Struct, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(body, &m); err != nil {
		return nil, err
	}
	return structpb.NewStruct(m)
}

func queryParamsFrom(req *structpb.Struct) (models.QueryParams, error) {
	var params models.QueryParams
	if req == nil {
		return params, nil
	}
	body, err := protojson.Marshal(req)
	if err != nil {
		return params, fmt.Errorf("%w: %w", alerts.ErrInvalidParams, err)
	}
	if err := json.Unmarshal(body, &params); err != nil {
		return params, fmt.Errorf("%w: %w", alerts.ErrInvalidParams, err)
	}
	if err := alerts.ValidateQueryParams(&params); err != nil {
		return params, err
	}
	return params, nil
}

func (s *AlertServer) ListAlerts(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	params, err := queryParamsFrom(req)
	if err != nil {
		return nil, toStatus(err)
	}

	page, err := s.Alerts.Query.GetAlerts(ctx, params)
	if err != nil {
		return nil, toStatus(err)
	}

	resp, err := toStruct(page)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return resp, nil
}

func (s *AlertServer) MarkAsRead(ctx context.Context, req *wrapperspb.UInt64Value) (*structpb.Struct, error) {
	if req.GetValue() == 0 {
		return nil, status.Error(codes.InvalidArgument, "alert id is required")
	}

	view, err := s.Alerts.Query.MarkAsRead(ctx, uint(req.GetValue()))
	if err != nil {
		return nil, toStatus(err)
	}

	resp, err := toStruct(view)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return resp, nil
}

func (s *AlertServer) MarkAllAsRead(ctx context.Context, req *wrapperspb.StringValue) (*wrapperspb.Int64Value, error) {
	updated, err := s.Alerts.Query.MarkAllAsRead(ctx, req.GetValue())
	if err != nil {
		return nil, toStatus(err)
	}
	return wrapperspb.Int64(updated), nil
}

func (s *AlertServer) SyncAlerts(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	report, err := s.Alerts.Reconciler.SyncAllAlerts(ctx, models.SyncOptions{
		Source: models.SyncSourceManual,
		Emit:   true,
	})
	if err != nil {
		return nil, toStatus(err)
	}

	return structpb.NewStruct(map[string]any{
		"created":  len(report.Created),
		"updated":  len(report.Updated),
		"resolved": len(report.Resolved),
	})
}

// StreamAlerts sends every bus event published after the call starts until
// the client cancels or the bus closes.
func (s *AlertServer) StreamAlerts(_ *emptypb.Empty, stream AlertService_StreamAlertsServer) error {
	if s.Alerts.Bus == nil {
		return status.Error(codes.Unavailable, "event stream unavailable")
	}

	sub := s.Alerts.Bus.Subscribe(events.DefaultBuffer)
	defer s.Alerts.Bus.Unsubscribe(sub)

	ctx := stream.Context()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-sub.C:
			if !ok {
				return nil
			}
			msg, err := toStruct(ev)
			if err != nil {
				return status.Error(codes.Internal, err.Error())
			}
			if err := stream.Send(msg); err != nil {
				return err
			}
		}
	}
}

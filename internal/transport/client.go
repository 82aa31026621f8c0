package transport

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// Dial opens a health client to target. Without options the connection is
// insecure.
func Dial(target string, opts ...grpc.DialOption) (*grpc.ClientConn, healthpb.HealthClient, error) {
	if len(opts) == 0 {
		opts = append(opts, grpc.WithTransportCredentials(insecure.NewCredentials()))
	}
	cc, err := grpc.NewClient(target, opts...)
	if err != nil {
		return nil, nil, err
	}
	return cc, healthpb.NewHealthClient(cc), nil
}

// Check returns the serving status of one field, or of the whole set when
// key is empty.
func Check(ctx context.Context, c healthpb.HealthClient, key string) (healthpb.HealthCheckResponse_ServingStatus, error) {
	resp, err := c.Check(ctx, &healthpb.HealthCheckRequest{Service: key})
	if err != nil {
		return healthpb.HealthCheckResponse_UNKNOWN, err
	}
	return resp.GetStatus(), nil
}

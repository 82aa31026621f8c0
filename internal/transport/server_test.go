package transport

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"fieldcfg/internal/field"
)

func startBuf(t *testing.T) (*Server, healthpb.HealthClient) {
	t.Helper()
	lis := bufconn.Listen(1 << 20)
	s := NewServer(lis)
	go func() { _ = s.Serve() }()
	t.Cleanup(s.Stop)

	cc, hc, err := Dial("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cc.Close() })
	return s, hc
}

func TestServer_PublishesPerFieldHealth(t *testing.T) {
	s, hc := startBuf(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	st, err := Check(ctx, hc, "")
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, st, "nothing published yet")

	poro := field.NewConfig("PORO", "G", true, nil)
	poro.Update(field.TruncateNone, 0, 0, field.FormatEclGRDECL, "", "", "", "poro.grdecl")
	permx := field.NewConfig("PERMX", "G", true, nil)
	permx.Update(field.TruncateNone, 0, 0, field.FormatUndefined, "", "", "", "")

	s.Publish([]*field.Config{poro})
	st, err = Check(ctx, hc, "")
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, st)

	s.Publish([]*field.Config{poro, permx})
	st, err = Check(ctx, hc, "PORO")
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, st)

	st, err = Check(ctx, hc, "PERMX")
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, st)

	st, err = Check(ctx, hc, "")
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, st)

	_, err = Check(ctx, hc, "SWAT")
	assert.Equal(t, codes.NotFound, status.Code(err))
}

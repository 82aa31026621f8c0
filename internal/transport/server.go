package transport

import (
	"errors"
	"fmt"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"fieldcfg/internal/field"
)

// Server answers gRPC health checks with one service per field key: SERVING
// when the field config is valid, NOT_SERVING otherwise. The empty service
// name reports the whole set.
type Server struct {
	grpc   *grpc.Server
	health *health.Server
	lis    net.Listener
}

func StartServer(port int) (*Server, error) {
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return nil, err
	}
	return NewServer(lis), nil
}

func NewServer(lis net.Listener) *Server {
	s := &Server{
		grpc:   grpc.NewServer(),
		health: health.NewServer(),
		lis:    lis,
	}
	healthpb.RegisterHealthServer(s.grpc, s.health)
	s.health.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	return s
}

// Publish sets the health status of every field and of the overall set.
func (s *Server) Publish(fields []*field.Config) {
	all := healthpb.HealthCheckResponse_SERVING
	for _, c := range fields {
		st := healthpb.HealthCheckResponse_SERVING
		if !c.IsValid() {
			st = healthpb.HealthCheckResponse_NOT_SERVING
			all = healthpb.HealthCheckResponse_NOT_SERVING
		}
		s.health.SetServingStatus(c.Key(), st)
	}
	s.health.SetServingStatus("", all)
}

func (s *Server) Addr() net.Addr { return s.lis.Addr() }

// Serve blocks until Stop. A Stop that wins the race against Serve is not an
// error.
func (s *Server) Serve() error {
	if err := s.grpc.Serve(s.lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return err
	}
	return nil
}

func (s *Server) Stop() {
	s.health.Shutdown()
	s.grpc.GracefulStop()
}

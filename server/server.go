package server

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"ieltshub/config"
	"ieltshub/pb"
	"ieltshub/services"

	"github.com/gin-gonic/gin"
	"google.golang.org/grpc"
)

const shutdownTimeout = 5 * time.Second

// Server owns the gRPC listener and the health endpoint. Lifecycle is
// New -> Run -> (ctx cancelled) -> Shutdown.
type Server struct {
	cfg        *config.Config
	grpcServer *grpc.Server
	health     *http.Server
}

func New(cfg *config.Config, evaluator services.Evaluator) *Server {
	// MaxConcurrentStreams is the bound on in-flight calls per connection;
	// each call blocks on the outbound API for its full duration.
	grpcServer := grpc.NewServer(
		grpc.MaxConcurrentStreams(uint32(cfg.Server.MaxConcurrentStreams)),
	)
	pb.RegisterGreeterServer(grpcServer, services.NewGreeterService())
	pb.RegisterIELTSServiceServer(grpcServer, services.NewIELTSService(evaluator))

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return &Server{
		cfg:        cfg,
		grpcServer: grpcServer,
		health: &http.Server{
			Addr:    fmt.Sprintf(":%d", cfg.Server.HealthPort),
			Handler: router,
		},
	}
}

// Run serves until ctx is cancelled or either listener fails, then drains
// in-flight calls. The gRPC listener is plaintext.
func (s *Server) Run(ctx context.Context) error {
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", s.cfg.Server.Port))
	if err != nil {
		return fmt.Errorf("failed to listen on port %d: %w", s.cfg.Server.Port, err)
	}

	errCh := make(chan error, 2)
	go func() {
		log.Printf("gRPC server starting on port %d", s.cfg.Server.Port)
		if err := s.grpcServer.Serve(lis); err != nil {
			errCh <- fmt.Errorf("grpc serve: %w", err)
		}
	}()
	go func() {
		log.Printf("health endpoint on port %d", s.cfg.Server.HealthPort)
		if err := s.health.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("health server: %w", err)
		}
	}()

	select {
	case err := <-errCh:
		s.Shutdown()
		return err
	case <-ctx.Done():
		s.Shutdown()
		return nil
	}
}

// Shutdown stops both listeners, giving in-flight RPCs shutdownTimeout to
// drain before a hard stop.
func (s *Server) Shutdown() {
	done := make(chan struct{})
	go func() {
		s.grpcServer.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
		log.Println("grpc server stopped gracefully")
	case <-time.After(shutdownTimeout):
		log.Println("grpc server forced to stop")
		s.grpcServer.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.health.Shutdown(ctx); err != nil {
		log.Printf("health server shutdown: %v", err)
	}
}

package services

import (
	"context"
	"fmt"

	"ieltshub/pb"
)

// GreeterService answers the greeting RPC registered on the same listener.
// It shares no state with the evaluation service.
type GreeterService struct {
	pb.UnimplementedGreeterServer
}

func NewGreeterService() *GreeterService {
	return &GreeterService{}
}

func (s *GreeterService) SayHello(ctx context.Context, req *pb.HelloRequest) (*pb.HelloReply, error) {
	return &pb.HelloReply{Message: fmt.Sprintf("Hello, %s!", req.GetName())}, nil
}

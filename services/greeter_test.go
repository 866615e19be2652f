package services

import (
	"context"
	"testing"

	"ieltshub/pb"
)

func TestSayHello(t *testing.T) {
	svc := NewGreeterService()

	resp, err := svc.SayHello(context.Background(), &pb.HelloRequest{Name: "World"})
	if err != nil {
		t.Fatalf("SayHello returned error: %v", err)
	}
	if resp.Message != "Hello, World!" {
		t.Errorf("Expected %q, got %q", "Hello, World!", resp.Message)
	}
}

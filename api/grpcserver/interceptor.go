package grpcserver

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
)

// LogUnary tags each request with an id and logs method and latency.
// Business rejections arrive as success=false payloads, so err here is
// almost always nil; anything else is a transport-level problem.
func LogUnary(
	ctx context.Context,
	req any,
	info *grpc.UnaryServerInfo,
	handler grpc.UnaryHandler,
) (any, error) {
	id := uuid.NewString()
	start := time.Now()

	resp, err := handler(ctx, req)

	if err != nil {
		log.Printf("[gRPC] %s id=%s err=%v took=%s", info.FullMethod, id, err, time.Since(start))
	} else {
		log.Printf("[gRPC] %s id=%s took=%s", info.FullMethod, id, time.Since(start))
	}
	return resp, err
}

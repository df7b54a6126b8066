package grpcserver

import (
	"context"
	"errors"
	"fmt"

	pb "numberd/api/pb"
	"numberd/domain/numberset"
	"numberd/service"
)

// Validation text for inserts below the minimum. The same boundary is
// enforced by the client's local check; this one is authoritative.
const msgBelowMinimum = "Only integers >= 2 are allowed"

// Server adapts NumberService to gRPC. It is stateless: every request
// becomes exactly one service call, and every set outcome — including
// duplicate and not-found rejections — maps to an OK response with
// success=false, never to an RPC error.
type Server struct {
	pb.UnimplementedNumberSetServer
	svc *service.NumberService
}

func NewServer(svc *service.NumberService) *Server {
	return &Server{svc: svc}
}

// -------------------- Commands --------------------

func (s *Server) Insert(
	ctx context.Context,
	req *pb.InsertRequest,
) (*pb.OperationResult, error) {
	if req.Number < numberset.MinNumber {
		return &pb.OperationResult{
			Success: false,
			Message: msgBelowMinimum,
		}, nil
	}

	entry, err := s.svc.Insert(req.Number)
	switch {
	case errors.Is(err, numberset.ErrDuplicate):
		return &pb.OperationResult{
			Success: false,
			Message: fmt.Sprintf("Number %d already exists", req.Number),
		}, nil
	case err != nil:
		// The set rechecks the minimum; nothing else can fail.
		return &pb.OperationResult{
			Success: false,
			Message: msgBelowMinimum,
		}, nil
	}

	return &pb.OperationResult{
		Success: true,
		Message: fmt.Sprintf("Inserted %d at %d", entry.Number, entry.InsertedAt.Unix()),
		Entry:   toEntry(entry),
	}, nil
}

func (s *Server) Delete(
	ctx context.Context,
	req *pb.DeleteRequest,
) (*pb.OperationResult, error) {
	if err := s.svc.Delete(req.Number); err != nil {
		return &pb.OperationResult{
			Success: false,
			Message: fmt.Sprintf("Number %d not found", req.Number),
		}, nil
	}

	return &pb.OperationResult{
		Success: true,
		Message: fmt.Sprintf("Deleted %d", req.Number),
	}, nil
}

// -------------------- Queries --------------------

func (s *Server) List(
	ctx context.Context,
	req *pb.ListRequest,
) (*pb.ListResponse, error) {
	entries := s.svc.List()

	resp := &pb.ListResponse{
		Message: fmt.Sprintf("Current count: %d", len(entries)),
		Count:   uint64(len(entries)),
		Entries: make([]*pb.NumberEntry, 0, len(entries)),
	}
	for _, e := range entries {
		resp.Entries = append(resp.Entries, toEntry(e))
	}
	return resp, nil
}

func (s *Server) Clear(
	ctx context.Context,
	req *pb.ClearRequest,
) (*pb.OperationResult, error) {
	removed := s.svc.Clear()

	return &pb.OperationResult{
		Success: true,
		Message: fmt.Sprintf("Cleared %d numbers", removed),
	}, nil
}

// -------------------- Converters --------------------

func toEntry(e numberset.Entry) *pb.NumberEntry {
	return &pb.NumberEntry{
		Number:     e.Number,
		InsertedAt: e.InsertedAt.Unix(),
	}
}

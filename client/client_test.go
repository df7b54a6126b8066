package client

import (
	"bytes"
	"context"
	"net"
	"strings"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"

	"numberd/api/grpcserver"
	pb "numberd/api/pb"
	"numberd/domain/numberset"
	"numberd/service"
)

func dialTestServer(t *testing.T) *grpc.ClientConn {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	pb.RegisterNumberSetServer(srv,
		grpcserver.NewServer(service.New(numberset.New(), nil, nil)))

	go func() {
		if err := srv.Serve(lis); err != nil {
			t.Logf("server exited: %v", err)
		}
	}()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestClient_RoundTrip(t *testing.T) {
	conn := dialTestServer(t)
	var out bytes.Buffer
	c := New(conn, &out)
	ctx := context.Background()

	c.Insert(ctx, 5)
	c.Insert(ctx, 5)
	c.List(ctx)
	c.Delete(ctx, 5)
	c.List(ctx)
	c.Clear(ctx)

	got := out.String()
	for _, want := range []string{
		"Success: Inserted 5 at ",
		"  number: 5  inserted: ",
		"Failed: Number 5 already exists",
		"Current count: 1",
		"5  (",
		"Deleted 5",
		"Current count: 0",
		"Cleared 0 numbers",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("output missing %q:\n%s", want, got)
		}
	}
}

func TestClient_ReplSession(t *testing.T) {
	conn := dialTestServer(t)
	var out bytes.Buffer
	c := New(conn, &out)

	session := strings.Join([]string{
		"insert 10",
		"insert 3",
		"list",
		"delete 10",
		"clear",
		"exit",
	}, "\n") + "\n"

	if err := c.Run(context.Background(), strings.NewReader(session)); err != nil {
		t.Fatalf("run: %v", err)
	}

	got := out.String()
	// Entries come back ascending regardless of insertion order.
	if strings.Index(got, "3  (") > strings.Index(got, "10  (") {
		t.Fatalf("list not ascending:\n%s", got)
	}
	for _, want := range []string{
		"Current count: 2",
		"Deleted 10",
		"Cleared 1 numbers",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("output missing %q:\n%s", want, got)
		}
	}
}

func TestClient_TransportErrorIsDistinct(t *testing.T) {
	lis := bufconn.Listen(1 << 20)
	// No server behind the listener: the call fails at transport level.
	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()
	lis.Close()

	var out bytes.Buffer
	c := New(conn, &out)
	c.Insert(context.Background(), 5)

	got := out.String()
	if !strings.Contains(got, "RPC failed: ") {
		t.Fatalf("transport failure not reported as RPC failure:\n%s", got)
	}
	if strings.Contains(got, "Failed: ") {
		t.Fatalf("transport failure rendered as business rejection:\n%s", got)
	}
}

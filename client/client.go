package client

import (
	"context"
	"fmt"
	"io"

	"google.golang.org/grpc"
	"google.golang.org/grpc/status"

	pb "numberd/api/pb"
)

// Client is the caller-side stub. It holds one connection, issues one
// blocking request at a time, and renders whatever the service answers.
// The service's success/failure text is authoritative; only transport
// failures are reported differently.
type Client struct {
	api pb.NumberSetClient
	out io.Writer
}

func New(conn grpc.ClientConnInterface, out io.Writer) *Client {
	return &Client{
		api: pb.NewNumberSetClient(conn),
		out: out,
	}
}

func (c *Client) Insert(ctx context.Context, number uint64) {
	resp, err := c.api.Insert(ctx, &pb.InsertRequest{Number: number})
	if err != nil {
		c.rpcFailed(err)
		return
	}

	if resp.Success {
		fmt.Fprintf(c.out, "Success: %s\n", resp.Message)
		if resp.Entry != nil {
			fmt.Fprintf(c.out, "  number: %d  inserted: %d\n",
				resp.Entry.Number, resp.Entry.InsertedAt)
		}
	} else {
		fmt.Fprintf(c.out, "Failed: %s\n", resp.Message)
	}
}

func (c *Client) Delete(ctx context.Context, number uint64) {
	resp, err := c.api.Delete(ctx, &pb.DeleteRequest{Number: number})
	if err != nil {
		c.rpcFailed(err)
		return
	}
	fmt.Fprintln(c.out, resp.Message)
}

func (c *Client) List(ctx context.Context) {
	resp, err := c.api.List(ctx, &pb.ListRequest{})
	if err != nil {
		c.rpcFailed(err)
		return
	}

	fmt.Fprintln(c.out, resp.Message)
	for _, entry := range resp.Entries {
		fmt.Fprintf(c.out, "%d  (%d)\n", entry.Number, entry.InsertedAt)
	}
}

func (c *Client) Clear(ctx context.Context) {
	resp, err := c.api.Clear(ctx, &pb.ClearRequest{})
	if err != nil {
		c.rpcFailed(err)
		return
	}
	fmt.Fprintln(c.out, resp.Message)
}

// rpcFailed reports a transport-level failure. Never retried.
func (c *Client) rpcFailed(err error) {
	st := status.Convert(err)
	fmt.Fprintf(c.out, "RPC failed: %s: %s\n", st.Code(), st.Message())
}

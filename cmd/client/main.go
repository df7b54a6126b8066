package main

import (
	"context"
	"flag"
	"log"
	"os"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"numberd/client"
	"numberd/infra/config"
)

func main() {
	target := flag.String("target", config.DefaultListen,
		"server address (unix-abstract:NAME, unix:///path, or host:port)")
	flag.Parse()

	// Local trust boundary; the daemon sits on a local socket.
	conn, err := grpc.NewClient(*target,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		log.Fatalf("connect failed: %v", err)
	}
	defer conn.Close()

	c := client.New(conn, os.Stdout)
	if err := c.Run(context.Background(), os.Stdin); err != nil {
		log.Fatalf("input error: %v", err)
	}
}

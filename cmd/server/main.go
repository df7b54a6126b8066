package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"google.golang.org/grpc"

	"numberd/api/grpcserver"
	pb "numberd/api/pb"
	"numberd/domain/numberset"
	"numberd/infra/config"
	"numberd/infra/metrics"
	"numberd/jobs/broadcaster"
	"numberd/service"
)

func main() {
	configPath := flag.String("config", "", "path to yaml config")
	listenFlag := flag.String("listen", "", "listen address (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}
	if *listenFlag != "" {
		cfg.Listen = *listenFlag
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ---------------- Metrics ----------------

	var m *metrics.Metrics
	if cfg.Metrics.Addr != "" {
		m = metrics.New()
		mux := http.NewServeMux()
		mux.Handle("/metrics", m.Handler())
		go func() {
			if err := http.ListenAndServe(cfg.Metrics.Addr, mux); err != nil {
				log.Printf("metrics server exited: %v", err)
			}
		}()
	}

	// ---------------- Domain ----------------

	set := numberset.New()

	// ---------------- Background Jobs ----------------

	var events service.Publisher
	if len(cfg.Kafka.Brokers) > 0 {
		bc, err := broadcaster.New(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		if err != nil {
			log.Fatalf("broadcaster init failed: %v", err)
		}
		defer bc.Close()
		go bc.Run(ctx)
		events = bc
	}

	// ---------------- Service ----------------

	svc := service.New(set, events, m)

	// ---------------- gRPC ----------------

	network, address, err := cfg.Listener()
	if err != nil {
		log.Fatalf("bad listen address: %v", err)
	}
	lis, err := net.Listen(network, address)
	if err != nil {
		log.Fatalf("listen failed: %v", err)
	}

	grpcSrv := grpc.NewServer(
		grpc.UnaryInterceptor(grpcserver.LogUnary),
	)
	pb.RegisterNumberSetServer(grpcSrv, grpcserver.NewServer(svc))

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		grpcSrv.GracefulStop()
		cancel()
	}()

	fmt.Printf("numberd listening on %s\n", cfg.Listen)

	if err := grpcSrv.Serve(lis); err != nil {
		log.Fatalf("gRPC server exited: %v", err)
	}
}

// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Command moosed runs a choreography server: it loads a node's
// configuration, wires up in-memory networking and storage, and serves
// LaunchComputation/RetrieveResults/AbortComputation over gRPC.
package main

import (
	"crypto/tls"
	"crypto/x509"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"

	"github.com/luxfi/moose/choreography"
	"github.com/luxfi/moose/config"
	"github.com/luxfi/moose/ids"
	"github.com/luxfi/moose/internal/moonlog"
	"github.com/luxfi/moose/networking"
	"github.com/luxfi/moose/storage"
)

func main() {
	configPath := flag.String("config", "moosed.yaml", "path to the node configuration file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintln(os.Stderr, "moosed:", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := moonlog.New("moosed")

	lis, err := net.Listen("tcp", cfg.ListenAddr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", cfg.ListenAddr, err)
	}

	reg := prometheus.NewRegistry()
	server := choreography.New(
		log,
		ids.Identity(cfg.Self),
		networking.NewInMemory(),
		networking.InMemoryStrategy(),
		storage.NewInMemory(),
		reg,
	)
	if cfg.Choreographer != "" {
		server.WithExpectedChoreographer(ids.Identity(cfg.Choreographer))
	}
	svc := choreography.NewService(server)

	var opts []grpc.ServerOption
	if cfg.TLSCertFile != "" {
		creds, err := serverTLS(cfg)
		if err != nil {
			return fmt.Errorf("loading TLS credentials: %w", err)
		}
		opts = append(opts, grpc.Creds(creds))
	}
	grpcServer := grpc.NewServer(opts...)
	choreography.RegisterService(grpcServer, svc)

	if cfg.MetricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
		go func() {
			if err := http.ListenAndServe(cfg.MetricsAddr, mux); err != nil {
				log.Error("metrics server stopped", "error", err)
			}
		}()
		log.Info("moosed serving metrics", "addr", cfg.MetricsAddr)
	}

	log.Info("moosed listening", "addr", cfg.ListenAddr, "self", cfg.Self)
	return grpcServer.Serve(lis)
}

// serverTLS builds this node's gRPC transport credentials from cfg. When
// TLSClientCAFile is set it requires and verifies the caller's client
// certificate, which is what lets choreography.PeerIdentity extract a
// caller identity for Server.WithExpectedChoreographer to check.
func serverTLS(cfg config.Config) (credentials.TransportCredentials, error) {
	cert, err := tls.LoadX509KeyPair(cfg.TLSCertFile, cfg.TLSKeyFile)
	if err != nil {
		return nil, err
	}
	tlsCfg := &tls.Config{Certificates: []tls.Certificate{cert}}
	if cfg.TLSClientCAFile != "" {
		pem, err := os.ReadFile(cfg.TLSClientCAFile)
		if err != nil {
			return nil, err
		}
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(pem) {
			return nil, fmt.Errorf("no certificates parsed from %s", cfg.TLSClientCAFile)
		}
		tlsCfg.ClientCAs = pool
		tlsCfg.ClientAuth = tls.RequireAndVerifyClientCert
	}
	return credentials.NewTLS(tlsCfg), nil
}

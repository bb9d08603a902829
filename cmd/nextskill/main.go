package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"nextskill/internal/config"
	"nextskill/internal/server"

	"github.com/golang/glog"
)

func main() {
	flag.Parse()
	defer glog.Flush()

	cfg, err := config.Load()
	if err != nil {
		glog.Exitf("❌ Missing or invalid configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s, err := server.New(ctx, cfg)
	if err != nil {
		glog.Exitf("❌ Could not start server: %v", err)
	}
	defer s.Close()

	if err := s.Start(ctx); err != nil {
		glog.Errorf("server error: %v", err)
		return
	}
	glog.Infof("Server stopped\n")
}

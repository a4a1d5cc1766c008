// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

// Hcserver serves compression and decompression over HTTP.
package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/intel/fasthuff/internal/config"
	"github.com/intel/fasthuff/internal/handler"
	"github.com/intel/fasthuff/internal/router"
	"github.com/intel/fasthuff/internal/service"
	"github.com/intel/fasthuff/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	logg := logger.New(cfg.Debug)

	svc := service.New(cfg.CacheEntries, cfg.MaxOutput, logg)
	codecH := handler.NewCodecHandler(svc, cfg.MaxBody, logg)

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	router.Register(r, router.Dependencies{
		CodecHandler: codecH,
	})

	logg.Infof("starting server at %s", cfg.Addr)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}

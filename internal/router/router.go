// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

// Package router binds the HTTP routes of hcserver.
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/intel/fasthuff/internal/handler"
)

// Dependencies holds the handlers the routes are bound to.
type Dependencies struct {
	CodecHandler *handler.CodecHandler
}

// cors lets the browser front end call the API from another origin.
func cors(c *gin.Context) {
	c.Header("Access-Control-Allow-Origin", "*")
	c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	c.Header("Access-Control-Allow-Headers", "Content-Type")
	c.Header("Access-Control-Expose-Headers",
		"X-Original-Size, X-Compressed-Size, X-Compression-Ratio, X-Space-Saved, Content-Disposition")
	if c.Request.Method == http.MethodOptions {
		c.AbortWithStatus(http.StatusNoContent)
		return
	}
	c.Next()
}

// Register installs the CORS middleware, the health check and the codec
// routes on r.
func Register(r *gin.Engine, d Dependencies) {
	r.Use(cors)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	for _, path := range []string{"/compress", "/decompress", "/analyze"} {
		r.OPTIONS(path, func(*gin.Context) {})
	}
	r.POST("/compress", d.CodecHandler.Compress)
	r.POST("/decompress", d.CodecHandler.Decompress)
	r.POST("/analyze", d.CodecHandler.Analyze)
}

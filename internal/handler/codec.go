// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

// Package handler adapts the codec service to gin.
package handler

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/intel/fasthuff/compress/hc"
	"github.com/intel/fasthuff/internal/service"
	"github.com/intel/fasthuff/pkg/logger"
	"github.com/pkg/errors"
)

// Ext is appended to the name of compressed downloads.
const Ext = ".huf"

// CodecHandler serves the compress, decompress and analyze endpoints.
type CodecHandler struct {
	svc     *service.Service
	maxBody int64
	log     logger.Logger
}

// NewCodecHandler returns a CodecHandler reading request bodies of at most
// maxBody bytes.
func NewCodecHandler(s *service.Service, maxBody int64, log logger.Logger) *CodecHandler {
	return &CodecHandler{svc: s, maxBody: maxBody, log: log}
}

func (h *CodecHandler) body(c *gin.Context) ([]byte, bool) {
	data, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBody))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": fmt.Sprintf("body exceeds %d bytes", h.maxBody)})
			return nil, false
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	return data, true
}

func (h *CodecHandler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, hc.ErrTruncatedStream), errors.Is(err, hc.ErrCorruptHeader):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, hc.ErrInputTooLarge), errors.Is(err, service.ErrOutputTooLarge):
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": err.Error()})
	default:
		h.log.Errorf("%s %s: %+v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func setStats(c *gin.Context, s hc.Stats) {
	c.Header("X-Original-Size", strconv.FormatInt(s.OriginalSize, 10))
	c.Header("X-Compressed-Size", strconv.FormatInt(s.CompressedSize, 10))
	c.Header("X-Compression-Ratio", strconv.FormatFloat(s.Ratio(), 'f', 4, 64))
	c.Header("X-Space-Saved", strconv.FormatInt(s.SpaceSaved(), 10))
}

func attach(c *gin.Context, name string) {
	if name != "" {
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	}
}

// Compress answers with the container form of the request body.
func (h *CodecHandler) Compress(c *gin.Context) {
	data, ok := h.body(c)
	if !ok {
		return
	}
	res, err := h.svc.Compress(data)
	if err != nil {
		h.fail(c, err)
		return
	}
	setStats(c, res.Stats)
	if name := c.Query("name"); name != "" {
		attach(c, name+Ext)
	}
	c.Data(http.StatusOK, "application/octet-stream", res.Data)
}

// Decompress answers with the plain data of the container in the request body.
func (h *CodecHandler) Decompress(c *gin.Context) {
	data, ok := h.body(c)
	if !ok {
		return
	}
	res, err := h.svc.Decompress(data)
	if err != nil {
		h.fail(c, err)
		return
	}
	setStats(c, res.Stats)
	if name := c.Query("name"); name != "" {
		if trimmed := strings.TrimSuffix(name, Ext); trimmed != "" {
			name = trimmed
		}
		attach(c, name)
	}
	c.Data(http.StatusOK, "application/octet-stream", res.Data)
}

// Analyze answers with the report of compressing the request body.
func (h *CodecHandler) Analyze(c *gin.Context) {
	data, ok := h.body(c)
	if !ok {
		return
	}
	rep, err := h.svc.Analyze(data)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, rep)
}

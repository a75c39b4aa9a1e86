package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"net/http/httputil"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/juruen/sketchpad/config"
	"github.com/juruen/sketchpad/log"
	"github.com/juruen/sketchpad/process"
	"github.com/juruen/sketchpad/web"
)

// PageServer hosts the sketch pad page and forwards submissions to the
// processing service so the page can post to its own origin.
type PageServer struct {
	cfg   config.Config
	proxy *httputil.ReverseProxy
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func NewPageServer(cfg config.Config) (*PageServer, error) {
	upstream, err := url.Parse(cfg.Server)
	if err != nil {
		return nil, errors.Wrap(err, "invalid server url")
	}
	if upstream.Scheme == "" || upstream.Host == "" {
		return nil, errors.Errorf("invalid server url %q", cfg.Server)
	}

	proxy := httputil.NewSingleHostReverseProxy(upstream)
	proxy.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
		log.Error.Printf("proxy: %v", err)
		writeError(w, http.StatusBadGateway, errors.New("Failed to reach processing service"))
	}
	return &PageServer{cfg: cfg, proxy: proxy}, nil
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{Error: err.Error()})
}

// Router builds the gin engine serving the page, the static assets and
// the processing endpoint.
func (s *PageServer) Router() *gin.Engine {
	e := gin.New()
	e.Use(gin.Recovery(), requestLogger())

	e.GET("/", s.handleIndex)
	e.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	e.Static("/static", s.cfg.StaticDir)
	e.POST(s.cfg.Endpoint, s.handleProcess)
	e.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Not found"})
	})
	return e
}

func (s *PageServer) handleIndex(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", web.IndexHTML)
}

// POST <endpoint>, body {"image": "<data url>"}
func (s *PageServer) handleProcess(c *gin.Context) {
	body, err := ioutil.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Failed to read request"})
		return
	}

	var req process.Request
	if err := json.Unmarshal(body, &req); err != nil || req.Image == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "No image data received"})
		return
	}

	c.Request.Body = ioutil.NopCloser(bytes.NewReader(body))
	c.Request.ContentLength = int64(len(body))
	s.proxy.ServeHTTP(c.Writer, c.Request)
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Trace.Printf("%s %s %d %s", c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}

// runServerMode serves until ctx is cancelled
func runServerMode(ctx context.Context, cfg config.Config) error {
	server, err := NewPageServer(cfg)
	if err != nil {
		return err
	}

	gin.SetMode(gin.ReleaseMode)
	srv := &http.Server{Addr: cfg.Listen, Handler: server.Router()}

	errc := make(chan error, 1)
	go func() {
		log.Info.Printf("Starting HTTP server on %s, forwarding to %s", cfg.Listen, cfg.Server)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return errors.Wrap(err, "server failed")
	case <-ctx.Done():
	}

	shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdown)
}

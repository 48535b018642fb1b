package server

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"runtime"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/df07/go-whitted-raytracer/pkg/encoder"
	"github.com/df07/go-whitted-raytracer/pkg/loaders"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene  string // Scene id, as listed by /api/scenes
	Width  int    // Image width, 0 keeps the scene's own size
	Height int    // Image height, 0 keeps the scene's own size
	Format string // Output format: png, bmp or tiff
}

// handleRender renders a scene synchronously and responds with the encoded image
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	enc, err := encoder.ForFormat(req.Format)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	sceneObj, status, err := s.createScene(req)
	if err != nil {
		writeError(w, status, err.Error())
		return
	}

	rendererConfig := renderer.DefaultConfig()
	rendererConfig.MaxDepth = s.cfg.Render.MaxDepth
	rendererConfig.Workers = s.cfg.Render.Workers
	if rendererConfig.Workers == 0 {
		rendererConfig.Workers = runtime.NumCPU()
	}

	raytracer := renderer.NewRaytracer(sceneObj, rendererConfig, s.logger.Named("renderer"))
	frame, stats, err := raytracer.Render(r.Context())
	if err != nil {
		if r.Context().Err() != nil {
			s.logger.Info("render cancelled by client", zap.String("scene", req.Scene))
			return
		}
		s.logger.Error("render failed", zap.String("scene", req.Scene), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "render failed")
		return
	}

	// Encode fully before writing so a failure never produces a partial image
	var buf bytes.Buffer
	if err := enc.Encode(&buf, frame.Image()); err != nil {
		s.logger.Error("failed to encode image", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to encode image")
		return
	}

	w.Header().Set("Content-Type", enc.ContentType())
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.Header().Set("X-Render-Time-Ms", strconv.FormatInt(stats.Elapsed.Milliseconds(), 10))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// parseRenderRequest parses request parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	query := r.URL.Query()
	req := &RenderRequest{
		Scene:  query.Get("scene"),
		Format: query.Get("format"),
	}
	if req.Scene == "" {
		req.Scene = s.cfg.Render.Scene
	}
	if req.Format == "" {
		req.Format = s.cfg.Output.Format
	}

	var err error
	if req.Width, err = parseIntParam(query, "width", 0, 1, s.cfg.Server.MaxWidth); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(query, "height", 0, 1, s.cfg.Server.MaxHeight); err != nil {
		return nil, err
	}
	return req, nil
}

// createScene resolves the requested scene and applies size overrides.
// The returned status is meaningful only when err is non-nil.
func (s *Server) createScene(req *RenderRequest) (*scene.Scene, int, error) {
	// Only scene ids are accepted over HTTP, never filesystem paths
	if strings.ContainsAny(req.Scene, `/\.`) {
		return nil, http.StatusNotFound, fmt.Errorf("%w: %q", scene.ErrUnknownScene, req.Scene)
	}

	sceneObj, err := loaders.ResolveScene(req.Scene, s.cfg.Render.SceneDir)
	if err != nil {
		if errors.Is(err, scene.ErrUnknownScene) {
			return nil, http.StatusNotFound, err
		}
		s.logger.Warn("failed to load scene", zap.String("scene", req.Scene), zap.Error(err))
		return nil, http.StatusUnprocessableEntity, err
	}

	if req.Width > 0 {
		sceneObj.Width = req.Width
	}
	if req.Height > 0 {
		sceneObj.Height = req.Height
	}
	if sceneObj.Width > s.cfg.Server.MaxWidth || sceneObj.Height > s.cfg.Server.MaxHeight {
		return nil, http.StatusBadRequest, fmt.Errorf("image size %dx%d exceeds the server limit of %dx%d",
			sceneObj.Width, sceneObj.Height, s.cfg.Server.MaxWidth, s.cfg.Server.MaxHeight)
	}
	return sceneObj, http.StatusOK, nil
}

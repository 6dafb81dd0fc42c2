package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"roomscan/internal/config"
	"roomscan/internal/store"
	"roomscan/pkg/dimension"
	"roomscan/pkg/kernel"
	"roomscan/pkg/mesher"
	"roomscan/pkg/report"
	"roomscan/pkg/scan"
	"roomscan/pkg/units"
)

// Handlers holds the route implementations and their collaborators.
type Handlers struct {
	store    *store.Store
	uploader *report.Client
	kernel   kernel.Kernel
	display  config.DisplayConfig
	logger   *zap.Logger
}

func NewHandlers(st *store.Store, uploader *report.Client, k kernel.Kernel, display config.DisplayConfig, logger *zap.Logger) *Handlers {
	return &Handlers{
		store:    st,
		uploader: uploader,
		kernel:   k,
		display:  display,
		logger:   logger,
	}
}

type extractRequest struct {
	scan.Snapshot
	// WallNames optionally overrides the generated per-wall display names,
	// positionally matched against the wall list.
	WallNames []string `json:"wall_names,omitempty"`
}

type extractResponse struct {
	ID         string                   `json:"id"`
	Dimensions dimension.RoomDimensions `json:"dimensions"`
	Payload    report.Payload           `json:"payload"`
	Warnings   []string                 `json:"warnings,omitempty"`
}

// Extract runs dimension extraction over the posted snapshot, persists
// the result and returns it with its new report id.
func (h *Handlers) Extract(c fiber.Ctx) error {
	if len(c.Body()) == 0 {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "empty body"})
	}

	var req extractRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid json"})
	}

	rd := dimension.Extract(req.Snapshot)

	names := req.WallNames
	if len(names) == 0 {
		names = defaultWallNames(len(rd.Walls))
	}
	payload := report.Build(rd, names)

	var warnings []string
	for _, w := range scan.Validate(req.Snapshot) {
		warnings = append(warnings, w.String())
	}

	id := uuid.NewString()
	rec := store.Report{
		ID:         id,
		CreatedAt:  time.Now(),
		Snapshot:   req.Snapshot,
		Dimensions: rd,
		Payload:    payload,
	}
	if err := h.store.Save(c.Context(), rec); err != nil {
		h.logger.Error("save report", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "failed to store report"})
	}

	h.logger.Info("extraction complete",
		zap.String("report_id", id),
		zap.Int("wall_count", rd.WallCount()),
		zap.Float64("floor_area_m2", rd.TotalFloorArea),
		zap.Int("warning_count", len(warnings)),
	)

	return c.JSON(extractResponse{
		ID:         id,
		Dimensions: rd,
		Payload:    payload,
		Warnings:   warnings,
	})
}

// defaultWallNames numbers walls for the report payload; naming is a
// presentation concern the engine itself does not own.
func defaultWallNames(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("Wall %d", i+1)
	}
	return names
}

// ListReports returns stored report ids, newest first.
func (h *Handlers) ListReports(c fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "50"))
	summaries, err := h.store.List(c.Context(), limit)
	if err != nil {
		h.logger.Error("list reports", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "failed to list reports"})
	}
	return c.JSON(fiber.Map{"reports": summaries})
}

// GetReport returns a stored report in full.
func (h *Handlers) GetReport(c fiber.Ctx) error {
	rec, err := h.loadReport(c)
	if rec == nil {
		return err
	}
	return c.JSON(rec)
}

type summaryResponse struct {
	ID            string `json:"id"`
	Units         string `json:"units"`
	FloorArea     string `json:"floor_area"`
	WallArea      string `json:"wall_area"`
	CeilingHeight string `json:"ceiling_height"`
	Volume        string `json:"volume"`
	WallCount     int    `json:"wall_count"`
	DoorCount     int    `json:"door_count"`
	WindowCount   int    `json:"window_count"`
}

// GetSummary returns a stored report formatted in the requested display
// unit (?units=feet&decimals=1). Defaults come from the service config.
func (h *Handlers) GetSummary(c fiber.Ctx) error {
	rec, err := h.loadReport(c)
	if rec == nil {
		return err
	}

	unit, parseErr := units.Parse(c.Query("units", h.display.Units))
	if parseErr != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": parseErr.Error()})
	}
	decimals, _ := strconv.Atoi(c.Query("decimals", strconv.Itoa(h.display.Decimals)))
	f := units.Formatter{Unit: unit, Decimals: decimals}

	rd := rec.Dimensions
	return c.JSON(summaryResponse{
		ID:            rec.ID,
		Units:         unit.String(),
		FloorArea:     rd.FormatFloorArea(f),
		WallArea:      rd.FormatWallArea(f),
		CeilingHeight: rd.FormatCeilingHeight(f),
		Volume:        rd.FormatVolume(f),
		WallCount:     rd.WallCount(),
		DoorCount:     rd.DoorCount(),
		WindowCount:   rd.WindowCount(),
	})
}

// GetMesh renders the stored snapshot's surfaces to a binary STL body.
func (h *Handlers) GetMesh(c fiber.Ctx) error {
	rec, err := h.loadReport(c)
	if rec == nil {
		return err
	}

	meshes, meshErr := mesher.MeshSnapshot(rec.Snapshot, h.kernel)
	if meshErr != nil {
		h.logger.Error("mesh snapshot", zap.String("report_id", rec.ID), zap.Error(meshErr))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "failed to mesh snapshot"})
	}

	var buf bytes.Buffer
	if err := mesher.WriteSTL(&buf, meshes); err != nil {
		h.logger.Error("write stl", zap.String("report_id", rec.ID), zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "failed to encode mesh"})
	}

	c.Set("Content-Type", "model/stl")
	c.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", rec.ID+".stl"))
	return c.Send(buf.Bytes())
}

// UploadReport pushes a stored report's payload to the report service.
func (h *Handlers) UploadReport(c fiber.Ctx) error {
	if h.uploader == nil {
		return c.Status(http.StatusServiceUnavailable).JSON(fiber.Map{"error": "upload endpoint not configured"})
	}

	rec, err := h.loadReport(c)
	if rec == nil {
		return err
	}

	remoteID, uploadErr := h.uploader.Upload(rec.ID, rec.Payload)
	if uploadErr != nil {
		return c.Status(http.StatusBadGateway).JSON(fiber.Map{"error": uploadErr.Error()})
	}
	return c.JSON(fiber.Map{"report_id": remoteID})
}

// loadReport resolves the :id path parameter against the store, writing
// the error response itself when the lookup fails.
func (h *Handlers) loadReport(c fiber.Ctx) (*store.Report, error) {
	id := c.Params("id")
	rec, err := h.store.Get(c.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "report not found"})
		}
		h.logger.Error("load report", zap.String("report_id", id), zap.Error(err))
		return nil, c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load report"})
	}
	return rec, nil
}

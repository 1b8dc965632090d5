package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/MosaabBleik/asset-manager/internal/cache"
	"github.com/MosaabBleik/asset-manager/internal/models"
	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type AssetHandler struct {
	DB          *gorm.DB
	RedisClient *redis.Client

	// StrictMerge switches Update from the compatibility merge (an empty
	// or zero field keeps the stored value) to a presence-based merge.
	StrictMerge bool
}

// assetPayload is the request body for Create and Update. Pointer fields
// distinguish an omitted key from a supplied value.
type assetPayload struct {
	Name     *string `json:"name"`
	Category *string `json:"category"`
	Quantity *int    `json:"quantity"`
}

func parseID(r *http.Request) (int, error) {
	return strconv.Atoi(mux.Vars(r)["id"])
}

func (h *AssetHandler) ListAssets(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if cached := cache.GetList(ctx, h.RedisClient); cached != "" {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(cached))
		return
	}

	assets := make([]models.Asset, 0)
	if err := h.DB.Find(&assets).Error; err != nil {
		log.Println("Error fetching assets:", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch assets")
		return
	}

	jsonBytes, err := json.Marshal(assets)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch assets")
		return
	}

	cache.SetList(ctx, h.RedisClient, jsonBytes)

	w.Header().Set("Content-Type", "application/json")
	w.Write(jsonBytes)
}

func (h *AssetHandler) CreateAsset(w http.ResponseWriter, r *http.Request) {
	var req assetPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	name := ""
	if req.Name != nil {
		name = strings.TrimSpace(*req.Name)
	}
	if name == "" {
		writeError(w, http.StatusBadRequest, "Name is required")
		return
	}

	asset := models.Asset{
		Name:     name,
		Category: req.Category,
		Quantity: req.Quantity,
	}
	if asset.Quantity == nil {
		one := 1
		asset.Quantity = &one
	}

	if err := h.DB.Create(&asset).Error; err != nil {
		log.Println("Error creating asset:", err)
		writeError(w, http.StatusInternalServerError, "Failed to create asset")
		return
	}

	cache.InvalidateList(r.Context(), h.RedisClient)

	writeJSON(w, http.StatusCreated, asset)
}

func (h *AssetHandler) GetAsset(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid asset ID")
		return
	}

	var asset models.Asset
	if err := h.DB.First(&asset, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeError(w, http.StatusNotFound, "Asset not found")
			return
		}
		log.Println("Error fetching asset:", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch asset")
		return
	}

	writeJSON(w, http.StatusOK, asset)
}

func (h *AssetHandler) UpdateAsset(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid asset ID")
		return
	}

	var req assetPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// Existence check before any write. Not atomic with the write below;
	// a lost race leaves the late write a no-op.
	var asset models.Asset
	if err := h.DB.First(&asset, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeError(w, http.StatusNotFound, "Asset not found")
			return
		}
		log.Println("Error fetching asset:", err)
		writeError(w, http.StatusInternalServerError, "Failed to update asset")
		return
	}

	if h.StrictMerge {
		if req.Name != nil {
			if strings.TrimSpace(*req.Name) == "" {
				writeError(w, http.StatusBadRequest, "Name is required")
				return
			}
			asset.Name = *req.Name
		}
		if req.Category != nil {
			asset.Category = req.Category
		}
		if req.Quantity != nil {
			asset.Quantity = req.Quantity
		}
	} else {
		// Compatibility merge: an empty string or zero counts as "not
		// supplied" and the stored value is kept.
		if req.Name != nil && *req.Name != "" {
			asset.Name = *req.Name
		}
		if req.Category != nil && *req.Category != "" {
			asset.Category = req.Category
		}
		if req.Quantity != nil && *req.Quantity != 0 {
			asset.Quantity = req.Quantity
		}
	}

	if err := h.DB.Save(&asset).Error; err != nil {
		log.Println("Error updating asset:", err)
		writeError(w, http.StatusInternalServerError, "Failed to update asset")
		return
	}

	cache.InvalidateList(r.Context(), h.RedisClient)

	writeJSON(w, http.StatusOK, asset)
}

func (h *AssetHandler) DeleteAsset(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid asset ID")
		return
	}

	var asset models.Asset
	if err := h.DB.First(&asset, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeError(w, http.StatusNotFound, "Asset not found")
			return
		}
		log.Println("Error fetching asset:", err)
		writeError(w, http.StatusInternalServerError, "Failed to delete asset")
		return
	}

	if err := h.DB.Delete(&models.Asset{}, id).Error; err != nil {
		log.Println("Error deleting asset:", err)
		writeError(w, http.StatusInternalServerError, "Failed to delete asset")
		return
	}

	cache.InvalidateList(r.Context(), h.RedisClient)

	writeJSON(w, http.StatusOK, map[string]string{"message": "Asset deleted successfully"})
}

func (h *AssetHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	ctx := context.Background()
	dbStatus := "ok"

	if err := h.DB.Exec("SELECT 1").Error; err != nil {
		dbStatus = "error"
	}

	status := map[string]string{
		"status":   "ok",
		"database": dbStatus,
	}

	if h.RedisClient != nil {
		redisStatus := "ok"
		if err := h.RedisClient.Ping(ctx).Err(); err != nil {
			redisStatus = "error"
		}
		status["redis"] = redisStatus
	}

	writeJSON(w, http.StatusOK, status)
}

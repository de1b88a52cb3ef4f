package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/vfg2006/business-dashboard-api/internal/domain"
	"github.com/vfg2006/business-dashboard-api/internal/usecases/brandasset"
)

const (
	megabyte        = 1 << 20
	multipartMemory = 32 * megabyte
)

func ListAssets(service *brandasset.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		limit, err := queryInt(r, "limit", 50)
		if err != nil {
			writeError(w, r, err, "fetching assets")
			return
		}

		result, err := service.ListAssets(r.Context(), brandasset.AssetQuery{
			Type:  optionalQuery(r, "asset_type"),
			Tags:  optionalQuery(r, "tags"),
			Limit: limit,
		})
		if err != nil {
			writeError(w, r, err, "fetching assets")
			return
		}

		writeJSON(w, http.StatusOK, result)
	})
}

func CreateAsset(service *brandasset.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var draft domain.AssetDraft
		if err := decodeBody(r, &draft); err != nil {
			writeError(w, r, err, "creating asset")
			return
		}

		asset, err := service.CreateAsset(r.Context(), draft)
		if err != nil {
			writeError(w, r, err, "creating asset")
			return
		}
		logCreated(r, "brand_asset", asset.ID)

		writeJSON(w, http.StatusOK, map[string]any{
			"message": "Brand asset created successfully",
			"asset":   asset,
		})
	})
}

// UploadAsset recebe o arquivo no campo multipart "file"; a leitura é limitada a
// um byte além do máximo para que o excesso seja detectado sem ler o corpo todo
func UploadAsset(service *brandasset.Service, maxUploadMB int64) http.Handler {
	maxBytes := maxUploadMB * megabyte

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxBytes+multipartMemory)

		if err := r.ParseMultipartForm(multipartMemory); err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				writeError(w, r, domain.NewValidationError("File too large. Maximum size is %dMB", maxUploadMB), "uploading file")
				return
			}
			writeError(w, r, brandasset.ErrNoFile, "uploading file")
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			writeError(w, r, brandasset.ErrNoFile, "uploading file")
			return
		}
		defer file.Close()

		data, err := io.ReadAll(io.LimitReader(file, maxBytes+1))
		if err != nil {
			writeError(w, r, fmt.Errorf("leitura do arquivo: %w", err), "uploading file")
			return
		}

		result, err := service.Upload(r.Context(), brandasset.UploadRequest{
			Filename:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Data:        data,
			Name:        r.FormValue("name"),
			AssetType:   r.FormValue("asset_type"),
			Tags:        r.FormValue("tags"),
			Description: r.FormValue("description"),
		})
		if err != nil {
			writeError(w, r, err, "uploading file")
			return
		}
		logCreated(r, "brand_asset", result.Asset.ID)

		writeJSON(w, http.StatusOK, map[string]any{
			"message":     "File uploaded successfully",
			"asset":       result.Asset,
			"upload_info": result.UploadInfo,
		})
	})
}

func GetAsset(service *brandasset.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		asset, err := service.Asset(r.Context(), id)
		if err != nil {
			writeError(w, r, err, "fetching asset")
			return
		}

		writeJSON(w, http.StatusOK, asset)
	})
}

func UpdateAsset(service *brandasset.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var update domain.AssetUpdate
		if err := decodeBody(r, &update); err != nil {
			writeError(w, r, err, "updating asset")
			return
		}

		result, err := service.UpdateAsset(r.Context(), id, update)
		if err != nil {
			writeError(w, r, err, "updating asset")
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"message":         "Asset updated successfully",
			"asset":           result.Asset,
			"updates_applied": result.Applied,
			"updated_at":      result.UpdatedAt,
		})
	})
}

func DeleteAsset(service *brandasset.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		deletedAt, err := service.DeleteAsset(r.Context(), id)
		if err != nil {
			writeError(w, r, err, "deleting asset")
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"message":    fmt.Sprintf("Asset %s deleted successfully", id),
			"deleted_at": deletedAt,
		})
	})
}

func AssetCollections() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, brandasset.Collections())
	})
}

func AssetUsageAnalytics() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		days, err := queryInt(r, "days", 30)
		if err != nil {
			writeError(w, r, err, "fetching usage analytics")
			return
		}

		writeJSON(w, http.StatusOK, brandasset.UsageAnalytics(days))
	})
}

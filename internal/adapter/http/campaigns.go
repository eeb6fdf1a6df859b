package httpadapter

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/juju/errors"
	"github.com/xeipuuv/gojsonschema"

	"adpulse/internal/core/domain"
)

const maxBodyBytes = 1 << 20

var (
	campaignRead = failure{
		notFound: "Campaign not found",
		invalid:  "Invalid date range",
		internal: "Failed to fetch campaign",
	}
	campaignList = failure{
		invalid:  "Invalid date range",
		internal: "Failed to fetch campaigns",
	}
	campaignWrite = failure{
		notFound: "Campaign not found",
		invalid:  "Invalid campaign data",
		internal: "Failed to save campaign",
	}
	campaignDelete = failure{
		notFound: "Campaign not found",
		internal: "Failed to delete campaign",
	}
)

// handleListCampaigns returns all campaigns, scaled to the optional
// `from`/`to` range.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	rng, err := parseRange(r)
	if err != nil {
		h.fail(w, r, err, campaignList)
		return
	}
	list, err := h.svc.Campaigns(r.Context(), rng)
	if err != nil {
		h.fail(w, r, err, campaignList)
		return
	}
	h.writeJSON(w, http.StatusOK, list)
}

// handleGetCampaign returns the stored campaign bound to the {id} path
// parameter. Unknown ids result in HTTP 404.
func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.Campaign(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, err, campaignRead)
		return
	}
	h.writeJSON(w, http.StatusOK, c)
}

// handleCreateCampaign validates the body against the campaign schema and
// stores it. The created campaign is returned with HTTP 201. Schema
// violations produce HTTP 400 without touching the store.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var in domain.CampaignInput
	if err := decodeValid(w, r, createCampaignSchema, &in); err != nil {
		h.fail(w, r, err, campaignWrite)
		return
	}
	c, err := h.svc.CreateCampaign(r.Context(), in)
	if err != nil {
		h.fail(w, r, err, campaignWrite)
		return
	}
	h.writeJSON(w, http.StatusCreated, c)
}

// handleUpdateCampaign applies a partial update. Absent or null fields are
// left unchanged. Unknown ids result in HTTP 404, invalid bodies in 400.
func (h *Handler) handleUpdateCampaign(w http.ResponseWriter, r *http.Request) {
	var patch domain.CampaignPatch
	if err := decodeValid(w, r, patchCampaignSchema, &patch); err != nil {
		h.fail(w, r, err, campaignWrite)
		return
	}
	c, err := h.svc.UpdateCampaign(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		h.fail(w, r, err, campaignWrite)
		return
	}
	h.writeJSON(w, http.StatusOK, c)
}

// handleDeleteCampaign removes a campaign and answers HTTP 204.
func (h *Handler) handleDeleteCampaign(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteCampaign(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.fail(w, r, err, campaignDelete)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// decodeValid reads the request body, validates it against schema and
// decodes it into dst.
func decodeValid(w http.ResponseWriter, r *http.Request, schema *gojsonschema.Schema, dst any) error {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return errors.NewBadRequest(err, "reading body")
	}
	if err = validate(schema, body); err != nil {
		return err
	}
	if err = json.Unmarshal(body, dst); err != nil {
		return errors.NewNotValid(err, "decoding body")
	}
	return nil
}

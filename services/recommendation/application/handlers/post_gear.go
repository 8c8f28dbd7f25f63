package handlers

import (
	"net/http"

	"github.com/ghuser/packstack/pkg/auth"
	"github.com/ghuser/packstack/pkg/errhttp"
	"github.com/ghuser/packstack/pkg/httpx"
	pkgvalidator "github.com/ghuser/packstack/pkg/validator"
	appsvcs "github.com/ghuser/packstack/services/recommendation/application/services"
)

// PostGearHandler handles POST /recommendations/gear requests.
type PostGearHandler struct {
	svc *appsvcs.Services
}

func NewPostGearHandler(svc *appsvcs.Services) *PostGearHandler {
	return &PostGearHandler{svc: svc}
}

// Execute recommends gear for a trip based on the caller's inventory.
//
//	@Summary	Recommend gear for a trip
//	@Tags		recommendations
//	@Accept		json
//	@Produce	json
//	@Param		body	body		GearRecommendationRequest	true	"Trip parameters"
//	@Success	200		{object}	GearRecommendationResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	401		{object}	ErrorResponse
//	@Failure	422		{object}	ErrorResponse
//	@Failure	502		{object}	ErrorResponse
//	@Failure	503		{object}	ErrorResponse
//	@Security	BearerAuth
//	@Router		/recommendations/gear [post]
func (h *PostGearHandler) Execute(w http.ResponseWriter, r *http.Request) {
	owner, err := auth.OwnerIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}
	req, ok := pkgvalidator.ValidateRequest[GearRecommendationRequest](w, r)
	if !ok {
		return
	}

	res, err := h.svc.Recommendation.Recommend(r.Context(), owner, req.trip())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, newGearRecommendationResponse(res))
}

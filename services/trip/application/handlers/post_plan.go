package handlers

import (
	"net/http"

	"github.com/ghuser/packstack/pkg/auth"
	"github.com/ghuser/packstack/pkg/errhttp"
	"github.com/ghuser/packstack/pkg/httpx"
	pkgvalidator "github.com/ghuser/packstack/pkg/validator"
	appsvcs "github.com/ghuser/packstack/services/trip/application/services"
)

// PostPlanHandler handles POST /trip/plan requests.
type PostPlanHandler struct {
	svc *appsvcs.Services
}

func NewPostPlanHandler(svc *appsvcs.Services) *PostPlanHandler {
	return &PostPlanHandler{svc: svc}
}

// Execute starts a draft meal plan with four empty slots per trip day.
//
//	@Summary		Create meal plan
//	@Description	Drafts expire after MEAL_PLAN_TTL without writes.
//	@Tags			trip
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreatePlanRequest	true	"Trip dates"
//	@Success		201		{object}	PlanResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/trip/plan [post]
func (h *PostPlanHandler) Execute(w http.ResponseWriter, r *http.Request) {
	owner, err := auth.OwnerIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	req, ok := pkgvalidator.ValidateRequest[CreatePlanRequest](w, r)
	if !ok {
		return
	}

	plan, err := h.svc.Plan.Create(r.Context(), owner, appsvcs.CreatePlanInput{
		Name:      req.Name,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.Created(w, "/api/trip/plan/"+plan.ID.String(), newPlanResponse(plan))
}

package handler

import (
	"strings"

	"github.com/MirrorChyan/ota-backend/internal/handler/response"
	"github.com/MirrorChyan/ota-backend/internal/logic"
	"github.com/MirrorChyan/ota-backend/internal/logic/misc"
	"github.com/MirrorChyan/ota-backend/internal/model"
	"github.com/MirrorChyan/ota-backend/internal/pkg/validator"
	"github.com/gofiber/fiber/v2"
)

type AcquisitionHandler struct {
	acquisitionLogic *logic.AcquisitionLogic
}

func NewAcquisitionHandler(acquisitionLogic *logic.AcquisitionLogic) *AcquisitionHandler {
	return &AcquisitionHandler{
		acquisitionLogic: acquisitionLogic,
	}
}

func (h *AcquisitionHandler) Register(r fiber.Router) {
	// For Client
	r.Get("/updateCheck", h.UpdateCheck)
	r.Get("/isUpdateAble", h.IsUpdateAble)
}

func (h *AcquisitionHandler) UpdateCheck(c *fiber.Ctx) error {

	var req model.UpdateCheckRequest
	if err := validator.ValidateQuery(c, &req); err != nil {
		return err
	}
	req.Tags = splitTags(req.RawTags)

	result, err := h.acquisitionLogic.UpdateCheck(c.UserContext(), &req)
	if err != nil {
		return err
	}

	resp := response.Success(toResponseData(result))
	return c.Status(fiber.StatusOK).JSON(resp)
}

func (h *AcquisitionHandler) IsUpdateAble(c *fiber.Ctx) error {

	var req model.IsUpdateAbleRequest
	if err := validator.ValidateQuery(c, &req); err != nil {
		return err
	}

	ok := h.acquisitionLogic.IsUpdateAble(req.ClientUniqueID, req.PackageHash, req.Rollout, splitTags(req.RawTags))

	return c.Status(fiber.StatusOK).JSON(response.Success(ok))
}

func toResponseData(r *model.UpdateCheckResult) *model.UpdateCheckResponseData {
	data := &model.UpdateCheckResponseData{
		IsAvailable: r.IsAvailable,
	}
	if !r.IsAvailable {
		return data
	}

	data.PackageHash = r.PackageHash
	data.Label = r.Label
	data.AppVersion = r.AppVersion
	data.Description = r.Description
	data.IsMandatory = r.IsMandatory
	data.PackageSize = r.PackageSize
	data.DownloadURL = r.DownloadURL
	if r.Delivery != nil {
		data.UpdateType = r.Delivery.Type.String()
		data.DiffSourceHash = r.Delivery.SourcePackageHash
	}
	return data
}

// splitTags reads "a,b" and drops blanks, nil when nothing is left.
func splitTags(raw string) []string {
	var tags []string
	for _, t := range strings.Split(raw, misc.TagSeparator) {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

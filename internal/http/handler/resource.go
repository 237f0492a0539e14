package handler

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"viscart/internal/attachment"
	"viscart/internal/repository"
	"viscart/internal/service"
)

// mutationResponse wraps a write result together with the attachment
// cleanup report so callers can surface purge warnings.
type mutationResponse[T any] struct {
	Data  *T                        `json:"data"`
	Files attachment.DeletionReport `json:"files"`
}

type deleteResponse struct {
	Message string                    `json:"message"`
	Files   attachment.DeletionReport `json:"files"`
}

type bulkDeleteRequest struct {
	IDs []string `json:"ids"`
}

// CreateResource decodes a record over the type's defaults and persists it.
func CreateResource[T, P any](svc *service.Resource[T, P]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rec := svc.NewRecord()
		if err := c.BodyParser(rec); err != nil {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "malformed request body")
		}
		created, err := svc.Create(c.UserContext(), rec)
		if err != nil {
			return writeServiceError(c, svc.Kind(), err)
		}
		return c.Status(fiber.StatusCreated).JSON(created)
	}
}

// ListResources returns matching records, optionally paginated and searched.
//
// Query parameters:
// - page, limit: both > 0 switches the response to one page with meta
// - searchText: case-insensitive substring match
// - searchFields: comma-separated field names; defaults per type
func ListResources[T, P any](svc *service.Resource[T, P]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var q repository.ListQuery
		if v := c.Query("page"); v != "" {
			page, err := strconv.Atoi(v)
			if err != nil {
				return writeError(c, fiber.StatusBadRequest, "INVALID_PAGE", "invalid page")
			}
			q.Page = page
		}
		if v := c.Query("limit"); v != "" {
			limit, err := strconv.Atoi(v)
			if err != nil {
				return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
			}
			q.Limit = limit
		}
		q.SearchText = c.Query("searchText")
		if v := c.Query("searchFields"); v != "" {
			for _, f := range strings.Split(v, ",") {
				if f = strings.TrimSpace(f); f != "" {
					q.SearchFields = append(q.SearchFields, f)
				}
			}
		}

		res, err := svc.List(c.UserContext(), q)
		if err != nil {
			return writeServiceError(c, svc.Kind(), err)
		}
		return c.JSON(res)
	}
}

// GetResource returns one record by id.
func GetResource[T, P any](svc *service.Resource[T, P]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rec, err := svc.Get(c.UserContext(), c.Params("id"))
		if err != nil {
			return writeServiceError(c, svc.Kind(), err)
		}
		return c.JSON(rec)
	}
}

// GetResourceBySlug returns one record by its slug.
func GetResourceBySlug[T, P any](svc *service.Resource[T, P]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rec, err := svc.GetBySlug(c.UserContext(), c.Params("slug"))
		if err != nil {
			return writeServiceError(c, svc.Kind(), err)
		}
		return c.JSON(rec)
	}
}

// GetFirstResource returns the oldest record, or null when none exists.
// Used by singleton types such as site settings.
func GetFirstResource[T, P any](svc *service.Resource[T, P]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rec, err := svc.GetFirst(c.UserContext())
		if err != nil {
			return writeServiceError(c, svc.Kind(), err)
		}
		return c.JSON(fiber.Map{"data": rec})
	}
}

// UpdateResource merges a partial patch over the record; fields absent
// from the body are left untouched.
func UpdateResource[T, P any](svc *service.Resource[T, P]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		patch := new(P)
		if err := c.BodyParser(patch); err != nil {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "malformed request body")
		}
		updated, report, err := svc.Update(c.UserContext(), c.Params("id"), patch)
		if err != nil {
			return writeServiceError(c, svc.Kind(), err)
		}
		return c.JSON(mutationResponse[T]{Data: updated, Files: report})
	}
}

// DeleteResource removes one record and its attachment files.
func DeleteResource[T, P any](svc *service.Resource[T, P]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		report, err := svc.Delete(c.UserContext(), c.Params("id"))
		if err != nil {
			return writeServiceError(c, svc.Kind(), err)
		}
		return c.JSON(deleteResponse{
			Message: svc.Kind() + " deleted",
			Files:   report,
		})
	}
}

// BulkDeleteResources removes every record named in the request body.
func BulkDeleteResources[T, P any](svc *service.Resource[T, P]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req bulkDeleteRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "malformed request body")
		}
		if len(req.IDs) == 0 {
			return writeError(c, fiber.StatusBadRequest, "VALIDATION_ERROR", "ids is required")
		}
		res, err := svc.DeleteMany(c.UserContext(), req.IDs)
		if err != nil {
			return writeServiceError(c, svc.Kind(), err)
		}
		return c.JSON(res)
	}
}

// RegisterResource mounts the uniform CRUD routes for one content type
// on the given router group. The slug lookup is registered only for
// types that carry one.
func RegisterResource[T, P any](r fiber.Router, svc *service.Resource[T, P]) {
	r.Post("/", CreateResource(svc))
	r.Get("/", ListResources(svc))
	r.Post("/bulk-delete", BulkDeleteResources(svc))
	if svc.HasSlug() {
		r.Get("/slug/:slug", GetResourceBySlug(svc))
	}
	r.Get("/:id", GetResource(svc))
	r.Patch("/:id", UpdateResource(svc))
	r.Delete("/:id", DeleteResource(svc))
}

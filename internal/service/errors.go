package service

import "github.com/gofiber/fiber/v2"

// Domain failures are *fiber.Error sentinels so the HTTP status travels with
// the error and the middleware can render the envelope without a mapping
// table. Compare with errors.Is.
var (
	ErrSectionNotFound    = fiber.NewError(fiber.StatusNotFound, "Section not found")
	ErrParentNotFound     = fiber.NewError(fiber.StatusNotFound, "Parent section not found")
	ErrQuestionNotFound   = fiber.NewError(fiber.StatusNotFound, "Question not found")
	ErrSessionNotFound    = fiber.NewError(fiber.StatusNotFound, "Session not found")
	ErrInvalidDepth       = fiber.NewError(fiber.StatusBadRequest, "Cannot nest a subsection under another subsection. Maximum 2 levels allowed.")
	ErrInvalidSelfParent  = fiber.NewError(fiber.StatusBadRequest, "Section cannot be its own parent")
	ErrNoSectionsSelected = fiber.NewError(fiber.StatusBadRequest, "At least one section must be selected")
	ErrNoSectionsFound    = fiber.NewError(fiber.StatusNotFound, "No sections found")
	ErrEmptyContent       = fiber.NewError(fiber.StatusBadRequest, "Selected sections have no content")
	ErrEmptyRecall        = fiber.NewError(fiber.StatusBadRequest, "No recall content provided")
	ErrGenerationFailed   = fiber.NewError(fiber.StatusInternalServerError, "Failed to generate questions")
)

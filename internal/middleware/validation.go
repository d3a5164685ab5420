package middleware

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/sagarvizla/indus-creator-portal/internal/model"
)

// Field limits matching schema constraints and provider ID shapes.
const (
	MaxChannelInputLen = 256 // raw IDs, links, or handles
	MaxVideoIDLen      = 16  // YouTube video IDs are 11 chars today
	MinYear            = 2005
	MaxYear            = 2100
)

var (
	// videoIDRe matches YouTube video IDs: alphanumeric, dash, underscore.
	videoIDRe = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
)

// ErrorResponse is a helper that returns a standard API error response.
func ErrorResponse(c fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": fiber.Map{
			"code":    code,
			"message": message,
		},
	})
}

// ValidateChannelInput bounds the raw binding input before the resolver
// sees it. Pattern matching itself belongs to the resolver.
func ValidateChannelInput(input string) (string, string) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", "input is required"
	}
	if len(input) > MaxChannelInputLen {
		return "", "input must be at most 256 characters"
	}
	return input, ""
}

// ValidateVideoID checks that a video ID is well-formed.
func ValidateVideoID(id string) (string, string) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", "videoId is required"
	}
	if len(id) > MaxVideoIDLen {
		return "", "videoId must be at most 16 characters"
	}
	if !videoIDRe.MatchString(id) {
		return "", "videoId contains invalid characters"
	}
	return id, ""
}

// ValidateMonth parses a 0-based month index.
func ValidateMonth(raw string) (int, string) {
	if raw == "" {
		return 0, "month is required"
	}
	month, err := strconv.Atoi(raw)
	if err != nil || month < 0 || month > 11 {
		return 0, "month must be an integer between 0 and 11"
	}
	return month, ""
}

// ValidateYear parses a calendar year within sane bounds.
func ValidateYear(raw string) (int, string) {
	if raw == "" {
		return 0, "year is required"
	}
	year, err := strconv.Atoi(raw)
	if err != nil || year < MinYear || year > MaxYear {
		return 0, "year must be a four-digit year"
	}
	return year, ""
}

// ValidateFormat checks a creator-assigned format tag.
func ValidateFormat(raw string) (model.Format, string) {
	format := model.Format(strings.ToUpper(strings.TrimSpace(raw)))
	if !model.ValidFormats[format] {
		return "", "format must be one of: VIDEO, SHORTS, LIVE"
	}
	return format, ""
}

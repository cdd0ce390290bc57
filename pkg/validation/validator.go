package validation

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	// validate is a singleton validator instance
	validate *validator.Validate

	// Validation constants
	MaxFrameIndex   = 100_000
	MaxCoordinate   = 1_000_000.0
	MaxExportWidth  = 16384
	MaxExportHeight = 16384
)

func init() {
	validate = validator.New()
}

// Struct validates any value with validate tags through the shared
// validator and reports the first failure in readable form.
func Struct(v any) error {
	return formatValidationError(validate.Struct(v))
}

// NodeRequest asks for a node at (X, Y) in frame Frame.
type NodeRequest struct {
	Frame int     `json:"frame" validate:"min=0,max=100000"`
	X     float64 `json:"x" validate:"gte=-1000000,lte=1000000"`
	Y     float64 `json:"y" validate:"gte=-1000000,lte=1000000"`
}

// NodeRefRequest addresses an existing node, optionally with a new position.
type NodeRefRequest struct {
	Frame int     `json:"frame" validate:"min=0,max=100000"`
	Node  int     `json:"node" validate:"min=0"`
	X     float64 `json:"x" validate:"gte=-1000000,lte=1000000"`
	Y     float64 `json:"y" validate:"gte=-1000000,lte=1000000"`
}

// EdgeRequest asks for an edge between two nodes of one frame.
type EdgeRequest struct {
	Frame int    `json:"frame" validate:"min=0,max=100000"`
	From  int    `json:"from" validate:"min=0"`
	To    int    `json:"to" validate:"min=0"`
	Kind  string `json:"kind" validate:"required,oneof=line circle"`
}

// ExportRequest describes one export run.
type ExportRequest struct {
	Dir    string `json:"dir" validate:"required"`
	Format string `json:"format" validate:"required,oneof=png svg"`
	Width  int    `json:"width" validate:"min=1,max=16384"`
	Height int    `json:"height" validate:"min=1,max=16384"`
}

// ValidateNodeRequest validates a node creation request
func ValidateNodeRequest(req *NodeRequest) error {
	if req == nil {
		return errors.New("node request cannot be nil")
	}
	return Struct(req)
}

// ValidateNodeRefRequest validates a request that targets an existing node
func ValidateNodeRefRequest(req *NodeRefRequest) error {
	if req == nil {
		return errors.New("node request cannot be nil")
	}
	return Struct(req)
}

// ValidateEdgeRequest validates an edge creation request
func ValidateEdgeRequest(req *EdgeRequest) error {
	if req == nil {
		return errors.New("edge request cannot be nil")
	}
	req.Kind = strings.ToLower(strings.TrimSpace(req.Kind))
	if err := Struct(req); err != nil {
		return err
	}
	if req.From == req.To {
		return fmt.Errorf("To: must differ from From (%d)", req.From)
	}
	return nil
}

// ValidateExportRequest validates an export request
func ValidateExportRequest(req *ExportRequest) error {
	if req == nil {
		return errors.New("export request cannot be nil")
	}
	req.Format = strings.ToLower(strings.TrimSpace(req.Format))
	if err := Struct(req); err != nil {
		return err
	}
	if filepath.Clean(req.Dir) == string(filepath.Separator) {
		return errors.New("Dir: refusing to export into the filesystem root")
	}
	return nil
}

// ValidateFrameIndex checks a frame index supplied by a user
func ValidateFrameIndex(i int) error {
	if i < 0 {
		return fmt.Errorf("frame index must not be negative, got %d", i)
	}
	if i > MaxFrameIndex {
		return fmt.Errorf("frame index must not exceed %d, got %d", MaxFrameIndex, i)
	}
	return nil
}

// formatValidationError converts validator errors to a more user-friendly format
func formatValidationError(err error) error {
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	// Return the first validation error in a user-friendly format
	for _, e := range validationErrs {
		field := e.Field()
		param := e.Param()

		switch e.Tag() {
		case "required":
			return fmt.Errorf("%s: field is required", field)
		case "min", "gte":
			return fmt.Errorf("%s: must be at least %s", field, param)
		case "max", "lte":
			return fmt.Errorf("%s: must not exceed %s", field, param)
		case "oneof":
			return fmt.Errorf("%s: must be one of [%s], got %v", field, param, e.Value())
		default:
			return fmt.Errorf("%s: validation failed (%s)", field, e.Tag())
		}
	}

	return err
}

package http

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// SummarizeRequest is the body of POST /docs/:id/summarize.
type SummarizeRequest struct {
	Mode string `json:"mode" validate:"omitempty,oneof=extractive abstractive"`
}

// AskRequest is the body of POST /docs/:id/ask.
type AskRequest struct {
	Question string `json:"question" validate:"required"`
	K        int    `json:"k" validate:"omitempty,gte=1,lte=20"`
}

type Validater interface {
	Validate() map[string]string
}

func (r *SummarizeRequest) Validate() map[string]string { return validateStruct(r) }

func (r *AskRequest) Validate() map[string]string { return validateStruct(r) }

func validateStruct(v any) map[string]string {
	validate := validator.New()
	if err := validate.Struct(v); err != nil {
		errs := err.(validator.ValidationErrors)
		fields := make(map[string]string)
		for _, e := range errs {
			fields[e.Field()] = fmt.Sprintf("failed on '%s' tag", e.Tag())
		}
		return fields
	}
	return nil
}

package validators

import (
	"context"
	"strings"

	"github.com/promptkeep/prompt-keeper/models"
)

const (
	FieldTitle     = "title"
	FieldContent   = "content"
	FieldTags      = "tags"
	FieldVariables = "variables"
	FieldText      = "text"
	FieldName      = "name"
)

var allowedVariableTypes = []models.VariableType{
	models.VariableText,
	models.VariableNumber,
	models.VariableSelect,
}

// PromptValidator enforces the structural rules of prompts, comments,
// and categories before they reach the store.
type PromptValidator struct {
}

func NewPromptValidator() Validator {
	return &PromptValidator{}
}

func (v *PromptValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Prompt:
		return v.validatePrompt(ctx, value, fields...)
	case *models.Prompt:
		return v.validatePrompt(ctx, *value, fields...)

	case models.Comment:
		return v.validateComment(ctx, value, fields...)
	case *models.Comment:
		return v.validateComment(ctx, *value, fields...)

	case models.Category:
		return v.validateCategory(ctx, value, fields...)
	case *models.Category:
		return v.validateCategory(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func isValidVariableType(vt models.VariableType) bool {
	for _, t := range allowedVariableTypes {
		if vt == t {
			return true
		}
	}
	return false
}

func (v *PromptValidator) validatePrompt(_ context.Context, prompt models.Prompt, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldContent, FieldTags, FieldVariables}
	}

	for _, field := range fields {
		switch field {
		case FieldTitle:
			if strings.TrimSpace(prompt.Title) == "" {
				return ErrEmptyTitle
			}
		case FieldContent:
			if strings.TrimSpace(prompt.Content) == "" {
				return ErrEmptyContent
			}
		case FieldTags:
			for _, tag := range prompt.Tags {
				if strings.TrimSpace(tag) == "" {
					return ErrEmptyTag
				}
			}
		case FieldVariables:
			for _, variable := range prompt.Variables {
				if strings.TrimSpace(variable.Name) == "" {
					return ErrEmptyVariableName
				}
				if variable.Type != "" && !isValidVariableType(variable.Type) {
					return ErrInvalidVariableType
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *PromptValidator) validateComment(_ context.Context, comment models.Comment, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldText}
	}

	for _, field := range fields {
		switch field {
		case FieldText:
			if strings.TrimSpace(comment.Text) == "" {
				return ErrEmptyCommentText
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *PromptValidator) validateCategory(_ context.Context, category models.Category, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName}
	}

	for _, field := range fields {
		switch field {
		case FieldName:
			if strings.TrimSpace(category.Name) == "" {
				return ErrEmptyCategoryName
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

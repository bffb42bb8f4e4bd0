package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/mkboutique/backend/internal/interfaces/http/dto"
)

// SetupValidator makes validation errors report JSON field names
func SetupValidator() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
			}
			if name == "" {
				name = strings.SplitN(fld.Tag.Get("uri"), ",", 2)[0]
			}
			return name
		})
	}
}

// FormatBindingError turns a gin binding error into the API error body
func FormatBindingError(err error) dto.ErrorResponse {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		msgs := make([]string, 0, len(validationErrors))
		for _, e := range validationErrors {
			msgs = append(msgs, getValidationMessage(e))
		}
		return dto.NewErrorResponse(dto.ErrCodeValidation, strings.Join(msgs, " "))
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		return dto.NewErrorResponse(dto.ErrCodeInvalidJSON, "Le corps de la requête n'est pas un JSON valide.")
	case errors.As(err, &typeErr):
		return dto.NewErrorResponse(dto.ErrCodeInvalidJSON,
			fmt.Sprintf("Type invalide pour le champ '%s'.", typeErr.Field))
	case errors.Is(err, io.EOF):
		return dto.NewErrorResponse(dto.ErrCodeInvalidJSON, "Le corps de la requête est vide.")
	}
	return dto.NewErrorResponse(dto.ErrCodeBadRequest, "Requête invalide.")
}

// HandleValidationError answers 400 with the formatted binding error
func HandleValidationError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, FormatBindingError(err))
}

func getValidationMessage(e validator.FieldError) string {
	field := e.Field()
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("Le champ '%s' est obligatoire.", field)
	case "email":
		return fmt.Sprintf("Le champ '%s' doit être une adresse email valide.", field)
	case "min":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("Le champ '%s' doit contenir au moins %s caractères.", field, e.Param())
		}
		return fmt.Sprintf("Le champ '%s' doit être au moins %s.", field, e.Param())
	case "max":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("Le champ '%s' ne peut pas dépasser %s caractères.", field, e.Param())
		}
		return fmt.Sprintf("Le champ '%s' doit être au plus %s.", field, e.Param())
	case "oneof":
		return fmt.Sprintf("Le champ '%s' doit valoir l'une des valeurs : %s.", field, e.Param())
	case "gt":
		return fmt.Sprintf("Le champ '%s' doit être supérieur à %s.", field, e.Param())
	case "gte":
		return fmt.Sprintf("Le champ '%s' doit être supérieur ou égal à %s.", field, e.Param())
	case "lte":
		return fmt.Sprintf("Le champ '%s' doit être inférieur ou égal à %s.", field, e.Param())
	default:
		return fmt.Sprintf("Le champ '%s' est invalide.", field)
	}
}

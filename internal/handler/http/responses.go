package http

import (
	"net/http"

	"github.com/akmalmp/go-contacts/internal/utils"
	"github.com/akmalmp/go-contacts/models"
)

func writeData(w http.ResponseWriter, data any, statusCode int) {
	utils.WriteJSON(w, models.DataResponse{Data: data}, statusCode)
}

func writePage(w http.ResponseWriter, data any, meta *models.PageMeta) {
	utils.WriteJSON(w, models.DataResponse{Data: data, Meta: meta}, http.StatusOK)
}

// writeMessageError emits the failure envelope keyed under the literal
// "message" key, used for errors not tied to a single request field.
func writeMessageError(w http.ResponseWriter, statusCode int, message string) {
	utils.WriteJSON(w, models.ErrorResponse{
		Errors: map[string][]string{"message": {message}},
	}, statusCode)
}

func writeFieldError(w http.ResponseWriter, statusCode int, field, message string) {
	utils.WriteJSON(w, models.ErrorResponse{
		Errors: map[string][]string{field: {message}},
	}, statusCode)
}

func writeValidationErrors(w http.ResponseWriter, verrs models.ValidationErrors) {
	utils.WriteJSON(w, models.ErrorResponse{Errors: verrs}, http.StatusBadRequest)
}

package api

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"

	"github.com/hackgods/clinic-scheduling/internal/clinic"
)

var validate = validator.New()

func decodeAndValidate(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return err
	}
	return validate.Struct(dst)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, details string) {
	writeJSON(w, status, ErrorResponse{Error: code, Details: details})
}

func writeRequestError(w http.ResponseWriter, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		writeError(w, http.StatusBadRequest, "validation_failed", verrs.Error())
		return
	}
	writeError(w, http.StatusBadRequest, "invalid_request_body", "could not parse JSON")
}

// writeClinicError maps clinic failures to HTTP statuses.
func writeClinicError(w http.ResponseWriter, err error) {
	code := clinic.Code(err)

	var mismatch *clinic.SpecialtyMismatchError
	if errors.As(err, &mismatch) {
		writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
			Error:            code,
			Details:          err.Error(),
			OfferedSpecialty: mismatch.Offered,
		})
		return
	}

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, clinic.ErrInvalidValue),
		errors.Is(err, clinic.ErrInvalidPrescription):
		status = http.StatusBadRequest
	case errors.Is(err, clinic.ErrPatientNotFound),
		errors.Is(err, clinic.ErrDoctorNotFound):
		status = http.StatusNotFound
	case errors.Is(err, clinic.ErrDuplicatePatient),
		errors.Is(err, clinic.ErrDuplicateDoctor),
		errors.Is(err, clinic.ErrSlotTaken):
		status = http.StatusConflict
	case errors.Is(err, clinic.ErrDoctorUnavailable),
		errors.Is(err, clinic.ErrInvalidSpecialty):
		status = http.StatusUnprocessableEntity
	}
	writeError(w, status, code, err.Error())
}

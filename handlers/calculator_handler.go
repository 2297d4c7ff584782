package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/upb/solid-lab/app"
	"github.com/upb/solid-lab/services/calculator"
	"github.com/upb/solid-lab/utils"
)

// CalcRequest is the request body for the calculator endpoints. Pointer
// fields distinguish "missing" from a legitimate zero operand.
type CalcRequest struct {
	X *float64 `json:"x" validate:"required"`
	Y *float64 `json:"y" validate:"required"`
}

// CalcResponse is the response body for the calculator endpoints. The
// provider name is reported so a rebinding is observable from outside.
type CalcResponse struct {
	Operation string  `json:"operation"`
	Result    float64 `json:"result"`
	Provider  string  `json:"provider"`
}

// AddHandler handles POST /api/v1/calc/add
func AddHandler(deps *app.Dependencies) http.HandlerFunc {
	return calcHandler(deps, "add", (*calculator.Service).Add)
}

// MultiplyHandler handles POST /api/v1/calc/multiply
func MultiplyHandler(deps *app.Dependencies) http.HandlerFunc {
	return calcHandler(deps, "multiply", (*calculator.Service).Multiply)
}

// calcHandler decodes and validates the request, invokes the bound
// consumer's operation and writes the result. The handler never knows
// which provider is behind the consumer.
func calcHandler(deps *app.Dependencies, operation string, op func(*calculator.Service, float64, float64) (float64, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CalcRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			_ = utils.WriteBadRequest(w, "invalid JSON body", nil)
			return
		}

		if err := utils.ValidateStruct(req); err != nil {
			HandleValidationError(w, err, deps.Logger)
			return
		}

		result, err := op(deps.Calculator, *req.X, *req.Y)
		if err != nil {
			HandleServiceError(w, err, deps.Logger)
			return
		}

		_ = utils.WriteOK(w, CalcResponse{
			Operation: operation,
			Result:    result,
			Provider:  deps.Calculator.ProviderName(),
		})
	}
}

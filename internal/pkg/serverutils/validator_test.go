package serverutils

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"askaprilai-be/internal/pkg/apperror"
)

type sampleRequest struct {
	FirstName string             `json:"firstName" validate:"required"`
	Email     string             `json:"email" validate:"required"`
	Answers   map[string]float64 `json:"answers" validate:"required"`
}

func TestValidateRequestValid(t *testing.T) {
	err := ValidateRequest(&sampleRequest{
		FirstName: "Jordan",
		Email:     "jordan@example.com",
		Answers:   map[string]float64{"q1": 3},
	})
	assert.NoError(t, err)
}

func TestValidateRequestMissingFields(t *testing.T) {
	err := ValidateRequest(&sampleRequest{Email: "jordan@example.com"})
	require.Error(t, err)

	var appErr *apperror.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperror.KindValidation, appErr.Kind)
	assert.Contains(t, appErr.Message, "firstName")
	assert.Contains(t, appErr.Message, "answers")
	assert.ElementsMatch(t, []string{"firstName", "answers"}, appErr.Fields)
}

func TestSuccessResponseEnvelope(t *testing.T) {
	res := SuccessResponse("saved", map[string]string{"id": "abc"})
	assert.True(t, res.Success)
	assert.Equal(t, 200, res.Code)
	assert.Equal(t, "saved", res.Message)
	assert.Equal(t, "abc", res.Data["id"])
}

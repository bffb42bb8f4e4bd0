package dto

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/mkboutique/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Every domain code must land on a wire code with a deliberate status.
func TestDomainCodes_ResolveToStatus(t *testing.T) {
	cases := map[string]struct {
		wire   string
		status int
	}{
		shared.CodeNotFound:           {ErrCodeNotFound, http.StatusNotFound},
		shared.CodeValidation:         {ErrCodeValidation, http.StatusBadRequest},
		shared.CodeAlreadyExists:      {ErrCodeAlreadyExists, http.StatusConflict},
		shared.CodeConflict:           {ErrCodeConflict, http.StatusConflict},
		shared.CodeUnauthorized:       {ErrCodeUnauthorized, http.StatusUnauthorized},
		shared.CodeForbidden:          {ErrCodeForbidden, http.StatusForbidden},
		shared.CodeInvalidCredentials: {ErrCodeInvalidCredentials, http.StatusUnauthorized},
		shared.CodeAccountDisabled:    {ErrCodeAccountDisabled, http.StatusForbidden},
	}

	for domainCode, want := range cases {
		t.Run(domainCode, func(t *testing.T) {
			wire := NormalizeErrorCode(domainCode)
			assert.Equal(t, want.wire, wire)
			assert.Equal(t, want.status, GetHTTPStatus(wire))
		})
	}
}

func TestTransportCodes(t *testing.T) {
	assert.Equal(t, http.StatusRequestEntityTooLarge, GetHTTPStatus(ErrCodeRequestTooLarge))
	assert.Equal(t, http.StatusTooManyRequests, GetHTTPStatus(ErrCodeRateLimited))
	assert.Equal(t, http.StatusUnauthorized, GetHTTPStatus(ErrCodeTokenRevoked))
	assert.Equal(t, http.StatusBadRequest, GetHTTPStatus(ErrCodeInvalidJSON))
}

func TestUnmappedCodes(t *testing.T) {
	assert.Equal(t, ErrCodeNotFound, NormalizeErrorCode(ErrCodeNotFound), "wire codes pass through")
	assert.Equal(t, "SOMETHING_ELSE", NormalizeErrorCode("SOMETHING_ELSE"))
	assert.Equal(t, http.StatusInternalServerError, GetHTTPStatus("SOMETHING_ELSE"))
}

func TestErrorResponse_JSON(t *testing.T) {
	data, err := json.Marshal(NewErrorResponse(ErrCodeNotFound, "Article avec l'ID 7 introuvable."))
	require.NoError(t, err)
	assert.JSONEq(t, `{"message":"Article avec l'ID 7 introuvable.","code":"ERR_NOT_FOUND"}`, string(data))
}

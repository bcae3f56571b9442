package handler

import (
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

// The mission statement caps at 250 characters; exactly 250 must pass and
// 251 must fail, on both the create and the update shape.
func TestBrandRequestMissionStatementBoundary(t *testing.T) {
	v := validator.New()

	atLimit := strings.Repeat("a", 250)
	overLimit := strings.Repeat("a", 251)

	tests := []struct {
		name    string
		mission string
		wantErr bool
	}{
		{name: "exactly 250 accepted", mission: atLimit, wantErr: false},
		{name: "251 rejected", mission: overLimit, wantErr: true},
	}

	for _, tt := range tests {
		t.Run("create "+tt.name, func(t *testing.T) {
			req := CreateBrandRequest{
				Name:             "Acme",
				MissionStatement: &tt.mission,
			}
			err := v.Struct(&req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
		t.Run("update "+tt.name, func(t *testing.T) {
			req := UpdateBrandRequest{
				MissionStatement: &tt.mission,
			}
			err := v.Struct(&req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBrandRequestMissionStatementOmitted(t *testing.T) {
	v := validator.New()

	assert.NoError(t, v.Struct(&CreateBrandRequest{Name: "Acme"}))
	assert.NoError(t, v.Struct(&UpdateBrandRequest{}))
}

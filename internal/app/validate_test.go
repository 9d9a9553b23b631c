package app

import (
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateApp(t *testing.T) {
	service := NewService()
	result, err := service.Validate(t.Context(), ValidateRequest{
		CatalogPath: fixturePath(t, "catalog-product.yaml"),
	})
	require.NoError(t, err)
	if diff := cmp.Diff(ValidateResult{CatalogName: "api-timestamps", PatternCount: 8}, result); diff != "" {
		t.Fatalf("unexpected result (-want +got):\n%s", diff)
	}
}

func TestValidateExplicitProfiles(t *testing.T) {
	result, err := NewService().Validate(t.Context(), ValidateRequest{
		CatalogPath: fixturePath(t, "catalog-product.yaml"),
		Profiles:    []string{fixturePath(t, "profile-iso.yaml")},
	})
	require.NoError(t, err)
	assert.Equal(t, 5, result.PatternCount)
}

func TestValidateRequiresCatalog(t *testing.T) {
	_, err := NewService().Validate(t.Context(), ValidateRequest{})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

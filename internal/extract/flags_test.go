// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Informasjonsforvaltning/fdk-parser-service/pkg/types"
)

func TestHasCode(t *testing.T) {
	tests := []struct {
		name string
		ref  *types.Reference
		want *bool
	}{
		{"absent", nil, nil},
		{"code", &types.Reference{Code: ptr("public")}, ptr(true)},
		{"uri segment", &types.Reference{URI: ptr("http://publications.europa.eu/resource/authority/access-right/PUBLIC")}, ptr(true)},
		{"other", &types.Reference{URI: ptr("http://publications.europa.eu/resource/authority/access-right/RESTRICTED")}, ptr(false)},
		{"empty", &types.Reference{}, ptr(false)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasCode(tt.ref, AccessRightPublic))
		})
	}
}

func TestAnyOpenLicense(t *testing.T) {
	assert.Nil(t, AnyOpenLicense(nil))
	assert.Equal(t, ptr(true), AnyOpenLicense([]types.Reference{
		{URI: ptr("https://example.org/proprietary")},
		{URI: ptr("https://creativecommons.org/licenses/by/4.0/")},
	}))
	assert.Equal(t, ptr(false), AnyOpenLicense([]types.Reference{{Code: ptr("CC0")}}))
	assert.True(t, IsOpenLicense("http://data.norge.no/nlod/no/2.0"))
	assert.False(t, IsOpenLicense(""))
}

func TestIsTransportTheme(t *testing.T) {
	assert.True(t, IsTransportTheme(types.Reference{URI: ptr("http://publications.europa.eu/resource/authority/data-theme/TRAN")}))
	assert.True(t, IsTransportTheme(types.Reference{URI: ptr("https://psi.norge.no/los/tema/mobilitet-og-transport")}))
	assert.True(t, IsTransportTheme(types.Reference{Code: ptr("TRAN")}))
	assert.False(t, IsTransportTheme(types.Reference{URI: ptr("http://publications.europa.eu/resource/authority/data-theme/ECON")}))
	assert.False(t, IsTransportTheme(types.Reference{}))
}

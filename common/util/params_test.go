package util

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestParseParamsFrom_Defaults(t *testing.T) {
	a := assert.New(t)

	params, err := ParseParamsFrom("image-viewer", []string{})

	if a.Nil(err) {
		a.Equal("INFO", params.GetLogLevel())
		a.False(params.GetKeepAspectRatio())
		a.Equal(QualityNormal, params.GetQuality())
		a.Equal(ScalerImaging, params.GetScaler())
		a.Equal(100, params.GetEventQueueSize())
		a.Equal("", params.GetImagePath())
	}
}

func TestParseParamsFrom(t *testing.T) {
	a := assert.New(t)

	params, err := ParseParamsFrom("image-viewer", []string{
		"-logLevel", "DEBUG",
		"-keepAspectRatio",
		"-quality", "HIGH",
		"-scaler", "resize",
		"-eventQueueSize", "5",
		"photos/beach.jpg",
	})

	if a.Nil(err) {
		a.Equal("DEBUG", params.GetLogLevel())
		a.True(params.GetKeepAspectRatio())
		a.Equal(QualityHigh, params.GetQuality())
		a.Equal(ScalerResize, params.GetScaler())
		a.Equal(5, params.GetEventQueueSize())
		a.Equal("photos/beach.jpg", params.GetImagePath())
	}
}

func TestParseParamsFrom_Invalid(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		name string
		args []string
	}{
		{name: "Quality", args: []string{"-quality", "best"}},
		{name: "Scaler", args: []string{"-scaler", "opencv"}},
		{name: "Queue size", args: []string{"-eventQueueSize", "0"}},
		{name: "Unknown flag", args: []string{"-fullscreen"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params, err := ParseParamsFrom("image-viewer", tt.args)
			a.NotNil(err)
			a.Nil(params)
		})
	}
}

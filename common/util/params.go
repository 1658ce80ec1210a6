package util

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

const (
	QualityNormal = "normal"
	QualityHigh   = "high"

	ScalerImaging = "imaging"
	ScalerResize  = "resize"
)

type Params struct {
	logLevel        string
	keepAspectRatio bool
	quality         string
	scaler          string
	eventQueueSize  int
	imagePath       string
}

func ParseParams() *Params {
	params, err := ParseParamsFrom(os.Args[0], os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	return params
}

func ParseParamsFrom(name string, args []string) (*Params, error) {
	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	logLevel := flags.String("logLevel", "INFO", "Log level: ERROR, WARN, INFO, DEBUG, TRACE")
	keepAspectRatio := flags.Bool("keepAspectRatio", false, "Start with 'Keep Aspect Ratio' checked")
	quality := flags.String("quality", QualityNormal, "Scaling quality: normal, high")
	scaler := flags.String("scaler", ScalerImaging, "Scaling implementation: imaging, resize")
	eventQueueSize := flags.Int("eventQueueSize", 100, "Queue size of each event handler")

	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	params := &Params{
		logLevel:        *logLevel,
		keepAspectRatio: *keepAspectRatio,
		quality:         strings.ToLower(*quality),
		scaler:          strings.ToLower(*scaler),
		eventQueueSize:  *eventQueueSize,
		imagePath:       flags.Arg(0),
	}

	if params.quality != QualityNormal && params.quality != QualityHigh {
		return nil, fmt.Errorf("invalid quality '%s'", *quality)
	}
	if params.scaler != ScalerImaging && params.scaler != ScalerResize {
		return nil, fmt.Errorf("invalid scaler '%s'", *scaler)
	}
	if params.eventQueueSize < 1 {
		return nil, fmt.Errorf("invalid event queue size %d", params.eventQueueSize)
	}
	return params, nil
}

func (s *Params) GetLogLevel() string {
	return s.logLevel
}

func (s *Params) GetKeepAspectRatio() bool {
	return s.keepAspectRatio
}

func (s *Params) GetQuality() string {
	return s.quality
}

func (s *Params) GetScaler() string {
	return s.scaler
}

func (s *Params) GetEventQueueSize() int {
	return s.eventQueueSize
}

// GetImagePath is the optional image opened at start up.
func (s *Params) GetImagePath() string {
	return s.imagePath
}
